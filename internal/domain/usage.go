package domain

import "fmt"

// UsageSnapshot is the weekly free-tier consumption counter as reported by
// the backend. The client treats it as opaque and always replaces it
// wholesale; the weekly reset is a server concern.
type UsageSnapshot struct {
	UsedThisWeek    int `json:"used_this_week"`
	WeeklyFreeLimit int `json:"weekly_free_limit"`
}

// QuotaLine renders the one-line quota summary shown next to the plan badge.
func (u UsageSnapshot) QuotaLine(premium bool) string {
	if premium {
		return "Unlimited videos"
	}
	return fmt.Sprintf("Free plan: %d/%d videos this week", u.UsedThisWeek, u.WeeklyFreeLimit)
}
