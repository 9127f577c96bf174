package domain

// Credential is the opaque bearer token proving an authenticated identity.
// The client never introspects it.
type Credential string

func (c Credential) IsZero() bool {
	return c == ""
}

type AuthState string

const (
	StateUnauthenticated AuthState = "unauthenticated"
	StateAuthenticating  AuthState = "authenticating"
	StateAuthenticated   AuthState = "authenticated"
)

type Profile struct {
	Email     string `json:"email"`
	IsPremium bool   `json:"is_premium"`
}

type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

// PlanFor maps the premium flag to the wire-level plan name.
func PlanFor(premium bool) Plan {
	if premium {
		return PlanPremium
	}
	return PlanFree
}
