package session

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/funanimation/fa-cli/internal/application"
	"github.com/funanimation/fa-cli/internal/domain"
)

type RenderOptions struct {
	// MaxJobs caps the job list; zero renders everything.
	MaxJobs int
}

// View renders the session snapshot without a bubbletea program. The watch
// view embeds it inside its own live model.
func View(snapshot application.Snapshot, opts RenderOptions) string {
	return renderView(snapshot, opts, newStyles())
}

func renderView(snapshot application.Snapshot, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Funanimation"),
		s.header.Render(identityLine(snapshot)),
	}

	if snapshot.State != domain.StateAuthenticated {
		lines = append(lines, s.empty.Render("Not logged in. Run `fa login` or `fa register`."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, s.quota.Render(snapshot.Usage.QuotaLine(snapshot.Profile.IsPremium)))
	lines = append(lines, s.section.Render(renderProjects(snapshot, s)))
	lines = append(lines, s.section.Render(renderJobs(snapshot, opts, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func identityLine(snapshot application.Snapshot) string {
	if snapshot.State != domain.StateAuthenticated {
		return "signed out"
	}

	return fmt.Sprintf("%s [%s]", snapshot.Profile.Email, planBadge(snapshot.Profile.IsPremium))
}

func planBadge(premium bool) string {
	if premium {
		return "premium"
	}
	return "free"
}

func renderProjects(snapshot application.Snapshot, s styles) string {
	parts := []string{s.title.Render("Projects")}

	if len(snapshot.Projects) == 0 {
		parts = append(parts, s.empty.Render("No projects yet"))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	for _, project := range snapshot.Projects {
		line := fmt.Sprintf("  %s (%s)", project.Title, project.ID)
		if project.ID == snapshot.SelectedProjectID {
			line = s.selected.Render("> " + strings.TrimLeft(line, " "))
		} else {
			line = s.project.Render(line)
		}
		parts = append(parts, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderJobs(snapshot application.Snapshot, opts RenderOptions, s styles) string {
	parts := []string{s.title.Render("Your videos")}

	if len(snapshot.Jobs) == 0 {
		parts = append(parts, s.empty.Render("No videos yet"))
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}

	jobs := snapshot.Jobs
	if opts.MaxJobs > 0 && len(jobs) > opts.MaxJobs {
		jobs = jobs[:opts.MaxJobs]
	}

	for _, job := range jobs {
		parts = append(parts, renderJob(job, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderJob(job domain.Job, s styles) string {
	line := fmt.Sprintf("  %s %s %s",
		s.jobID.Render(job.ID),
		statusStyle(job.Status, s).Render(strings.ToUpper(string(job.Status))),
		s.detail.Render(promptSummary(job.Scene.Prompt)),
	)

	if job.Status == domain.JobStatusDone && job.ResultURL != "" {
		line = lipgloss.JoinVertical(lipgloss.Left, line, s.detail.Render("    "+job.ResultURL))
	}

	return line
}

func statusStyle(status domain.JobStatus, s styles) lipgloss.Style {
	switch status {
	case domain.JobStatusDone:
		return s.statusDone
	case domain.JobStatusFailed:
		return s.statusFail
	default:
		return s.statusWork
	}
}

func promptSummary(prompt string) string {
	const max = 48
	runes := []rune(strings.TrimSpace(prompt))
	if len(runes) <= max {
		return string(runes)
	}
	return string(runes[:max]) + "..."
}
