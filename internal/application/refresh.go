package application

import (
	"context"

	"github.com/funanimation/fa-cli/internal/domain"
)

// RefreshUsage replaces the usage snapshot wholesale. Failures are logged and
// swallowed; usage display is best-effort and must not block anything else.
func (s *Session) RefreshUsage(ctx context.Context) {
	s.mu.Lock()
	if s.state != domain.StateAuthenticated {
		s.mu.Unlock()
		return
	}
	credential := s.credential
	epoch := s.epoch
	s.mu.Unlock()

	usage, err := s.gateway.Usage(ctx, credential)
	if err != nil {
		s.logger.Warn("refresh usage", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return
	}
	s.usage = usage
}

// RefreshJobs replaces the job collection wholesale, preserving server order,
// then recomputes the project index from scratch. The first project becomes
// selected only while nothing is selected yet; an existing selection is
// sticky across refreshes.
func (s *Session) RefreshJobs(ctx context.Context) {
	s.mu.Lock()
	if s.state != domain.StateAuthenticated {
		s.mu.Unlock()
		return
	}
	credential := s.credential
	epoch := s.epoch
	s.mu.Unlock()

	jobs, err := s.gateway.Jobs(ctx, credential)
	if err != nil {
		s.logger.Warn("refresh jobs", "error", err)
		return
	}

	projects := domain.DeriveProjects(jobs)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		return
	}
	s.jobs = jobs
	s.projects = projects
	s.lastRefreshAt = s.clock.Now()
	if s.selectedProjectID == "" && len(projects) > 0 {
		s.selectedProjectID = projects[0].ID
	}
}
