package application

import (
	"context"

	"github.com/funanimation/fa-cli/internal/domain"
)

// Submit sends a new generation request. Continuation attaches the selected
// project; otherwise the request originates a project titled from the
// prompt. On success usage and jobs are refreshed immediately so the new job
// and updated quota appear without waiting for the next poll tick.
//
// One submission may be in flight at a time; further calls are rejected, not
// queued. All submission failures surface the same generic message.
func (s *Session) Submit(ctx context.Context, scene domain.Scene, continueProject bool) error {
	s.mu.Lock()
	if s.state != domain.StateAuthenticated {
		s.mu.Unlock()
		return domain.ErrNotAuthenticated
	}
	if s.submitting {
		s.mu.Unlock()
		return domain.ErrSubmitInFlight
	}
	s.submitting = true
	credential := s.credential
	epoch := s.epoch
	request := domain.NewGenerationRequest(scene, continueProject, s.selectedProjectID)
	s.mu.Unlock()

	err := s.gateway.Generate(ctx, credential, request)

	s.mu.Lock()
	if s.epoch == epoch {
		s.submitting = false
	}
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("generation request rejected", "error", err)
		return domain.ErrSubmissionFailed
	}

	s.RefreshUsage(ctx)
	s.RefreshJobs(ctx)
	return nil
}
