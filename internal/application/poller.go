package application

import (
	"context"
	"time"
)

// startPollingLocked launches the background refresh loop for the current
// epoch. Callers hold the session mutex. Exactly one loop exists per
// authenticated session; teardown cancels its context, and the epoch guard
// inside the refresh methods makes any still-in-flight completion a no-op.
func (s *Session) startPollingLocked() {
	if s.pollCancel != nil {
		s.pollCancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.pollCancel = cancel
	epoch := s.epoch

	go s.pollLoop(ctx, epoch)
}

func (s *Session) pollLoop(ctx context.Context, epoch uint64) {
	s.logger.Debug("polling started", "epoch", epoch, "interval", s.pollInterval)
	defer s.logger.Debug("polling stopped", "epoch", epoch)

	s.refreshAll(ctx)

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.refreshAll(ctx)
		}
	}
}

// refreshAll runs one poll tick. Errors inside either refresh are isolated
// per cycle; a failed tick never halts the loop.
func (s *Session) refreshAll(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	s.RefreshJobs(ctx)
	s.RefreshUsage(ctx)
}
