package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/funanimation/fa-cli/internal/domain"
	"github.com/funanimation/fa-cli/internal/ports"
)

// CredentialKey is the single fixed slot the bearer token lives under.
const CredentialKey = "session/token"

const DefaultPollInterval = 4 * time.Second

// Session owns the authentication lifecycle and everything derived from it:
// profile, usage snapshot, job collection and project index. All state is
// guarded by one mutex; asynchronous completions carry the epoch current at
// issue time and are dropped if the session has since been torn down or
// replaced.
type Session struct {
	gateway     ports.Gateway
	credentials ports.CredentialStore
	records     ports.SessionRepository
	clock       ports.Clock
	logger      *slog.Logger

	pollInterval time.Duration

	mu                sync.Mutex
	state             domain.AuthState
	epoch             uint64
	credential        domain.Credential
	profile           domain.Profile
	usage             domain.UsageSnapshot
	jobs              []domain.Job
	projects          []domain.Project
	selectedProjectID string
	submitting        bool
	lastRefreshAt     time.Time
	pollCancel        context.CancelFunc
}

func NewSession(gateway ports.Gateway, credentials ports.CredentialStore, records ports.SessionRepository, clock ports.Clock, logger *slog.Logger, pollInterval time.Duration) *Session {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}

	return &Session{
		gateway:      gateway,
		credentials:  credentials,
		records:      records,
		clock:        clock,
		logger:       logger,
		pollInterval: pollInterval,
		state:        domain.StateUnauthenticated,
	}
}

// Restore reads the persisted credential and revalidates it against the
// backend. Absence or failed validation both land in Unauthenticated; a
// failed validation additionally purges the persisted credential.
func (s *Session) Restore(ctx context.Context) error {
	token, err := s.credentials.Get(ctx, CredentialKey)
	if err != nil {
		if !errors.Is(err, domain.ErrCredentialNotFound) {
			s.logger.Warn("read persisted credential", "error", err)
		}
		return nil
	}

	credential := domain.Credential(token)
	if credential.IsZero() {
		s.purgeCredential(ctx)
		return nil
	}

	profile, err := s.gateway.Me(ctx, credential)
	if err != nil {
		// A non-success response means the credential is no longer valid and
		// must be purged. A transport failure keeps it for the next attempt.
		var rejected interface{ HTTPStatus() int }
		if errors.As(err, &rejected) {
			s.logger.Warn("persisted credential rejected", "status", rejected.HTTPStatus())
			s.purgeCredential(ctx)
			return nil
		}
		return fmt.Errorf("validate persisted credential: %w", err)
	}

	s.mu.Lock()
	epoch := s.epoch
	s.mu.Unlock()
	s.activate(ctx, epoch, credential, profile)
	return nil
}

// Login authenticates with an existing account. Validation failures
// short-circuit before any network call; a second attempt while one is in
// flight is ignored.
func (s *Session) Login(ctx context.Context, email, password string) error {
	if err := domain.ValidateLoginInput(email, password); err != nil {
		return err
	}

	return s.authenticate(ctx, func(ctx context.Context) (domain.Credential, error) {
		return s.gateway.Login(ctx, email, password)
	})
}

// Register creates an account and authenticates in one step.
func (s *Session) Register(ctx context.Context, email, password string) error {
	if err := domain.ValidateRegisterInput(email, password); err != nil {
		return err
	}

	return s.authenticate(ctx, func(ctx context.Context) (domain.Credential, error) {
		return s.gateway.Register(ctx, email, password)
	})
}

func (s *Session) authenticate(ctx context.Context, acquire func(context.Context) (domain.Credential, error)) error {
	s.mu.Lock()
	if s.state == domain.StateAuthenticating {
		s.mu.Unlock()
		return domain.ErrAuthInFlight
	}
	s.teardownLocked()
	s.state = domain.StateAuthenticating
	epoch := s.epoch
	s.mu.Unlock()

	credential, err := acquire(ctx)
	if err != nil {
		s.failAuthentication(epoch)
		return err
	}

	profile, err := s.gateway.Me(ctx, credential)
	if err != nil {
		s.failAuthentication(epoch)
		return err
	}

	if err := s.credentials.Put(ctx, CredentialKey, string(credential)); err != nil {
		s.failAuthentication(epoch)
		return err
	}

	s.activate(ctx, epoch, credential, profile)
	return nil
}

func (s *Session) failAuthentication(epoch uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch {
		return
	}
	s.state = domain.StateUnauthenticated
}

// activate transitions into Authenticated and starts a fresh polling loop,
// unless the originating epoch has been superseded in the meantime.
func (s *Session) activate(ctx context.Context, epoch uint64, credential domain.Credential, profile domain.Profile) {
	s.mu.Lock()
	if s.epoch != epoch {
		s.mu.Unlock()
		return
	}

	s.epoch++
	s.state = domain.StateAuthenticated
	s.credential = credential
	s.profile = profile
	s.usage = domain.UsageSnapshot{}
	s.jobs = nil
	s.projects = nil
	s.selectedProjectID = ""
	s.submitting = false
	s.startPollingLocked()
	s.mu.Unlock()

	if err := s.records.Save(ctx, ports.SessionRecord{CredentialRef: CredentialKey, Profile: profile}); err != nil {
		s.logger.Warn("save session record", "error", err)
	}
}

// Logout tears the session down unconditionally; no network call is made and
// none is required to succeed.
func (s *Session) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.teardownLocked()
	s.mu.Unlock()

	if err := s.credentials.Delete(ctx, CredentialKey); err != nil {
		s.logger.Warn("delete persisted credential", "error", err)
	}
	if err := s.records.Clear(ctx); err != nil {
		s.logger.Warn("clear session record", "error", err)
	}

	return nil
}

// SetPlan sends the plan change and, on success, re-resolves profile and
// usage. Local state is never flipped optimistically.
func (s *Session) SetPlan(ctx context.Context, premium bool) error {
	s.mu.Lock()
	if s.state != domain.StateAuthenticated {
		s.mu.Unlock()
		return domain.ErrNotAuthenticated
	}
	credential := s.credential
	epoch := s.epoch
	s.mu.Unlock()

	if err := s.gateway.Subscribe(ctx, credential, domain.PlanFor(premium)); err != nil {
		return err
	}

	profile, err := s.gateway.Me(ctx, credential)
	if err != nil {
		s.logger.Warn("refresh profile after plan change", "error", err)
	} else {
		s.mu.Lock()
		if s.epoch == epoch {
			s.profile = profile
		}
		s.mu.Unlock()

		if err := s.records.Save(ctx, ports.SessionRecord{CredentialRef: CredentialKey, Profile: profile}); err != nil {
			s.logger.Warn("save session record", "error", err)
		}
	}

	s.RefreshUsage(ctx)
	return nil
}

// SelectProject records an explicit project selection. Refreshes never
// override it, even if the project later disappears from the index.
func (s *Session) SelectProject(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedProjectID = id
}

// Close stops the polling loop without touching persisted state.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardownLocked()
}

// teardownLocked discards all per-session state, cancels the poller and
// advances the epoch so any in-flight completion is dropped on arrival.
func (s *Session) teardownLocked() {
	if s.pollCancel != nil {
		s.pollCancel()
		s.pollCancel = nil
	}

	s.epoch++
	s.state = domain.StateUnauthenticated
	s.credential = ""
	s.profile = domain.Profile{}
	s.usage = domain.UsageSnapshot{}
	s.jobs = nil
	s.projects = nil
	s.selectedProjectID = ""
	s.submitting = false
	s.lastRefreshAt = time.Time{}
}

func (s *Session) purgeCredential(ctx context.Context) {
	if err := s.credentials.Delete(ctx, CredentialKey); err != nil {
		s.logger.Warn("purge rejected credential", "error", err)
	}
	if err := s.records.Clear(ctx); err != nil {
		s.logger.Warn("clear session record", "error", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = domain.StateUnauthenticated
}

// Snapshot returns a copy of the current session state for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	jobs := make([]domain.Job, len(s.jobs))
	copy(jobs, s.jobs)
	projects := make([]domain.Project, len(s.projects))
	copy(projects, s.projects)

	return Snapshot{
		State:             s.state,
		Profile:           s.profile,
		Usage:             s.usage,
		Jobs:              jobs,
		Projects:          projects,
		SelectedProjectID: s.selectedProjectID,
		Submitting:        s.submitting,
		LastRefreshAt:     s.lastRefreshAt,
	}
}

type Snapshot struct {
	State             domain.AuthState
	Profile           domain.Profile
	Usage             domain.UsageSnapshot
	Jobs              []domain.Job
	Projects          []domain.Project
	SelectedProjectID string
	Submitting        bool
	LastRefreshAt     time.Time
}
