package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/funanimation/fa-cli/internal/domain"
	"github.com/funanimation/fa-cli/internal/ports"
)

// statusError mimics a gateway response error for credential-rejection paths.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("status %d", e.code)
}

func (e *statusError) HTTPStatus() int {
	return e.code
}

type fakeGateway struct {
	mu sync.Mutex

	loginFn     func(email, password string) (domain.Credential, error)
	registerFn  func(email, password string) (domain.Credential, error)
	meFn        func(credential domain.Credential) (domain.Profile, error)
	usageFn     func(credential domain.Credential) (domain.UsageSnapshot, error)
	jobsFn      func(credential domain.Credential) ([]domain.Job, error)
	generateFn  func(credential domain.Credential, request domain.GenerationRequest) error
	subscribeFn func(credential domain.Credential, plan domain.Plan) error

	calls        map[string]int
	lastGenerate domain.GenerationRequest
	lastPlan     domain.Plan
}

var _ ports.Gateway = (*fakeGateway)(nil)

func newFakeGateway() *fakeGateway {
	return &fakeGateway{calls: map[string]int{}}
}

func (g *fakeGateway) record(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls[name]++
}

func (g *fakeGateway) callCount(name string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[name]
}

func (g *fakeGateway) Login(_ context.Context, email, password string) (domain.Credential, error) {
	g.record("login")
	if g.loginFn != nil {
		return g.loginFn(email, password)
	}
	return "token-login", nil
}

func (g *fakeGateway) Register(_ context.Context, email, password string) (domain.Credential, error) {
	g.record("register")
	if g.registerFn != nil {
		return g.registerFn(email, password)
	}
	return "token-register", nil
}

func (g *fakeGateway) Me(_ context.Context, credential domain.Credential) (domain.Profile, error) {
	g.record("me")
	if g.meFn != nil {
		return g.meFn(credential)
	}
	return domain.Profile{Email: "user@example.com"}, nil
}

func (g *fakeGateway) Usage(_ context.Context, credential domain.Credential) (domain.UsageSnapshot, error) {
	g.record("usage")
	if g.usageFn != nil {
		return g.usageFn(credential)
	}
	return domain.UsageSnapshot{UsedThisWeek: 1, WeeklyFreeLimit: 3}, nil
}

func (g *fakeGateway) Jobs(_ context.Context, credential domain.Credential) ([]domain.Job, error) {
	g.record("jobs")
	if g.jobsFn != nil {
		return g.jobsFn(credential)
	}
	return nil, nil
}

func (g *fakeGateway) Generate(_ context.Context, credential domain.Credential, request domain.GenerationRequest) error {
	g.record("generate")
	g.mu.Lock()
	g.lastGenerate = request
	g.mu.Unlock()
	if g.generateFn != nil {
		return g.generateFn(credential, request)
	}
	return nil
}

func (g *fakeGateway) Subscribe(_ context.Context, credential domain.Credential, plan domain.Plan) error {
	g.record("subscribe")
	g.mu.Lock()
	g.lastPlan = plan
	g.mu.Unlock()
	if g.subscribeFn != nil {
		return g.subscribeFn(credential, plan)
	}
	return nil
}

type fakeCredentialStore struct {
	mu     sync.Mutex
	values map[string]string
}

var _ ports.CredentialStore = (*fakeCredentialStore)(nil)

func newFakeCredentialStore() *fakeCredentialStore {
	return &fakeCredentialStore{values: map[string]string{}}
}

func (s *fakeCredentialStore) Get(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	if !ok {
		return "", domain.ErrCredentialNotFound
	}
	return value, nil
}

func (s *fakeCredentialStore) Put(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *fakeCredentialStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *fakeCredentialStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.values[key]
	return ok
}

type fakeSessionRepository struct {
	mu     sync.Mutex
	record ports.SessionRecord
	saved  bool
}

var _ ports.SessionRepository = (*fakeSessionRepository)(nil)

func (r *fakeSessionRepository) Load(_ context.Context) (ports.SessionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.record, nil
}

func (r *fakeSessionRepository) Save(_ context.Context, record ports.SessionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record = record
	r.saved = true
	return nil
}

func (r *fakeSessionRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.record = ports.SessionRecord{}
	r.saved = false
	return nil
}
