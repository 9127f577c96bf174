package ports

import (
	"context"

	"github.com/funanimation/fa-cli/internal/domain"
)

// SessionRecord is the small durable snapshot kept between runs: where the
// credential lives and the last profile it resolved to. Usage, jobs and
// projects are never persisted; they are re-fetched every session.
type SessionRecord struct {
	CredentialRef string
	Profile       domain.Profile
}

type SessionRepository interface {
	Load(ctx context.Context) (SessionRecord, error)
	Save(ctx context.Context, record SessionRecord) error
	Clear(ctx context.Context) error
}
