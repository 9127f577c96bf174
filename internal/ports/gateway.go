package ports

import (
	"context"

	"github.com/funanimation/fa-cli/internal/domain"
)

// Gateway is the HTTP collaborator running the actual generation backend.
type Gateway interface {
	Register(ctx context.Context, email, password string) (domain.Credential, error)
	Login(ctx context.Context, email, password string) (domain.Credential, error)
	Me(ctx context.Context, credential domain.Credential) (domain.Profile, error)
	Usage(ctx context.Context, credential domain.Credential) (domain.UsageSnapshot, error)
	Jobs(ctx context.Context, credential domain.Credential) ([]domain.Job, error)
	Generate(ctx context.Context, credential domain.Credential, request domain.GenerationRequest) error
	Subscribe(ctx context.Context, credential domain.Credential, plan domain.Plan) error
}
