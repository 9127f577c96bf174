package ports

import "context"

// CredentialStore is the durable client-local slot for the bearer token. It
// is written only by the session; everything else re-fetches its state from
// the backend.
type CredentialStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
