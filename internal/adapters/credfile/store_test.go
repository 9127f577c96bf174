package credfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/funanimation/fa-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutGetRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewStore(filepath.Join(t.TempDir(), "secrets"))
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "session/token", "tok-123"))

	value, err := store.Get(ctx, "session/token")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", value)
}

func TestGetMissingKeyReportsNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())

	_, err := store.Get(context.Background(), "session/token")
	require.ErrorIs(t, err, domain.ErrCredentialNotFound)
}

func TestDeleteIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "session/token", "tok"))
	require.NoError(t, store.Delete(ctx, "session/token"))
	require.NoError(t, store.Delete(ctx, "session/token"))

	_, err := store.Get(ctx, "session/token")
	require.ErrorIs(t, err, domain.ErrCredentialNotFound)
}

func TestSecretFilePermissions(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "secrets")
	store := NewStore(root)

	require.NoError(t, store.Put(context.Background(), "session/token", "tok"))

	info, err := os.Stat(filepath.Join(root, "session", "token"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(root)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())
}

func TestRejectsPathEscapingKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	ctx := context.Background()

	for _, key := range []string{"", "  ", "..", "../outside", "/etc/passwd", "."} {
		require.Error(t, store.Put(ctx, key, "v"), "key %q", key)
	}
}

func TestGetTrimsSurroundingWhitespace(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "secrets")
	store := NewStore(root)

	require.NoError(t, os.MkdirAll(root, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(root, "token"), []byte("tok-123\n"), 0o600))

	value, err := store.Get(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", value)
}
