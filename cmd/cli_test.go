package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCLI runs the root command with a fresh wiring, capturing output.
func executeCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// newBackend serves the minimal API surface the commands touch.
func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		_ = json.NewDecoder(r.Body).Decode(&payload)
		if payload["password"] != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"detail": "invalid credentials"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-cli"})
	})
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "tok-cli"})
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-cli" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"email": "cli@example.com", "is_premium": false})
	})
	mux.HandleFunc("GET /usage", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"used_this_week": 1, "weekly_free_limit": 3})
	})
	mux.HandleFunc("GET /jobs", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"jobs":[]}`))
	})
	mux.HandleFunc("POST /generate", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func setupEnv(t *testing.T, backendURL string) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv("FA_BACKEND_URL", backendURL)
	t.Setenv("FA_POLL_INTERVAL", "1h")
}

func TestVersionCommand(t *testing.T) {
	setupEnv(t, "http://localhost:0")

	stdout, _, err := executeCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", stdout)
}

func TestLoginThenWhoami(t *testing.T) {
	backend := newBackend(t)
	setupEnv(t, backend.URL)

	stdout, _, err := executeCLI(t, "login", "--email", "cli@example.com", "--password", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "Signed in as cli@example.com (free plan)\n", stdout)

	stdout, _, err = executeCLI(t, "whoami")
	require.NoError(t, err)
	assert.Equal(t, "cli@example.com (free plan)\n", stdout)
}

func TestLoginWrongPasswordSurfacesBackendMessage(t *testing.T) {
	backend := newBackend(t)
	setupEnv(t, backend.URL)

	_, _, err := executeCLI(t, "login", "--email", "cli@example.com", "--password", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestLoginValidationSkipsBackend(t *testing.T) {
	setupEnv(t, "http://localhost:0")

	_, _, err := executeCLI(t, "login", "--email", "", "--password", "hunter2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestUsageRequiresLogin(t *testing.T) {
	backend := newBackend(t)
	setupEnv(t, backend.URL)

	_, _, err := executeCLI(t, "usage")
	require.ErrorIs(t, err, errNotLoggedIn)
}

func TestUsageAfterLogin(t *testing.T) {
	backend := newBackend(t)
	setupEnv(t, backend.URL)

	_, _, err := executeCLI(t, "login", "--email", "cli@example.com", "--password", "hunter2")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, "usage")
	require.NoError(t, err)
	assert.Equal(t, "Free plan: 1/3 videos this week\n", stdout)
}

func TestGenerateSubmitsJob(t *testing.T) {
	backend := newBackend(t)
	setupEnv(t, backend.URL)

	_, _, err := executeCLI(t, "login", "--email", "cli@example.com", "--password", "hunter2")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, "generate", "--prompt", "a fox in the snow", "--duration", "15")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Job submitted.")
}

func TestGenerateRejectsNonNumericDuration(t *testing.T) {
	backend := newBackend(t)
	setupEnv(t, backend.URL)

	_, _, err := executeCLI(t, "login", "--email", "cli@example.com", "--password", "hunter2")
	require.NoError(t, err)

	_, _, err = executeCLI(t, "generate", "--prompt", "x", "--duration", "soon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duration")
}

func TestGenerateRequiresPromptFlag(t *testing.T) {
	setupEnv(t, "http://localhost:0")

	_, _, err := executeCLI(t, "generate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "prompt")
}

func TestLogoutForgetsSession(t *testing.T) {
	backend := newBackend(t)
	setupEnv(t, backend.URL)

	_, _, err := executeCLI(t, "login", "--email", "cli@example.com", "--password", "hunter2")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, "logout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed out")

	_, _, err = executeCLI(t, "usage")
	require.ErrorIs(t, err, errNotLoggedIn)

	home := os.Getenv("HOME")
	_, statErr := os.Stat(filepath.Join(home, ".funanimation", "session.toml"))
	assert.True(t, os.IsNotExist(statErr))
}
