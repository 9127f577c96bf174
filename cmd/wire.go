package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/funanimation/fa-cli/internal/adapters/credfile"
	"github.com/funanimation/fa-cli/internal/adapters/gateway"
	sessionrender "github.com/funanimation/fa-cli/internal/adapters/render/session"
	"github.com/funanimation/fa-cli/internal/adapters/sessionfile"
	"github.com/funanimation/fa-cli/internal/application"
	"github.com/funanimation/fa-cli/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	session        *application.Session
	records        ports.SessionRepository
	renderSnapshot func(application.Snapshot, sessionrender.RenderOptions) (string, error)
	backendURL     string
	pollInterval   time.Duration
}

func wireApp() (*app, error) {
	records, err := sessionfile.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	credentials := credfile.NewStore(filepath.Join(homeDir, ".funanimation", "secrets"))

	backendURL := envOrDefault("FA_BACKEND_URL", "http://localhost:8000")
	pollInterval := pollIntervalFromEnv()

	backend := gateway.NewClient(backendURL, nil)
	session := application.NewSession(backend, credentials, records, ports.SystemClock{}, slog.Default(), pollInterval)

	return &app{
		session:        session,
		records:        records,
		renderSnapshot: sessionrender.Render,
		backendURL:     backendURL,
		pollInterval:   pollInterval,
	}, nil
}

func pollIntervalFromEnv() time.Duration {
	raw := os.Getenv("FA_POLL_INTERVAL")
	if raw == "" {
		return application.DefaultPollInterval
	}

	interval, err := time.ParseDuration(raw)
	if err != nil || interval <= 0 {
		return application.DefaultPollInterval
	}

	return interval
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
