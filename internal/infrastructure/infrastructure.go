// Package infrastructure provides core service initialization for application startup.
// It assembles common dependencies (logging, database, artifact storage, mail
// transport) that domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/courier/internal/config"
	"github.com/JaimeStill/courier/pkg/artifacts"
	"github.com/JaimeStill/courier/pkg/database"
	"github.com/JaimeStill/courier/pkg/lifecycle"
	"github.com/JaimeStill/courier/pkg/mailer"
)

// Infrastructure holds the core systems required by all domain modules.
// It provides a single point of initialization for lifecycle coordination,
// logging, database access, artifact storage, and outbound mail.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Artifacts artifacts.Store
	Transport mailer.Transport
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	store, err := newStore(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("artifact store init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		Artifacts: store,
		Transport: newTransport(cfg, logger),
	}, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	if err := i.Artifacts.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("artifact store start failed: %w", err)
	}
	return nil
}

func newStore(cfg *config.Config, logger *slog.Logger) (artifacts.Store, error) {
	if cfg.Storage.Backend == artifacts.BackendAzure {
		return artifacts.NewAzure(&cfg.Storage, logger)
	}
	return artifacts.NewMemory(), nil
}

func newTransport(cfg *config.Config, logger *slog.Logger) mailer.Transport {
	if cfg.Mail.Backend == mailer.BackendSMTP {
		return mailer.NewSMTP(&cfg.Mail)
	}
	return mailer.NewLog(logger)
}
