// Package infrastructure provides core service initialization for application startup.
// It assembles the common dependencies (logging, database, migrations) that
// domain systems require.
package infrastructure

import (
	"fmt"
	"log/slog"

	"github.com/JaimeStill/qc-lab/internal/config"
	"github.com/JaimeStill/qc-lab/internal/migrations"
	"github.com/JaimeStill/qc-lab/pkg/database"
	"github.com/JaimeStill/qc-lab/pkg/lifecycle"
	"github.com/JaimeStill/qc-lab/pkg/logging"
)

// Infrastructure holds the core systems required by all domain modules.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System

	dbConfig *database.Config
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := logging.New(&cfg.Logging)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Database:  db,
		dbConfig:  &cfg.Database,
	}, nil
}

// Start applies pending migrations when migrate_on_start is set, then
// registers the database with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if i.dbConfig.MigrateOnStart {
		if err := migrations.Up(i.dbConfig.Dsn(), i.Logger); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
	}

	if err := i.Database.Start(i.Lifecycle); err != nil {
		return fmt.Errorf("database start failed: %w", err)
	}
	return nil
}
