package batches

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/qc-lab/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a batches System backed by db.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "batches"),
	}
}

func (r *repo) ListActive(ctx context.Context, organizationID int) ([]Batch, error) {
	rows, err := repository.QueryMany(ctx, r.db, activeImagesQuery, []any{organizationID}, scanRow)
	if err != nil {
		return nil, fmt.Errorf("query batches: %w", err)
	}

	batches := Group(rows)
	r.logger.Debug("batches listed", "organization_id", organizationID, "batches", len(batches), "images", len(rows))
	return batches, nil
}
