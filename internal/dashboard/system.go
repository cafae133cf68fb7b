package dashboard

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// System reads dashboard metrics.
type System interface {
	Progress(ctx context.Context, organizationID int) (Progress, error)
}

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a dashboard System backed by db.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "dashboard"),
	}
}

// A batch is finished when every active image is completed and pending when
// it is unfinished and no active image is assigned. Everything else is in
// progress.
const progressQuery = `
	WITH per_batch AS (
		SELECT
			b.id,
			bool_and(i.completed) AS finished,
			NOT bool_or(i.assigned) AS unassigned
		FROM batches b
		JOIN imagecollections i
			ON i.batchname = b.batchname
			AND i.organization_id = b.organization_id
		WHERE b.organization_id = $1 AND i.imagestatus
		GROUP BY b.id
	)
	SELECT
		COUNT(*) FILTER (WHERE finished),
		COUNT(*) FILTER (WHERE unassigned AND NOT finished),
		COUNT(*)
	FROM per_batch`

func (r *repo) Progress(ctx context.Context, organizationID int) (Progress, error) {
	var finished, pending, total int
	if err := r.db.QueryRowContext(ctx, progressQuery, organizationID).Scan(&finished, &pending, &total); err != nil {
		return Progress{}, fmt.Errorf("query progress: %w", err)
	}

	r.logger.Debug("progress computed",
		"organization_id", organizationID,
		"finished", finished,
		"pending", pending,
		"total", total,
	)
	return NewProgress(finished, pending, total), nil
}
