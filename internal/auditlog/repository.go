package auditlog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaimeStill/qc-lab/pkg/pagination"
	"github.com/JaimeStill/qc-lab/pkg/query"
	"github.com/JaimeStill/qc-lab/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates an audit log System backed by db.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "auditlog"),
		pagination: pagination,
	}
}

func (r *repo) Record(ctx context.Context, q repository.Querier, cmd RecordCommand) (*Entry, error) {
	if q == nil {
		q = r.db
	}

	const stmt = `
		INSERT INTO audit_logs (id, userid, organization_id, role, action)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, userid, organization_id, role, action, created_at`

	args := []any{uuid.New(), cmd.UserID, cmd.OrganizationID, cmd.Role, cmd.Action}
	e, err := repository.QueryOne(ctx, q, stmt, args, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("record audit entry: %w", err)
	}

	r.logger.Info("action recorded",
		"id", e.ID,
		"organization_id", e.OrganizationID,
		"userid", e.UserID,
		"action", e.Action,
	)
	return &e, nil
}

func (r *repo) List(ctx context.Context, organizationID int, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Entry], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("OrganizationID", organizationID).
		WhereSearch(page.Search, "Action")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count audit entries: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	entries, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("query audit entries: %w", err)
	}

	result := pagination.NewPageResult(entries, total, page.Page, page.PageSize)
	return &result, nil
}
