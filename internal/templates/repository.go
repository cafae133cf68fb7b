package templates

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/qc-lab/internal/auditlog"
	"github.com/JaimeStill/qc-lab/internal/scope"
	"github.com/JaimeStill/qc-lab/pkg/pagination"
	"github.com/JaimeStill/qc-lab/pkg/query"
	"github.com/JaimeStill/qc-lab/pkg/repository"
)

// OrderIndex is the partial unique index over live order numbers.
const OrderIndex = "templates_org_orderno_active_key"

type repo struct {
	db         *sql.DB
	audit      auditlog.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a template System backed by db. Reorders are recorded
// through audit.
func New(db *sql.DB, audit auditlog.System, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		audit:      audit,
		logger:     logger.With("system", "templates"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, organizationID int, page pagination.PageRequest) (*pagination.PageResult[Template], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereEquals("OrganizationID", organizationID).
		WhereEquals("IsDelete", false).
		WhereSearch(page.Search, "Name")

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count templates: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	items, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanTemplate)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}

	result := pagination.NewPageResult(items, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, organizationID, id int) (*Template, error) {
	q, args := query.
		NewBuilder(projection).
		WhereEquals("OrganizationID", organizationID).
		WhereEquals("IsDelete", false).
		BuildSingle("ID", id)

	t, err := repository.QueryOne(ctx, r.db, q, args, scanTemplate)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

func (r *repo) Reorder(ctx context.Context, actor scope.Actor, id int, cmd ReorderCommand) (*Template, error) {
	org := actor.OrganizationID

	t, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Template, error) {
		if _, err := tx.ExecContext(ctx,
			"SELECT pg_advisory_xact_lock(hashtext('templates.orderno'), $1)", org,
		); err != nil {
			return Template{}, fmt.Errorf("lock organization templates: %w", err)
		}

		current, err := repository.QueryOne(ctx, tx, `
			SELECT `+columns+` FROM templates
			WHERE id = $1 AND organization_id = $2 AND NOT is_delete`,
			[]any{id, org}, scanTemplate)
		if err != nil {
			return Template{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}

		var taken bool
		if err := tx.QueryRowContext(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM templates
				WHERE organization_id = $1 AND orderno = $2 AND id <> $3 AND NOT is_delete
			)`, org, cmd.OrderNo, current.ID,
		).Scan(&taken); err != nil {
			return Template{}, fmt.Errorf("check order number: %w", err)
		}

		var max int
		if err := tx.QueryRowContext(ctx, `
			SELECT COALESCE(MAX(orderno), 0) FROM templates
			WHERE organization_id = $1 AND NOT is_delete`, org,
		).Scan(&max); err != nil {
			return Template{}, fmt.Errorf("read max order number: %w", err)
		}

		if err := CheckPlacement(cmd.OrderNo, taken, max); err != nil {
			return Template{}, err
		}

		updated, err := repository.QueryOne(ctx, tx, `
			UPDATE templates SET orderno = $1, updated_at = NOW()
			WHERE id = $2
			RETURNING `+columns,
			[]any{cmd.OrderNo, current.ID}, scanTemplate)
		if err != nil {
			if repository.IsUniqueViolation(err, OrderIndex) {
				return Template{}, &ConflictError{OrderNo: cmd.OrderNo}
			}
			return Template{}, fmt.Errorf("update order number: %w", err)
		}

		if _, err := r.audit.Record(ctx, tx, auditlog.RecordCommand{
			UserID:         actor.UserID,
			OrganizationID: org,
			Role:           actor.Role,
			Action:         ReorderAction(updated.ID, updated.OrderNo),
		}); err != nil {
			return Template{}, err
		}

		return updated, nil
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("template reordered",
		"id", t.ID,
		"organization_id", org,
		"orderno", t.OrderNo,
		"userid", actor.UserID,
	)
	return &t, nil
}

// ReorderAction is the audit action recorded for a reorder.
func ReorderAction(id, orderNo int) string {
	return fmt.Sprintf("Updated order number of template ID %d to %d", id, orderNo)
}
