package auditlog

import (
	"context"

	"github.com/JaimeStill/qc-lab/pkg/pagination"
	"github.com/JaimeStill/qc-lab/pkg/repository"
)

// System records and lists audit entries.
type System interface {
	// Record writes cmd using q, which may be the caller's transaction so the
	// entry commits or rolls back with the action it describes.
	Record(ctx context.Context, q repository.Querier, cmd RecordCommand) (*Entry, error)
	List(ctx context.Context, organizationID int, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Entry], error)
}
