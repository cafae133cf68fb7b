package templates

import (
	"context"

	"github.com/JaimeStill/qc-lab/internal/scope"
	"github.com/JaimeStill/qc-lab/pkg/pagination"
)

// System reads and reorders an organization's templates.
type System interface {
	List(ctx context.Context, organizationID int, page pagination.PageRequest) (*pagination.PageResult[Template], error)
	Find(ctx context.Context, organizationID, id int) (*Template, error)

	// Reorder moves template id to cmd.OrderNo and records the change on
	// behalf of actor. Validation, update and audit entry commit together.
	Reorder(ctx context.Context, actor scope.Actor, id int, cmd ReorderCommand) (*Template, error)
}
