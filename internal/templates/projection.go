package templates

import (
	"github.com/JaimeStill/qc-lab/pkg/query"
	"github.com/JaimeStill/qc-lab/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "templates", "t").
	Project("id", "ID").
	Project("organization_id", "OrganizationID").
	Project("name", "Name").
	Project("orderno", "OrderNo").
	Project("is_delete", "IsDelete").
	Project("created_at", "CreatedAt").
	Project("updated_at", "UpdatedAt")

var defaultSort = query.SortField{Field: "OrderNo"}

const columns = "id, organization_id, name, orderno, is_delete, created_at, updated_at"

func scanTemplate(s repository.Scanner) (Template, error) {
	var t Template
	err := s.Scan(&t.ID, &t.OrganizationID, &t.Name, &t.OrderNo, &t.IsDelete, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}
