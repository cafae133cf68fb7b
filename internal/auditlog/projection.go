package auditlog

import (
	"github.com/JaimeStill/qc-lab/pkg/query"
	"github.com/JaimeStill/qc-lab/pkg/repository"
)

var projection = query.
	NewProjectionMap("public", "audit_logs", "l").
	Project("id", "ID").
	Project("userid", "UserID").
	Project("organization_id", "OrganizationID").
	Project("role", "Role").
	Project("action", "Action").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

func scanEntry(s repository.Scanner) (Entry, error) {
	var e Entry
	err := s.Scan(&e.ID, &e.UserID, &e.OrganizationID, &e.Role, &e.Action, &e.CreatedAt)
	return e, err
}
