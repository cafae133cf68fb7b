package auditlog

import (
	"net/url"

	"github.com/JaimeStill/qc-lab/pkg/query"
)

// Filters narrows a listing.
type Filters struct {
	UserID *string
	Role   *string
}

// FiltersFromQuery reads userid and role query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters
	if v := values.Get("userid"); v != "" {
		f.UserID = &v
	}
	if v := values.Get("role"); v != "" {
		f.Role = &v
	}
	return f
}

// Apply adds filter conditions to a query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	if f.UserID != nil {
		b.WhereEquals("UserID", *f.UserID)
	}
	if f.Role != nil {
		b.WhereEquals("Role", *f.Role)
	}
	return b
}
