package auditlog

import "github.com/JaimeStill/qc-lab/pkg/openapi"

type spec struct {
	List *openapi.Operation
}

// Spec contains OpenAPI operation definitions for audit log endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List audit entries",
		Description: "Returns the organization's recorded actions, newest first",
		Parameters: []*openapi.Parameter{
			openapi.HeaderParam("x-organization-id", "Organization identifier", true),
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Search query (matches action)", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields. Prefix with - for descending", false),
			openapi.QueryParam("userid", "string", "Filter by acting user", false),
			openapi.QueryParam("role", "string", "Filter by role", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated audit entries", "AuditEntryPageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
}

// Schemas returns the component schemas used by audit log endpoints.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"AuditEntry": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"id":             {Type: "string", Format: "uuid"},
				"userid":         {Type: "string"},
				"organizationid": {Type: "integer"},
				"role":           {Type: "string"},
				"action":         {Type: "string", Example: "Updated order number of template ID 4 to 2"},
				"created_at":     {Type: "string", Format: "date-time"},
			},
		},
		"AuditEntryPageResult": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"data":        {Type: "array", Items: openapi.SchemaRef("AuditEntry")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
