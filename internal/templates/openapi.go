package templates

import "github.com/JaimeStill/qc-lab/pkg/openapi"

type spec struct {
	List    *openapi.Operation
	Find    *openapi.Operation
	Reorder *openapi.Operation
}

var orgHeader = openapi.HeaderParam("x-organization-id", "Organization identifier", true)

// Spec contains OpenAPI operation definitions for template endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List templates",
		Description: "Returns the organization's live templates ordered by order number",
		Parameters: []*openapi.Parameter{
			orgHeader,
			openapi.QueryParam("page", "integer", "Page number (1-indexed)", false),
			openapi.QueryParam("page_size", "integer", "Results per page", false),
			openapi.QueryParam("search", "string", "Search query (matches name)", false),
			openapi.QueryParam("sort", "string", "Comma-separated sort fields. Prefix with - for descending", false),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Paginated templates", "TemplatePageResult"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Find: &openapi.Operation{
		Summary: "Find template",
		Parameters: []*openapi.Parameter{
			orgHeader,
			openapi.PathParam("id", "Template ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Template", "Template"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Reorder: &openapi.Operation{
		Summary:     "Change template order number",
		Description: "Assigns a new order number. The number must be free among live templates and no greater than the current maximum plus one.",
		Parameters: []*openapi.Parameter{
			orgHeader,
			openapi.HeaderParam("x-user-id", "Acting user", true),
			openapi.HeaderParam("x-role", "Acting user's role", true),
			openapi.PathParam("id", "Template ID"),
		},
		RequestBody: openapi.RequestBodyJSON("ReorderCommand", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated template", "ReorderResult"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
			409: openapi.ResponseRef("Conflict"),
			413: openapi.ResponseJSON("Request body too large", "Error"),
			500: openapi.ResponseJSON("Unexpected failure", "InternalError"),
		},
	},
}

// Schemas returns the component schemas used by template endpoints.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Template": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"id":             {Type: "integer"},
				"organizationId": {Type: "integer"},
				"name":           {Type: "string"},
				"orderno":        {Type: "integer"},
				"isDelete":       {Type: "boolean"},
				"createdAt":      {Type: "string", Format: "date-time"},
				"updatedAt":      {Type: "string", Format: "date-time"},
			},
		},
		"ReorderCommand": {
			Type:     "object",
			Required: []string{"orderno"},
			Properties: map[string]*openapi.Property{
				"orderno": {Type: "integer", Description: "Positive integer", Example: 2},
			},
		},
		"ReorderResult": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"success": {Type: "boolean"},
				"data":    {Ref: "#/components/schemas/Template"},
			},
		},
		"TemplatePageResult": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"data":        {Type: "array", Items: openapi.SchemaRef("Template")},
				"total":       {Type: "integer"},
				"page":        {Type: "integer"},
				"page_size":   {Type: "integer"},
				"total_pages": {Type: "integer"},
			},
		},
	}
}
