package batches

import "github.com/JaimeStill/qc-lab/pkg/openapi"

type spec struct {
	List *openapi.Operation
}

// Spec contains OpenAPI operation definitions for batch endpoints.
var Spec = spec{
	List: &openapi.Operation{
		Summary:     "List active batches",
		Description: "Returns the organization's batches that contain at least one active image",
		Parameters: []*openapi.Parameter{
			openapi.HeaderParam("x-organization-id", "Organization identifier", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArrayJSON("Batches with active images", "Batch"),
			400: openapi.ResponseRef("BadRequest"),
			500: openapi.ResponseJSON("Query failure", "Error"),
		},
	},
}

// Schemas returns the component schemas used by batch endpoints.
func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Image": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"id":             {Type: "integer"},
				"filename":       {Type: "string", Description: "Final path segment of the stored file name"},
				"image":          {Type: "string"},
				"organizationId": {Type: "integer"},
				"assigned":       {Type: "boolean"},
				"completed":      {Type: "boolean"},
				"imagestatus":    {Type: "boolean"},
				"userid":         {Type: "integer", Description: "Assigned reviewer, null when unassigned"},
			},
		},
		"Batch": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"id":              {Type: "integer"},
				"batchname":       {Type: "string"},
				"imagescount":     {Type: "integer"},
				"imagecollection": {Type: "array", Items: openapi.SchemaRef("Image")},
			},
		},
	}
}
