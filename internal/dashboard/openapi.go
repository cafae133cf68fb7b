package dashboard

import "github.com/JaimeStill/qc-lab/pkg/openapi"

type spec struct {
	Progress    *openapi.Operation
	ProgressSVG *openapi.Operation
}

// Spec contains OpenAPI operation definitions for dashboard endpoints.
var Spec = spec{
	Progress: &openapi.Operation{
		Summary:     "Batch progress",
		Description: "Counts finished, pending and total batches and computes the progress gauge",
		Parameters: []*openapi.Parameter{
			openapi.HeaderParam("x-organization-id", "Organization identifier", true),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Progress metrics", "Progress"),
			400: openapi.ResponseRef("BadRequest"),
			500: openapi.ResponseJSON("Query failure", "Error"),
		},
	},
	ProgressSVG: &openapi.Operation{
		Summary: "Batch progress gauge",
		Parameters: []*openapi.Parameter{
			openapi.HeaderParam("x-organization-id", "Organization identifier", true),
		},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Rendered gauge",
				Content: map[string]*openapi.MediaType{
					"image/svg+xml": {Schema: &openapi.Schema{Type: "string"}},
				},
			},
			400: openapi.ResponseRef("BadRequest"),
		},
	},
}

// Schemas returns the component schemas used by dashboard endpoints.
func (spec) Schemas() map[string]*openapi.Schema {
	segment := map[string]*openapi.Property{
		"count":      {Type: "integer"},
		"percentage": {Type: "number", Description: "Share of total, rounded to two decimals"},
		"startAngle": {Type: "number"},
		"endAngle":   {Type: "number"},
		"path":       {Type: "string", Description: "SVG path data for the arc"},
	}

	return map[string]*openapi.Schema{
		"GaugeSegment": {Type: "object", Properties: segment},
		"Gauge": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"total":      {Type: "integer"},
				"completed":  {Ref: "#/components/schemas/GaugeSegment"},
				"inProgress": {Ref: "#/components/schemas/GaugeSegment"},
				"pending":    {Ref: "#/components/schemas/GaugeSegment"},
			},
		},
		"Progress": {
			Type: "object",
			Properties: map[string]*openapi.Property{
				"finishedbatchcount":  {Type: "integer"},
				"pendingbatchescount": {Type: "integer"},
				"totalbatch":          {Type: "integer"},
				"gauge":               {Ref: "#/components/schemas/Gauge"},
			},
		},
	}
}
