package openapi

// NewComponents returns the schemas and responses shared by every domain.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"PageRequest": {
				Type: "object",
				Properties: map[string]*Property{
					"page":      {Type: "integer", Description: "1-based page number", Example: 1},
					"page_size": {Type: "integer", Description: "Items per page", Example: 20},
					"search":    {Type: "string", Description: "Case-insensitive search term"},
					"sort":      {Type: "string", Description: "Comma-separated fields, '-' prefix for descending", Example: "-created_at"},
				},
			},
			"Error": {
				Type: "object",
				Properties: map[string]*Property{
					"error": {Type: "string"},
				},
				Required: []string{"error"},
			},
			"InternalError": {
				Type: "object",
				Properties: map[string]*Property{
					"error":   {Type: "string", Example: "Internal Server Error"},
					"details": {Type: "string"},
				},
				Required: []string{"error", "details"},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":    ResponseJSON("Invalid request", "Error"),
			"NotFound":      ResponseJSON("Resource not found", "Error"),
			"Conflict":      ResponseJSON("Resource conflict", "Error"),
			"InternalError": ResponseJSON("Unexpected server failure", "InternalError"),
		},
	}
}

// AddSchemas merges schemas into the components, replacing any with the same name.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}

// AddResponses merges responses into the components.
func (c *Components) AddResponses(responses map[string]*Response) {
	for name, resp := range responses {
		c.Responses[name] = resp
	}
}
