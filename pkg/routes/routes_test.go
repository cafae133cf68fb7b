package routes_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/qc-lab/pkg/openapi"
	"github.com/JaimeStill/qc-lab/pkg/routes"
)

func writer(s string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(s))
	}
}

func TestGroup_AddToSpec(t *testing.T) {
	spec := openapi.NewSpec("Test", "1.0.0")

	group := routes.Group{
		Prefix: "/template/order",
		Tags:   []string{"Templates"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: writer(""), OpenAPI: &openapi.Operation{Summary: "List"}},
			{Method: "PUT", Pattern: "/{id}", Handler: writer(""), OpenAPI: &openapi.Operation{Summary: "Reorder", Tags: []string{"Admin"}}},
			{Method: "GET", Pattern: "/internal", Handler: writer("")},
		},
		Schemas: map[string]*openapi.Schema{"Template": {Type: "object"}},
	}

	group.AddToSpec("/api", spec)

	list := spec.Paths["/api/template/order"]
	if list == nil || list.Get == nil {
		t.Fatal("list operation not added")
	}
	if len(list.Get.Tags) != 1 || list.Get.Tags[0] != "Templates" {
		t.Errorf("list tags = %v, want inherited [Templates]", list.Get.Tags)
	}

	reorder := spec.Paths["/api/template/order/{id}"]
	if reorder == nil || reorder.Put == nil {
		t.Fatal("reorder operation not added")
	}
	if reorder.Put.Tags[0] != "Admin" {
		t.Errorf("explicit tags overwritten: %v", reorder.Put.Tags)
	}

	if _, ok := spec.Paths["/api/template/order/internal"]; ok {
		t.Error("route without OpenAPI operation should not be documented")
	}
	if _, ok := spec.Components.Schemas["Template"]; !ok {
		t.Error("group schemas not added to components")
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	spec := openapi.NewSpec("Test", "1.0.0")

	dashboard := routes.Group{
		Prefix: "/dashboard",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/progress", Handler: writer("progress")},
		},
		Children: []routes.Group{
			{
				Prefix: "/progress",
				Routes: []routes.Route{
					{Method: "GET", Pattern: ".svg", Handler: writer("svg")},
				},
			},
		},
	}
	logs := routes.Group{
		Prefix: "/logs",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: writer("logs"), OpenAPI: &openapi.Operation{Summary: "List"}},
		},
	}

	routes.Register(mux, "/api", spec, dashboard, logs)

	tests := []struct {
		path string
		want string
	}{
		{"/dashboard/progress", "progress"},
		{"/dashboard/progress.svg", "svg"},
		{"/logs", "logs"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			body, _ := io.ReadAll(w.Result().Body)
			if string(body) != tt.want {
				t.Errorf("body = %q, want %q", body, tt.want)
			}
		})
	}

	if _, ok := spec.Paths["/api/logs"]; !ok {
		t.Error("documented path should include base path")
	}
}
