package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/qc-lab/internal/api"
	"github.com/JaimeStill/qc-lab/internal/config"
	"github.com/JaimeStill/qc-lab/internal/infrastructure"
	"github.com/JaimeStill/qc-lab/pkg/module"
)

func newRouter(t *testing.T) *module.Router {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Name = "qc"
	cfg.Database.User = "qc"
	cfg.Logging.Level = "error"
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	infra, err := infrastructure.New(cfg)
	if err != nil {
		t.Fatalf("infrastructure.New() error = %v", err)
	}
	t.Cleanup(func() { infra.Database.Connection().Close() })

	m, err := api.NewModule(cfg, infra)
	if err != nil {
		t.Fatalf("NewModule() error = %v", err)
	}

	router := module.NewRouter()
	router.Mount(m)
	return router
}

func TestNewModule_ServesOpenAPI(t *testing.T) {
	router := newRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/openapi.json", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var doc struct {
		Paths      map[string]map[string]any `json:"paths"`
		Components struct {
			Schemas map[string]any `json:"schemas"`
		} `json:"components"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := map[string]string{
		"/api/qcclient":               "get",
		"/api/template/order":         "get",
		"/api/template/order/{id}":    "put",
		"/api/logs":                   "get",
		"/api/dashboard/progress":     "get",
		"/api/dashboard/progress.svg": "get",
	}
	for path, method := range want {
		if _, ok := doc.Paths[path][method]; !ok {
			t.Errorf("missing %s %s", method, path)
		}
	}

	for _, schema := range []string{"Batch", "Image", "Template", "AuditEntry", "Progress"} {
		if _, ok := doc.Components.Schemas[schema]; !ok {
			t.Errorf("missing schema %s", schema)
		}
	}
}

func TestNewModule_RoutesRequests(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/api/qcclient", http.StatusBadRequest},
		{http.MethodGet, "/api/qcclient/", http.StatusBadRequest},
		{http.MethodPut, "/api/template/order/1", http.StatusBadRequest},
		{http.MethodGet, "/api/dashboard/progress", http.StatusBadRequest},
		{http.MethodDelete, "/api/template/order/1", http.StatusMethodNotAllowed},
		{http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}
