package api

import (
	"net/http"

	"github.com/JaimeStill/qc-lab/internal/auditlog"
	"github.com/JaimeStill/qc-lab/internal/batches"
	"github.com/JaimeStill/qc-lab/internal/dashboard"
	"github.com/JaimeStill/qc-lab/internal/templates"
	"github.com/JaimeStill/qc-lab/pkg/openapi"
	"github.com/JaimeStill/qc-lab/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	basePath string,
	runtime *Runtime,
	domain *Domain,
) {
	batchesHandler := batches.NewHandler(domain.Batches, runtime.Logger)
	templatesHandler := templates.NewHandler(domain.Templates, runtime.Logger, runtime.Pagination, runtime.MaxBodySize)
	auditHandler := auditlog.NewHandler(domain.AuditLog, runtime.Logger, runtime.Pagination)
	dashboardHandler := dashboard.NewHandler(domain.Dashboard, runtime.Logger)

	routes.Register(
		mux,
		basePath,
		spec,
		batchesHandler.Routes(),
		templatesHandler.Routes(),
		auditHandler.Routes(),
		dashboardHandler.Routes(),
	)
}
