package auditlog

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/qc-lab/internal/scope"
	"github.com/JaimeStill/qc-lab/pkg/handlers"
	"github.com/JaimeStill/qc-lab/pkg/pagination"
	"github.com/JaimeStill/qc-lab/pkg/routes"
)

// Handler serves audit log listings.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates an audit log HTTP handler.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "auditlog"),
		pagination: pagination,
	}
}

// Routes returns the route group for audit log endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/logs",
		Tags:        []string{"Audit Log"},
		Description: "Recorded user actions",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
		},
		Schemas: Spec.Schemas(),
	}
}

// List handles GET /logs.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	org, err := scope.OrganizationID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, scope.MapHTTPStatus(err), err)
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), org, page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
