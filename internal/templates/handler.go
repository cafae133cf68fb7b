package templates

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/qc-lab/internal/scope"
	"github.com/JaimeStill/qc-lab/pkg/handlers"
	"github.com/JaimeStill/qc-lab/pkg/pagination"
	"github.com/JaimeStill/qc-lab/pkg/routes"
)

// Handler serves template ordering endpoints.
type Handler struct {
	sys         System
	logger      *slog.Logger
	pagination  pagination.Config
	maxBodySize int64
}

// NewHandler creates a templates HTTP handler. Request bodies larger than
// maxBodySize bytes are rejected.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config, maxBodySize int64) *Handler {
	return &Handler{
		sys:         sys,
		logger:      logger.With("handler", "templates"),
		pagination:  pagination,
		maxBodySize: maxBodySize,
	}
}

// Routes returns the route group for template endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/template",
		Tags:        []string{"Templates"},
		Description: "Template ordering",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/order", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/order/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "PUT", Pattern: "/order/{id}", Handler: h.Reorder, OpenAPI: Spec.Reorder},
		},
		Schemas: Spec.Schemas(),
	}
}

// List handles GET /template/order.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	org, err := scope.OrganizationID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, scope.MapHTTPStatus(err), err)
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.List(r.Context(), org, page)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find handles GET /template/order/{id}.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	org, err := scope.OrganizationID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, scope.MapHTTPStatus(err), err)
		return
	}

	id, err := ParseTemplateID(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	t, err := h.sys.Find(r.Context(), org, id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, t)
}

// Reorder handles PUT /template/order/{id}. Checks run in order and the
// first failure is returned.
func (h *Handler) Reorder(w http.ResponseWriter, r *http.Request) {
	actor, err := scope.ActorFromRequest(r)
	if err != nil {
		handlers.RespondIndentedError(w, h.logger, scope.MapHTTPStatus(err), err)
		return
	}

	id, err := ParseTemplateID(r.PathValue("id"))
	if err != nil {
		handlers.RespondIndentedError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	cmd, err := DecodeReorder(r.Body)
	if err != nil {
		handlers.RespondIndentedError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	t, err := h.sys.Reorder(r.Context(), actor, id, cmd)
	if err != nil {
		status := MapHTTPStatus(err)
		if status == http.StatusInternalServerError {
			handlers.RespondInternalError(w, h.logger, err)
			return
		}
		handlers.RespondIndentedError(w, h.logger, status, err)
		return
	}

	handlers.RespondIndentedJSON(w, http.StatusOK, ReorderResult{Success: true, Data: t})
}
