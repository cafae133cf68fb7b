package batches

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/qc-lab/internal/scope"
	"github.com/JaimeStill/qc-lab/pkg/handlers"
	"github.com/JaimeStill/qc-lab/pkg/routes"
)

// Handler serves the batch listing endpoint.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a batches HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "batches"),
	}
}

// Routes returns the route group for batch endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/qcclient",
		Tags:        []string{"Batches"},
		Description: "Review batches and their active images",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
		},
		Schemas: Spec.Schemas(),
	}
}

// List handles GET /qcclient.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	org, err := scope.OrganizationID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, scope.MapHTTPStatus(err), err)
		return
	}

	result, err := h.sys.ListActive(r.Context(), org)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
