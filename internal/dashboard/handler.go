package dashboard

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/qc-lab/internal/scope"
	"github.com/JaimeStill/qc-lab/pkg/gauge"
	"github.com/JaimeStill/qc-lab/pkg/handlers"
	"github.com/JaimeStill/qc-lab/pkg/routes"
)

// Handler serves dashboard endpoints.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a dashboard HTTP handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "dashboard"),
	}
}

// Routes returns the route group for dashboard endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/dashboard",
		Tags:        []string{"Dashboard"},
		Description: "Review progress",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/progress", Handler: h.Progress, OpenAPI: Spec.Progress},
			{Method: "GET", Pattern: "/progress.svg", Handler: h.ProgressSVG, OpenAPI: Spec.ProgressSVG},
		},
		Schemas: Spec.Schemas(),
	}
}

// Progress handles GET /dashboard/progress.
func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	p, ok := h.progress(w, r)
	if !ok {
		return
	}
	handlers.RespondJSON(w, http.StatusOK, p)
}

// ProgressSVG handles GET /dashboard/progress.svg.
func (h *Handler) ProgressSVG(w http.ResponseWriter, r *http.Request) {
	p, ok := h.progress(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := gauge.RenderSVG(&buf, p.Gauge); err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (h *Handler) progress(w http.ResponseWriter, r *http.Request) (Progress, bool) {
	org, err := scope.OrganizationID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, scope.MapHTTPStatus(err), err)
		return Progress{}, false
	}

	p, err := h.sys.Progress(r.Context(), org)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return Progress{}, false
	}
	return p, true
}
