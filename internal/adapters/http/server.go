// Package http exposes the flow service over a chi router.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/caue-mor/saas-solar/api"
	"github.com/caue-mor/saas-solar/internal/logging"
	"github.com/caue-mor/saas-solar/pkg/catalog"
	"github.com/caue-mor/saas-solar/pkg/domain"
	"github.com/caue-mor/saas-solar/pkg/flow"
	"github.com/caue-mor/saas-solar/pkg/template"
)

// Server wires the flow service to the HTTP surface.
type Server struct {
	svc    *flow.Service
	logger *slog.Logger
}

// NewHandler builds the full router: flow CRUD, templates, node catalog,
// validation, plus the contract, metrics and health endpoints. gatherer may
// be nil, in which case /metrics serves the default prometheus registry.
func NewHandler(svc *flow.Service, logger *slog.Logger, gatherer prometheus.Gatherer) http.Handler {
	if logger == nil {
		logger = logging.NewNop()
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	s := &Server{svc: svc, logger: logger}

	r := chi.NewRouter()

	r.Route("/api/companies/{companyID}/flow", func(r chi.Router) {
		r.Get("/", s.getFlow)
		r.Post("/", s.saveFlow)
		r.Put("/", s.saveFlow)
		r.Delete("/", s.clearFlow)
		r.Post("/duplicate", s.duplicateFlow)
	})
	r.Post("/api/flow/validate", s.validateFlow)
	r.Get("/api/flow/templates", s.listTemplates)
	r.Get("/api/flow/node-types", s.listNodeTypes)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(api.Spec())
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return r
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>SolarFlow API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`

type flowResponse struct {
	Success bool                `json:"success"`
	Flow    *domain.CompanyFlow `json:"flow"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResponse struct {
	Success          bool     `json:"success"`
	Error            string   `json:"error"`
	ValidationErrors []string `json:"validationErrors,omitempty"`
}

// saveFlowRequest is the flow document itself plus the save flags, flat:
// clients POST their CompanyFlow with an optional skipValidation sibling,
// the same shape /api/flow/validate accepts.
type saveFlowRequest struct {
	domain.CompanyFlow
	SkipValidation  bool `json:"skipValidation"`
	ExpectedVersion *int `json:"expectedVersion,omitempty"`
}

func (s *Server) getFlow(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	doc, err := s.svc.Load(r.Context(), companyID)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, flowResponse{Success: true, Flow: doc})
}

func (s *Server) saveFlow(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	var body saveFlowRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	// The URL owns the identity; the body may omit or contradict it.
	body.CompanyID = companyID

	saved, err := s.svc.Save(r.Context(), &body.CompanyFlow, flow.SaveOptions{
		SkipValidation:  body.SkipValidation,
		ExpectedVersion: body.ExpectedVersion,
	})
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, flowResponse{Success: true, Flow: saved})
}

func (s *Server) clearFlow(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	if err := s.svc.Clear(r.Context(), companyID); err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "fluxo removido"})
}

func (s *Server) duplicateFlow(w http.ResponseWriter, r *http.Request) {
	companyID := chi.URLParam(r, "companyID")

	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}

	copied, err := s.svc.Duplicate(r.Context(), companyID, body.Name)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, flowResponse{Success: true, Flow: copied})
}

func (s *Server) validateFlow(w http.ResponseWriter, r *http.Request) {
	var doc domain.CompanyFlow
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		s.writeError(w, http.StatusBadRequest, "corpo da requisição inválido")
		return
	}
	s.writeJSON(w, http.StatusOK, s.svc.Validate(&doc))
}

func (s *Server) listTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := template.All()
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, "falha ao carregar templates")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"templates": templates,
	})
}

func (s *Server) listNodeTypes(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"nodeTypes": catalog.Definitions(),
	})
}

// writeServiceError maps service errors onto the HTTP surface. Validation
// failures are 400 with the individual messages, so the editor can show
// them next to the canvas.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:            "fluxo inválido",
			ValidationErrors: verr.Errors,
		})
	case errors.Is(err, domain.ErrCompanyNotFound):
		s.writeError(w, http.StatusNotFound, "empresa não encontrada")
	case errors.Is(err, domain.ErrVersionConflict):
		s.writeError(w, http.StatusConflict, "o fluxo foi alterado por outra sessão")
	default:
		s.logger.Error("request failed", "err", err)
		s.writeError(w, http.StatusInternalServerError, "erro interno")
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}
