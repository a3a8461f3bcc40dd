package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/aretw0/bayeux/internal/logging"
	"github.com/aretw0/bayeux/internal/metrics"
	"github.com/aretw0/bayeux/pkg/domain"
	"github.com/aretw0/bayeux/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes an Asker as a JSON API.
type Server struct {
	asker   ports.Asker
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets a structured logger for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler creates a new HTTP handler for the engine. The handler carries
// its own Prometheus registry, exposed at /metrics.
func NewHandler(asker ports.Asker, opts ...Option) http.Handler {
	registry := prometheus.NewRegistry()
	server := &Server{
		asker:   asker,
		logger:  logging.NewNop(),
		metrics: metrics.New(registry),
	}
	for _, opt := range opts {
		opt(server)
	}

	r := chi.NewRouter()
	r.Post("/query", server.Query)
	r.Get("/network", server.GetNetwork)
	r.Get("/healthz", server.Healthz)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	return r
}

// QueryRequest is the POST /query body.
type QueryRequest struct {
	Query    string                    `json:"query"`
	Evidence map[string]domain.Outcome `json:"evidence,omitempty"`
}

// QueryResponse carries the posterior keyed by outcome display form.
type QueryResponse struct {
	Query     string             `json:"query"`
	Posterior map[string]float64 `json:"posterior"`
}

// Query handles the POST /query request.
func (s *Server) Query(w http.ResponseWriter, r *http.Request) {
	var body QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.metrics.Queries.WithLabelValues("bad_request").Inc()
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if body.Query == "" {
		s.metrics.Queries.WithLabelValues("bad_request").Inc()
		http.Error(w, "Missing query variable", http.StatusBadRequest)
		return
	}

	evidence := make(domain.Evidence, len(body.Evidence))
	for name, value := range body.Evidence {
		evidence[name] = value
	}

	start := time.Now()
	posterior, err := s.asker.Ask(r.Context(), body.Query, evidence)
	s.metrics.Duration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.writeAskError(w, body.Query, err)
		return
	}
	s.metrics.Queries.WithLabelValues("ok").Inc()

	resp := QueryResponse{
		Query:     body.Query,
		Posterior: make(map[string]float64, len(posterior)),
	}
	for _, o := range posterior.Outcomes() {
		resp.Posterior[o.String()] = posterior[o]
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// writeAskError maps the engine's typed failures onto HTTP statuses.
func (s *Server) writeAskError(w http.ResponseWriter, query string, err error) {
	s.logger.Warn("query failed", "query", query, "err", err)
	switch {
	case errors.Is(err, domain.ErrUnknownVariable),
		errors.Is(err, domain.ErrVariableNotInNetwork):
		s.metrics.Queries.WithLabelValues("unknown_variable").Inc()
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrZeroTotalProbability):
		// Contradictory evidence is a client-side modeling error.
		s.metrics.Queries.WithLabelValues("contradictory_evidence").Inc()
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		s.metrics.Queries.WithLabelValues("error").Inc()
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// VariableInfo describes one network member for introspection.
type VariableInfo struct {
	Name    string   `json:"name"`
	Parents []string `json:"parents"`
	Domain  []string `json:"domain"`
}

// NetworkResponse is the GET /network body.
type NetworkResponse struct {
	Variables []VariableInfo `json:"variables"`
}

// GetNetwork handles the GET /network request.
func (s *Server) GetNetwork(w http.ResponseWriter, r *http.Request) {
	net := s.asker.Network()
	resp := NetworkResponse{Variables: make([]VariableInfo, 0, net.Len())}
	for _, v := range net.Variables() {
		outcomes := v.Domain()
		display := make([]string, len(outcomes))
		for i, o := range outcomes {
			display[i] = o.String()
		}
		resp.Variables = append(resp.Variables, VariableInfo{
			Name:    v.Name(),
			Parents: v.ParentNames(),
			Domain:  display,
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// Healthz handles the GET /healthz request.
func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}
