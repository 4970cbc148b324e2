// Package httpapi exposes the estimator over HTTP for serve mode:
// health and metrics endpoints plus a small JSON API.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/couchcryptid/impact-sim/internal/cities"
	"github.com/couchcryptid/impact-sim/internal/domain"
	"github.com/couchcryptid/impact-sim/internal/observability"
)

// Server exposes health, metrics, and simulation HTTP endpoints.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewServer creates an HTTP server with health, metrics, and v1 API routes.
func NewServer(addr string, logger *slog.Logger, metrics *observability.Metrics) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		logger:  logger,
		metrics: metrics,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("POST /v1/simulate", s.handleSimulate)
	mux.HandleFunc("GET /v1/materials", s.handleMaterials)
	mux.HandleFunc("GET /v1/cities", s.handleCities)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// handleReady reports static readiness: the estimator has no external
// dependencies to wait on, only its startup-validated tables.
func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var params domain.ImpactParameters
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		s.count("/v1/simulate", http.StatusBadRequest)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return
	}

	if params.City != "" {
		if _, ok := cities.Get(params.City); !ok {
			s.count("/v1/simulate", http.StatusBadRequest)
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown city " + strconv.Quote(params.City)})
			return
		}
	}

	start := time.Now()
	result, err := domain.Simulate(params)
	if err != nil {
		var invalid *domain.InvalidInputError
		if errors.As(err, &invalid) {
			s.metrics.InvalidInputTotal.WithLabelValues(invalid.Param).Inc()
			s.count("/v1/simulate", http.StatusBadRequest)
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": invalid.Error()})
			return
		}
		s.logger.Error("simulation failed", "error", err)
		s.count("/v1/simulate", http.StatusInternalServerError)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	s.metrics.SimulationDuration.Observe(time.Since(start).Seconds())
	s.metrics.SimulationsTotal.WithLabelValues(string(params.Material)).Inc()
	s.count("/v1/simulate", http.StatusOK)

	s.logger.Info("simulation served",
		"material", params.Material,
		"diameter_m", params.DiameterM,
		"tnt_kt", result.TNTKilotons,
	)
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleMaterials(w http.ResponseWriter, _ *http.Request) {
	s.count("/v1/materials", http.StatusOK)
	writeJSON(w, http.StatusOK, domain.Materials())
}

func (s *Server) handleCities(w http.ResponseWriter, r *http.Request) {
	s.count("/v1/cities", http.StatusOK)
	if term := r.URL.Query().Get("q"); term != "" {
		writeJSON(w, http.StatusOK, cities.Search(term))
		return
	}
	writeJSON(w, http.StatusOK, cities.All())
}

func (s *Server) count(route string, status int) {
	s.metrics.HTTPRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
