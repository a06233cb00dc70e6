package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/datagate"
	"github.com/aretw0/datagate/internal/logging"
	"github.com/aretw0/datagate/pkg/domain"
	"github.com/aretw0/datagate/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// APIVersion is the version of the JSON API served by this adapter.
const APIVersion = "0.1.0"

// Gate defines what the HTTP adapter needs from the validation gate.
type Gate interface {
	Run(ctx context.Context) (*domain.Report, error)
	Status() (*ports.StatusRecord, error)
}

// Server exposes a Gate over HTTP.
type Server struct {
	Gate     Gate
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// ReportResponse is the body of POST /validate.
type ReportResponse struct {
	*domain.Report
	Messages []string `json:"messages"`
}

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	Valid    bool     `json:"valid"`
	Messages []string `json:"messages"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates a new HTTP handler for the gate.
// A nil gatherer serves the default Prometheus registry.
func NewHandler(gate Gate, gatherer prometheus.Gatherer, logger *slog.Logger) http.Handler {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &Server{Gate: gate, Gatherer: gatherer, Logger: logger.With(logging.ModuleKey, "http")}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Post("/validate", s.PostValidate)
	r.Get("/status", s.GetStatus)

	return r
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":         "datagate-http",
		"version":     strings.TrimSpace(datagate.Version),
		"api_version": APIVersion,
	})
}

// PostValidate handles the POST /validate request.
// A non-conforming dataset is still a 200; only unreadable data or I/O failures are errors.
func (s *Server) PostValidate(w http.ResponseWriter, r *http.Request) {
	report, err := s.Gate.Run(r.Context())
	if err != nil {
		var loadErr *domain.DataLoadError
		status := http.StatusInternalServerError
		if errors.As(err, &loadErr) {
			status = http.StatusUnprocessableEntity
		}
		s.Logger.Error("validation failed", "error", err)
		s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
		return
	}

	messages := report.Messages()
	if messages == nil {
		messages = []string{}
	}
	s.writeJSON(w, http.StatusOK, ReportResponse{Report: report, Messages: messages})
}

// GetStatus handles the GET /status request.
func (s *Server) GetStatus(w http.ResponseWriter, r *http.Request) {
	rec, err := s.Gate.Status()
	if err != nil {
		if errors.Is(err, domain.ErrStatusNotFound) {
			s.writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		s.Logger.Error("status read failed", "error", err)
		s.writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	messages := rec.Messages
	if messages == nil {
		messages = []string{}
	}
	s.writeJSON(w, http.StatusOK, StatusResponse{Valid: rec.Valid, Messages: messages})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
