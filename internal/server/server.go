package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/agbru/polyint/internal/logging"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 3 * time.Second
)

// Server wraps the HTTP server publishing the metrics endpoint.
type Server struct {
	addr    string
	metrics *Metrics
	logger  logging.Logger
	httpSrv *http.Server
}

// New creates a metrics server bound to addr.
func New(addr string, metrics *Metrics, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	s := &Server{
		addr:    addr,
		metrics: metrics,
		logger:  logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", s.handleMetrics)
	mux.HandleFunc("/healthz", s.handleHealth)

	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// Metrics returns the server's instrument set so the application can
// record calculation observations.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start runs the server in a background goroutine and shuts it down
// when ctx is canceled. Listen errors are logged, not fatal: metrics
// are an auxiliary concern and must not abort a calculation.
func (s *Server) Start(ctx context.Context) {
	go func() {
		s.logger.Info("metrics server listening", logging.String("addr", s.addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("metrics server failed", logging.Err(err), logging.String("addr", s.addr))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("metrics server shutdown failed", logging.Err(err))
		}
	}()
}

// handleMetrics serves the Prometheus exposition endpoint. Only GET is
// allowed.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Debug("rejected metrics request",
			logging.String("method", r.Method), logging.String("remote", r.RemoteAddr))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metricsMiddleware(s.metrics.WritePrometheus)(w, r)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// metricsMiddleware tracks in-flight requests around next.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		next(w, r)
	}
}
