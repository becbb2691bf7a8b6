package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/agbru/polyint/internal/logging"
)

// TestNewMetrics tests the Metrics constructor.
func TestNewMetrics(t *testing.T) {
	m := NewMetrics()

	if m == nil {
		t.Fatal("NewMetrics returned nil")
	}
	if m.handler == nil {
		t.Error("Metrics.handler should be initialized")
	}
}

// TestMetrics_IncrementDecrementActiveRequests tests the active requests gauge.
func TestMetrics_IncrementDecrementActiveRequests(t *testing.T) {
	m := NewMetrics()

	t.Run("IncrementActiveRequests does not panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("IncrementActiveRequests panicked: %v", r)
			}
		}()
		m.IncrementActiveRequests()
	})

	t.Run("DecrementActiveRequests does not panic", func(t *testing.T) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("DecrementActiveRequests panicked: %v", r)
			}
		}()
		m.DecrementActiveRequests()
	})
}

// TestMetrics_WritePrometheus tests the Prometheus metrics endpoint.
func TestMetrics_WritePrometheus(t *testing.T) {
	m := NewMetrics()

	m.IncrementActiveRequests()
	defer m.DecrementActiveRequests()
	m.ObserveIntegration("ring", "success", time.Millisecond)
	m.ObserveIntegration("trapezoid", "failure", 0)

	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	rec := httptest.NewRecorder()

	m.WritePrometheus(rec, req)

	body := rec.Body.String()

	t.Run("Contains active requests metric", func(t *testing.T) {
		if !strings.Contains(body, "polyint_active_requests") {
			t.Error("metrics output should contain polyint_active_requests")
		}
	})

	t.Run("Contains total requests metric", func(t *testing.T) {
		if !strings.Contains(body, "polyint_requests_total") {
			t.Error("metrics output should contain polyint_requests_total")
		}
	})

	t.Run("Contains integration counters with labels", func(t *testing.T) {
		if !strings.Contains(body, `polyint_integrations_total{backend="ring",status="success"}`) {
			t.Error("metrics output should contain the labeled integration counter")
		}
		if !strings.Contains(body, `backend="trapezoid",status="failure"`) {
			t.Error("metrics output should contain the failure counter")
		}
	})

	t.Run("Contains Go runtime metrics", func(t *testing.T) {
		if !strings.Contains(body, "go_") {
			t.Error("metrics output should contain Go runtime metrics")
		}
	})
}

// TestMetrics_ObserveIntegration only times successful runs.
func TestMetrics_ObserveIntegration(t *testing.T) {
	m := NewMetrics()
	m.ObserveIntegration("ring", "failure", time.Second)

	req := httptest.NewRequest("GET", "/metrics", http.NoBody)
	rec := httptest.NewRecorder()
	m.WritePrometheus(rec, req)

	if strings.Contains(rec.Body.String(), `polyint_integration_duration_seconds_count{backend="ring"}`) {
		t.Error("failed runs should not be observed in the duration histogram")
	}
}

// TestServer_metricsMiddleware tests the in-flight tracking middleware.
func TestServer_metricsMiddleware(t *testing.T) {
	t.Run("Next handler is called", func(t *testing.T) {
		s := New(":0", NewMetrics(), logging.NopLogger{})

		nextCalled := false
		next := func(w http.ResponseWriter, r *http.Request) {
			nextCalled = true
			w.WriteHeader(http.StatusOK)
		}

		handler := s.metricsMiddleware(next)
		req := httptest.NewRequest("GET", "/test", http.NoBody)
		rec := httptest.NewRecorder()

		handler(rec, req)

		if !nextCalled {
			t.Error("next handler was not called")
		}
		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
	})
}

// TestServer_handleMetrics tests the /metrics endpoint handler.
func TestServer_handleMetrics(t *testing.T) {
	t.Run("GET returns metrics", func(t *testing.T) {
		s := New(":0", NewMetrics(), logging.NopLogger{})

		req := httptest.NewRequest("GET", "/metrics", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleMetrics(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if !strings.Contains(rec.Body.String(), "polyint_") {
			t.Error("response should contain polyint metrics")
		}
	})

	t.Run("POST returns method not allowed", func(t *testing.T) {
		s := New(":0", NewMetrics(), logging.NopLogger{})

		req := httptest.NewRequest("POST", "/metrics", http.NoBody)
		rec := httptest.NewRecorder()

		s.handleMetrics(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
		}
	})
}

// TestServer_handleHealth tests the liveness endpoint.
func TestServer_handleHealth(t *testing.T) {
	s := New(":0", NewMetrics(), logging.NopLogger{})

	req := httptest.NewRequest("GET", "/healthz", http.NoBody)
	rec := httptest.NewRecorder()
	s.handleHealth(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec.Body.String() != "ok\n" {
		t.Errorf("body = %q, want \"ok\\n\"", rec.Body.String())
	}
}

// TestServer_StartShutdown exercises the lifecycle against a real listener.
func TestServer_StartShutdown(t *testing.T) {
	s := New("127.0.0.1:0", NewMetrics(), logging.NopLogger{})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	// Shutdown must not hang.
	cancel()
	time.Sleep(50 * time.Millisecond)
}
