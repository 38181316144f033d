package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// handleHealth performs a basic liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	health := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"uptime":    time.Since(s.started).String(),
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(health)
}

// handleReady performs a readiness check covering everything the
// dashboard needs to serve a request.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	status := "ready"
	httpStatus := http.StatusOK
	checks := make(map[string]interface{})

	if s.templates == nil {
		checks["templates"] = "failed: templates not loaded"
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["templates"] = "ok"
	}

	if s.statements == nil {
		checks["statement_service"] = "not_configured"
		status = "not_ready"
		httpStatus = http.StatusServiceUnavailable
	} else {
		checks["statement_service"] = "ok"
	}

	response := map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
		"checks":    checks,
	}

	w.WriteHeader(httpStatus)
	_ = json.NewEncoder(w).Encode(response)
}

// handleMetrics exposes application counters in plain text.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	traceMetrics := s.tracer.GetMetrics()
	detection := s.detector.GetMetrics()

	loaded := 0
	transactions := 0
	if st, ok := s.statements.Current(); ok {
		loaded = 1
		transactions = st.Summary.Transactions
	}

	fmt.Fprintf(w, "uptime_seconds %d\n", int64(time.Since(s.started).Seconds()))
	fmt.Fprintf(w, "http_requests_total %d\n", traceMetrics.TotalRequests)
	fmt.Fprintf(w, "http_last_request_duration_ms %d\n", traceMetrics.LastDurationsMs)
	fmt.Fprintf(w, "ratelimit_active_clients %d\n", s.limiter.ActiveClients())
	fmt.Fprintf(w, "ratelimit_rejected_total %d\n", s.limiter.Rejected())
	fmt.Fprintf(w, "security_suspicious_requests_total %d\n", detection.SuspiciousRequests)
	fmt.Fprintf(w, "statement_loaded %d\n", loaded)
	fmt.Fprintf(w, "statement_transactions %d\n", transactions)
}
