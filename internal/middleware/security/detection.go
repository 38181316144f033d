package security

import (
	"net/http"
	"strings"
	"sync/atomic"
)

// DetectionMetrics tracks security detection events.
type DetectionMetrics struct {
	SuspiciousRequests int64
}

// Detector flags requests matching common probe patterns. Flagged
// requests are logged and counted, not blocked.
type Detector struct {
	metrics *DetectionMetrics
}

// NewDetector creates a security detector.
func NewDetector() *Detector {
	return &Detector{metrics: &DetectionMetrics{}}
}

// suspiciousPatterns are probe strings that never appear in legitimate
// dashboard traffic.
var suspiciousPatterns = []string{
	"../", "..\\", ".env", "wp-admin", "phpmyadmin",
	"config.php", ".git", ".ssh",
	"eval(", "javascript:", "<script", "union select",
	"etc/passwd", "cmd.exe",
}

// DetectSuspiciousRequest analyzes request patterns for potential threats.
func (d *Detector) DetectSuspiciousRequest(r *http.Request) bool {
	path := strings.ToLower(r.URL.Path)
	query := strings.ToLower(r.URL.RawQuery)

	for _, pattern := range suspiciousPatterns {
		if strings.Contains(path, pattern) || strings.Contains(query, pattern) {
			atomic.AddInt64(&d.metrics.SuspiciousRequests, 1)
			return true
		}
	}
	return false
}

// GetMetrics returns a snapshot of detection counters.
func (d *Detector) GetMetrics() DetectionMetrics {
	return DetectionMetrics{
		SuspiciousRequests: atomic.LoadInt64(&d.metrics.SuspiciousRequests),
	}
}
