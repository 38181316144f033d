package http

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"banalysis/internal/middleware/ratelimit"
	"banalysis/internal/middleware/security"
	"banalysis/internal/middleware/trace"
	"banalysis/internal/services"
	appweb "banalysis/web"
)

// Options configures the dashboard server.
type Options struct {
	Addr           string
	MaxUploadBytes int64
	RateLimitRPM   int
}

// Server serves the midata dashboard: the page itself, statement
// uploads and the partials/JSON the page refreshes from.
type Server struct {
	http.Server
	templates  *template.Template
	statements *services.StatementService

	limiter  *ratelimit.Limiter
	headers  *security.HeadersMiddleware
	detector *security.Detector
	tracer   *trace.Middleware

	maxUploadBytes int64
	started        time.Time
	shutdownOnce   sync.Once
}

// NewServer configures routes and templates, returning a ready-to-run server.
func NewServer(opts Options, statements *services.StatementService) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    opts.Addr,
			Handler: mux,
		},
		statements:     statements,
		limiter:        ratelimit.NewLimiter(ratelimit.Config{RequestsPerMinute: opts.RateLimitRPM}),
		headers:        security.NewHeadersMiddleware(security.DefaultHeadersConfig()),
		detector:       security.NewDetector(),
		tracer:         trace.NewMiddleware(extractClientIP),
		maxUploadBytes: opts.MaxUploadBytes,
		started:        time.Now(),
	}
	if s.maxUploadBytes <= 0 {
		s.maxUploadBytes = 1 << 20
	}

	// Parse embedded templates at startup.
	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600, immutable")
			static.ServeHTTP(w, r)
		}))
	} else {
		slog.Warn("Failed to mount embedded static FS", "error", err)
	}

	mux.HandleFunc("/", s.wrap(s.handleDashboard))
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/metrics", s.handleMetrics)
	mux.HandleFunc("/statements", s.wrap(s.handleStatements))
	// UI partials
	mux.HandleFunc("/ui/transactions", s.wrap(s.handleTransactionsPartial))
	mux.HandleFunc("/ui/summary", s.wrap(s.handleSummaryPartial))
	mux.HandleFunc("/chart/data", s.wrap(s.handleChartData))

	return s
}

// wrap applies tracing, security headers, suspicious-request detection
// and rate limiting (mutating methods only) around a handler.
func (s *Server) wrap(next http.HandlerFunc) http.HandlerFunc {
	guarded := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := extractClientIP(r)

		if s.detector.DetectSuspiciousRequest(r) {
			slog.WarnContext(r.Context(), "Suspicious request detected",
				"client_ip", clientIP, "method", r.Method, "path", r.URL.Path)
		}

		if r.Method == http.MethodPost || r.Method == http.MethodDelete {
			if !s.limiter.Allow(clientIP) {
				slog.WarnContext(r.Context(), "Rate limit exceeded",
					"client_ip", clientIP, "method", r.Method, "path", r.URL.Path)
				w.Header().Set("Retry-After", "60")
				http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
				return
			}
		}

		next(w, r)
	})

	chained := s.tracer.Middleware(s.headers.Middleware(guarded))
	return chained.ServeHTTP
}

// renderPartial executes a named template into a buffer so a failed
// render never leaves a half-written response.
func (s *Server) renderPartial(name string, data any) ([]byte, error) {
	if s.templates == nil {
		return nil, fmt.Errorf("templates not loaded")
	}
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	return buf.Bytes(), nil
}

// Shutdown gracefully shuts down the server and its helpers.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		if s.limiter != nil {
			s.limiter.Stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}
