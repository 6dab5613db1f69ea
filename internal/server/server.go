// Package server exposes flow reports over HTTP.
//
// Routes:
//
//	POST /v1/report   text graph in, JSON (or text) report out
//	GET  /healthz     liveness probe
//	GET  /metrics     Prometheus exposition
//
// Every request gets an X-Request-ID (a UUID unless the client sent one) and
// one log line on completion. Reports are bounded by [Options]: node and edge
// counts, the traversal frontier, and wall-clock time.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/matzehuels/flowreach/pkg/buildinfo"
	"github.com/matzehuels/flowreach/pkg/flow"
	"github.com/matzehuels/flowreach/pkg/observability"
)

const (
	// maxBodyBytes bounds the size of a submitted graph.
	maxBodyBytes = 16 << 20

	shutdownTimeout = 5 * time.Second
	requestIDHeader = "X-Request-ID"
)

// Default request limits, used for zero Options fields.
const (
	DefaultMaxNodes      = 100_000
	DefaultMaxEdges      = 1_000_000
	DefaultFrontierLimit = 1 << 20
	DefaultTimeout       = 30 * time.Second
)

// Options configures a Server.
type Options struct {
	// Mode is the default traversal; requests may override it with ?mode=.
	Mode flow.Mode

	// MaxNodes and MaxEdges bound the header of a submitted graph. Larger
	// graphs are rejected with 413 before anything is allocated.
	MaxNodes int
	MaxEdges int

	// FrontierLimit caps the items a single traversal may enqueue; see
	// flow.WithFrontierLimit.
	FrontierLimit int

	// Timeout bounds the computation of one report.
	Timeout time.Duration
}

func (o *Options) setDefaults() {
	if o.Mode == "" {
		o.Mode = flow.ModeFrontier
	}
	if o.MaxNodes <= 0 {
		o.MaxNodes = DefaultMaxNodes
	}
	if o.MaxEdges <= 0 {
		o.MaxEdges = DefaultMaxEdges
	}
	if o.FrontierLimit <= 0 {
		o.FrontierLimit = DefaultFrontierLimit
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
}

// Server is the HTTP API. Build it with [New]; it is safe for concurrent use.
type Server struct {
	logger  *log.Logger
	metrics *Metrics
	opts    Options
	router  chi.Router
}

// New creates a server. A nil logger uses log.Default().
func New(logger *log.Logger, opts Options) *Server {
	if logger == nil {
		logger = log.Default()
	}
	opts.setDefaults()
	s := &Server{
		logger:  logger,
		metrics: NewMetrics(),
		opts:    opts,
	}
	s.router = s.routes()
	return s
}

// Metrics returns the server's collectors so they can be installed as
// observability hooks.
func (s *Server) Metrics() *Metrics { return s.metrics }

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.Recoverer)
	r.Use(s.instrument)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{}))
	r.Route("/v1", func(r chi.Router) {
		r.Post("/report", s.handleReport)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. It returns nil after a clean shutdown.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr, "version", buildinfo.Version, "mode", s.opts.Mode,
			"max_nodes", s.opts.MaxNodes, "max_edges", s.opts.MaxEdges,
			"frontier_limit", s.opts.FrontierLimit, "timeout", s.opts.Timeout)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// requestID propagates X-Request-ID or assigns a new UUID.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// instrument logs each request and reports it to the HTTP hooks.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set("Server", buildinfo.Short())

		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = "unmatched"
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, route, status, elapsed)

		s.logger.Debug("request",
			"id", middleware.GetReqID(r.Context()),
			"method", r.Method,
			"route", route,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", elapsed.Round(time.Microsecond))
	})
}
