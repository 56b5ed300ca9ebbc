package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/observability"
	"github.com/aretw0/arbor/pkg/problem"
	"github.com/aretw0/arbor/pkg/registry"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodyBytes bounds the size of a problem document.
const maxBodyBytes = 1 << 20

// Server evaluates problem documents posted over HTTP.
type Server struct {
	Registry *registry.Registry
	Logger   *slog.Logger
	Metrics  *observability.Metrics
	Gatherer prometheus.Gatherer

	// NodeBudget bounds the candidates proposed per request. Zero disables the bound.
	NodeBudget int
}

// Option configures the Server.
type Option func(*Server)

// WithRegistry replaces the default rule registry.
func WithRegistry(reg *registry.Registry) Option {
	return func(s *Server) {
		s.Registry = reg
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// WithMetrics feeds engine counters into m and serves gatherer on /metrics.
func WithMetrics(m *observability.Metrics, gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Metrics = m
		s.Gatherer = gatherer
	}
}

// WithNodeBudget overrides problem.DefaultMaxNodes.
func WithNodeBudget(n int) Option {
	return func(s *Server) {
		s.NodeBudget = n
	}
}

// NewHandler creates a new HTTP handler.
func NewHandler(opts ...Option) http.Handler {
	s := &Server{
		Registry:   registry.Default(),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		NodeBudget: problem.DefaultMaxNodes,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/rules", s.GetRules)
	r.Post("/expand", s.Expand)
	r.Post("/run", s.Run)
	if s.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

// ExpandResponse is the body returned by POST /expand.
type ExpandResponse struct {
	Seed    int                 `json:"seed"`
	Harvest []int               `json:"harvest"`
	Tree    domain.NodeSnapshot `json:"tree"`
}

// RunResponse is the body returned by POST /run.
type RunResponse struct {
	Seeds   []int               `json:"seeds"`
	Harvest []int               `json:"harvest"`
	Paths   [][]int             `json:"paths"`
	Tree    domain.NodeSnapshot `json:"tree"`
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"name":    "arbor",
		"version": arbor.Version,
	})
}

// GetRules handles GET /rules, listing the rules problem documents may reference.
func (s *Server) GetRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Registry.Catalog())
}

// Expand handles POST /expand. Only the first seed of the document is expanded.
func (s *Server) Expand(w http.ResponseWriter, r *http.Request) {
	p, rules, ok := s.compile(w, r)
	if !ok {
		return
	}
	if len(p.Seeds) == 0 {
		http.Error(w, "expand requires at least one seed", http.StatusBadRequest)
		return
	}

	tree, err := rules.Expand(p.Seeds[0], p.Params)
	if err != nil {
		s.Logger.Warn("expand failed", "error", err)
		http.Error(w, fmt.Sprintf("Expand error: %v", err), http.StatusUnprocessableEntity)
		return
	}

	writeJSON(w, http.StatusOK, ExpandResponse{
		Seed:    p.Seeds[0],
		Harvest: nonNil(tree.Harvest()),
		Tree:    tree.Snapshot(),
	})
}

// Run handles POST /run.
func (s *Server) Run(w http.ResponseWriter, r *http.Request) {
	p, rules, ok := s.compile(w, r)
	if !ok {
		return
	}

	root, err := rules.Run(p.Seeds, p.Params)
	if err != nil {
		s.Logger.Warn("run failed", "error", err)
		http.Error(w, fmt.Sprintf("Run error: %v", err), http.StatusUnprocessableEntity)
		return
	}

	paths := root.EnumeratePaths()
	if paths == nil {
		paths = [][]int{}
	}
	writeJSON(w, http.StatusOK, RunResponse{
		Seeds:   nonNil(p.Seeds),
		Harvest: nonNil(root.Harvest()),
		Paths:   paths,
		Tree:    root.Snapshot(),
	})
}

func (s *Server) compile(w http.ResponseWriter, r *http.Request) (*problem.Problem, *arbor.RuleSet[int], bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return nil, nil, false
	}

	p, err := problem.ParseJSON(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, nil, false
	}

	opts := problem.CompileOptions{Logger: s.Logger, MaxNodes: s.NodeBudget}
	if s.Metrics != nil {
		hooks := s.Metrics.Hooks()
		opts.Hooks = &hooks
	}
	rules, err := p.Compile(s.Registry, opts)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, domain.ErrUnknownRule) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return nil, nil, false
	}
	return p, rules, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func nonNil(xs []int) []int {
	if xs == nil {
		return []int{}
	}
	return xs
}
