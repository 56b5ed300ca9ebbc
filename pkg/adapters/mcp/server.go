package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/problem"
	"github.com/aretw0/arbor/pkg/registry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ProblemInput carries a JSON problem document, as accepted by POST /run.
type ProblemInput struct {
	Problem string `json:"problem"`
	Seed    *int   `json:"seed,omitempty"`
}

// ExpandResult is returned by the expand tool.
type ExpandResult struct {
	Seed    int                 `json:"seed"`
	Harvest []int               `json:"harvest"`
	Tree    domain.NodeSnapshot `json:"tree"`
}

// RunResult is returned by the run tool.
type RunResult struct {
	Seeds   []int               `json:"seeds"`
	Harvest []int               `json:"harvest"`
	Paths   [][]int             `json:"paths"`
	Tree    domain.NodeSnapshot `json:"tree"`
}

// Server exposes problem evaluation as MCP tools.
type Server struct {
	registry   *registry.Registry
	logger     *slog.Logger
	nodeBudget int
	mcpServer  *server.MCPServer
}

// Option configures the Server.
type Option func(*Server)

// WithRegistry replaces the default rule registry.
func WithRegistry(reg *registry.Registry) Option {
	return func(s *Server) {
		s.registry = reg
	}
}

// WithLogger sets the logger. It must not write to stdout when serving stdio.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithNodeBudget overrides problem.DefaultMaxNodes.
func WithNodeBudget(n int) Option {
	return func(s *Server) {
		s.nodeBudget = n
	}
}

// NewServer creates a new MCP Server instance.
func NewServer(opts ...Option) *Server {
	s := &Server{
		registry:   registry.Default(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		nodeBudget: problem.DefaultMaxNodes,
		mcpServer: server.NewMCPServer("arbor-mcp", strings.TrimSpace(arbor.Version),
			server.WithToolCapabilities(false),
		),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerTools()
	return s
}

// MCPServer returns the underlying server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	problemArg := mcp.WithString("problem",
		mcp.Required(),
		mcp.Description(`JSON problem document: {"seeds": [...], "params": {...}, "grow": [...], "cut": [...], "end": {...}}`),
	)

	s.mcpServer.AddTool(mcp.NewTool("expand",
		mcp.WithDescription("Expand one seed of a problem into its full tree of candidates."),
		problemArg,
		mcp.WithNumber("seed", mcp.Description("Seed to expand (defaults to the first seed of the document)")),
	), mcp.NewStructuredToolHandler(s.handleExpand))

	s.mcpServer.AddTool(mcp.NewTool("run",
		mcp.WithDescription("Chain the seeds of a problem, committing to the first surviving candidate at each step."),
		problemArg,
	), mcp.NewStructuredToolHandler(s.handleRun))

	s.mcpServer.AddTool(mcp.NewTool("rules",
		mcp.WithDescription("List the rules a problem document may reference."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultStructuredOnly(s.registry.Catalog()), nil
	})
}

func (s *Server) compile(in ProblemInput) (*problem.Problem, *arbor.RuleSet[int], error) {
	p, err := problem.ParseJSON([]byte(in.Problem))
	if err != nil {
		return nil, nil, err
	}
	rules, err := p.Compile(s.registry, problem.CompileOptions{Logger: s.logger, MaxNodes: s.nodeBudget})
	if err != nil {
		return nil, nil, err
	}
	return p, rules, nil
}

func (s *Server) handleExpand(ctx context.Context, request mcp.CallToolRequest, in ProblemInput) (ExpandResult, error) {
	p, rules, err := s.compile(in)
	if err != nil {
		return ExpandResult{}, err
	}

	var seed int
	switch {
	case in.Seed != nil:
		seed = *in.Seed
	case len(p.Seeds) > 0:
		seed = p.Seeds[0]
	default:
		return ExpandResult{}, fmt.Errorf("expand requires a seed")
	}

	tree, err := rules.Expand(seed, p.Params)
	if err != nil {
		s.logger.Warn("MCP expand failed", "error", err)
		return ExpandResult{}, fmt.Errorf("expand failed: %w", err)
	}
	return ExpandResult{
		Seed:    seed,
		Harvest: nonNil(tree.Harvest()),
		Tree:    tree.Snapshot(),
	}, nil
}

func (s *Server) handleRun(ctx context.Context, request mcp.CallToolRequest, in ProblemInput) (RunResult, error) {
	p, rules, err := s.compile(in)
	if err != nil {
		return RunResult{}, err
	}

	root, err := rules.Run(p.Seeds, p.Params)
	if err != nil {
		s.logger.Warn("MCP run failed", "error", err)
		return RunResult{}, fmt.Errorf("run failed: %w", err)
	}

	paths := root.EnumeratePaths()
	if paths == nil {
		paths = [][]int{}
	}
	return RunResult{
		Seeds:   nonNil(p.Seeds),
		Harvest: nonNil(root.Harvest()),
		Paths:   paths,
		Tree:    root.Snapshot(),
	}, nil
}

func nonNil(xs []int) []int {
	if xs == nil {
		return []int{}
	}
	return xs
}
