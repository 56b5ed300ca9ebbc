package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/observability"
	"github.com/aretw0/arbor/pkg/problem"
)

// Output formats accepted by --format.
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMermaid  = "mermaid"
	FormatMarkdown = "markdown"
)

// Options holds the flags shared by the evaluating commands.
type Options struct {
	File     string
	Format   string
	LogLevel string
	Debug    bool
	Params   map[string]string
	Seed     *int
	NoColor  bool
	Stderr   io.Writer
}

func (o Options) validate() error {
	switch o.Format {
	case "", FormatText, FormatJSON, FormatMermaid, FormatMarkdown:
		return nil
	default:
		return fmt.Errorf("unknown format %q (want text, json, mermaid or markdown)", o.Format)
	}
}

func (o Options) format() string {
	if o.Format == "" {
		return FormatText
	}
	return o.Format
}

// createLogger configures the application logger.
// Logs go to Stderr so that rendered output on Stdout stays clean.
func createLogger(o Options) *slog.Logger {
	if o.Debug {
		return logging.New(slog.LevelDebug, o.Stderr)
	}
	if o.LogLevel == "" {
		return logging.NewNop()
	}
	return logging.New(logging.ParseLevel(o.LogLevel), o.Stderr)
}

// loadProblem reads the problem document and applies the command-line overrides.
func loadProblem(o Options) (*problem.Problem, error) {
	if o.File == "" {
		return nil, fmt.Errorf("a problem file is required (--file)")
	}
	p, err := problem.Load(o.File)
	if err != nil {
		return nil, err
	}

	if len(o.Params) > 0 && p.Params == nil {
		p.Params = domain.Params{}
	}
	for k, v := range o.Params {
		p.Params[k] = parseParam(v)
	}
	if o.Seed != nil {
		p.Seeds = []int{*o.Seed}
	}
	return p, nil
}

// parseParam keeps integers numeric so rules can compare against them.
func parseParam(v string) any {
	if n, err := strconv.Atoi(v); err == nil {
		return n
	}
	return v
}

func compileOptions(o Options, logger *slog.Logger) problem.CompileOptions {
	opts := problem.CompileOptions{Logger: logger}
	if o.Debug {
		hooks := observability.LogHooks(logger)
		opts.Hooks = &hooks
	}
	return opts
}
