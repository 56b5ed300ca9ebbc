package problem

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/aretw0/arbor"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/dsl"
	"github.com/aretw0/arbor/pkg/registry"
	"gopkg.in/yaml.v3"
)

// RuleRef selects a registry rule and its arguments.
type RuleRef struct {
	Rule string         `json:"rule" yaml:"rule"`
	Args map[string]any `json:"args,omitempty" yaml:"args,omitempty"`
}

// GrowRef is a grow rule entry. Name defaults to the rule name.
type GrowRef struct {
	RuleRef `yaml:",inline"`
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
}

// CutRef is a cut rule entry. Reason defaults to the rule name.
type CutRef struct {
	RuleRef `yaml:",inline"`
	Reason  string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Problem is a declarative description of one generation job over integers.
type Problem struct {
	Name   string        `json:"name,omitempty" yaml:"name,omitempty"`
	Seeds  []int         `json:"seeds" yaml:"seeds"`
	Params domain.Params `json:"params,omitempty" yaml:"params,omitempty"`
	Grow   []GrowRef     `json:"grow" yaml:"grow"`
	Cut    []CutRef      `json:"cut,omitempty" yaml:"cut,omitempty"`
	End    *RuleRef      `json:"end,omitempty" yaml:"end,omitempty"`
}

// Parse decodes a YAML (or JSON, which is valid YAML) problem document.
// Unknown keys are rejected.
func Parse(data []byte) (*Problem, error) {
	var p Problem
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidProblem, err)
	}
	return &p, nil
}

// ParseJSON decodes a JSON problem document. Unknown keys are rejected.
func ParseJSON(data []byte) (*Problem, error) {
	var p Problem
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidProblem, err)
	}
	return &p, nil
}

// Load reads and parses a problem file.
func Load(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read problem file: %w", err)
	}
	return Parse(data)
}

// DefaultMaxNodes is the node budget the network adapters apply to documents
// they receive.
const DefaultMaxNodes = 100_000

// CompileOptions tunes the RuleSet produced by Compile.
type CompileOptions struct {
	Logger *slog.Logger
	Hooks  *domain.LifecycleHooks

	// MaxNodes caps the number of candidates the grow rules may propose over
	// the lifetime of the RuleSet. Zero means unbounded.
	MaxNodes int
}

// nodeBudget is shared by every grow rule of one compiled RuleSet.
type nodeBudget struct {
	max  int64
	used atomic.Int64
}

func (b *nodeBudget) wrap(fn domain.GrowFunc[int]) domain.GrowFunc[int] {
	return func(x int, history []int, params domain.Params) ([]int, error) {
		out, err := fn(x, history, params)
		if err != nil {
			return nil, err
		}
		if b.used.Add(int64(len(out))) > b.max {
			return nil, fmt.Errorf("%w: more than %d candidates", domain.ErrNodeBudgetExceeded, b.max)
		}
		return out, nil
	}
}

// Compile resolves every rule reference against reg and builds the RuleSet.
func (p *Problem) Compile(reg *registry.Registry, opts CompileOptions) (*arbor.RuleSet[int], error) {
	b := dsl.New[int]()
	if p.Name != "" {
		b.Name(p.Name)
	}
	if opts.Logger != nil {
		b.Logger(opts.Logger)
	}
	if opts.Hooks != nil {
		b.Hooks(*opts.Hooks)
	}

	var budget *nodeBudget
	if opts.MaxNodes > 0 {
		budget = &nodeBudget{max: int64(opts.MaxNodes)}
	}

	for i, g := range p.Grow {
		fn, err := reg.Grow(g.Rule, g.Args)
		if err != nil {
			return nil, fmt.Errorf("%w: grow[%d]: %w", domain.ErrInvalidProblem, i, err)
		}
		if budget != nil {
			fn = budget.wrap(fn)
		}
		name := g.Name
		if name == "" {
			name = g.Rule
		}
		b.Grow(name, fn)
	}

	for i, c := range p.Cut {
		fn, err := reg.Cut(c.Rule, c.Args)
		if err != nil {
			return nil, fmt.Errorf("%w: cut[%d]: %w", domain.ErrInvalidProblem, i, err)
		}
		reason := c.Reason
		if reason == "" {
			reason = c.Rule
		}
		b.Cut(reason, fn)
	}

	if p.End != nil {
		fn, err := reg.End(p.End.Rule, p.End.Args)
		if err != nil {
			return nil, fmt.Errorf("%w: end: %w", domain.ErrInvalidProblem, err)
		}
		b.EndWhen(fn)
	}

	rs, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidProblem, err)
	}
	return rs, nil
}
