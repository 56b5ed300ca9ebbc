package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/internal/presentation/tui"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/aretw0/arbor/pkg/registry"
)

// Result is the outcome of one evaluation, ready for rendering.
type Result struct {
	Title   string              `json:"title"`
	Harvest []int               `json:"harvest"`
	Paths   [][]int             `json:"paths,omitempty"`
	Tree    domain.NodeSnapshot `json:"tree"`
}

// Expand builds the speculative tree of the problem's first seed and renders it to w.
func Expand(w io.Writer, o Options) error {
	res, err := evaluate(o, false)
	if err != nil {
		return err
	}
	return render(w, o, res)
}

// Run commits the problem's seeds one stage at a time and renders the committed tree to w.
func Run(w io.Writer, o Options) error {
	res, err := evaluate(o, true)
	if err != nil {
		return err
	}
	return render(w, o, res)
}

func evaluate(o Options, run bool) (*Result, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	logger := createLogger(o)

	p, err := loadProblem(o)
	if err != nil {
		return nil, err
	}
	rules, err := p.Compile(registry.Default(), compileOptions(o, logger))
	if err != nil {
		return nil, err
	}

	title := p.Name
	if title == "" {
		title = o.File
	}

	if !run {
		if len(p.Seeds) == 0 {
			return nil, fmt.Errorf("expand requires at least one seed")
		}
		tree, err := rules.Expand(p.Seeds[0], p.Params)
		if err != nil {
			return nil, fmt.Errorf("expand failed: %w", err)
		}
		return &Result{
			Title:   fmt.Sprintf("%s (expand %d)", title, p.Seeds[0]),
			Harvest: orEmpty(tree.Harvest()),
			Tree:    tree.Snapshot(),
		}, nil
	}

	root, err := rules.Run(p.Seeds, p.Params)
	if err != nil {
		return nil, fmt.Errorf("run failed: %w", err)
	}
	if root.Rejected() {
		logger.Warn("run exhausted", "reason", root.Rejection().String())
	}
	return &Result{
		Title:   fmt.Sprintf("%s (run)", title),
		Harvest: orEmpty(root.Harvest()),
		Paths:   root.EnumeratePaths(),
		Tree:    root.Snapshot(),
	}, nil
}

func render(w io.Writer, o Options, res *Result) error {
	switch o.format() {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)

	case FormatMermaid:
		_, err := io.WriteString(w, graph.GenerateMermaid(res.Tree))
		return err

	case FormatMarkdown:
		md := res.summary().Markdown()
		if isTerminal(w) && !o.NoColor {
			renderMD, err := tui.NewRenderer("", 0)
			if err != nil {
				return err
			}
			if md, err = renderMD(md); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, md)
		return err

	default:
		profile := colorProfile(w, o.NoColor)
		if _, err := io.WriteString(w, graph.RenderText(res.Tree, profile)); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "harvest: %s\n", joinInts(res.Harvest))
		return err
	}
}

func (r *Result) summary() graph.Summary {
	s := graph.Summary{Title: r.Title, Tree: r.Tree}
	for _, v := range r.Harvest {
		s.Harvest = append(s.Harvest, strconv.Itoa(v))
	}
	for _, p := range r.Paths {
		row := make([]string, len(p))
		for i, v := range p {
			row[i] = strconv.Itoa(v)
		}
		s.Paths = append(s.Paths, row)
	}
	return s
}

func joinInts(xs []int) string {
	if len(xs) == 0 {
		return "none"
	}
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}

func orEmpty(xs []int) []int {
	if xs == nil {
		return []int{}
	}
	return xs
}
