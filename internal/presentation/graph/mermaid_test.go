package graph_test

import (
	"strings"
	"testing"

	"github.com/aretw0/arbor/internal/presentation/graph"
	"github.com/aretw0/arbor/pkg/domain"
	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
)

// expandTree mirrors expanding 9 with a +1/+2 branch and a "too big" cut above 10.
func expandTree() domain.NodeSnapshot {
	root := domain.NewNode(9)
	root.Add(10).MarkEnded()
	root.Add(11).Reject(domain.ComposeRejection("too big", []string{"cap"}))
	return root.Snapshot()
}

// runTree mirrors a two-stage run where the second stage is exhausted under 2.
func runTree() domain.NodeSnapshot {
	root := domain.NewRoot[int]()
	one := root.Add(1)
	one.MarkEnded()
	one.Add(5).MarkEnded()
	one.Add(6).MarkEnded()
	two := root.Add(2)
	two.MarkEnded()
	two.Reject(domain.Rejection{domain.ReasonAllChildrenRejected})
	return root.Snapshot()
}

func TestGenerateMermaid_Golden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "expand_mermaid", []byte(graph.GenerateMermaid(expandTree())))
	g.Assert(t, "run_mermaid", []byte(graph.GenerateMermaid(runTree())))
}

func TestGenerateMermaid_EscapesQuotes(t *testing.T) {
	root := domain.NewNode(`say "hi"`)
	root.Add("x").Reject(domain.Rejection{`bad "word"`})

	got := graph.GenerateMermaid(root.Snapshot())
	assert.Contains(t, got, `n0["say 'hi'"]`)
	assert.Contains(t, got, `n0 -. "bad 'word'" .-> n1`)
}

func TestGenerateMermaid_NoStatus(t *testing.T) {
	got := graph.GenerateMermaid(domain.NewNode(1).Snapshot())
	assert.Equal(t, "graph TD\n    n0[\"1\"]\n", got)
}

func TestRenderText_Golden(t *testing.T) {
	g := goldie.New(t)
	g.Assert(t, "expand_text", []byte(graph.RenderText(expandTree(), termenv.Ascii)))
	g.Assert(t, "run_text", []byte(graph.RenderText(runTree(), termenv.Ascii)))
}

func TestRenderText_Colour(t *testing.T) {
	got := graph.RenderText(expandTree(), termenv.TrueColor)
	assert.Contains(t, got, "\x1b[")
	assert.True(t, strings.HasPrefix(got, "9\n"))
}

func TestSummary_Markdown(t *testing.T) {
	s := graph.Summary{
		Title:   "demo",
		Harvest: []string{"1"},
		Paths:   [][]string{{"1", "5"}, {"1", "6"}},
		Tree:    runTree(),
	}

	md := s.Markdown()
	assert.Contains(t, md, "# demo\n")
	assert.Contains(t, md, "- Nodes: 4\n")
	assert.Contains(t, md, "- Rejected: 1\n")
	assert.Contains(t, md, "- Harvested: 1\n")
	assert.Contains(t, md, "| 2 | 1 → 6 |\n")
	assert.Contains(t, md, "└── 2 [rejected: All children are rejected]\n")

	empty := graph.Summary{Title: "none", Tree: domain.NewRoot[int]().Snapshot()}.Markdown()
	assert.Contains(t, empty, "- Harvested: none\n")
	assert.NotContains(t, empty, "## Paths")
}
