package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/muesli/termenv"
)

// Summary is the input of a markdown run report.
type Summary struct {
	Title   string
	Harvest []string
	Paths   [][]string
	Tree    domain.NodeSnapshot
}

// Markdown renders the summary as a markdown document.
func (s Summary) Markdown() string {
	nodes, rejected := 0, 0
	var count func(n domain.NodeSnapshot)
	count = func(n domain.NodeSnapshot) {
		if !n.Virtual {
			nodes++
		}
		if n.Rejection != nil {
			rejected++
		}
		for _, c := range n.Children {
			count(c)
		}
	}
	count(s.Tree)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# %s\n\n", s.Title))
	sb.WriteString(fmt.Sprintf("- Nodes: %d\n", nodes))
	sb.WriteString(fmt.Sprintf("- Rejected: %d\n", rejected))
	if len(s.Harvest) == 0 {
		sb.WriteString("- Harvested: none\n")
	} else {
		sb.WriteString(fmt.Sprintf("- Harvested: %s\n", strings.Join(s.Harvest, ", ")))
	}

	if len(s.Paths) > 0 {
		sb.WriteString("\n## Paths\n\n| # | Path |\n| - | ---- |\n")
		for i, p := range s.Paths {
			sb.WriteString(fmt.Sprintf("| %d | %s |\n", i+1, strings.Join(p, " → ")))
		}
	}

	sb.WriteString("\n## Tree\n\n```text\n")
	sb.WriteString(RenderText(s.Tree, termenv.Ascii))
	sb.WriteString("```\n")
	return sb.String()
}
