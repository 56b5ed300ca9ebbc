package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart syntax string from a tree snapshot.
// Nodes are numbered in pre-order. It applies semantic styling:
// - Virtual root: ((Circle))
// - Ended: ([Stadium])
// - Default: [Rectangle]
// Edges into rejected nodes are dotted and labelled with the rejection reasons.
func GenerateMermaid(tree domain.NodeSnapshot) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	var ended, rejected []string
	next := 0
	var visit func(n domain.NodeSnapshot, parent string)
	visit = func(n domain.NodeSnapshot, parent string) {
		id := fmt.Sprintf("n%d", next)
		next++

		opener, closer := "[", "]"
		switch {
		case n.Virtual:
			opener, closer = "((", "))"
		case n.Ended && n.Rejection == nil:
			opener, closer = "([", "])"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, label(n), closer))

		if parent != "" {
			arrow := "-->"
			if n.Rejection != nil {
				arrow = fmt.Sprintf("-. \"%s\" .->", escape(n.Rejection.String()))
			}
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", parent, arrow, id))
		}

		switch {
		case n.Rejection != nil:
			rejected = append(rejected, id)
		case n.Ended:
			ended = append(ended, id)
		}

		for _, c := range n.Children {
			visit(c, id)
		}
	}
	visit(tree, "")

	if len(ended)+len(rejected) > 0 {
		sb.WriteString("\n    %% Status Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme
		sb.WriteString("    classDef ended fill:#dcfce7,stroke:#15803d,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef rejected fill:#fee2e2,stroke:#b91c1c,stroke-dasharray:4 2,color:#000;\n")
		for _, id := range ended {
			sb.WriteString(fmt.Sprintf("    class %s ended;\n", id))
		}
		for _, id := range rejected {
			sb.WriteString(fmt.Sprintf("    class %s rejected;\n", id))
		}
	}

	return sb.String()
}

func label(n domain.NodeSnapshot) string {
	if n.Virtual {
		return " "
	}
	return escape(fmt.Sprint(n.Payload))
}

// escape replaces double quotes, which would terminate a Mermaid label.
func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
