package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/muesli/termenv"
)

// RenderText draws the tree with box-drawing branches, one node per line.
// Status markers are coloured according to profile; termenv.Ascii disables colour.
func RenderText(tree domain.NodeSnapshot, profile termenv.Profile) string {
	var sb strings.Builder
	sb.WriteString(textLabel(tree, profile))
	sb.WriteString("\n")
	writeChildren(&sb, tree.Children, "", profile)
	return sb.String()
}

func writeChildren(sb *strings.Builder, kids []domain.NodeSnapshot, prefix string, profile termenv.Profile) {
	for i, c := range kids {
		branch, indent := "├── ", "│   "
		if i == len(kids)-1 {
			branch, indent = "└── ", "    "
		}
		sb.WriteString(prefix + branch + textLabel(c, profile) + "\n")
		writeChildren(sb, c.Children, prefix+indent, profile)
	}
}

func textLabel(n domain.NodeSnapshot, profile termenv.Profile) string {
	name := "(root)"
	if !n.Virtual {
		name = fmt.Sprint(n.Payload)
	}
	switch {
	case n.Rejection != nil:
		mark := profile.String("[rejected: " + n.Rejection.String() + "]").Foreground(profile.Color("#ef4444"))
		return name + " " + mark.String()
	case n.Ended:
		mark := profile.String("[ended]").Foreground(profile.Color("#22c55e"))
		return name + " " + mark.String()
	default:
		return name
	}
}
