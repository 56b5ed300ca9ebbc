package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the Arbor banner to w, coloured for the given profile.
func PrintBanner(w io.Writer, profile termenv.Profile, version string) {
	// A green gradient, trunk to canopy
	lines := []struct {
		text  string
		color string
	}{
		{"     _         _           ", "#bbf7d0"},
		{"    / \\   _ __| |__   ___  _ __ ", "#86efac"},
		{"   / _ \\ | '__| '_ \\ / _ \\| '__|", "#4ade80"},
		{"  / ___ \\| |  | |_) | (_) | |   ", "#22c55e"},
		{" /_/   \\_\\_|  |_.__/ \\___/|_|   ", "#16a34a"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, profile.String(l.text).Foreground(profile.Color(l.color)))
	}
	fmt.Fprintf(w, "  %s\n\n", profile.String("v"+version).Faint())
}
