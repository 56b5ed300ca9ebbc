package tui

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer("notty", 80)
	require.NoError(t, err)

	out, err := render("# Report\n\n- Harvested: 10\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Report")
	assert.Contains(t, out, "Harvested: 10")
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, termenv.Ascii, "1.2.3")

	assert.Contains(t, buf.String(), "v1.2.3")
	assert.NotContains(t, buf.String(), "\x1b[")
}
