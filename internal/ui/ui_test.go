package ui

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func withColor(t *testing.T, enabled bool) {
	t.Helper()
	orig := color.NoColor
	SetColor(enabled)
	t.Cleanup(func() { color.NoColor = orig })
}

func TestHighlightMDX_NoColor(t *testing.T) {
	withColor(t, false)

	mdx := "SELECT {[Measures].[Amount]} ON COLUMNS, [Time].[2020] ON ROWS FROM [Sales]"
	assert.Equal(t, mdx, HighlightMDX(mdx))
}

func TestHighlightMDX_Color(t *testing.T) {
	withColor(t, true)

	mdx := "SELECT Hierarchize(Union([Time].[2020], [Time].[2021])) ON COLUMNS"
	out := HighlightMDX(mdx)

	assert.NotEqual(t, mdx, out)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "Hierarchize")
	assert.Contains(t, out, "[2021]")
}

func TestDiff(t *testing.T) {
	out := Diff("a\nb", "a\nc\nd")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	assert.Len(t, lines, 4)
	assert.Equal(t, "  a", lines[0])
	assert.Contains(t, lines[1], "- b")
	assert.Contains(t, lines[2], "+ c")
	assert.Contains(t, lines[3], "+ d")
}
