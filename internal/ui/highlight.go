package ui

import (
	"regexp"

	"github.com/fatih/color"
)

var (
	keywordColor  = color.New(color.FgCyan, color.Bold)
	functionColor = color.New(color.FgYellow)
	memberColor   = color.New(color.FgGreen)

	mdxToken = regexp.MustCompile(
		`\[(?:[^\]]|\]\])*\]` +
			`|\b(?:WITH|MEMBER|AS|DRILLTHROUGH|MAXROWS|FIRSTROWSET|SELECT|NON EMPTY|ON|COLUMNS|ROWS|FROM|WHERE)\b` +
			`|\b(?:Union|Crossjoin|Hierarchize)\b`,
	)
)

// HighlightMDX colors keywords, set functions and bracketed names of an MDX
// statement. It returns the input unchanged when color is disabled.
func HighlightMDX(mdx string) string {
	if color.NoColor {
		return mdx
	}

	return mdxToken.ReplaceAllStringFunc(mdx, func(tok string) string {
		switch {
		case tok[0] == '[':
			return memberColor.Sprint(tok)
		case tok == "Union" || tok == "Crossjoin" || tok == "Hierarchize":
			return functionColor.Sprint(tok)
		default:
			return keywordColor.Sprint(tok)
		}
	})
}

// SetColor enables or disables colored output globally.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}
