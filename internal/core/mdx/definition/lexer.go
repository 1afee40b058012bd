package definition

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// QueryLexer defines the token types of the query definition language.
var QueryLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `(?:#|//)[^\n]*`},

	// Literals
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "Member", Pattern: `\[(?:[^\]]|\]\])*\](?:\.&?\[(?:[^\]]|\]\])*\])*`},
	{Name: "Number", Pattern: `-?\d+`},

	// Keywords (matched case-insensitively by the parser)
	{Name: "Keyword", Pattern: `(?i:\b(?:version|cube|non|empty|drillthrough|maxrows|firstrowset|on|columns|rows|where|member|as)\b)`},

	// Punctuation
	{Name: "Comma", Pattern: `,`},

	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})
