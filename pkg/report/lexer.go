package report

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// RowLexer splits a pin table row into pipe delimiters and the text between
// them. Blank cells produce no Text token.
var RowLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Pipe", Pattern: `\|`},
	{Name: "Text", Pattern: `[^|]+`},
})
