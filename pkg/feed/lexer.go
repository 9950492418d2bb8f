package feed

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// FeedLexer tokenizes pixel update lines:
//
//	100x200 e50000 @1700000000  // optional trailing comment
//
// Position must come before Color: "10x20" would otherwise lex as the hex
// run "10" followed by garbage.
var FeedLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},

	{Name: "Position", Pattern: `-?\d+x-?\d+`},
	{Name: "Stamp", Pattern: `@\d+`},
	{Name: "Color", Pattern: `#?[0-9A-Fa-f]+`},
})
