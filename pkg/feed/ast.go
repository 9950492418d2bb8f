package feed

import "github.com/alecthomas/participle/v2/lexer"

// File is a whole feed: zero or more entries, newlines are insignificant.
type File struct {
	Entries []*Entry `@@*`
}

// Entry is one pixel update as written, before validation.
// Example: 100x200 e50000 @1700000000
type Entry struct {
	Pos lexer.Position

	Key   string `@Position`
	Color string `@Color`
	Stamp string `@Stamp?`
}
