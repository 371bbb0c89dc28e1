package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// tableGrammar is the participle grammar for a whole table.
//
//nolint:govet // participle grammar tags are not standard struct tags
type tableGrammar struct {
	Pos      lexer.Position
	Seeds    []*numberToken   `EOL* "seeds" ":" @@* EOL+`
	Sections []*sectionGrammar `@@*`
}

// sectionGrammar is one "<from>-to-<to> map:" header and its rule lines.
//
//nolint:govet // participle grammar tags are not standard struct tags
type sectionGrammar struct {
	Pos    lexer.Position
	Header string         `@Ident "map" ":" EOL+`
	Rules  []*ruleGrammar `@@*`
}

// ruleGrammar is one "dest source length" line.
//
//nolint:govet // participle grammar tags are not standard struct tags
type ruleGrammar struct {
	Pos    lexer.Position
	Dest   numberToken `@@`
	Source numberToken `@@`
	Length numberToken `@@ EOL+`
}

// numberToken keeps an integer as text plus its position, so conversion
// errors can point at the token.
//
//nolint:govet // participle grammar tags are not standard struct tags
type numberToken struct {
	Pos  lexer.Position
	Text string `@Int`
}

// tableLexer tokenizes tables. EOL is significant so that a rule is
// exactly one line of three numbers.
var tableLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z][A-Za-z0-9_-]*`},
	{Name: "Punct", Pattern: `:`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// tableParser is the participle parser for tables.
var tableParser = participle.MustBuild[tableGrammar](
	participle.Lexer(tableLexer),
	participle.Elide("Whitespace"),
)
