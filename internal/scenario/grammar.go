package scenario

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// A scenario file is five labelled lines:
//
//	1: 5 5
//	2: 1 2 N
//	3: 3 3 E
//	4: LMLMLMLMM
//	5: M M R M M R M R R M
//
// Commands may be contiguous or space separated. Blank lines and # comments
// are ignored.
type file struct {
	Table  *sizeLine    `parser:"EOL* @@ EOL+"`
	RobotA *startLine   `parser:"@@ EOL+"`
	RobotB *startLine   `parser:"@@ EOL+"`
	CmdsA  *commandLine `parser:"@@ EOL+"`
	CmdsB  *commandLine `parser:"@@ EOL*"`
}

type sizeLine struct {
	Pos    lexer.Position
	Label  string `parser:"@Label"`
	Width  int    `parser:"@Int"`
	Height int    `parser:"@Int"`
}

type startLine struct {
	Pos         lexer.Position
	Label       string `parser:"@Label"`
	X           int    `parser:"@Int"`
	Y           int    `parser:"@Int"`
	Orientation string `parser:"@Ident"`
}

type commandLine struct {
	Pos   lexer.Position
	Label string  `parser:"@Label"`
	Words []*word `parser:"@@*"`
}

type word struct {
	Pos  lexer.Position
	Text string `parser:"@Ident"`
}

var scenarioLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Label", Pattern: `[0-9]+:`},
	{Name: "Int", Pattern: `-?[0-9]+`},
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

var parser = participle.MustBuild[file](
	participle.Lexer(scenarioLexer),
	participle.Elide("Whitespace", "Comment"),
)
