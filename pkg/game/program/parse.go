package program

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Script grammar:
//
//	MOVE MOVE TURN_L
//	LOOP 3 { MOVE LIGHT }
//	IF red { JUMP }
//
// Keywords are case-insensitive, ';' separators are optional and '#' or '//'
// start a comment. A color may be spelled like a command ("IF light { MOVE }")
// and keeps its case.
type script struct {
	Blocks []*scriptBlock `parser:"@@*"`
}

type scriptBlock struct {
	Loop    *scriptLoop `parser:"  @@"`
	If      *scriptIf   `parser:"| @@"`
	Command *string     `parser:"| @Command"`
}

type scriptLoop struct {
	Iterations int            `parser:"'LOOP' @Int"`
	Body       []*scriptBlock `parser:"'{' @@* '}'"`
}

type scriptIf struct {
	Color string         `parser:"'IF' @(Ident | Command)"`
	Body  []*scriptBlock `parser:"'{' @@* '}'"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `(#|//)[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s;]+`},
	{Name: "Command", Pattern: commandPattern()},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
	{Name: "Punct", Pattern: `[{}]`},
})

func commandPattern() string {
	names := make([]string, 0, len(Commands()))
	for _, c := range Commands() {
		names = append(names, string(c))
	}
	return `(?i)(` + strings.Join(names, "|") + `)\b`
}

var scriptParser = participle.MustBuild[script](
	participle.Lexer(scriptLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.CaseInsensitive("Ident"),
)

// Parse builds a program from its script form. Every block gets a fresh id.
func Parse(src string) (Program, error) {
	s, err := scriptParser.ParseString("program", src)
	if err != nil {
		return nil, fmt.Errorf("parse program: %w", err)
	}
	return convert(s.Blocks), nil
}

func convert(blocks []*scriptBlock) Program {
	out := make(Program, 0, len(blocks))
	for _, b := range blocks {
		switch {
		case b.Loop != nil:
			out = append(out, NewLoop(b.Loop.Iterations, convert(b.Loop.Body)...))
		case b.If != nil:
			out = append(out, NewIfColor(b.If.Color, convert(b.If.Body)...))
		case b.Command != nil:
			out = append(out, NewCommand(Command(strings.ToUpper(*b.Command))))
		}
	}
	return out
}

// Format renders a program in script form, one block per line
func Format(p Program) string {
	var sb strings.Builder
	format(&sb, p, 0)
	return sb.String()
}

func format(sb *strings.Builder, p Program, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, b := range p {
		if b == nil {
			continue
		}
		switch b.Type {
		case TypeLoop:
			fmt.Fprintf(sb, "%sLOOP %d {\n", indent, b.Iterations)
			format(sb, b.Children, depth+1)
			fmt.Fprintf(sb, "%s}\n", indent)
		case TypeIfColor:
			fmt.Fprintf(sb, "%sIF %s {\n", indent, b.ConditionColor)
			format(sb, b.Children, depth+1)
			fmt.Fprintf(sb, "%s}\n", indent)
		default:
			fmt.Fprintf(sb, "%s%s\n", indent, b.Command)
		}
	}
}
