package sexy

import (
	"testing"

	"github.com/nalgeon/be"
)

func TestParseSymbol(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"hello", "hello"},
		{"StatementPart", "StatementPart"},
		{"test_var", "test_var"},
		{"func-name", "func-name"},
		{"+", "+"},
		{"-", "-"},
	}

	for _, test := range tests {
		result, err := Parse(test.input)
		be.Err(t, err, nil)

		be.Equal(t, result.Type, NodeSymbol)
		be.Equal(t, result.Text, test.expected)
		be.Equal(t, result.String(), test.expected)
	}
}

func TestParseString(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		output   string
	}{
		{`"hello"`, "hello", `"hello"`},
		{`":="`, ":=", `":="`},
		{`""`, "", `""`},
		{`"test\"quote"`, `test"quote`, `"test\"quote"`},
		{`"test\\backslash"`, `test\backslash`, `"test\\backslash"`},
	}

	for _, test := range tests {
		result, err := Parse(test.input)
		be.Err(t, err, nil)

		be.Equal(t, result.Type, NodeString)
		be.Equal(t, result.Text, test.expected)
		be.Equal(t, result.String(), test.output)
	}
}

func TestParseInteger(t *testing.T) {
	for _, input := range []string{"42", "0", "-123", "+456"} {
		result, err := Parse(input)
		be.Err(t, err, nil)

		be.Equal(t, result.Type, NodeInteger)
		be.Equal(t, result.Text, input)
		be.Equal(t, result.String(), input)
	}
}

func TestParseEllipsis(t *testing.T) {
	result, err := Parse("...")
	be.Err(t, err, nil)

	be.Equal(t, result.Type, NodeEllipsis)
	be.Equal(t, result.String(), "...")
}

func TestParseList(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"()", "()"},
		{"(hello)", "(hello)"},
		{"(1 2 3)", "(1 2 3)"},
		{`(Factor (number "1"))`, `(Factor (number "1"))`},
		{"(nested (list here) ...)", "(nested (list here) ...)"},
		{"(\n  spread\n    out\n)", "(spread out)"},
	}

	for _, test := range tests {
		result, err := Parse(test.input)
		be.Err(t, err, nil)

		be.Equal(t, result.Type, NodeList)
		be.Equal(t, result.String(), test.expected)
	}
}

func TestRoundTripParsing(t *testing.T) {
	tests := []string{
		"hello",
		`"world"`,
		"42",
		"...",
		"()",
		`(StatementPart "begin" (StatementList ...) "end")`,
		`(decls (decl "x" Number) (decl "y" String))`,
	}

	for _, test := range tests {
		t.Run(test, func(t *testing.T) {
			result1, err := Parse(test)
			be.Err(t, err, nil)

			output := result1.String()

			result2, err := Parse(output)
			be.Err(t, err, nil)
			be.Equal(t, result2.String(), output)
		})
	}
}

func TestParseComments(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"; comment\nhello", "hello"},
		{"hello ; trailing comment", "hello"},
		{"(test ; inline comment\n world)", "(test world)"},
	}

	for _, test := range tests {
		result, err := Parse(test.input)
		be.Err(t, err, nil)
		be.Equal(t, result.String(), test.expected)
	}
}

func TestSyntaxErrorHandling(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single dot", ".", "unexpected character '.'"},
		{"two dots", "..", "unexpected character '.'"},
		{"unknown character", "@", "unexpected character '@'"},
		{"dot within list", "(1 2 3 . 4)", "unexpected character '.'"},
		{"unterminated string", `"open`, "unterminated string"},
		{"invalid escape", `"bad \n"`, `invalid escape sequence: \n`},
		{"unclosed list", "(hello", "expected ')' but got EOF"},
		{"stray close", ")", "unexpected token: ')'"},
		{"trailing datum", "hello world", "expected EOF but got symbol"},
		{"empty input", "", "unexpected token: EOF"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result, err := Parse(test.input)
			be.True(t, err != nil)
			be.Equal(t, err.Error(), test.expected)
			be.True(t, result == nil)
		})
	}
}

func TestIndent(t *testing.T) {
	node := NewList(
		NewSymbol("Statement"),
		NewList(
			NewSymbol("AssignmentStatement"),
			NewList(NewSymbol("ident"), NewString("x")),
			NewString(":="),
		),
	)

	be.Equal(t, node.Indent(2), `(Statement
  (AssignmentStatement
    (ident "x")
    ":="))`)

	flat := NewList(NewSymbol("ident"), NewString("x"))
	be.Equal(t, flat.Indent(2), `(ident "x")`)
}

func TestNodeTypeHelpers(t *testing.T) {
	be.True(t, NewSymbol("test").IsAtom())
	be.True(t, NewString("hello").IsAtom())
	be.True(t, NewInteger("42").IsAtom())
	be.True(t, NewEllipsis().IsAtom())
	be.True(t, !NewList(NewSymbol("x")).IsAtom())

	be.Equal(t, NodeList.String(), "list")
	be.Equal(t, NodeType(99).String(), "NodeType(99)")
}
