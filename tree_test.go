package main

import (
	"testing"

	"github.com/nalgeon/be"
	"github.com/strager/rgg/analyzer"
	"github.com/strager/rgg/lexer"
	"github.com/strager/rgg/token"
)

func recordEvents(t *testing.T, source string) (*analyzer.Recorder, error) {
	t.Helper()
	rec := &analyzer.Recorder{}
	err := analyzer.Analyze("input", lexer.New([]byte(source)), rec)
	return rec, err
}

func TestBuildTree(t *testing.T) {
	rec, err := recordEvents(t, `begin call show(a, b) end`)
	be.Err(t, err, nil)

	be.Equal(t, BuildTree(rec.Events).String(),
		`(StatementPart "begin" (StatementList (Statement (ProcedureStatement "call" (ident "show") "(" (ArgumentList (ident "a") "," (ArgumentList (ident "b"))) ")"))) "end")`)
}

func TestBuildTreeClosesOpenConstructs(t *testing.T) {
	rec, err := recordEvents(t, `begin x := (1 end`)
	be.True(t, err != nil)

	be.Equal(t, BuildTree(rec.Events).String(),
		`(StatementPart "begin" (StatementList (Statement (AssignmentStatement (ident "x") ":=" (Expression (Term (Factor "(" (Expression (Term (Factor (number "1")))) (error "line 1 in input: Expected token(s) ')' but found 'end'."))))))))`)
}

func TestBuildTreeErrorAfterStatementPart(t *testing.T) {
	rec, err := recordEvents(t, `begin x := 1 end end`)
	be.True(t, err != nil)

	tree := BuildTree(rec.Events)
	last := tree.Items[len(tree.Items)-1]
	be.Equal(t, last.String(), `(error "line 1 in input: Expected token(s) end of file but found 'end'.")`)
}

func TestBuildTreeEmpty(t *testing.T) {
	be.True(t, BuildTree(nil) == nil)
}

func TestBuildTreeTokenWithoutText(t *testing.T) {
	rec := &analyzer.Recorder{}
	err := analyzer.Analyze("input", token.NewSliceSource(
		token.Token{Kind: token.Begin, Line: 1},
		token.Token{Kind: token.Identifier, Text: "x", Line: 1},
		token.Token{Kind: token.Becomes, Line: 1},
		token.Token{Kind: token.StringConstant, Text: "s", Line: 1},
		token.Token{Kind: token.End, Line: 1},
	), rec)
	be.Err(t, err, nil)

	be.Equal(t, BuildTree(rec.Events).String(),
		`(StatementPart "begin" (StatementList (Statement (AssignmentStatement (ident "x") ":=" (string "s")))) "end")`)
}

func TestDeclsTree(t *testing.T) {
	vars := []analyzer.Variable{
		{Identifier: "n", Type: analyzer.Number},
		{Identifier: "s", Type: analyzer.String},
	}
	be.Equal(t, DeclsTree("decls", vars).String(), `(decls (decl "n" Number) (decl "s" String))`)
	be.Equal(t, DeclsTree("symbols", nil).String(), "(symbols)")
}
