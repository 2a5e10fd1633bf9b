package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"
	"github.com/strager/rgg/analyzer"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(ConfigEnv, "")

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--no-color"}, args...))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeProgram(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.rgg")
	be.Err(t, os.WriteFile(path, []byte(source), 0644), nil)
	return path
}

func TestCheckCommandSuccess(t *testing.T) {
	path := writeProgram(t, "begin x := 1 end")

	stdout, _, err := runCLI(t, "", "check", path)
	be.Err(t, err, nil)
	be.Equal(t, stdout, path+": no errors found\n")
}

func TestCheckCommandStdin(t *testing.T) {
	stdout, _, err := runCLI(t, `begin s := "a"; t := s + 1 end`, "check", "-")
	be.Err(t, err, nil)
	be.Equal(t, stdout, "<stdin>: no errors found\n")
}

func TestCheckCommandVerboseListsSymbols(t *testing.T) {
	stdout, stderr, err := runCLI(t, `begin y := "b"; x := 1 end`, "check", "--verbose", "-")
	be.Err(t, err, nil)
	be.Equal(t, stdout, "<stdin>: no errors found\n  x: Number\n  y: String\n")
	be.True(t, strings.Contains(stderr, "analysis finished"))
}

func TestCheckCommandDiagnostic(t *testing.T) {
	stdout, stderr, err := runCLI(t, "begin\n  y := z\nend", "check", "-")

	var diag *analyzer.Diagnostic
	be.True(t, errors.As(err, &diag))
	be.Equal(t, diag.Kind, analyzer.UndeclaredError)
	be.Equal(t, stdout, "")
	be.Equal(t, stderr, "line 2 in <stdin>: Variable z not defined\n")
}

func TestCheckCommandMissingFile(t *testing.T) {
	_, _, err := runCLI(t, "", "check", filepath.Join(t.TempDir(), "missing.rgg"))
	be.True(t, err != nil)
	be.True(t, errors.Is(err, os.ErrNotExist))
	be.True(t, strings.Contains(err.Error(), "failed to read"))
}

func TestCheckCommandArgs(t *testing.T) {
	_, _, err := runCLI(t, "", "check")
	be.True(t, err != nil)
}

func TestEventsCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "begin x := 1 end", "events", "-")
	be.Err(t, err, nil)
	be.Equal(t, stdout, `rggBEGIN StatementPart
rggTOKEN 'begin'
rggBEGIN StatementList
rggBEGIN Statement
rggBEGIN AssignmentStatement
rggTOKEN identifier x
rggTOKEN ':='
rggBEGIN Expression
rggBEGIN Term
rggBEGIN Factor
rggTOKEN number constant 1
rggEND Factor
rggEND Term
rggEND Expression
rggDECL x: Number
rggEND AssignmentStatement
rggEND Statement
rggEND StatementList
rggTOKEN 'end'
rggEND StatementPart
`)
}

func TestEvalCommandReportsError(t *testing.T) {
	stdout, _, err := runCLI(t, "", "eval", "begin s := \"a\"; t := s * 2 end")
	be.True(t, errors.Is(err, analyzer.ErrIncompatible))

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	be.Equal(t, lines[len(lines)-1], "rggERROR line 1 in <eval>: Invalid operation rules on variable: s")
	be.True(t, strings.Contains(stdout, "rggDECL s: String\n"))
	be.True(t, !strings.Contains(stdout, "rggDECL t"))
}

func TestEventsCommandHideTokens(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rgg.toml")
	be.Err(t, os.WriteFile(cfgPath, []byte("hide_tokens = true\n"), 0644), nil)

	stdout, _, err := runCLI(t, "begin x := 1 end", "--config", cfgPath, "events", "-")
	be.Err(t, err, nil)
	be.True(t, !strings.Contains(stdout, "rggTOKEN"))
	be.True(t, strings.Contains(stdout, "rggDECL x: Number\n"))
}

func TestTreeCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "begin x := 1 end", "tree", "-")
	be.Err(t, err, nil)
	be.Equal(t, stdout, `(StatementPart
  "begin"
  (StatementList
    (Statement
      (AssignmentStatement
        (ident "x")
        ":="
        (Expression
          (Term
            (Factor
              (number "1")))))))
  "end")
(decls
  (decl "x" Number))
`)
}

func TestTreeCommandShowsError(t *testing.T) {
	stdout, stderr, err := runCLI(t, "begin end", "tree", "-")
	be.True(t, errors.Is(err, analyzer.ErrSyntax))
	be.True(t, strings.Contains(stdout, `(error "line 1 in <stdin>: Expected token(s)`))
	be.True(t, strings.HasSuffix(stdout, "(decls)\n"))
	be.Equal(t, stderr, "line 1 in <stdin>: Expected token(s) identifier/'if'/'while'/'call'/'do'/'for' but found 'end'.\n")
}

func TestTokensCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "begin\n  x := 1.5\nend", "tokens", "-")
	be.Err(t, err, nil)
	be.Equal(t, stdout, "1\t'begin'\n2\tidentifier x\n2\t':='\n2\tnumber constant 1.5\n3\t'end'\n3\tend of file\n")
}

func TestBadConfigFails(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rgg.ini")
	be.Err(t, os.WriteFile(cfgPath, []byte("x=1"), 0644), nil)

	_, _, err := runCLI(t, "begin x := 1 end", "--config", cfgPath, "check", "-")
	be.True(t, err != nil)
	be.True(t, strings.Contains(err.Error(), "unsupported config format"))
}
