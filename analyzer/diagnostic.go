package analyzer

import (
	"errors"
	"fmt"
	"strings"

	"github.com/strager/rgg/token"
)

var (
	ErrSyntax       = errors.New("syntax error")
	ErrUndeclared   = errors.New("undeclared variable")
	ErrIncompatible = errors.New("incompatible operand type")
)

// ErrorKind classifies a Diagnostic.
type ErrorKind int

const (
	SyntaxError ErrorKind = iota
	UndeclaredError
	TypeError
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case UndeclaredError:
		return "undeclared variable"
	case TypeError:
		return "type error"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Diagnostic is the first error found by an analysis. Message already
// carries the "line N in <source>:" prefix.
type Diagnostic struct {
	Kind    ErrorKind
	Message string
	Line    int
	Token   token.Token
}

func (d *Diagnostic) Error() string {
	return d.Message
}

func (d *Diagnostic) Unwrap() error {
	switch d.Kind {
	case UndeclaredError:
		return ErrUndeclared
	case TypeError:
		return ErrIncompatible
	default:
		return ErrSyntax
	}
}

// abort carries a Diagnostic up the recursive descent to Analyze.
type abort struct {
	diag *Diagnostic
}

// report sends message to the sink and unwinds the walk. It never returns.
func (a *Analyzer) report(kind ErrorKind, tok token.Token, explanation string) {
	msg := fmt.Sprintf("line %d in %s: %s", tok.Line, a.name, explanation)
	a.sink.ReportError(tok, msg)
	panic(abort{&Diagnostic{
		Kind:    kind,
		Message: msg,
		Line:    tok.Line,
		Token:   tok,
	}})
}

// expected reports a syntax error naming the acceptable kinds and the kind
// actually found at the lookahead.
func (a *Analyzer) expected(kinds ...token.Kind) {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	a.report(SyntaxError, a.next, fmt.Sprintf("Expected token(s) %s but found %s.",
		strings.Join(names, "/"), a.next.Kind))
}
