// Package analyzer performs single-pass syntax and semantic analysis.
//
// The Analyzer walks the grammar by recursive descent with one token of
// lookahead:
//
//	StatementPart       ::= "begin" StatementList "end"
//	StatementList       ::= Statement (";" Statement)*
//	Statement           ::= AssignmentStatement | IfStatement | WhileStatement
//	                      | ProcedureStatement | UntilStatement | ForStatement
//	AssignmentStatement ::= identifier ":=" (StringConst | Expression)
//	IfStatement         ::= "if" Condition "then" StatementList
//	                        ("else" StatementList)? "end" "if"
//	WhileStatement      ::= "while" Condition "loop" StatementList "end" "loop"
//	ProcedureStatement  ::= "call" identifier "(" ArgumentList ")"
//	UntilStatement      ::= "do" StatementList "until" Condition
//	ForStatement        ::= "for" "(" AssignmentStatement ";" Condition ";"
//	                        AssignmentStatement ")" "do" StatementList "end" "loop"
//	ArgumentList        ::= identifier ("," identifier)*
//	Condition           ::= identifier ConditionalOperator
//	                        (identifier | NumberConst | StringConst)
//	ConditionalOperator ::= ">" | ">=" | "=" | "!=" | "<" | "<="
//	Expression          ::= Term (("+"|"-") Expression)?
//	Term                ::= Factor (("*"|"/") Term)?
//	Factor              ::= identifier | NumberConst | "(" Expression ")"
//
// Each nonterminal is reported to a Sink as an enter/leave pair around the
// terminals it consumes. Assignments declare variables in a SymbolTable;
// the first assignment fixes a variable's type. Analysis stops at the first
// syntax or semantic error.
package analyzer

import (
	"github.com/strager/rgg/token"
)

// Analyzer holds the state of one analysis pass: the lookahead token and the
// symbol table. It is single-use and not safe for concurrent use.
type Analyzer struct {
	name    string
	src     token.Source
	sink    Sink
	symbols *SymbolTable
	next    token.Token
}

// New returns an Analyzer reading from src. name identifies the source in
// diagnostics. A nil sink discards events.
func New(name string, src token.Source, sink Sink) *Analyzer {
	if sink == nil {
		sink = NopSink{}
	}
	return &Analyzer{
		name:    name,
		src:     src,
		sink:    sink,
		symbols: NewSymbolTable(sink),
	}
}

// Analyze runs New(name, src, sink).Analyze().
func Analyze(name string, src token.Source, sink Sink) error {
	return New(name, src, sink).Analyze()
}

// Symbols returns the analyzer's symbol table.
func (a *Analyzer) Symbols() *SymbolTable {
	return a.symbols
}

// Analyze recognizes one StatementPart followed by end of input. It returns
// nil on success or a *Diagnostic describing the first error.
func (a *Analyzer) Analyze() (err error) {
	defer func() {
		if r := recover(); r != nil {
			ab, ok := r.(abort)
			if !ok {
				panic(r)
			}
			err = ab.diag
		}
	}()

	a.next = a.src.Next()
	a.statementPart()
	if a.next.Kind != token.EOF {
		a.expected(token.EOF)
	}
	return nil
}

// accept consumes the lookahead if it has the given kind.
func (a *Analyzer) accept(kind token.Kind) {
	if a.next.Kind != kind {
		a.expected(kind)
	}
	a.sink.ConsumeTerminal(a.next)
	a.next = a.src.Next()
}

func (a *Analyzer) statementPart() {
	a.sink.EnterConstruct(StatementPart)
	a.accept(token.Begin)
	a.statementList()
	a.accept(token.End)
	a.sink.LeaveConstruct(StatementPart)
}

func (a *Analyzer) statementList() {
	a.sink.EnterConstruct(StatementList)
	a.statement()
	if a.next.Kind == token.Semicolon {
		a.accept(token.Semicolon)
		a.statementList()
	}
	a.sink.LeaveConstruct(StatementList)
}

func (a *Analyzer) statement() {
	var alternative func()
	switch a.next.Kind {
	case token.Identifier:
		alternative = a.assignmentStatement
	case token.If:
		alternative = a.ifStatement
	case token.While:
		alternative = a.whileStatement
	case token.Call:
		alternative = a.procedureStatement
	case token.Do:
		alternative = a.untilStatement
	case token.For:
		alternative = a.forStatement
	default:
		a.expected(token.Identifier, token.If, token.While, token.Call, token.Do, token.For)
	}

	a.sink.EnterConstruct(Statement)
	alternative()
	a.sink.LeaveConstruct(Statement)
}

func (a *Analyzer) assignmentStatement() {
	a.sink.EnterConstruct(AssignmentStatement)
	identifier := a.next.Text
	a.accept(token.Identifier)
	a.accept(token.Becomes)

	if a.next.Kind == token.StringConstant {
		a.accept(token.StringConstant)
		a.symbols.Declare(identifier, String)
	} else {
		a.expression()
		a.symbols.Declare(identifier, Number)
	}
	a.sink.LeaveConstruct(AssignmentStatement)
}

func (a *Analyzer) ifStatement() {
	a.sink.EnterConstruct(IfStatement)
	a.accept(token.If)
	a.condition()
	a.accept(token.Then)
	a.statementList()
	if a.next.Kind == token.Else {
		a.accept(token.Else)
		a.statementList()
	}
	a.accept(token.End)
	a.accept(token.If)
	a.sink.LeaveConstruct(IfStatement)
}

func (a *Analyzer) whileStatement() {
	a.sink.EnterConstruct(WhileStatement)
	a.accept(token.While)
	a.condition()
	a.accept(token.Loop)
	a.statementList()
	a.accept(token.End)
	a.accept(token.Loop)
	a.sink.LeaveConstruct(WhileStatement)
}

func (a *Analyzer) procedureStatement() {
	a.sink.EnterConstruct(ProcedureStatement)
	a.accept(token.Call)
	a.accept(token.Identifier)
	a.accept(token.LeftParen)
	a.argumentList()
	a.accept(token.RightParen)
	a.sink.LeaveConstruct(ProcedureStatement)
}

func (a *Analyzer) untilStatement() {
	a.sink.EnterConstruct(UntilStatement)
	a.accept(token.Do)
	a.statementList()
	a.accept(token.Until)
	a.condition()
	a.sink.LeaveConstruct(UntilStatement)
}

// forStatement removes a counter introduced by the initializer once the
// loop has been recognized. A counter declared before the loop is kept.
func (a *Analyzer) forStatement() {
	a.sink.EnterConstruct(ForStatement)
	a.accept(token.For)
	a.accept(token.LeftParen)

	counter := a.next.Text
	_, declaredBefore := a.symbols.Lookup(counter)

	a.assignmentStatement()
	a.accept(token.Semicolon)
	a.condition()
	a.accept(token.Semicolon)
	a.assignmentStatement()
	a.accept(token.RightParen)
	a.accept(token.Do)
	a.statementList()
	a.accept(token.End)
	a.accept(token.Loop)

	if !declaredBefore {
		a.symbols.Remove(counter)
	}
	a.sink.LeaveConstruct(ForStatement)
}

func (a *Analyzer) argumentList() {
	a.sink.EnterConstruct(ArgumentList)
	a.accept(token.Identifier)
	if a.next.Kind == token.Comma {
		a.accept(token.Comma)
		a.argumentList()
	}
	a.sink.LeaveConstruct(ArgumentList)
}

func (a *Analyzer) condition() {
	a.sink.EnterConstruct(Condition)
	a.accept(token.Identifier)
	a.conditionalOperator()
	switch a.next.Kind {
	case token.Identifier, token.NumberConstant, token.StringConstant:
		a.accept(a.next.Kind)
	default:
		a.expected(token.Identifier, token.NumberConstant, token.StringConstant)
	}
	a.sink.LeaveConstruct(Condition)
}

func (a *Analyzer) conditionalOperator() {
	switch a.next.Kind {
	case token.GreaterThan, token.GreaterEqual, token.Equal,
		token.NotEqual, token.LessThan, token.LessEqual:
		a.sink.EnterConstruct(ConditionalOperator)
		a.accept(a.next.Kind)
		a.sink.LeaveConstruct(ConditionalOperator)
	default:
		a.expected(token.GreaterThan, token.GreaterEqual, token.Equal,
			token.NotEqual, token.LessThan, token.LessEqual)
	}
}

// leftOperand returns the variable named by the lookahead, if the lookahead
// is a declared identifier. Expression and Term check their operators
// against this variable, not against the operand nearest the operator.
func (a *Analyzer) leftOperand() (Variable, bool) {
	if a.next.Kind != token.Identifier {
		return Variable{}, false
	}
	return a.symbols.Lookup(a.next.Text)
}

// rejectString reports a type error at the lookahead operator when the
// left operand is a String.
func (a *Analyzer) rejectString(left Variable, known bool) {
	if known && left.Type == String {
		a.report(TypeError, a.next, "Invalid operation rules on variable: "+left.Identifier)
	}
}

func (a *Analyzer) expression() {
	a.sink.EnterConstruct(Expression)
	left, known := a.leftOperand()
	a.term()

	switch a.next.Kind {
	case token.Plus:
		a.accept(token.Plus)
		a.expression()
	case token.Minus:
		a.rejectString(left, known)
		a.accept(token.Minus)
		a.expression()
	}
	a.sink.LeaveConstruct(Expression)
}

func (a *Analyzer) term() {
	a.sink.EnterConstruct(Term)
	left, known := a.leftOperand()
	a.factor()

	switch a.next.Kind {
	case token.Times, token.Divide:
		a.rejectString(left, known)
		a.accept(a.next.Kind)
		a.term()
	}
	a.sink.LeaveConstruct(Term)
}

func (a *Analyzer) factor() {
	switch a.next.Kind {
	case token.Identifier:
		a.sink.EnterConstruct(Factor)
		if _, ok := a.symbols.Lookup(a.next.Text); !ok {
			a.report(UndeclaredError, a.next, "Variable "+a.next.Text+" not defined")
		}
		a.accept(token.Identifier)
	case token.NumberConstant:
		a.sink.EnterConstruct(Factor)
		a.accept(token.NumberConstant)
	case token.LeftParen:
		a.sink.EnterConstruct(Factor)
		a.accept(token.LeftParen)
		a.expression()
		a.accept(token.RightParen)
	default:
		a.expected(token.Identifier, token.NumberConstant, token.LeftParen)
	}
	a.sink.LeaveConstruct(Factor)
}
