package analyzer

import (
	"fmt"

	"github.com/strager/rgg/token"
)

// Construct names passed to EnterConstruct and LeaveConstruct.
const (
	StatementPart       = "StatementPart"
	StatementList       = "StatementList"
	Statement           = "Statement"
	AssignmentStatement = "AssignmentStatement"
	IfStatement         = "IfStatement"
	WhileStatement      = "WhileStatement"
	ProcedureStatement  = "ProcedureStatement"
	UntilStatement      = "UntilStatement"
	ForStatement        = "ForStatement"
	ArgumentList        = "ArgumentList"
	Condition           = "Condition"
	ConditionalOperator = "ConditionalOperator"
	Expression          = "Expression"
	Term                = "Term"
	Factor              = "Factor"
)

// Sink receives the analyzer's structural and declaration events in the
// order they occur. EnterConstruct and LeaveConstruct calls always nest.
type Sink interface {
	EnterConstruct(name string)
	LeaveConstruct(name string)
	ConsumeTerminal(tok token.Token)
	DeclareVariable(v Variable)
	ReportError(tok token.Token, message string)
}

// NopSink discards every event.
type NopSink struct{}

func (NopSink) EnterConstruct(string) {}
func (NopSink) LeaveConstruct(string) {}
func (NopSink) ConsumeTerminal(token.Token) {}
func (NopSink) DeclareVariable(Variable) {}
func (NopSink) ReportError(token.Token, string) {}

// EventKind identifies which Sink method produced an Event.
type EventKind int

const (
	EventEnter EventKind = iota
	EventLeave
	EventTerminal
	EventDeclare
	EventError
)

func (k EventKind) String() string {
	switch k {
	case EventEnter:
		return "enter"
	case EventLeave:
		return "leave"
	case EventTerminal:
		return "terminal"
	case EventDeclare:
		return "declare"
	case EventError:
		return "error"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one recorded Sink call. Only the fields relevant to Kind are set:
// Name for enter/leave, Token for terminal/error, Variable for declare and
// Message for error.
type Event struct {
	Kind     EventKind
	Name     string
	Token    token.Token
	Variable Variable
	Message  string
}

func (e Event) String() string {
	switch e.Kind {
	case EventEnter, EventLeave:
		return e.Kind.String() + " " + e.Name
	case EventTerminal:
		return "terminal " + e.Token.String()
	case EventDeclare:
		return "declare " + e.Variable.String()
	case EventError:
		return "error " + e.Message
	default:
		return e.Kind.String()
	}
}

// Recorder is a Sink that keeps every event in order.
type Recorder struct {
	Events []Event
}

func (r *Recorder) EnterConstruct(name string) {
	r.Events = append(r.Events, Event{Kind: EventEnter, Name: name})
}

func (r *Recorder) LeaveConstruct(name string) {
	r.Events = append(r.Events, Event{Kind: EventLeave, Name: name})
}

func (r *Recorder) ConsumeTerminal(tok token.Token) {
	r.Events = append(r.Events, Event{Kind: EventTerminal, Token: tok})
}

func (r *Recorder) DeclareVariable(v Variable) {
	r.Events = append(r.Events, Event{Kind: EventDeclare, Variable: v})
}

func (r *Recorder) ReportError(tok token.Token, message string) {
	r.Events = append(r.Events, Event{Kind: EventError, Token: tok, Message: message})
}

// Declarations returns the variables declared so far, in declaration order.
func (r *Recorder) Declarations() []Variable {
	var vars []Variable
	for _, e := range r.Events {
		if e.Kind == EventDeclare {
			vars = append(vars, e.Variable)
		}
	}
	return vars
}

// Replay sends the recorded events to sink in their original order.
func (r *Recorder) Replay(sink Sink) {
	for _, e := range r.Events {
		switch e.Kind {
		case EventEnter:
			sink.EnterConstruct(e.Name)
		case EventLeave:
			sink.LeaveConstruct(e.Name)
		case EventTerminal:
			sink.ConsumeTerminal(e.Token)
		case EventDeclare:
			sink.DeclareVariable(e.Variable)
		case EventError:
			sink.ReportError(e.Token, e.Message)
		}
	}
}

type tee []Sink

// Tee returns a Sink that forwards each event to every sink in order.
func Tee(sinks ...Sink) Sink {
	return tee(sinks)
}

func (t tee) EnterConstruct(name string) {
	for _, s := range t {
		s.EnterConstruct(name)
	}
}

func (t tee) LeaveConstruct(name string) {
	for _, s := range t {
		s.LeaveConstruct(name)
	}
}

func (t tee) ConsumeTerminal(tok token.Token) {
	for _, s := range t {
		s.ConsumeTerminal(tok)
	}
}

func (t tee) DeclareVariable(v Variable) {
	for _, s := range t {
		s.DeclareVariable(v)
	}
}

func (t tee) ReportError(tok token.Token, message string) {
	for _, s := range t {
		s.ReportError(tok, message)
	}
}
