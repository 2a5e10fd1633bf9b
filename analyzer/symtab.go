package analyzer

import (
	"fmt"
	"sort"
)

// Type is the inferred type of a variable.
type Type int

const (
	Number Type = iota
	String
)

func (t Type) String() string {
	switch t {
	case Number:
		return "Number"
	case String:
		return "String"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Variable is a declared identifier and the type fixed by its first
// assignment.
type Variable struct {
	Identifier string
	Type       Type
}

func (v Variable) String() string {
	return v.Identifier + ": " + v.Type.String()
}

// SymbolTable maps identifiers to variables in a single flat namespace.
type SymbolTable struct {
	variables map[string]Variable
	sink      Sink
}

// NewSymbolTable returns an empty table that reports declarations to sink.
func NewSymbolTable(sink Sink) *SymbolTable {
	if sink == nil {
		sink = NopSink{}
	}
	return &SymbolTable{
		variables: make(map[string]Variable),
		sink:      sink,
	}
}

// Declare records identifier with typ unless it is already declared, in
// which case the existing entry and its type are kept. It reports whether a
// new entry was created.
func (st *SymbolTable) Declare(identifier string, typ Type) bool {
	if _, exists := st.variables[identifier]; exists {
		return false
	}
	v := Variable{Identifier: identifier, Type: typ}
	st.variables[identifier] = v
	st.sink.DeclareVariable(v)
	return true
}

func (st *SymbolTable) Lookup(identifier string) (Variable, bool) {
	v, ok := st.variables[identifier]
	return v, ok
}

// Remove deletes identifier whether or not it is declared.
func (st *SymbolTable) Remove(identifier string) {
	delete(st.variables, identifier)
}

func (st *SymbolTable) Len() int {
	return len(st.variables)
}

// Variables returns the declared variables sorted by identifier.
func (st *SymbolTable) Variables() []Variable {
	vars := make([]Variable, 0, len(st.variables))
	for _, v := range st.variables {
		vars = append(vars, v)
	}
	sort.Slice(vars, func(i, j int) bool {
		return vars[i].Identifier < vars[j].Identifier
	})
	return vars
}
