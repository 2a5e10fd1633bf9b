package main

import (
	"strings"

	"github.com/strager/rgg/analyzer"
	"github.com/strager/rgg/sexy"
	"github.com/strager/rgg/token"
)

// BuildTree folds an event stream into an S-expression with one list per
// construct. Terminals appear in the list of the construct that consumed
// them. If analysis stopped early, an (error "...") item is placed where
// the walk stopped and every open construct is closed.
func BuildTree(events []analyzer.Event) *sexy.Node {
	var root *sexy.Node
	var stack []*sexy.Node

	attach := func(n *sexy.Node) {
		if len(stack) == 0 {
			if root == nil {
				root = n
			} else {
				root.Items = append(root.Items, n)
			}
			return
		}
		top := stack[len(stack)-1]
		top.Items = append(top.Items, n)
	}
	pop := func() {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		attach(n)
	}

	for _, e := range events {
		switch e.Kind {
		case analyzer.EventEnter:
			stack = append(stack, sexy.NewList(sexy.NewSymbol(e.Name)))
		case analyzer.EventLeave:
			pop()
		case analyzer.EventTerminal:
			attach(terminalNode(e.Token))
		case analyzer.EventError:
			attach(sexy.NewList(sexy.NewSymbol("error"), sexy.NewString(e.Message)))
		}
	}
	for len(stack) > 0 {
		pop()
	}
	return root
}

func terminalNode(tok token.Token) *sexy.Node {
	switch tok.Kind {
	case token.Identifier:
		return sexy.NewList(sexy.NewSymbol("ident"), sexy.NewString(tok.Text))
	case token.NumberConstant:
		return sexy.NewList(sexy.NewSymbol("number"), sexy.NewString(tok.Text))
	case token.StringConstant:
		return sexy.NewList(sexy.NewSymbol("string"), sexy.NewString(tok.Text))
	}
	if tok.Text != "" {
		return sexy.NewString(tok.Text)
	}
	return sexy.NewString(strings.Trim(tok.Kind.String(), "'"))
}

// DeclsTree renders variables as (<head> (decl "x" Number) ...).
func DeclsTree(head string, vars []analyzer.Variable) *sexy.Node {
	items := []*sexy.Node{sexy.NewSymbol(head)}
	for _, v := range vars {
		items = append(items, sexy.NewList(
			sexy.NewSymbol("decl"),
			sexy.NewString(v.Identifier),
			sexy.NewSymbol(v.Type.String()),
		))
	}
	return sexy.NewList(items...)
}
