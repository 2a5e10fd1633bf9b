package token

import "fmt"

// Kind is the lexical category of a token.
type Kind int

const (
	// EOF is the zero Kind so that an exhausted source returning Token{}
	// reads as end of input.
	EOF Kind = iota
	Illegal

	Identifier
	NumberConstant
	StringConstant

	// Keywords
	Begin
	End
	If
	Then
	Else
	While
	Loop
	Call
	Do
	Until
	For

	// Operators and punctuation
	Becomes
	Semicolon
	Comma
	LeftParen
	RightParen
	Plus
	Minus
	Times
	Divide
	GreaterThan
	GreaterEqual
	Equal
	NotEqual
	LessThan
	LessEqual
)

var kindNames = [...]string{
	EOF:            "end of file",
	Illegal:        "illegal token",
	Identifier:     "identifier",
	NumberConstant: "number constant",
	StringConstant: "string constant",
	Begin:          "'begin'",
	End:            "'end'",
	If:             "'if'",
	Then:           "'then'",
	Else:           "'else'",
	While:          "'while'",
	Loop:           "'loop'",
	Call:           "'call'",
	Do:             "'do'",
	Until:          "'until'",
	For:            "'for'",
	Becomes:        "':='",
	Semicolon:      "';'",
	Comma:          "','",
	LeftParen:      "'('",
	RightParen:     "')'",
	Plus:           "'+'",
	Minus:          "'-'",
	Times:          "'*'",
	Divide:         "'/'",
	GreaterThan:    "'>'",
	GreaterEqual:   "'>='",
	Equal:          "'='",
	NotEqual:       "'!='",
	LessThan:       "'<'",
	LessEqual:      "'<='",
}

// String returns the name used for k in diagnostics.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("unknown token %d", int(k))
}

var keywords = map[string]Kind{
	"begin": Begin,
	"end":   End,
	"if":    If,
	"then":  Then,
	"else":  Else,
	"while": While,
	"loop":  Loop,
	"call":  Call,
	"do":    Do,
	"until": Until,
	"for":   For,
}

// Lookup returns the keyword kind for word, or Identifier if word is not a
// keyword.
func Lookup(word string) Kind {
	if k, ok := keywords[word]; ok {
		return k
	}
	return Identifier
}

// Token is a classified lexeme together with the line it started on.
type Token struct {
	Kind Kind
	Text string
	Line int
}

func (t Token) String() string {
	switch t.Kind {
	case Identifier, NumberConstant:
		return fmt.Sprintf("%s %s", t.Kind, t.Text)
	case StringConstant:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	case Illegal:
		return fmt.Sprintf("%s %q", t.Kind, t.Text)
	default:
		return t.Kind.String()
	}
}

// Source produces one token per call. Once the input is exhausted it keeps
// returning EOF tokens.
type Source interface {
	Next() Token
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func() Token

func (f SourceFunc) Next() Token {
	return f()
}

// SliceSource replays a fixed sequence of tokens.
type SliceSource struct {
	tokens []Token
	pos    int
}

func NewSliceSource(tokens ...Token) *SliceSource {
	return &SliceSource{tokens: tokens}
}

func (s *SliceSource) Next() Token {
	if s.pos < len(s.tokens) {
		tok := s.tokens[s.pos]
		s.pos++
		return tok
	}
	line := 1
	if len(s.tokens) > 0 {
		line = s.tokens[len(s.tokens)-1].Line
	}
	return Token{Kind: EOF, Line: line}
}

// Collect drains src, returning every token up to and including the first
// EOF.
func Collect(src Source) []Token {
	var tokens []Token
	for {
		tok := src.Next()
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			return tokens
		}
	}
}
