// Package lexer turns source text into the tokens consumed by the analyzer.
package lexer

import "github.com/strager/rgg/token"

// Lexer scans a null-terminated copy of its input one token at a time.
type Lexer struct {
	input []byte
	pos   int // current reading position in input
	line  int
}

// New returns a lexer over input. A trailing 0 byte is appended if input
// does not already end with one.
func New(input []byte) *Lexer {
	if len(input) == 0 || input[len(input)-1] != 0 {
		buf := make([]byte, len(input)+1)
		copy(buf, input)
		input = buf
	}
	return &Lexer{input: input, line: 1}
}

// Next scans and returns the next token. After the end of input every call
// returns an EOF token.
func (l *Lexer) Next() token.Token {
	l.skipWhitespace()

	c := l.input[l.pos]
	line := l.line

	switch {
	case c == 0:
		return token.Token{Kind: token.EOF, Line: line}

	case c == '/' && l.input[l.pos+1] == '/':
		l.skipLineComment()
		return l.Next()

	case c == ':':
		if l.input[l.pos+1] == '=' {
			return l.emit(token.Becomes, 2)
		}
		return l.emit(token.Illegal, 1)

	case c == '>':
		if l.input[l.pos+1] == '=' {
			return l.emit(token.GreaterEqual, 2)
		}
		return l.emit(token.GreaterThan, 1)

	case c == '<':
		if l.input[l.pos+1] == '=' {
			return l.emit(token.LessEqual, 2)
		}
		return l.emit(token.LessThan, 1)

	case c == '!':
		if l.input[l.pos+1] == '=' {
			return l.emit(token.NotEqual, 2)
		}
		return l.emit(token.Illegal, 1)

	case c == '=':
		return l.emit(token.Equal, 1)
	case c == ';':
		return l.emit(token.Semicolon, 1)
	case c == ',':
		return l.emit(token.Comma, 1)
	case c == '(':
		return l.emit(token.LeftParen, 1)
	case c == ')':
		return l.emit(token.RightParen, 1)
	case c == '+':
		return l.emit(token.Plus, 1)
	case c == '-':
		return l.emit(token.Minus, 1)
	case c == '*':
		return l.emit(token.Times, 1)
	case c == '/':
		return l.emit(token.Divide, 1)

	case c == '"':
		lit, ok := l.readString()
		if !ok {
			return token.Token{Kind: token.Illegal, Text: lit, Line: line}
		}
		return token.Token{Kind: token.StringConstant, Text: lit, Line: line}

	case isLetter(c):
		lit := l.readIdentifier()
		return token.Token{Kind: token.Lookup(lit), Text: lit, Line: line}

	case isDigit(c):
		return token.Token{Kind: token.NumberConstant, Text: l.readNumber(), Line: line}

	default:
		return l.emit(token.Illegal, 1)
	}
}

func (l *Lexer) emit(kind token.Kind, width int) token.Token {
	tok := token.Token{
		Kind: kind,
		Text: string(l.input[l.pos : l.pos+width]),
		Line: l.line,
	}
	l.pos += width
	return tok
}

func (l *Lexer) skipWhitespace() {
	for {
		switch l.input[l.pos] {
		case '\n':
			l.line++
		case ' ', '\t', '\r':
		default:
			return
		}
		l.pos++
	}
}

func (l *Lexer) skipLineComment() {
	for l.input[l.pos] != '\n' && l.input[l.pos] != 0 {
		l.pos++
	}
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func (l *Lexer) readIdentifier() string {
	start := l.pos
	for isLetter(l.input[l.pos]) || isDigit(l.input[l.pos]) {
		l.pos++
	}
	return string(l.input[start:l.pos])
}

func (l *Lexer) readNumber() string {
	start := l.pos
	for isDigit(l.input[l.pos]) {
		l.pos++
	}
	if l.input[l.pos] == '.' && isDigit(l.input[l.pos+1]) {
		l.pos++
		for isDigit(l.input[l.pos]) {
			l.pos++
		}
	}
	return string(l.input[start:l.pos])
}

// readString consumes a double-quoted string. Strings may not span lines;
// ok is false if the closing quote is missing, in which case lit holds the
// text scanned so far including the opening quote.
func (l *Lexer) readString() (lit string, ok bool) {
	l.pos++ // skip opening "
	start := l.pos
	for l.input[l.pos] != '"' {
		if l.input[l.pos] == 0 || l.input[l.pos] == '\n' {
			return string(l.input[start-1 : l.pos]), false
		}
		l.pos++
	}
	lit = string(l.input[start:l.pos])
	l.pos++
	return lit, true
}
