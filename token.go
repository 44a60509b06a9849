package mathparse

import (
	"strconv"
	"strings"
)

// Token is a classified element of an expression.
type Token struct {
	// Text is the token as it appeared in the token sequence.
	Text string
	// Kind is the token's class.
	Kind TokenKind
	// Pos is the index of the token in the sequence it was read from.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the class of a token.
type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenInt is an integer literal.
	TokenInt
	// TokenFloat is a literal with a decimal point.
	TokenFloat
	// TokenConstant is a named constant, e.g. pi.
	TokenConstant
	// TokenBinary is a binary operator, including the decimal point.
	TokenBinary
	// TokenUnary is a function of one argument.
	TokenUnary
	// TokenOpen is an open parenthesis.
	TokenOpen
	// TokenClose is a close parenthesis.
	TokenClose
)

var tokenKindNames = [...]string{
	TokenNone:     "None",
	TokenInt:      "Int",
	TokenFloat:    "Float",
	TokenConstant: "Constant",
	TokenBinary:   "Binary",
	TokenUnary:    "Unary",
	TokenOpen:     "Open",
	TokenClose:    "Close",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Postfix is a token sequence in postfix order.
type Postfix []Token

// String formats the sequence as space-separated token text.
func (p Postfix) String() string {
	var b strings.Builder
	for i, t := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}
