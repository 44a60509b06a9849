package mathparse

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// precedence is the binding strength of each operator. Functions bind more
// tightly than any operator, and the open parenthesis is a barrier.
var precedence = map[string]int{
	".": 5,
	"*": 4,
	"/": 4,
	"+": 3,
	"-": 3,
	"^": 2,
	"(": 1,
}

// Disambiguate rewrites each minus sign that begins an operand to the
// negation function. A minus sign begins an operand when it is the first
// token or follows an open parenthesis, an operator, or a function.
func Disambiguate(tokens []string) []string {
	r := make([]string, len(tokens))
	for i, t := range tokens {
		if t == "-" && (i == 0 || expectsOperand(r[i-1])) {
			t = "neg"
		}
		r[i] = t
	}
	return r
}

// ToPostfix converts a sequence of infix tokens to postfix order.
func ToPostfix(tokens []string) (Postfix, error) {
	out := make(Postfix, 0, len(tokens))
	ops := arraystack.New()
	for i, tok := range tokens {
		switch {
		case IsInt(tok):
			out = append(out, Token{Text: tok, Kind: TokenInt, Pos: i})
		case IsFloat(tok):
			out = append(out, Token{Text: tok, Kind: TokenFloat, Pos: i})
		case IsConstant(tok):
			out = append(out, Token{Text: tok, Kind: TokenConstant, Pos: i})
		case IsUnary(tok):
			ops.Push(Token{Text: tok, Kind: TokenUnary, Pos: i})
		case tok == "(":
			ops.Push(Token{Text: tok, Kind: TokenOpen, Pos: i})
		case tok == ")":
			for {
				v, ok := ops.Pop()
				if !ok {
					return nil, &BracketError{Col: i, Right: tok}
				}
				t := v.(Token)
				if t.Kind == TokenOpen {
					break
				}
				out = append(out, t)
			}
		case IsBinary(tok) || tok == ".":
			p := precedence[tok]
			for {
				v, ok := ops.Peek()
				if !ok {
					break
				}
				t := v.(Token)
				if t.Kind != TokenUnary && (t.Kind != TokenBinary || precedence[t.Text] < p) {
					break
				}
				ops.Pop()
				out = append(out, t)
			}
			ops.Push(Token{Text: tok, Kind: TokenBinary, Pos: i})
		default:
			return nil, &UnsupportedTermError{Col: i, Term: tok}
		}
	}
	for !ops.Empty() {
		v, _ := ops.Pop()
		t := v.(Token)
		if t.Kind == TokenOpen {
			return nil, &BracketError{Col: t.Pos, Left: t.Text}
		}
		out = append(out, t)
	}
	return out, nil
}
