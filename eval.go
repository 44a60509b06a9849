package mathparse

import (
	"github.com/emirpasic/gods/stacks/arraystack"
)

// operand is an evaluation stack entry. text is the literal the value was
// read from, or the formatted value for computed results.
type operand struct {
	text string
	v    Value
}

// Evaluate computes the value of a postfix token sequence. Division by zero
// produces Undefined rather than an error.
func Evaluate(postfix []Token) (Value, error) {
	stack := arraystack.New()
	push := func(v Value) {
		stack.Push(operand{text: v.String(), v: v})
	}
	for _, tok := range postfix {
		switch tok.Kind {
		case TokenInt:
			n, ok := parseInt(tok.Text)
			if !ok {
				return Value{}, &UnsupportedTermError{Col: tok.Pos, Term: tok.Text}
			}
			stack.Push(operand{text: tok.Text, v: NewInt(n)})
		case TokenFloat:
			x, ok := parseFloat(tok.Text)
			if !ok {
				return Value{}, &UnsupportedTermError{Col: tok.Pos, Term: tok.Text}
			}
			stack.Push(operand{text: tok.Text, v: NewFloat(x)})
		case TokenConstant:
			x, ok := constants[tok.Text]
			if !ok {
				return Value{}, &UnsupportedTermError{Col: tok.Pos, Term: tok.Text}
			}
			stack.Push(operand{text: tok.Text, v: NewFloat(x)})
		case TokenUnary:
			f := unaryFuncs[tok.Text]
			if f == nil {
				return Value{}, &UnsupportedTermError{Col: tok.Pos, Term: tok.Text}
			}
			x, ok := stack.Pop()
			if !ok {
				return Value{}, &InsufficientOperandsError{Col: tok.Pos, Operator: tok.Text}
			}
			r, err := f(x.(operand).v)
			if err != nil {
				return Value{}, err
			}
			if tok.Text == "neg" {
				// Keep the sign of zero for a decimal point that follows.
				stack.Push(operand{text: negText(x.(operand).text), v: r})
				break
			}
			push(r)
		case TokenBinary:
			if _, ok := precedence[tok.Text]; !ok || tok.Text == "(" {
				return Value{}, &UnsupportedTermError{Col: tok.Pos, Term: tok.Text}
			}
			if stack.Size() < 2 {
				return Value{}, &InsufficientOperandsError{Col: tok.Pos, Operator: tok.Text}
			}
			y, _ := stack.Pop()
			x, _ := stack.Pop()
			r, err := binary(tok.Text, x.(operand), y.(operand))
			if err != nil {
				return Value{}, err
			}
			push(r)
		default:
			return Value{}, &UnsupportedTermError{Col: tok.Pos, Term: tok.Text}
		}
	}
	r, ok := stack.Pop()
	if !ok {
		return Value{}, &EmptyResultError{}
	}
	return r.(operand).v, nil
}

// negText is the text of a negated operand.
func negText(s string) string {
	if len(s) > 0 && s[0] == '-' {
		return s[1:]
	}
	return "-" + s
}

// binary applies an operator to a and b.
func binary(op string, a, b operand) (Value, error) {
	switch op {
	case "+":
		return add(a.v, b.v), nil
	case "-":
		return sub(a.v, b.v), nil
	case "*":
		return mul(a.v, b.v), nil
	case "/":
		return quo(a.v, b.v), nil
	case "^":
		return pow(a.v, b.v)
	case ".":
		return join(a, b), nil
	}
	panic("mathparse: unknown operator " + op)
}
