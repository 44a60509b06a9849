package mathparse

import (
	"strconv"

	"github.com/zephyrtronium/mathparse/vocab"
)

// InvalidLanguageCodeError is the error returned for a language code with no
// vocabulary.
type InvalidLanguageCodeError = vocab.InvalidLanguageCodeError

// UnsupportedTermError is an error indicating a token that is not a number,
// constant, operator, function, or parenthesis. It implements InputError.
type UnsupportedTermError struct {
	// Col is the index of the token.
	Col int
	// Term is the token that was not understood.
	Term string
}

func (err *UnsupportedTermError) Error() string {
	return "unsupported mathematical term: " + strconv.Quote(err.Term)
}

func (err *UnsupportedTermError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the index of the unmatched parenthesis.
	Col int
	// Left is the unmatched open parenthesis, if any.
	Left string
	// Right is the unmatched close parenthesis, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return "close bracket " + err.Right + " with no open bracket"
	}
	return "open bracket " + err.Left + " with no close bracket"
}

func (err *BracketError) Pos() int {
	return err.Col
}

// InsufficientOperandsError is an error indicating an operator or function
// applied to fewer values than it takes. It implements InputError.
type InsufficientOperandsError struct {
	// Col is the index of the operator.
	Col int
	// Operator is the operator or function name.
	Operator string
}

func (err *InsufficientOperandsError) Error() string {
	return "insufficient values in expression for operator " + strconv.Quote(err.Operator)
}

func (err *InsufficientOperandsError) Pos() int {
	return err.Col
}

// EmptyResultError is an error indicating that evaluation left no value.
type EmptyResultError struct{}

func (err *EmptyResultError) Error() string {
	return "the postfix expression resulted in an empty stack"
}

// InputError is an error with position information. Every error resulting from
// a malformed token sequence implements InputError.
type InputError interface {
	error
	// Pos returns the index of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*UnsupportedTermError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*InsufficientOperandsError)(nil)
)
