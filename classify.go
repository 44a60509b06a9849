package mathparse

import (
	"strconv"
	"strings"
)

// binaryOperators are the operator symbols recognized between two operands.
// The decimal point is handled separately since it never appears in input
// as an operator of its own.
var binaryOperators = map[string]bool{
	"+": true,
	"-": true,
	"*": true,
	"/": true,
	"^": true,
}

// parseInt parses an integer token.
func parseInt(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	return n, err == nil
}

// parseFloat parses a token with a decimal point.
func parseFloat(s string) (float64, bool) {
	if !strings.Contains(s, ".") {
		return 0, false
	}
	x, err := strconv.ParseFloat(s, 64)
	return x, err == nil
}

// IsInt returns whether s is an integer literal.
func IsInt(s string) bool {
	_, ok := parseInt(s)
	return ok
}

// IsFloat returns whether s is a numeric literal containing a decimal point.
func IsFloat(s string) bool {
	_, ok := parseFloat(s)
	return ok
}

// IsConstant returns whether s names a mathematical constant.
func IsConstant(s string) bool {
	_, ok := constants[s]
	return ok
}

// IsUnary returns whether s names a function of one argument.
func IsUnary(s string) bool {
	_, ok := unaryFuncs[s]
	return ok
}

// IsBinary returns whether s is a binary operator symbol.
func IsBinary(s string) bool {
	return binaryOperators[s]
}

// IsSymbol returns whether s is any symbolic math token: a literal, constant,
// function, operator, or parenthesis.
func IsSymbol(s string) bool {
	return IsInt(s) || IsFloat(s) || IsConstant(s) || IsUnary(s) || IsBinary(s) || s == "(" || s == ")"
}

// IsWord returns whether s is a math word or phrase in the language with the
// given code. It returns false for unknown language codes.
func IsWord(s, lang string) bool {
	l, err := lexiconFor(lang)
	if err != nil {
		return false
	}
	return l.isWord(s)
}

// expectsOperand returns whether the token before a minus sign makes it a
// negation rather than a subtraction.
func expectsOperand(prev string) bool {
	return prev == "(" || prev == "." || IsBinary(prev) || IsUnary(prev)
}
