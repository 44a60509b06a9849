package mathparse

import "strings"

// ExtractExpression returns the part of text from its first math token to
// its last, e.g. "5 plus 3" from "What is 5 plus 3?". Math tokens are symbols
// and the math words of the language with the given code.
func ExtractExpression(text, lang string) (string, error) {
	l, err := lexiconFor(lang)
	if err != nil {
		return "", err
	}
	return extract(text, l), nil
}

func extract(text string, l *lexicon) string {
	tokens := tokenize(text, l)
	isMath := func(t string) bool {
		return IsSymbol(t) || l.isWord(t)
	}
	start := len(tokens)
	for i, t := range tokens {
		if !isMath(t) {
			continue
		}
		// An operator only starts the expression when an operand follows
		// it; otherwise it is punctuation.
		if IsBinary(t) && (i+1 == len(tokens) || !startsOperand(tokens[i+1], l)) {
			continue
		}
		start = i
		break
	}
	end := start
	for i := len(tokens); i > start; i-- {
		if isMath(tokens[i-1]) {
			end = i
			break
		}
	}
	return strings.ReplaceAll(strings.Join(tokens[start:end], " "), " . ", ".")
}

// startsOperand returns whether an expression can begin with t.
func startsOperand(t string, l *lexicon) bool {
	return IsInt(t) || IsFloat(t) || IsConstant(t) || IsUnary(t) || t == "(" || l.isWord(t)
}
