package mathparse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// padded are the symbols the tokenizer always separates from their
// neighbors. The multiplication and division signs are rewritten to the
// operators they denote.
var padded = strings.NewReplacer(
	"(", " ( ",
	")", " ) ",
	"+", " + ",
	"*", " * ",
	"×", " * ",
	"/", " / ",
	"÷", " / ",
	"^", " ^ ",
	".", " . ",
)

// Tokenize splits text into math tokens. If lang is not empty, the
// multi-word phrases of that language are kept as single tokens.
func Tokenize(text, lang string) ([]string, error) {
	var l *lexicon
	if lang != "" {
		var err error
		l, err = lexiconFor(lang)
		if err != nil {
			return nil, err
		}
	}
	return tokenize(text, l), nil
}

func tokenize(text string, l *lexicon) []string {
	s := lower(text)
	if r, n := utf8.DecodeLastRuneInString(s); n > 0 && !alnum(r) {
		s = s[:len(s)-n] + " " + string(r)
	}
	if l != nil {
		s = l.protect(s)
	}
	s = padMinus(padded.Replace(s))
	tokens := strings.Fields(s)
	if l != nil {
		for i, t := range tokens {
			tokens[i] = strings.ReplaceAll(t, placeholder, " ")
		}
	}
	return tokens
}

func alnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}

// padMinus separates each minus sign that follows a digit or a close
// parenthesis, leaving signs of negative literals attached.
func padMinus(s string) string {
	if !strings.Contains(s, "-") {
		return s
	}
	var b strings.Builder
	prev := rune(-1)
	for _, r := range s {
		if r == '-' && (unicode.IsDigit(prev) || prev == ')') {
			b.WriteString(" - ")
		} else {
			b.WriteRune(r)
		}
		if !unicode.IsSpace(r) {
			prev = r
		}
	}
	return b.String()
}
