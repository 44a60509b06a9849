package mathparse

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/zephyrtronium/mathparse/vocab"
)

// ReplaceWordTokens rewrites the math words of a language in text to
// symbols: numbers to digits, operators to operator symbols and functions,
// and scale words to parenthesized products.
func ReplaceWordTokens(text, lang string) (string, error) {
	return Normalize(text, lang)
}

// Normalize is like ReplaceWordTokens, but also removes each whole word
// that is one of stopwords.
func Normalize(text, lang string, stopwords ...string) (string, error) {
	l, err := lexiconFor(lang)
	if err != nil {
		return "", err
	}
	return l.normalize(text, stopSet(stopwords)), nil
}

func stopSet(words []string) map[string]bool {
	if len(words) == 0 {
		return nil
	}
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[lower(w)] = true
	}
	return m
}

func (l *lexicon) normalize(text string, stop map[string]bool) string {
	if l.table.Script() == vocab.CJK {
		return l.normalizeCJK(text, stop)
	}
	ps := l.pieces(lower(text))
	ps = dropStopwords(ps, stop)
	ps = foldCompounds(ps)
	ps = resolveScales(ps)
	ps = applyPostfix(ps)
	return joinPieces(ps)
}

// piece is a segment of text being normalized.
type piece struct {
	text string
	kind wordKind
	repl string
	val  int64
	// space is whether whitespace preceded the piece.
	space bool
}

// numeric returns the integer value of a piece that can take part in a
// scale phrase.
func (p *piece) numeric() (int64, bool) {
	switch p.kind {
	case wordNumber, wordScale:
		return p.val, true
	case wordNone:
		if p.text == "" || p.text[0] < '0' || p.text[0] > '9' {
			return 0, false
		}
		return parseInt(p.text)
	}
	return 0, false
}

// pieces splits s into vocabulary phrases and the text between them in a
// single pass. Phrases match only as whole words, and the longest phrase at
// each position wins.
func (l *lexicon) pieces(s string) []piece {
	rs := []rune(s)
	accept := bounded(rs)
	var ps []piece
	space := false
	for i := 0; i < len(rs); {
		r := rs[i]
		if unicode.IsSpace(r) {
			space = true
			i++
			continue
		}
		if i == 0 || isBoundary(rs[i-1]) {
			if end, e, ok := l.phrases.Longest(rs, i, accept); ok {
				ps = append(ps, piece{text: string(rs[i:end]), kind: e.kind, repl: e.repl, val: e.val, space: space})
				space = false
				i = end
				continue
			}
		}
		j := i + 1
		if !isBoundary(r) {
			for j < len(rs) && !isBoundary(rs[j]) {
				j++
			}
		}
		ps = append(ps, piece{text: string(rs[i:j]), space: space})
		space = false
		i = j
	}
	return ps
}

func dropStopwords(ps []piece, stop map[string]bool) []piece {
	if len(stop) == 0 {
		return ps
	}
	r := ps[:0]
	carry := false
	for _, p := range ps {
		if p.kind == wordNone && stop[p.text] {
			carry = carry || p.space
			continue
		}
		p.space = p.space || carry
		carry = false
		r = append(r, p)
	}
	return r
}

// foldCompounds combines a tens word followed by a units word, either
// hyphenated or separated by a space, into one number.
func foldCompounds(ps []piece) []piece {
	tens := func(p piece) bool {
		return p.kind == wordNumber && p.val >= 20 && p.val <= 90 && p.val%10 == 0
	}
	units := func(p piece) bool {
		return p.kind == wordNumber && p.val >= 1 && p.val <= 9
	}
	r := ps[:0]
	for i := 0; i < len(ps); i++ {
		p := ps[i]
		if tens(p) {
			var u piece
			switch {
			case i+2 < len(ps) && ps[i+1].kind == wordNone && ps[i+1].text == "-" && !ps[i+1].space && !ps[i+2].space && units(ps[i+2]):
				u = ps[i+2]
				i += 2
			case i+1 < len(ps) && ps[i+1].space && units(ps[i+1]):
				u = ps[i+1]
				i++
			}
			if u.kind == wordNumber {
				p = piece{
					text:  "(" + strconv.FormatInt(p.val, 10) + " + " + strconv.FormatInt(u.val, 10) + ")",
					kind:  wordNumber,
					val:   p.val + u.val,
					space: p.space,
				}
			}
		}
		r = append(r, p)
	}
	return r
}

// resolveScales replaces each run of numbers containing a scale word with a
// parenthesized sum of products. Numbers outside such runs become digits.
func resolveScales(ps []piece) []piece {
	r := ps[:0]
	for i := 0; i < len(ps); {
		j, scaled := i, false
		var run []piece
		for ; j < len(ps); j++ {
			if _, ok := ps[j].numeric(); !ok {
				break
			}
			scaled = scaled || ps[j].kind == wordScale
			run = append(run, ps[j])
		}
		switch {
		case scaled:
			r = append(r, piece{text: "(" + renderScaled(run) + ")", space: ps[i].space})
			i = j
		default:
			p := ps[i]
			if p.kind == wordNumber && !strings.HasPrefix(p.text, "(") {
				p.text = strconv.FormatInt(p.val, 10)
			}
			r = append(r, p)
			i++
		}
	}
	return r
}

// renderScaled renders a run of numbers and scale words. The largest scale
// multiplies everything before it and adds everything after it.
func renderScaled(run []piece) string {
	if len(run) == 0 {
		return ""
	}
	best := -1
	for i, p := range run {
		if p.kind == wordScale && (best < 0 || p.val > run[best].val) {
			best = i
		}
	}
	if best < 0 {
		s := make([]string, len(run))
		for i, p := range run {
			v, _ := p.numeric()
			s[i] = strconv.FormatInt(v, 10)
		}
		return strings.Join(s, " + ")
	}
	scale := strconv.FormatInt(run[best].val, 10)
	var s string
	switch left := renderScaled(run[:best]); {
	case left == "":
		s = scale
	case strings.Contains(left, " + "):
		s = "((" + left + ") * " + scale + ")"
	default:
		s = "(" + left + " * " + scale + ")"
	}
	if right := renderScaled(run[best+1:]); right != "" {
		s += " + " + right
	}
	return s
}

// applyPostfix rewrites "x OP" as "(x REPL)" for each postfix operator phrase,
// and replaces the remaining operator phrases with their symbols. x is the
// preceding piece, or the whole parenthesized group before OP.
func applyPostfix(ps []piece) []piece {
	r := make([]piece, 0, len(ps))
	for _, p := range ps {
		switch p.kind {
		case wordBinary, wordPrefix:
			p.text = p.repl
		case wordPostfix:
			k := operandStart(len(r), func(i int) string { return r[i].text })
			if k < 0 {
				p.text = p.repl
				break
			}
			inner := joinPieces(r[k:])
			p = piece{text: "(" + inner + " " + p.repl + ")", space: r[k].space}
			r = r[:k]
		}
		r = append(r, p)
	}
	return r
}

// operandStart finds the index of the first of n items that begins the
// operand ending them, or -1 if there is none.
func operandStart(n int, text func(i int) string) int {
	k := n - 1
	if k < 0 || text(k) != ")" {
		return k
	}
	depth := 0
	for i := k; i >= 0; i-- {
		switch text(i) {
		case ")":
			depth++
		case "(":
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return k
}

func joinPieces(ps []piece) string {
	var b strings.Builder
	for i, p := range ps {
		if i > 0 && p.space {
			b.WriteByte(' ')
		}
		b.WriteString(p.text)
	}
	return strings.ReplaceAll(b.String(), ") (", ") + (")
}
