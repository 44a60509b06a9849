package mathparse

import (
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// normalizeCJK normalizes text in a script that writes numerals and
// operators without spaces between them.
func (l *lexicon) normalizeCJK(text string, stop map[string]bool) string {
	s := width.Narrow.String(lower(text))
	s = l.protect(s)
	s = l.powerIdiom(s)
	s = l.ops.Replace([]rune(s), func(e entry) string {
		if e.kind == wordPostfix {
			// Mark postfix operators as single fields until they are wrapped.
			return " " + placeholder + strings.ReplaceAll(e.repl, " ", placeholder) + " "
		}
		return " " + e.repl + " "
	})
	s = l.numeralRuns(s)
	fields := strings.Fields(parenSpacer.Replace(s))
	r := fields[:0]
	for _, f := range fields {
		if !stop[f] {
			r = append(r, f)
		}
	}
	return parenTrimmer.Replace(strings.Join(wrapPostfix(r), " "))
}

var (
	parenSpacer  = strings.NewReplacer("(", " ( ", ")", " ) ")
	parenTrimmer = strings.NewReplacer("( ", "(", " )", ")")
)

// wrapPostfix replaces each marked postfix operator field with a group
// holding the operand before it and the operator's replacement text.
func wrapPostfix(fields []string) []string {
	r := make([]string, 0, len(fields))
	for _, f := range fields {
		op, ok := strings.CutPrefix(f, placeholder)
		if !ok {
			r = append(r, f)
			continue
		}
		op = strings.ReplaceAll(op, placeholder, " ")
		k := operandStart(len(r), func(i int) string { return r[i] })
		if k < 0 {
			r = append(r, op)
			continue
		}
		g := "(" + strings.Join(r[k:], " ") + " " + op + ")"
		r = append(r[:k], g)
	}
	return r
}

// powerIdiom drops the power suffixes that follow the power particle, so
// that the particle alone reads as exponentiation.
func (l *lexicon) powerIdiom(s string) string {
	idiom := l.table.PowerIdiom()
	if idiom.Particle == "" {
		return s
	}
	i := strings.Index(s, idiom.Particle)
	if i < 0 {
		return s
	}
	rest := s[i:]
	for _, suf := range idiom.Suffixes {
		rest = strings.ReplaceAll(rest, suf, "")
	}
	return s[:i] + rest
}

// span is a half-open range of rune indices.
type span struct {
	start, end int
}

// numeralRuns replaces each maximal run of numeral characters with its
// decimal value.
func (l *lexicon) numeralRuns(s string) string {
	rs := []rune(s)
	var runs []span
	for i := 0; i < len(rs); {
		if _, ok := l.numerals[rs[i]]; !ok {
			i++
			continue
		}
		j := i + 1
		for j < len(rs) {
			if _, ok := l.numerals[rs[j]]; !ok {
				break
			}
			j++
		}
		runs = append(runs, span{i, j})
		i = j
	}
	if len(runs) == 0 {
		return s
	}
	var b strings.Builder
	last := 0
	for _, r := range runs {
		b.WriteString(string(rs[last:r.start]))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatInt(l.numeral(rs[r.start:r.end]), 10))
		b.WriteByte(' ')
		last = r.end
	}
	b.WriteString(string(rs[last:]))
	return b.String()
}

// numeral evaluates a run of numeral characters. The largest scale character
// multiplies the numeral before it, or one if there is none, and adds the
// numeral after it. A run of digits alone is read positionally.
func (l *lexicon) numeral(run []rune) int64 {
	if len(run) == 0 {
		return 0
	}
	if v, ok := l.table.Number(string(run)); ok {
		return v
	}
	best := -1
	for i, r := range run {
		if s, ok := l.scales[r]; ok && (best < 0 || s > l.scales[run[best]]) {
			best = i
		}
	}
	if best < 0 {
		var n int64
		for _, r := range run {
			n = n*10 + l.numerals[r]
		}
		return n
	}
	left := int64(1)
	if best > 0 {
		left = l.numeral(run[:best])
	}
	return left*l.scales[run[best]] + l.numeral(run[best+1:])
}
