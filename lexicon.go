package mathparse

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zephyrtronium/mathparse/internal/phrase"
	"github.com/zephyrtronium/mathparse/vocab"
)

// wordKind is the vocabulary group a phrase belongs to.
type wordKind uint8

const (
	wordNone wordKind = iota
	wordNumber
	wordScale
	wordBinary
	wordPrefix
	wordPostfix
)

// entry is what a vocabulary phrase stands for.
type entry struct {
	kind wordKind
	repl string
	val  int64
}

// placeholder stands in for spaces inside protected phrases while the
// tokenizer splits on whitespace.
const placeholder = "\uE000"

// lexicon is the compiled vocabulary of one language.
type lexicon struct {
	table *vocab.Table
	// phrases matches every word and phrase of the language.
	phrases phrase.Matcher[entry]
	// ops matches operator phrases alone.
	ops phrase.Matcher[entry]
	// guard matches phrases the tokenizer must keep whole.
	guard phrase.Matcher[string]
	words map[string]bool
	// numerals and scales are single-character numerals for CJK scripts.
	numerals map[rune]int64
	scales   map[rune]int64
}

var lexicons sync.Map // map[string]*lexicon

// lexiconFor returns the compiled vocabulary for a language code.
func lexiconFor(code string) (*lexicon, error) {
	if l, ok := lexicons.Load(code); ok {
		return l.(*lexicon), nil
	}
	t, err := vocab.Lookup(code)
	if err != nil {
		return nil, err
	}
	l, _ := lexicons.LoadOrStore(code, compile(t))
	return l.(*lexicon), nil
}

func compile(t *vocab.Table) *lexicon {
	l := lexicon{table: t, words: make(map[string]bool)}
	g := t.WordGroups()
	// Later groups win for phrases in more than one group.
	for w, v := range g.Numbers {
		l.phrases.Add(w, entry{kind: wordNumber, val: v})
	}
	for w, v := range g.Scales {
		l.phrases.Add(w, entry{kind: wordScale, val: v})
	}
	ops := []struct {
		kind wordKind
		m    map[string]string
	}{
		{wordBinary, g.BinaryOperators},
		{wordPrefix, g.PrefixUnaryOperators},
		{wordPostfix, g.PostfixUnaryOperators},
	}
	for _, o := range ops {
		for w, r := range o.m {
			e := entry{kind: o.kind, repl: r}
			l.phrases.Add(w, e)
			l.ops.Add(w, e)
		}
	}
	cjk := t.Script() == vocab.CJK
	for _, w := range t.Words() {
		l.words[w] = true
		switch {
		case strings.ContainsRune(w, ' '):
			l.guard.Add(w, strings.ReplaceAll(w, " ", placeholder))
		case cjk && utf8.RuneCountInString(w) > 1:
			l.guard.Add(spaced(w), w)
		}
	}
	if cjk {
		l.numerals = t.Numerals()
		l.scales = make(map[rune]int64)
		for r, v := range l.numerals {
			if v >= 10 && powerOfTen(v) {
				l.scales[r] = v
			}
		}
	}
	return &l
}

// isWord returns whether s is a word or phrase of the language.
func (l *lexicon) isWord(s string) bool {
	return l != nil && l.words[s]
}

// spaced inserts a space between each rune of s.
func spaced(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func powerOfTen(n int64) bool {
	for n >= 10 && n%10 == 0 {
		n /= 10
	}
	return n == 1
}

// isBoundary returns whether r separates words.
func isBoundary(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// bounded returns an acceptance function for matches that end at a word
// boundary of rs.
func bounded(rs []rune) func(end int) bool {
	return func(end int) bool {
		return end == len(rs) || isBoundary(rs[end])
	}
}

// lower folds text to lower case.
func lower(text string) string {
	return cases.Lower(language.Und).String(text)
}

// protect rewrites the phrases the tokenizer must keep whole. In alphabetic
// scripts, phrases match only as whole words.
func (l *lexicon) protect(s string) string {
	rs := []rune(s)
	if l.table.Script() == vocab.CJK {
		return l.guard.Replace(rs, func(r string) string { return r })
	}
	var b strings.Builder
	accept := bounded(rs)
	for i := 0; i < len(rs); {
		if i == 0 || isBoundary(rs[i-1]) {
			if end, r, ok := l.guard.Longest(rs, i, accept); ok {
				b.WriteString(r)
				i = end
				continue
			}
		}
		b.WriteRune(rs[i])
		i++
	}
	return b.String()
}
