// Package vocab provides the per-language word tables used to read math
// written in words.
//
// The tables ship as YAML documents embedded in the binary. They are decoded
// once, on first use, and are never modified afterward. Every accessor that
// hands a map or slice to a caller hands out a copy.
package vocab

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed data/*.yaml
var data embed.FS

// Script selects how text in a language is segmented.
type Script string

const (
	// Alphabetic scripts separate words with whitespace.
	Alphabetic Script = "alphabetic"
	// CJK scripts write numerals and operators without separators.
	CJK Script = "cjk"
)

// WordGroups is the vocabulary of one language.
type WordGroups struct {
	// Numbers maps number words to their values.
	Numbers map[string]int64 `yaml:"numbers"`
	// Scales maps scale words to their multipliers.
	Scales map[string]int64 `yaml:"scales"`
	// BinaryOperators maps operator phrases to operator symbols.
	BinaryOperators map[string]string `yaml:"binary_operators"`
	// PrefixUnaryOperators maps phrases written before their operand to
	// function names.
	PrefixUnaryOperators map[string]string `yaml:"prefix_unary_operators"`
	// PostfixUnaryOperators maps phrases written after their operand to the
	// text that applies them, e.g. "^ 2".
	PostfixUnaryOperators map[string]string `yaml:"postfix_unary_operators"`
}

func (g *WordGroups) clone() *WordGroups {
	return &WordGroups{
		Numbers:               cloneMap(g.Numbers),
		Scales:                cloneMap(g.Scales),
		BinaryOperators:       cloneMap(g.BinaryOperators),
		PrefixUnaryOperators:  cloneMap(g.PrefixUnaryOperators),
		PostfixUnaryOperators: cloneMap(g.PostfixUnaryOperators),
	}
}

func cloneMap[V any](m map[string]V) map[string]V {
	r := make(map[string]V, len(m))
	for k, v := range m {
		r[k] = v
	}
	return r
}

// PowerIdiom describes how a CJK language writes "a to the nth power": a
// particle between base and exponent, and suffixes after the exponent that
// are redundant when the particle is present.
type PowerIdiom struct {
	Particle string   `yaml:"particle"`
	Suffixes []string `yaml:"suffixes"`
}

// document is the on-disk form of a table.
type document struct {
	Code       string     `yaml:"code"`
	Name       string     `yaml:"name"`
	Script     Script     `yaml:"script"`
	PowerIdiom PowerIdiom `yaml:"power_idiom"`
	WordGroups `yaml:",inline"`
}

// Scale is a scale word and its multiplier.
type Scale struct {
	Word  string
	Value int64
}

// Table is the frozen vocabulary of a single language.
type Table struct {
	code   string
	name   string
	script Script
	idiom  PowerIdiom
	groups WordGroups
	scales []Scale
	words  []string
}

// Code returns the language code of the table.
func (t *Table) Code() string { return t.code }

// Name returns the English name of the language.
func (t *Table) Name() string { return t.name }

// Script returns the segmentation rules the language uses.
func (t *Table) Script() Script { return t.script }

// PowerIdiom returns the power idiom of the language. The particle is empty
// for languages without one.
func (t *Table) PowerIdiom() PowerIdiom {
	return PowerIdiom{
		Particle: t.idiom.Particle,
		Suffixes: append([]string(nil), t.idiom.Suffixes...),
	}
}

// Number returns the value of a number word.
func (t *Table) Number(word string) (int64, bool) {
	v, ok := t.groups.Numbers[word]
	return v, ok
}

// Scale returns the multiplier of a scale word.
func (t *Table) Scale(word string) (int64, bool) {
	v, ok := t.groups.Scales[word]
	return v, ok
}

// Scales returns the scale words ordered from largest to smallest multiplier.
// Words with the same multiplier are ordered longest first.
func (t *Table) Scales() []Scale {
	return append([]Scale(nil), t.scales...)
}

// WordGroups returns a copy of the table's word groups.
func (t *Table) WordGroups() *WordGroups {
	return t.groups.clone()
}

// Words returns every word and phrase the table recognizes, sorted.
func (t *Table) Words() []string {
	return append([]string(nil), t.words...)
}

// Numerals returns a new map from every single-character number or scale
// word to its value. Scale entries take precedence over number entries.
func (t *Table) Numerals() map[rune]int64 {
	m := make(map[rune]int64)
	for _, g := range []map[string]int64{t.groups.Numbers, t.groups.Scales} {
		for w, v := range g {
			if r, n := utf8.DecodeRuneInString(w); n == len(w) && r != utf8.RuneError {
				m[r] = v
			}
		}
	}
	return m
}

// InvalidLanguageCodeError is the error returned when a language code has no
// vocabulary table.
type InvalidLanguageCodeError struct {
	// Code is the requested language code.
	Code string
}

func (err *InvalidLanguageCodeError) Error() string {
	return err.Code + " is not an available language code"
}

var (
	loadOnce sync.Once
	tables   map[string]*Table
	codes    []string
)

func load() {
	entries, err := fs.ReadDir(data, "data")
	if err != nil {
		panic("vocab: " + err.Error())
	}
	tables = make(map[string]*Table, len(entries))
	lower := cases.Lower(language.Und)
	for _, e := range entries {
		name := path.Join("data", e.Name())
		b, err := data.ReadFile(name)
		if err != nil {
			panic("vocab: " + err.Error())
		}
		var doc document
		if err := yaml.Unmarshal(b, &doc); err != nil {
			panic("vocab: " + name + ": " + err.Error())
		}
		if doc.Code == "" {
			panic("vocab: " + name + ": missing language code")
		}
		t := newTable(&doc, lower)
		tables[t.code] = t
		codes = append(codes, t.code)
	}
	sort.Strings(codes)
}

func newTable(doc *document, lower cases.Caser) *Table {
	t := Table{
		code:   doc.Code,
		name:   doc.Name,
		script: doc.Script,
		idiom:  doc.PowerIdiom,
		groups: WordGroups{
			Numbers:               lowerKeys(lower, doc.Numbers),
			Scales:                lowerKeys(lower, doc.Scales),
			BinaryOperators:       lowerKeys(lower, doc.BinaryOperators),
			PrefixUnaryOperators:  lowerKeys(lower, doc.PrefixUnaryOperators),
			PostfixUnaryOperators: lowerKeys(lower, doc.PostfixUnaryOperators),
		},
	}
	if t.script == "" {
		t.script = Alphabetic
	}
	for w, v := range t.groups.Scales {
		t.scales = append(t.scales, Scale{Word: w, Value: v})
	}
	sort.Slice(t.scales, func(i, j int) bool {
		a, b := t.scales[i], t.scales[j]
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		if len(a.Word) != len(b.Word) {
			return len(a.Word) > len(b.Word)
		}
		return a.Word < b.Word
	})
	seen := make(map[string]bool)
	add := func(w string) {
		if !seen[w] {
			seen[w] = true
			t.words = append(t.words, w)
		}
	}
	for w := range t.groups.Numbers {
		add(w)
	}
	for w := range t.groups.Scales {
		add(w)
	}
	for _, g := range []map[string]string{t.groups.BinaryOperators, t.groups.PrefixUnaryOperators, t.groups.PostfixUnaryOperators} {
		for w := range g {
			add(w)
		}
	}
	sort.Strings(t.words)
	return &t
}

func lowerKeys[V any](c cases.Caser, m map[string]V) map[string]V {
	r := make(map[string]V, len(m))
	for k, v := range m {
		r[c.String(k)] = v
	}
	return r
}

// Lookup returns the table for a language code.
func Lookup(code string) (*Table, error) {
	loadOnce.Do(load)
	t := tables[code]
	if t == nil {
		return nil, &InvalidLanguageCodeError{Code: code}
	}
	return t, nil
}

// Codes returns the supported language codes, sorted.
func Codes() []string {
	loadOnce.Do(load)
	return append([]string(nil), codes...)
}

// WordGroupsForLanguage returns a copy of the word groups for a language.
func WordGroupsForLanguage(code string) (*WordGroups, error) {
	t, err := Lookup(code)
	if err != nil {
		return nil, err
	}
	return t.WordGroups(), nil
}

// WordsForLanguage returns every word and phrase recognized in a language.
func WordsForLanguage(code string) ([]string, error) {
	t, err := Lookup(code)
	if err != nil {
		return nil, err
	}
	return t.Words(), nil
}
