// Package phrase implements longest-match lookup of phrases in rune text.
package phrase

// Matcher is a rune trie mapping phrases to values. A Matcher must not be
// modified while it is being used to match.
type Matcher[V any] struct {
	root node[V]
	n    int
}

type node[V any] struct {
	next map[rune]*node[V]
	val  V
	end  bool
}

// Add inserts a phrase. If the phrase is already present, its value is
// replaced. Empty phrases are ignored.
func (m *Matcher[V]) Add(phrase string, val V) {
	if phrase == "" {
		return
	}
	n := &m.root
	for _, r := range phrase {
		c := n.next[r]
		if c == nil {
			if n.next == nil {
				n.next = make(map[rune]*node[V])
			}
			c = new(node[V])
			n.next[r] = c
		}
		n = c
	}
	if !n.end {
		m.n++
	}
	n.val = val
	n.end = true
}

// Len returns the number of phrases in the matcher.
func (m *Matcher[V]) Len() int {
	return m.n
}

// Longest finds the longest phrase that begins at text[i]. If accept is not
// nil, only phrases ending at an index for which accept returns true are
// considered. end is the index just past the match.
func (m *Matcher[V]) Longest(text []rune, i int, accept func(end int) bool) (end int, val V, ok bool) {
	n := &m.root
	for j := i; j < len(text); j++ {
		n = n.next[text[j]]
		if n == nil {
			break
		}
		if n.end && (accept == nil || accept(j+1)) {
			end, val, ok = j+1, n.val, true
		}
	}
	return end, val, ok
}

// Replace rewrites every non-overlapping leftmost-longest occurrence of a
// phrase in text using repl. Runes outside any match are copied unchanged.
func (m *Matcher[V]) Replace(text []rune, repl func(val V) string) string {
	b := make([]rune, 0, len(text))
	for i := 0; i < len(text); {
		end, v, ok := m.Longest(text, i, nil)
		if !ok {
			b = append(b, text[i])
			i++
			continue
		}
		b = append(b, []rune(repl(v))...)
		i = end
	}
	return string(b)
}
