package phrase

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestLongest(t *testing.T) {
	var m Matcher[string]
	m.Add("square", "sq")
	m.Add("square root of", "sqrt")
	m.Add("squared", "^ 2")
	m.Add("", "never")
	assert.Equal(t, 3, m.Len())

	cases := []struct {
		name string
		text string
		at   int
		end  int
		val  string
		ok   bool
	}{
		{"exact", "square", 0, 6, "sq", true},
		{"longer", "square root of four", 0, 14, "sqrt", true},
		{"suffix", "squared", 0, 7, "^ 2", true},
		{"offset", "two squared", 4, 11, "^ 2", true},
		{"partial", "square root", 0, 6, "sq", true},
		{"none", "squid", 0, 0, "", false},
		{"past end", "square", 6, 0, "", false},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			end, val, ok := m.Longest([]rune(c.text), c.at, nil)
			assert.Equal(t, c.ok, ok)
			assert.Equal(t, c.end, end)
			assert.Equal(t, c.val, val)
		})
	}
}

func TestLongestAccept(t *testing.T) {
	var m Matcher[int]
	m.Add("un", 1)
	m.Add("un million", 1000000)
	text := []rune("une un millionième")
	boundary := func(end int) bool {
		return end == len(text) || unicode.IsSpace(text[end])
	}
	_, _, ok := m.Longest(text, 0, boundary)
	assert.False(t, ok)
	end, v, ok := m.Longest(text, 4, boundary)
	assert.True(t, ok)
	assert.Equal(t, 6, end)
	assert.Equal(t, 1, v)
}

func TestReplace(t *testing.T) {
	var m Matcher[string]
	m.Add("加", "+")
	m.Add("加上", "+")
	m.Add("除", "/")
	m.Add("除以", "/")
	m.Add("的", "^")
	m.Add("的平方", "^ 2")
	sp := func(s string) string { return " " + s + " " }
	cases := []struct {
		in, want string
	}{
		{"二加上二", "二 + 二"},
		{"一千除以一百", "一千 / 一百"},
		{"三的平方", "三 ^ 2 "},
		{"二的四", "二 ^ 四"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, m.Replace([]rune(c.in), sp), c.in)
	}
}

func TestReplaceValue(t *testing.T) {
	var m Matcher[string]
	m.Add("ab", "X")
	m.Add("abc", "Y")
	assert.Equal(t, "Y-X-a", m.Replace([]rune("abc-ab-a"), func(v string) string { return v }))
	m.Add("ab", "Z")
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, "Z", m.Replace([]rune("ab"), func(v string) string { return v }))
}
