package mathparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/mathparse"
)

func TestReplaceWordTokens(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"1 plus 1", "1 + 1"},
		{"thirty + thirty", "30 + 30"},
		{"five thousand + 30", "((5 * 1000)) + 30"},
		{"fifty thousand + 1", "((50 * 1000)) + 1"},
		{"five thousand thirty", "((5 * 1000) + 30)"},
		{"two hundred thousand", "(((2 * 100) * 1000))"},
		{"twenty one thousand", "((21 * 1000))"},
		{"one thousand one hundred", "((1 * 1000) + (1 * 100))"},
		{"hundred", "(100)"},
		{"fifty-four", "(50 + 4)"},
		{"fifty four", "(50 + 4)"},
		{"Ten Divided By Two", "10 / 2"},
		{"two to the power of three", "2 ^ 3"},
		{"negative five", "neg 5"},
		{"square root of nine", "sqrt 9"},
		{"two squared", "(2 ^ 2)"},
		{"(1 plus 2) squared", "((1 + 2) ^ 2)"},
		{"three cubed minus one", "(3 ^ 3) - 1"},
		{"onetwo plus one", "onetwo + 1"},
		{"what is one plus one?", "what is 1 + 1?"},
		{"", ""},
	}
	for _, c := range cases {
		c := c
		t.Run(c.in, func(t *testing.T) {
			got, err := mathparse.ReplaceWordTokens(c.in, "ENG")
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestNormalizeStopwords(t *testing.T) {
	cases := []struct {
		in   string
		stop []string
		want string
	}{
		{"what is two plus two", []string{"what", "is"}, "2 + 2"},
		{"the square root of four", []string{"the", "of"}, "sqrt 4"},
		{"two plus The two", []string{"the"}, "2 + 2"},
		{"theory plus two", []string{"the"}, "theory + 2"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.in, func(t *testing.T) {
			got, err := mathparse.Normalize(c.in, "ENG", c.stop...)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestNormalizeLanguages(t *testing.T) {
	cases := []struct {
		lang, in, want string
	}{
		{"DUT", "twee plus drie", "2 + 3"},
		{"ESP", "dos más tres", "2 + 3"},
		{"FRE", "deux plus trois", "2 + 3"},
		{"GER", "Zwei plus Drei", "2 + 3"},
		{"GRE", "δύο συν τρία", "2 + 3"},
		{"ITA", "due più tre", "2 + 3"},
		{"MAR", "दोन बेरीज तीन", "2 + 3"},
		{"POR", "dois mais três", "2 + 3"},
		{"RUS", "два плюс три", "2 + 3"},
		{"THA", "สอง บวก สาม", "2 + 3"},
		{"UKR", "два додати три", "2 + 3"},
		{"CHI", "二加三", "2 + 3"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.lang, func(t *testing.T) {
			got, err := mathparse.Normalize(c.in, c.lang)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestNormalizeBadLanguage(t *testing.T) {
	_, err := mathparse.ReplaceWordTokens("1 + 1", "XYZ")
	assert.EqualError(t, err, "XYZ is not an available language code")
}
