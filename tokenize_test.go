package mathparse_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/mathparse"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		lang string
		want []string
	}{
		{"empty", "", "", nil},
		{"spaces", "   ", "", nil},
		{"num", "22", "", []string{"22"}},
		{"sum", "2+3", "", []string{"2", "+", "3"}},
		{"parens", "(2+3)*4", "", []string{"(", "2", "+", "3", ")", "*", "4"}},
		{"caret", "2^3", "", []string{"2", "^", "3"}},
		{"decimal", "12.04", "", []string{"12", ".", "04"}},
		{"times sign", "2×3÷4", "", []string{"2", "*", "3", "/", "4"}},
		{"negative", "-3 + 3", "", []string{"-3", "+", "3"}},
		{"subtract negative", "3--2", "", []string{"3", "-", "-2"}},
		{"times negative", "3*-2", "", []string{"3", "*", "-2"}},
		{"subtract after paren", "(1)-2", "", []string{"(", "1", ")", "-", "2"}},
		{"negative paren", "-(1)", "", []string{"-", "(", "1", ")"}},
		{"upper", "Two PLUS two", "", []string{"two", "plus", "two"}},
		{"trailing question", "what is 5 plus 3?", "", []string{"what", "is", "5", "plus", "3", "?"}},
		{"trailing period", "five.", "", []string{"five", "."}},
		{"phrase", "6 divided by 3", "ENG", []string{"6", "divided by", "3"}},
		{"long phrase", "2 to the power of 3", "ENG", []string{"2", "to the power of", "3"}},
		{"phrase boundary", "todivided by", "ENG", []string{"todivided", "by"}},
		{"no language phrase", "6 divided by 3", "", []string{"6", "divided", "by", "3"}},
		{"cjk collapse", "二 的 四 次 方", "CHI", []string{"二", "的", "四", "次方"}},
		{"devanagari marks", "सहा बेरीज सहा", "MAR", []string{"सहा", "बेरीज", "सहा"}},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			got, err := mathparse.Tokenize(c.in, c.lang)
			require.NoError(t, err)
			if len(c.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, c.want, got)
		})
	}
}

func TestTokenizeIdempotent(t *testing.T) {
	cases := []struct {
		in   string
		lang string
	}{
		{"2+3*(4-2)^2/2", ""},
		{"3--2", ""},
		{"-0.5", ""},
		{"what is 5 plus 3?", ""},
		{"10 divided by 2 squared", "ENG"},
		{"the square root of four", "ENG"},
		{"二的四次方", "CHI"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.in, func(t *testing.T) {
			first, err := mathparse.Tokenize(c.in, c.lang)
			require.NoError(t, err)
			second, err := mathparse.Tokenize(strings.Join(first, " "), c.lang)
			require.NoError(t, err)
			assert.Equal(t, first, second)
		})
	}
}

func TestTokenizeBadLanguage(t *testing.T) {
	_, err := mathparse.Tokenize("1 + 1", "123")
	var lerr *mathparse.InvalidLanguageCodeError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, "123", lerr.Code)
}
