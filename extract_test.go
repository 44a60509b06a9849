package mathparse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/mathparse"
)

func TestExtractExpression(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"What is 5 plus 3?", "5 plus 3"},
		{"", ""},
		{"nothing to see here", ""},
		{"What is 6 divided by 3 anyway", "6 divided by 3"},
		{"please compute (2 + 3) * 4 for me", "( 2 + 3 ) * 4"},
		{"the price is 12.50 today", "12.50"},
		{"+ what is five times two", "five times two"},
		{"- 3 + 4", "- 3 + 4"},
		{"is it two squared?", "two squared"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.in, func(t *testing.T) {
			got, err := mathparse.ExtractExpression(c.in, "ENG")
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestExtractSymbolsOnly(t *testing.T) {
	p, err := mathparse.New()
	require.NoError(t, err)
	assert.Equal(t, "2 * 3", p.Extract("what is 2*3?"))
	assert.Equal(t, "", p.Extract("what is two times three?"))
}

func TestExtractBadLanguage(t *testing.T) {
	_, err := mathparse.ExtractExpression("5 plus 3", "123")
	var lerr *mathparse.InvalidLanguageCodeError
	assert.ErrorAs(t, err, &lerr)
}
