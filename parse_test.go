package mathparse_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/zephyrtronium/mathparse"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		opts []mathparse.Option
		want string
	}{
		{"precedence", "2 + 3 * (4 - 2) ^ 2 / 2", nil, "8"},
		{"compact", "2+3*(4-2)^2/2", nil, "8"},
		{"spacious", "  2   +    3   * (  4 - 2 ) ^ 2 / 2  ", nil, "8"},
		{"division by zero", "42 / 0", nil, "undefined"},
		{"exact division", "1204 / 100", nil, "12.04"},
		{"negative start", "-3 + 3", nil, "0"},
		{"minus negative", "3 - -2", nil, "5"},
		{"minus negative compact", "3--2", nil, "5"},
		{"times negative", "3 * -2", nil, "-6"},
		{"negative fraction", "-0.5", nil, "-0.5"},
		{"decimal", "0.25 + 0.5", nil, "0.75"},
		{"tiny divisor", "1 / (1 / 1000000000 / 1000000000)", nil, "1000000000000000000"},
		{"spaced negative fraction", "- 0.5", nil, "-0.5"},
		{"negated negative fraction", "- -0.5", nil, "0.5"},
		{"negative group", "-(2 + 3)", nil, "-5"},
		{"words", "four plus four", []mathparse.Option{mathparse.Language("ENG")}, "8"},
		{"mixed", "4 plus four", []mathparse.Option{mathparse.Language("ENG")}, "8"},
		{"compound", "fifty-four", []mathparse.Option{mathparse.Language("ENG")}, "54"},
		{"spaced compound", "fifty four plus one", []mathparse.Option{mathparse.Language("ENG")}, "55"},
		{"scales", "five thousand thirty", []mathparse.Option{mathparse.Language("ENG")}, "5030"},
		{"big scales", "one million two hundred thousand five", []mathparse.Option{mathparse.Language("ENG")}, "1200005"},
		{"scale sum", "five thousand + 30", []mathparse.Option{mathparse.Language("ENG")}, "5030"},
		{"squared", "two squared", []mathparse.Option{mathparse.Language("ENG")}, "4"},
		{"group squared", "(1 plus 2) squared", []mathparse.Option{mathparse.Language("ENG")}, "9"},
		{"power", "two to the power of ten", []mathparse.Option{mathparse.Language("ENG")}, "1024"},
		{"negative word", "negative five plus two", []mathparse.Option{mathparse.Language("ENG")}, "-3"},
		{"negative word fraction", "negative 0.5", []mathparse.Option{mathparse.Language("ENG")}, "-0.5"},
		{"word division", "ten divided by four", []mathparse.Option{mathparse.Language("ENG")}, "2.5"},
		{"word division by zero", "one divided by zero", []mathparse.Option{mathparse.Language("ENG")}, "undefined"},
		{
			"stopword the",
			"10 plus the square root of 4 times 3",
			[]mathparse.Option{mathparse.Language("ENG"), mathparse.Stopwords("the")},
			"16",
		},
		{
			"stopwords the of",
			"the square root of four",
			[]mathparse.Option{mathparse.Language("ENG"), mathparse.Stopwords("the", "of")},
			"2",
		},
		{"symbol stopwords", "what 2 + 2", []mathparse.Option{mathparse.Stopwords("what")}, "4"},
		{"german", "zwei mal drei", []mathparse.Option{mathparse.Language("GER")}, "6"},
		{"marathi", "सहा बेरीज सहा", []mathparse.Option{mathparse.Language("MAR")}, "12"},
		{"chinese", "二加二", []mathparse.Option{mathparse.Language("CHI")}, "4"},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			v, err := mathparse.Parse(c.in, c.opts...)
			require.NoError(t, err)
			assert.Equal(t, c.want, v.String())
		})
	}
}

func TestParseErrors(t *testing.T) {
	eng := mathparse.Language("ENG")
	t.Run("unsupported", func(t *testing.T) {
		_, err := mathparse.Parse("two squiggle eight", eng)
		var uerr *mathparse.UnsupportedTermError
		require.ErrorAs(t, err, &uerr)
		assert.Equal(t, "squiggle", uerr.Term)
		assert.Equal(t, 1, uerr.Pos())
	})
	t.Run("insufficient", func(t *testing.T) {
		_, err := mathparse.Parse("two plus times three", eng)
		var ierr *mathparse.InsufficientOperandsError
		require.ErrorAs(t, err, &ierr)
		assert.Equal(t, "+", ierr.Operator)
	})
	t.Run("bracket", func(t *testing.T) {
		_, err := mathparse.Parse("(1 + 2")
		var berr *mathparse.BracketError
		require.ErrorAs(t, err, &berr)
		_, err = mathparse.Parse("1 + 2)")
		require.ErrorAs(t, err, &berr)
		assert.Equal(t, ")", berr.Right)
	})
	t.Run("empty", func(t *testing.T) {
		_, err := mathparse.Parse("")
		var eerr *mathparse.EmptyResultError
		assert.ErrorAs(t, err, &eerr)
	})
	t.Run("language", func(t *testing.T) {
		_, err := mathparse.Parse("1 + 1", mathparse.Language("123"))
		var lerr *mathparse.InvalidLanguageCodeError
		require.ErrorAs(t, err, &lerr)
		assert.Equal(t, "123 is not an available language code", err.Error())
	})
	t.Run("domain", func(t *testing.T) {
		_, err := mathparse.Parse("square root of negative four", eng)
		var derr *mathparse.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, "sqrt", derr.Func)
	})
	t.Run("input error", func(t *testing.T) {
		_, err := mathparse.Parse("1 $ 2")
		var ierr mathparse.InputError
		require.True(t, errors.As(err, &ierr))
		assert.Equal(t, 1, ierr.Pos())
	})
}

func TestParserLanguage(t *testing.T) {
	p, err := mathparse.New(mathparse.Language("FRE"), nil)
	require.NoError(t, err)
	assert.Equal(t, "FRE", p.Language())
	q, err := mathparse.New()
	require.NoError(t, err)
	assert.Equal(t, "", q.Language())
	assert.Equal(t, "two plus two", q.Normalize("two plus two"))
	assert.Equal(t, []string{"two", "plus", "two"}, q.Tokenize("two plus two"))
}

func TestParserLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p, err := mathparse.New(mathparse.Language("ENG"), mathparse.WithLogger(zap.New(core)))
	require.NoError(t, err)
	_, err = p.Parse("one plus one")
	require.NoError(t, err)
	msgs := make([]string, 0, logs.Len())
	for _, e := range logs.All() {
		msgs = append(msgs, e.Message)
	}
	assert.Equal(t, []string{"normalized", "tokenized", "postfix", "evaluated"}, msgs)
	assert.Equal(t, "1 + 1", logs.FilterMessage("normalized").All()[0].ContextMap()["text"])
}

func TestParserConcurrent(t *testing.T) {
	p, err := mathparse.New(mathparse.Language("ENG"))
	require.NoError(t, err)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				v, err := p.Parse("twenty one times two")
				if assert.NoError(t, err) {
					assert.Equal(t, "42", v.String())
				}
			}
		}()
	}
	wg.Wait()
}
