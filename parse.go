package mathparse

import (
	"go.uber.org/zap"
)

// Parser evaluates expressions written in symbols or in the words of one
// language. A Parser is safe for concurrent use.
type Parser struct {
	lang string
	lex  *lexicon
	stop map[string]bool
	log  *zap.Logger
}

// New creates a parser. It returns an *InvalidLanguageCodeError if the
// language option names a language with no vocabulary.
func New(opts ...Option) (*Parser, error) {
	var s settings
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		s = opt.option(s)
	}
	p := Parser{lang: s.lang, stop: stopSet(s.stop), log: s.log}
	if p.log == nil {
		p.log = zap.NewNop()
	}
	if s.lang != "" {
		l, err := lexiconFor(s.lang)
		if err != nil {
			return nil, err
		}
		p.lex = l
	}
	return &p, nil
}

// Language returns the code of the parser's language, or the empty string if
// it reads only symbols.
func (p *Parser) Language() string {
	return p.lang
}

// Normalize rewrites the math words in text to symbols. Without a language,
// it returns text unchanged.
func (p *Parser) Normalize(text string) string {
	if p.lex == nil {
		return text
	}
	return p.lex.normalize(text, p.stop)
}

// Tokenize splits text into tokens, keeping the multi-word phrases of the
// parser's language whole.
func (p *Parser) Tokenize(text string) []string {
	return tokenize(text, p.lex)
}

// Extract returns the math part of text. Without a language, only symbols
// are math.
func (p *Parser) Extract(text string) string {
	return extract(text, p.lex)
}

// Parse evaluates text. Division by zero results in Undefined. Malformed
// expressions result in an error implementing InputError, an
// *EmptyResultError, or a *DomainError.
func (p *Parser) Parse(text string) (Value, error) {
	s := p.Normalize(text)
	if p.lex != nil {
		p.log.Debug("normalized", zap.String("lang", p.lang), zap.String("text", s))
	}
	tokens := tokenize(s, nil)
	if p.lex == nil && len(p.stop) > 0 {
		r := tokens[:0]
		for _, t := range tokens {
			if !p.stop[t] {
				r = append(r, t)
			}
		}
		tokens = r
	}
	tokens = Disambiguate(tokens)
	p.log.Debug("tokenized", zap.Strings("tokens", tokens))
	postfix, err := ToPostfix(tokens)
	if err != nil {
		p.log.Debug("postfix conversion failed", zap.Error(err))
		return Value{}, err
	}
	p.log.Debug("postfix", zap.Stringer("postfix", postfix))
	v, err := Evaluate(postfix)
	if err != nil {
		p.log.Debug("evaluation failed", zap.Error(err))
		return Value{}, err
	}
	p.log.Debug("evaluated", zap.Stringer("result", v), zap.Stringer("kind", v.Kind()))
	return v, nil
}

// Parse is a shortcut to create a parser and evaluate text.
func Parse(text string, opts ...Option) (Value, error) {
	p, err := New(opts...)
	if err != nil {
		return Value{}, err
	}
	return p.Parse(text)
}
