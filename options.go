package mathparse

import "go.uber.org/zap"

// Option is an option for creating a Parser.
type Option interface {
	option(settings) settings
}

// settings collects options.
type settings struct {
	lang string
	stop []string
	log  *zap.Logger
}

type (
	langopt string
	stopopt []string
	logopt  struct{ log *zap.Logger }
)

// Language sets the language whose math words the parser reads, by code.
// Without a language, the parser reads only symbols.
func Language(code string) Option {
	return langopt(code)
}

func (o langopt) option(s settings) settings {
	s.lang = string(o)
	return s
}

// Stopwords adds words that the parser ignores. Stopwords are removed only
// where they appear as whole words.
func Stopwords(words ...string) Option {
	return stopopt(words)
}

func (o stopopt) option(s settings) settings {
	s.stop = append(s.stop[:len(s.stop):len(s.stop)], o...)
	return s
}

// WithLogger sets a logger that receives each stage of parsing at debug
// level. The default discards logs.
func WithLogger(log *zap.Logger) Option {
	return logopt{log}
}

func (o logopt) option(s settings) settings {
	s.log = o.log
	return s
}
