// Package ansilex splits text carrying ANSI escape sequences into plain-text
// runs and recognized control commands.
package ansilex

import (
	"github.com/hnimtadd/ansilex/lexer/stream"
	"github.com/hnimtadd/ansilex/logger"
)

type Lexer struct {
	// The scanner splitting input buffers. It is stateless, so one Lexer
	// can serve concurrent callers.
	scanner *stream.Scanner

	sanitizeText bool

	logger logger.Logger
}

type Options struct {
	// Logger receives debug records for unrecognized escapes and warnings
	// from Dispatch. Nil discards everything.
	Logger logger.Logger

	// SanitizeText replaces ill-formed UTF-8 in text tokens with U+FFFD.
	// Sanitized tokens own a copy of their text and may no longer match
	// their span byte for byte.
	SanitizeText bool
}

func NewLexer(opts Options) *Lexer {
	l := logger.OrDiscard(opts.Logger)
	return &Lexer{
		scanner:      stream.NewScanner(l),
		sanitizeText: opts.SanitizeText,
		logger:       l,
	}
}

// Lex splits text into tokens in input order.
func (l *Lexer) Lex(text string) []stream.Token {
	tokens := l.scanner.Scan(text)
	if !l.sanitizeText {
		return tokens
	}
	for i := range tokens {
		if tokens[i].Type == stream.TokenTypeText {
			tokens[i].Text = tokens[i].Sanitized()
		}
	}
	return tokens
}
