// Package stream splits a buffer into text runs and control sequences.
package stream

import (
	"github.com/hnimtadd/ansilex/lexer/ansi"
	"github.com/hnimtadd/ansilex/lexer/parser"
	"github.com/hnimtadd/ansilex/lexer/utils"
	"github.com/hnimtadd/ansilex/logger"
)

var defaultScanner = NewScanner(logger.Discard)

// Scan splits text into tokens with a scanner that does not log.
func Scan(text string) []Token {
	return defaultScanner.Scan(text)
}

// Scanner walks a whole buffer byte by byte, handing every ESC to the
// parser. It keeps no state between calls and is safe for concurrent use.
type Scanner struct {
	logger logger.Logger
}

func NewScanner(l logger.Logger) *Scanner {
	return &Scanner{logger: logger.OrDiscard(l)}
}

// Scan splits text into tokens in input order. Empty input yields no tokens.
//
// Text tokens are substrings of text, not copies. An ESC that does not start
// a recognized sequence is kept as ordinary text and begins the next text
// run. Concatenating text[t.Start:t.End] over all tokens gives back text.
//
// text is scanned as raw bytes and is assumed to be valid UTF-8; since ESC
// and every sequence byte are ASCII, a split never lands inside a multi-byte
// character. Use Token.Sanitized when the input cannot be trusted.
func (s *Scanner) Scan(text string) []Token {
	if len(text) == 0 {
		return nil
	}

	var tokens []Token
	// watermark is the start of the text run not yet emitted.
	watermark := 0
	idx := 0
	for idx < len(text) {
		if text[idx] != ansi.C0.ESC {
			idx++
			continue
		}

		// flush text seen so far, the ESC itself is not part of it
		if idx > watermark {
			tokens = append(tokens, Text(text[watermark:idx], watermark))
			watermark = idx
		}

		res, ok := parser.Match(text[idx+1:], len(text)-idx-1)
		if !ok {
			s.logger.Debug(
				"unrecognized escape sequence, keeping as text",
				"offset", idx,
				"next", ansi.Quote(text[idx:min(idx+8, len(text))]),
				"state", res.State.String(),
				"stopped_at", rejectedByte(text, idx+1+res.Offset),
			)
			idx++
			continue
		}
		consumed, cmd := res.Consumed, res.Command

		// ESC + bytes [0, consumed] after it
		end := idx + consumed + 2
		utils.Assert(end <= len(text), "control sequence past end of input")
		tokens = append(tokens, Control(cmd, idx, end))
		s.logger.Debug("control sequence", "offset", idx, "command", cmd.String())

		idx = end
		watermark = idx
	}

	if watermark < len(text) {
		tokens = append(tokens, Text(text[watermark:], watermark))
	}
	return tokens
}

// rejectedByte names the byte at pos for logs.
func rejectedByte(text string, pos int) string {
	if pos >= len(text) {
		return "end of input"
	}
	return ansi.String(text[pos])
}
