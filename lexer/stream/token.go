package stream

import (
	"fmt"
	"strings"

	"github.com/hnimtadd/ansilex/lexer/ansi"
	"github.com/hnimtadd/ansilex/lexer/sequence"
	dw "github.com/mattn/go-runewidth"
	"golang.org/x/text/encoding/unicode"
)

type TokenType uint8

const (
	// A run of bytes to print as-is.
	TokenTypeText TokenType = iota
	// A recognized control sequence.
	TokenTypeControl
)

func (t TokenType) String() string {
	switch t {
	case TokenTypeText:
		return "Text"
	case TokenTypeControl:
		return "Control"
	default:
		return "Unknown"
	}
}

// Token is one unit of scanner output.
//
// Start and End delimit the bytes of the input the token came from, ESC
// included for controls. For text tokens Text is exactly input[Start:End]
// and shares memory with the input.
type Token struct {
	Type    TokenType
	Text    string
	Command sequence.Command

	Start, End int
}

// Text builds a text token for a run starting at offset start.
func Text(text string, start int) Token {
	return Token{
		Type:  TokenTypeText,
		Text:  text,
		Start: start,
		End:   start + len(text),
	}
}

// Control builds a control token whose source spans [start, end).
func Control(cmd sequence.Command, start, end int) Token {
	return Token{
		Type:    TokenTypeControl,
		Command: cmd,
		Start:   start,
		End:     end,
	}
}

// Equal compares type, payload and span.
func (t Token) Equal(other Token) bool {
	return t.Type == other.Type &&
		t.Text == other.Text &&
		t.Command.Equal(other.Command) &&
		t.Start == other.Start &&
		t.End == other.End
}

// Width returns the number of terminal cells a text token occupies when
// printed. Controls occupy none.
func (t Token) Width() int {
	if t.Type != TokenTypeText {
		return 0
	}
	return dw.StringWidth(t.Text)
}

// Sanitized returns the text with every ill-formed UTF-8 sequence replaced
// by U+FFFD. The scanner itself assumes valid input and never validates.
func (t Token) Sanitized() string {
	if t.Type != TokenTypeText {
		return ""
	}
	out, err := unicode.UTF8.NewDecoder().String(t.Text)
	if err != nil {
		return strings.ToValidUTF8(t.Text, "\uFFFD")
	}
	return out
}

func (t Token) String() string {
	switch t.Type {
	case TokenTypeText:
		return fmt.Sprintf("Text[%d:%d](%q)", t.Start, t.End, ansi.Quote(t.Text))
	case TokenTypeControl:
		return fmt.Sprintf("Control[%d:%d](%s)", t.Start, t.End, t.Command)
	default:
		return "Unknown"
	}
}
