package stream

import (
	"testing"

	"github.com/hnimtadd/ansilex/lexer/sequence"
	"github.com/stretchr/testify/assert"
)

func TestTokenWidth(t *testing.T) {
	assert.Equal(t, 5, Text("hello", 0).Width())
	assert.Equal(t, 4, Text("世界", 0).Width())
	assert.Equal(t, 0, Control(sequence.EraseLine(), 0, 3).Width())
}

func TestTokenSanitized(t *testing.T) {
	assert.Equal(t, "hello", Text("hello", 0).Sanitized())
	assert.Equal(t, "a\uFFFDb", Text("a\xffb", 0).Sanitized())
	assert.Equal(t, "", Control(sequence.CursorHome(), 0, 3).Sanitized())
}

func TestTokenString(t *testing.T) {
	assert.Equal(t, `Text[0:5]("hello")`, Text("hello", 0).String())
	assert.Equal(t, `Text[2:4]("ESC)")`, Text("\x1b)", 2).String())
	assert.Equal(t, "Control[0:4](CSI EraseDisplay)", Control(sequence.EraseDisplay(), 0, 4).String())
}

func TestTokenEqual(t *testing.T) {
	assert.True(t, Text("a", 1).Equal(Text("a", 1)))
	assert.False(t, Text("a", 1).Equal(Text("a", 2)))
	assert.True(t, Control(sequence.SetGraphicMode(1), 0, 4).Equal(Control(sequence.SetGraphicMode(1), 0, 4)))
	assert.False(t, Control(sequence.SetGraphicMode(1), 0, 4).Equal(Control(sequence.SetGraphicMode(2), 0, 4)))
}

func TestTokenTypeString(t *testing.T) {
	assert.Equal(t, "Text", TokenTypeText.String())
	assert.Equal(t, "Control", TokenTypeControl.String())
	assert.Equal(t, "Unknown", TokenType(9).String())
}
