package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandString(t *testing.T) {
	tcs := []struct {
		name     string
		cmd      Command
		expected string
	}{
		{name: "home", cmd: CursorHome(), expected: "CSI CursorHome"},
		{name: "position", cmd: CursorPosition(3, 4), expected: "CSI CursorPosition(3, 4)"},
		{name: "up", cmd: CursorUp(9), expected: "CSI CursorUp(9)"},
		{name: "backward", cmd: CursorBackward(1), expected: "CSI CursorBackward(1)"},
		{name: "sgr", cmd: SetGraphicMode(0, 31), expected: "CSI SetGraphicMode[0 31]"},
		{name: "unknown", cmd: Command{}, expected: "CSI Unknown"},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.cmd.String())
		})
	}
}

func TestCommandEncode(t *testing.T) {
	tcs := []struct {
		name     string
		cmd      Command
		expected string
	}{
		{name: "home", cmd: CursorHome(), expected: "\x1b[H"},
		{name: "position", cmd: CursorPosition(0, 222), expected: "\x1b[0;222H"},
		{name: "up", cmd: CursorUp(9999), expected: "\x1b[9999A"},
		{name: "down", cmd: CursorDown(0), expected: "\x1b[0B"},
		{name: "forward", cmd: CursorForward(1234567890), expected: "\x1b[1234567890C"},
		{name: "backward", cmd: CursorBackward(1), expected: "\x1b[1D"},
		{name: "save", cmd: SaveCursorPosition(), expected: "\x1b[s"},
		{name: "restore", cmd: RestoreCursorPosition(), expected: "\x1b[u"},
		{name: "erase display", cmd: EraseDisplay(), expected: "\x1b[2J"},
		{name: "erase line", cmd: EraseLine(), expected: "\x1b[K"},
		{name: "sgr single", cmd: SetGraphicMode(0), expected: "\x1b[0m"},
		{name: "sgr list", cmd: SetGraphicMode(1, 38, 2, 40, 44, 52), expected: "\x1b[1;38;2;40;44;52m"},
		{name: "unknown", cmd: Command{}, expected: ""},
		{name: "sgr without values", cmd: Command{Type: CommandTypeSetGraphicMode}, expected: ""},
		{name: "sgr empty values", cmd: Command{Type: CommandTypeSetGraphicMode, Values: []uint{}}, expected: ""},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.cmd.Encode())
		})
	}
}

func TestCommandEqual(t *testing.T) {
	assert.True(t, CursorPosition(1, 2).Equal(CursorPosition(1, 2)))
	assert.False(t, CursorPosition(1, 2).Equal(CursorPosition(2, 1)))
	assert.False(t, CursorUp(1).Equal(CursorDown(1)))
	assert.True(t, SetGraphicMode(1, 2).Equal(SetGraphicMode(1, 2)))
	assert.False(t, SetGraphicMode(1, 2).Equal(SetGraphicMode(1, 2, 3)))
	assert.True(t, EraseLine().Equal(Command{Type: CommandTypeEraseLine, Values: []uint{}}))
}

func TestCommandHash(t *testing.T) {
	assert.Equal(t, SetGraphicMode(0, 31).Hash(), SetGraphicMode(0, 31).Hash())
	assert.NotEqual(t, SetGraphicMode(0, 31).Hash(), SetGraphicMode(31, 0).Hash())
	assert.NotEqual(t, CursorUp(1).Hash(), CursorDown(1).Hash())
	assert.NotEqual(t, CursorPosition(1, 2).Hash(), CursorPosition(2, 1).Hash())
}

func TestSetGraphicModeRequiresValues(t *testing.T) {
	assert.Panics(t, func() { SetGraphicMode() })
}
