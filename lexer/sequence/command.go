// Package sequence holds the control commands the lexer recognizes.
//
// The set is closed and intentionally smaller than what VT100/ANSI
// terminals understand. Not implemented:
//   - ESC[=Valueh / ESC[=Valuel  set and reset screen mode
//   - ESC[Code;String;...p       redefine keyboard strings
package sequence

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/hnimtadd/ansilex/lexer/utils"
	"github.com/mitchellh/hashstructure/v2"
)

type CommandType uint8

const (
	CommandTypeUnknown CommandType = iota
	// ESC[H or ESC[f
	CommandTypeCursorHome
	// ESC[Line;ColumnH or ESC[Line;Columnf
	CommandTypeCursorPosition
	// ESC[ValueA
	CommandTypeCursorUp
	// ESC[ValueB
	CommandTypeCursorDown
	// ESC[ValueC
	CommandTypeCursorForward
	// ESC[ValueD
	CommandTypeCursorBackward
	// ESC[s
	CommandTypeSaveCursorPosition
	// ESC[u
	CommandTypeRestoreCursorPosition
	// ESC[2J
	CommandTypeEraseDisplay
	// ESC[K
	CommandTypeEraseLine
	// ESC[Value;...;Valuem
	CommandTypeSetGraphicMode
)

func (t CommandType) String() string {
	switch t {
	case CommandTypeCursorHome:
		return "CursorHome"
	case CommandTypeCursorPosition:
		return "CursorPosition"
	case CommandTypeCursorUp:
		return "CursorUp"
	case CommandTypeCursorDown:
		return "CursorDown"
	case CommandTypeCursorForward:
		return "CursorForward"
	case CommandTypeCursorBackward:
		return "CursorBackward"
	case CommandTypeSaveCursorPosition:
		return "SaveCursorPosition"
	case CommandTypeRestoreCursorPosition:
		return "RestoreCursorPosition"
	case CommandTypeEraseDisplay:
		return "EraseDisplay"
	case CommandTypeEraseLine:
		return "EraseLine"
	case CommandTypeSetGraphicMode:
		return "SetGraphicMode"
	default:
		return "Unknown"
	}
}

// Command is a recognized control sequence. Which fields are meaningful
// depends on Type:
//   - CursorPosition: Row, Col
//   - CursorUp/Down/Forward/Backward: Amount
//   - SetGraphicMode: Values, never empty
type Command struct {
	Type   CommandType
	Row    uint
	Col    uint
	Amount uint
	Values []uint
}

func CursorHome() Command { return Command{Type: CommandTypeCursorHome} }

func CursorPosition(row, col uint) Command {
	return Command{Type: CommandTypeCursorPosition, Row: row, Col: col}
}

func CursorUp(amount uint) Command {
	return Command{Type: CommandTypeCursorUp, Amount: amount}
}

func CursorDown(amount uint) Command {
	return Command{Type: CommandTypeCursorDown, Amount: amount}
}

func CursorForward(amount uint) Command {
	return Command{Type: CommandTypeCursorForward, Amount: amount}
}

func CursorBackward(amount uint) Command {
	return Command{Type: CommandTypeCursorBackward, Amount: amount}
}

func SaveCursorPosition() Command { return Command{Type: CommandTypeSaveCursorPosition} }

func RestoreCursorPosition() Command { return Command{Type: CommandTypeRestoreCursorPosition} }

func EraseDisplay() Command { return Command{Type: CommandTypeEraseDisplay} }

func EraseLine() Command { return Command{Type: CommandTypeEraseLine} }

// SetGraphicMode builds an SGR command. It panics without values since an
// SGR command always carries at least one.
func SetGraphicMode(values ...uint) Command {
	utils.Assert(len(values) > 0, "SetGraphicMode requires at least one value")
	return Command{Type: CommandTypeSetGraphicMode, Values: values}
}

// Equal reports structural equality. Values is compared element-wise, a nil
// and an empty slice are the same.
func (c Command) Equal(other Command) bool {
	return c.Type == other.Type &&
		c.Row == other.Row &&
		c.Col == other.Col &&
		c.Amount == other.Amount &&
		slices.Equal(c.Values, other.Values)
}

// Hash returns a structural hash of the command, suitable as a map key when
// grouping equal commands.
func (c Command) Hash() uint64 {
	hashed, err := hashstructure.Hash(c, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash command: %v", err))
	return hashed
}

func (c Command) String() string {
	switch c.Type {
	case CommandTypeCursorPosition:
		return fmt.Sprintf("CSI %s(%d, %d)", c.Type, c.Row, c.Col)
	case CommandTypeCursorUp,
		CommandTypeCursorDown,
		CommandTypeCursorForward,
		CommandTypeCursorBackward:
		return fmt.Sprintf("CSI %s(%d)", c.Type, c.Amount)
	case CommandTypeSetGraphicMode:
		return fmt.Sprintf("CSI %s%v", c.Type, c.Values)
	default:
		return fmt.Sprintf("CSI %s", c.Type)
	}
}

// Encode returns the canonical escape sequence for c: no leading zeros and
// 'H' for both cursor home and cursor position. Unknown commands and SGR
// commands without values encode to the empty string.
func (c Command) Encode() string {
	b := new(strings.Builder)
	b.WriteString("\x1b[")
	switch c.Type {
	case CommandTypeCursorHome:
		b.WriteByte('H')
	case CommandTypeCursorPosition:
		fmt.Fprintf(b, "%d;%dH", c.Row, c.Col)
	case CommandTypeCursorUp:
		fmt.Fprintf(b, "%dA", c.Amount)
	case CommandTypeCursorDown:
		fmt.Fprintf(b, "%dB", c.Amount)
	case CommandTypeCursorForward:
		fmt.Fprintf(b, "%dC", c.Amount)
	case CommandTypeCursorBackward:
		fmt.Fprintf(b, "%dD", c.Amount)
	case CommandTypeSaveCursorPosition:
		b.WriteByte('s')
	case CommandTypeRestoreCursorPosition:
		b.WriteByte('u')
	case CommandTypeEraseDisplay:
		b.WriteString("2J")
	case CommandTypeEraseLine:
		b.WriteByte('K')
	case CommandTypeSetGraphicMode:
		if len(c.Values) == 0 {
			return ""
		}
		for i, v := range c.Values {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(strconv.FormatUint(uint64(v), 10))
		}
		b.WriteByte('m')
	default:
		return ""
	}
	return b.String()
}
