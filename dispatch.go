package ansilex

import (
	"fmt"
	"runtime/debug"

	"github.com/hnimtadd/ansilex/lexer/handler"
	"github.com/hnimtadd/ansilex/lexer/sequence"
	"github.com/hnimtadd/ansilex/lexer/stream"
)

// Dispatch hands every token to h in order. h only has to implement the
// handler interfaces it cares about; tokens routed to an interface h does
// not implement are logged and skipped.
//
// A panic raised by h stops the dispatch and is returned as an error.
func (l *Lexer) Dispatch(tokens []stream.Token, h any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("panic in handler", "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("panic in handler: %v", r)
		}
	}()
	if h == nil {
		l.logger.Warn("handler is nil, ignoring", "tokens", len(tokens))
		return nil
	}
	for _, tok := range tokens {
		switch tok.Type {
		case stream.TokenTypeText:
			l.print(h, tok.Text)
		case stream.TokenTypeControl:
			l.control(h, tok.Command)
		default:
			l.logger.Warn("unknown token type", "token", tok.String())
		}
	}
	return nil
}

func (l *Lexer) print(h any, text string) {
	if handler, implemented := h.(handler.PrintHandler); implemented {
		handler.Print(text)
	} else {
		l.logger.Warn("unimplemented print", "bytes", len(text))
	}
}

// control routes cmd to the handler family owning its type.
func (l *Lexer) control(h any, cmd sequence.Command) {
	switch cmd.Type {
	case sequence.CommandTypeCursorHome,
		sequence.CommandTypeCursorPosition,
		sequence.CommandTypeCursorUp,
		sequence.CommandTypeCursorDown,
		sequence.CommandTypeCursorForward,
		sequence.CommandTypeCursorBackward,
		sequence.CommandTypeSaveCursorPosition,
		sequence.CommandTypeRestoreCursorPosition:
		handler, implemented := h.(handler.CursorHandler)
		if !implemented {
			l.logger.Warn("unimplemented cursor command", "command", cmd.String())
			return
		}
		switch cmd.Type {
		case sequence.CommandTypeCursorHome:
			handler.CursorHome()
		case sequence.CommandTypeCursorPosition:
			handler.CursorPosition(cmd.Row, cmd.Col)
		case sequence.CommandTypeCursorUp:
			handler.CursorUp(cmd.Amount)
		case sequence.CommandTypeCursorDown:
			handler.CursorDown(cmd.Amount)
		case sequence.CommandTypeCursorForward:
			handler.CursorForward(cmd.Amount)
		case sequence.CommandTypeCursorBackward:
			handler.CursorBackward(cmd.Amount)
		case sequence.CommandTypeSaveCursorPosition:
			handler.SaveCursorPosition()
		case sequence.CommandTypeRestoreCursorPosition:
			handler.RestoreCursorPosition()
		}

	case sequence.CommandTypeEraseDisplay, sequence.CommandTypeEraseLine:
		handler, implemented := h.(handler.EraseHandler)
		if !implemented {
			l.logger.Warn("unimplemented erase command", "command", cmd.String())
			return
		}
		if cmd.Type == sequence.CommandTypeEraseDisplay {
			handler.EraseDisplay()
		} else {
			handler.EraseLine()
		}

	case sequence.CommandTypeSetGraphicMode:
		if handler, implemented := h.(handler.SGRHandler); implemented {
			handler.SetGraphicMode(cmd.Values)
		} else {
			l.logger.Warn("unimplemented SGR command", "command", cmd.String())
		}

	default:
		l.logger.Warn("unknown command, ignoring", "command", cmd.String())
	}
}
