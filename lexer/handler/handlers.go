package handler

type (
	PrintHandler interface {
		// Print receives a run of plain text, exactly as it appeared in
		// the input.
		Print(text string)
	}

	CursorHandler interface {
		// CursorHome moves the cursor to the upper left corner (ESC[H).
		CursorHome()
		// CursorPosition moves the cursor to row and col (ESC[row;colH).
		CursorPosition(row, col uint)
		// CursorUp moves the cursor up by amount lines (ESC[nA).
		CursorUp(amount uint)
		// CursorDown moves the cursor down by amount lines (ESC[nB).
		CursorDown(amount uint)
		// CursorForward moves the cursor right by amount columns (ESC[nC).
		CursorForward(amount uint)
		// CursorBackward moves the cursor left by amount columns (ESC[nD).
		CursorBackward(amount uint)
		// SaveCursorPosition stores the current position (ESC[s).
		SaveCursorPosition()
		// RestoreCursorPosition returns to the stored position (ESC[u).
		RestoreCursorPosition()
	}

	EraseHandler interface {
		// EraseDisplay clears the screen (ESC[2J).
		EraseDisplay()
		// EraseLine clears from the cursor to the end of line (ESC[K).
		EraseLine()
	}

	SGRHandler interface {
		// SetGraphicMode receives the SGR parameters in order (ESC[...m).
		SetGraphicMode(values []uint)
	}
)
