package ansilex

import (
	"github.com/hnimtadd/ansilex/lexer/sequence"
	"github.com/hnimtadd/ansilex/lexer/stream"
)

// CommandCount is how often one distinct command occurred.
type CommandCount struct {
	Command sequence.Command
	Count   int
}

// Summary describes what a token sequence contains.
type Summary struct {
	TextTokens    int
	ControlTokens int

	// Bytes of plain text and the terminal cells they occupy when printed.
	TextBytes int
	TextCells int

	// Distinct commands keyed by Command.Hash.
	Commands map[uint64]CommandCount
}

// Stats summarizes tokens.
func Stats(tokens []stream.Token) Summary {
	s := Summary{Commands: make(map[uint64]CommandCount)}
	for _, tok := range tokens {
		switch tok.Type {
		case stream.TokenTypeText:
			s.TextTokens++
			s.TextBytes += len(tok.Text)
			s.TextCells += tok.Width()
		case stream.TokenTypeControl:
			s.ControlTokens++
			key := tok.Command.Hash()
			entry := s.Commands[key]
			entry.Command = tok.Command
			entry.Count++
			s.Commands[key] = entry
		}
	}
	return s
}

// Count returns how many times cmd occurred.
func (s Summary) Count(cmd sequence.Command) int {
	return s.Commands[cmd.Hash()].Count
}
