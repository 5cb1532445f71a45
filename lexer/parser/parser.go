// Package parser recognizes a single ANSI control sequence.
//
// Grammar, with ESC already consumed by the caller:
//
//	'[' ( 'H' | 'f' | 's' | 'u' | 'K' | '2' 'J'
//	    | value ( 'A' | 'B' | 'C' | 'D' | 'm' )
//	    | value ( ';' value )+ 'm'
//	    | value ( ';' value )+ ';'? ( 'H' | 'f' ) )
//
// where value is one or more ASCII digits. Matching is case sensitive.
package parser

import (
	"github.com/hnimtadd/ansilex/lexer/ansi"
	"github.com/hnimtadd/ansilex/lexer/sequence"
	"github.com/hnimtadd/ansilex/lexer/utils"
)

// Recognize tries to read one control sequence from buf, which starts right
// after the ESC byte. Only the first length bytes of buf are looked at;
// callers pass the number of valid bytes remaining in their buffer.
//
// On success consumed is the index in buf of the byte terminating the
// sequence, so the sequence occupies buf[0:consumed+1].
func Recognize[T ~string | ~[]byte](buf T, length int) (consumed int, cmd sequence.Command, ok bool) {
	res, ok := Match(buf, length)
	if !ok {
		return 0, sequence.Command{}, false
	}
	return res.Consumed, res.Command, true
}

// Result is the outcome of Match.
type Result struct {
	// Index of the terminating byte, set on success.
	Consumed int
	Command  sequence.Command

	// State the recognizer was in when it stopped and the index of the
	// byte it stopped at. On failure Offset equals the examined length
	// when the input ran out before a terminator.
	State  State
	Offset int
}

// Match is Recognize reporting where recognition stopped, for callers that
// want to explain a rejected sequence.
func Match[T ~string | ~[]byte](buf T, length int) (Result, bool) {
	r := recognizer[T]{buf: buf, length: min(length, len(buf))}
	for r.idx < r.length {
		done, accepted := r.next(r.buf[r.idx])
		if !accepted {
			return Result{State: r.state, Offset: r.idx}, false
		}
		if done {
			return Result{
				Consumed: r.idx,
				Command:  r.cmd,
				State:    r.state,
				Offset:   r.idx,
			}, true
		}
		r.idx++
	}
	// ran out of input before a terminator
	return Result{State: r.state, Offset: max(r.length, 0)}, false
}

type recognizer[T ~string | ~[]byte] struct {
	buf    T
	state  State
	idx    int
	length int

	// param tracking
	params      []uint
	paramAcc    uint
	paramAccIdx int

	cmd sequence.Command
}

// next feeds the byte at r.idx. It returns done once a command is built and
// ok=false as soon as the input cannot be a recognized sequence.
func (r *recognizer[T]) next(c uint8) (done bool, ok bool) {
	switch r.state {
	case StateIntroducer:
		if c != ansi.Introducer {
			return false, false
		}
		r.state = StateDispatch
		return false, true

	case StateDispatch:
		return r.dispatch(c)

	case StateFirstValue:
		switch {
		case ansi.IsDigit(c):
			return false, r.collect(c)
		case c == 'A':
			return r.cursor(sequence.CursorUp)
		case c == 'B':
			return r.cursor(sequence.CursorDown)
		case c == 'C':
			return r.cursor(sequence.CursorForward)
		case c == 'D':
			return r.cursor(sequence.CursorBackward)
		case c == 'm':
			if !r.finalize() {
				return false, false
			}
			r.cmd = sequence.SetGraphicMode(r.params...)
			return true, true
		case c == ansi.Separator:
			if !r.finalize() {
				return false, false
			}
			r.state = StateValues
			return false, true
		default:
			return false, false
		}

	case StateValues:
		switch {
		case ansi.IsDigit(c):
			return false, r.collect(c)
		case c == ansi.Separator:
			return false, r.finalize()
		case c == 'H' || c == 'f':
			// A pending value counts, a trailing ';' does not; extra
			// values beyond row and column are dropped.
			if r.paramAccIdx > 0 {
				r.finalize()
			}
			if len(r.params) < 2 {
				return false, false
			}
			r.cmd = sequence.CursorPosition(r.params[0], r.params[1])
			return true, true
		case c == 'm':
			if !r.finalize() {
				return false, false
			}
			r.cmd = sequence.SetGraphicMode(r.params...)
			return true, true
		default:
			return false, false
		}
	}
	return false, false
}

// dispatch handles the first byte after '['. Single byte commands finish
// here; a digit starts the first value.
func (r *recognizer[T]) dispatch(c uint8) (done bool, ok bool) {
	switch c {
	case 'H', 'f':
		r.cmd = sequence.CursorHome()
		return true, true
	case 's':
		r.cmd = sequence.SaveCursorPosition()
		return true, true
	case 'u':
		r.cmd = sequence.RestoreCursorPosition()
		return true, true
	case 'K':
		r.cmd = sequence.EraseLine()
		return true, true
	case '2':
		// ESC[2J, otherwise '2' is the first digit of a value.
		if r.peek() == 'J' {
			r.idx++
			r.cmd = sequence.EraseDisplay()
			return true, true
		}
	}
	if !ansi.IsDigit(c) {
		return false, false
	}
	r.state = StateFirstValue
	return false, r.collect(c)
}

// cursor finishes a relative cursor move built by newCmd from the first
// value.
func (r *recognizer[T]) cursor(newCmd func(uint) sequence.Command) (done bool, ok bool) {
	if r.paramAccIdx == 0 {
		return false, false
	}
	r.cmd = newCmd(r.paramAcc)
	return true, true
}

// peek returns the byte after the current one, or 0 past the end.
func (r *recognizer[T]) peek() uint8 {
	if r.idx+1 >= r.length {
		return 0
	}
	return r.buf[r.idx+1]
}

// collect adds a digit to the accumulator. Overflowing the native uint
// width rejects the whole sequence.
func (r *recognizer[T]) collect(c uint8) bool {
	utils.Assert(ansi.IsDigit(c))
	acc, overflow := utils.AppendDigit(r.paramAcc, c-'0')
	if overflow {
		return false
	}
	r.paramAcc = acc
	r.paramAccIdx++
	return true
}

// finalize moves the accumulator into params. An empty accumulator, as in
// ";;" or a leading ';', is a parse failure.
func (r *recognizer[T]) finalize() bool {
	if r.paramAccIdx == 0 {
		return false
	}
	r.params = append(r.params, r.paramAcc)
	r.paramAcc = 0
	r.paramAccIdx = 0
	return true
}
