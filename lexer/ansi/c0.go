package ansi

type c0 struct {
	BEL uint8 // BEL is the bell character (Caret: ^G, Char: \a).
	BS  uint8 // BS is the backspace character (Caret: ^H, Char: \b).
	CR  uint8 // CR is the carriage return character (Caret: ^M, Char: \r).
	ESC uint8 // ESC is the Escape character (Caret: ^[).
	HT  uint8 // HT is the horizontal tab character (Caret: ^I, Char: \t).
	LF  uint8 // LF is the line feed character (Caret: ^J, Char: \n).
}

// C0 (7-bit) control characters the lexer cares about. Only ESC takes part
// in recognition; the others exist so debug output can name them.
var C0 = c0{
	BEL: 0x07,
	BS:  0x08,
	CR:  0x0D,
	ESC: 0x1B,
	HT:  0x09,
	LF:  0x0A,
}

// Bytes of the control sequence grammar following ESC.
const (
	// Introducer is the second byte of every recognized sequence: ESC [
	Introducer uint8 = '['
	// Separator splits numeric parameters.
	Separator uint8 = ';'
)

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c uint8) bool {
	return c >= '0' && c <= '9'
}
