package ansi

import "fmt"

// table is a map of ANSI control characters to their names.
// any unsupported ansi characters will have hex value key.
var table = map[uint8]string{
	0x00:   "NUL", // Null
	C0.BEL: "BEL", // Bell
	C0.BS:  "BS",  // Backspace
	C0.HT:  "HT",  // Horizontal Tab
	C0.LF:  "LF",  // Line Feed
	0x0B:   "VT",  // Vertical Tab
	0x0C:   "FF",  // Form Feed
	C0.CR:  "CR",  // Carriage Return
	0x18:   "CAN", // Cancel
	0x1A:   "SUB", // Substitute
	C0.ESC: "ESC", // Escape
	0x7F:   "DEL", // Delete
}

// String formats a single byte for logs.
func String(val uint8) string {
	if name, ok := table[val]; ok {
		return fmt.Sprintf("%s (0x%02X)", name, val)
	}
	return fmt.Sprintf("0x%02X (%q)", val, rune(val))
}

// Quote formats a byte run for logs, naming the control characters in it
// so an escape sequence reads as "ESC[1;2H" instead of raw bytes.
func Quote[T ~string | ~[]byte](buf T) string {
	out := make([]byte, 0, len(buf)+8)
	for i := 0; i < len(buf); i++ {
		c := buf[i]
		switch {
		case c == C0.ESC:
			out = append(out, "ESC"...)
		case c < 0x20 || c == 0x7F:
			out = fmt.Appendf(out, "<0x%02X>", c)
		default:
			out = append(out, c)
		}
	}
	return string(out)
}
