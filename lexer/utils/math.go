package utils

import "math/bits"

// AddWithOverflow returns a + b, reporting whether the sum wrapped around
// the native uint width.
func AddWithOverflow(a, b uint) (uint, bool) {
	sum, carry := bits.Add(a, b, 0)
	return sum, carry != 0
}

// MulWithOverflow returns a * b, reporting whether the product does not fit
// in the native uint width.
func MulWithOverflow(a, b uint) (uint, bool) {
	hi, lo := bits.Mul(a, b)
	return lo, hi != 0
}

// AppendDigit shifts the decimal digit d into acc (acc*10 + d). Overflow is
// reported instead of wrapping so callers can reject the value.
func AppendDigit(acc uint, d uint8) (uint, bool) {
	Assert(d <= 9, "not a decimal digit")
	shifted, overflow := MulWithOverflow(acc, 10)
	if overflow {
		return 0, true
	}
	next, overflow := AddWithOverflow(shifted, uint(d))
	if overflow {
		return 0, true
	}
	return next, false
}
