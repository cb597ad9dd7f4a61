package testutil

import "strings"

// The reference model works on '0'/'1' strings, most significant bit first,
// one character per bit. It is slow and obviously correct.

// Zeros returns n '0' characters.
func Zeros(n int) string {
	return strings.Repeat("0", n)
}

// ShiftLeft shifts s towards the most significant end by k, filling with '0'.
func ShiftLeft(s string, k int) string {
	if k >= len(s) {
		return Zeros(len(s))
	}
	return s[k:] + Zeros(k)
}

// ShiftRight shifts s towards bit 0 by k, filling with '0'.
func ShiftRight(s string, k int) string {
	if k >= len(s) {
		return Zeros(len(s))
	}
	return Zeros(k) + s[:len(s)-k]
}

// And combines equal-length strings with logical AND.
func And(a, b string) string {
	return combine(a, b, func(x, y bool) bool { return x && y })
}

// Or combines equal-length strings with logical OR.
func Or(a, b string) string {
	return combine(a, b, func(x, y bool) bool { return x || y })
}

// Xor combines equal-length strings with logical XOR.
func Xor(a, b string) string {
	return combine(a, b, func(x, y bool) bool { return x != y })
}

// AndNot combines equal-length strings with a AND NOT b.
func AndNot(a, b string) string {
	return combine(a, b, func(x, y bool) bool { return x && !y })
}

// Not inverts every character of s.
func Not(s string) string {
	return combine(s, s, func(x, _ bool) bool { return !x })
}

// Count returns the number of '1' characters in s.
func Count(s string) int {
	return strings.Count(s, "1")
}

// Bit reports whether bit pos (0 = least significant) of s is '1'.
func Bit(s string, pos int) bool {
	return s[len(s)-1-pos] == '1'
}

func combine(a, b string, fn func(x, y bool) bool) string {
	if len(a) != len(b) {
		panic("testutil: length mismatch")
	}
	out := make([]byte, len(a))
	for i := range out {
		if fn(a[i] == '1', b[i] == '1') {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}
