// Package token holds the byte-classification tables and the low-level
// scanning primitives the parser dispatches through: whitespace/comment
// skipping, in-place string unescaping, and the pow10 lookup number
// parsing scales by. None of it builds a tree — that is package parse's
// job — it only advances a cursor over a buffer and reports what it saw.
package token

import "math"

// Flag is a bitmask classifying a single byte, precomputed once into a
// 256-entry table so the scanner's inner loops are a single indexed load.
type Flag uint8

const (
	// TextBreak marks the bytes that end a fast-scan over string content:
	// '\0' '\n' '\r' '\\' '"'.
	TextBreak Flag = 1 << iota
	// Whitespace marks '\0' '\t' '\n' '\r' ' '. '\0' is deliberately both
	// Whitespace and TextBreak so scanner loops stop at end-of-buffer
	// without a separate bounds check.
	Whitespace
	// Digit marks '0'..'9'.
	Digit
	// NumberChar marks digits plus '.', 'e', 'E' — the set that keeps a
	// number scan going past its integer digits.
	NumberChar
)

var charFlags [256]Flag

func init() {
	for c := 0; c < 256; c++ {
		var f Flag
		switch byte(c) {
		case 0, '\n', '\r', '\\', '"':
			f |= TextBreak
		}
		switch byte(c) {
		case 0, '\t', '\n', '\r', ' ':
			f |= Whitespace
		}
		if c >= '0' && c <= '9' {
			f |= Digit | NumberChar
		}
		switch byte(c) {
		case '.', 'e', 'E':
			f |= NumberChar
		}
		charFlags[c] = f
	}
}

// Is reports whether byte c carries every bit of flags.
func Is(c byte, flags Flag) bool {
	return charFlags[c]&flags == flags
}

// pow10Table covers 10^e for e in [-323, 308], the full range a double's
// decimal exponent can take; anything past either end saturates.
var pow10Table [632]float64

func init() {
	for e := -323; e <= 308; e++ {
		pow10Table[e+323] = math.Pow10(e)
	}
}

// Pow10 returns 10^e, saturating to +Inf above 308 and to 0 below -323 —
// the same clamp the number scanner relies on to turn `1e400` into +∞ and
// `1e-400` into 0 rather than indexing out of range.
func Pow10(e int) float64 {
	if e > 308 {
		return math.Inf(1)
	}
	if e < -323 {
		return 0
	}
	return pow10Table[e+323]
}
