package parse

import (
	"math"

	"github.com/zenjson-go/zenjson/token"
	"github.com/zenjson-go/zenjson/value"
)

// maxExponentAccumulator mirrors the source's overflow guard on the raw
// (unsigned, pre-sign) exponent digit accumulator.
const maxExponentAccumulator = 214748364

// scanNumber parses a JSON number starting at pos (buf[pos] is '-', a
// digit, or '.') per spec.md §4.D. It returns the resulting Value and the
// position just past the number.
//
// Up to 9 leading digits are folded into a 32-bit accumulator; if the
// number ends there (no '.', 'e'/'E', and no 10th digit) it is emitted as
// Int. A number of exactly 10 integer digits with no '.', 'e' or 'E' is
// also emitted as Int when its signed value fits in 32 bits. Otherwise the
// accumulator is converted to a double and every remaining digit is folded
// into that double as it's read, matching the source's double-rounding
// behavior for integers wider than 9 digits.
func scanNumber(buf []byte, pos int) (value.Value, int, error) {
	negative := buf[pos] == '-'
	if negative {
		pos++
	}
	var n32 int32
	digits := 0
	for digits < 9 && token.Is(buf[pos], token.Digit) {
		n32 = n32*10 + int32(buf[pos]-'0')
		pos++
		digits++
	}
	if !token.Is(buf[pos], token.NumberChar) {
		if negative {
			n32 = -n32
		}
		return value.Int(n32), pos, nil
	}
	if digits == 9 && token.Is(buf[pos], token.Digit) && !token.Is(buf[pos+1], token.NumberChar) {
		wide := int64(n32)*10 + int64(buf[pos]-'0')
		if negative {
			wide = -wide
		}
		if wide >= math.MinInt32 && wide <= math.MaxInt32 {
			return value.Int(int32(wide)), pos + 1, nil
		}
	}

	d := float64(n32)
	for token.Is(buf[pos], token.Digit) {
		d = d*10 + float64(buf[pos]-'0')
		pos++
	}

	exponent := 0
	if buf[pos] == '.' {
		pos++
		for token.Is(buf[pos], token.Digit) {
			exponent--
			d = d*10 + float64(buf[pos]-'0')
			pos++
		}
	}

	if buf[pos] == 'e' || buf[pos] == 'E' {
		pos++
		negativeE := false
		switch buf[pos] {
		case '-':
			negativeE = true
			pos++
		case '+':
			pos++
		}
		exp := 0
		for token.Is(buf[pos], token.Digit) {
			if exp >= maxExponentAccumulator {
				return 0, pos, ErrBadNumber
			}
			exp = exp*10 + int(buf[pos]-'0')
			pos++
		}
		if negativeE {
			exponent -= exp
		} else {
			exponent += exp
		}
	}

	if exponent != 0 {
		d *= token.Pow10(exponent)
	}
	if negative {
		d = -d
	}
	return value.Number(d), pos, nil
}
