package encode

import (
	"math"
	"math/bits"
)

// diyFp is a "do it yourself" floating point: an arbitrary-precision-enough
// pair of a 64-bit significand and a binary exponent, f * 2^e, used as
// Grisu2's working representation instead of the IEEE-754 double it starts
// from. Ported from the source's DiyFp struct.
type diyFp struct {
	f uint64
	e int
}

const (
	dpSignificandSize = 52
	dpExponentBias    = 0x3FF + dpSignificandSize
	dpMinExponent     = -dpExponentBias
	dpExponentMask    = uint64(0x7FF00000) << 32
	dpSignificandMask = uint64(0x000FFFFF)<<32 | 0xFFFFFFFF
	dpHiddenBit       = uint64(0x00100000) << 32
	diySignificandSz  = 64
)

func diyFpFromFloat(d float64) diyFp {
	u := math.Float64bits(d)
	biasedE := int((u & dpExponentMask) >> dpSignificandSize)
	significand := u & dpSignificandMask
	if biasedE != 0 {
		return diyFp{f: significand + dpHiddenBit, e: biasedE - dpExponentBias}
	}
	return diyFp{f: significand, e: dpMinExponent + 1}
}

func (a diyFp) sub(b diyFp) diyFp {
	return diyFp{f: a.f - b.f, e: a.e}
}

// mul multiplies two diyFps, keeping only the high 64 bits of the exact
// 128-bit product and rounding up when the discarded low half's top bit is
// set — the source's x86-64 intrinsic path, which math/bits.Mul64 gives us
// exactly rather than approximately.
func (a diyFp) mul(b diyFp) diyFp {
	hi, lo := bits.Mul64(a.f, b.f)
	if lo&(uint64(1)<<63) != 0 {
		hi++
	}
	return diyFp{f: hi, e: a.e + b.e + 64}
}

func (a diyFp) normalize() diyFp {
	s := bits.LeadingZeros64(a.f)
	return diyFp{f: a.f << uint(s), e: a.e - s}
}

func (a diyFp) normalizeBoundary() diyFp {
	res := a
	for res.f&(dpHiddenBit<<1) == 0 {
		res.f <<= 1
		res.e--
	}
	shift := diySignificandSz - dpSignificandSize - 2
	res.f <<= uint(shift)
	res.e -= shift
	return res
}

func (a diyFp) normalizedBoundaries() (minus, plus diyFp) {
	pl := diyFp{f: (a.f << 1) + 1, e: a.e - 1}.normalizeBoundary()
	var mi diyFp
	if a.f == dpHiddenBit {
		mi = diyFp{f: (a.f << 2) - 1, e: a.e - 2}
	} else {
		mi = diyFp{f: (a.f << 1) - 1, e: a.e - 1}
	}
	mi.f <<= uint(mi.e - pl.e)
	mi.e = pl.e
	return mi, pl
}

// cachedPowersF/cachedPowersE are the precomputed powers of ten 10^-348,
// 10^-340, ..., 10^340 in steps of 8 decimal exponents, copied verbatim from
// the source's kCachedPowers tables.
var cachedPowersF = [...]uint64{
	0xfa8fd5a0081c0288, 0xbaaee17fa23ebf76,
	0x8b16fb203055ac76, 0xcf42894a5dce35ea,
	0x9a6bb0aa55653b2d, 0xe61acf033d1a45df,
	0xab70fe17c79ac6ca, 0xff77b1fcbebcdc4f,
	0xbe5691ef416bd60c, 0x8dd01fad907ffc3c,
	0xd3515c2831559a83, 0x9d71ac8fada6c9b5,
	0xea9c227723ee8bcb, 0xaecc49914078536d,
	0x823c12795db6ce57, 0xc21094364dfb5637,
	0x9096ea6f3848984f, 0xd77485cb25823ac7,
	0xa086cfcd97bf97f4, 0xef340a98172aace5,
	0xb23867fb2a35b28e, 0x84c8d4dfd2c63f3b,
	0xc5dd44271ad3cdba, 0x936b9fcebb25c996,
	0xdbac6c247d62a584, 0xa3ab66580d5fdaf6,
	0xf3e2f893dec3f126, 0xb5b5ada8aaff80b8,
	0x87625f056c7c4a8b, 0xc9bcff6034c13053,
	0x964e858c91ba2655, 0xdff9772470297ebd,
	0xa6dfbd9fb8e5b88f, 0xf8a95fcf88747d94,
	0xb94470938fa89bcf, 0x8a08f0f8bf0f156b,
	0xcdb02555653131b6, 0x993fe2c6d07b7fac,
	0xe45c10c42a2b3b06, 0xaa242499697392d3,
	0xfd87b5f28300ca0e, 0xbce5086492111aeb,
	0x8cbccc096f5088cc, 0xd1b71758e219652c,
	0x9c40000000000000, 0xe8d4a51000000000,
	0xad78ebc5ac620000, 0x813f3978f8940984,
	0xc097ce7bc90715b3, 0x8f7e32ce7bea5c70,
	0xd5d238a4abe98068, 0x9f4f2726179a2245,
	0xed63a231d4c4fb27, 0xb0de65388cc8ada8,
	0x83c7088e1aab65db, 0xc45d1df942711d9a,
	0x924d692ca61be758, 0xda01ee641a708dea,
	0xa26da3999aef774a, 0xf209787bb47d6b85,
	0xb454e4a179dd1877, 0x865b86925b9bc5c2,
	0xc83553c5c8965d3d, 0x952ab45cfa97a0b3,
	0xde469fbd99a05fe3, 0xa59bc234db398c25,
	0xf6c69a72a3989f5c, 0xb7dcbf5354e9bece,
	0x88fcf317f22241e2, 0xcc20ce9bd35c78a5,
	0x98165af37b2153df, 0xe2a0b5dc971f303a,
	0xa8d9d1535ce3b396, 0xfb9b7cd9a4a7443c,
	0xbb764c4ca7a44410, 0x8bab8eefb6409c1a,
	0xd01fef10a657842c, 0x9b10a4e5e9913129,
	0xe7109bfba19c0c9d, 0xac2820d9623bf429,
	0x80444b5e7aa7cf85, 0xbf21e44003acdd2d,
	0x8e679c2f5e44ff8f, 0xd433179d9c8cb841,
	0x9e19db92b4e31ba9, 0xeb96bf6ebadf77d9,
	0xaf87023b9bf0ee6b,
}

var cachedPowersE = [...]int16{
	-1220, -1193, -1166, -1140, -1113, -1087, -1060, -1034, -1007, -980,
	-954, -927, -901, -874, -847, -821, -794, -768, -741, -715,
	-688, -661, -635, -608, -582, -555, -529, -502, -475, -449,
	-422, -396, -369, -343, -316, -289, -263, -236, -210, -183,
	-157, -130, -103, -77, -50, -24, 3, 30, 56, 83,
	109, 136, 162, 189, 216, 242, 269, 295, 322, 348,
	375, 402, 428, 455, 481, 508, 534, 561, 588, 614,
	641, 667, 694, 720, 747, 774, 800, 827, 853, 880,
	907, 933, 960, 986, 1013, 1039, 1066,
}

func getCachedPower(e int) (diyFp, int) {
	dk := float64(-61-e)*0.30102999566398114 + 347
	k := int(dk)
	if float64(k) != dk {
		k++
	}
	index := (k >> 3) + 1
	kk := -(-348 + index<<3)
	return diyFp{f: cachedPowersF[index], e: int(cachedPowersE[index])}, kk
}

func grisuRound(buf []byte, length int, delta, rest, tenKappa, wpW uint64) int {
	for rest < wpW && delta-rest >= tenKappa &&
		(rest+tenKappa < wpW || wpW-rest > rest+tenKappa-wpW) {
		buf[length-1]--
		rest += tenKappa
	}
	return length
}

func countDecimalDigit32(n uint32) int {
	switch {
	case n < 10:
		return 1
	case n < 100:
		return 2
	case n < 1000:
		return 3
	case n < 10000:
		return 4
	case n < 100000:
		return 5
	case n < 1000000:
		return 6
	case n < 10000000:
		return 7
	case n < 100000000:
		return 8
	default:
		return 9
	}
}

var pow10u32 = [...]uint32{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000}

// digitGen fills buf with W's shortest round-tripping decimal digits and
// returns (length, decimal exponent contribution to K).
func digitGen(w, mp diyFp, delta uint64, buf []byte) (length, kAdd int) {
	one := diyFp{f: uint64(1) << uint(-mp.e), e: mp.e}
	wpW := mp.sub(w)
	p1 := uint32(mp.f >> uint(-one.e))
	p2 := mp.f & (one.f - 1)
	kappa := countDecimalDigit32(p1)
	length = 0

	for kappa > 0 {
		var d uint32
		switch kappa {
		case 9:
			d, p1 = p1/100000000, p1%100000000
		case 8:
			d, p1 = p1/10000000, p1%10000000
		case 7:
			d, p1 = p1/1000000, p1%1000000
		case 6:
			d, p1 = p1/100000, p1%100000
		case 5:
			d, p1 = p1/10000, p1%10000
		case 4:
			d, p1 = p1/1000, p1%1000
		case 3:
			d, p1 = p1/100, p1%100
		case 2:
			d, p1 = p1/10, p1%10
		case 1:
			d, p1 = p1, 0
		}
		if d != 0 || length != 0 {
			buf[length] = byte('0' + d)
			length++
		}
		kappa--
		tmp := (uint64(p1) << uint(-one.e)) + p2
		if tmp <= delta {
			kAdd = kappa
			length = grisuRound(buf, length, delta, tmp, uint64(pow10u32[kappa])<<uint(-one.e), wpW.f)
			return length, kAdd
		}
	}

	for {
		p2 *= 10
		delta *= 10
		d := byte(p2 >> uint(-one.e))
		if d != 0 || length != 0 {
			buf[length] = '0' + d
			length++
		}
		p2 &= one.f - 1
		kappa--
		if p2 < delta {
			kAdd = kappa
			tenKappa := one.f
			if kappa < 0 {
				tenKappa = one.f * uint64(pow10Neg(kappa))
			}
			length = grisuRound(buf, length, delta, p2, tenKappa, wpW.f)
			return length, kAdd
		}
	}
}

// pow10Neg returns 10^-kappa for the (always small, non-positive) kappa
// digitGen's fractional loop produces; kPow10[-kappa] in the source.
func pow10Neg(kappa int) uint32 { return pow10u32[-kappa] }

// grisu2 computes the shortest decimal digit string for f (which must be
// finite and positive) into buf, returning its length and decimal exponent
// K such that f ≈ 0.digits * 10^(K+length).
func grisu2(f float64, buf []byte) (length, k int) {
	v := diyFpFromFloat(f)
	wMinus, wPlus := v.normalizedBoundaries()

	cmk, kk := getCachedPower(wPlus.e)
	k = kk
	w := v.normalize().mul(cmk)
	wp := wPlus.mul(cmk)
	wm := wMinus.mul(cmk)
	wm.f++
	wp.f--

	var kAdd int
	length, kAdd = digitGen(w, wp, wp.f-wm.f, buf)
	k += kAdd
	return length, k
}

// writeExponent appends K's decimal digits, using the two-digit table for
// the last two digits the same way writeInt does.
func writeExponent(dst []byte, k int) int {
	pos := 0
	if k < 0 {
		dst[pos] = '-'
		pos++
		k = -k
	}
	switch {
	case k >= 100:
		dst[pos] = byte('0' + k/100)
		pos++
		k %= 100
		dst[pos] = twoDigits[k*2]
		dst[pos+1] = twoDigits[k*2+1]
		pos += 2
	case k >= 10:
		dst[pos] = twoDigits[k*2]
		dst[pos+1] = twoDigits[k*2+1]
		pos += 2
	default:
		dst[pos] = byte('0' + k)
		pos++
	}
	return pos
}

// prettify turns digits[:length] plus decimal exponent k (value ≈
// 0.digits*10^(k+length)) into buf's final printed form, following spec.md
// §4.E's five cases verbatim from the source's Prettify.
func prettify(digits []byte, length, k int) []byte {
	kk := length + k // 10^(kk-1) <= v < 10^kk
	var out [32]byte

	switch {
	case length <= kk && kk <= 21:
		copy(out[:], digits[:length])
		for i := length; i < kk; i++ {
			out[i] = '0'
		}
		return append([]byte{}, out[:kk]...)

	case 0 < kk && kk <= 21:
		copy(out[:kk], digits[:kk])
		out[kk] = '.'
		copy(out[kk+1:], digits[kk:length])
		return append([]byte{}, out[:length+1]...)

	case -6 < kk && kk <= 0:
		offset := 2 - kk
		out[0] = '0'
		out[1] = '.'
		for i := 2; i < offset; i++ {
			out[i] = '0'
		}
		copy(out[offset:], digits[:length])
		return append([]byte{}, out[:length+offset]...)

	case length == 1:
		out[0] = digits[0]
		out[1] = 'e'
		n := writeExponent(out[2:], kk-1)
		return append([]byte{}, out[:2+n]...)

	default:
		out[0] = digits[0]
		out[1] = '.'
		copy(out[2:], digits[1:length])
		out[length+1] = 'e'
		n := writeExponent(out[length+2:], kk-1)
		return append([]byte{}, out[:length+2+n]...)
	}
}

// writeDouble writes d's shortest round-tripping decimal form, per
// spec.md §4.E. For NaN or ±Inf it writes nothing and returns
// ErrNonFinite.
func writeDouble(sink ByteSink, d float64) error {
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return ErrNonFinite
	}
	if d == 0 {
		// ±0 are indistinguishable here, matching the source: the sign
		// check happens only in the non-zero branch below.
		sink.WriteByte('0')
		return nil
	}
	if d < 0 {
		sink.WriteByte('-')
		d = -d
	}
	var digits [20]byte
	length, k := grisu2(d, digits[:])
	sink.WriteBytes(prettify(digits[:], length, k))
	return nil
}
