package dragon4

import "math"

const (
	// MaxShortestDigits is the maximum number of digits returned by [Shortest].
	MaxShortestDigits = 17
	// MaxExactDigits is the maximum number of digits returned by [Fixed]
	// and [Exponent].
	MaxExactDigits = 1024
)

// Shortest returns the shortest digit sequence that rounds back to f,
// when parsed as a float64 with "round half to even" rule.
// If several sequences of the same length exist, Shortest returns the one
// closest to the exact value of f.
// For zeros, infinities and NaNs the result is empty.
func Shortest(f float64) Digits {
	buf, k := AppendShortest(make([]byte, 0, MaxShortestDigits), f)
	return newDigits(buf, k)
}

// AppendShortest is like [Shortest], but it appends the digits to dst and
// returns the extended buffer together with the decimal exponent k.
func AppendShortest(dst []byte, f float64) ([]byte, int) {
	d := Decode(f)
	if d.Category != Finite {
		return dst, 0
	}
	return formatShortest(dst, d.interval())
}

// Fixed returns the digits of the exact value of f rounded to prec digits
// after the decimal point, using "half to even" rule.
// A negative prec rounds to a power of ten to the left of the decimal point,
// for example, prec = -2 rounds to hundreds.
// The number of digits is capped at [MaxExactDigits]; after this many digits
// the value is rounded as by [Exponent].
// prec outside of the int16 range is clamped.
//
// The result is empty when the value rounds to zero, in which case the
// exponent still reflects the order of magnitude of f.
// For zeros, infinities and NaNs the result is empty with k = 0.
//
// For example, Fixed(0.1, 3) is "100" with k = 0, that is 0.100, and
// Fixed(2.5, 0) is "2" with k = 1.
func Fixed(f float64, prec int) Digits {
	buf, k := AppendFixed(nil, f, prec)
	return newDigits(buf, k)
}

// AppendFixed is like [Fixed], but it appends the digits to dst and
// returns the extended buffer together with the decimal exponent k.
func AppendFixed(dst []byte, f float64, prec int) ([]byte, int) {
	d := Decode(f)
	if d.Category != Finite {
		return dst, 0
	}
	prec = min(max(prec, math.MinInt16), math.MaxInt16)
	return formatExact(dst, d.interval(), MaxExactDigits, -prec)
}

// Exponent returns the exact value of f rounded to limit significant digits,
// using "half to even" rule.
// The result has exactly limit digits, including trailing zeros.
// limit is clamped to the range [0, MaxExactDigits].
//
// If limit is 0, the result is empty and the exponent reflects the order
// of magnitude of f.
// For zeros, infinities and NaNs the result is empty with k = 0.
//
// For example, Exponent(885, 2) is "88" with k = 3, that is 8.8e2.
func Exponent(f float64, limit int) Digits {
	buf, k := AppendExponent(nil, f, limit)
	return newDigits(buf, k)
}

// AppendExponent is like [Exponent], but it appends the digits to dst and
// returns the extended buffer together with the decimal exponent k.
func AppendExponent(dst []byte, f float64, limit int) ([]byte, int) {
	d := Decode(f)
	if d.Category != Finite {
		return dst, 0
	}
	limit = min(max(limit, 0), MaxExactDigits)
	return formatExact(dst, d.interval(), limit, math.MinInt16)
}

func newDigits(buf []byte, k int) Digits {
	if len(buf) == 0 {
		buf = nil
	}
	return Digits{digits: buf, exp: k}
}
