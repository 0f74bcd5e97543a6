package dragon4

import (
	"strconv"
)

// Digits is a decimal digit sequence produced by [Shortest], [Fixed] or
// [Exponent].
// The digits d1, d2, d3, ... and the decimal exponent k represent the value
//
//	0.d1d2d3... * 10^k
//
// The sign of the original value is not part of Digits, it is available
// from [Decode].
//
// The zero value is the empty sequence with k = 0, which is also returned
// for zeros, infinities and NaNs.
// A non-empty sequence never starts with '0'.
//
// Digits owns its storage. It is immutable and safe for concurrent use
// by multiple goroutines.
type Digits struct {
	digits []byte // ASCII digits '0'..'9'
	exp    int    // decimal exponent k
}

// Len returns the number of digits.
func (d Digits) Len() int {
	return len(d.digits)
}

// IsEmpty returns true if there are no digits.
func (d Digits) IsEmpty() bool {
	return len(d.digits) == 0
}

// Exp returns the decimal exponent k.
func (d Digits) Exp() int {
	return d.exp
}

// Bytes returns a copy of the ASCII digits.
func (d Digits) Bytes() []byte {
	if len(d.digits) == 0 {
		return nil
	}
	return append([]byte(nil), d.digits...)
}

// String method implements the [fmt.Stringer] interface and returns the
// digits in the normalized form "0.<digits>e<k>".
// For example, Shortest(123.45) is "0.12345e3".
// The empty sequence is "0.e<k>".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d Digits) String() string {
	buf := make([]byte, 0, len(d.digits)+8)
	buf = append(buf, "0."...)
	buf = append(buf, d.digits...)
	buf = append(buf, 'e')
	buf = strconv.AppendInt(buf, int64(d.exp), 10)
	return string(buf)
}

// Float64 returns the nearest float64 value to the absolute value of
// 0.d1d2d3... * 10^k.
// If d is empty or the value overflows, the result is (0, false).
// For digits returned by [Shortest] the result equals the absolute value
// of the original float64.
func (d Digits) Float64() (float64, bool) {
	if d.IsEmpty() {
		return 0, false
	}
	f, err := strconv.ParseFloat(d.String(), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
