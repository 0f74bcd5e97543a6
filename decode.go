package dragon4

import (
	"math"
	"math/bits"
)

// Category is a classification of a float64 bit pattern.
type Category uint8

const (
	Zero     Category = iota // +0 or -0
	Finite                   // normal or subnormal non-zero value
	Infinite                 // +Inf or -Inf
	NaN                      // not a number, any payload
)

func (c Category) String() string {
	switch c {
	case Zero:
		return "zero"
	case Finite:
		return "finite"
	case Infinite:
		return "infinite"
	case NaN:
		return "nan"
	}
	return "unknown"
}

const (
	fracBits = 52
	fracMask = 1<<fracBits - 1
	expMask  = 0x7ff
	expBias  = 1023 + fracBits // bias of the exponent field relative to an integer mantissa
	minExp   = 1 - expBias     // binary exponent of subnormals
)

// Decoded is an exact representation of a float64 value.
// For the [Finite] category the absolute value equals Mant * 2^Exp.
// For other categories Mant and Exp are zero.
type Decoded struct {
	Category Category
	Neg      bool   // sign bit, set for -0 and negative NaNs too
	Mant     uint64 // at most 53 significant bits
	Exp      int    // binary exponent
}

// Decode splits f into sign, mantissa and binary exponent.
// Subnormal values are returned with Exp equal to -1074 and without
// the implicit leading bit.
// Decode never fails: every bit pattern belongs to exactly one category.
func Decode(f float64) Decoded {
	b := math.Float64bits(f)
	d := Decoded{Neg: b>>63 != 0}
	field := int(b>>fracBits) & expMask
	frac := b & fracMask
	switch {
	case field == 0 && frac == 0:
		d.Category = Zero
	case field == expMask && frac == 0:
		d.Category = Infinite
	case field == expMask:
		d.Category = NaN
	case field == 0:
		d.Category = Finite
		d.Mant = frac
		d.Exp = minExp
	default:
		d.Category = Finite
		d.Mant = frac | 1<<fracBits
		d.Exp = field - expBias
	}
	return d
}

// interval describes the set of real numbers that round to a finite value.
// The value is mant * 2^exp, its rounding interval spans from
// (mant - minus) * 2^exp to (mant + plus) * 2^exp.
// The bounds belong to the interval only when inclusive is true.
type interval struct {
	mant      uint64
	minus     uint64
	plus      uint64
	exp       int
	inclusive bool
}

// interval returns the rounding interval of a finite value.
// The mantissa is scaled so that half-way points to the neighbours are integers.
func (d Decoded) interval() interval {
	iv := interval{minus: 1, plus: 1}
	switch {
	case d.Mant < 1<<fracBits:
		// Subnormal neighbours are spaced evenly.
		// Their midpoints need hundreds of digits, so the bounds are
		// always treated as inclusive.
		iv.mant = d.Mant << 1
		iv.exp = d.Exp - 1
		iv.inclusive = true
	case d.Mant == 1<<fracBits:
		// The lower neighbour of a power of two is twice as close.
		iv.mant = d.Mant << 2
		iv.plus = 2
		iv.exp = d.Exp - 2
		iv.inclusive = true
	default:
		iv.mant = d.Mant << 1
		iv.exp = d.Exp - 1
		iv.inclusive = d.Mant&1 == 0
	}
	return iv
}

// estimateScalingFactor returns k such that 10^(k-1) < mant * 2^exp < 10^(k+1).
// The estimate never exceeds the exact value and is off by at most one.
func estimateScalingFactor(mant uint64, exp int) int {
	// 2^(nbits-1) < mant <= 2^nbits
	nbits := 64 - bits.LeadingZeros64(mant-1)
	// 1292913986 = floor(2^32 * log10(2))
	return int((int64(nbits+exp) * 1292913986) >> 32)
}
