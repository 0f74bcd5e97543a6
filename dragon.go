package dragon4

// The digit generator follows the modified Dragon4 algorithm described in
// "How to Print Floating-Point Numbers Accurately" by Steele and White,
// with the scaling estimate of "Printing Floating-Point Numbers Quickly
// and Accurately" by Burger and Dybvig.
//
// A value v is kept as an exact fraction mant / scale, so every digit and
// every rounding decision comes from integer comparisons.

// scales holds scale multiplied by 1, 2, 4 and 8.
// A digit is extracted by at most four subtractions.
type scales [4]nat

func newScales(scale *nat) *scales {
	s := new(scales)
	for i := range s {
		s[i] = *scale
		s[i].mulPow2(i)
	}
	return s
}

// digit calculates d = mant div scale and sets mant = mant mod scale.
// digit assumes that mant < 10 * scale.
func (s *scales) digit(mant *nat) byte {
	var d byte
	for i := len(s) - 1; i >= 0; i-- {
		if mant.cmp(&s[i]) >= 0 {
			mant.sub(&s[i])
			d += 1 << i
		}
	}
	return '0' + d
}

// roundUp adds one unit in the last place to the digits in d.
// If the digits were all nines, d becomes 100..0 and roundUp returns
// the extra digit that has to follow to keep the value, together with true.
// An empty d rounds up to "1".
func roundUp(d []byte) (byte, bool) {
	for i := len(d) - 1; i >= 0; i-- {
		if d[i] != '9' {
			d[i]++
			for j := i + 1; j < len(d); j++ {
				d[j] = '0'
			}
			return 0, false
		}
	}
	if len(d) > 0 {
		d[0] = '1'
		for j := 1; j < len(d); j++ {
			d[j] = '0'
		}
		return '0', true
	}
	return '1', true
}

// numer multiplies the numerator x of the fraction x * 2^exp / 10^k by
// the factors that are integers, 2^exp for exp >= 0 and 10^-k for k < 0.
func numer(x *nat, exp, k int) {
	if exp > 0 {
		x.mulPow2(exp)
	}
	if k < 0 {
		x.mulPow10(-k)
	}
}

// denom sets the denominator of the fraction x * 2^exp / 10^k,
// which is 2^-exp for exp < 0 times 10^k for k >= 0.
func denom(scale *nat, exp, k int) {
	scale.setUint64(1)
	if exp < 0 {
		scale.mulPow2(-exp)
	}
	if k > 0 {
		scale.mulPow10(k)
	}
}

// less reports whether c indicates a < b, or a <= b for inclusive intervals,
// where c is the result of a.cmp(b).
func (iv interval) less(c int) bool {
	if iv.inclusive {
		return c <= 0
	}
	return c < 0
}

// formatShortest appends to dst the shortest digit sequence that rounds
// to the value of iv, and returns the extended slice and the decimal
// exponent k, such that the value is approximately 0.d1d2... * 10^k.
// Among the shortest sequences the one closest to the value is chosen.
func formatShortest(dst []byte, iv interval) ([]byte, int) {
	// Invariants with n digits d[0..n-1] generated so far:
	//
	//	v      = d[0..n-1] * 10^(k-n) + mant / scale * 10^(k-n-1)
	//	v - lo = minus / scale * 10^(k-n-1)
	//	hi - v = plus / scale * 10^(k-n-1)
	k := estimateScalingFactor(iv.mant+iv.plus, iv.exp)

	var mant, minus, plus, scale, sum nat
	mant.setUint64(iv.mant)
	minus.setUint64(iv.minus)
	plus.setUint64(iv.plus)
	numer(&mant, iv.exp, k)
	numer(&minus, iv.exp, k)
	numer(&plus, iv.exp, k)
	denom(&scale, iv.exp, k)

	// Fix up the estimate, so that scale < mant + plus <= 10 * scale.
	sum = mant
	sum.add(&plus)
	if iv.less(scale.cmp(&sum)) {
		k++
	} else {
		mant.mulSmall(10)
		minus.mulSmall(10)
		plus.mulSmall(10)
	}

	s := newScales(&scale)
	start := len(dst)
	var down, up bool
	for {
		dst = append(dst, s.digit(&mant))

		// Stop when the digits so far are within the interval,
		// either as they are (down) or with the last digit incremented (up).
		down = iv.less(mant.cmp(&minus))
		sum = mant
		sum.add(&plus)
		up = iv.less(scale.cmp(&sum))
		if down || up {
			break
		}

		// minus and plus grow with every digit while mant stays below scale,
		// so the loop terminates.
		mant.mulSmall(10)
		minus.mulSmall(10)
		plus.mulSmall(10)
	}

	// Round up when only up holds, or when both hold and the remainder
	// is at least one half.
	if up && (!down || mant.mulPow2(1).cmp(&scale) >= 0) {
		if c, ok := roundUp(dst[start:]); ok {
			dst = append(dst, c)
			k++
		}
	}
	return dst, k
}

// formatExact appends to dst the digits of the value of iv, correctly
// rounded using "half to even" rule, and returns the extended slice and
// the decimal exponent k, such that the value is approximately
// 0.d1d2... * 10^k.
//
// Digit generation stops after n digits or at the digit of weight 10^limit,
// whichever comes first.
// If the value ends before that, the remaining digits are filled with zeros.
// The result is empty when the value rounds to zero at the given limit.
func formatExact(dst []byte, iv interval, n, limit int) ([]byte, int) {
	k := estimateScalingFactor(iv.mant, iv.exp)

	var mant, scale, tmp nat
	mant.setUint64(iv.mant)
	numer(&mant, iv.exp, k)
	denom(&scale, iv.exp, k)

	// Fix up the estimate, so that mant / scale < 10.
	// The check also moves values that are just below a power of ten and
	// will round up anyway to the next exponent. Half of the last unit
	// is approximated from below by scale / 1024^n.
	tmp = scale
	tmp.shr(10 * n)
	tmp.add(&mant)
	if tmp.cmp(&scale) >= 0 {
		k++
	} else {
		mant.mulSmall(10)
	}

	// Shorten the digit budget before rendering to avoid double rounding.
	var size int
	switch {
	case k < limit:
		// Not even one digit fits. The value can still round up to 10^limit,
		// which is handled below.
		size = 0
	case k-limit < n:
		size = k - limit
	default:
		size = n
	}

	start := len(dst)
	if size > 0 {
		s := newScales(&scale)
		for i := 0; i < size; i++ {
			if mant.isZero() {
				// The value is exact, the rest of the digits are zeros.
				for ; i < size; i++ {
					dst = append(dst, '0')
				}
				return dst, k
			}
			dst = append(dst, s.digit(&mant))
			mant.mulSmall(10)
		}
	}

	// Round half to even on the remainder.
	c := mant.cmp(scale.mulSmall(5))
	if c > 0 || c == 0 && size > 0 && dst[len(dst)-1]&1 == 1 {
		if d, ok := roundUp(dst[start:]); ok {
			k++
			// The extra digit is only added when the budget is limited by
			// the position of the digit rather than by their number.
			if k > limit && size < n {
				dst = append(dst, d)
			}
		}
	}
	return dst, k
}
