package dragon4

import (
	"fmt"
	"math/bits"
)

// natLimbs is a number of 32-bit limbs in nat.
// 1280 bits are enough for every intermediate value produced while
// converting a float64, including subnormals scaled by 10^324.
const natLimbs = 40

// nat (NATural number) is a fixed-size unsigned integer.
// The zero value is 0.
//
// nat never allocates: all operations work in place on the limb array.
// An operation whose result does not fit into natLimbs limbs panics,
// since this can only happen due to a bug in the digit generator.
type nat struct {
	size int              // number of significant limbs, base[size:] are zero
	base [natLimbs]uint32 // limbs in little-endian order
}

// pow5 is a cache of powers of 5 that fit into uint32, where pow5[x] = 5^x.
var pow5 = [...]uint32{
	1,             // 5^0
	5,             // 5^1
	25,            // 5^2
	125,           // 5^3
	625,           // 5^4
	3_125,         // 5^5
	15_625,        // 5^6
	78_125,        // 5^7
	390_625,       // 5^8
	1_953_125,     // 5^9
	9_765_625,     // 5^10
	48_828_125,    // 5^11
	244_140_625,   // 5^12
	1_220_703_125, // 5^13
}

func natOverflow(op string) {
	panic(fmt.Sprintf("nat.%v overflowed %v bits", op, 32*natLimbs))
}

// setUint64 sets z = x.
func (z *nat) setUint64(x uint64) *nat {
	*z = nat{}
	z.base[0] = uint32(x)
	z.base[1] = uint32(x >> 32)
	z.size = 2
	z.norm()
	return z
}

// norm drops leading zero limbs.
func (z *nat) norm() {
	for z.size > 0 && z.base[z.size-1] == 0 {
		z.size--
	}
}

func (z *nat) isZero() bool {
	return z.size == 0
}

// bitLen returns length of z in bits.
// bitLen assumes that 0 has no bits.
func (z *nat) bitLen() int {
	if z.size == 0 {
		return 0
	}
	return 32*(z.size-1) + bits.Len32(z.base[z.size-1])
}

// cmp compares z and x and returns:
//
//	-1 if z < x
//	 0 if z = x
//	+1 if z > x
func (z *nat) cmp(x *nat) int {
	switch {
	case z.size < x.size:
		return -1
	case z.size > x.size:
		return 1
	}
	for i := z.size - 1; i >= 0; i-- {
		switch {
		case z.base[i] < x.base[i]:
			return -1
		case z.base[i] > x.base[i]:
			return 1
		}
	}
	return 0
}

// add calculates z = z + x.
func (z *nat) add(x *nat) *nat {
	n := max(z.size, x.size)
	var carry uint32
	for i := 0; i < n; i++ {
		z.base[i], carry = bits.Add32(z.base[i], x.base[i], carry)
	}
	if carry != 0 {
		if n == natLimbs {
			natOverflow("add")
		}
		z.base[n] = carry
		n++
	}
	z.size = n
	return z
}

// sub calculates z = z - x.
// sub panics if x is greater than z.
func (z *nat) sub(x *nat) *nat {
	if x.size > z.size {
		panic("nat.sub: negative result")
	}
	var borrow uint32
	for i := 0; i < z.size; i++ {
		z.base[i], borrow = bits.Sub32(z.base[i], x.base[i], borrow)
	}
	if borrow != 0 {
		panic("nat.sub: negative result")
	}
	z.norm()
	return z
}

// mulSmall calculates z = z * m.
func (z *nat) mulSmall(m uint32) *nat {
	var carry uint32
	for i := 0; i < z.size; i++ {
		hi, lo := bits.Mul32(z.base[i], m)
		var c uint32
		z.base[i], c = bits.Add32(lo, carry, 0)
		carry = hi + c
	}
	if carry != 0 {
		if z.size == natLimbs {
			natOverflow("mulSmall")
		}
		z.base[z.size] = carry
		z.size++
	}
	z.norm()
	return z
}

// mulPow2 calculates z = z * 2^n.
// If n is negative, the result is unpredictable.
func (z *nat) mulPow2(n int) *nat {
	if z.size == 0 || n == 0 {
		return z
	}
	if z.bitLen()+n > 32*natLimbs {
		natOverflow("mulPow2")
	}
	words, rem := n/32, uint(n%32)
	top := z.size - 1
	if rem == 0 {
		for i := top; i >= 0; i-- {
			z.base[i+words] = z.base[i]
		}
	} else {
		if hi := z.base[top] >> (32 - rem); hi != 0 {
			z.base[top+words+1] = hi
		}
		for i := top; i > 0; i-- {
			z.base[i+words] = z.base[i]<<rem | z.base[i-1]>>(32-rem)
		}
		z.base[words] = z.base[0] << rem
	}
	for i := 0; i < words; i++ {
		z.base[i] = 0
	}
	z.size = min(z.size+words+1, natLimbs)
	z.norm()
	return z
}

// mulPow5 calculates z = z * 5^n.
// If n is negative, the result is unpredictable.
func (z *nat) mulPow5(n int) *nat {
	last := len(pow5) - 1
	for n >= last {
		z.mulSmall(pow5[last])
		n -= last
	}
	if n > 0 {
		z.mulSmall(pow5[n])
	}
	return z
}

// mulPow10 calculates z = z * 10^n.
// If n is negative, the result is unpredictable.
func (z *nat) mulPow10(n int) *nat {
	return z.mulPow5(n).mulPow2(n)
}

// shr (SHift Right) calculates z = z / 2^n, rounding towards zero.
// If n is negative, the result is unpredictable.
func (z *nat) shr(n int) *nat {
	words, rem := n/32, uint(n%32)
	if words >= z.size {
		*z = nat{}
		return z
	}
	size := z.size - words
	for i := 0; i < size; i++ {
		v := z.base[i+words] >> rem
		if rem != 0 && i+words+1 < z.size {
			v |= z.base[i+words+1] << (32 - rem)
		}
		z.base[i] = v
	}
	for i := size; i < z.size; i++ {
		z.base[i] = 0
	}
	z.size = size
	z.norm()
	return z
}
