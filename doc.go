/*
Package dragon4 implements exact conversion of float64 values to decimal digits.
It is designed to serve as a reference oracle for differential
testing of other floating-point formatting implementations.

# Representation

A conversion result is [Digits], a struct with two fields:

  - Digits: a sequence of ASCII decimal digits d1, d2, d3, ...
    The first digit is never '0'.
  - Exponent: a signed integer k.

The numerical value of the result is calculated as:

  - 0.d1d2d3... * 10^k

For example, the digits "12345" with k = 3 represent the value 123.45.
The sign is not part of the result; it is reported by [Decode] together with
the exact binary representation of the value.

# Modes

The package provides three conversion modes:

  - [Shortest]: the shortest digit sequence that rounds back to the same
    float64. At most [MaxShortestDigits] digits are produced.
  - [Fixed]: the exact value rounded to a given number of digits after the
    decimal point.
  - [Exponent]: the exact value rounded to a given number of significant
    digits, as needed for scientific notation.

Each mode has an Append variant that writes into a caller-provided buffer
and performs no heap allocation.

# Special Values

Zeros, infinities and NaNs produce an empty result with k = 0.
Callers are expected to render them from the [Category] reported by [Decode].

[Fixed] and [Exponent] can also produce an empty result for finite values,
when the value rounds to zero at the requested position.
In this case k still reflects the order of magnitude of the rounded value.

# Rounding

[Fixed] and [Exponent] use "half to even" rounding of the exact binary value.
For example, 0.125 is exactly representable, so [Fixed] with 2 digits returns
"12" with k = 0, while 0.375 returns "38".

[Shortest] follows the algorithm of Steele and White: it chooses the shortest
sequence inside the rounding interval of the value, and the closest one among
sequences of the same length.
The bounds of the interval are included when the mantissa is even,
matching "half to even" rounding of decimal to binary conversion.

# Arithmetic

All comparisons are carried out on exact integers.
The value is kept as a fraction of two unsigned integers of up to 1280 bits,
stored in fixed-size arrays, so the digit loop does not allocate.
The result therefore does not depend on the host floating-point unit.

# C Interface

The command cmd/libdragon4 builds a C shared library exposing the conversion
functions with a stable ABI:

	typedef struct { int16_t k; size_t len; uint8_t *data; } dragon4_buffer;

	dragon4_buffer dragon4_shortest(double f);
	dragon4_buffer dragon4_fixed(double f, int16_t precision);
	dragon4_buffer dragon4_exponent(double f, int16_t limit);
	void dragon4_free(dragon4_buffer b);

Every buffer with len > 0 must be passed to dragon4_free exactly once.
*/
package dragon4
