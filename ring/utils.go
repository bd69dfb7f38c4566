package ring

import (
	"fmt"
	"math"
)

// ModExp performs the modular exponentiation x^e mod p by square-and-multiply.
// p is required to be smaller than 2^MaxModulusBits. Returns 0 for p < 2.
func ModExp(x, e, p uint64) (result uint64) {
	if p < 2 {
		return 0
	}
	brc := GenBRedConstant(p)
	x = BRedAdd(x, p, brc)
	result = 1
	for i := e; i > 0; i >>= 1 {
		if i&1 == 1 {
			result = BRed(result, x, p, brc)
		}
		x = BRed(x, x, p, brc)
	}
	return result
}

// ModInverse returns t in [0, m-1] such that a*t = 1 mod m,
// computed with the extended Euclidean algorithm.
// Returns an error wrapping [ErrNonInvertible] if gcd(a, m) != 1.
func ModInverse(a, m uint64) (uint64, error) {

	if m == 0 {
		return 0, fmt.Errorf("%w: modulus must be non-zero", ErrInvalidParameters)
	}

	if m > math.MaxInt64 {
		return 0, fmt.Errorf("%w: modulus %d exceeds the signed 64-bit range", ErrArithmeticOverflow, m)
	}

	t, newt := int64(0), int64(1)
	r, newr := int64(m), int64(a%m)

	for newr != 0 {
		q := r / newr
		t, newt = newt, t-q*newt
		r, newr = newr, r-q*newr
	}

	if r != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNonInvertible, a, m, r)
	}

	if t < 0 {
		t += int64(m)
	}

	return uint64(t), nil
}
