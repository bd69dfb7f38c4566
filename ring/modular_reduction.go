package ring

import (
	"math/bits"
)

// MaxModulusBits is the maximum bit-size of a modulus.
// For q < 2^61 the product of two residues is smaller than 2^122 and
// the Barrett quotient estimate is off by at most one, so a single
// conditional subtraction yields the exact remainder.
const MaxModulusBits = 61

//==========================
//=== BARRETT REDUCTION  ===
//==========================

// GenBRedConstant computes the constant for the Barrett reduction
// with a radix of 2^128: floor(2^128 / q), as {hi, lo} 64-bit words.
func GenBRedConstant(q uint64) [2]uint64 {

	if q < 2 {
		panic("cannot GenBRedConstant: q must be at least 2")
	}

	// floor(2^128 / q) = 2^64 * floor(2^64 / q) + floor(2^64 * ((2^64 mod q)) / q)
	// 2^64 = (2^64 - 1) + 1
	hi, rem := bits.Div64(0, ^uint64(0), q)
	if rem++; rem == q {
		hi, rem = hi+1, 0
	}

	lo, _ := bits.Div64(rem, 0, q)

	return [2]uint64{hi, lo}
}

// BRedAdd reduces a 64 bit integer by q.
// Assumes that x <= 64bits.
func BRedAdd(x, q uint64, u [2]uint64) (r uint64) {
	s0, _ := bits.Mul64(x, u[0])
	r = x - s0*q
	if r >= q {
		r -= q
	}
	return
}

// BRedWide reduces the 128-bit integer a = ahi * 2^64 + alo by q.
// Requires a < q^2 (e.g. the product of two residues mod q) and
// q < 2^MaxModulusBits. The approximate quotient (a * u) >> 128 is
// computed on 128-bit words, so no intermediate value can overflow.
func BRedWide(ahi, alo, q uint64, u [2]uint64) (r uint64) {

	var lhi, mhi, mlo, s0, s1, carry uint64

	// (alo*ulo)>>64

	lhi, _ = bits.Mul64(alo, u[1])

	// ((ahi*ulo + alo*uhi) + (alo*ulo))>>64

	mhi, mlo = bits.Mul64(alo, u[0])

	s0, carry = bits.Add64(mlo, lhi, 0)

	s1 = mhi + carry

	mhi, mlo = bits.Mul64(ahi, u[1])

	_, carry = bits.Add64(mlo, s0, 0)

	lhi = mhi + carry

	// (ahi*uhi) + (((ahi*ulo + alo*uhi) + (alo*ulo))>>64)

	s0 = ahi*u[0] + s1 + lhi

	r = alo - s0*q

	if r >= q {
		r -= q
	}

	return
}

// BRed operates a 64x64 bit multiplication with
// a barrett reduction: returns x*y mod q for x, y in [0, q-1].
func BRed(x, y, q uint64, u [2]uint64) (r uint64) {
	ahi, alo := bits.Mul64(x, y)
	return BRedWide(ahi, alo, q, u)
}

//===============================
//==== CONDITIONAL REDUCTION ====
//===============================

// CRed reduce returns a mod q, where,
// a is required to be in the range [0, 2q-1].
func CRed(a, q uint64) uint64 {
	if a >= q {
		return a - q
	}
	return a
}

// reducevec writes p1 mod q on p2.
// p1 and p2 can be the same slice.
func reducevec(p1, p2 []uint64, q uint64, u [2]uint64) {
	for i := range p1 {
		p2[i] = BRedAdd(p1[i], q, u)
	}
}
