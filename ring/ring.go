// Package ring implements the number-theoretic transform over Z_q for
// lengths that are powers of two or arbitrary composite integers, together
// with the modular arithmetic and the parameter search it relies on.
package ring

import (
	"fmt"
)

// Ring is the cyclic ring Z_q[X]/(X^N - 1), in which the transform of
// length N maps the product of two polynomials to the coefficient-wise
// product of their transforms.
type Ring struct {
	forward  *Configuration
	backward *Configuration
	nInv     uint64
}

// NewRing creates a new Ring from a literal, searching the modulus and
// primitive root if they are not set.
func NewRing(lit ParametersLiteral) (r *Ring, err error) {

	var forward, backward *Configuration
	if forward, backward, err = NewConfigurationPair(lit); err != nil {
		return
	}

	return NewRingFromConfigurations(forward, backward)
}

// NewRingFromConfigurations creates a new Ring from a pair of forward and backward configurations.
func NewRingFromConfigurations(forward, backward *Configuration) (r *Ring, err error) {

	if err = checkPair(forward, backward); err != nil {
		return
	}

	return &Ring{
		forward:  forward,
		backward: backward,
		nInv:     forward.NInv(),
	}, nil
}

// N returns the length of the transform.
func (r *Ring) N() int {
	return r.forward.N
}

// Modulus returns the modulus of the ring.
func (r *Ring) Modulus() uint64 {
	return r.forward.Modulus
}

// Forward returns the configuration of the forward transform.
func (r *Ring) Forward() *Configuration {
	return r.forward
}

// Backward returns the configuration of the backward transform.
func (r *Ring) Backward() *Configuration {
	return r.backward
}

// NewPoly allocates a new polynomial with N zero coefficients.
func (r *Ring) NewPoly() []uint64 {
	return make([]uint64, r.N())
}

// NTT evaluates p2 = NTT(p1).
func (r *Ring) NTT(p1, p2 []uint64) error {
	return r.forward.Transform(p1, p2)
}

// INTT evaluates p2 = INTT(p1), scaled by N^-1 so that INTT(NTT(p1)) = p1.
func (r *Ring) INTT(p1, p2 []uint64) (err error) {

	if err = r.backward.Transform(p1, p2); err != nil {
		return
	}

	q, brc := r.Modulus(), r.forward.BRedConstant
	for i := range p2 {
		p2[i] = BRed(p2[i], r.nInv, q, brc)
	}

	return
}

// MulCoeffs multiplies p1 by p2 coefficient-wise and writes the result on p3.
// Coefficients are expected to be reduced modulo the modulus.
func (r *Ring) MulCoeffs(p1, p2, p3 []uint64) {
	q, brc := r.Modulus(), r.forward.BRedConstant
	for i := range p3 {
		p3[i] = BRed(p1[i], p2[i], q, brc)
	}
}

// Convolve writes on p3 the cyclic convolution of p1 and p2,
// i.e. their product in Z_q[X]/(X^N - 1).
// p3 can be p1 or p2.
func (r *Ring) Convolve(p1, p2, p3 []uint64) (err error) {

	if len(p1) != r.N() || len(p2) != r.N() || len(p3) != r.N() {
		return fmt.Errorf("%w: got %d, %d and %d, want %d", ErrLengthMismatch, len(p1), len(p2), len(p3), r.N())
	}

	tmp := r.NewPoly()

	if err = r.NTT(p1, tmp); err != nil {
		return
	}

	if err = r.NTT(p2, p3); err != nil {
		return
	}

	r.MulCoeffs(tmp, p3, p3)

	return r.INTT(p3, p3)
}
