package ring

import (
	"fmt"
	"math/big"
	"math/bits"
	"sync"

	"github.com/tuneinsight/ntt/utils/factorization"
)

// DefaultSearchBound is the number of candidates tested by each phase
// of the parameter search when no bound is given.
const DefaultSearchBound = 1 << 20

// trialDivisionBound is the size below which candidates are tested by trial division.
const trialDivisionBound = 1 << 32

// IsPrime applies the Baillie-PSW, which is 100% accurate for numbers below 2^64.
func IsPrime(x uint64) bool {
	return new(big.Int).SetUint64(x).ProbablyPrime(0)
}

// isPrimeCandidate tests the small candidates of the modulus search
// by trial division and falls back to [IsPrime] above trialDivisionBound.
func isPrimeCandidate(x uint64) bool {
	if x < trialDivisionBound {
		return factorization.IsPrime(x)
	}
	return IsPrime(x)
}

// FindParameters returns the smallest prime modulus q = k*N + 1 and the
// smallest primitive N-th root of unity mod q.
// Each phase tests at most bound candidates, bound <= 0 defaults to
// [DefaultSearchBound]. An error wrapping [ErrParametersNotFound] is
// returned when a phase exhausts its bound.
func FindParameters(N, bound int) (modulus, root uint64, err error) {

	if modulus, err = FindModulus(N, bound); err != nil {
		return
	}

	if root, err = FindPrimitiveRoot(N, modulus, bound); err != nil {
		return 0, 0, err
	}

	return
}

// FindModulus returns the first prime of the form k*N + 1 for k = 1, 2, ...
// The condition q = 1 mod N guarantees that the multiplicative group of
// Z_q, of order q-1, contains elements of order N.
func FindModulus(N, bound int) (q uint64, err error) {

	if N < 2 {
		return 0, fmt.Errorf("%w: N=%d must be at least 2", ErrInvalidSize, N)
	}

	if bound <= 0 {
		bound = DefaultSearchBound
	}

	n := uint64(N)

	for k := uint64(1); k <= uint64(bound); k++ {

		hi, lo := bits.Mul64(n, k)

		if hi != 0 || bits.Len64(lo+1) > MaxModulusBits {
			return 0, fmt.Errorf("%w: candidate %d*%d+1 exceeds %d bits", ErrArithmeticOverflow, k, N, MaxModulusBits)
		}

		if q = lo + 1; isPrimeCandidate(q) {
			return q, nil
		}
	}

	return 0, fmt.Errorf("%w: no prime modulus = 1 mod %d among %d candidates", ErrParametersNotFound, N, bound)
}

// FindPrimitiveRoot returns the smallest g in [2, q-1] of multiplicative
// order exactly N mod q.
// Candidates are tested by accumulating g^j for j = 1, ..., N: a candidate
// is rejected as soon as a power equals 1 before j = N, or if g^N != 1.
// This certifies that the order is N and not a proper divisor of N.
func FindPrimitiveRoot(N int, q uint64, bound int) (g uint64, err error) {

	if N < 2 {
		return 0, fmt.Errorf("%w: N=%d must be at least 2", ErrInvalidSize, N)
	}

	if q < 3 || bits.Len64(q) > MaxModulusBits {
		return 0, fmt.Errorf("%w: modulus %d must be in [3, 2^%d)", ErrInvalidParameters, q, MaxModulusBits)
	}

	if bound <= 0 {
		bound = DefaultSearchBound
	}

	brc := GenBRedConstant(q)

	for g = 2; g < q; g++ {

		if g-1 > uint64(bound) {
			return 0, fmt.Errorf("%w: no root of order %d mod %d among %d candidates", ErrParametersNotFound, N, q, bound)
		}

		if hasOrder(g, N, q, brc) {
			return g, nil
		}
	}

	return 0, fmt.Errorf("%w: no root of order %d mod %d", ErrParametersNotFound, N, q)
}

// hasOrder returns true if the first j >= 1 such that g^j = 1 mod q is N.
func hasOrder(g uint64, N int, q uint64, brc [2]uint64) bool {
	power := uint64(1)
	for j := 1; j <= N; j++ {
		if power = BRed(power, g, q, brc); power == 1 {
			return j == N
		}
	}
	return false
}

// CheckPrimitiveRoot checks that g has multiplicative order exactly N mod q,
// i.e. g^N = 1 and g^(N/f) != 1 for every prime factor f of N.
func CheckPrimitiveRoot(g, q uint64, N int) (err error) {

	if N < 2 {
		return fmt.Errorf("%w: N=%d must be at least 2", ErrInvalidSize, N)
	}

	if q < 2 || bits.Len64(q) > MaxModulusBits {
		return fmt.Errorf("%w: modulus %d must be in [2, 2^%d)", ErrInvalidParameters, q, MaxModulusBits)
	}

	if g == 0 || g >= q {
		return fmt.Errorf("%w: root %d is not in [1, %d]", ErrInvalidParameters, g, q-1)
	}

	n := uint64(N)

	if ModExp(g, n, q) != 1 {
		return fmt.Errorf("%w: %d^%d != 1 mod %d", ErrInvalidParameters, g, N, q)
	}

	for _, f := range factorization.GetFactors(n) {
		if ModExp(g, n/f, q) == 1 {
			return fmt.Errorf("%w: order of %d mod %d divides %d", ErrInvalidParameters, g, q, n/f)
		}
	}

	return
}

// ParameterCache memoizes the result of [FindParameters] per transform length,
// so that the search runs once per length. It is safe for concurrent use.
type ParameterCache struct {
	mu     sync.RWMutex
	bound  int
	params map[int][2]uint64
}

// DefaultParameterCache is the cache used when a [ParametersLiteral] leaves
// the modulus unset and does not specify a search bound.
var DefaultParameterCache = NewParameterCache(DefaultSearchBound)

// NewParameterCache creates a new ParameterCache whose searches use the given bound.
func NewParameterCache(bound int) *ParameterCache {
	return &ParameterCache{
		bound:  bound,
		params: map[int][2]uint64{},
	}
}

// Get returns the modulus and primitive root for N, searching them on first use.
func (c *ParameterCache) Get(N int) (modulus, root uint64, err error) {

	c.mu.RLock()
	p, ok := c.params[N]
	c.mu.RUnlock()

	if ok {
		return p[0], p[1], nil
	}

	if modulus, root, err = FindParameters(N, c.bound); err != nil {
		return
	}

	c.mu.Lock()
	c.params[N] = [2]uint64{modulus, root}
	c.mu.Unlock()

	return
}

// Len returns the number of cached lengths.
func (c *ParameterCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.params)
}
