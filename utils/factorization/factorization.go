// Package factorization implements the factorization of machine-word
// integers into their prime components.
package factorization

import (
	"fmt"

	"github.com/tuneinsight/ntt/utils"
)

// IsPrime applies trial division by the odd integers up to sqrt(n).
// It is exact for every uint64 but runs in O(sqrt(n)): it is meant for
// transform lengths and small search candidates, not for 61-bit moduli.
func IsPrime(n uint64) bool {

	if n < 2 {
		return false
	}

	if n&1 == 0 {
		return n == 2
	}

	for d := uint64(3); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// Factorize returns the prime factors of n, with repetition and
// sorted from the largest to the smallest, such that their product
// is equal to n.
// Factors are found by trial division, restarting at the smallest
// candidate after each successful division.
func Factorize(n uint64) (factors []uint64, err error) {

	if n < 2 {
		return nil, fmt.Errorf("cannot Factorize: n=%d must be at least 2", n)
	}

	for fact := uint64(2); n > 1; {

		// the remaining cofactor is prime
		if fact > n/fact {
			factors = append(factors, n)
			break
		}

		if n%fact == 0 {
			factors = append(factors, fact)
			n /= fact
			fact = 2
		} else {
			fact++
		}
	}

	utils.SortSliceDescending(factors)

	return
}

// GetFactors returns the distinct prime factors of n in ascending order.
// Returns nil for n < 2.
func GetFactors(n uint64) (factors []uint64) {

	all, err := Factorize(n)
	if err != nil {
		return nil
	}

	factors = utils.GetDistincts(all)
	utils.SortSlice(factors)

	return
}
