package ring

import (
	"fmt"

	"github.com/tuneinsight/ntt/utils"
)

// VerifyRoundTrip applies the forward transform on input, feeds the result to the
// backward transform, scales it by N^-1 and checks that input is recovered
// coefficient-wise (modulo the modulus).
// An error is returned if the two configurations do not form a forward/backward
// pair or if a transform fails.
func VerifyRoundTrip(forward, backward *Configuration, input []uint64) (ok bool, err error) {

	if err = checkPair(forward, backward); err != nil {
		return
	}

	var ntt, output []uint64

	if ntt, err = forward.TransformNew(input); err != nil {
		return
	}

	if output, err = backward.TransformNew(ntt); err != nil {
		return
	}

	q, brc := forward.Modulus, forward.BRedConstant

	nInv := forward.NInv()

	want := make([]uint64, len(input))
	reducevec(input, want, q, brc)

	for i := range output {
		output[i] = BRed(output[i], nInv, q, brc)
	}

	return utils.EqualSliceUint64(output, want), nil
}

// checkPair checks that forward and backward are inverse transforms of each other.
func checkPair(forward, backward *Configuration) error {

	if forward == nil || backward == nil {
		return fmt.Errorf("%w: nil configuration", ErrInvalidParameters)
	}

	if forward.Direction != Forward || backward.Direction != Backward {
		return fmt.Errorf("%w: expected a (%s, %s) pair, got (%s, %s)", ErrInvalidParameters, Forward, Backward, forward.Direction, backward.Direction)
	}

	if forward.N != backward.N || forward.Modulus != backward.Modulus {
		return fmt.Errorf("%w: mismatching N or modulus: (%d, %d) and (%d, %d)", ErrInvalidParameters, forward.N, forward.Modulus, backward.N, backward.Modulus)
	}

	if BRed(forward.Root, backward.Root, forward.Modulus, forward.BRedConstant) != 1 {
		return fmt.Errorf("%w: roots %d and %d are not inverse of each other", ErrInvalidParameters, forward.Root, backward.Root)
	}

	return nil
}
