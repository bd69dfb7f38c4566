package ring

import (
	"github.com/tuneinsight/ntt/utils"
)

// NumberTheoreticTransformerRadix2 evaluates the transform with the iterative
// radix-2 Cooley-Tukey algorithm in O(N log N), N must be a power of two.
//
// The input is processed in natural order with log2(N) stages of butterflies of
// decreasing stride N/2, N/4, ..., 1, which leaves the output in bit-reversed order.
// A final bit-reversal permutation restores the natural order.
type NumberTheoreticTransformerRadix2 struct {
	numberTheoreticTransformerBase
}

// NewNumberTheoreticTransformerRadix2 creates a new NumberTheoreticTransformerRadix2 for c.
func NewNumberTheoreticTransformerRadix2(c *Configuration) NumberTheoreticTransformer {
	return NumberTheoreticTransformerRadix2{
		numberTheoreticTransformerBase: newNumberTheoreticTransformerBase(c),
	}
}

// Transform writes the transform of p1 on p2.
// p2 is used as the working buffer: p1 is first reduced into p2 and the
// butterflies are then applied in place on p2.
func (rntt NumberTheoreticTransformerRadix2) Transform(p1, p2 []uint64) {

	N := rntt.n

	reducevec(p1, p2, rntt.modulus, rntt.bredConstant)

	// m is the number of butterfly groups of the stage and t their stride.
	for m, t := 1, N>>1; m < N; m, t = m<<1, t>>1 {

		logM := uint64(utils.Log2(m))
		stride := t

		// Groups of a stage write disjoint indices, the next
		// stage only starts once parallelize has returned.
		rntt.parallelize(m, 0, func(start, end int, _ []uint64) {
			for g := start; g < end; g++ {
				e := int(utils.BitReverse64(uint64(g), logM)) * stride
				rntt.butterflies(p2[2*g*stride:2*(g+1)*stride], stride, e)
			}
		})
	}

	utils.BitReverseInPlaceSlice(p2, N)
}

// butterflies applies x[j], x[j+t] = x[j] + x[j+t]*w1, x[j] + x[j+t]*w2 on the group x,
// where w1 = root^e and w2 = root^(e+N/2) = w1 * root^(N/2) = -w1.
func (rntt NumberTheoreticTransformerRadix2) butterflies(x []uint64, t, e int) {

	q, brc := rntt.modulus, rntt.bredConstant

	var w1, w2 uint64
	if rntt.powers != nil {
		w1, w2 = rntt.powers[e], rntt.powers[e+rntt.n>>1]
	} else {
		w1 = rntt.pow(e)
		w2 = BRed(w1, rntt.halfRotation, q, brc)
	}

	for j := 0; j < t; j++ {
		u, v := x[j], x[j+t]
		x[j] = CRed(u+BRed(v, w1, q, brc), q)
		x[j+t] = CRed(u+BRed(v, w2, q, brc), q)
	}
}
