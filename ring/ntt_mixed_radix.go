package ring

// NumberTheoreticTransformerMixedRadix evaluates the transform with the
// Cooley-Tukey algorithm over the prime factors of N, in O(N * sum(factors)).
//
// For a sub-transform of size n = f*M with root w, writing the input index as
// n1 + M*n2 and the output index as f*k1 + k2, each group {n1 + M*n2 : n2 < f}
// is replaced by its f-point transform twisted by w^(n1*k2):
//
//	y[n1 + M*k2] = sum_{n2} x[n1 + M*n2] * w^(k2*(n1 + M*n2))
//
// after which each of the f contiguous blocks of size M is a sub-transform of
// root w^f. The output is left in digit-reversed order and permuted back with
// a precomputed table.
type NumberTheoreticTransformerMixedRadix struct {
	numberTheoreticTransformerBase
	factors     []int
	permutation []int
}

// NewNumberTheoreticTransformerMixedRadix creates a new NumberTheoreticTransformerMixedRadix for c.
// The factors of N are taken from c.Factors.
func NewNumberTheoreticTransformerMixedRadix(c *Configuration) NumberTheoreticTransformer {

	factors := make([]int, len(c.Factors))
	for i := range factors {
		factors[i] = int(c.Factors[i])
	}

	return NumberTheoreticTransformerMixedRadix{
		numberTheoreticTransformerBase: newNumberTheoreticTransformerBase(c),
		factors:                        factors,
		permutation:                    digitReversalPermutation(c.N, factors),
	}
}

// Transform writes the transform of p1 on p2.
// The butterflies are applied on a pooled scratch buffer, p1 is not modified.
func (rntt NumberTheoreticTransformerMixedRadix) Transform(p1, p2 []uint64) {

	N := rntt.n

	buff := rntt.pool.Get()
	defer rntt.pool.Put(buff)

	x := *buff
	reducevec(p1, x, rntt.modulus, rntt.bredConstant)

	// s is the accumulated stride: the root of the current sub-transforms is root^s.
	// s * size = N holds at every level.
	size, s := N, 1
	for _, f := range rntt.factors {

		M := size / f
		blocks := N / size
		n, stride := size, s

		// Groups of a level write disjoint indices, the next
		// level only starts once parallelize has returned.
		rntt.parallelize(blocks*M, f, func(start, end int, t []uint64) {
			for idx := start; idx < end; idx++ {
				b, n1 := idx/M, idx%M
				rntt.butterfly(x[b*n:(b+1)*n], t, f, M, n1, stride)
			}
		})

		size, s = M, s*f
	}

	for k, pos := range rntt.permutation {
		p2[k] = x[pos]
	}
}

// butterfly applies the full f x f combination on the group {n1 + M*n2 : n2 < f}
// of the sub-transform x, using t as a temporary buffer of size f.
// The exponent of the cross term (k2, n2) is s*k2*(n1 + M*n2) < N.
func (rntt NumberTheoreticTransformerMixedRadix) butterfly(x, t []uint64, f, M, n1, s int) {

	q, brc, N := rntt.modulus, rntt.bredConstant, rntt.n

	for n2 := 0; n2 < f; n2++ {
		t[n2] = x[n1+M*n2]
	}

	for k2 := 0; k2 < f; k2++ {

		e, step := s*k2*n1, s*k2*M

		var acc uint64

		if rntt.powers != nil {
			for n2 := 0; n2 < f; n2++ {
				acc = CRed(acc+BRed(t[n2], rntt.powers[e], q, brc), q)
				if e += step; e >= N {
					e -= N
				}
			}
		} else {
			w, ws := rntt.pow(e), rntt.pow(step)
			for n2 := 0; n2 < f; n2++ {
				acc = CRed(acc+BRed(t[n2], w, q, brc), q)
				w = BRed(w, ws, q, brc)
			}
		}

		x[n1+M*k2] = acc
	}
}

// digitReversalPermutation returns the table pos such that, after all the
// levels of the mixed-radix decomposition, the k-th output is stored at pos[k].
func digitReversalPermutation(N int, factors []int) (pos []int) {
	pos = make([]int, N)
	for k := range pos {
		size, rem := N, k
		for _, f := range factors {
			size /= f
			pos[k] += (rem % f) * size
			rem /= f
		}
	}
	return
}
