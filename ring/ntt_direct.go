package ring

// NumberTheoreticTransformerDirect evaluates the transform with its O(N^2) definition.
// Each output coefficient only depends on the input and its own index, so the
// outer loop is distributed over the configured workers.
type NumberTheoreticTransformerDirect struct {
	numberTheoreticTransformerBase
}

// NewNumberTheoreticTransformerDirect creates a new NumberTheoreticTransformerDirect for c.
func NewNumberTheoreticTransformerDirect(c *Configuration) NumberTheoreticTransformer {
	return NumberTheoreticTransformerDirect{
		numberTheoreticTransformerBase: newNumberTheoreticTransformerBase(c),
	}
}

// Transform writes the transform of p1 on p2.
func (rntt NumberTheoreticTransformerDirect) Transform(p1, p2 []uint64) {

	// p1 is read for every output coefficient, so it is first
	// reduced on a private copy which also allows p1 == p2.
	buff := rntt.pool.Get()
	defer rntt.pool.Put(buff)

	x := *buff
	reducevec(p1, x, rntt.modulus, rntt.bredConstant)

	rntt.parallelize(rntt.n, 0, func(start, end int, _ []uint64) {
		for i := start; i < end; i++ {
			p2[i] = rntt.coefficient(x, i)
		}
	})
}

// coefficient returns sum_j x[j] * root^(i*j) mod q.
func (rntt NumberTheoreticTransformerDirect) coefficient(x []uint64, i int) (acc uint64) {

	q, brc, N := rntt.modulus, rntt.bredConstant, rntt.n

	if rntt.powers != nil {
		// e = i*j mod N
		for j, e := 0, 0; j < N; j++ {
			acc = CRed(acc+BRed(x[j], rntt.powers[e], q, brc), q)
			if e += i; e >= N {
				e -= N
			}
		}
		return
	}

	// twiddle = (root^i)^j
	step := rntt.pow(i)
	twiddle := uint64(1)
	for j := 0; j < N; j++ {
		acc = CRed(acc+BRed(x[j], twiddle, q, brc), q)
		twiddle = BRed(twiddle, step, q, brc)
	}

	return
}
