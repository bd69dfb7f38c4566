package ring

import (
	"github.com/tuneinsight/ntt/utils/concurrency"
	"github.com/tuneinsight/ntt/utils/structs"
)

// NumberTheoreticTransformer is an interface to provide
// flexibility on what algorithm is used by a [Configuration].
//
// Transform writes on p2 the transform of p1 with respect to the root
// installed in the configuration the transformer was created from:
// p2[i] = sum_j p1[j] * root^(i*j) mod q, in natural order.
// p1 and p2 must have length N and must either be the same slice or not overlap.
type NumberTheoreticTransformer interface {
	Transform(p1, p2 []uint64)
}

type numberTheoreticTransformerBase struct {
	n            int
	modulus      uint64
	root         uint64
	halfRotation uint64
	bredConstant [2]uint64
	powers       []uint64
	workers      int
	pool         *structs.SyncPool[*[]uint64]
}

func newNumberTheoreticTransformerBase(c *Configuration) numberTheoreticTransformerBase {
	return numberTheoreticTransformerBase{
		n:            c.N,
		modulus:      c.Modulus,
		root:         c.Root,
		halfRotation: c.Pow(uint64(c.N >> 1)),
		bredConstant: c.BRedConstant,
		powers:       c.PowerTable,
		workers:      c.Options.Workers,
		pool:         c.pool,
	}
}

// pow returns root^e mod q for e in [0, N).
func (b numberTheoreticTransformerBase) pow(e int) uint64 {
	if b.powers != nil {
		return b.powers[e]
	}
	return ModExp(b.root, uint64(e), b.modulus)
}

// parallelize splits [0, n) into contiguous ranges and calls f on each of them,
// on up to b.workers goroutines. Each call receives its own scratch buffer of
// size scratch. It returns once all the ranges have been processed.
func (b numberTheoreticTransformerBase) parallelize(n, scratch int, f func(start, end int, buff []uint64)) {

	ranges := concurrency.Split(n, b.workers)

	if len(ranges) < 2 {
		f(0, n, make([]uint64, scratch))
		return
	}

	buffs := make([][]uint64, len(ranges))
	for i := range buffs {
		buffs[i] = make([]uint64, scratch)
	}

	rm := concurrency.NewRessourceManager(buffs)

	for _, r := range ranges {
		start, end := r[0], r[1]
		rm.Run(func(buff []uint64) (err error) {
			f(start, end, buff)
			return
		})
	}

	// Tasks never fail.
	_ = rm.Wait()
}
