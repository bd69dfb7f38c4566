package ring

import (
	"fmt"
	"testing"

	"github.com/tuneinsight/ntt/utils"
	"github.com/tuneinsight/ntt/utils/sampling"
)

func BenchmarkNTT(b *testing.B) {
	for _, N := range []int{64, 256, 360, 1024, 4096} {
		for _, s := range Strategies {
			if s == Radix2 && !utils.IsPowerOfTwo(N) {
				continue
			}
			if s == Direct && N > 1024 {
				continue
			}
			for _, lut := range []bool{false, true} {
				benchNTT(N, Options{Strategy: s, PowerTable: lut, Workers: 1}, b)
			}
		}
	}
}

func BenchmarkNTTParallel(b *testing.B) {
	for _, workers := range []int{1, 2, 4, 8} {
		benchNTT(1<<14, Options{Strategy: Radix2, PowerTable: true, Workers: workers}, b)
		benchNTT(3*5*7*16, Options{Strategy: MixedRadix, PowerTable: true, Workers: workers}, b)
	}
}

func benchNTT(N int, opts Options, b *testing.B) {

	forward, backward, err := NewConfigurationPair(ParametersLiteral{N: N, Options: opts})
	if err != nil {
		b.Fatal(err)
	}

	prng, err := sampling.NewPRNG()
	if err != nil {
		b.Fatal(err)
	}

	p := NewUniformSampler(prng, forward.Modulus).ReadNew(N)

	b.Run(testString("Forward", forward), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if err := forward.Transform(p, p); err != nil {
				b.Fatal(err)
			}
		}
	})

	b.Run(testString("Backward", backward), func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			if err := backward.Transform(p, p); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkFindParameters(b *testing.B) {
	for _, N := range []int{1024, 360, 1 << 16} {
		b.Run(fmt.Sprintf("N=%d", N), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, _, err := FindParameters(N, 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkModularReduction(b *testing.B) {

	q := uint64(0x1fffffffffe00001)
	brc := GenBRedConstant(q)
	x, y := q-1, q-2

	b.Run("BRed", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			x = BRed(x, y, q, brc)
		}
	})

	b.Run("ModExp", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			x = ModExp(y, q-2, q)
		}
	})
}
