package ring

import (
	"fmt"
	"math/big"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tuneinsight/ntt/utils/sampling"
)

// Moduli of increasing size, the last one being the largest supported prime.
var testModuli = []uint64{3, 5, 17, 0x3ee0001, 0x1fffffffffe00001, 0x1fffffffffffffff}

func TestModularReduction(t *testing.T) {

	prng, err := sampling.NewSeededPRNG(0xbeef)
	require.NoError(t, err)

	for _, q := range testModuli {

		brc := GenBRedConstant(q)
		bigQ := new(big.Int).SetUint64(q)

		t.Run(fmt.Sprintf("GenBRedConstant/q=%d", q), func(t *testing.T) {
			want := new(big.Int).Lsh(big.NewInt(1), 128)
			want.Quo(want, bigQ)
			have := new(big.Int).SetUint64(brc[0])
			have.Lsh(have, 64)
			have.Add(have, new(big.Int).SetUint64(brc[1]))
			require.Equal(t, 0, want.Cmp(have))
		})

		sampler := NewUniformSampler(prng, q)

		t.Run(fmt.Sprintf("BRed/q=%d", q), func(t *testing.T) {

			x, y := sampler.ReadNew(512), sampler.ReadNew(512)

			// Extreme values
			x[0], y[0] = q-1, q-1
			x[1], y[1] = 0, q-1
			x[2], y[2] = 1, 1

			for i := range x {
				want := new(big.Int).Mul(new(big.Int).SetUint64(x[i]), new(big.Int).SetUint64(y[i]))
				want.Mod(want, bigQ)
				require.Equal(t, want.Uint64(), BRed(x[i], y[i], q, brc), "%d * %d mod %d", x[i], y[i], q)

				ahi, alo := bits.Mul64(x[i], y[i])
				require.Equal(t, want.Uint64(), BRedWide(ahi, alo, q, brc))
			}
		})

		t.Run(fmt.Sprintf("BRedAdd/q=%d", q), func(t *testing.T) {

			var buf [8]byte
			for _, x := range []uint64{0, 1, q - 1, q, q + 1, 2 * q, ^uint64(0)} {
				require.Equal(t, x%q, BRedAdd(x, q, brc), "%d mod %d", x, q)
			}

			for i := 0; i < 512; i++ {
				_, err := prng.Read(buf[:])
				require.NoError(t, err)
				x := new(big.Int).SetBytes(buf[:]).Uint64()
				require.Equal(t, x%q, BRedAdd(x, q, brc))
			}
		})

		t.Run(fmt.Sprintf("CRed/q=%d", q), func(t *testing.T) {
			require.Equal(t, uint64(0), CRed(q, q))
			require.Equal(t, q-1, CRed(2*q-1, q))
			require.Equal(t, q-1, CRed(q-1, q))
		})
	}

	t.Run("GenBRedConstant/Panics", func(t *testing.T) {
		require.Panics(t, func() { GenBRedConstant(1) })
	})
}

func TestModExp(t *testing.T) {

	prng, err := sampling.NewSeededPRNG(0xcafe)
	require.NoError(t, err)

	for _, q := range testModuli {

		bigQ := new(big.Int).SetUint64(q)
		sampler := NewUniformSampler(prng, q)

		t.Run(fmt.Sprintf("q=%d", q), func(t *testing.T) {

			x, e := sampler.ReadNew(64), sampler.ReadNew(64)

			for i := range x {
				want := new(big.Int).Exp(new(big.Int).SetUint64(x[i]), new(big.Int).SetUint64(e[i]), bigQ)
				require.Equal(t, want.Uint64(), ModExp(x[i], e[i], q))
			}

			require.Equal(t, uint64(1), ModExp(0, 0, q), "x^0 = 1")
			require.Equal(t, uint64(0), ModExp(0, 7, q))
			require.Equal(t, uint64(1)%q, ModExp(q+1, 5, q), "x is reduced first")
		})
	}

	t.Run("SmallModulus", func(t *testing.T) {
		require.Equal(t, uint64(0), ModExp(5, 3, 1))
		require.Equal(t, uint64(0), ModExp(5, 0, 1))
		require.Equal(t, uint64(0), ModExp(5, 3, 0))
		require.Equal(t, uint64(1), ModExp(5, 3, 2))
	})

	t.Run("Fermat", func(t *testing.T) {
		// a^(q-1) = 1 mod q for prime q and a != 0 mod q
		for _, q := range testModuli {
			for a := uint64(1); a < 16 && a < q; a++ {
				require.Equal(t, uint64(1), ModExp(a, q-1, q))
			}
		}
	})
}

func TestModInverse(t *testing.T) {

	t.Run("Prime", func(t *testing.T) {
		for _, q := range testModuli {
			brc := GenBRedConstant(q)
			for a := uint64(1); a < 64 && a < q; a++ {
				inv, err := ModInverse(a, q)
				require.NoError(t, err)
				require.Less(t, inv, q)
				require.Equal(t, uint64(1), BRed(a, inv, q, brc), "%d * %d mod %d", a, inv, q)
			}
		}
	})

	t.Run("Composite", func(t *testing.T) {
		inv, err := ModInverse(3, 10)
		require.NoError(t, err)
		require.Equal(t, uint64(7), inv)

		inv, err = ModInverse(13, 10)
		require.NoError(t, err)
		require.Equal(t, uint64(7), inv, "a is reduced first")
	})

	t.Run("Errors", func(t *testing.T) {

		_, err := ModInverse(4, 10)
		require.ErrorIs(t, err, ErrNonInvertible)

		_, err = ModInverse(0, 17)
		require.ErrorIs(t, err, ErrNonInvertible)

		_, err = ModInverse(34, 17)
		require.ErrorIs(t, err, ErrNonInvertible)

		_, err = ModInverse(3, 0)
		require.ErrorIs(t, err, ErrInvalidParameters)

		_, err = ModInverse(3, 1<<63)
		require.ErrorIs(t, err, ErrArithmeticOverflow)
	})
}
