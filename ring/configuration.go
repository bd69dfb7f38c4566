package ring

import (
	"fmt"
	"math/bits"

	"github.com/google/go-cmp/cmp"

	"github.com/tuneinsight/ntt/utils"
	"github.com/tuneinsight/ntt/utils/factorization"
	"github.com/tuneinsight/ntt/utils/structs"
)

// Direction is the direction of a transform.
type Direction int

const (
	// Forward installs the primitive root g.
	Forward = Direction(iota)
	// Backward installs g^-1 mod q. The backward transform is not scaled by N^-1.
	Backward
)

// String returns the name of the direction.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Options are the runtime choices of a [Configuration].
// They do not change the result of a transform, only its cost.
type Options struct {
	// Strategy selects the transform algorithm.
	Strategy Strategy `json:"strategy"`
	// PowerTable enables the precomputation of root^i for i in [0, N),
	// trading O(N) memory for table reads instead of exponentiations.
	PowerTable bool `json:"power_table,omitempty"`
	// Workers is the number of goroutines used by the data-parallel loops.
	// Values smaller than 2 run the transform on the calling goroutine.
	Workers int `json:"workers,omitempty"`
}

// ParametersLiteral is a literal representation of a pair of transform configurations.
// A zero Modulus (resp. PrimitiveRoot) is searched with [FindModulus] (resp. [FindPrimitiveRoot]).
// A PrimitiveRoot cannot be given without its Modulus.
type ParametersLiteral struct {
	N             int    `json:"n"`
	Modulus       uint64 `json:"modulus,omitempty"`
	PrimitiveRoot uint64 `json:"primitive_root,omitempty"`
	SearchBound   int    `json:"search_bound,omitempty"`
	Options
}

// Configuration stores the precomputations of a transform of fixed length and
// direction: the modulus, the installed root, the Barrett constant, the prime
// factors of N and the optional table of powers of the root.
//
// A Configuration is built once and reused: it is never modified by a transform
// and can be shared between goroutines as long as each one uses its own sequences.
type Configuration struct {
	ntt NumberTheoreticTransformer

	// Transform length
	N int

	// Prime modulus, 1 mod N
	Modulus uint64

	// Primitive N-th root of unity of the forward direction
	PrimitiveRoot uint64

	// Installed root: PrimitiveRoot for Forward, PrimitiveRoot^-1 for Backward
	Root uint64

	Direction Direction

	// Barrett Reduction
	BRedConstant [2]uint64

	// Prime factors of N, largest first (MixedRadix only)
	Factors []uint64

	// Root^i mod Modulus for i in [0, N) (only if Options.PowerTable)
	PowerTable []uint64

	Options Options

	pool *structs.SyncPool[*[]uint64]
}

// NewConfiguration creates a new Configuration for a transform of length N modulo
// modulus, where root is a primitive N-th root of unity mod modulus. The root of
// the backward direction is derived from root.
// An error is returned with a nil *Configuration in the case of non NTT-enabling
// parameters.
func NewConfiguration(N int, modulus, root uint64, direction Direction, opts Options) (c *Configuration, err error) {

	if N < 2 {
		return nil, fmt.Errorf("%w: N=%d must be at least 2", ErrInvalidSize, N)
	}

	if !opts.Strategy.valid() {
		return nil, fmt.Errorf("%w: unknown strategy %d", ErrInvalidParameters, int(opts.Strategy))
	}

	if opts.Strategy == Radix2 && !utils.IsPowerOfTwo(N) {
		return nil, fmt.Errorf("%w: N=%d must be a power of two for the %s strategy", ErrInvalidSize, N, opts.Strategy)
	}

	if direction != Forward && direction != Backward {
		return nil, fmt.Errorf("%w: unknown direction %d", ErrInvalidParameters, int(direction))
	}

	if bits.Len64(modulus) > MaxModulusBits {
		return nil, fmt.Errorf("%w: modulus %d exceeds %d bits", ErrArithmeticOverflow, modulus, MaxModulusBits)
	}

	if !IsPrime(modulus) {
		return nil, fmt.Errorf("%w: modulus %d is not prime", ErrInvalidParameters, modulus)
	}

	if (modulus-1)%uint64(N) != 0 {
		return nil, fmt.Errorf("%w: modulus %d != 1 mod %d", ErrInvalidParameters, modulus, N)
	}

	if err = CheckPrimitiveRoot(root, modulus, N); err != nil {
		return nil, err
	}

	c = &Configuration{
		N:             N,
		Modulus:       modulus,
		PrimitiveRoot: root,
		Root:          root,
		Direction:     direction,
		BRedConstant:  GenBRedConstant(modulus),
		Options:       opts,
	}

	if direction == Backward {
		if c.Root, err = ModInverse(root, modulus); err != nil {
			return nil, err
		}
	}

	if opts.Strategy == MixedRadix {
		if c.Factors, err = factorization.Factorize(uint64(N)); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSize, err)
		}
	}

	if opts.PowerTable {
		c.PowerTable = NewPowerTable(c.Root, N, modulus, c.BRedConstant)
	}

	c.pool = structs.NewUint64SlicePool(N)

	c.ntt = opts.Strategy.newTransformer(c)

	return
}

// NewConfigurationPair creates the forward and backward configurations described
// by the literal, searching the modulus and the primitive root if they are not set.
func NewConfigurationPair(lit ParametersLiteral) (forward, backward *Configuration, err error) {

	if lit.N < 2 {
		return nil, nil, fmt.Errorf("%w: N=%d must be at least 2", ErrInvalidSize, lit.N)
	}

	modulus, root := lit.Modulus, lit.PrimitiveRoot

	if modulus == 0 && root != 0 {
		return nil, nil, fmt.Errorf("%w: primitive root %d given without a modulus", ErrInvalidParameters, root)
	}

	switch {
	case modulus == 0 && lit.SearchBound <= 0:
		if modulus, root, err = DefaultParameterCache.Get(lit.N); err != nil {
			return
		}
	case modulus == 0:
		if modulus, root, err = FindParameters(lit.N, lit.SearchBound); err != nil {
			return
		}
	case root == 0:
		if root, err = FindPrimitiveRoot(lit.N, modulus, lit.SearchBound); err != nil {
			return
		}
	}

	if forward, err = NewConfiguration(lit.N, modulus, root, Forward, lit.Options); err != nil {
		return nil, nil, err
	}

	if backward, err = NewConfiguration(lit.N, modulus, root, Backward, lit.Options); err != nil {
		return nil, nil, err
	}

	return
}

// ParametersLiteral returns the literal that rebuilds the configuration without search.
func (c *Configuration) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		N:             c.N,
		Modulus:       c.Modulus,
		PrimitiveRoot: c.PrimitiveRoot,
		Options:       c.Options,
	}
}

// Equal returns true if both configurations define the same transform
// with the same options.
func (c *Configuration) Equal(other *Configuration) bool {
	return c.Direction == other.Direction && cmp.Equal(c.ParametersLiteral(), other.ParametersLiteral())
}

// Transformer returns the [NumberTheoreticTransformer] of the configuration.
func (c *Configuration) Transformer() NumberTheoreticTransformer {
	return c.ntt
}

// Pow returns Root^e mod Modulus, read from the power table when available.
func (c *Configuration) Pow(e uint64) uint64 {
	e %= uint64(c.N)
	if c.PowerTable != nil {
		return c.PowerTable[e]
	}
	return ModExp(c.Root, e, c.Modulus)
}

// NInv returns N^-1 mod Modulus.
func (c *Configuration) NInv() uint64 {
	// Modulus = 1 mod N so N is invertible.
	nInv, _ := ModInverse(uint64(c.N), c.Modulus)
	return nInv
}

// Transform evaluates p2[i] = sum_j p1[j] * Root^(i*j) mod Modulus for i in [0, N).
// Both sequences must have length N. p1 is left unchanged unless p1 and p2
// are the same slice, in which case the transform is computed in place.
// p1 and p2 must not otherwise overlap.
// Coefficients of p1 do not need to be reduced modulo Modulus.
func (c *Configuration) Transform(p1, p2 []uint64) (err error) {

	if len(p1) != c.N || len(p2) != c.N {
		return fmt.Errorf("%w: got %d and %d, want %d", ErrLengthMismatch, len(p1), len(p2), c.N)
	}

	c.ntt.Transform(p1, p2)

	return
}

// TransformNew evaluates the transform of p1 on a newly allocated sequence.
func (c *Configuration) TransformNew(p1 []uint64) (p2 []uint64, err error) {
	p2 = make([]uint64, c.N)
	if err = c.Transform(p1, p2); err != nil {
		return nil, err
	}
	return
}
