package ring

import (
	"fmt"
	"strings"
)

// Strategy selects the algorithm used by a [Configuration] to evaluate the transform.
// All strategies compute the same result, they only differ in cost.
type Strategy int

const (
	// Direct evaluates the O(N^2) definition of the transform.
	Direct = Strategy(iota)
	// Radix2 is the iterative Cooley-Tukey transform, N must be a power of two.
	Radix2
	// MixedRadix is the Cooley-Tukey transform over the prime factors of N.
	MixedRadix
)

// Strategies lists all the available strategies.
var Strategies = []Strategy{Direct, Radix2, MixedRadix}

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case Direct:
		return "direct"
	case Radix2:
		return "radix2"
	case MixedRadix:
		return "mixed-radix"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy returns the strategy with the given name.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "direct", "naive", "n2":
		return Direct, nil
	case "radix2", "radix-2", "fixed":
		return Radix2, nil
	case "mixed-radix", "mixedradix", "mixed":
		return MixedRadix, nil
	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", ErrInvalidParameters, name)
	}
}

// MarshalText encodes the strategy as its name.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: unknown strategy %d", ErrInvalidParameters, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText decodes a strategy from its name.
func (s *Strategy) UnmarshalText(text []byte) (err error) {
	*s, err = ParseStrategy(string(text))
	return
}

func (s Strategy) valid() bool {
	return s >= Direct && s <= MixedRadix
}

// newTransformer instantiates the [NumberTheoreticTransformer] of the strategy for c.
func (s Strategy) newTransformer(c *Configuration) NumberTheoreticTransformer {
	switch s {
	case Radix2:
		return NewNumberTheoreticTransformerRadix2(c)
	case MixedRadix:
		return NewNumberTheoreticTransformerMixedRadix(c)
	default:
		return NewNumberTheoreticTransformerDirect(c)
	}
}
