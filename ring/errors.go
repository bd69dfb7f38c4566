package ring

import "errors"

// Sentinel errors returned by the transform constructors and operations.
// Returned errors wrap one of these values and can be matched with [errors.Is].
var (
	// ErrInvalidSize is returned when the transform length is smaller than 2,
	// or when it is not a power of two and the radix-2 strategy is selected.
	ErrInvalidSize = errors.New("ring: invalid transform size")

	// ErrParametersNotFound is returned when the modulus or primitive root
	// search exhausts its candidate ceiling.
	ErrParametersNotFound = errors.New("ring: parameters not found")

	// ErrNonInvertible is returned when a modular inverse is requested
	// for an element that is not coprime with the modulus.
	ErrNonInvertible = errors.New("ring: element is not invertible")

	// ErrArithmeticOverflow is returned when a modulus would not fit the
	// range for which the Barrett reduction is exact.
	ErrArithmeticOverflow = errors.New("ring: arithmetic overflow")

	// ErrInvalidParameters is returned when a modulus, root or strategy
	// supplied by the caller does not define a valid transform.
	ErrInvalidParameters = errors.New("ring: invalid parameters")

	// ErrLengthMismatch is returned when a sequence does not have the
	// length of the transform.
	ErrLengthMismatch = errors.New("ring: sequence length mismatch")
)
