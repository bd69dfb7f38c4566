package ring

import (
	"encoding/binary"
	"math/bits"

	"github.com/tuneinsight/ntt/utils/sampling"
)

// UniformSampler wraps a sampling.PRNG and samples sequences of
// coefficients uniformly distributed in [0, modulus-1].
type UniformSampler struct {
	prng    sampling.PRNG
	modulus uint64
	mask    uint64
	buffer  []byte
	ptr     int
}

// NewUniformSampler creates a new instance of UniformSampler from a PRNG and a modulus.
func NewUniformSampler(prng sampling.PRNG, modulus uint64) (u *UniformSampler) {
	return &UniformSampler{
		prng:    prng,
		modulus: modulus,
		mask:    (1 << uint64(bits.Len64(modulus-1))) - 1,
		buffer:  make([]byte, 1024),
		ptr:     1024,
	}
}

// Read fills p with coefficients uniformly distributed in [0, modulus-1].
func (u *UniformSampler) Read(p []uint64) {

	var randomUint uint64

	buffer := u.buffer
	byteArrayLength := len(buffer)
	ptr := u.ptr

	for i := range p {

		// Samples an integer between [0, modulus-1]
		for {

			// Refills the buff if it runs empty
			if ptr == byteArrayLength {
				if _, err := u.prng.Read(buffer); err != nil {
					// Sanity check, this error should not happen.
					panic(err)
				}
				ptr = 0
			}

			// Reads bytes from the buff
			randomUint = binary.BigEndian.Uint64(buffer[ptr:ptr+8]) & u.mask
			ptr += 8

			// If the integer is between [0, modulus-1], breaks the loop
			if randomUint < u.modulus {
				break
			}
		}

		p[i] = randomUint
	}

	u.ptr = ptr
}

// ReadNew returns a new sequence of N coefficients uniformly distributed in [0, modulus-1].
func (u *UniformSampler) ReadNew(N int) (p []uint64) {
	p = make([]uint64, N)
	u.Read(p)
	return
}
