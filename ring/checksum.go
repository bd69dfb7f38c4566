package ring

import (
	"encoding/binary"

	"github.com/zeebo/blake3"
)

// Checksum returns the blake3 digest of the big-endian encoding of p.
// Two sequences have the same checksum if and only if (up to collisions)
// they are equal, which allows to compare transforms without keeping them.
func Checksum(p []uint64) (digest [32]byte) {
	hasher := blake3.New()

	buf := make([]byte, 8*len(p))
	for i, c := range p {
		binary.BigEndian.PutUint64(buf[8*i:], c)
	}

	// Writes to a hash never fail.
	_, _ = hasher.Write(buf)

	copy(digest[:], hasher.Sum(nil))
	return
}
