package logo

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// RandomSource supplies uniform integers in [0, n). *rand.Rand from
// math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// NewRandomSource returns a deterministic source for the given seed.
func NewRandomSource(seed int64) RandomSource {
	s := uint64(seed)
	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
