package roulette

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
)

// RandomSource yields uniform integers for tick stepping and winner draws.
type RandomSource interface {
	Intn(n int) int
}

// cryptoSource draws from crypto/rand and falls back to math/rand when the
// system source is unavailable.
type cryptoSource struct{}

func (cryptoSource) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		return rand.Intn(n)
	}
	return int(binary.BigEndian.Uint64(buf[:]) % uint64(n))
}

// DefaultSource returns the crypto-backed source used in production.
func DefaultSource() RandomSource {
	return cryptoSource{}
}

// seededSource is a replicable source for tests. It is locked so it stays
// safe when shared across engines.
type seededSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededSource returns a deterministic source seeded with the given value.
func NewSeededSource(seed int64) RandomSource {
	return &seededSource{r: rand.New(rand.NewSource(seed))}
}

func (s *seededSource) Intn(n int) int {
	if n <= 1 {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}
