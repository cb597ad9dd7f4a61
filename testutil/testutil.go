package testutil

import (
	"math/rand"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// BitString returns n uniformly random '0'/'1' characters.
func (r *RNG) BitString(n int) string {
	return r.SparseBitString(n, 0.5)
}

// SparseBitString returns n characters where each is '1' with probability density.
// Locks only once per call.
func (r *RNG) SparseBitString(n int, density float64) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		if r.rand.Float64() < density {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Positions returns count distinct positions in [0,n), unsorted.
func (r *RNG) Positions(n, count int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	perm := r.rand.Perm(n)
	if count > n {
		count = n
	}
	return perm[:count]
}
