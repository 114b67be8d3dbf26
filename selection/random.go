// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package selection

import (
	"sync"
	"time"

	"golang.org/x/exp/rand"
)

type RandomSource interface {
	// Intn returns a number in [0,n)
	Intn(n int) int
}

var defaultRandomSource = NewRandomSource()

// DefaultRandomSource returns the process wide random source.
func DefaultRandomSource() RandomSource {
	return defaultRandomSource
}

// NewRandomSource returns a random source seeded from the current time
// that is safe for concurrent use.
func NewRandomSource() RandomSource {
	return NewSeededRandomSource(uint64(time.Now().UnixNano()))
}

func NewSeededRandomSource(seed uint64) RandomSource {
	return &lockedRandomSource{rnd: rand.New(rand.NewSource(seed))}
}

type lockedRandomSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (s *lockedRandomSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.rnd.Intn(n)
}
