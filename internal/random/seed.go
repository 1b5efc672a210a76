// Package random provides seed generation helpers for simulated dice.
//
// NewSeed draws from crypto/rand so each die gets an independent,
// high-entropy math/rand source. Sequence yields reproducible seeds for
// tests and replays.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"
)

// SeedFunc produces one seed per call.
type SeedFunc func() (int64, error)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Sequence returns a SeedFunc yielding start, start+1, start+2, ...
func Sequence(start int64) SeedFunc {
	var mu sync.Mutex
	next := start
	return func() (int64, error) {
		mu.Lock()
		defer mu.Unlock()
		seed := next
		next++
		return seed, nil
	}
}
