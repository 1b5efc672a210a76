// Package die implements a simulated die unit for the roll coordinator.
//
// A Die settles after an animation delay measured on an injectable clock.
// Rolls are deterministic with respect to the configured seed: the same seed
// and the same sequence of RollDie calls produce the same faces.
package die

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/louisbranch/dicetray/internal/dice/clock"
)

const (
	// DefaultSides is the face count used when Config.Sides is zero.
	DefaultSides = 6
	// DefaultAnimation is the settle delay used when Config.Animation is zero.
	DefaultAnimation = 600 * time.Millisecond
)

var (
	// ErrInvalidSides indicates a die with fewer than two faces.
	ErrInvalidSides = errors.New("die must have at least two sides")
	// ErrInvalidDefault indicates a resting face outside the die's range.
	ErrInvalidDefault = errors.New("default face must be between 1 and sides")
)

// Config describes one simulated die.
type Config struct {
	Sides int
	// Default is the face shown before the first roll. Zero means Sides.
	Default int
	// Animation is the base settle delay.
	Animation time.Duration
	// Jitter adds a random extra delay in [0, Jitter) to each roll.
	Jitter time.Duration
	Seed   int64
	Clock  clock.Clock
	// OnSettled is invoked once per RollDie after the value is readable.
	OnSettled func()
}

// Die is a single animated die.
type Die struct {
	sides     int
	animation time.Duration
	jitter    time.Duration
	clock     clock.Clock
	onSettled func()

	mu      sync.Mutex
	rng     *rand.Rand
	value   int
	seq     uint64
	pending map[uint64]clock.Timer
}

// New validates cfg and returns a die resting on its default face.
func New(cfg Config) (*Die, error) {
	sides := cfg.Sides
	if sides == 0 {
		sides = DefaultSides
	}
	if sides < 2 {
		return nil, ErrInvalidSides
	}
	def := cfg.Default
	if def == 0 {
		def = sides
	}
	if def < 1 || def > sides {
		return nil, ErrInvalidDefault
	}
	animation := cfg.Animation
	if animation <= 0 {
		animation = DefaultAnimation
	}
	jitter := cfg.Jitter
	if jitter < 0 {
		jitter = 0
	}

	return &Die{
		sides:     sides,
		animation: animation,
		jitter:    jitter,
		clock:     clock.OrReal(cfg.Clock),
		onSettled: cfg.OnSettled,
		rng:       rand.New(rand.NewSource(cfg.Seed)),
		value:     def,
		pending:   make(map[uint64]clock.Timer),
	}, nil
}

// Sides returns the face count.
func (d *Die) Sides() int {
	return d.sides
}

// RollDie starts a roll. A forced value outside [1, Sides] is ignored and the
// die randomizes instead.
func (d *Die) RollDie(forced *int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	face := 0
	if forced != nil && *forced >= 1 && *forced <= d.sides {
		face = *forced
	} else {
		face = rollFace(d.rng, d.sides)
	}
	delay := d.animation
	if d.jitter > 0 {
		delay += time.Duration(d.rng.Int63n(int64(d.jitter)))
	}

	d.seq++
	seq := d.seq
	d.pending[seq] = d.clock.AfterFunc(delay, func() {
		d.settle(seq, face)
	})
}

func (d *Die) settle(seq uint64, face int) {
	d.mu.Lock()
	if _, ok := d.pending[seq]; !ok {
		d.mu.Unlock()
		return
	}
	delete(d.pending, seq)
	// A superseded roll still signals but never overwrites a newer outcome.
	if seq == d.seq {
		d.value = face
	}
	d.mu.Unlock()

	if d.onSettled != nil {
		d.onSettled()
	}
}

// Value returns the last settled face.
func (d *Die) Value() (int, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.value, d.value > 0
}

// Rolling reports whether any roll is still animating.
func (d *Die) Rolling() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending) > 0
}

// Stop cancels every pending animation without signalling completion.
func (d *Die) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for seq, timer := range d.pending {
		timer.Stop()
		delete(d.pending, seq)
	}
}

// rollFace rolls a die with the provided number of sides.
func rollFace(rng *rand.Rand, sides int) int {
	return rng.Intn(sides) + 1
}
