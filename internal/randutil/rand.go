// Package randutil builds the per-game random generators used to shuffle
// prizes and pick cases.
package randutil

import (
	rand "math/rand/v2"

	"github.com/coder/quartz"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New returns a PCG-backed generator derived from seed. Equal seeds produce
// equal sequences, which is what tests and --seed rely on.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// FromClock seeds a generator from the clock's current time. A zero seed
// falls back to this in every command.
func FromClock(clock quartz.Clock) *rand.Rand {
	return New(clock.Now().UnixNano())
}

// Seeded returns New(seed) for a non-zero seed and FromClock otherwise.
func Seeded(seed int64, clock quartz.Clock) *rand.Rand {
	if seed != 0 {
		return New(seed)
	}
	return FromClock(clock)
}

// splitmix64 finaliser
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
