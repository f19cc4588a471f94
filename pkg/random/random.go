// Package random provides the bounded uniform sampling used by the spawner and
// the player's edge bounce. Callers depend on the Sampler interface so tests can
// substitute a deterministic source and assert exact placements.
package random

import (
	"encoding/binary"
	"math"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// Sampler draws a value uniformly from the half-open range [lo, hi).
// ok is false when the range is empty (hi <= lo or either bound is NaN),
// in which case callers skip whatever they were about to spawn.
type Sampler interface {
	Uniform(lo, hi float32) (v float32, ok bool)
}

// Stream names used by the simulation. Each name gets its own generator so
// placements, velocities, shapes and spins are not correlated with each other.
const (
	StreamPlacement = "placement"
	StreamMotion    = "motion"
	StreamShape     = "shape"
	StreamSpin      = "spin"
)

// Source derives independent PCG streams from a single master seed.
type Source struct {
	seed uint64
}

// NewSource creates a source for the given master seed. A zero seed picks a
// random one so separate runs differ unless a seed is configured.
func NewSource(seed uint64) *Source {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Source{seed: seed}
}

// Seed returns the master seed in use.
func (s *Source) Seed() uint64 {
	return s.seed
}

// Stream returns a new generator for name. Calling Stream twice with the same
// name yields two generators producing the same sequence.
func (s *Source) Stream(name string) *Stream {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], s.seed)

	d := xxhash.New()
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(name)

	return &Stream{rng: rand.New(rand.NewPCG(d.Sum64(), xxhash.Sum64String(name)))}
}

// Stream is a Sampler backed by a PCG generator.
type Stream struct {
	rng *rand.Rand
}

// Uniform implements Sampler.
func (s *Stream) Uniform(lo, hi float32) (float32, bool) {
	if !(lo < hi) {
		return 0, false
	}
	v := lo + s.rng.Float32()*(hi-lo)
	// Rounding can land exactly on hi for wide ranges.
	if v >= hi {
		v = math.Nextafter32(hi, lo)
	}
	return v, true
}

// Fixed returns a Sampler that always yields the value at fraction f of the
// requested range, e.g. Fixed(0.5) gives the midpoint.
func Fixed(f float32) Sampler {
	return fixed(f)
}

type fixed float32

func (f fixed) Uniform(lo, hi float32) (float32, bool) {
	if !(lo < hi) {
		return 0, false
	}
	return lo + float32(f)*(hi-lo), true
}

// Sequence is a Sampler that replays queued values regardless of the range
// requested, then falls back to the range's lower bound once drained.
// Empty ranges still report ok=false without consuming a value.
type Sequence struct {
	values []float32
	next   int
}

// NewSequence creates a Sequence replaying values in order.
func NewSequence(values ...float32) *Sequence {
	return &Sequence{values: values}
}

// Uniform implements Sampler.
func (s *Sequence) Uniform(lo, hi float32) (float32, bool) {
	if !(lo < hi) {
		return 0, false
	}
	if s.next >= len(s.values) {
		return lo, true
	}
	v := s.values[s.next]
	s.next++
	return v, true
}

// Remaining reports how many queued values have not been consumed.
func (s *Sequence) Remaining() int {
	return len(s.values) - s.next
}
