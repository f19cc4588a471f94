package engine

import (
	"time"

	"github.com/opd-ai/go-asteroids/pkg/clock"
)

// Score counts points awarded for elapsed simulation time: one point per
// completed 1/pointsPerSecond interval, independent of how ticks split it.
type Score struct {
	Points uint64
	timer  *clock.Timer
}

// NewScore creates a zeroed score. A non-positive rate never awards points.
func NewScore(pointsPerSecond float32) *Score {
	return &Score{timer: clock.NewTimer(clock.Rate(pointsPerSecond))}
}

// Tick advances the score timer by dt and returns the points gained
func (s *Score) Tick(dt time.Duration) uint64 {
	gained := s.timer.Tick(dt)
	s.Points += gained
	return gained
}

// Interval returns the simulation time needed for one point
func (s *Score) Interval() time.Duration {
	return s.timer.Period()
}
