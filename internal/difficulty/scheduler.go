// Package difficulty implements the time-driven difficulty scheduler.
// Every tunable rate in the simulation is a pure function of one scalar,
// elapsed session time, so all consumers stay consistent by construction.
package difficulty

import (
	"math"

	"github.com/justinjohnso-itp/lane-courier/internal/config"
)

// Scheduler accumulates elapsed time and exposes each scaled quantity as
// base + growth*ln(1+t), clamped to its configured floor and ceiling.
// The logarithmic ramp grows quickly early and flattens over a long
// session, so rates never run away into unplayable territory.
type Scheduler struct {
	cfg     config.DifficultyConfig
	elapsed float64
}

// New creates a scheduler. StartOffset pre-advances the ramp, which is how
// the harder presets begin mid-curve.
func New(cfg config.DifficultyConfig) *Scheduler {
	return &Scheduler{cfg: cfg, elapsed: cfg.StartOffset}
}

// Advance accumulates elapsed time. Negative deltas are ignored.
func (s *Scheduler) Advance(dt float64) {
	if dt > 0 {
		s.elapsed += dt
	}
}

// Reset rewinds the scheduler to session start.
func (s *Scheduler) Reset() {
	s.elapsed = s.cfg.StartOffset
}

// Elapsed returns the accumulated session time in seconds.
func (s *Scheduler) Elapsed() float64 {
	return s.elapsed
}

// eval computes a curve at the current elapsed time. With progression
// disabled the curve freezes at its base value, still clamped.
func (s *Scheduler) eval(c config.Curve) float64 {
	v := c.Base
	if s.cfg.Enabled {
		v += c.Growth * math.Log1p(s.elapsed)
	}
	if v < c.Floor {
		v = c.Floor
	}
	if c.Ceiling > 0 && v > c.Ceiling {
		v = c.Ceiling
	}
	return v
}

// TravelSpeed returns the viewer speed along the travel axis, units/second.
func (s *Scheduler) TravelSpeed() float64 {
	return s.eval(s.cfg.TravelSpeed)
}

// ArrivalDelay returns the delay between random item arrivals in seconds.
// The curve shrinks over time and is floored at a minimum playable delay.
func (s *Scheduler) ArrivalDelay() float64 {
	return s.eval(s.cfg.ArrivalDelay)
}

// ObstacleCount returns how many obstacles a new segment receives.
func (s *Scheduler) ObstacleCount() int {
	n := int(s.eval(s.cfg.ObstacleCount))
	if n < 0 {
		n = 0
	}
	return n
}

// StructureCount returns how many structures each band of a new segment
// receives before noise modulation.
func (s *Scheduler) StructureCount() int {
	n := int(s.eval(s.cfg.StructureCount))
	if n < 0 {
		n = 0
	}
	return n
}

// ActivationChance returns the per-structure zone activation probability,
// always within [0, 1].
func (s *Scheduler) ActivationChance() float64 {
	v := s.eval(s.cfg.ActivationChance)
	return math.Max(0, math.Min(1, v))
}

// ZoneQuota returns the max active zones per zone group, never below 1.
func (s *Scheduler) ZoneQuota() int {
	n := int(s.eval(s.cfg.ZoneQuota))
	if n < 1 {
		n = 1
	}
	return n
}
