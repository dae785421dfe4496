// Package score implements the thin scoring ledger. It reads delivery
// outcomes and never influences generation, so it sits at the edge of the
// simulation graph.
package score

import (
	"math"

	"github.com/justinjohnso-itp/lane-courier/internal/config"
	"github.com/justinjohnso-itp/lane-courier/internal/content"
)

// Outcome is the result of one delivery attempt.
type Outcome struct {
	Correct  bool
	Points   int
	Item     string
	Color    string
	Required string
	Quantity int
}

// Ledger accumulates the run score. Consecutive correct deliveries build a
// streak that multiplies the base points; a wrong-color delivery resets it.
type Ledger struct {
	cfg config.ScoringConfig

	total      int
	streak     int
	deliveries int
	misses     int
	travel     float64
	history    []Outcome
}

// New creates an empty ledger.
func New(cfg config.ScoringConfig) *Ledger {
	return &Ledger{cfg: cfg}
}

// Reset clears the ledger for a new run.
func (l *Ledger) Reset() {
	l.total = 0
	l.streak = 0
	l.deliveries = 0
	l.misses = 0
	l.travel = 0
	l.history = nil
}

// Deliver scores one delivery: the zone's required color against the whole
// removed stack. Base points are PointsPerItem x quantity; the streak held
// before this delivery adds StreakBonus per step.
func (l *Ledger) Deliver(required string, item *content.ItemType, qty int) Outcome {
	out := Outcome{
		Item:     item.Name,
		Color:    item.Color,
		Required: required,
		Quantity: qty,
	}

	if item.Color == required {
		base := float64(l.cfg.PointsPerItem * qty)
		out.Points = int(math.Round(base * (1 + float64(l.streak)*l.cfg.StreakBonus)))
		out.Correct = true
		l.total += out.Points
		l.streak++
		l.deliveries++
	} else {
		l.streak = 0
		l.misses++
	}

	l.history = append(l.history, out)
	return out
}

// AddTravel credits distance covered. With DistancePerTick zero (the
// default) travel contributes nothing and score comes from deliveries only.
func (l *Ledger) AddTravel(d float64) {
	if l.cfg.DistancePerTick <= 0 || d <= 0 {
		return
	}
	l.travel += d * l.cfg.DistancePerTick
	for l.travel >= 1 {
		l.travel--
		l.total++
	}
}

// Total returns the current run score.
func (l *Ledger) Total() int {
	return l.total
}

// Streak returns the current consecutive-delivery streak.
func (l *Ledger) Streak() int {
	return l.streak
}

// Deliveries returns the count of correct deliveries.
func (l *Ledger) Deliveries() int {
	return l.deliveries
}

// Misses returns the count of wrong-color deliveries.
func (l *Ledger) Misses() int {
	return l.misses
}

// History returns every delivery outcome of the run in order.
func (l *Ledger) History() []Outcome {
	return l.history
}
