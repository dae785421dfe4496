// Package zones decides which spawned structures become delivery targets.
// Activation is rolled per eligible structure against the scheduler-driven
// chance, capped per zone group so zones cannot cluster along a stretch of
// corridor no matter how high the chance climbs.
package zones

import (
	"math/rand"

	"github.com/justinjohnso-itp/lane-courier/internal/core"
)

// Zone is the delivery-zone child of a spawned structure. It starts
// inactive with no required color; activation is a one-time mutation.
type Zone struct {
	Area          core.Rect // World-space trigger area
	RequiredColor string
	Active        bool
}

// Scheduler supplies the difficulty-scaled activation parameters.
type Scheduler interface {
	ActivationChance() float64
	ZoneQuota() int
}

// ColorSource reports the distinct colors currently held in the inventory.
// The activator only ever reads it.
type ColorSource interface {
	DistinctColors() []string
}

// Activator arms delivery zones on newly spawned structures.
type Activator struct {
	rng    *rand.Rand
	sched  Scheduler
	colors ColorSource

	groupSize       int
	segmentsInGroup int
	zonesInGroup    int
}

// New creates an activator. groupSize is how many segments form one zone
// group before both group counters reset.
func New(rng *rand.Rand, sched Scheduler, colors ColorSource, groupSize int) *Activator {
	if groupSize < 1 {
		groupSize = 1
	}
	return &Activator{rng: rng, sched: sched, colors: colors, groupSize: groupSize}
}

// TryActivate arms the zone with a color drawn from the inventory's
// distinct colors. It refuses when the structure has no inactive zone
// child, when the group quota is met, when no deliverable color exists, or
// when the chance roll fails. The inventory is never mutated.
func (a *Activator) TryActivate(z *Zone) bool {
	if z == nil || z.Active {
		return false
	}
	if a.zonesInGroup >= a.sched.ZoneQuota() {
		return false
	}
	colors := a.colors.DistinctColors()
	if len(colors) == 0 {
		return false
	}
	if a.rng.Float64() >= a.sched.ActivationChance() {
		return false
	}

	z.RequiredColor = colors[a.rng.Intn(len(colors))]
	z.Active = true
	a.zonesInGroup++
	return true
}

// OnSegmentSpawned advances the zone-group window. When the group size is
// reached both the segment counter and the zone counter reset, opening a
// fresh quota for the next stretch of corridor.
func (a *Activator) OnSegmentSpawned() {
	a.segmentsInGroup++
	if a.segmentsInGroup >= a.groupSize {
		a.segmentsInGroup = 0
		a.zonesInGroup = 0
	}
}

// Reset clears the group counters at session start.
func (a *Activator) Reset() {
	a.segmentsInGroup = 0
	a.zonesInGroup = 0
}

// ZonesInGroup returns how many zones the current group has armed.
func (a *Activator) ZonesInGroup() int {
	return a.zonesInGroup
}
