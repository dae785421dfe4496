// Package input normalizes raw steering input into the continuous axis the
// simulation consumes. It models the physical encoder wheel of the arcade
// cabinet: discrete ticks nudge a float axis that decays back toward
// center every frame and snaps to zero near the middle, so keyboard
// key-repeat feels like the hardware wheel.
package input

import "github.com/justinjohnso-itp/lane-courier/internal/core"

// Wheel accumulates encoder ticks into a normalized axis in [-1, 1].
type Wheel struct {
	axis float64

	increment     float64 // Axis change per encoder tick
	decay         float64 // Auto-centering multiplier applied per frame
	zeroThreshold float64 // Snap-to-zero band around center
}

// NewWheel creates a wheel with the cabinet's tuning.
func NewWheel() *Wheel {
	return &Wheel{
		increment:     0.05,
		decay:         0.8,
		zeroThreshold: 0.01,
	}
}

// Turn applies encoder ticks, negative for left.
func (w *Wheel) Turn(ticks int) {
	w.axis = core.ClampF(w.axis+float64(ticks)*w.increment, -1, 1)
}

// Step applies one frame of auto-centering decay and returns the axis.
func (w *Wheel) Step() float64 {
	if w.axis != 0 {
		w.axis *= w.decay
		if core.AbsF(w.axis) < w.zeroThreshold {
			w.axis = 0
		}
	}
	return w.axis
}

// Axis returns the current normalized axis without advancing decay.
func (w *Wheel) Axis() float64 {
	return w.axis
}

// Reset recenters the wheel.
func (w *Wheel) Reset() {
	w.axis = 0
}
