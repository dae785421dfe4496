package core

import "testing"

func TestActionStringParseRoundTrip(t *testing.T) {
	actions := []Action{
		ActionCycle, ActionCycleBack, ActionDeliver,
		ActionPause, ActionRestart, ActionQuit,
	}
	for _, a := range actions {
		parsed, ok := ParseAction(a.String())
		if !ok {
			t.Errorf("ParseAction(%q) failed", a.String())
		}
		if parsed != a {
			t.Errorf("Round trip changed %v into %v", a, parsed)
		}
	}
}

func TestParseActionUnknown(t *testing.T) {
	if _, ok := ParseAction("Warp"); ok {
		t.Error("Unknown name should not parse")
	}
	if _, ok := ParseAction("None"); ok {
		t.Error("None is not a wire action")
	}
}

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	f.Steering = 0.4
	f.Set(ActionDeliver)

	if !f.Has(ActionDeliver) {
		t.Error("Set action should be present")
	}
	if f.Has(ActionCycle) {
		t.Error("Unset action should be absent")
	}

	f.Clear()
	if f.Steering != 0 || f.Has(ActionDeliver) {
		t.Error("Clear should reset steering and actions")
	}
}

func TestInputFrameZeroValueHasIsSafe(t *testing.T) {
	var f InputFrame
	if f.Has(ActionCycle) {
		t.Error("Zero-value frame has no actions")
	}
	f.Set(ActionCycle)
	if !f.Has(ActionCycle) {
		t.Error("Set on a zero-value frame should initialize the map")
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Steering = -0.7
	f.Set(ActionCycle)

	c := f.Clone()
	c.Set(ActionDeliver)
	c.Steering = 1

	if f.Has(ActionDeliver) {
		t.Error("Mutating the clone leaked into the original")
	}
	if f.Steering != -0.7 {
		t.Error("Clone mutation changed original steering")
	}
	if !c.Has(ActionCycle) {
		t.Error("Clone should carry the original's actions")
	}
}
