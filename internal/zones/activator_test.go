package zones

import (
	"math/rand"
	"testing"
)

type fakeSched struct {
	chance float64
	quota  int
}

func (f fakeSched) ActivationChance() float64 { return f.chance }
func (f fakeSched) ZoneQuota() int            { return f.quota }

type fakeColors []string

func (f fakeColors) DistinctColors() []string { return f }

func TestTryActivateArmsWithHeldColor(t *testing.T) {
	a := New(rand.New(rand.NewSource(1)), fakeSched{chance: 1, quota: 4}, fakeColors{"blue"}, 3)

	z := &Zone{}
	if !a.TryActivate(z) {
		t.Fatal("Expected activation with chance 1 and open quota")
	}
	if !z.Active {
		t.Error("Zone should be active")
	}
	if z.RequiredColor != "blue" {
		t.Errorf("Expected required color blue, got %q", z.RequiredColor)
	}
	if a.ZonesInGroup() != 1 {
		t.Errorf("Expected 1 zone in group, got %d", a.ZonesInGroup())
	}
}

func TestTryActivateRespectsQuota(t *testing.T) {
	a := New(rand.New(rand.NewSource(1)), fakeSched{chance: 1, quota: 2}, fakeColors{"red", "blue"}, 3)

	armed := 0
	for i := 0; i < 5; i++ {
		if a.TryActivate(&Zone{}) {
			armed++
		}
	}
	if armed != 2 {
		t.Errorf("Expected quota to cap activations at 2, got %d", armed)
	}
}

func TestTryActivateNeedsDeliverableColor(t *testing.T) {
	a := New(rand.New(rand.NewSource(1)), fakeSched{chance: 1, quota: 4}, fakeColors{}, 3)

	if a.TryActivate(&Zone{}) {
		t.Error("Activation with an empty inventory should refuse")
	}
}

func TestTryActivateZeroChanceNeverArms(t *testing.T) {
	a := New(rand.New(rand.NewSource(1)), fakeSched{chance: 0, quota: 4}, fakeColors{"red"}, 3)

	for i := 0; i < 50; i++ {
		if a.TryActivate(&Zone{}) {
			t.Fatal("Activation with chance 0 should never succeed")
		}
	}
}

func TestTryActivateSkipsArmedAndNilZones(t *testing.T) {
	a := New(rand.New(rand.NewSource(1)), fakeSched{chance: 1, quota: 4}, fakeColors{"red"}, 3)

	if a.TryActivate(nil) {
		t.Error("Activating a nil zone should refuse")
	}
	z := &Zone{Active: true, RequiredColor: "blue"}
	if a.TryActivate(z) {
		t.Error("Re-activating an armed zone should refuse")
	}
	if z.RequiredColor != "blue" {
		t.Error("Armed zone must not be recolored")
	}
}

func TestGroupWindowResetsQuota(t *testing.T) {
	a := New(rand.New(rand.NewSource(1)), fakeSched{chance: 1, quota: 1}, fakeColors{"red"}, 3)

	if !a.TryActivate(&Zone{}) {
		t.Fatal("First activation should succeed")
	}
	if a.TryActivate(&Zone{}) {
		t.Fatal("Quota of 1 should block the second activation")
	}

	// Two spawns stay inside the group; the third closes it.
	a.OnSegmentSpawned()
	a.OnSegmentSpawned()
	if a.TryActivate(&Zone{}) {
		t.Fatal("Quota should still be blocked mid-group")
	}
	a.OnSegmentSpawned()

	if !a.TryActivate(&Zone{}) {
		t.Error("A fresh group should reopen the quota")
	}
}

func TestResetClearsCounters(t *testing.T) {
	a := New(rand.New(rand.NewSource(1)), fakeSched{chance: 1, quota: 2}, fakeColors{"red"}, 3)
	a.TryActivate(&Zone{})
	a.OnSegmentSpawned()

	a.Reset()
	if a.ZonesInGroup() != 0 {
		t.Errorf("Expected zero zones in group after reset, got %d", a.ZonesInGroup())
	}
}
