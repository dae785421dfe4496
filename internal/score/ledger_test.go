package score

import (
	"testing"

	"github.com/justinjohnso-itp/lane-courier/internal/config"
	"github.com/justinjohnso-itp/lane-courier/internal/content"
)

func testConfig() config.ScoringConfig {
	return config.ScoringConfig{
		PointsPerItem: 100,
		StreakBonus:   0.25,
	}
}

var (
	redParcel  = &content.ItemType{Name: "parcel_red", Color: "red"}
	blueParcel = &content.ItemType{Name: "parcel_blue", Color: "blue"}
)

func TestDeliverSingleCorrect(t *testing.T) {
	l := New(testConfig())

	out := l.Deliver("red", redParcel, 3)
	if !out.Correct {
		t.Fatal("Matching color should score as correct")
	}
	// No streak held before the first delivery: base points only.
	if out.Points != 300 {
		t.Errorf("Expected 300 points for 3 items, got %d", out.Points)
	}
	if l.Total() != 300 || l.Streak() != 1 || l.Deliveries() != 1 {
		t.Errorf("Ledger state off: total=%d streak=%d deliveries=%d",
			l.Total(), l.Streak(), l.Deliveries())
	}
}

func TestStreakMultipliesLaterDeliveries(t *testing.T) {
	l := New(testConfig())

	l.Deliver("red", redParcel, 1) // 100, streak -> 1
	out := l.Deliver("red", redParcel, 2)
	// Streak of 1 held before this delivery: 200 * 1.25 = 250.
	if out.Points != 250 {
		t.Errorf("Expected 250 points, got %d", out.Points)
	}
	out = l.Deliver("red", redParcel, 1)
	// Streak of 2: 100 * 1.5 = 150.
	if out.Points != 150 {
		t.Errorf("Expected 150 points, got %d", out.Points)
	}
	if l.Total() != 500 {
		t.Errorf("Expected total 500, got %d", l.Total())
	}
}

func TestWrongColorResetsStreak(t *testing.T) {
	l := New(testConfig())

	l.Deliver("red", redParcel, 1)
	l.Deliver("red", redParcel, 1)
	out := l.Deliver("red", blueParcel, 1)
	if out.Correct {
		t.Fatal("Mismatched color should not score")
	}
	if out.Points != 0 {
		t.Errorf("Miss should award 0 points, got %d", out.Points)
	}
	if l.Streak() != 0 {
		t.Errorf("Expected streak reset, got %d", l.Streak())
	}
	if l.Misses() != 1 {
		t.Errorf("Expected 1 miss, got %d", l.Misses())
	}

	// Next correct delivery starts over at base points.
	out = l.Deliver("blue", blueParcel, 1)
	if out.Points != 100 {
		t.Errorf("Expected base 100 after reset, got %d", out.Points)
	}
}

func TestHistoryRecordsEveryAttempt(t *testing.T) {
	l := New(testConfig())
	l.Deliver("red", redParcel, 1)
	l.Deliver("red", blueParcel, 2)

	h := l.History()
	if len(h) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(h))
	}
	if !h[0].Correct || h[1].Correct {
		t.Error("History correctness flags off")
	}
	if h[1].Required != "red" || h[1].Color != "blue" || h[1].Quantity != 2 {
		t.Errorf("Second entry off: %+v", h[1])
	}
}

func TestTravelTrickleDisabledByDefault(t *testing.T) {
	l := New(testConfig())
	l.AddTravel(500)
	if l.Total() != 0 {
		t.Errorf("Travel should not score with DistancePerTick 0, got %d", l.Total())
	}
}

func TestTravelTrickleAccumulatesWholePoints(t *testing.T) {
	cfg := testConfig()
	cfg.DistancePerTick = 0.1
	l := New(cfg)

	for i := 0; i < 25; i++ {
		l.AddTravel(1)
	}
	// 25 * 0.1 = 2.5: two whole points banked, the fraction carried.
	if l.Total() != 2 {
		t.Errorf("Expected 2 trickle points, got %d", l.Total())
	}
}

func TestResetClearsEverything(t *testing.T) {
	l := New(testConfig())
	l.Deliver("red", redParcel, 1)
	l.Deliver("red", blueParcel, 1)

	l.Reset()
	if l.Total() != 0 || l.Streak() != 0 || l.Deliveries() != 0 || l.Misses() != 0 {
		t.Error("Reset should zero all counters")
	}
	if len(l.History()) != 0 {
		t.Error("Reset should clear history")
	}
}
