package difficulty

import (
	"math"
	"testing"

	"github.com/justinjohnso-itp/lane-courier/internal/config"
)

func rampConfig() config.DifficultyConfig {
	return config.DifficultyConfig{
		Enabled:          true,
		TravelSpeed:      config.Curve{Base: 10, Growth: 2.5, Ceiling: 28},
		ArrivalDelay:     config.Curve{Base: 5, Growth: -0.6, Floor: 1.5},
		ObstacleCount:    config.Curve{Base: 2, Growth: 1.2, Ceiling: 8},
		StructureCount:   config.Curve{Base: 2, Growth: 0.8, Floor: 1, Ceiling: 5},
		ActivationChance: config.Curve{Base: 0.35, Growth: 0.08, Ceiling: 1},
		ZoneQuota:        config.Curve{Base: 1, Growth: 0.7, Floor: 1, Ceiling: 4},
	}
}

func TestTravelSpeedGrowsMonotonically(t *testing.T) {
	s := New(rampConfig())

	prev := s.TravelSpeed()
	if prev != 10 {
		t.Fatalf("Expected base speed 10 at t=0, got %v", prev)
	}
	for i := 0; i < 20; i++ {
		s.Advance(5)
		v := s.TravelSpeed()
		if v < prev {
			t.Fatalf("Speed decreased from %v to %v at elapsed %v", prev, v, s.Elapsed())
		}
		prev = v
	}
}

func TestTravelSpeedCeiling(t *testing.T) {
	s := New(rampConfig())
	s.Advance(1e6)
	if v := s.TravelSpeed(); v != 28 {
		t.Errorf("Expected ceiling 28, got %v", v)
	}
}

func TestArrivalDelayFloor(t *testing.T) {
	s := New(rampConfig())

	if d := s.ArrivalDelay(); d != 5 {
		t.Fatalf("Expected base delay 5, got %v", d)
	}
	s.Advance(1e6)
	if d := s.ArrivalDelay(); d != 1.5 {
		t.Errorf("Expected floor 1.5, got %v", d)
	}
}

func TestDisabledFreezesAtBase(t *testing.T) {
	cfg := rampConfig()
	cfg.Enabled = false
	s := New(cfg)

	s.Advance(600)
	if v := s.TravelSpeed(); v != 10 {
		t.Errorf("Expected frozen base speed 10, got %v", v)
	}
	if d := s.ArrivalDelay(); d != 5 {
		t.Errorf("Expected frozen base delay 5, got %v", d)
	}
}

func TestStartOffsetPreAdvancesRamp(t *testing.T) {
	cfg := rampConfig()
	cfg.StartOffset = 240
	s := New(cfg)

	want := 10 + 2.5*math.Log1p(240)
	if want > 28 {
		want = 28
	}
	if v := s.TravelSpeed(); math.Abs(v-want) > 1e-9 {
		t.Errorf("Expected mid-ramp speed %v, got %v", want, v)
	}

	s.Reset()
	if s.Elapsed() != 240 {
		t.Errorf("Reset should rewind to the start offset, got %v", s.Elapsed())
	}
}

func TestNegativeAdvanceIgnored(t *testing.T) {
	s := New(rampConfig())
	s.Advance(10)
	s.Advance(-5)
	if s.Elapsed() != 10 {
		t.Errorf("Expected elapsed 10, got %v", s.Elapsed())
	}
}

func TestActivationChanceClamped(t *testing.T) {
	s := New(rampConfig())
	s.Advance(1e9)
	if c := s.ActivationChance(); c != 1 {
		t.Errorf("Expected chance clamped to 1, got %v", c)
	}
}

func TestZoneQuotaNeverBelowOne(t *testing.T) {
	cfg := rampConfig()
	cfg.ZoneQuota = config.Curve{Base: 0, Growth: 0}
	s := New(cfg)
	if q := s.ZoneQuota(); q != 1 {
		t.Errorf("Expected quota 1, got %d", q)
	}
}

func TestCountsNeverNegative(t *testing.T) {
	cfg := rampConfig()
	cfg.ObstacleCount = config.Curve{Base: 1, Growth: -5}
	s := New(cfg)
	s.Advance(600)
	if n := s.ObstacleCount(); n != 0 {
		t.Errorf("Expected obstacle count clamped to 0, got %d", n)
	}
}
