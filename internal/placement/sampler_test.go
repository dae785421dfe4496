package placement

import (
	"math/rand"
	"testing"

	"github.com/justinjohnso-itp/lane-courier/internal/config"
	"github.com/justinjohnso-itp/lane-courier/internal/core"
)

func testSampler(seed int64, cfg config.PlacementConfig) *Sampler {
	return New(rand.New(rand.NewSource(seed)), cfg)
}

// barrenRegion reports a non-empty bounding box but contains nothing, so
// every draw exhausts its attempt budget.
type barrenRegion struct{}

func (barrenRegion) Contains(core.Vec2) bool { return false }
func (barrenRegion) Bounds() core.Rect       { return core.NewRect(0, 0, 10, 10) }

func TestPlaceStaysInsideNonConvexRegion(t *testing.T) {
	// L-shaped region: the bounding box's upper-right quadrant is outside.
	region := core.NewPolygon(
		core.Vec2{X: 0, Y: 0},
		core.Vec2{X: 20, Y: 0},
		core.Vec2{X: 20, Y: 10},
		core.Vec2{X: 10, Y: 10},
		core.Vec2{X: 10, Y: 20},
		core.Vec2{X: 0, Y: 20},
	)
	s := testSampler(1, config.PlacementConfig{Attempts: 32})

	points := s.Place(region, 50)
	if len(points) == 0 {
		t.Fatal("Expected placements in a large region")
	}
	for _, p := range points {
		if !region.Contains(p) {
			t.Errorf("Point %+v placed outside the region", p)
		}
	}
}

func TestPlaceShortfallIsSilent(t *testing.T) {
	s := testSampler(1, config.PlacementConfig{Attempts: 8})

	points := s.Place(barrenRegion{}, 5)
	if len(points) != 0 {
		t.Errorf("Expected no placements in a barren region, got %d", len(points))
	}
}

func TestPlaceEmptyBoundsYieldsNothing(t *testing.T) {
	region := core.NewPolygon() // zero bounds
	s := testSampler(1, config.PlacementConfig{Attempts: 8})

	if points := s.Place(region, 3); len(points) != 0 {
		t.Errorf("Expected no placements, got %d", len(points))
	}
}

func TestPlaceStructuresEnforcesSpacing(t *testing.T) {
	// Region barely larger than one padded footprint: only one structure
	// can ever fit, the rest of the batch is silently dropped.
	region := core.NewPolygon(
		core.Vec2{X: 0, Y: 0},
		core.Vec2{X: 4, Y: 0},
		core.Vec2{X: 4, Y: 4},
		core.Vec2{X: 0, Y: 4},
	)
	footprint := core.NewRect(-3, -3, 6, 6)
	s := testSampler(2, config.PlacementConfig{
		Attempts:            32,
		StructureCandidates: 4,
		StructurePadding:    1,
	})

	points := s.PlaceStructures(region, 3, footprint, nil)
	if len(points) != 1 {
		t.Fatalf("Expected exactly 1 placement, got %d", len(points))
	}
}

func TestPlaceStructuresSpacingUsesPadding(t *testing.T) {
	region := core.NewPolygon(
		core.Vec2{X: 0, Y: 0},
		core.Vec2{X: 100, Y: 0},
		core.Vec2{X: 100, Y: 100},
		core.Vec2{X: 0, Y: 100},
	)
	footprint := core.NewRect(-2, -2, 4, 4)
	padding := 3.0
	s := testSampler(3, config.PlacementConfig{
		Attempts:            32,
		StructureCandidates: 8,
		StructurePadding:    padding,
	})

	points := s.PlaceStructures(region, 12, footprint, nil)
	if len(points) < 2 {
		t.Fatalf("Expected multiple placements, got %d", len(points))
	}
	for i, p := range points {
		for j := i + 1; j < len(points); j++ {
			a := footprint.Translate(p).Expand(padding)
			b := footprint.Translate(points[j])
			if a.Intersects(b) {
				t.Errorf("Placements %d and %d violate padding: %+v vs %+v", i, j, p, points[j])
			}
		}
	}
}

func TestPlaceStructuresPrefersNearEdge(t *testing.T) {
	region := core.NewPolygon(
		core.Vec2{X: 0, Y: 0},
		core.Vec2{X: 100, Y: 0},
		core.Vec2{X: 100, Y: 10},
		core.Vec2{X: 0, Y: 10},
	)
	footprint := core.NewRect(-1, -1, 2, 2)
	s := testSampler(4, config.PlacementConfig{
		Attempts:            32,
		StructureCandidates: 16,
	})

	points := s.PlaceStructures(region, 1, footprint, func(p core.Vec2) float64 {
		return p.X
	})
	if len(points) != 1 {
		t.Fatalf("Expected 1 placement, got %d", len(points))
	}
	// The best of 16 uniform candidates over [0, 100] lands far left.
	if points[0].X > 30 {
		t.Errorf("Expected an edge-hugging placement, got X=%v", points[0].X)
	}
}
