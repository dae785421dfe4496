// Package content provides the authored content catalog: item types,
// corridor segment prefabs, structure prefabs and obstacle prefabs.
// Content is data loaded from YAML, never code; the simulation looks
// prefabs up by name and item types by reference.
package content

import (
	"github.com/justinjohnso-itp/lane-courier/internal/core"
)

// ItemType describes one deliverable item kind. Instances are immutable
// after load and compared by pointer identity, so two slots hold "the same
// type" exactly when they share the *ItemType.
type ItemType struct {
	Name      string `yaml:"name"`
	Icon      string `yaml:"icon"`
	Color     string `yaml:"color"`
	Stackable bool   `yaml:"stackable"`
	MaxStack  int    `yaml:"max_stack"`
}

// Point is the YAML form of a 2D coordinate.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Vec converts the YAML point to a core vector.
func (p Point) Vec() core.Vec2 {
	return core.Vec2{X: p.X, Y: p.Y}
}

// SegmentPrefab is a spawnable corridor piece. Entry and Exit anchors are
// in the prefab's local space and are mandatory for any usable segment;
// placement regions are optional and their absence simply disables that
// category of spawning for the segment.
type SegmentPrefab struct {
	Name  string `yaml:"name"`
	Entry *Point `yaml:"entry"`
	Exit  *Point `yaml:"exit"`

	ObstacleRegion []Point `yaml:"obstacle_region"`
	NearBand       []Point `yaml:"near_band"`
	FarBand        []Point `yaml:"far_band"`
}

// HasAnchors reports whether both alignment anchors are present.
func (p *SegmentPrefab) HasAnchors() bool {
	return p.Entry != nil && p.Exit != nil
}

// Polygon builds a core polygon from a YAML vertex list.
// Returns false when the region is absent or degenerate.
func Polygon(pts []Point) (core.Polygon, bool) {
	if len(pts) < 3 {
		return core.Polygon{}, false
	}
	verts := make([]core.Vec2, len(pts))
	for i, pt := range pts {
		verts[i] = pt.Vec()
	}
	return core.Polygon{Vertices: verts}, true
}

// RectSpec is the YAML form of a local-space rectangle. X and Y are the min
// corner relative to the prefab pivot, which keeps spacing tests correct
// for prefabs whose pivot is not at the footprint corner.
type RectSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Rect converts the spec to a core rectangle.
func (r RectSpec) Rect() core.Rect {
	return core.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

// StructurePrefab is a spawnable building. Zone is the local-space
// delivery-zone child; a structure without one can never become a delivery
// target, which the zone activator treats as a content error.
type StructurePrefab struct {
	Name      string    `yaml:"name"`
	Footprint RectSpec  `yaml:"footprint"`
	Zone      *RectSpec `yaml:"zone"`
}

// ObstaclePrefab is a spawnable road obstacle.
type ObstaclePrefab struct {
	Name      string   `yaml:"name"`
	Footprint RectSpec `yaml:"footprint"`
}
