package world

import (
	"github.com/google/uuid"

	"github.com/justinjohnso-itp/lane-courier/internal/content"
	"github.com/justinjohnso-itp/lane-courier/internal/core"
	"github.com/justinjohnso-itp/lane-courier/internal/zones"
)

// Obstacle is a spawned road obstacle.
type Obstacle struct {
	Prefab   *content.ObstaclePrefab
	Position core.Vec2
}

// Footprint returns the obstacle's world-space collision rectangle.
func (o Obstacle) Footprint() core.Rect {
	return o.Prefab.Footprint.Rect().Translate(o.Position)
}

// Structure is a spawned building. Zone is nil when the prefab carries no
// delivery-zone child; such structures can never become delivery targets.
type Structure struct {
	Prefab   *content.StructurePrefab
	Position core.Vec2
	Zone     *zones.Zone
}

// Footprint returns the structure's world-space footprint.
func (st Structure) Footprint() core.Rect {
	return st.Prefab.Footprint.Rect().Translate(st.Position)
}

// Segment is one active corridor piece. Entities spawned into it share its
// lifecycle: created with the segment, destroyed when it is destroyed.
type Segment struct {
	ID     uuid.UUID
	Prefab *content.SegmentPrefab
	Origin core.Vec2 // World position of the prefab's local origin

	Obstacles  []Obstacle
	Structures []Structure
}

// EntryWorld returns the entry anchor in world space.
func (s *Segment) EntryWorld() core.Vec2 {
	return s.Origin.Add(s.Prefab.Entry.Vec())
}

// ExitWorld returns the exit anchor in world space.
func (s *Segment) ExitWorld() core.Vec2 {
	return s.Origin.Add(s.Prefab.Exit.Vec())
}
