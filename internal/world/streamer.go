// Package world implements the corridor streamer: it assembles an endless
// travel corridor from prefabricated segments aligned anchor-to-anchor,
// populates each new segment with obstacles and structures, and offers
// eligible structures to the delivery-zone activator.
package world

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/justinjohnso-itp/lane-courier/internal/config"
	"github.com/justinjohnso-itp/lane-courier/internal/content"
	"github.com/justinjohnso-itp/lane-courier/internal/core"
	"github.com/justinjohnso-itp/lane-courier/internal/placement"
	"github.com/justinjohnso-itp/lane-courier/internal/zones"
)

// SpawnTuning supplies the difficulty-scaled per-segment entity counts.
type SpawnTuning interface {
	ObstacleCount() int
	StructureCount() int
}

// Streamer owns the ordered list of active segments, oldest first.
type Streamer struct {
	cfg       config.WorldConfig
	catalog   *content.Catalog
	sampler   *placement.Sampler
	tuning    SpawnTuning
	activator *zones.Activator
	rng       *rand.Rand
	noise     *perlin.Perlin
	logger    *log.Logger

	segments []*Segment
}

// New creates a streamer. The perlin field modulates structure density
// smoothly along the travel axis so building clusters vary between sparse
// and dense stretches instead of staying uniform.
func New(cfg config.WorldConfig, catalog *content.Catalog, sampler *placement.Sampler, tuning SpawnTuning, activator *zones.Activator, rng *rand.Rand, seed int64, logger *log.Logger) *Streamer {
	if logger == nil {
		logger = log.Default()
	}
	return &Streamer{
		cfg:       cfg,
		catalog:   catalog,
		sampler:   sampler,
		tuning:    tuning,
		activator: activator,
		rng:       rng,
		noise:     perlin.NewPerlin(2, 2, 3, seed),
		logger:    logger,
	}
}

// Segments returns the active segments, oldest first.
func (w *Streamer) Segments() []*Segment {
	return w.segments
}

// Reset clears the corridor and pre-spawns the initial chain with the
// first segment's entry anchor at the world origin.
func (w *Streamer) Reset() {
	w.segments = nil
	n := core.Max(w.cfg.InitialSegments, 1)
	for i := 0; i < n; i++ {
		w.spawnNext()
	}
}

// Update advances the streaming window for the given viewer position on
// the travel axis. It destroys segments whose exit anchor has fallen more
// than DestroyDistance behind and spawns ahead while the last segment's
// exit is within SpawnTriggerDistance. Returns the IDs of destroyed
// segments so segment-scoped scheduled work can be cancelled.
func (w *Streamer) Update(viewerY float64) []uuid.UUID {
	var destroyed []uuid.UUID
	for len(w.segments) > 0 && w.segments[0].ExitWorld().Y < viewerY-w.cfg.DestroyDistance {
		destroyed = append(destroyed, w.segments[0].ID)
		w.segments = w.segments[1:]
	}

	for w.lastExitY() < viewerY+w.cfg.SpawnTriggerDistance {
		if !w.spawnNext() {
			break
		}
	}
	return destroyed
}

func (w *Streamer) lastExitY() float64 {
	if len(w.segments) == 0 {
		return 0
	}
	return w.segments[len(w.segments)-1].ExitWorld().Y
}

// spawnNext picks a random usable prefab, aligns it against the previous
// segment and populates it. Returns false when no usable prefab exists.
func (w *Streamer) spawnNext() bool {
	prefabs := w.catalog.Segments()
	if len(prefabs) == 0 {
		w.logger.Error("no usable segment prefabs in catalog, corridor cannot grow")
		return false
	}
	prefab := prefabs[w.rng.Intn(len(prefabs))]

	// The catalog already rejects anchorless prefabs; re-check before
	// alignment since a missing anchor is a content-authoring error we
	// skip, not a runtime condition to recover from.
	if !prefab.HasAnchors() {
		w.logger.Error("segment prefab missing anchor, rejected", "prefab", prefab.Name)
		return false
	}

	// Closed-chain alignment: position the segment so its entry anchor
	// lands exactly on the previous segment's exit anchor.
	var target core.Vec2
	if len(w.segments) > 0 {
		target = w.segments[len(w.segments)-1].ExitWorld()
	}
	origin := target.Sub(prefab.Entry.Vec())

	seg := &Segment{
		ID:     uuid.New(),
		Prefab: prefab,
		Origin: origin,
	}
	w.populate(seg)
	w.segments = append(w.segments, seg)
	w.activator.OnSegmentSpawned()
	return true
}

// populate fills the segment's placement regions. Missing regions simply
// disable that category of spawning for the segment.
func (w *Streamer) populate(seg *Segment) {
	if region, ok := content.Polygon(seg.Prefab.ObstacleRegion); ok {
		w.populateObstacles(seg, region.Translate(seg.Origin))
	}
	if region, ok := content.Polygon(seg.Prefab.NearBand); ok {
		w.populateStructures(seg, region.Translate(seg.Origin))
	}
	if region, ok := content.Polygon(seg.Prefab.FarBand); ok {
		w.populateStructures(seg, region.Translate(seg.Origin))
	}
}

func (w *Streamer) populateObstacles(seg *Segment, region core.Polygon) {
	prefabs := w.catalog.Obstacles()
	if len(prefabs) == 0 {
		return
	}
	for _, pos := range w.sampler.Place(region, w.tuning.ObstacleCount()) {
		prefab := prefabs[w.rng.Intn(len(prefabs))]
		seg.Obstacles = append(seg.Obstacles, Obstacle{Prefab: prefab, Position: pos})
	}
}

// populateStructures places one prefab kind per band batch. Buildings hug
// the near-road edge: candidates closer to the band's road-side boundary
// win. Each structure with a zone child is offered to the activator.
func (w *Streamer) populateStructures(seg *Segment, region core.Polygon) {
	prefabs := w.catalog.Structures()
	if len(prefabs) == 0 {
		return
	}
	prefab := prefabs[w.rng.Intn(len(prefabs))]

	count := w.structureCount(seg.Origin.Y)
	bounds := region.Bounds()
	edgeDist := func(p core.Vec2) float64 {
		return p.X - bounds.X
	}

	positions := w.sampler.PlaceStructures(region, count, prefab.Footprint.Rect(), edgeDist)
	for _, pos := range positions {
		st := Structure{Prefab: prefab, Position: pos}
		if prefab.Zone != nil {
			st.Zone = &zones.Zone{Area: prefab.Zone.Rect().Translate(pos)}
			// A zone the laterally clamped viewer can never enter is
			// scenery. It is not offered for activation, so it cannot
			// spend the group quota on an impossible delivery.
			if w.zoneReachable(st.Zone.Area) {
				w.activator.TryActivate(st.Zone)
			}
		} else {
			w.logger.Warn("structure prefab has no delivery-zone child", "prefab", prefab.Name)
		}
		seg.Structures = append(seg.Structures, st)
	}
}

// zoneReachable reports whether any point of the area lies within the
// viewer's lateral clamp range.
func (w *Streamer) zoneReachable(area core.Rect) bool {
	return area.X <= w.cfg.CorridorHalfWidth && area.Right() > -w.cfg.CorridorHalfWidth
}

// structureCount modulates the scheduler's structure count with the
// density noise band at the given travel-axis position.
func (w *Streamer) structureCount(y float64) int {
	base := float64(w.tuning.StructureCount())
	if base <= 0 {
		return 0
	}
	if w.cfg.NoiseWeight <= 0 {
		return int(base)
	}
	n := w.noise.Noise1D(y * w.cfg.NoiseScale)
	count := int(math.Round(base * (1 + w.cfg.NoiseWeight*n)))
	if count < 0 {
		count = 0
	}
	return count
}

// CollidesObstacle reports whether the given world-space rectangle overlaps
// any spawned obstacle.
func (w *Streamer) CollidesObstacle(r core.Rect) bool {
	for _, seg := range w.segments {
		for _, ob := range seg.Obstacles {
			if r.Intersects(ob.Footprint()) {
				return true
			}
		}
	}
	return false
}

// ActiveZoneAt returns the active delivery zone containing the point, or
// nil when the point is not inside one.
func (w *Streamer) ActiveZoneAt(p core.Vec2) *zones.Zone {
	for _, seg := range w.segments {
		for _, st := range seg.Structures {
			if st.Zone != nil && st.Zone.Active && st.Zone.Area.Contains(p) {
				return st.Zone
			}
		}
	}
	return nil
}

// Snapshot renders the corridor state for streaming and replay digests.
func (w *Streamer) Snapshot() ([]core.SegmentStatus, []core.ZoneStatus, []core.Vec2) {
	var segs []core.SegmentStatus
	var zs []core.ZoneStatus
	var obs []core.Vec2
	for _, seg := range w.segments {
		segs = append(segs, core.SegmentStatus{
			Prefab: seg.Prefab.Name,
			Origin: seg.Origin,
			ExitY:  seg.ExitWorld().Y,
		})
		for _, st := range seg.Structures {
			if st.Zone == nil {
				continue
			}
			zs = append(zs, core.ZoneStatus{
				Position: st.Zone.Area.Center(),
				Color:    st.Zone.RequiredColor,
				Active:   st.Zone.Active,
			})
		}
		for _, ob := range seg.Obstacles {
			obs = append(obs, ob.Position)
		}
	}
	return segs, zs, obs
}
