// Package placement implements rejection-sampling placement of entities
// inside arbitrary polygonal regions. The sampler never owns or mutates a
// region; it only needs containment and bounding-box queries, so any
// physics collaborator can supply the Region.
package placement

import (
	"math/rand"
	"sort"

	"github.com/justinjohnso-itp/lane-courier/internal/config"
	"github.com/justinjohnso-itp/lane-courier/internal/core"
)

// Region is the containment-test collaborator. core.Polygon satisfies it,
// as would a physics-engine shape proxy.
type Region interface {
	Contains(p core.Vec2) bool
	Bounds() core.Rect
}

// Sampler draws placement positions. Sampling failures silently reduce the
// number of entities placed; partial placement is an acceptable outcome,
// never an error.
type Sampler struct {
	rng        *rand.Rand
	attempts   int
	candidates int
	padding    float64
}

// New creates a sampler using the given RNG and tuning.
func New(rng *rand.Rand, cfg config.PlacementConfig) *Sampler {
	attempts := cfg.Attempts
	if attempts < 1 {
		attempts = 1
	}
	candidates := cfg.StructureCandidates
	if candidates < 1 {
		candidates = 1
	}
	return &Sampler{
		rng:        rng,
		attempts:   attempts,
		candidates: candidates,
		padding:    cfg.StructurePadding,
	}
}

// draw returns one point passing the containment test, or false when the
// attempt budget is exhausted. Candidates are uniform in the region's
// bounding box; the true (possibly non-convex) region decides acceptance.
func (s *Sampler) draw(region Region) (core.Vec2, bool) {
	b := region.Bounds()
	if b.W <= 0 || b.H <= 0 {
		return core.Vec2{}, false
	}
	for i := 0; i < s.attempts; i++ {
		p := core.Vec2{
			X: b.X + s.rng.Float64()*b.W,
			Y: b.Y + s.rng.Float64()*b.H,
		}
		if region.Contains(p) {
			return p, true
		}
	}
	return core.Vec2{}, false
}

// Place returns up to count positions uniformly distributed inside the
// region. Placements whose attempt budget runs out are skipped.
func (s *Sampler) Place(region Region, count int) []core.Vec2 {
	var out []core.Vec2
	for i := 0; i < count; i++ {
		if p, ok := s.draw(region); ok {
			out = append(out, p)
		}
	}
	return out
}

// PlaceStructures returns up to count positions for structures with the
// given local-space footprint. Per placement it gathers several valid
// candidates and prefers the one closest to the region's near-road edge
// (edgeDist scores a candidate, lower is closer), then enforces spacing:
// the padded post-placement footprint must not intersect any footprint
// already accepted in this batch. The actual translated footprint is used,
// which keeps spacing correct under arbitrary pivot offsets.
func (s *Sampler) PlaceStructures(region Region, count int, footprint core.Rect, edgeDist func(core.Vec2) float64) []core.Vec2 {
	var out []core.Vec2
	var accepted []core.Rect

	for i := 0; i < count; i++ {
		var cands []core.Vec2
		for len(cands) < s.candidates {
			p, ok := s.draw(region)
			if !ok {
				break
			}
			cands = append(cands, p)
		}
		if len(cands) == 0 {
			continue
		}

		if edgeDist != nil {
			sort.Slice(cands, func(a, b int) bool {
				return edgeDist(cands[a]) < edgeDist(cands[b])
			})
		}

		for _, p := range cands {
			placed := footprint.Translate(p)
			padded := placed.Expand(s.padding)
			if overlapsAny(padded, accepted) {
				continue
			}
			out = append(out, p)
			accepted = append(accepted, placed)
			break
		}
	}
	return out
}

func overlapsAny(r core.Rect, rects []core.Rect) bool {
	for _, o := range rects {
		if r.Intersects(o) {
			return true
		}
	}
	return false
}
