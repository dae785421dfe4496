// Package config provides YAML-based configuration loading and difficulty
// presets for the courier simulation.
package config

// Config contains every tunable of the simulation core. All values are
// configuration, not code: the packages under internal/ read them but never
// hardcode gameplay numbers.
type Config struct {
	World      WorldConfig      `yaml:"world"`
	Placement  PlacementConfig  `yaml:"placement"`
	Inventory  InventoryConfig  `yaml:"inventory"`
	Zones      ZonesConfig      `yaml:"zones"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Steering   SteeringConfig   `yaml:"steering"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines corridor streaming parameters.
type WorldConfig struct {
	SpawnTriggerDistance float64 `yaml:"spawn_trigger_distance"` // Spawn a segment when the last one is this close ahead
	DestroyDistance      float64 `yaml:"destroy_distance"`       // Destroy a segment this far behind the viewer
	CorridorHalfWidth    float64 `yaml:"corridor_half_width"`    // Lateral clamp for the viewer
	ViewerSize           float64 `yaml:"viewer_size"`            // Side length of the viewer's collision square
	InitialSegments      int     `yaml:"initial_segments"`       // Segments pre-spawned at session start
	NoiseScale           float64 `yaml:"noise_scale"`            // Travel-axis frequency of the structure density noise
	NoiseWeight          float64 `yaml:"noise_weight"`           // How strongly noise modulates structure counts (0..1)
}

// PlacementConfig defines rejection-sampling parameters.
type PlacementConfig struct {
	Attempts            int     `yaml:"attempts"`             // Candidate draws per desired placement
	StructureCandidates int     `yaml:"structure_candidates"` // Valid candidates gathered per structure placement
	StructurePadding    float64 `yaml:"structure_padding"`    // Footprint padding for the spacing test
}

// InventoryConfig defines inventory capacity and item arrival.
type InventoryConfig struct {
	Capacity   int `yaml:"capacity"`    // Max non-empty slots
	ArrivalMin int `yaml:"arrival_min"` // Min quantity per item arrival
	ArrivalMax int `yaml:"arrival_max"` // Max quantity per item arrival
}

// ZonesConfig defines delivery-zone group bookkeeping.
type ZonesConfig struct {
	GroupSegments int `yaml:"group_segments"` // Segments per zone group before counters reset
}

// ScoringConfig defines delivery scoring.
type ScoringConfig struct {
	PointsPerItem   int     `yaml:"points_per_item"`
	StreakBonus     float64 `yaml:"streak_bonus"`      // Extra multiplier per consecutive correct delivery
	DistancePerTick float64 `yaml:"distance_per_tick"` // Score trickle per unit of distance, 0 disables
}

// SteeringConfig defines how the normalized axis moves the viewer.
type SteeringConfig struct {
	LateralSpeed float64 `yaml:"lateral_speed"` // Units per second at full deflection
}

// Curve defines one difficulty-scaled quantity:
// value(t) = base + growth * ln(1 + t), clamped to [floor, ceiling].
// A zero ceiling means the quantity has no upper bound.
type Curve struct {
	Base    float64 `yaml:"base"`
	Growth  float64 `yaml:"growth"`
	Floor   float64 `yaml:"floor"`
	Ceiling float64 `yaml:"ceiling"`
}

// DifficultyConfig defines the time-driven difficulty ramp. Every scaled
// quantity gets its own curve so consumers stay consistent: they all read
// the same elapsed-time scalar.
type DifficultyConfig struct {
	Enabled     bool    `yaml:"enabled"`      // false freezes every curve at its base value
	StartOffset float64 `yaml:"start_offset"` // Seconds of pre-elapsed time at session start

	TravelSpeed      Curve `yaml:"travel_speed"`      // Viewer speed along the travel axis
	ArrivalDelay     Curve `yaml:"arrival_delay"`     // Seconds between random item arrivals
	ObstacleCount    Curve `yaml:"obstacle_count"`    // Obstacles per segment
	StructureCount   Curve `yaml:"structure_count"`   // Structures per band per segment
	ActivationChance Curve `yaml:"activation_chance"` // Per-structure zone activation probability
	ZoneQuota        Curve `yaml:"zone_quota"`        // Max zones per zone group
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// StartOffsetForPreset returns the pre-elapsed seconds for a preset.
// Harder presets start further along the logarithmic ramp.
func StartOffsetForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0
	case DifficultyNormal:
		return 60
	case DifficultyHard:
		return 240
	default:
		return 0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.StartOffset = StartOffsetForPreset(preset)
	}
}

// ParsePreset maps a CLI string to a preset, empty string for unknown input.
func ParsePreset(s string) DifficultyPreset {
	switch s {
	case "easy":
		return DifficultyEasy
	case "normal":
		return DifficultyNormal
	case "hard":
		return DifficultyHard
	case "fixed":
		return DifficultyFixed
	default:
		return ""
	}
}
