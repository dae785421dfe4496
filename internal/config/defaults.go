package config

import (
	_ "embed"
)

//go:embed defaults/courier.yaml
var defaultCourierYAML []byte

// Default returns the default simulation configuration. It mirrors
// defaults/courier.yaml and is the fallback when the embedded YAML cannot
// be parsed.
func Default() Config {
	return Config{
		World: WorldConfig{
			SpawnTriggerDistance: 60.0,
			DestroyDistance:      40.0,
			CorridorHalfWidth:    6.0,
			ViewerSize:           0.8,
			InitialSegments:      3,
			NoiseScale:           0.01,
			NoiseWeight:          0.5,
		},
		Placement: PlacementConfig{
			Attempts:            12,
			StructureCandidates: 4,
			StructurePadding:    0.5,
		},
		Inventory: InventoryConfig{
			Capacity:   6,
			ArrivalMin: 1,
			ArrivalMax: 3,
		},
		Zones: ZonesConfig{
			GroupSegments: 3,
		},
		Scoring: ScoringConfig{
			PointsPerItem:   100,
			StreakBonus:     0.25,
			DistancePerTick: 0.0,
		},
		Steering: SteeringConfig{
			LateralSpeed: 8.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:          true,
			StartOffset:      0.0,
			TravelSpeed:      Curve{Base: 10.0, Growth: 2.5, Floor: 10.0, Ceiling: 28.0},
			ArrivalDelay:     Curve{Base: 5.0, Growth: -0.6, Floor: 1.5},
			ObstacleCount:    Curve{Base: 2.0, Growth: 1.2, Floor: 0.0, Ceiling: 8.0},
			StructureCount:   Curve{Base: 2.0, Growth: 0.8, Floor: 1.0, Ceiling: 5.0},
			ActivationChance: Curve{Base: 0.35, Growth: 0.08, Floor: 0.0, Ceiling: 1.0},
			ZoneQuota:        Curve{Base: 1.0, Growth: 0.7, Floor: 1.0, Ceiling: 4.0},
		},
	}
}
