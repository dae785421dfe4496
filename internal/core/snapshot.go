package core

// Snapshot captures the observable simulation state after a tick. It feeds
// the websocket state stream, determinism checks and the replay digest, so
// every field must be derived from simulation state alone.
type Snapshot struct {
	Tick     uint64  `json:"tick"`
	Elapsed  float64 `json:"elapsed"`
	Viewer   Vec2    `json:"viewer"`
	Score    int     `json:"score"`
	Streak   int     `json:"streak"`
	GameOver bool    `json:"gameOver"`

	Cursor    int             `json:"cursor"`
	Inventory []SlotSnapshot  `json:"inventory"`
	Segments  []SegmentStatus `json:"segments"`
	Zones     []ZoneStatus    `json:"zones"`
	Obstacles []Vec2          `json:"obstacles,omitempty"`
}

// SlotSnapshot describes one inventory slot. Empty tombstone slots carry an
// empty item name and zero quantity.
type SlotSnapshot struct {
	Item     string `json:"item"`
	Color    string `json:"color"`
	Quantity int    `json:"quantity"`
}

// SegmentStatus describes one active corridor segment.
type SegmentStatus struct {
	Prefab string  `json:"prefab"`
	Origin Vec2    `json:"origin"`
	ExitY  float64 `json:"exitY"`
}

// ZoneStatus describes one delivery zone attached to a spawned structure.
type ZoneStatus struct {
	Position Vec2   `json:"position"`
	Color    string `json:"color"`
	Active   bool   `json:"active"`
}
