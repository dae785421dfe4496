// Package session owns one run of the courier simulation. It constructs
// every service explicitly and passes them where needed; nothing in the
// core reaches for global state, which keeps the whole engine testable
// without a running frontend.
package session

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/justinjohnso-itp/lane-courier/internal/config"
	"github.com/justinjohnso-itp/lane-courier/internal/content"
	"github.com/justinjohnso-itp/lane-courier/internal/core"
	"github.com/justinjohnso-itp/lane-courier/internal/difficulty"
	"github.com/justinjohnso-itp/lane-courier/internal/inventory"
	"github.com/justinjohnso-itp/lane-courier/internal/placement"
	"github.com/justinjohnso-itp/lane-courier/internal/score"
	"github.com/justinjohnso-itp/lane-courier/internal/world"
	"github.com/justinjohnso-itp/lane-courier/internal/zones"
)

// RunRecord summarizes a finished run for persistence.
type RunRecord struct {
	ID         string
	Seed       int64
	Score      int
	Deliveries int
	Misses     int
	Distance   float64
	Duration   float64 // Seconds of simulated time
}

// ScoreStore is the persistence collaborator. The session reads the high
// score once at start and writes once at end; run history is a richer
// record the storage layer keeps alongside.
type ScoreStore interface {
	HighScore() (int, error)
	SetHighScore(score int) error
	SaveRun(rec RunRecord) error
}

// Session is the top-level simulation object driving one run.
type Session struct {
	id      uuid.UUID
	cfg     config.Config
	runtime core.RuntimeConfig
	catalog *content.Catalog
	store   ScoreStore
	logger  *log.Logger

	rng       *rand.Rand
	sched     *difficulty.Scheduler
	inv       *inventory.Store
	ledger    *score.Ledger
	activator *zones.Activator
	streamer  *world.Streamer
	tasks     *TaskQueue

	dt        float64 // Seconds per tick
	tick      uint64
	viewer    core.Vec2
	paused    bool
	gameOver  bool
	saved     bool
	highScore int

	invChanges int // Change notifications observed this run
}

// New creates a session. store may be nil: the run still works, scores are
// just not persisted. The catalog must already be loaded and validated.
func New(cfg config.Config, catalog *content.Catalog, runtime core.RuntimeConfig, store ScoreStore, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultRuntimeConfig().TickRate
	}

	s := &Session{
		cfg:     cfg,
		runtime: runtime,
		catalog: catalog,
		store:   store,
		logger:  logger,
		dt:      1.0 / float64(runtime.TickRate),
	}
	s.Reset()
	return s
}

// Reset initializes or restarts the run. Every service is rebuilt from the
// seed so identical seeds reproduce identical runs.
func (s *Session) Reset() {
	s.id = uuid.New()
	s.rng = rand.New(rand.NewSource(s.runtime.Seed))
	s.tick = 0
	s.viewer = core.Vec2{}
	s.paused = false
	s.gameOver = false
	s.saved = false
	s.invChanges = 0

	s.sched = difficulty.New(s.cfg.Difficulty)
	s.ledger = score.New(s.cfg.Scoring)

	s.inv = inventory.New(s.cfg.Inventory.Capacity)
	s.inv.OnChange(func() { s.invChanges++ })

	sampler := placement.New(s.rng, s.cfg.Placement)
	s.activator = zones.New(s.rng, s.sched, s.inv, s.cfg.Zones.GroupSegments)
	s.streamer = world.New(s.cfg.World, s.catalog, sampler, s.sched, s.activator, s.rng, s.runtime.Seed, s.logger)
	s.streamer.Reset()

	s.tasks = NewTaskQueue()
	// Align the queue clock with the scheduler before the first schedule;
	// presets can start the scheduler mid-ramp.
	s.tasks.Advance(s.sched.Elapsed())
	s.tasks.Schedule("item-arrival", s.sched.ArrivalDelay(), s.arriveItem)

	for _, p := range s.catalog.Problems() {
		s.logger.Warn("content problem", "detail", p)
	}

	s.highScore = 0
	if s.store != nil {
		hs, err := s.store.HighScore()
		if err != nil {
			s.logger.Warn("could not read high score", "error", err)
		} else {
			s.highScore = hs
		}
	}
}

// arriveItem is the periodic random-item-arrival routine. It re-schedules
// itself with the scheduler's current arrival delay, so arrivals speed up
// as the session progresses.
func (s *Session) arriveItem() {
	items := s.catalog.Items()
	if len(items) > 0 {
		item := items[s.rng.Intn(len(items))]
		qty := s.cfg.Inventory.ArrivalMin
		if span := s.cfg.Inventory.ArrivalMax - s.cfg.Inventory.ArrivalMin; span > 0 {
			qty += s.rng.Intn(span + 1)
		}
		if qty < 1 {
			qty = 1
		}
		s.inv.Add(item, qty)
	}
	s.tasks.Schedule("item-arrival", s.sched.ArrivalDelay(), s.arriveItem)
}

// Step advances the simulation by one tick. Within a tick the scheduler is
// advanced first, the streamer (and with it zone activation) runs before
// any inventory mutation, scheduled or player-driven, and collision is
// resolved last.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	if s.gameOver {
		if in.Has(core.ActionRestart) {
			s.Reset()
		}
		return core.StepResult{State: s.State()}
	}

	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return core.StepResult{State: s.State()}
	}

	s.tick++
	s.sched.Advance(s.dt)

	// Viewer motion: constant forward travel, steering moves laterally.
	forward := s.sched.TravelSpeed() * s.dt
	s.viewer.Y += forward
	s.ledger.AddTravel(forward)

	lateral := core.ClampF(in.Steering, -1, 1) * s.cfg.Steering.LateralSpeed * s.dt
	s.viewer.X = core.ClampF(s.viewer.X+lateral, -s.cfg.World.CorridorHalfWidth, s.cfg.World.CorridorHalfWidth)

	destroyed := s.streamer.Update(s.viewer.Y)
	s.tasks.CancelScope(destroyed)

	// Every inventory mutation runs after the streamer update, so zone
	// activation only ever sees the inventory as it stood when the tick
	// began. Scheduled arrivals fire here, not before the streamer.
	s.tasks.Advance(s.sched.Elapsed())
	if in.Has(core.ActionCycle) {
		s.inv.Cycle(true)
	}
	if in.Has(core.ActionCycleBack) {
		s.inv.Cycle(false)
	}
	if in.Has(core.ActionDeliver) {
		s.deliver()
	}

	if s.streamer.CollidesObstacle(s.viewerRect()) {
		s.endRun()
	}

	return core.StepResult{State: s.State()}
}

// deliver drops the highlighted stack at the zone under the viewer, if
// any. The zone scores the entire stack and deactivates either way; a
// wrong color burns the delivery.
func (s *Session) deliver() {
	zone := s.streamer.ActiveZoneAt(s.viewer)
	if zone == nil {
		return
	}
	removed, ok := s.inv.RemoveHighlighted()
	if !ok {
		return
	}
	out := s.ledger.Deliver(zone.RequiredColor, removed.Item, removed.Quantity)
	zone.Active = false
	if out.Correct {
		s.logger.Debug("delivery", "color", out.Color, "qty", out.Quantity, "points", out.Points)
	} else {
		s.logger.Debug("missed delivery", "required", out.Required, "got", out.Color)
	}
}

func (s *Session) viewerRect() core.Rect {
	half := s.cfg.World.ViewerSize / 2
	return core.NewRect(s.viewer.X-half, s.viewer.Y-half, s.cfg.World.ViewerSize, s.cfg.World.ViewerSize)
}

// endRun finishes the run and persists the outcome once.
func (s *Session) endRun() {
	if s.gameOver {
		return
	}
	s.gameOver = true
	s.persist()
}

func (s *Session) persist() {
	if s.store == nil || s.saved {
		return
	}
	s.saved = true

	rec := RunRecord{
		ID:         s.id.String(),
		Seed:       s.runtime.Seed,
		Score:      s.ledger.Total(),
		Deliveries: s.ledger.Deliveries(),
		Misses:     s.ledger.Misses(),
		Distance:   s.viewer.Y,
		Duration:   s.sched.Elapsed() - s.cfg.Difficulty.StartOffset,
	}
	if err := s.store.SaveRun(rec); err != nil {
		s.logger.Warn("could not save run", "error", err)
	}
	if rec.Score > s.highScore {
		s.highScore = rec.Score
		if err := s.store.SetHighScore(rec.Score); err != nil {
			s.logger.Warn("could not save high score", "error", err)
		}
	}
}

// State returns the current run state.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:      s.ledger.Total(),
		Deliveries: s.ledger.Deliveries(),
		Misses:     s.ledger.Misses(),
		Distance:   s.viewer.Y,
		GameOver:   s.gameOver,
		Paused:     s.paused,
	}
}

// Snapshot captures the observable state for streaming and replay digests.
func (s *Session) Snapshot() core.Snapshot {
	segs, zs, obs := s.streamer.Snapshot()
	return core.Snapshot{
		Tick:      s.tick,
		Elapsed:   s.sched.Elapsed(),
		Viewer:    s.viewer,
		Score:     s.ledger.Total(),
		Streak:    s.ledger.Streak(),
		GameOver:  s.gameOver,
		Cursor:    s.inv.Cursor(),
		Inventory: s.inv.Snapshot(),
		Segments:  segs,
		Zones:     zs,
		Obstacles: obs,
	}
}

// ID returns the run identifier.
func (s *Session) ID() string {
	return s.id.String()
}

// HighScore returns the best score known at session start, or this run's
// score once it beats it.
func (s *Session) HighScore() int {
	return s.highScore
}

// Inventory exposes the store for frontends that render it.
func (s *Session) Inventory() *inventory.Store {
	return s.inv
}

// Ledger exposes the scoring ledger.
func (s *Session) Ledger() *score.Ledger {
	return s.ledger
}
