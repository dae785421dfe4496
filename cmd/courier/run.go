package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/justinjohnso-itp/lane-courier/internal/core"
	"github.com/justinjohnso-itp/lane-courier/internal/input"
	"github.com/justinjohnso-itp/lane-courier/internal/replay"
	"github.com/justinjohnso-itp/lane-courier/internal/session"
)

var (
	flagDuration float64
	flagRecord   string
	flagPreset   string
	flagEvery    uint64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a frontend. A simple autopilot steers
toward active delivery zones, cycles the inventory to the demanded color
and delivers on contact. The run ends on obstacle collision or when the
requested duration elapses.

Difficulty options:
  easy   - Start at the bottom of the difficulty ramp
  normal - Start one minute into the ramp
  hard   - Start four minutes into the ramp
  fixed  - No ramp, difficulty stays at its base values

Examples:
  courier run --duration 120
  courier run --preset hard --seed 42
  courier run --record out.replay`,
	Run: runRun,
}

func init() {
	runCmd.Flags().Float64Var(&flagDuration, "duration", 60, "Simulated seconds to run")
	runCmd.Flags().StringVar(&flagRecord, "record", "", "Record the run to a replay file")
	runCmd.Flags().StringVar(&flagPreset, "preset", "", "Difficulty preset: easy, normal, hard, fixed")
	runCmd.Flags().Uint64Var(&flagEvery, "digest-every", 300, "Steps between replay digests")
}

func runRun(cmd *cobra.Command, args []string) {
	logger := newLogger("courier")

	sess, store, err := buildSession(flagPreset, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if store != nil {
		defer store.Close()
	}

	var rec *replay.Recorder
	if flagRecord != "" {
		h := replay.Header{
			Version:  replay.Version,
			RunID:    sess.ID(),
			Seed:     flagSeed,
			TickRate: flagFPS,
		}
		rec, err = replay.NewRecorder(flagRecord, h, flagEvery)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: could not open replay file: %v\n", err)
			os.Exit(1)
		}
	}

	steps := uint64(flagDuration * float64(flagFPS))
	last, err := driveRun(sess, rec, steps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if sess.State().GameOver {
		logger.Info("run ended on collision", "tick", sess.Snapshot().Tick)
	}

	if rec != nil {
		if err := rec.Finish(last, sess.Snapshot()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: replay finalize failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Replay written to %s\n", flagRecord)
	}

	state := sess.State()
	fmt.Printf("Run %s finished\n", sess.ID())
	fmt.Printf("  Score:      %d\n", state.Score)
	fmt.Printf("  Deliveries: %d\n", state.Deliveries)
	fmt.Printf("  Misses:     %d\n", state.Misses)
	fmt.Printf("  Distance:   %.1f\n", state.Distance)
	if best := sess.HighScore(); best > 0 {
		fmt.Printf("  Best:       %d\n", best)
	}
}

// driveRun steps the session for at most steps ticks under autopilot
// control, recording each executed step when rec is non-nil. It returns
// the index of the last executed step, which is what the final replay
// digest must be labeled with: a run that completes its full duration
// ends on step steps, not steps+1.
func driveRun(sess *session.Session, rec *replay.Recorder, steps uint64) (uint64, error) {
	pilot := newAutopilot()
	var last uint64
	for step := uint64(1); step <= steps; step++ {
		in := pilot.frame(sess.Snapshot())
		res := sess.Step(in)
		last = step

		if rec != nil {
			if err := rec.OnTick(step, in, sess.Snapshot); err != nil {
				return last, fmt.Errorf("replay write failed: %w", err)
			}
		}
		if res.State.GameOver {
			break
		}
	}
	return last, nil
}

// autopilot drives the headless run: turn the wheel toward the nearest
// active zone, cycle the highlight to the demanded color, deliver on
// contact. Steering goes through the same wheel model a cabinet would use,
// so recorded replays carry realistic decaying axis values.
type autopilot struct {
	wheel     *input.Wheel
	lastCycle uint64
}

func newAutopilot() *autopilot {
	return &autopilot{wheel: input.NewWheel()}
}

func (a *autopilot) steer(target float64) float64 {
	// A handful of encoder ticks per frame, proportional to the error.
	ticks := int(core.ClampF(target*20, -4, 4))
	a.wheel.Turn(ticks)
	return a.wheel.Step()
}

func (a *autopilot) frame(snap core.Snapshot) core.InputFrame {
	in := core.NewInputFrame()
	if snap.GameOver {
		return in
	}

	target, ok := nearestActiveZone(snap)
	if !ok {
		// Drift back to the lane center while nothing is armed.
		in.Steering = a.steer(-snap.Viewer.X * 0.5)
		return in
	}

	in.Steering = a.steer((target.Position.X - snap.Viewer.X) * 0.5)

	if !highlightMatches(snap, target.Color) {
		// One cycle per few steps, so the cursor does not spin past the
		// matching slot between snapshots.
		if snap.Tick-a.lastCycle >= 5 {
			in.Set(core.ActionCycle)
			a.lastCycle = snap.Tick
		}
		return in
	}

	dx := target.Position.X - snap.Viewer.X
	dy := target.Position.Y - snap.Viewer.Y
	if core.AbsF(dx) < 1.5 && core.AbsF(dy) < 1.5 {
		in.Set(core.ActionDeliver)
	}
	return in
}

func nearestActiveZone(snap core.Snapshot) (core.ZoneStatus, bool) {
	var best core.ZoneStatus
	found := false
	for _, z := range snap.Zones {
		if !z.Active || z.Position.Y < snap.Viewer.Y-1 {
			continue
		}
		if !found || z.Position.Y < best.Position.Y {
			best = z
			found = true
		}
	}
	return best, found
}

func highlightMatches(snap core.Snapshot, color string) bool {
	if snap.Cursor < 0 || snap.Cursor >= len(snap.Inventory) {
		return false
	}
	slot := snap.Inventory[snap.Cursor]
	return slot.Quantity > 0 && slot.Color == color
}
