package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/justinjohnso-itp/lane-courier/internal/config"
	"github.com/justinjohnso-itp/lane-courier/internal/content"
	"github.com/justinjohnso-itp/lane-courier/internal/core"
	"github.com/justinjohnso-itp/lane-courier/internal/replay"
	"github.com/justinjohnso-itp/lane-courier/internal/session"
)

var flagReplayPreset string

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Verify a recorded replay",
	Long: `Re-run a recorded replay against the simulation and compare state
digests. A mismatch means the recording and the current simulation (or
its config) have diverged.

The replay must be verified with the same config and difficulty preset
it was recorded with.

Examples:
  courier replay out.replay
  courier replay out.replay --preset hard`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayPreset, "preset", "", "Difficulty preset the run was recorded with")
}

func runReplay(cmd *cobra.Command, args []string) {
	path := args[0]
	logger := newLogger("replay")

	res, err := replay.Verify(path, func(h replay.Header) (replay.Stepper, error) {
		cfg, err := config.Load(flagConfigPath)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if flagReplayPreset != "" {
			p := config.ParsePreset(flagReplayPreset)
			if p == "" {
				return nil, fmt.Errorf("unknown difficulty preset %q", flagReplayPreset)
			}
			config.ApplyPreset(&cfg, p)
		}
		catalog, err := content.Load(flagCatalogPath)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		runtime := core.RuntimeConfig{
			TickRate: h.TickRate,
			Seed:     h.Seed,
		}
		// No store: verification must not write run history.
		return session.New(cfg, catalog, runtime, nil, logger), nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Verification failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Replay %s verified\n", path)
	fmt.Printf("  Ticks:   %d\n", res.Ticks)
	fmt.Printf("  Frames:  %d\n", res.Frames)
	fmt.Printf("  Digests: %d\n", res.Digests)
	fmt.Printf("  Score:   %d\n", res.Score)
}
