// courier is the simulation core for an endless lane-constrained delivery
// game: the player travels down a procedurally streamed corridor, collects
// colored parcels, and drops them at matching delivery zones.
//
// Usage:
//
//	courier run               - Run a headless simulation
//	courier serve             - Serve the simulation over WebSocket
//	courier replay <file>     - Verify a recorded replay
//	courier scores            - Show persisted run history
//	courier content           - List the content catalog
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible runs
//	--db <path>       - Set database path (default: ~/.courier/courier.db)
//	--config <path>   - Use a specific config file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS         int
	flagSeed        int64
	flagDBPath      string
	flagConfigPath  string
	flagCatalogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "courier",
	Short: "Lane Courier - endless delivery run simulation",
	Long: `Lane Courier is the deterministic simulation core of an endless
delivery game. The corridor is streamed segment by segment ahead of the
viewer, parcels arrive on a timer, and delivery zones on roadside
structures demand matching colors.

Available commands:
  run      - Run a headless simulation with an autopilot
  serve    - Serve live simulation state over WebSocket
  replay   - Verify a recorded replay file
  scores   - View persisted run history
  content  - List items, segments, structures and obstacles

Examples:
  courier run --duration 120 --preset hard
  courier run --record out.replay
  courier serve --addr :8080
  courier replay out.replay
  courier scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.courier/courier.db", "Path to run database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagCatalogPath, "catalog", "", "Path to content catalog file")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(contentCmd)
}
