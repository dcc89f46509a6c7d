// dragon is Flappy Dragon for the terminal.
//
// Usage:
//
//	dragon                   - Play (same as "dragon play")
//	dragon play              - Play the game
//	dragon sim               - Run a scripted game without a terminal
//	dragon config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load a custom YAML config
//	--log <path>         - Write logs to a file
//	--log-level <level>  - Log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogPath  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dragon",
	Short: "Flappy Dragon - flap through the walls in your terminal",
	Long: `Flappy Dragon is a terminal side-scroller. Your dragon falls under
gravity; flap to climb through the gaps in the walls. Every wall you
pass scores a point and the next gap is a little narrower.

Available commands:
  play     - Play the game (default)
  sim      - Run a scripted game headless and print the result
  config   - Print the effective configuration

Examples:
  dragon
  dragon play --backend tcell
  dragon --seed 42 sim --ticks 2000 --flap-every 9
  dragon config --config ./my-dragon.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file (default: discarded)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.Flags().StringVar(&flagBackend, "backend", backendTea, "Rendering backend: tea or tcell")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
