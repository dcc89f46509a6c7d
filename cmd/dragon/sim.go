package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/platform/session"
)

var (
	flagTicks     int
	flagFrameMs   float64
	flagFlapEvery int
	flagDump      bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a scripted game without a terminal",
	Long: `Start a game, feed it a fixed flap pattern and print the final state.

The run stops when the dragon dies or the tick limit is reached. The same
seed and flags always produce the same result.

Examples:
  dragon --seed 42 sim
  dragon --seed 42 sim --ticks 5000 --frame-ms 16.7 --flap-every 9
  dragon --seed 7 sim --dump`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3000, "Maximum number of ticks to run")
	simCmd.Flags().Float64Var(&flagFrameMs, "frame-ms", 16.7, "Milliseconds reported per tick")
	simCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 9, "Flap on every Nth tick (0 = never)")
	simCmd.Flags().BoolVar(&flagDump, "dump", false, "Print the last frame")
}

// script describes a deterministic input pattern.
type script struct {
	ticks     int
	frameMs   float64
	flapEvery int
}

// simulate presses Play, then runs the script until the game leaves
// the playing mode or the tick limit is hit. Returns the ticks played.
func simulate(game *dragon.Game, con *core.BufferConsole, tracker *session.Tracker, sc script) int {
	con.BeginFrame(0, core.KeyPlay)
	game.Tick(con)
	tracker.Observe(game.Mode(), game.Score())

	played := 0
	for played < sc.ticks && game.Mode() == dragon.ModePlaying {
		played++
		key := core.KeyNone
		if sc.flapEvery > 0 && played%sc.flapEvery == 0 {
			key = core.KeyFlap
		}
		con.BeginFrame(sc.frameMs, key)
		game.Tick(con)
		tracker.Observe(game.Mode(), game.Score())
	}
	return played
}

func printSnapshot(w io.Writer, seed int64, played int, snap dragon.Snapshot) {
	fmt.Fprintf(w, "seed:      %d\n", seed)
	fmt.Fprintf(w, "ticks:     %d\n", played)
	fmt.Fprintf(w, "mode:      %s\n", snap.Mode)
	fmt.Fprintf(w, "score:     %d\n", snap.Score)
	fmt.Fprintf(w, "player:    x=%d y=%d velocity=%.1f\n", snap.PlayerX, snap.PlayerY, snap.Velocity)
	fmt.Fprintf(w, "obstacle:  x=%d gap=%d size=%d\n", snap.ObstacleX, snap.GapY, snap.GapSize)
}

func runSim(_ *cobra.Command, _ []string) {
	if flagTicks < 0 || flagFrameMs < 0 || flagFlapEvery < 0 {
		fmt.Fprintln(os.Stderr, "Error: --ticks, --frame-ms and --flap-every must not be negative")
		os.Exit(1)
	}

	e, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer e.close()

	game := e.newGame()
	con := core.NewBufferConsole(e.runtime.ScreenW, e.runtime.ScreenH)
	tracker := session.NewTracker(e.logger, e.runtime.Seed)

	played := simulate(game, con, tracker, script{
		ticks:     flagTicks,
		frameMs:   flagFrameMs,
		flapEvery: flagFlapEvery,
	})

	printSnapshot(os.Stdout, e.runtime.Seed, played, game.Snapshot())
	if flagDump {
		fmt.Println()
		fmt.Println(con.Screen().String())
	}
}
