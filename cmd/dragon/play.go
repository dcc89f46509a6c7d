package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/platform/tcellui"
	"github.com/vovakirdan/flappy-dragon/internal/platform/tui"
)

const (
	backendTea   = "tea"
	backendTcell = "tcell"
)

var flagBackend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Dragon",
	Long: `Start the game on the menu screen.

Controls:
  P          - Play (from the menu or after dying)
  Space/Up/W - Flap
  Q          - Quit (from the menu or after dying)
  Ctrl+S     - Save a text screenshot (tea backend)
  Ctrl+C     - Exit immediately

Backends:
  tea    - Bubble Tea renderer with key help (default)
  tcell  - Draws directly on the terminal with tcell

Examples:
  dragon play
  dragon play --backend tcell
  dragon play --seed 42 --log ./dragon.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", backendTea, "Rendering backend: tea or tcell")
}

// env bundles what every command needs to build a game.
type env struct {
	dragon  config.DragonConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	close   func() error
}

// setup loads configuration, resolves the seed and opens the logger.
func setup() (*env, error) {
	if flagFPS <= 0 {
		return nil, fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	dc, err := config.LoadDragon(flagConfig)
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := newLogger(flagLogPath, flagLogLevel)
	if err != nil {
		return nil, err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rc := core.RuntimeConfig{
		ScreenW:  dc.Screen.Width,
		ScreenH:  dc.Screen.Height,
		TickRate: flagFPS,
		Seed:     seed,
	}
	logger.Debug("config loaded", "width", rc.ScreenW, "height", rc.ScreenH, "fps", rc.TickRate, "seed", seed)

	return &env{dragon: dc, runtime: rc, logger: logger, close: closeLog}, nil
}

// newGame creates a game whose obstacle gaps come from the session seed.
func (s *env) newGame() *dragon.Game {
	return dragon.New(s.dragon, rand.New(rand.NewSource(s.runtime.Seed)))
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagBackend != backendTea && flagBackend != backendTcell {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q (use %s or %s)\n", flagBackend, backendTea, backendTcell)
		os.Exit(1)
	}

	e, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Warn early; the game still runs clipped
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < e.runtime.ScreenW || h < e.runtime.ScreenH {
			fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs %dx%d\n",
				w, h, e.runtime.ScreenW, e.runtime.ScreenH)
		}
	}

	game := e.newGame()
	e.logger.Info("starting", "backend", flagBackend, "seed", e.runtime.Seed)

	var runErr error
	switch flagBackend {
	case backendTcell:
		runErr = runTcell(game, e)
	default:
		runErr = tui.Run(game, e.runtime, e.logger)
	}

	if err := e.close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not close log file: %v\n", err)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runTcell owns the tcell screen lifecycle and treats a signal as a clean exit.
func runTcell(game *dragon.Game, e *env) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("cannot initialize screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault.
		Background(tcell.ColorBlack).
		Foreground(tcell.ColorWhite))
	screen.Clear()

	err = tcellui.Run(ctx, screen, game, e.runtime, e.logger)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
