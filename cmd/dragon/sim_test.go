package main

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/platform/session"
)

func runTestScript(seed int64, sc script) (dragon.Snapshot, int) {
	cfg := config.DefaultDragonConfig()
	game := dragon.New(cfg, rand.New(rand.NewSource(seed)))
	con := core.NewBufferConsole(cfg.Screen.Width, cfg.Screen.Height)
	tracker := session.NewTracker(log.New(&bytes.Buffer{}), seed)

	played := simulate(game, con, tracker, sc)
	return game.Snapshot(), played
}

func TestSimulateIsDeterministic(t *testing.T) {
	sc := script{ticks: 4000, frameMs: 16.7, flapEvery: 9}

	first, n1 := runTestScript(99, sc)
	second, n2 := runTestScript(99, sc)

	if first != second || n1 != n2 {
		t.Errorf("runs differ:\n run1 = %+v (%d ticks)\n run2 = %+v (%d ticks)", first, n1, second, n2)
	}
}

func TestSimulateWithoutFlappingFalls(t *testing.T) {
	snap, played := runTestScript(1, script{ticks: 10000, frameMs: 30, flapEvery: 0})

	if snap.Mode != dragon.ModeEnd {
		t.Fatalf("mode = %v after %d ticks, expected end", snap.Mode, played)
	}
	if played >= 10000 {
		t.Error("a falling dragon should die before the tick limit")
	}
}

func TestSimulateTickLimit(t *testing.T) {
	snap, played := runTestScript(1, script{ticks: 3, frameMs: 30, flapEvery: 0})

	if played != 3 {
		t.Errorf("played %d ticks, expected 3", played)
	}
	if snap.Mode != dragon.ModePlaying {
		t.Errorf("mode = %v, expected playing", snap.Mode)
	}
	if snap.PlayerX != 3 {
		t.Errorf("X = %d, expected 3", snap.PlayerX)
	}
}

func TestPrintSnapshot(t *testing.T) {
	var buf bytes.Buffer
	printSnapshot(&buf, 42, 10, dragon.Snapshot{Mode: dragon.ModeEnd, Score: 4})

	out := buf.String()
	for _, want := range []string{"seed:      42", "ticks:     10", "mode:      end", "score:     4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
