package tcellui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-dragon/internal/core"
	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
	"github.com/vovakirdan/flappy-dragon/internal/platform/session"
)

// MapKey translates a tcell key event to a game key.
// Returns KeyNone for keys the game does not use.
func MapKey(ev *tcell.EventKey) core.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return core.KeyFlap
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'p', 'P':
			return core.KeyPlay
		case 'q', 'Q':
			return core.KeyQuit
		case ' ', 'w':
			return core.KeyFlap
		}
	}
	return core.KeyNone
}

// driver holds the loop state between events and ticks.
type driver struct {
	screen   tcell.Screen
	game     *dragon.Game
	console  *Console
	tracker  *session.Tracker
	cfg      core.RuntimeConfig
	pending  core.Key
	lastTick time.Time
}

func newDriver(s tcell.Screen, game *dragon.Game, cfg core.RuntimeConfig, logger *log.Logger) *driver {
	return &driver{
		screen:  s,
		game:    game,
		console: NewConsole(s, cfg.ScreenW, cfg.ScreenH),
		tracker: session.NewTracker(logger, cfg.Seed),
		cfg:     cfg,
	}
}

// handleEvent processes one terminal event and reports whether to stop.
func (d *driver) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			d.tracker.ExitRequested(d.game.Mode())
			return true
		}
		if d.pending == core.KeyNone {
			d.pending = MapKey(ev)
		}
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return false
}

// tick runs one game frame and reports whether the game asked to exit.
func (d *driver) tick(now time.Time) bool {
	elapsed := 0.0
	if !d.lastTick.IsZero() {
		elapsed = float64(now.Sub(d.lastTick)) / float64(time.Millisecond)
	}
	d.lastTick = now

	d.console.beginFrame(elapsed, d.pending)
	d.pending = core.KeyNone

	d.game.Tick(d.console)
	d.tracker.Observe(d.game.Mode(), d.game.Score())

	if d.console.Quitting() {
		d.tracker.ExitRequested(d.game.Mode())
		return true
	}

	d.drawSizeNotice()
	d.screen.Show()
	return false
}

// drawSizeNotice overlays a warning when the terminal cannot fit the field.
func (d *driver) drawSizeNotice() {
	w, h := d.screen.Size()
	if w >= d.cfg.ScreenW && h >= d.cfg.ScreenH {
		return
	}
	msg := fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", d.cfg.ScreenW, d.cfg.ScreenH, w, h)
	st := style(core.ColorYellow, core.ColorBlack)
	for i, r := range []rune(msg) {
		d.screen.SetContent(i, 0, r, nil, st)
	}
}

// Run plays the game on an initialized screen until the game quits,
// ctrl+c is pressed or ctx is cancelled. The caller owns Init and Fini.
func Run(ctx context.Context, s tcell.Screen, game *dragon.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.SetTitle(game.Title())
	s.HideCursor()

	d := newDriver(s, game, cfg, logger)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(cfg.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if d.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			if d.tick(now) {
				return nil
			}
		}
	}
}
