// Package session follows the game's mode transitions on behalf of a driver
// and logs one record per play-through.
package session

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/flappy-dragon/internal/games/dragon"
)

// Tracker turns mode changes into session start/end log records.
// A session runs from a restart to the next transition away from playing.
type Tracker struct {
	logger   *log.Logger
	seed     int64
	now      func() time.Time
	last     dragon.Mode
	id       string
	started  time.Time
	sessions int
}

// NewTracker creates a tracker for a game that starts on the menu.
func NewTracker(logger *log.Logger, seed int64) *Tracker {
	return &Tracker{
		logger: logger,
		seed:   seed,
		now:    time.Now,
		last:   dragon.ModeMenu,
	}
}

// Observe records the mode after a tick. Only transitions are logged.
func (t *Tracker) Observe(mode dragon.Mode, score int) {
	if mode == t.last {
		return
	}

	switch {
	case mode == dragon.ModePlaying:
		t.id = uuid.NewString()
		t.started = t.now()
		t.sessions++
		t.logger.Info("session started", "id", t.id, "seed", t.seed, "number", t.sessions)
	case t.last == dragon.ModePlaying:
		t.logger.Info("session ended",
			"id", t.id,
			"score", score,
			"duration", t.now().Sub(t.started).Round(time.Millisecond),
		)
	}
	t.last = mode
}

// ExitRequested logs that the program is about to stop ticking.
func (t *Tracker) ExitRequested(mode dragon.Mode) {
	t.logger.Info("exit requested", "mode", mode, "sessions", t.sessions)
}

// ID returns the current or most recent session id, empty before the first game.
func (t *Tracker) ID() string {
	return t.id
}

// Sessions returns how many sessions have started.
func (t *Tracker) Sessions() int {
	return t.sessions
}
