// Package dragon implements Flappy Dragon.
// The player falls under gravity and flaps through gaps in walls,
// scoring a point for every wall passed.
package dragon

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Visual characters for rendering
const (
	PlayerGlyph = '@'
	WallGlyph   = '|'
)

// Spawn position handed to NewPlayer on every restart.
const (
	spawnHintX = 5
	spawnHintY = 25
)

// Game owns the session state and dispatches each tick by mode.
type Game struct {
	cfg       config.DragonConfig
	spawner   *Spawner
	mode      Mode
	player    Player
	obstacle  Obstacle
	frameTime float64 // Milliseconds accumulated toward the next physics step
	score     int
}

// New creates a game on the menu screen. Obstacle gaps are drawn from rng.
func New(cfg config.DragonConfig, rng *rand.Rand) *Game {
	g := &Game{
		cfg:     cfg,
		spawner: NewSpawner(rng, cfg.Obstacles),
		mode:    ModeMenu,
	}
	g.player = NewPlayer(spawnHintX, spawnHintY, cfg.Physics)
	g.obstacle = g.spawner.Spawn(cfg.Screen.Width, 0)
	return g
}

// Tick advances the game by one display frame.
func (g *Game) Tick(c core.Console) {
	switch g.mode {
	case ModeMenu:
		g.mainMenu(c)
	case ModePlaying:
		g.play(c)
	case ModeEnd:
		g.dead(c)
	}
}

// Restart begins a new session. Player, obstacle, score and the
// frame-time accumulator are all replaced together.
func (g *Game) Restart() {
	g.player = NewPlayer(spawnHintX, spawnHintY, g.cfg.Physics)
	g.frameTime = 0
	g.mode = ModePlaying
	g.obstacle = g.spawner.Spawn(g.cfg.Screen.Width, 0)
	g.score = 0
}

func (g *Game) mainMenu(c core.Console) {
	c.Cls()
	c.PrintCentered(5, "Welcome to Flappy Dragon")
	g.menuOptions(c)
}

func (g *Game) dead(c core.Console) {
	c.Cls()
	c.PrintCentered(5, "you are dead!")
	c.PrintCentered(6, fmt.Sprintf("You earned %d points", g.score))
	g.menuOptions(c)
}

// menuOptions draws the play/quit choices and handles them.
// Any other key is ignored.
func (g *Game) menuOptions(c core.Console) {
	c.PrintCentered(8, "(P) Play Game")
	c.PrintCentered(9, "(Q) Quit")

	if key, ok := c.Key(); ok {
		switch key {
		case core.KeyPlay:
			g.Restart()
		case core.KeyQuit:
			c.Quit()
		}
	}
}

func (g *Game) play(c core.Console) {
	c.ClsBg(core.ColorNavy)

	// One physics step per threshold crossing; excess time is dropped
	g.frameTime += c.FrameTimeMs()
	if g.frameTime > g.cfg.Timing.FrameDurationMs {
		g.frameTime = 0
		g.player.GravityAndMove()
	}

	if key, ok := c.Key(); ok && key == core.KeyFlap {
		g.player.Flap()
	}

	g.player.Render(c)
	c.Print(0, 0, "press space to flap")
	c.Print(0, 1, fmt.Sprintf("Score:%d", g.score))

	g.obstacle.Render(c, g.player.X, g.cfg.Screen.Height)
	hit := g.obstacle.HitObstacle(g.player)

	if g.player.X > g.obstacle.X {
		g.score++
		g.obstacle = g.spawner.Spawn(g.player.X+g.cfg.Screen.Width, g.score)
	}

	if g.player.Y > g.cfg.Screen.Height || hit {
		g.mode = ModeEnd
	}
}

// Mode returns the current mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// Score returns the number of obstacles passed this session.
func (g *Game) Score() int {
	return g.score
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.cfg.Screen.Title
}
