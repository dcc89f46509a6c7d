package dragon

import (
	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Player is the dragon steered by the user.
type Player struct {
	X        int     // World column, advances by one per physics step
	Y        int     // Screen row, never negative
	Velocity float64 // Rows per physics step (negative = up)
	PrevX    int     // X before the latest physics step

	phys config.DragonPhysics
}

// NewPlayer returns a player at the fixed start position (0, 0) at rest.
// The x and y hints are accepted but not used.
func NewPlayer(x, y int, phys config.DragonPhysics) Player {
	return Player{phys: phys}
}

// GravityAndMove applies one physics step.
// Gravity only accelerates while velocity is below the cutoff.
func (p *Player) GravityAndMove() {
	if p.Velocity < p.phys.AccelCutoff {
		p.Velocity += p.phys.Gravity
	}
	p.Y += int(p.Velocity)
	p.PrevX = p.X
	p.X++
	if p.Y < 0 {
		p.Y = 0
	}
}

// Flap overrides the current velocity with the upward flap velocity.
func (p *Player) Flap() {
	p.Velocity = p.phys.FlapVelocity
}

// Crossed reports whether the player is in world column col, or skipped
// over it during the latest physics step.
func (p Player) Crossed(col int) bool {
	return p.X == col || (p.PrevX < col && col < p.X)
}

// Render draws the player in the first screen column.
func (p Player) Render(c core.Console) {
	c.Set(0, p.Y, core.ColorYellow, core.ColorBlack, PlayerGlyph)
}
