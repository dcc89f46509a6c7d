package dragon

import (
	"math/rand"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

// Obstacle is a vertical wall with a passable gap.
type Obstacle struct {
	X    int // World column
	GapY int // Center row of the gap
	Size int // Gap height
}

// Walls returns the top and bottom wall segments in screen space,
// as seen by a player at world column playerX.
func (o Obstacle) Walls(playerX, screenH int) (top, bottom core.Rect) {
	screenX := o.X - playerX
	half := o.Size / 2
	top = core.NewRect(screenX, 0, 1, o.GapY-half)
	bottom = core.NewRect(screenX, o.GapY+half, 1, screenH-(o.GapY+half))
	return top, bottom
}

// Render draws both wall segments.
func (o Obstacle) Render(c core.Console, playerX, screenH int) {
	top, bottom := o.Walls(playerX, screenH)
	for _, wall := range []core.Rect{top, bottom} {
		for y := wall.Y; y < wall.Bottom(); y++ {
			c.Set(wall.X, y, core.ColorRed, core.ColorBlack, WallGlyph)
		}
	}
}

// HitObstacle reports whether the player is in the obstacle's column
// and outside the gap. The rows gap_y-half and gap_y+half are safe.
func (o Obstacle) HitObstacle(p Player) bool {
	half := o.Size / 2
	above := p.Y < o.GapY-half
	below := p.Y > o.GapY+half
	return p.Crossed(o.X) && (above || below)
}

// Spawner builds obstacles from an injected random source.
type Spawner struct {
	rng *rand.Rand
	cfg config.DragonObstacles
}

// NewSpawner creates a spawner drawing gap positions from rng.
func NewSpawner(rng *rand.Rand, cfg config.DragonObstacles) *Spawner {
	return &Spawner{rng: rng, cfg: cfg}
}

// Spawn creates an obstacle at world column x. The gap center is uniform
// in [GapMin, GapMax) and the gap narrows as score grows.
func (s *Spawner) Spawn(x, score int) Obstacle {
	return Obstacle{
		X:    x,
		GapY: s.cfg.GapMin + s.rng.Intn(s.cfg.GapMax-s.cfg.GapMin),
		Size: s.cfg.GapSize(score),
	}
}
