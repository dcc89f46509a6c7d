package dragon

import (
	"math"
	"testing"

	"github.com/vovakirdan/flappy-dragon/internal/config"
	"github.com/vovakirdan/flappy-dragon/internal/core"
)

func testPhysics() config.DragonPhysics {
	return config.DefaultDragonConfig().Physics
}

// playerAt returns a player that reached (x, y) with single-column steps.
func playerAt(x, y int) Player {
	p := NewPlayer(0, 0, testPhysics())
	p.X = x
	p.PrevX = x - 1
	p.Y = y
	return p
}

func TestNewPlayerIgnoresHints(t *testing.T) {
	p := NewPlayer(5, 25, testPhysics())

	if p.X != 0 || p.Y != 0 {
		t.Errorf("NewPlayer(5, 25) at (%d, %d), expected fixed start (0, 0)", p.X, p.Y)
	}
	if p.Velocity != 0 {
		t.Errorf("NewPlayer velocity = %f, expected 0", p.Velocity)
	}
}

func TestGravityAccumulation(t *testing.T) {
	p := NewPlayer(0, 0, testPhysics())
	p.Y = 20

	prev := p.Velocity
	for step := 1; step <= 12; step++ {
		p.GravityAndMove()

		if prev < 1.0 {
			if math.Abs(p.Velocity-(prev+0.2)) > 1e-9 {
				t.Errorf("step %d: velocity = %f, expected %f", step, p.Velocity, prev+0.2)
			}
		} else if p.Velocity != prev {
			t.Errorf("step %d: velocity changed from %f to %f after reaching the cutoff", step, prev, p.Velocity)
		}
		if p.X != step {
			t.Errorf("step %d: X = %d, expected %d", step, p.X, step)
		}
		prev = p.Velocity
	}

	if p.Velocity < 1.0-1e-9 || p.Velocity > 1.2 {
		t.Errorf("velocity after many steps = %f, expected to settle in [1.0, 1.2]", p.Velocity)
	}
}

func TestGravityTruncatesVelocity(t *testing.T) {
	p := NewPlayer(0, 0, testPhysics())
	p.Y = 10

	// Four steps reach 0.8, which truncates to no movement
	for i := 0; i < 4; i++ {
		p.GravityAndMove()
	}
	if p.Y != 10 {
		t.Errorf("Y = %d after sub-row velocities, expected 10", p.Y)
	}

	// Fifth step reaches 1.0
	p.GravityAndMove()
	if p.Y != 11 {
		t.Errorf("Y = %d after velocity reached 1.0, expected 11", p.Y)
	}
}

func TestYNeverNegative(t *testing.T) {
	p := NewPlayer(0, 0, testPhysics())

	for step := 0; step < 200; step++ {
		if step%3 == 0 {
			p.Flap()
		}
		p.GravityAndMove()
		if p.Y < 0 {
			t.Fatalf("step %d: Y = %d, must never be negative", step, p.Y)
		}
	}
}

func TestFlapOverridesVelocity(t *testing.T) {
	tests := []struct {
		name     string
		velocity float64
	}{
		{"at rest", 0},
		{"falling", 1.2},
		{"rising", -1.4},
		{"already flapped", -2.0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPlayer(0, 0, testPhysics())
			p.Velocity = tc.velocity
			p.Flap()
			if p.Velocity != -2.0 {
				t.Errorf("Flap() velocity = %f, expected -2.0", p.Velocity)
			}
		})
	}
}

func TestFlapThenStep(t *testing.T) {
	p := NewPlayer(0, 0, testPhysics())
	p.Y = 10

	p.Flap()
	p.GravityAndMove()

	// -2.0 + 0.2 = -1.8 truncates to -1
	if p.Y != 9 {
		t.Errorf("Y = %d after flap and step, expected 9", p.Y)
	}
	if p.X != 1 {
		t.Errorf("X = %d after one step, expected 1", p.X)
	}
}

func TestPlayerCrossed(t *testing.T) {
	tests := []struct {
		name     string
		prevX, x int
		col      int
		expected bool
	}{
		{"exact column", 9, 10, 10, true},
		{"one before", 8, 9, 10, false},
		{"one past", 10, 11, 10, false},
		{"skipped over", 8, 12, 10, true},
		{"landed past after skip", 10, 14, 10, false},
		{"never moved", 0, 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := Player{PrevX: tc.prevX, X: tc.x}
			if got := p.Crossed(tc.col); got != tc.expected {
				t.Errorf("Crossed(%d) with PrevX=%d X=%d = %v, expected %v", tc.col, tc.prevX, tc.x, got, tc.expected)
			}
		})
	}
}

func TestPlayerRender(t *testing.T) {
	con := core.NewBufferConsole(80, 50)
	p := playerAt(30, 12)

	p.Render(con)

	cell := con.Screen().GetCell(0, 12)
	if cell.Rune != PlayerGlyph || cell.Fg != core.ColorYellow || cell.Bg != core.ColorBlack {
		t.Errorf("player cell = %+v, expected yellow %q on black in column 0", cell, PlayerGlyph)
	}
}
