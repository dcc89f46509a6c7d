// Package tcellui runs the game directly on a tcell screen.
package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/flappy-dragon/internal/core"
)

var palette = map[core.Color]tcell.Color{
	core.ColorDefault: tcell.ColorDefault,
	core.ColorBlack:   tcell.ColorBlack,
	core.ColorRed:     tcell.ColorRed,
	core.ColorGreen:   tcell.ColorGreen,
	core.ColorYellow:  tcell.ColorYellow,
	core.ColorBlue:    tcell.ColorBlue,
	core.ColorNavy:    tcell.ColorNavy,
	core.ColorMagenta: tcell.ColorFuchsia,
	core.ColorCyan:    tcell.ColorAqua,
	core.ColorWhite:   tcell.ColorWhite,
	core.ColorGray:    tcell.ColorGray,
}

func style(fg, bg core.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(palette[fg]).Background(palette[bg])
}

// Console draws onto a tcell.Screen, clipped to a fixed play field
// anchored at the top-left corner.
type Console struct {
	screen      tcell.Screen
	field       core.Rect
	key         core.Key
	hasKey      bool
	frameTimeMs float64
	quitting    bool
}

// NewConsole creates a console for a width x height play field.
func NewConsole(s tcell.Screen, width, height int) *Console {
	return &Console{
		screen: s,
		field:  core.NewRect(0, 0, width, height),
	}
}

// beginFrame loads one tick's input.
func (c *Console) beginFrame(elapsedMs float64, key core.Key) {
	c.frameTimeMs = elapsedMs
	c.key = key
	c.hasKey = key != core.KeyNone
}

func (c *Console) Set(x, y int, fg, bg core.Color, glyph rune) {
	if !c.field.Contains(x, y) {
		return
	}
	c.screen.SetContent(x, y, glyph, nil, style(fg, bg))
}

func (c *Console) Print(x, y int, text string) {
	for i, r := range []rune(text) {
		c.Set(x+i, y, core.TextFg, core.TextBg, r)
	}
}

func (c *Console) PrintCentered(y int, text string) {
	x := (c.field.W - len([]rune(text))) / 2
	c.Print(x, y, text)
}

func (c *Console) Cls() {
	c.ClsBg(core.ColorBlack)
}

func (c *Console) ClsBg(bg core.Color) {
	st := style(core.TextFg, bg)
	for y := c.field.Y; y < c.field.Bottom(); y++ {
		for x := c.field.X; x < c.field.Right(); x++ {
			c.screen.SetContent(x, y, ' ', nil, st)
		}
	}
}

func (c *Console) Key() (core.Key, bool) {
	return c.key, c.hasKey
}

func (c *Console) FrameTimeMs() float64 {
	return c.frameTimeMs
}

func (c *Console) Quit() {
	c.quitting = true
}

// Quitting reports whether the game has requested exit.
func (c *Console) Quitting() bool {
	return c.quitting
}

var _ core.Console = (*Console)(nil)
