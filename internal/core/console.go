package core

// Text colors used by Print and PrintCentered.
const (
	TextFg = ColorWhite
	TextBg = ColorBlack
)

// Console is the drawing and input surface a game is ticked against.
// A driver prepares it once per display frame; the game draws into it,
// reads at most one key, and may request exit. Drivers stop ticking
// after an exit request.
type Console interface {
	// Set draws a single glyph at (x, y).
	Set(x, y int, fg, bg Color, glyph rune)

	// Print draws text starting at (x, y) in the default text colors.
	Print(x, y int, text string)

	// PrintCentered draws text centered horizontally on row y.
	PrintCentered(y int, text string)

	// Cls clears the whole surface.
	Cls()

	// ClsBg clears the whole surface to the given background color.
	ClsBg(bg Color)

	// Key returns the key pressed since the previous tick, if any.
	Key() (Key, bool)

	// FrameTimeMs returns the milliseconds elapsed since the previous tick.
	FrameTimeMs() float64

	// Quit requests program exit.
	Quit()
}

// BufferConsole is a Console backed by an in-memory Screen.
// Used by the Bubble Tea driver, the headless simulator and tests.
type BufferConsole struct {
	screen      *Screen
	key         Key
	frameTimeMs float64
	quitting    bool
}

// NewBufferConsole creates a console with a width x height screen.
func NewBufferConsole(width, height int) *BufferConsole {
	return &BufferConsole{
		screen: NewScreen(width, height),
	}
}

// BeginFrame loads the input for the next tick.
// Pass KeyNone when no key was pressed.
func (c *BufferConsole) BeginFrame(elapsedMs float64, key Key) {
	c.frameTimeMs = elapsedMs
	c.key = key
}

// Screen returns the underlying screen buffer.
func (c *BufferConsole) Screen() *Screen {
	return c.screen
}

// Quitting reports whether the game has requested exit.
func (c *BufferConsole) Quitting() bool {
	return c.quitting
}

func (c *BufferConsole) Set(x, y int, fg, bg Color, glyph rune) {
	c.screen.SetCell(x, y, Cell{Rune: glyph, Fg: fg, Bg: bg})
}

func (c *BufferConsole) Print(x, y int, text string) {
	c.screen.DrawText(x, y, text, TextFg, TextBg)
}

func (c *BufferConsole) PrintCentered(y int, text string) {
	c.screen.DrawTextCentered(y, text, TextFg, TextBg)
}

func (c *BufferConsole) Cls() {
	c.screen.ClearBg(ColorBlack)
}

func (c *BufferConsole) ClsBg(bg Color) {
	c.screen.ClearBg(bg)
}

func (c *BufferConsole) Key() (Key, bool) {
	if c.key == KeyNone {
		return KeyNone, false
	}
	return c.key, true
}

func (c *BufferConsole) FrameTimeMs() float64 {
	return c.frameTimeMs
}

func (c *BufferConsole) Quit() {
	c.quitting = true
}

// Ensure BufferConsole implements Console
var _ Console = (*BufferConsole)(nil)
