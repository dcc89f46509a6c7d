package core

// Key is a semantic key press, abstracted from physical keys.
// Drivers map their own key events onto it; games only see these values.
type Key int

const (
	KeyNone Key = iota
	KeyPlay     // P - start or restart a game
	KeyQuit     // Q - leave the program from a menu
	KeyFlap     // Space - upward impulse while playing
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyPlay:
		return "Play"
	case KeyQuit:
		return "Quit"
	case KeyFlap:
		return "Flap"
	default:
		return "Unknown"
	}
}
