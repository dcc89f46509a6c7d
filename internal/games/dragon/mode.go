package dragon

// Mode is the current screen of the game.
type Mode int

const (
	ModeMenu    Mode = iota // Welcome screen, waiting for play or quit
	ModePlaying             // A session is running
	ModeEnd                 // The dragon died; shows the final score
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeEnd:
		return "end"
	default:
		return "unknown"
	}
}
