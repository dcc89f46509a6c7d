package core

// RuntimeConfig contains configuration passed to drivers at startup.
type RuntimeConfig struct {
	ScreenW  int   // Play field width in characters
	ScreenH  int   // Play field height in characters
	TickRate int   // Display frames per second
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig for the fixed 80x50 grid.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  50,
		TickRate: 60,
		Seed:     0, // 0 means use current time
	}
}
