package dragon

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Mode      Mode
	Score     int
	PlayerX   int
	PlayerY   int
	Velocity  float64
	ObstacleX int
	GapY      int
	GapSize   int
	FrameTime float64
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Mode:      g.mode,
		Score:     g.score,
		PlayerX:   g.player.X,
		PlayerY:   g.player.Y,
		Velocity:  g.player.Velocity,
		ObstacleX: g.obstacle.X,
		GapY:      g.obstacle.GapY,
		GapSize:   g.obstacle.Size,
		FrameTime: g.frameTime,
	}
}
