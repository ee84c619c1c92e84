package chicken

// Snapshot contains the observable game state for logging and tests.
type Snapshot struct {
	Tick      uint64
	State     string
	Level     int
	Score     int
	Collected int
	Quota     int
	Eligible  int
	Active    int

	BallX, BallY         float64
	BallVX, BallVY       float64
	PlatformX, PlatformY float64
	PlatformSpeed        float64
	MeteorY, MeteorVY    float64

	// Each active eligible egg is 3 values: X, Y, Gravity
	EggData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	eggData := make([]float64, 0, g.eggs.Eligible()*3)
	for i := 0; i < g.eggs.Eligible(); i++ {
		egg := g.eggs.Slot(i)
		if !egg.Active {
			continue
		}
		eggData = append(eggData, egg.X, egg.Y, egg.Gravity)
	}

	return Snapshot{
		Tick:          g.tick,
		State:         g.state.String(),
		Level:         g.level,
		Score:         g.score,
		Collected:     g.collected,
		Quota:         g.quota,
		Eligible:      g.eggs.Eligible(),
		Active:        g.eggs.CountActive(),
		BallX:         g.ball.X,
		BallY:         g.ball.Y,
		BallVX:        g.ball.VX,
		BallVY:        g.ball.VY,
		PlatformX:     g.platform.X,
		PlatformY:     g.platform.Y,
		PlatformSpeed: g.platform.VX,
		MeteorY:       g.meteor.Y,
		MeteorVY:      g.meteor.VY,
		EggData:       eggData,
	}
}
