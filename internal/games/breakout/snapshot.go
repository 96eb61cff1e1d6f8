package breakout

import "math"

// Snapshot contains the complete game state for replay and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    uint64
	Phase   int
	Level   int
	Score   int
	PaddleX float64

	// Ball state (each ball is 7 values: X, Y, VX, VY, BaseSpeed, Moving, Visible)
	BallCount int
	BallData  []float64

	// Block state, indexed by block ID: 1 = destroyed
	BlockData []int

	// RNG state for ball placement
	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	balls := g.sim.Balls()
	ballData := make([]float64, 0, len(balls)*7)
	for _, b := range balls {
		ballData = append(ballData, b.X, b.Y, b.VX, b.VY, b.BaseSpeed, boolFloat(b.Moving), boolFloat(b.Visible))
	}

	blockData := make([]int, g.grid.Total())
	for id := range blockData {
		if g.grid.Destroyed(id) {
			blockData[id] = 1
		}
	}

	st := g.sim.State()
	return Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Phase:     int(st.Phase),
		Level:     st.Level,
		Score:     st.Score,
		PaddleX:   g.sim.Paddle().X,
		BallCount: len(balls),
		BallData:  ballData,
		BlockData: blockData,
		RNGState:  g.sim.RNG().State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Phase)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + uint64(snap.BallCount) //#nosec G115 -- hash computation

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BlockData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	h = h*31 + snap.RNGState

	return h
}

func boolFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
