package brickball

import "math"

// Snapshot contains the complete game state for replay and determinism checks.
// Floats are stored in thousandths so the hash is stable.
type Snapshot struct {
	Tick      uint64
	Phase     int
	Paused    bool
	Score     int
	Lives     int
	PaddleX   int
	BallX     int
	BallY     int
	DirX      int
	DirY      int
	Speed     int
	Locked    bool
	Countdown int
	Destroyed int
	Respawns  int

	// One entry per brick in row-major order: 1 alive, 0 destroyed
	BrickData []int

	RNGState uint64
}

func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	ball := g.sim.Ball()
	bricks := make([]int, len(g.board.Bricks()))
	for i, br := range g.board.Bricks() {
		if br.Alive() {
			bricks[i] = 1
		}
	}

	return Snapshot{
		Tick:      uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Phase:     int(g.sim.Phase()),
		Paused:    g.paused,
		Score:     g.score.Current(),
		Lives:     g.lives.Remaining(),
		PaddleX:   milli(g.paddle.Position().X),
		BallX:     milli(ball.Position.X),
		BallY:     milli(ball.Position.Y),
		DirX:      milli(ball.Direction.X),
		DirY:      milli(ball.Direction.Y),
		Speed:     milli(ball.Speed),
		Locked:    ball.Locked(),
		Countdown: milli(g.round.Remaining()),
		Destroyed: g.blocks.Destroyed(),
		Respawns:  g.blocks.Respawns(),
		BrickData: bricks,
		RNGState:  g.sim.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, v := range []int{
		snap.Phase, b2i(snap.Paused), snap.Score, snap.Lives, snap.PaddleX,
		snap.BallX, snap.BallY, snap.DirX, snap.DirY, snap.Speed,
		b2i(snap.Locked), snap.Countdown, snap.Destroyed, snap.Respawns,
	} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.BrickData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	return h*31 + snap.RNGState
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
