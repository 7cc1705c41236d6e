package brickball

import "github.com/vovakirdan/brickball/internal/core"

type fakePaddle struct {
	pos core.Vec
}

func (p *fakePaddle) Position() core.Vec { return p.pos }

type recordingDisplay struct {
	values []int // -1 marks DisplayNone
}

func (d *recordingDisplay) DisplayNumber(n int) { d.values = append(d.values, n) }
func (d *recordingDisplay) DisplayNone()        { d.values = append(d.values, -1) }

func (d *recordingDisplay) last() int {
	if len(d.values) == 0 {
		return -2
	}
	return d.values[len(d.values)-1]
}

type recordingSound struct {
	events  []Event
	blocks  []Color
	bounces []Bounce
}

func (s *recordingSound) PlayEvent(e Event)          { s.events = append(s.events, e) }
func (s *recordingSound) PlayBlockDestroyed(c Color) { s.blocks = append(s.blocks, c) }
func (s *recordingSound) PlayBounce(b Bounce)        { s.bounces = append(s.bounces, b) }

type recordingScenes struct {
	loads []Scene
}

func (s *recordingScenes) LoadScene(sc Scene) { s.loads = append(s.loads, sc) }

type fakeBlock struct {
	color     Color
	destroyed int
}

func (b *fakeBlock) Color() Color { return b.color }
func (b *fakeBlock) Destroy()     { b.destroyed++ }

type countingSpawner struct {
	spawns int
}

func (s *countingSpawner) SpawnBoard() { s.spawns++ }

type countingReturner struct {
	returns int
}

func (r *countingReturner) ReturnBall() { r.returns++ }

// rig is a simulation wired to recording collaborators.
type rig struct {
	sim     *Simulation
	paddle  *fakePaddle
	motion  *MotionTracker
	round   *RoundTimer
	blocks  *BlockTracker
	lives   *LivesTracker
	score   *ScoreCounter
	handoff *Handoff
	spawner *countingSpawner
	sound   *recordingSound
	scenes  *recordingScenes
	timer   *recordingDisplay
	livesD  *recordingDisplay
}

func testParams() Params {
	return Params{
		NormalSpeed:        3,
		WarpSpeed:          5,
		ReflectionCooldown: 0.01,
		SpinPower:          0.25,
		LaunchSpread:       1,
		Offset:             core.V(0, 0.5),
	}
}

func newRig(p Params, lives int, countdown float64) *rig {
	r := &rig{
		paddle:  &fakePaddle{pos: core.V(0, -4.5)},
		handoff: &Handoff{},
		spawner: &countingSpawner{},
		sound:   &recordingSound{},
		scenes:  &recordingScenes{},
		timer:   &recordingDisplay{},
		livesD:  &recordingDisplay{},
	}
	r.motion = NewMotionTracker(r.paddle.pos)
	r.round = NewRoundTimer(countdown, r.timer)
	r.blocks = NewBlockTracker(45, r.spawner)
	r.lives = NewLivesTracker(lives, r.livesD)
	r.score = NewScoreCounter()
	r.sim = NewSimulation(p, Deps{
		Paddle:  r.paddle,
		Motion:  r.motion,
		Round:   r.round,
		Blocks:  r.blocks,
		Lives:   r.lives,
		Score:   r.score,
		Handoff: r.handoff,
		Sound:   r.sound,
		Scenes:  r.scenes,
		RNG:     NewSimpleRNG(7),
	})
	return r
}

// activeRig returns a rig whose ball is already in free flight.
func activeRig(p Params, lives int) *rig {
	r := newRig(p, lives, 0.5)
	r.sim.Tick(0.5)
	return r
}
