package brickball

import (
	"github.com/vovakirdan/brickball/internal/config"
	"github.com/vovakirdan/brickball/internal/core"
)

// Phase is the ball's place in the round lifecycle.
type Phase int

const (
	PhaseCountdown Phase = iota // Parked on the paddle, round timer running
	PhaseActive                 // Free flight
	PhaseOver                   // No lives left; nothing moves
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhaseActive:
		return "active"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Ball is the ball's kinematic state.
type Ball struct {
	Position  core.Vec
	Direction core.Vec // Unit length after every launch and reflection
	Speed     float64
	Attached  bool // Parked on the paddle

	locked   bool
	cooldown float64
}

// Locked reports whether reflections are currently suppressed.
func (b Ball) Locked() bool { return b.locked }

// Cooldown returns the seconds left on the reflection lockout.
func (b Ball) Cooldown() float64 { return b.cooldown }

// Params are the numeric tunables of the simulation.
type Params struct {
	NormalSpeed        float64
	WarpSpeed          float64
	ReflectionCooldown float64
	SpinPower          float64
	RenormalizeSpin    bool
	LaunchSpread       float64  // Launch x is drawn from [-spread, spread], y is 1
	Offset             core.Vec // Parked ball position relative to the paddle
}

// ParamsFromConfig extracts simulation params from a game config.
func ParamsFromConfig(cfg config.BrickballConfig) Params {
	return Params{
		NormalSpeed:        cfg.Physics.NormalSpeed,
		WarpSpeed:          cfg.Physics.WarpSpeed,
		ReflectionCooldown: cfg.Physics.ReflectionCooldown,
		SpinPower:          cfg.Physics.SpinPower,
		RenormalizeSpin:    cfg.Physics.RenormalizeSpin,
		LaunchSpread:       cfg.Physics.LaunchSpread,
		Offset:             core.V(0, cfg.Paddle.BallOffset),
	}
}

// Contact is one collision reported by the driver.
type Contact struct {
	Surface Surface
	Normal  core.Vec // Points from the surface toward the ball; need not be unit length
	Block   Block    // Set for block surfaces
}

// Deps wires the simulation to its collaborators. Paddle, Round, Blocks,
// Lives and Score are required; the rest default to no-ops.
type Deps struct {
	Paddle  PaddleSource
	Motion  *MotionTracker
	Round   *RoundTimer
	Blocks  *BlockTracker
	Lives   *LivesTracker
	Score   *ScoreCounter
	Handoff *Handoff
	Sound   SoundPlayer
	Scenes  SceneLoader
	RNG     *SimpleRNG
}

// Simulation owns the ball and applies the round rules to it.
type Simulation struct {
	params Params
	ball   Ball
	phase  Phase

	paddle  PaddleSource
	motion  *MotionTracker
	round   *RoundTimer
	blocks  *BlockTracker
	lives   *LivesTracker
	score   *ScoreCounter
	handoff *Handoff
	sound   SoundPlayer
	scenes  SceneLoader
	rng     *SimpleRNG
}

// NewSimulation creates a simulation with the ball parked on the paddle
// and the first countdown pending.
func NewSimulation(p Params, d Deps) *Simulation {
	s := &Simulation{
		params:  p,
		paddle:  d.Paddle,
		motion:  d.Motion,
		round:   d.Round,
		blocks:  d.Blocks,
		lives:   d.Lives,
		score:   d.Score,
		handoff: d.Handoff,
		sound:   d.Sound,
		scenes:  d.Scenes,
		rng:     d.RNG,
	}
	if s.motion == nil {
		s.motion = NewMotionTracker(s.paddle.Position())
	}
	if s.handoff == nil {
		s.handoff = &Handoff{}
	}
	if s.sound == nil {
		s.sound = NopSound{}
	}
	if s.scenes == nil {
		s.scenes = nopScenes{}
	}
	if s.rng == nil {
		s.rng = NewSimpleRNG(1)
	}
	s.ball.Speed = p.NormalSpeed
	s.attach()
	return s
}

// Ball returns a copy of the ball state.
func (s *Simulation) Ball() Ball { return s.ball }

// Phase returns the lifecycle phase.
func (s *Simulation) Phase() Phase { return s.phase }

// Handoff returns the record the final score is written to.
func (s *Simulation) Handoff() *Handoff { return s.handoff }

// Tick advances the simulation by dt seconds.
func (s *Simulation) Tick(dt float64) {
	switch s.phase {
	case PhaseOver:
		return
	case PhaseCountdown:
		s.ball.Position = s.parkedPosition()
		if s.round.Advance(dt) {
			s.release()
		}
		return
	}

	if s.ball.locked {
		s.ball.cooldown -= dt
		if s.ball.cooldown <= timeEpsilon {
			s.ball.cooldown = 0
			s.ball.locked = false
		}
	}
	s.ball.Position = s.ball.Position.Add(s.ball.Direction.Scale(s.ball.Speed * dt))
}

// OnContact applies the response for touching c.Surface. Contacts outside
// free flight and contacts with unknown surfaces are ignored.
func (s *Simulation) OnContact(c Contact) {
	if s.phase != PhaseActive {
		return
	}
	rule, ok := c.Surface.Rule()
	if !ok {
		return
	}
	if rule.LoseLife {
		s.loseBall()
		return
	}

	reflected := rule.Reflect && s.reflect(c.Normal)

	if rule.Destroys {
		color, _ := c.Surface.BlockColor()
		s.sound.PlayBlockDestroyed(color)
		s.score.Add(color.Points())
		if c.Block != nil {
			c.Block.Destroy()
		}
		s.blocks.NotifyDestroyed(s)
	} else {
		s.sound.PlayBounce(rule.Bounce)
	}

	if rule.Warp {
		s.ball.Speed = s.params.WarpSpeed
	}
	if rule.Spin && reflected {
		s.applySpin()
	}
}

// ReturnBall moves the free ball back above the paddle with a fresh launch
// direction. The round keeps going.
func (s *Simulation) ReturnBall() {
	if s.phase == PhaseOver {
		return
	}
	s.ball.Position = s.parkedPosition()
	s.ball.Direction = s.launchDirection()
}

func (s *Simulation) reflect(n core.Vec) bool {
	if s.ball.locked {
		return false
	}
	n = n.Normalize()
	if n.IsZero() {
		return false
	}
	s.ball.locked = true
	s.ball.cooldown = s.params.ReflectionCooldown
	s.ball.Direction = s.ball.Direction.Reflect(n)
	return true
}

func (s *Simulation) applySpin() {
	switch s.motion.Direction() {
	case DirectionRight:
		s.ball.Direction.X += s.params.SpinPower
	case DirectionLeft:
		s.ball.Direction.X -= s.params.SpinPower
	default:
		return
	}
	if s.params.RenormalizeSpin {
		s.ball.Direction = s.ball.Direction.Normalize()
	}
}

func (s *Simulation) release() {
	s.ball.Attached = false
	s.ball.Speed = s.params.NormalSpeed
	s.ball.Direction = s.launchDirection()
	s.phase = PhaseActive
	s.sound.PlayEvent(EventBeginRound)
}

func (s *Simulation) loseBall() {
	s.sound.PlayEvent(EventBallLost)
	if s.lives.LoseLife() {
		s.score.Save(s.handoff)
		s.phase = PhaseOver
		s.scenes.LoadScene(SceneGameOver)
		return
	}
	s.round.Reset()
	s.attach()
}

func (s *Simulation) attach() {
	s.phase = PhaseCountdown
	s.ball.Attached = true
	s.ball.locked = false
	s.ball.cooldown = 0
	s.ball.Position = s.parkedPosition()
}

func (s *Simulation) parkedPosition() core.Vec {
	return s.paddle.Position().Add(s.params.Offset)
}

func (s *Simulation) launchDirection() core.Vec {
	spread := s.params.LaunchSpread
	return core.V(s.rng.Range(-spread, spread), 1).Normalize()
}
