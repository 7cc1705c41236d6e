package brickball

import (
	"github.com/vovakirdan/brickball/internal/config"
	"github.com/vovakirdan/brickball/internal/core"
)

// ControlMode selects how the paddle is steered.
type ControlMode int

const (
	ControlKeyboard ControlMode = iota
	ControlPointer
)

// Paddle is the player's paddle in world space.
type Paddle struct {
	pos      core.Vec
	cfg      config.PaddleConfig
	mode     ControlMode
	pointerX float64
}

// NewPaddle creates a centered paddle in keyboard mode.
func NewPaddle(cfg config.PaddleConfig) *Paddle {
	return &Paddle{pos: core.V(0, cfg.Y), cfg: cfg}
}

// Position returns the paddle center.
func (p *Paddle) Position() core.Vec { return p.pos }

// Box returns the paddle's collision box.
func (p *Paddle) Box() core.Box {
	return core.NewBox(p.pos, p.cfg.Width, p.cfg.Height)
}

// Mode returns the current control mode.
func (p *Paddle) Mode() ControlMode { return p.mode }

// SetX places the paddle, clamped to its travel range.
func (p *Paddle) SetX(x float64) {
	p.pos.X = core.ClampF(x, p.cfg.MinX, p.cfg.MaxX)
}

// Steer moves the paddle for one tick. A steering key switches to keyboard
// control; pointer movement switches to pointer control. Keyboard control
// eases toward one keyboard_speed step in the held direction, pointer
// control eases toward the pointer.
func (p *Paddle) Steer(left, right bool, pointerX float64, pointerMoved bool, dt float64) {
	if left || right {
		p.mode = ControlKeyboard
	} else if pointerMoved {
		p.mode = ControlPointer
	}
	if pointerMoved {
		p.pointerX = pointerX
	}

	switch p.mode {
	case ControlPointer:
		target := core.ClampF(p.pointerX, p.cfg.MinX, p.cfg.MaxX)
		p.pos.X = core.Lerp(p.pos.X, target, p.cfg.MouseSpeed*dt)
	default:
		step := 0.0
		if right {
			step += p.cfg.KeyboardSpeed
		}
		if left {
			step -= p.cfg.KeyboardSpeed
		}
		target := core.ClampF(p.pos.X+step, p.cfg.MinX, p.cfg.MaxX)
		p.pos.X = core.Lerp(p.pos.X, target, p.cfg.KeyboardSpeed*dt)
	}
}
