package brickball

import "github.com/vovakirdan/brickball/internal/core"

// Event is a one-shot game sound cue.
type Event int

const (
	EventBeginRound Event = iota
	EventBallLost
)

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventBeginRound:
		return "begin_round"
	case EventBallLost:
		return "ball_lost"
	default:
		return "unknown"
	}
}

// Bounce is the sound family for non-block reflections.
type Bounce int

const (
	BounceBoundary Bounce = iota
	BouncePaddle
)

// String returns the bounce name.
func (b Bounce) String() string {
	if b == BouncePaddle {
		return "paddle"
	}
	return "boundary"
}

// Scene identifies a scene the game can ask the host to show.
type Scene int

const (
	SceneNone Scene = iota
	SceneGameOver
)

// NumberDisplay shows a single number or nothing.
type NumberDisplay interface {
	DisplayNumber(n int)
	DisplayNone()
}

// SoundPlayer plays game sounds. Calls must not block the tick.
type SoundPlayer interface {
	PlayEvent(e Event)
	PlayBlockDestroyed(c Color)
	PlayBounce(b Bounce)
}

// SceneLoader switches to another scene.
type SceneLoader interface {
	LoadScene(s Scene)
}

// Block is a destroyable block the ball touched.
type Block interface {
	Color() Color
	Destroy()
}

// PaddleSource reports the paddle position.
type PaddleSource interface {
	Position() core.Vec
}

// BoardSpawner lays out a fresh full board.
type BoardSpawner interface {
	SpawnBoard()
}

// BallReturner puts a free ball back above the paddle.
type BallReturner interface {
	ReturnBall()
}

// NopDisplay discards everything.
type NopDisplay struct{}

func (NopDisplay) DisplayNumber(int) {}
func (NopDisplay) DisplayNone()      {}

// NopSound plays nothing.
type NopSound struct{}

func (NopSound) PlayEvent(Event)          {}
func (NopSound) PlayBlockDestroyed(Color) {}
func (NopSound) PlayBounce(Bounce)        {}

type nopScenes struct{}

func (nopScenes) LoadScene(Scene) {}
