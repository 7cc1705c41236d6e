package brickball

import "github.com/vovakirdan/brickball/internal/core"

// Direction is the paddle's horizontal movement during the last tick.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// MotionTracker derives paddle direction from successive positions.
type MotionTracker struct {
	last core.Vec
	dir  Direction
}

// NewMotionTracker starts tracking from the given position.
func NewMotionTracker(start core.Vec) *MotionTracker {
	return &MotionTracker{last: start}
}

// Observe records this tick's paddle position and returns the direction.
func (m *MotionTracker) Observe(pos core.Vec) Direction {
	dx := pos.X - m.last.X
	switch {
	case dx > 0:
		m.dir = DirectionRight
	case dx < 0:
		m.dir = DirectionLeft
	default:
		m.dir = DirectionNone
	}
	m.last = pos
	return m.dir
}

// Direction returns the direction from the last observation.
func (m *MotionTracker) Direction() Direction { return m.dir }
