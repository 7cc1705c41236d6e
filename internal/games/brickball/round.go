package brickball

// timeEpsilon absorbs float drift when timers are advanced in many small steps.
const timeEpsilon = 1e-9

// RoundTimer counts down before the ball is released.
type RoundTimer struct {
	duration  float64
	remaining float64
	begun     bool
	display   NumberDisplay
}

// NewRoundTimer creates a timer that releases the ball after duration seconds.
func NewRoundTimer(duration float64, display NumberDisplay) *RoundTimer {
	if display == nil {
		display = NopDisplay{}
	}
	return &RoundTimer{duration: duration, remaining: duration, display: display}
}

// Advance moves the countdown forward by dt. It returns true exactly once,
// on the tick the countdown expires. While counting it shows the whole
// seconds left, rounded up.
func (r *RoundTimer) Advance(dt float64) bool {
	if r.begun {
		return false
	}
	r.remaining -= dt
	if r.remaining <= timeEpsilon {
		r.remaining = 0
		r.begun = true
		r.display.DisplayNone()
		return true
	}
	r.display.DisplayNumber(int(r.remaining) + 1)
	return false
}

// Reset restarts the countdown.
func (r *RoundTimer) Reset() {
	r.remaining = r.duration
	r.begun = false
}

// Remaining returns the seconds left before release.
func (r *RoundTimer) Remaining() float64 { return r.remaining }

// Begun reports whether the ball has been released this round.
func (r *RoundTimer) Begun() bool { return r.begun }
