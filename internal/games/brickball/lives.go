package brickball

// LivesTracker counts the balls the player has left.
type LivesTracker struct {
	remaining int
	display   NumberDisplay
}

// NewLivesTracker creates a tracker and shows the starting count.
func NewLivesTracker(lives int, display NumberDisplay) *LivesTracker {
	if display == nil {
		display = NopDisplay{}
	}
	l := &LivesTracker{remaining: max(lives, 0), display: display}
	l.refresh()
	return l
}

// LoseLife takes one life and reports whether the game is over.
// Once no lives remain it changes nothing and keeps reporting true.
func (l *LivesTracker) LoseLife() bool {
	if l.remaining == 0 {
		return true
	}
	l.remaining--
	l.refresh()
	return l.remaining == 0
}

// Remaining returns the lives left.
func (l *LivesTracker) Remaining() int { return l.remaining }

func (l *LivesTracker) refresh() {
	if l.remaining > 0 {
		l.display.DisplayNumber(l.remaining)
		return
	}
	l.display.DisplayNone()
}
