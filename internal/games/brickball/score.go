package brickball

// ScorePlaces is how many digit displays the score uses (singles to thousands).
const ScorePlaces = 4

// Handoff carries the final score from the finished round to the
// game-over scene. It is written once.
type Handoff struct {
	finalScore int
	stored     bool
}

// Store records the final score. Later calls are ignored and return false.
func (h *Handoff) Store(score int) bool {
	if h.stored {
		return false
	}
	h.finalScore = score
	h.stored = true
	return true
}

// FinalScore returns the stored score and whether one was stored.
func (h *Handoff) FinalScore() (int, bool) {
	return h.finalScore, h.stored
}

// ScoreCounter accumulates points and mirrors them onto per-place displays.
type ScoreCounter struct {
	current int
	places  []NumberDisplay
}

// NewScoreCounter creates a counter. Displays are given singles first;
// missing places are filled with NopDisplay.
func NewScoreCounter(places ...NumberDisplay) *ScoreCounter {
	p := make([]NumberDisplay, ScorePlaces)
	for i := range p {
		p[i] = NopDisplay{}
		if i < len(places) && places[i] != nil {
			p[i] = places[i]
		}
	}
	s := &ScoreCounter{places: p}
	ShowDigits(0, s.places)
	return s
}

// Add increases the score and refreshes the displays.
func (s *ScoreCounter) Add(points int) {
	if points <= 0 {
		return
	}
	s.current += points
	ShowDigits(s.current, s.places)
}

// Current returns the score so far.
func (s *ScoreCounter) Current() int { return s.current }

// Save copies the score into the handoff record.
func (s *ScoreCounter) Save(h *Handoff) {
	if h != nil {
		h.Store(s.current)
	}
}

// Digits splits n into base-10 digits, least significant first.
// Digits(0) is empty.
func Digits(n int) []int {
	if n < 0 {
		n = -n
	}
	var d []int
	for n > 0 {
		d = append(d, n%10)
		n /= 10
	}
	return d
}

// ShowDigits writes value onto place displays, singles first. The singles
// place always shows a digit; higher places without a digit are blanked and
// digits beyond the last place are dropped.
func ShowDigits(value int, places []NumberDisplay) {
	d := Digits(value)
	for i, p := range places {
		switch {
		case i < len(d):
			p.DisplayNumber(d[i])
		case i == 0:
			p.DisplayNumber(0)
		default:
			p.DisplayNone()
		}
	}
}
