package brickball

import "github.com/vovakirdan/brickball/internal/core"

// ColliderKey identifies a collider across ticks.
type ColliderKey struct {
	Surface Surface
	Index   int // Brick index for blocks, wall number otherwise
}

// Collider is a box the ball can touch this tick.
type Collider struct {
	Key   ColliderKey
	Box   core.Box
	Block Block
}

// ContactTracker turns per-tick overlap tests into contact events. A contact
// fires when the ball starts touching a collider. While the overlap lasts it
// fires again only if the ball is heading back into the surface, so a
// reflection swallowed by the lockout is retried on a later tick.
type ContactTracker struct {
	active map[ColliderKey]bool
	next   map[ColliderKey]bool
}

// NewContactTracker creates an empty tracker.
func NewContactTracker() *ContactTracker {
	return &ContactTracker{
		active: make(map[ColliderKey]bool),
		next:   make(map[ColliderKey]bool),
	}
}

// Detect tests the ball against colliders and returns contacts in collider
// order. Colliders missing from the list count as separated.
func (t *ContactTracker) Detect(center, dir core.Vec, radius float64, colliders []Collider) []Contact {
	var contacts []Contact
	clear(t.next)
	for _, c := range colliders {
		n, hit := c.Box.CircleContact(center, radius)
		if !hit {
			continue
		}
		t.next[c.Key] = true
		if t.active[c.Key] && dir.Dot(n) >= 0 {
			continue
		}
		contacts = append(contacts, Contact{Surface: c.Key.Surface, Normal: n, Block: c.Block})
	}
	t.active, t.next = t.next, t.active
	return contacts
}

// IsTouching reports whether the ball overlapped key on the last Detect.
func (t *ContactTracker) IsTouching(key ColliderKey) bool {
	return t.active[key]
}

// ClearAll forgets every ongoing contact.
func (t *ContactTracker) ClearAll() {
	clear(t.active)
}
