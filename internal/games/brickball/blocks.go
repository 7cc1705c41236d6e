package brickball

// BlockTracker counts destroyed blocks and refills the board once every
// block of the current layout is gone.
type BlockTracker struct {
	total     int
	destroyed int
	respawns  int
	board     BoardSpawner
}

// NewBlockTracker creates a tracker for a board of total blocks.
func NewBlockTracker(total int, board BoardSpawner) *BlockTracker {
	return &BlockTracker{total: total, board: board}
}

// NotifyDestroyed records one destroyed block. When the count reaches the
// total it returns the ball, asks for a fresh board and starts over from
// zero. It reports whether a respawn happened.
func (b *BlockTracker) NotifyDestroyed(ball BallReturner) bool {
	b.destroyed++
	if b.destroyed < b.total {
		return false
	}

	// Reset before calling out so a re-entrant notify starts a fresh count.
	b.destroyed = 0
	b.respawns++
	if ball != nil {
		ball.ReturnBall()
	}
	if b.board != nil {
		b.board.SpawnBoard()
	}
	return true
}

// Destroyed returns the blocks destroyed since the last refill.
func (b *BlockTracker) Destroyed() int { return b.destroyed }

// Total returns the size of a full board.
func (b *BlockTracker) Total() int { return b.total }

// Respawns returns how many times the board has been refilled.
func (b *BlockTracker) Respawns() int { return b.respawns }
