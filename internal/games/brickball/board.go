package brickball

import (
	"github.com/vovakirdan/brickball/internal/config"
	"github.com/vovakirdan/brickball/internal/core"
)

// Brick is one block on the board.
type Brick struct {
	color Color
	box   core.Box
	alive bool
	row   int
	col   int
}

// Color returns the brick's row color.
func (b *Brick) Color() Color { return b.color }

// Destroy removes the brick from play.
func (b *Brick) Destroy() { b.alive = false }

// Alive reports whether the brick is still in play.
func (b *Brick) Alive() bool { return b.alive }

// Box returns the brick's collision box.
func (b *Brick) Box() core.Box { return b.box }

// Row returns the brick's row, 0 at the top.
func (b *Brick) Row() int { return b.row }

// Col returns the brick's column, 0 at the left.
func (b *Brick) Col() int { return b.col }

// Board holds the block layout: rows of bricks colored top-down by RowColors,
// centered horizontally on the field.
type Board struct {
	bricks []*Brick
	spawns int
}

// NewBoard lays out a full board from the field config.
func NewBoard(cfg config.FieldConfig) *Board {
	b := &Board{bricks: make([]*Brick, 0, cfg.BlockTotal())}
	pitchX := cfg.BlockWidth + cfg.BlockGap
	pitchY := cfg.BlockHeight + cfg.BlockGap
	left := -float64(cfg.BlockCols-1) * pitchX / 2

	for row := 0; row < cfg.BlockRows; row++ {
		color := RowColors[row%len(RowColors)]
		y := cfg.BlockTop - float64(row)*pitchY
		for col := 0; col < cfg.BlockCols; col++ {
			x := left + float64(col)*pitchX
			b.bricks = append(b.bricks, &Brick{
				color: color,
				box:   core.NewBox(core.V(x, y), cfg.BlockWidth, cfg.BlockHeight),
				alive: true,
				row:   row,
				col:   col,
			})
		}
	}
	return b
}

// SpawnBoard brings every brick back.
func (b *Board) SpawnBoard() {
	for _, br := range b.bricks {
		br.alive = true
	}
	b.spawns++
}

// Bricks returns every brick, alive or not, in row-major order.
func (b *Board) Bricks() []*Brick { return b.bricks }

// Alive counts the bricks still in play.
func (b *Board) Alive() int {
	n := 0
	for _, br := range b.bricks {
		if br.alive {
			n++
		}
	}
	return n
}

// Spawns returns how many times the board has been refilled.
func (b *Board) Spawns() int { return b.spawns }
