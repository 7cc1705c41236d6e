package brickball

import (
	"math"

	"github.com/vovakirdan/brickball/internal/config"
	"github.com/vovakirdan/brickball/internal/core"
)

// viewport maps world coordinates onto the screen area inside the border.
type viewport struct {
	left, top     int
	width, height int
	field         config.FieldConfig
}

// newViewport reserves row 0 for the HUD and a one-cell border around the field.
func newViewport(screenW, screenH int, field config.FieldConfig) viewport {
	return viewport{
		left:   1,
		top:    2,
		width:  max(screenW-2, 1),
		height: max(screenH-3, 1),
		field:  field,
	}
}

func (v viewport) col(x float64) int {
	span := 2 * v.field.HalfWidth
	c := int(math.Floor((x + v.field.HalfWidth) / span * float64(v.width)))
	return v.left + core.Clamp(c, 0, v.width-1)
}

func (v viewport) row(y float64) int {
	span := v.field.Ceiling - v.field.DeathLine
	r := int(math.Floor((v.field.Ceiling - y) / span * float64(v.height)))
	return v.top + core.Clamp(r, 0, v.height-1)
}

// worldX returns the world x at the center of screen column c.
func (v viewport) worldX(c int) float64 {
	span := 2 * v.field.HalfWidth
	return (float64(c-v.left)+0.5)/float64(v.width)*span - v.field.HalfWidth
}

func screenColor(c Color) core.Color {
	switch c {
	case ColorRed:
		return core.ColorRed
	case ColorOrange:
		return core.ColorOrange
	case ColorYellow:
		return core.ColorYellow
	case ColorGreen:
		return core.ColorGreen
	case ColorBlue:
		return core.ColorBlue
	default:
		return core.ColorDefault
	}
}
