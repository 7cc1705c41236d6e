package brickball

// Color identifies a block row color.
type Color int

const (
	ColorRed Color = iota
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
)

// RowColors lists block colors from the top row down.
var RowColors = []Color{ColorRed, ColorOrange, ColorYellow, ColorGreen, ColorBlue}

// String returns the color name.
func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorOrange:
		return "orange"
	case ColorYellow:
		return "yellow"
	case ColorGreen:
		return "green"
	case ColorBlue:
		return "blue"
	default:
		return "unknown"
	}
}

// Points returns the score awarded for destroying a block of this color.
func (c Color) Points() int {
	switch c {
	case ColorRed:
		return 10
	case ColorOrange:
		return 7
	case ColorYellow:
		return 5
	case ColorGreen:
		return 3
	case ColorBlue:
		return 1
	default:
		return 0
	}
}

// Warps reports whether hitting this color switches the ball to warp speed.
func (c Color) Warps() bool {
	return c == ColorRed || c == ColorOrange
}

// Surface is the kind of object the ball touched.
type Surface int

const (
	SurfaceUnknown Surface = iota
	SurfaceRed
	SurfaceOrange
	SurfaceYellow
	SurfaceGreen
	SurfaceBlue
	SurfaceSide
	SurfaceTop
	SurfacePaddle
	SurfaceDeath
)

// SurfaceOf returns the block surface for a color.
func SurfaceOf(c Color) Surface {
	switch c {
	case ColorRed:
		return SurfaceRed
	case ColorOrange:
		return SurfaceOrange
	case ColorYellow:
		return SurfaceYellow
	case ColorGreen:
		return SurfaceGreen
	case ColorBlue:
		return SurfaceBlue
	default:
		return SurfaceUnknown
	}
}

// String returns the surface name.
func (s Surface) String() string {
	switch s {
	case SurfaceRed, SurfaceOrange, SurfaceYellow, SurfaceGreen, SurfaceBlue:
		c, _ := s.BlockColor()
		return c.String()
	case SurfaceSide:
		return "side"
	case SurfaceTop:
		return "top"
	case SurfacePaddle:
		return "paddle"
	case SurfaceDeath:
		return "death"
	default:
		return "unknown"
	}
}

// BlockColor returns the block color for block surfaces.
func (s Surface) BlockColor() (Color, bool) {
	switch s {
	case SurfaceRed:
		return ColorRed, true
	case SurfaceOrange:
		return ColorOrange, true
	case SurfaceYellow:
		return ColorYellow, true
	case SurfaceGreen:
		return ColorGreen, true
	case SurfaceBlue:
		return ColorBlue, true
	default:
		return 0, false
	}
}

// Rule describes how the ball responds to touching a surface.
type Rule struct {
	Reflect  bool   // Bounce the ball off the contact normal
	Destroys bool   // Surface is a block: score it, destroy it, count it
	Warp     bool   // Switch to warp speed
	Spin     bool   // Add paddle spin after a reflection
	LoseLife bool   // Surface ends the ball
	Bounce   Bounce // Sound for non-block bounces
}

// Rule returns the response rule for s. Unknown surfaces report false.
func (s Surface) Rule() (Rule, bool) {
	if c, ok := s.BlockColor(); ok {
		return Rule{Reflect: true, Destroys: true, Warp: c.Warps()}, true
	}
	switch s {
	case SurfaceSide, SurfaceTop:
		return Rule{Reflect: true, Bounce: BounceBoundary}, true
	case SurfacePaddle:
		return Rule{Reflect: true, Spin: true, Bounce: BouncePaddle}, true
	case SurfaceDeath:
		return Rule{LoseLife: true}, true
	default:
		return Rule{}, false
	}
}
