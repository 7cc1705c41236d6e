package core

// Color is the foreground color of a screen cell. The platform layer maps
// each value to a terminal style.
type Color uint8

// Block colors come first, in row order from the top of the wall.
const (
	ColorDefault Color = iota
	ColorRed
	ColorOrange
	ColorYellow
	ColorGreen
	ColorBlue
	ColorWhite // Paddle
	ColorGray  // HUD labels
	ColorCyan  // Ball
)
