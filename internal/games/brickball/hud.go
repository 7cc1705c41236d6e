package brickball

import "strconv"

// digitDisplay is a NumberDisplay the game renders itself.
type digitDisplay struct {
	value   int
	visible bool
}

func (d *digitDisplay) DisplayNumber(n int) {
	d.value = n
	d.visible = true
}

func (d *digitDisplay) DisplayNone() {
	d.visible = false
}

// text returns the shown number, or a single space when blank.
func (d *digitDisplay) text() string {
	if !d.visible {
		return " "
	}
	return strconv.Itoa(d.value)
}

// Shown returns the displayed number and whether anything is shown.
func (d *digitDisplay) Shown() (int, bool) {
	return d.value, d.visible
}
