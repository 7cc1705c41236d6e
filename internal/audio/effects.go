package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/brickball/internal/games/brickball"
)

// Effect durations
const (
	bounceDuration = 40 * time.Millisecond
	blockDuration  = 90 * time.Millisecond
	noteDuration   = 120 * time.Millisecond
	lostDuration   = 180 * time.Millisecond
)

// blockPitch maps block colors to a descending pentatonic run, red highest.
var blockPitch = map[brickball.Color]float64{
	brickball.ColorRed:    1046.50, // C6
	brickball.ColorOrange: 880.00,  // A5
	brickball.ColorYellow: 783.99,  // G5
	brickball.ColorGreen:  659.25,  // E5
	brickball.ColorBlue:   587.33,  // D5
}

// EventSound returns the cue for a round event.
func EventSound(e brickball.Event, rate beep.SampleRate) beep.Streamer {
	switch e {
	case brickball.EventBeginRound:
		// Rising fifth
		return beep.Seq(
			tone(523.25, noteDuration, WaveSquare, rate),
			tone(783.99, noteDuration, WaveSquare, rate),
		)
	case brickball.EventBallLost:
		// Falling saw run with a noise tail
		return beep.Seq(
			tone(392.00, lostDuration, WaveSaw, rate),
			tone(311.13, lostDuration, WaveSaw, rate),
			newVolume(tone(0, lostDuration, WaveNoise, rate), 0.4),
		)
	default:
		return nil
	}
}

// BlockSound returns the chime for destroying a block of color c.
func BlockSound(c brickball.Color, rate beep.SampleRate) beep.Streamer {
	freq, ok := blockPitch[c]
	if !ok {
		return nil
	}
	return beep.Mix(
		newVolume(tone(freq, blockDuration, WaveSine, rate), 0.7),
		newVolume(tone(freq*2, blockDuration, WaveSine, rate), 0.3),
	)
}

// BounceSound returns the click for a wall or paddle bounce.
func BounceSound(b brickball.Bounce, rate beep.SampleRate) beep.Streamer {
	if b == brickball.BouncePaddle {
		return newVolume(tone(329.63, bounceDuration, WaveSquare, rate), 0.6)
	}
	return newVolume(tone(220.00, bounceDuration, WaveSquare, rate), 0.5)
}
