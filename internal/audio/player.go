package audio

import (
	"sync"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/brickball/internal/config"
	"github.com/vovakirdan/brickball/internal/games/brickball"
)

// Sink plays finished streamers, typically by mixing them into a device.
type Sink interface {
	Play(s beep.Streamer)
}

// Player implements brickball.SoundPlayer by synthesizing each cue and
// passing it to a Sink. It is safe for concurrent use.
type Player struct {
	mu     sync.Mutex
	sink   Sink
	rate   beep.SampleRate
	volume float64
	muted  bool
}

var _ brickball.SoundPlayer = (*Player)(nil)

// NewPlayer creates a player. A nil sink or disabled audio yields a muted player.
func NewPlayer(cfg config.AudioConfig, sink Sink) *Player {
	return &Player{
		sink:   sink,
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.MasterVolume,
		muted:  !cfg.Enabled || sink == nil,
	}
}

// SetMuted turns output on or off.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted || p.sink == nil
}

// Muted reports whether output is off.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

func (p *Player) PlayEvent(e brickball.Event) {
	p.play(func() beep.Streamer { return EventSound(e, p.rate) })
}

func (p *Player) PlayBlockDestroyed(c brickball.Color) {
	p.play(func() beep.Streamer { return BlockSound(c, p.rate) })
}

func (p *Player) PlayBounce(b brickball.Bounce) {
	p.play(func() beep.Streamer { return BounceSound(b, p.rate) })
}

func (p *Player) play(build func() beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.muted {
		return
	}
	s := build()
	if s == nil {
		return
	}
	p.sink.Play(newVolume(s, p.volume))
}
