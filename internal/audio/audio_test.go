package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/brickball/internal/config"
	"github.com/vovakirdan/brickball/internal/games/brickball"
)

const testRate = beep.SampleRate(44100)

// drain streams s to the end and returns the sample count and peak amplitude.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for iter := 0; iter < 10000; iter++ {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
			peak = math.Max(peak, math.Abs(buf[i][1]))
		}
		total += n
		if !ok {
			if s.Err() != nil {
				t.Fatalf("stream error: %v", s.Err())
			}
			return total, peak
		}
	}
	t.Fatal("stream never drained")
	return 0, 0
}

type recordingSink struct {
	played []beep.Streamer
}

func (s *recordingSink) Play(st beep.Streamer) { s.played = append(s.played, st) }

func TestOscillatorLength(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			osc := NewOscillator(440, 100*time.Millisecond, tc.wave, testRate)
			n, peak := drain(t, osc)
			if n != testRate.N(100*time.Millisecond) {
				t.Errorf("streamed %d samples, expected %d", n, testRate.N(100*time.Millisecond))
			}
			if peak > 1 {
				t.Errorf("peak %f out of range", peak)
			}
		})
	}
}

func TestSquareWaveValues(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, testRate)
	buf := make([][2]float64, 200)
	n, _ := osc.Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("square sample %d = %f, expected ±1", i, v)
		}
	}
}

func TestEnvelopeShape(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), d, 10*time.Millisecond, 10*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d samples, expected %d", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("attack should start silent, got %f", buf[0][0])
	}
	if mid := buf[n/2][0]; mid != 1 {
		t.Errorf("sustain should be full volume, got %f", mid)
	}
	if last := buf[n-1][0]; last <= 0 || last > 0.01 {
		t.Errorf("release should fade out, got %f", last)
	}
}

func TestEffectsDrain(t *testing.T) {
	effects := map[string]beep.Streamer{
		"begin round":    EventSound(brickball.EventBeginRound, testRate),
		"ball lost":      EventSound(brickball.EventBallLost, testRate),
		"red block":      BlockSound(brickball.ColorRed, testRate),
		"blue block":     BlockSound(brickball.ColorBlue, testRate),
		"boundary":       BounceSound(brickball.BounceBoundary, testRate),
		"paddle bounces": BounceSound(brickball.BouncePaddle, testRate),
	}

	for name, s := range effects {
		t.Run(name, func(t *testing.T) {
			n, peak := drain(t, s)
			if n == 0 {
				t.Error("effect produced no samples")
			}
			if n > testRate.N(time.Second) {
				t.Errorf("effect runs %d samples, expected under a second", n)
			}
			if peak > 1+1e-9 {
				t.Errorf("effect clips: peak %f", peak)
			}
		})
	}

	if EventSound(brickball.Event(42), testRate) != nil {
		t.Error("unknown event should have no sound")
	}
	if BlockSound(brickball.Color(42), testRate) != nil {
		t.Error("unknown color should have no sound")
	}
}

func TestPlayerSendsToSink(t *testing.T) {
	sink := &recordingSink{}
	cfg := config.DefaultBrickballConfig().Audio
	p := NewPlayer(cfg, sink)

	p.PlayEvent(brickball.EventBeginRound)
	p.PlayBlockDestroyed(brickball.ColorGreen)
	p.PlayBounce(brickball.BouncePaddle)
	p.PlayEvent(brickball.Event(42))

	if len(sink.played) != 3 {
		t.Fatalf("sink got %d streamers, expected 3", len(sink.played))
	}
	for _, s := range sink.played {
		if _, peak := drain(t, s); peak > cfg.MasterVolume+1e-9 {
			t.Errorf("peak %f exceeds master volume %f", peak, cfg.MasterVolume)
		}
	}
}

func TestPlayerMuted(t *testing.T) {
	sink := &recordingSink{}
	cfg := config.DefaultBrickballConfig().Audio
	p := NewPlayer(cfg, sink)

	p.SetMuted(true)
	p.PlayBounce(brickball.BounceBoundary)
	if len(sink.played) != 0 {
		t.Error("muted player should not play")
	}

	p.SetMuted(false)
	p.PlayBounce(brickball.BounceBoundary)
	if len(sink.played) != 1 {
		t.Error("unmuted player should play")
	}

	cfg.Enabled = false
	if !NewPlayer(cfg, sink).Muted() {
		t.Error("disabled audio should start muted")
	}

	nosink := NewPlayer(config.DefaultBrickballConfig().Audio, nil)
	nosink.SetMuted(false)
	if !nosink.Muted() {
		t.Error("player without a sink should stay muted")
	}
	nosink.PlayEvent(brickball.EventBallLost)
}
