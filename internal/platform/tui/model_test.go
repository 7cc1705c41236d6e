package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/brickball/internal/config"
	"github.com/vovakirdan/brickball/internal/core"
	"github.com/vovakirdan/brickball/internal/games/brickball"
	"github.com/vovakirdan/brickball/internal/storage"
)

type fakeMuter struct {
	muted bool
	calls int
}

func (f *fakeMuter) SetMuted(m bool) { f.muted = m; f.calls++ }
func (f *fakeMuter) Muted() bool     { return f.muted }

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// newTestModel returns an initialized model for a one-life game with no countdown.
func newTestModel(t *testing.T, opts Options) (Model, *brickball.Game) {
	t.Helper()
	cfg := config.DefaultBrickballConfig()
	cfg.Gameplay.Lives = 1
	cfg.Gameplay.Countdown = 0
	game := brickball.New(brickball.Options{Config: &cfg})

	m := NewModel(game, testRuntime(), opts)
	if cmd := m.Init(); cmd == nil {
		t.Fatal("Init() should start the tick loop")
	}
	return m, game
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return nm, cmd
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for iter := 0; iter < n; iter++ {
		m, _ = send(t, m, TickMsg(time.Time{}))
	}
	return m
}

func TestModelKeyboardSteering(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m, keyHoldTicks)
	if x := game.Paddle().Position().X; x >= 0 {
		t.Fatalf("paddle x = %f after holding left, expected < 0", x)
	}

	// The hold expires without further presses
	x := game.Paddle().Position().X
	m = tick(t, m, 3)
	if got := game.Paddle().Position().X; got != x {
		t.Errorf("paddle kept moving after the hold expired: %f -> %f", x, got)
	}
}

func TestModelPointerSteering(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m, _ = send(t, m, tea.MouseMsg{X: 70, Y: 10, Action: tea.MouseActionMotion})
	tick(t, m, 30)

	if game.Paddle().Mode() != brickball.ControlPointer {
		t.Error("mouse motion should switch the paddle to pointer control")
	}
	if x := game.Paddle().Position().X; x <= 0 {
		t.Errorf("paddle x = %f, expected it to follow the pointer right", x)
	}
}

func TestModelMuteToggle(t *testing.T) {
	muter := &fakeMuter{}
	m, _ := newTestModel(t, Options{Audio: muter})

	m, _ = send(t, m, runeKey("m"))
	if !muter.muted {
		t.Error("m should mute")
	}
	send(t, m, runeKey("m"))
	if muter.muted || muter.calls != 2 {
		t.Errorf("second m should unmute, muted=%v calls=%d", muter.muted, muter.calls)
	}
}

func TestModelMuteWithoutAudio(t *testing.T) {
	m, _ := newTestModel(t, Options{})
	send(t, m, runeKey("m")) // must not panic
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, Options{})

	m, cmd := send(t, m, runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelPause(t *testing.T) {
	m, game := newTestModel(t, Options{})

	m, _ = send(t, m, runeKey("p"))
	m = tick(t, m, 1)
	if !game.State().Paused {
		t.Fatal("p should pause the game")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should show PAUSED")
	}
}

func TestModelGameOverSavesHandoff(t *testing.T) {
	store := openStore(t)
	m, game := newTestModel(t, Options{Store: store, SessionID: "session-1"})

	m = tick(t, m, 1)
	if game.Simulation().Phase() != brickball.PhaseActive {
		t.Fatalf("phase = %v after one tick with no countdown, expected Active", game.Simulation().Phase())
	}

	game.Simulation().OnContact(brickball.Contact{Surface: brickball.SurfaceDeath, Normal: core.V(0, 1)})
	if game.Scene() != brickball.SceneGameOver {
		t.Fatal("losing the only life should request the game-over scene")
	}

	m = tick(t, m, 3)
	over, ok := m.GameOver()
	if !ok {
		t.Fatal("model should show the game-over scene")
	}
	if over.Final() != 0 || over.Rank() != 1 {
		t.Errorf("scene final=%d rank=%d, expected 0 and 1", over.Final(), over.Rank())
	}

	entries, err := store.SessionScores("session-1")
	if err != nil {
		t.Fatalf("SessionScores() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("saved %d rows over several ticks, expected exactly 1", len(entries))
	}
	if entries[0].GameID != brickball.ID {
		t.Errorf("saved game id %q, expected %q", entries[0].GameID, brickball.ID)
	}

	if !strings.Contains(m.View(), "G A M E   O V E R") {
		t.Error("view should render the game-over scene")
	}

	m, _ = send(t, m, runeKey("r"))
	if _, ok := m.GameOver(); ok {
		t.Error("restart should leave the game-over scene")
	}
	if game.Simulation().Phase() == brickball.PhaseOver {
		t.Error("restart should begin a new session")
	}
}

func TestModelGameOverWithoutStore(t *testing.T) {
	m, game := newTestModel(t, Options{})
	m = tick(t, m, 1)
	game.Simulation().OnContact(brickball.Contact{Surface: brickball.SurfaceDeath, Normal: core.V(0, 1)})
	m = tick(t, m, 1)

	over, ok := m.GameOver()
	if !ok {
		t.Fatal("scene should show without a store")
	}
	if over.Rank() != 0 {
		t.Errorf("rank = %d without a store, expected 0", over.Rank())
	}
	if !strings.Contains(m.View(), "No scores recorded.") {
		t.Error("scene without scores should say so")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m, game := newTestModel(t, Options{})
	m = tick(t, m, 5)
	before := game.Snapshot().Tick

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.Snapshot().Tick != before {
		t.Error("resize should not reset the session")
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 30 {
		t.Errorf("view has %d lines after resize, expected 30", lines)
	}
}

func TestGameOverModelPlaces(t *testing.T) {
	tests := []struct {
		score    int
		expected []string
	}{
		{0, []string{" ", " ", " ", "0"}},
		{7, []string{" ", " ", " ", "7"}},
		{307, []string{" ", "3", "0", "7"}},
		{4521, []string{"4", "5", "2", "1"}},
		{12345, []string{"2", "3", "4", "5"}},
	}

	for _, tc := range tests {
		h := &brickball.Handoff{}
		h.Store(tc.score)
		m := NewGameOverModel(h, nil, 0, 80, 24)
		got := m.Places()
		if strings.Join(got, ",") != strings.Join(tc.expected, ",") {
			t.Errorf("score %d places = %q, expected %q", tc.score, got, tc.expected)
		}
	}
}

func TestGameOverModelRank(t *testing.T) {
	now := time.Now()
	scores := []storage.ScoreEntry{
		{ID: 4, Score: 120, CreatedAt: now},
		{ID: 9, Score: 80, CreatedAt: now},
		{ID: 2, Score: 15, CreatedAt: now},
	}
	h := &brickball.Handoff{}
	h.Store(80)

	m := NewGameOverModel(h, scores, 9, 80, 24)
	if m.Rank() != 2 {
		t.Errorf("Rank() = %d, expected 2", m.Rank())
	}
	if !strings.Contains(m.View(), "120") {
		t.Error("table should list the top score")
	}

	m.SetSize(60, 20)
	if m.Rank() != 2 {
		t.Error("resize should keep the rank")
	}
}
