package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickball/internal/core"
	"github.com/vovakirdan/brickball/internal/games/brickball"
	"github.com/vovakirdan/brickball/internal/logging"
	"github.com/vovakirdan/brickball/internal/storage"
)

// keyHoldTicks is how long a steering key stays held after its last press.
// Terminals only report repeats, not key releases.
const keyHoldTicks = 8

// Muter is the part of the audio player the UI can toggle.
type Muter interface {
	SetMuted(muted bool)
	Muted() bool
}

// Options configure a Model. Zero values disable the feature.
type Options struct {
	Store     *storage.Store
	SessionID string
	Audio     Muter
	Logger    *log.Logger
}

// Model is the Bubble Tea model for a brickball session.
type Model struct {
	game       *brickball.Game
	screen     *core.Screen
	store      *storage.Store
	sessionID  string
	audio      Muter
	logger     *log.Logger
	keys       KeyMap
	config     core.RuntimeConfig
	fixedSeed  bool
	inputFrame core.InputFrame
	steer      core.Action
	steerTicks int
	gameState  core.GameState
	over       *GameOverModel // Set while the game-over scene is shown
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *brickball.Game, cfg core.RuntimeConfig, opts Options) Model {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.SessionID == "" {
		opts.SessionID = storage.NewSessionID()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		sessionID:  opts.SessionID,
		audio:      opts.Audio,
		logger:     opts.Logger,
		keys:       DefaultKeyMap(),
		config:     cfg,
		fixedSeed:  fixed,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "session", m.sessionID, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion || msg.Action == tea.MouseActionPress {
			m.inputFrame.SetPointer(msg.X)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("session ended", "session", m.sessionID, "score", m.gameState.Score)
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.steer = action
		m.steerTicks = keyHoldTicks
	case core.ActionMute:
		if m.audio != nil {
			m.audio.SetMuted(!m.audio.Muted())
		}
	case core.ActionRestart:
		if m.over != nil {
			m.restart()
		}
	case core.ActionPause:
		m.inputFrame.Set(action)
	}

	if m.over != nil {
		next, cmd := m.over.Update(msg)
		m.over = &next
		return m, cmd
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)
	if m.over != nil {
		m.over.SetSize(msg.Width, msg.Height)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.steerTicks > 0 {
		m.inputFrame.Set(m.steer)
		m.steerTicks--
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if m.game.Scene() == brickball.SceneGameOver && m.over == nil {
		m.over = m.enterGameOver()
	}

	return m, tickCmd(m.config.TickRate)
}

// enterGameOver persists the handoff score once and builds the scene.
func (m *Model) enterGameOver() *GameOverModel {
	final, _ := m.game.Handoff().FinalScore()

	var (
		savedID int64
		scores  []storage.ScoreEntry
	)
	if m.store != nil {
		id, err := m.store.SaveScore(brickball.ID, m.sessionID, final)
		if err != nil {
			m.logger.Warn("could not save score", "error", err)
		} else {
			savedID = id
			m.logger.Info("score saved", "score", final, "session", m.sessionID)
		}
		if scores, err = m.store.TopScores(brickball.ID, topScoresLimit); err != nil {
			m.logger.Warn("could not load scores", "error", err)
		}
	}

	over := NewGameOverModel(m.game.Handoff(), scores, savedID, m.config.ScreenW, m.config.ScreenH)
	return &over
}

// restart begins a new session after game over.
func (m *Model) restart() {
	if !m.fixedSeed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.over = nil
	m.steerTicks = 0
	m.inputFrame.Clear()
	m.logger.Debug("session restarted", "seed", m.config.Seed)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".brickball", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", brickball.ID, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// GameOver returns the game-over scene if it is showing.
func (m Model) GameOver() (GameOverModel, bool) {
	if m.over == nil {
		return GameOverModel{}, false
	}
	return *m.over, true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.over != nil {
		return m.over.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local session.
func Run(game *brickball.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
