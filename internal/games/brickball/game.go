package brickball

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickball/internal/config"
	"github.com/vovakirdan/brickball/internal/core"
)

// ID is the game identifier used for score storage.
const ID = "brickball"

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
)

const (
	minScreenW = 30
	minScreenH = 14
)

// Options configure a Game. Zero values pick defaults.
type Options struct {
	Config *config.BrickballConfig
	Sound  SoundPlayer
	Logger *log.Logger
}

// Game drives the simulation from input frames and renders it.
type Game struct {
	cfg     config.BrickballConfig
	runtime core.RuntimeConfig
	sound   SoundPlayer
	logger  *log.Logger

	sim      *Simulation
	paddle   *Paddle
	motion   *MotionTracker
	round    *RoundTimer
	blocks   *BlockTracker
	lives    *LivesTracker
	score    *ScoreCounter
	board    *Board
	contacts *ContactTracker

	countdown   digitDisplay
	livesShown  digitDisplay
	scoreDigits [ScorePlaces]digitDisplay

	scene     Scene
	paused    bool
	tickCount int
	view      viewport

	screenTooSmall bool
}

// New creates a game. Call Reset before stepping it.
func New(opts Options) *Game {
	g := &Game{
		cfg:    config.DefaultBrickballConfig(),
		sound:  opts.Sound,
		logger: opts.Logger,
	}
	if opts.Config != nil {
		g.cfg = *opts.Config
	}
	if g.sound == nil {
		g.sound = NopSound{}
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	return g
}

// Reset starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.view = newViewport(runtime.ScreenW, runtime.ScreenH, g.cfg.Field)
	g.screenTooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	g.scene = SceneNone
	g.paused = false
	g.tickCount = 0
	g.countdown = digitDisplay{}
	g.livesShown = digitDisplay{}
	g.scoreDigits = [ScorePlaces]digitDisplay{}

	g.paddle = NewPaddle(g.cfg.Paddle)
	g.motion = NewMotionTracker(g.paddle.Position())
	g.board = NewBoard(g.cfg.Field)
	g.blocks = NewBlockTracker(g.cfg.Field.BlockTotal(), g.board)
	g.round = NewRoundTimer(g.cfg.Gameplay.Countdown, &g.countdown)
	g.lives = NewLivesTracker(g.cfg.Gameplay.Lives, &g.livesShown)
	g.score = NewScoreCounter(&g.scoreDigits[0], &g.scoreDigits[1], &g.scoreDigits[2], &g.scoreDigits[3])
	g.contacts = NewContactTracker()

	g.sim = NewSimulation(ParamsFromConfig(g.cfg), Deps{
		Paddle:  g.paddle,
		Motion:  g.motion,
		Round:   g.round,
		Blocks:  g.blocks,
		Lives:   g.lives,
		Score:   g.score,
		Handoff: &Handoff{},
		Sound:   g.sound,
		Scenes:  g,
		RNG:     NewSimpleRNG(runtime.Seed),
	})

	g.logger.Debug("session reset", "seed", runtime.Seed, "lives", g.cfg.Gameplay.Lives, "blocks", g.blocks.Total())
}

// Resize adapts the view to a new terminal size without touching the session.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.view = newViewport(w, h, g.cfg.Field)
	g.screenTooSmall = w < minScreenW || h < minScreenH
}

// LoadScene records a scene request from the simulation.
func (g *Game) LoadScene(s Scene) {
	g.scene = s
	if s == SceneGameOver {
		final, _ := g.sim.Handoff().FinalScore()
		g.logger.Info("game over", "score", final, "ticks", g.tickCount)
	}
}

// Scene returns the scene the game asked for, or SceneNone.
func (g *Game) Scene() Scene { return g.scene }

// Handoff returns the final score record.
func (g *Game) Handoff() *Handoff { return g.sim.Handoff() }

// Simulation exposes the ball simulation.
func (g *Game) Simulation() *Simulation { return g.sim }

// Board returns the block layout.
func (g *Game) Board() *Board { return g.board }

// Paddle returns the player's paddle.
func (g *Game) Paddle() *Paddle { return g.paddle }

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	over := g.sim.Phase() == PhaseOver
	if in.Has(core.ActionRestart) && over {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) && !over {
		g.paused = !g.paused
	}
	if g.paused || over {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	dt := g.runtime.Dt()

	var pointerX float64
	if in.HasPointer {
		pointerX = g.view.worldX(in.Pointer)
	}
	g.paddle.Steer(in.Has(core.ActionLeft), in.Has(core.ActionRight), pointerX, in.HasPointer, dt)
	g.motion.Observe(g.paddle.Position())

	phase := g.sim.Phase()
	lives := g.lives.Remaining()
	respawns := g.blocks.Respawns()

	g.sim.Tick(dt)
	if g.sim.Phase() == PhaseActive {
		ball := g.sim.Ball()
		for _, c := range g.contacts.Detect(ball.Position, ball.Direction, g.cfg.Physics.BallRadius, g.colliders()) {
			g.sim.OnContact(c)
		}
	} else {
		g.contacts.ClearAll()
	}

	if phase == PhaseCountdown && g.sim.Phase() == PhaseActive {
		g.logger.Debug("ball released", "tick", g.tickCount)
	}
	if g.lives.Remaining() < lives {
		g.logger.Info("ball lost", "lives", g.lives.Remaining(), "score", g.score.Current())
	}
	if g.blocks.Respawns() > respawns {
		g.logger.Info("board refilled", "respawns", g.blocks.Respawns(), "score", g.score.Current())
	}

	return core.StepResult{State: g.State()}
}

// Wall indices for collider keys.
const (
	wallLeft = iota
	wallRight
	wallTop
	wallDeath
)

// colliders lists everything the ball can touch this tick: walls, the
// paddle and the live bricks, in that order.
func (g *Game) colliders() []Collider {
	f := g.cfg.Field
	height := f.Ceiling - f.DeathLine + 4
	midY := (f.Ceiling + f.DeathLine) / 2
	width := 2*f.HalfWidth + 2

	out := make([]Collider, 0, 5+len(g.board.Bricks()))
	out = append(out,
		Collider{Key: ColliderKey{SurfaceSide, wallLeft}, Box: core.NewBox(core.V(-f.HalfWidth-0.5, midY), 1, height)},
		Collider{Key: ColliderKey{SurfaceSide, wallRight}, Box: core.NewBox(core.V(f.HalfWidth+0.5, midY), 1, height)},
		Collider{Key: ColliderKey{SurfaceTop, wallTop}, Box: core.NewBox(core.V(0, f.Ceiling+0.5), width, 1)},
		Collider{Key: ColliderKey{SurfaceDeath, wallDeath}, Box: core.NewBox(core.V(0, f.DeathLine-5), width, 10)},
		Collider{Key: ColliderKey{SurfacePaddle, 0}, Box: g.paddle.Box()},
	)
	for i, br := range g.board.Bricks() {
		if !br.Alive() {
			continue
		}
		out = append(out, Collider{Key: ColliderKey{SurfaceOf(br.Color()), i}, Box: br.Box(), Block: br})
	}
	return out
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(0, 1, dst.Width(), dst.Height()-1))
	g.renderBricks(dst)
	g.renderPaddle(dst)
	g.renderBall(dst)
	g.renderOverlay(dst)
}

// renderHUD draws the score places and remaining balls.
func (g *Game) renderHUD(dst *core.Screen) {
	var digits string
	for i := ScorePlaces - 1; i >= 0; i-- {
		digits += g.scoreDigits[i].text()
	}
	dst.DrawTextColored(1, 0, "SCORE ", core.ColorGray)
	dst.DrawText(7, 0, digits)

	balls := g.livesShown.text()
	x := dst.Width() - len("BALLS ") - len(balls) - 1
	dst.DrawTextColored(x, 0, "BALLS ", core.ColorGray)
	dst.DrawText(x+len("BALLS "), 0, balls)
}

func (g *Game) renderBricks(dst *core.Screen) {
	for _, br := range g.board.Bricks() {
		if !br.Alive() {
			continue
		}
		box := br.Box()
		c0 := g.view.col(box.MinX())
		c1 := g.view.col(box.MaxX())
		dst.DrawHLine(c0, g.view.row(box.Center.Y), max(c1-c0, 1), BrickChar, screenColor(br.Color()))
	}
}

func (g *Game) renderPaddle(dst *core.Screen) {
	box := g.paddle.Box()
	c0 := g.view.col(box.MinX())
	c1 := g.view.col(box.MaxX())
	dst.DrawHLine(c0, g.view.row(box.Center.Y), c1-c0+1, PaddleChar, core.ColorWhite)
}

func (g *Game) renderBall(dst *core.Screen) {
	p := g.sim.Ball().Position
	dst.SetColored(g.view.col(p.X), g.view.row(p.Y), BallChar, core.ColorCyan)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.sim.Phase() == PhaseOver:
		final, _ := g.Handoff().FinalScore()
		g.drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", final))
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case g.sim.Phase() == PhaseCountdown:
		if n, ok := g.countdown.Shown(); ok {
			dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("- %d -", n))
		}
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score.Current(),
		Lives:    g.lives.Remaining(),
		GameOver: g.sim.Phase() == PhaseOver,
		Paused:   g.paused,
	}
}
