package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickball/internal/audio"
	"github.com/vovakirdan/brickball/internal/audio/device"
	"github.com/vovakirdan/brickball/internal/config"
	"github.com/vovakirdan/brickball/internal/core"
	"github.com/vovakirdan/brickball/internal/games/brickball"
	"github.com/vovakirdan/brickball/internal/logging"
	"github.com/vovakirdan/brickball/internal/platform/tui"
	"github.com/vovakirdan/brickball/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a brickball session in this terminal.

Controls:
  Left/A, Right/D  - Move the paddle
  Mouse            - Paddle follows the pointer
  P/Esc            - Pause
  M                - Mute sound effects
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, wider paddle, slower ball
  normal - The configured values
  hard   - Fewer lives, narrower paddle, faster ball, shorter countdown

Examples:
  brickball play
  brickball play --difficulty easy
  brickball play --config ./my-brickball.yaml
  brickball play --seed 42 --mute`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Start with sound effects off")
}

// loadGameConfig loads the YAML config and applies the difficulty preset.
func loadGameConfig(path, difficulty string) (config.BrickballConfig, error) {
	preset, err := config.ParseDifficulty(difficulty)
	if err != nil {
		return config.BrickballConfig{}, err
	}
	cfg, err := config.LoadBrickball(path)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := loadGameConfig(flagConfig, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The TUI owns stdout, so logs go to a file
	logger, logCloser, err := logging.File("brickball", logging.FileOptions{
		Path:  flagLogFile,
		Level: flagLogLevel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger = logging.Discard()
	} else {
		defer logCloser.Close()
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	var sink audio.Sink
	if gameCfg.Audio.Enabled {
		spk, spkErr := device.Open(gameCfg.Audio.SampleRate)
		if spkErr != nil {
			logger.Warn("audio unavailable, playing muted", "error", spkErr)
		} else {
			sink = spk
			defer spk.Close()
		}
	}
	player := audio.NewPlayer(gameCfg.Audio, sink)
	if flagMute {
		player.SetMuted(true)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without high scores", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	game := brickball.New(brickball.Options{
		Config: &gameCfg,
		Sound:  player,
		Logger: logger,
	})

	runErr := tui.Run(game, runtime, tui.Options{
		Store:     store,
		SessionID: storage.NewSessionID(),
		Audio:     player,
		Logger:    logger,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("session failed", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}

	if final, ok := game.Handoff().FinalScore(); ok {
		fmt.Printf("Final score: %d\n", final)
	}
}
