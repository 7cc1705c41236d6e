// brickball is a ball-and-paddle brick game for the terminal.
//
// Usage:
//
//	brickball play           - Play a session in this terminal
//	brickball serve          - Start SSH server for remote play
//	brickball scores         - Show high scores
//	brickball last           - Print the last saved final score
//	brickball config         - Print the default configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.brickball/scores.db)
//	--log-file <path>  - Set log file for play sessions (default: ~/.brickball/brickball.log)
//	--log-level <lvl>  - Set log level: debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickball/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickball",
	Short: "Brickball - knock out rows of bricks in your terminal",
	Long: `Brickball is a ball-and-paddle game played in the terminal.
Steer the paddle, keep the ball in play and clear the wall of bricks.
Red and orange bricks speed the ball up; clearing the wall refills it.

Available commands:
  play     - Play a session in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  last     - Print the last saved final score
  config   - Print the default configuration

Examples:
  brickball play
  brickball play --difficulty hard --mute
  brickball serve --ssh :2222
  brickball scores`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickball/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", logging.DefaultFile, "Path to the play session log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(lastCmd)
	rootCmd.AddCommand(configCmd)
}
