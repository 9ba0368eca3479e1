// arcade runs the 8x32 LED arcade: Tetris, Snake, Tanks, Races and Life on
// a terminal, over SSH or mirrored to a real LED strip.
//
// Usage:
//
//	arcade list              - List available games
//	arcade menu              - Start at the title menu
//	arcade play <game>       - Start a game directly
//	arcade serve             - Start SSH server for remote play
//	arcade scores [game]     - Show high scores
//	arcade replays [game]    - List recorded sessions
//	arcade replay <id>       - Re-run a recorded session and verify it
//	arcade config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Override the tick rate (default from config: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/arcade.db)
//	--config <path>      - Use a custom arcade.yaml
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/session"
	"github.com/vovakirdan/led-arcade/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       uint64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "LED Arcade - five games on an 8x32 RGB matrix",
	Long: `LED Arcade runs Tetris, Snake, Tanks, Races and Life on an 8x32 RGB
LED matrix. The terminal shows the same matrix; an attached LED strip can
mirror it.

Available commands:
  list     - Show all available games
  menu     - Start at the title menu
  play     - Start a specific game directly
  serve    - Start SSH server for remote play
  scores   - View high scores
  replays  - List recorded sessions
  replay   - Re-run a recorded session
  config   - Print the effective configuration

Examples:
  arcade list
  arcade menu
  arcade play tetris --difficulty hard
  arcade play races --record
  arcade replay 3
  arcade serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	pf.Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores and replays database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom arcade.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogFile, "log", "", "Write logs to this file (terminal sessions log nowhere by default)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug messages")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(replaysCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the configuration and applies the global flags to it.
func loadConfig() (config.Config, config.DifficultyPreset, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.LoadWithPreset(flagConfig, preset)
	if err != nil {
		return cfg, preset, err
	}
	if flagFPS != 0 {
		cfg.TickRate = flagFPS
		if err := cfg.Validate(); err != nil {
			return cfg, preset, err
		}
	}
	return cfg, preset, nil
}

// loadSetup builds the session setup for game ("" starts at the menu).
func loadSetup(game string) (session.Setup, error) {
	cfg, preset, err := loadConfig()
	if err != nil {
		return session.Setup{}, err
	}
	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return session.Setup{
		Config:     cfg,
		Difficulty: preset,
		Seed:       seed,
		Game:       game,
	}, nil
}

// newLogger returns a logger writing to w, or to --log when it is set.
// The returned function closes the log file.
func newLogger(w io.Writer, prefix string) (*log.Logger, func(), error) {
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
