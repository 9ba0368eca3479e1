package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/dispatch"
	"github.com/vovakirdan/led-arcade/internal/platform"
	"github.com/vovakirdan/led-arcade/internal/platform/ledstrip"
	"github.com/vovakirdan/led-arcade/internal/platform/tui"
	"github.com/vovakirdan/led-arcade/internal/registry"
	"github.com/vovakirdan/led-arcade/internal/session"
	"github.com/vovakirdan/led-arcade/internal/storage"
)

var (
	flagRecord   bool
	flagLED      string
	flagAdalight bool
)

const controlsHelp = `Controls:
  Arrows/WASD     - Stick
  Space/Enter     - Stick button (select, rotate, fire)
  Z/J, X/K        - A and B buttons
  Esc/Backspace   - Back to the menu
  ?               - Toggle help
  Q/Ctrl+C        - Quit`

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game. When it ends the arcade returns to
the title menu.

` + controlsHelp + `

Difficulty options:
  easy   - Slower start, more lives
  normal - Tuning from the config file
  hard   - Faster start, fewer lives
  fixed  - No speed-up while playing

Examples:
  arcade play tetris
  arcade play snake --difficulty easy
  arcade play races --record
  arcade play tanks --led /dev/ttyUSB0 --adalight`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd} {
		c.Flags().BoolVar(&flagRecord, "record", false, "Save the session as a replay when it ends")
		c.Flags().StringVar(&flagLED, "led", "", "Mirror frames to an LED strip bridge (serial device or file)")
		c.Flags().BoolVar(&flagAdalight, "adalight", false, "Prefix LED frames with an Adalight header")
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	if err := runSession(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runSession runs a terminal session starting at game ("" for the menu).
func runSession(gameID string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the arcade needs a terminal; use 'arcade replay' for headless runs")
	}

	setup, err := loadSetup(gameID)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard, "arcade")
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - the arcade still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	var mirror platform.Display
	if flagLED != "" {
		strip, err := openStrip(flagLED, setup.Config.LED)
		if err != nil {
			return err
		}
		defer func() {
			if err := strip.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: LED strip: %v\n", err)
			}
		}()
		mirror = strip
	}

	machine, err := setup.Machine(dispatch.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("session", "game", setup.GameID(), "seed", setup.Seed, "difficulty", setup.Difficulty, "config", setup.Config.Source)

	model, err := tui.Run(machine, tui.Options{
		TickRate:   setup.Config.TickRate,
		DeadZone:   setup.Config.DeadZone,
		Store:      store,
		Difficulty: string(setup.Difficulty),
		Mirror:     mirror,
		Record:     flagRecord,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("running arcade: %w", err)
	}

	if flagRecord {
		return saveReplay(store, setup, model)
	}
	return nil
}

func openStrip(path string, cfg config.LEDConfig) (*ledstrip.Strip, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open LED strip: %w", err)
	}
	return ledstrip.New(f, ledstrip.Options{
		Brightness: uint8(cfg.Brightness),
		Serpentine: cfg.Serpentine,
		Adalight:   flagAdalight,
	}), nil
}

func saveReplay(store *storage.Store, setup session.Setup, model tui.Model) error {
	if store == nil {
		return fmt.Errorf("cannot save replay without a database")
	}
	r, err := setup.Replay(model.Scheduler(), model.Recorder().Samples())
	if err != nil {
		return err
	}
	id, err := store.SaveReplay(r)
	if err != nil {
		return err
	}
	fmt.Printf("Saved replay %d: %s, %d ticks, score %d\n", id, r.GameID, r.Ticks, r.Score)
	fmt.Printf("Run 'arcade replay %d' to verify it.\n", id)
	return nil
}
