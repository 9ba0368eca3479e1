package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/led-arcade/internal/platform/tui"
	"github.com/vovakirdan/led-arcade/internal/registry"
	"github.com/vovakirdan/led-arcade/internal/session"
	"github.com/vovakirdan/led-arcade/internal/storage"
)

var (
	flagReplayLimit  int
	flagDeleteReplay bool
	flagPlainFrame   bool
)

var replaysCmd = &cobra.Command{
	Use:   "replays [game]",
	Short: "List recorded sessions",
	Long: `List the most recent replays, newest first. Sessions are recorded with
'arcade play --record' or 'arcade menu --record'.

Examples:
  arcade replays
  arcade replays tetris --limit 5`,
	Args: cobra.MaximumNArgs(1),
	Run:  runReplays,
}

var replayCmd = &cobra.Command{
	Use:   "replay <id>",
	Short: "Re-run a recorded session and verify it",
	Long: `Re-run a replay headless with its recorded seed, configuration and
input, check that it ends on the recorded frame and print that frame.

Examples:
  arcade replay 3
  arcade replay 3 --plain
  arcade replay 3 --delete`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replaysCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "Maximum number of replays to list")
	replayCmd.Flags().BoolVar(&flagDeleteReplay, "delete", false, "Delete the replay instead of running it")
	replayCmd.Flags().BoolVar(&flagPlainFrame, "plain", false, "Print the final frame as palette letters")
}

func runReplays(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if gameID != session.Menu && !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	replays, err := store.Replays(gameID, flagReplayLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving replays: %v\n", err)
		os.Exit(1)
	}

	if len(replays) == 0 {
		fmt.Println("No replays recorded yet.")
		fmt.Println()
		fmt.Println("Record one with 'arcade play <game> --record'.")
		return
	}

	fmt.Printf("  %-5s  %-8s  %-10s  %-8s  %-6s  %s\n", "ID", "Game", "Difficulty", "Ticks", "Score", "Date")
	fmt.Printf("  %-5s  %-8s  %-10s  %-8s  %-6s  %s\n", "--", "----", "----------", "-----", "-----", "----")
	for _, r := range replays {
		fmt.Printf("  %-5d  %-8s  %-10s  %-8d  %-6d  %s\n",
			r.ID, r.GameID, r.Difficulty, r.Ticks, r.Score, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runReplay(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid replay ID %q\n", args[0])
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagDeleteReplay {
		if err := store.DeleteReplay(id); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Deleted replay %d.\n", id)
		return
	}

	r, err := store.Replay(id)
	if errors.Is(err, storage.ErrNotFound) {
		fmt.Fprintf(os.Stderr, "Error: no replay %d. Run 'arcade replays' to list them.\n", id)
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frame, verr := session.Verify(ctx, r)
	if verr != nil && !errors.Is(verr, session.ErrMismatch) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", verr)
		os.Exit(1)
	}

	fmt.Printf("Replay %d: %s, seed %d, %s, %d ticks at %d/s, score %d\n",
		r.ID, r.GameID, r.Seed, r.Difficulty, r.Ticks, r.TickRate, r.Score)
	fmt.Println()
	if flagPlainFrame || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println(frame.String())
	} else {
		fmt.Println(tui.NewRenderer(1).Render(&frame))
	}
	fmt.Println()

	if verr != nil {
		fmt.Fprintf(os.Stderr, "FAILED: %v\n", verr)
		os.Exit(1)
	}
	fmt.Printf("OK: final frame matches (%016x)\n", r.FrameHash)
}
