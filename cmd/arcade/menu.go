package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade at the title menu",
	Long: `Start the arcade at the title menu.

Move the stick left and right to cycle through the game titles and press
the stick button to start one. After a game ends, or on Esc, the arcade
returns to the menu.

` + controlsHelp + `

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./arcade.db --record`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := runSession(""); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
