package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neon-pong/internal/platform/tui"
	"github.com/vovakirdan/neon-pong/internal/storage"
)

var (
	flagLimit int
	flagPlain bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded matches",
	Long: `Show the most recent matches recorded with --db.

Examples:
  neonpong history --db ~/.neonpong/matches.db
  neonpong history --db ./matches.db --limit 50
  neonpong history --db ./matches.db --plain`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of matches to show")
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print matches as plain text")
}

func runHistory(_ *cobra.Command, _ []string) error {
	if flagDBPath == "" {
		return errors.New("history needs a database, pass --db")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagPlain {
		records, err := store.RecentMatches(flagLimit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No matches recorded yet.")
			return nil
		}
		fmt.Print(tui.FormatHistory(records))
		return nil
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return tui.RunHistory(store, flagLimit, width, height)
}
