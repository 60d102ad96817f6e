package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"uniplayer/internal/history"
	"uniplayer/internal/ui"
)

var (
	flagClearHistory bool
	flagReplay       bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded plays",
	Args:  cobra.NoArgs,
	RunE:  historyRun,
}

func init() {
	historyCmd.Flags().BoolVar(&flagClearHistory, "clear", false, "Delete all history entries")
	historyCmd.Flags().BoolVarP(&flagReplay, "replay", "r", false, "Pick an entry with fzf and play it again")
}

func historyRun(cmd *cobra.Command, args []string) error {
	if flagClearHistory {
		if err := history.Clear(); err != nil {
			return fmt.Errorf("clearing history: %w", err)
		}
		debugf("history cleared")
		return nil
	}

	entries, err := history.Load()
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if !flagReplay {
		return printHistory(cmd.OutOrStdout(), entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No history entries found.")
		return nil
	}

	// Newest first in the picker
	reversed := make([]history.Entry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}

	idx, err := ui.Select("History", history.FormatForDisplay(reversed))
	if err != nil {
		return err
	}

	selected := reversed[idx]
	debugf("replaying: %s", selected.File)
	return playRun(cmd, []string{selected.File})
}
