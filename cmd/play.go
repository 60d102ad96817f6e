package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"uniplayer/internal/history"
	"uniplayer/internal/media"
	"uniplayer/internal/player"
	"uniplayer/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play [file...]",
	Short: "Play one or more media files",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			// Prompt for a file name via fzf
			raw, err := ui.Input("File")
			if err != nil {
				return fmt.Errorf("no file provided: %w", err)
			}
			args = []string{raw}
		}
		return playRun(cmd, args)
	},
}

// playResult is the outcome of playing a single file.
type playResult struct {
	File      string `json:"file"`
	Name      string `json:"name"`
	Extension string `json:"extension"`
	Route     string `json:"route"`
	Status    string `json:"status"`
	Output    string `json:"output,omitempty"`
	Error     string `json:"error,omitempty"`
}

// playRun plays every argument, even after a failure, and reports all
// failures together.
func playRun(cmd *cobra.Command, args []string) error {
	results := make([]playResult, 0, len(args))
	var errs []error

	for _, raw := range args {
		res, err := playFile(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", raw, err))
		}
		results = append(results, res)
	}

	if err := printResults(cmd.OutOrStdout(), results); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if cfg.History {
		if err := history.Append(cfg.HistoryLimit, historyEntries(results)...); err != nil {
			debugf("saving history failed: %v", err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d files failed: %w", len(errs), len(args), errors.Join(errs...))
	}
	return nil
}

// playFile plays raw through a UniversalPlayer.
func playFile(raw string) (playResult, error) {
	f := media.NewFile(raw)
	route := player.RouteOf(f)
	debugf("playing %q (name: %q, extension: %q, route: %s)", raw, f.Name(), f.Extension(), route)

	res := playResult{
		File:      raw,
		Name:      f.Name(),
		Extension: f.Extension(),
		Route:     route.String(),
	}

	out, err := player.NewUniversalPlayer(f).Play()
	if err != nil {
		res.Status = history.StatusFailed
		res.Error = err.Error()
		return res, err
	}

	res.Status = history.StatusOK
	res.Output = out
	return res, nil
}

func historyEntries(results []playResult) []history.Entry {
	now := time.Now()
	entries := make([]history.Entry, 0, len(results))
	for _, r := range results {
		result := r.Output
		if r.Status == history.StatusFailed {
			result = r.Error
		}
		entries = append(entries, history.Entry{
			Time:   now,
			File:   r.File,
			Route:  r.Route,
			Status: r.Status,
			Result: result,
		})
	}
	return entries
}
