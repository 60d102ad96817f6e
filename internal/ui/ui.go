// Package ui drives fzf to pick a history entry or read a file name.
package ui

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ErrCancelled is returned when the user aborts fzf.
var ErrCancelled = errors.New("selection cancelled")

// fzf exit codes
const (
	exitNoMatch   = 1
	exitInterrupt = 130
)

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// runFzf feeds stdin to fzf and returns what it printed.
// A no-match exit is reported as empty output, not an error.
func runFzf(stdin string, args ...string) (string, error) {
	bin, err := lookPath("fzf")
	if err != nil {
		return "", fmt.Errorf("fzf not found in PATH: %w", err)
	}

	var stdout bytes.Buffer
	cmd := exec.Command(bin, args...)
	cmd.Stdin = strings.NewReader(stdin)
	cmd.Stdout = &stdout
	cmd.Stderr = os.Stderr

	err = cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr) && exitErr.ExitCode() == exitInterrupt:
		return "", ErrCancelled
	case errors.As(err, &exitErr) && exitErr.ExitCode() == exitNoMatch:
		// --print-query still writes the query on no match
	default:
		return "", fmt.Errorf("fzf failed: %w", err)
	}
	return stdout.String(), nil
}

// Select shows items in fzf and returns the index of the one picked.
func Select(prompt string, items []string) (int, error) {
	if len(items) == 0 {
		return -1, fmt.Errorf("no items to select from")
	}

	var lines strings.Builder
	for i, item := range items {
		fmt.Fprintf(&lines, "%d\t%s\n", i, item)
	}

	out, err := runFzf(lines.String(),
		"--prompt", prompt+" > ",
		"--height", "40%",
		"--reverse",
		"--with-nth", "2..",
		"--delimiter", "\t",
		"--no-multi",
		"--cycle",
	)
	if err != nil {
		return -1, err
	}
	return parseSelection(out, len(items))
}

// parseSelection reads the index column back out of a picked line.
func parseSelection(out string, n int) (int, error) {
	line := strings.TrimSpace(out)
	if line == "" {
		return -1, fmt.Errorf("no selection made")
	}

	field, _, _ := strings.Cut(line, "\t")

	var idx int
	if _, err := fmt.Sscanf(field, "%d", &idx); err != nil {
		return -1, fmt.Errorf("parsing selection index: %w", err)
	}
	if idx < 0 || idx >= n {
		return -1, fmt.Errorf("selection index %d out of range", idx)
	}
	return idx, nil
}

// Input reads one line typed into fzf's query box.
func Input(prompt string) (string, error) {
	out, err := runFzf("",
		"--prompt", prompt+" > ",
		"--height", "10%",
		"--reverse",
		"--print-query",
		"--no-info",
	)
	if err != nil {
		return "", err
	}
	return parseQuery(out)
}

// parseQuery takes the first line of --print-query output.
func parseQuery(out string) (string, error) {
	query, _, _ := strings.Cut(out, "\n")
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("no input provided")
	}
	return query, nil
}
