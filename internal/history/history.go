// Package history records play attempts in a TSV file.
// Uses atomic writes (temp+rename) to prevent data corruption.
package history

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"uniplayer/internal/config"
)

// TSV columns: time, file, route, status, result
const numColumns = 5

// Lines longer than this are dropped on load.
const maxLineBytes = 1 << 20

// Status values.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Entry is a single play attempt.
type Entry struct {
	Time   time.Time
	File   string // Raw file name as given
	Route  string // native, adapter or unsupported
	Status string // ok or failed
	Result string // Status line on success, error message on failure
}

// Load reads the history file and returns all entries, oldest first.
func Load() ([]Entry, error) {
	path, err := config.HistoryPath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening history: %w", err)
	}
	defer f.Close()

	var entries []Entry
	r := bufio.NewReader(f)

	for {
		line, err := r.ReadString('\n')
		if len(line) > 0 && len(line) <= maxLineBytes {
			if entry, ok := parseEntry(strings.TrimRight(line, "\r\n")); ok {
				entries = append(entries, entry)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading history: %w", err)
		}
	}

	return entries, nil
}

// Append adds entries to the history file, keeping only the newest limit
// entries when limit is positive.
func Append(limit int, added ...Entry) error {
	path, err := config.HistoryPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating history dir: %w", err)
	}

	entries, err := Load()
	if err != nil {
		return err
	}
	entries = append(entries, added...)

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}

	return writeAll(path, entries)
}

// Clear removes the history file.
func Clear() error {
	path, err := config.HistoryPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing history: %w", err)
	}
	return nil
}

// writeAll replaces the history file with entries via temp file + rename.
func writeAll(path string, entries []Entry) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "history-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	writer := bufio.NewWriter(tmpFile)
	for _, e := range entries {
		if _, err := writer.WriteString(formatLine(e) + "\n"); err != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
			return fmt.Errorf("writing history: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("flushing history: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming history file: %w", err)
	}

	return nil
}

// FormatForDisplay creates one display line per entry.
func FormatForDisplay(entries []Entry) []string {
	items := make([]string, 0, len(entries))
	for _, e := range entries {
		items = append(items, fmt.Sprintf("%s  %-11s %-6s %s: %s",
			e.Time.Local().Format("2006-01-02 15:04"), e.Route, e.Status, e.File, e.Result))
	}
	return items
}

// parseEntry skips blank, comment and malformed lines.
func parseEntry(line string) (Entry, bool) {
	if line == "" || strings.HasPrefix(line, "#") {
		return Entry{}, false
	}
	entry, err := parseLine(line)
	return entry, err == nil
}

// parseLine parses a TSV line into an Entry.
func parseLine(line string) (Entry, error) {
	fields := strings.Split(line, "\t")
	if len(fields) < numColumns {
		return Entry{}, fmt.Errorf("expected %d columns, got %d", numColumns, len(fields))
	}

	ts, err := time.Parse(time.RFC3339, fields[0])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing time: %w", err)
	}

	return Entry{
		Time:   ts,
		File:   fields[1],
		Route:  fields[2],
		Status: fields[3],
		Result: fields[4],
	}, nil
}

// formatLine converts an Entry to a TSV line.
func formatLine(e Entry) string {
	return strings.Join([]string{
		e.Time.UTC().Format(time.RFC3339),
		sanitize(e.File),
		sanitize(e.Route),
		sanitize(e.Status),
		sanitize(e.Result),
	}, "\t")
}

// sanitize keeps a field on one TSV cell.
func sanitize(s string) string {
	return strings.NewReplacer("\t", " ", "\r", " ", "\n", " ").Replace(s)
}
