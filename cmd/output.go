package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"uniplayer/internal/config"
	"uniplayer/internal/history"
)

// styles renders status lines, plain when color is off.
type styles struct {
	enabled bool
	ok      lipgloss.Style
	failed  lipgloss.Style
	dim     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	s := styles{enabled: colorEnabled(w)}
	if !s.enabled {
		return s
	}

	r := lipgloss.NewRenderer(w)
	if cfg.Color == config.ColorAlways {
		r.SetColorProfile(termenv.ANSI256)
	}
	s.ok = r.NewStyle().Foreground(lipgloss.Color("42"))
	s.failed = r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	s.dim = r.NewStyle().Foreground(lipgloss.Color("244"))
	return s
}

func (s styles) render(st lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return st.Render(text)
}

// colorEnabled resolves the color mode against w.
func colorEnabled(w io.Writer) bool {
	switch cfg.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printResults(w io.Writer, results []playResult) error {
	if cfg.Output == config.OutputJSON {
		return writeJSON(w, results)
	}

	s := newStyles(w)
	for _, r := range results {
		var err error
		if r.Status == history.StatusOK {
			_, err = fmt.Fprintln(w, s.render(s.ok, r.Output))
		} else {
			_, err = fmt.Fprintf(w, "%s %s\n", s.render(s.failed, r.File+":"), r.Error)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func printFormats(w io.Writer, infos []formatInfo) error {
	if cfg.Output == config.OutputJSON {
		return writeJSON(w, infos)
	}

	s := newStyles(w)
	for _, info := range infos {
		if _, err := fmt.Fprintf(w, "%-4s %s\n", info.Format, s.render(s.dim, info.Route)); err != nil {
			return err
		}
	}
	return nil
}

type historyJSON struct {
	Time   string `json:"time"`
	File   string `json:"file"`
	Route  string `json:"route"`
	Status string `json:"status"`
	Result string `json:"result"`
}

func printHistory(w io.Writer, entries []history.Entry) error {
	if cfg.Output == config.OutputJSON {
		out := make([]historyJSON, 0, len(entries))
		for _, e := range entries {
			out = append(out, historyJSON{
				Time:   e.Time.UTC().Format(time.RFC3339),
				File:   e.File,
				Route:  e.Route,
				Status: e.Status,
				Result: e.Result,
			})
		}
		return writeJSON(w, out)
	}

	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No history entries found.")
		return err
	}

	s := newStyles(w)
	for i, line := range history.FormatForDisplay(entries) {
		st := s.ok
		if entries[i].Status == history.StatusFailed {
			st = s.failed
		}
		if _, err := fmt.Fprintln(w, s.render(st, line)); err != nil {
			return err
		}
	}
	return nil
}
