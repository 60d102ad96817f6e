package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniplayer/internal/history"
	"uniplayer/internal/player"
)

// run executes the root command with every flag reset and output captured.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flagJSON = false
	flagDebug = false
	flagNoHistory = false
	flagColor = ""
	flagClearHistory = false
	flagReplay = false

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

// execute is run with plain output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return run(t, append(args, "--color=never")...)
}

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
}

func TestPlayCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "play", "Song.mp3", "Clip.mp4", "Movie.vlc")
	require.NoError(t, err)
	assert.Equal(t, "Playing Song.mp3\nPlaying Clip.mp4\nPlaying Movie.vlc\n", out)
}

func TestRootPlaysArgs(t *testing.T) {
	isolate(t)

	out, err := execute(t, "Song.mp3")
	require.NoError(t, err)
	assert.Equal(t, "Playing Song.mp3\n", out)
}

func TestPlayCommandContinuesAfterFailure(t *testing.T) {
	isolate(t)

	out, err := execute(t, "play", "Doc.pdf", "Song.mp3")
	require.Error(t, err)
	assert.ErrorIs(t, err, player.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "1 of 2 files failed")
	assert.Equal(t, "Doc.pdf: Unsupported extension.\nPlaying Song.mp3\n", out)
}

func TestPlayCommandJSON(t *testing.T) {
	isolate(t)

	out, err := execute(t, "play", "--json", "Clip.mp4", "Hello")
	require.Error(t, err)

	var results []playResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)

	assert.Equal(t, playResult{
		File:      "Clip.mp4",
		Name:      "Clip",
		Extension: "mp4",
		Route:     "adapter",
		Status:    history.StatusOK,
		Output:    "Playing Clip.mp4",
	}, results[0])

	assert.Equal(t, "Hello", results[1].Name)
	assert.Equal(t, "Hello", results[1].Extension)
	assert.Equal(t, "unsupported", results[1].Route)
	assert.Equal(t, history.StatusFailed, results[1].Status)
	assert.Equal(t, "Unsupported extension.", results[1].Error)
}

func TestPlayRecordsHistory(t *testing.T) {
	isolate(t)

	_, err := execute(t, "play", "Song.mp3")
	require.NoError(t, err)
	_, _ = execute(t, "play", "Doc.pdf")

	entries, err := history.Load()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Song.mp3", entries[0].File)
	assert.Equal(t, "native", entries[0].Route)
	assert.Equal(t, "Playing Song.mp3", entries[0].Result)
	assert.Equal(t, history.StatusFailed, entries[1].Status)
	assert.Equal(t, "Unsupported extension.", entries[1].Result)
}

func TestPlayNoHistory(t *testing.T) {
	isolate(t)

	_, err := execute(t, "play", "--no-history", "Song.mp3")
	require.NoError(t, err)

	entries, err := history.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistoryCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "history")
	require.NoError(t, err)
	assert.Equal(t, "No history entries found.\n", out)

	_, err = execute(t, "play", "Movie.vlc")
	require.NoError(t, err)

	out, err = execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Movie.vlc: Playing Movie.vlc")

	_, err = execute(t, "history", "--clear")
	require.NoError(t, err)

	entries, err := history.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHistoryReplayEmpty(t *testing.T) {
	isolate(t)

	out, err := execute(t, "history", "--replay")
	require.NoError(t, err)
	assert.Equal(t, "No history entries found.\n", out)
}

func TestFormatsCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "formats")
	require.NoError(t, err)
	assert.Equal(t, "mp3  native\nmp4  adapter\nvlc  adapter\n", out)
}

func TestFormatsCommandJSON(t *testing.T) {
	isolate(t)

	out, err := execute(t, "formats", "-j")
	require.NoError(t, err)

	var infos []formatInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	assert.Equal(t, []formatInfo{
		{Format: "mp3", Route: "native"},
		{Format: "mp4", Route: "adapter"},
		{Format: "vlc", Route: "adapter"},
	}, infos)
}

func TestVersionCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "uniplayer dev\n", out)
}

func TestInvalidColorFlag(t *testing.T) {
	isolate(t)

	_, err := run(t, "formats", "--color=rainbow")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestColorAlwaysStylesOutput(t *testing.T) {
	isolate(t)

	out, err := run(t, "play", "Song.mp3", "Doc.pdf", "--color=always")
	require.Error(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "Playing Song.mp3")
	assert.Contains(t, out, "Unsupported extension.")
	assert.NotEqual(t, "Playing Song.mp3\nDoc.pdf: Unsupported extension.\n", out)
}

func TestColorAutoPlainWhenNotTerminal(t *testing.T) {
	isolate(t)

	out, err := run(t, "play", "Song.mp3", "--color=auto")
	require.NoError(t, err)
	assert.Equal(t, "Playing Song.mp3\n", out)

	// auto is also the default
	out, err = run(t, "formats")
	require.NoError(t, err)
	assert.NotContains(t, out, "\x1b[")
}

func TestColorFromConfigFile(t *testing.T) {
	isolate(t)
	dir := filepath.Join(os.Getenv("XDG_CONFIG_HOME"), "uniplayer")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`color = "always"`), 0644))

	out, err := run(t, "Song.mp3")
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")

	// The flag overrides the file
	out, err = execute(t, "Song.mp3")
	require.NoError(t, err)
	assert.Equal(t, "Playing Song.mp3\n", out)
}

func TestLongFileNameKeepsHistoryUsable(t *testing.T) {
	isolate(t)

	long := strings.Repeat("a", 70000) + ".mp3"
	_, err := execute(t, "play", long)
	require.NoError(t, err)
	_, err = execute(t, "play", "Clip.mp4")
	require.NoError(t, err)

	out, err := execute(t, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Clip.mp4: Playing Clip.mp4")

	entries, err := history.Load()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
