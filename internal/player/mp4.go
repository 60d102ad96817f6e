package player

import (
	"uniplayer/internal/media"
)

// MP4Player plays mp4 files and nothing else.
type MP4Player struct {
	file media.File
}

// NewMP4Player attaches f to an MP4 player.
func NewMP4Player(f media.File) *MP4Player {
	return &MP4Player{file: f}
}

// PlayMP4 returns the status line, or a FormatMismatchError if the
// attached file is not mp4.
func (m *MP4Player) PlayMP4() (string, error) {
	if m.file.Extension() != media.MP4.String() {
		return "", &FormatMismatchError{File: m.file, Want: media.MP4}
	}
	return media.Playing(m.file), nil
}
