package player

import (
	"uniplayer/internal/media"
)

// VLCPlayer plays vlc files and nothing else.
type VLCPlayer struct {
	file media.File
}

// NewVLCPlayer attaches f to a VLC player.
func NewVLCPlayer(f media.File) *VLCPlayer {
	return &VLCPlayer{file: f}
}

// PlayVLC returns the status line, or a FormatMismatchError if the
// attached file is not vlc.
func (v *VLCPlayer) PlayVLC() (string, error) {
	if v.file.Extension() != media.VLC.String() {
		return "", &FormatMismatchError{File: v.file, Want: media.VLC}
	}
	return media.Playing(v.file), nil
}
