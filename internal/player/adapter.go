package player

import (
	"uniplayer/internal/media"
)

// advanced maps each adapted format to a constructor that builds the
// concrete player and calls its format-specific method.
var advanced = map[media.Format]func(media.File) (string, error){
	media.MP4: func(f media.File) (string, error) { return NewMP4Player(f).PlayMP4() },
	media.VLC: func(f media.File) (string, error) { return NewVLCPlayer(f).PlayVLC() },
}

// MediaAdapter exposes the MP4 and VLC players through MediaPlayer.
type MediaAdapter struct {
	file media.File
}

// NewMediaAdapter attaches f to an adapter.
func NewMediaAdapter(f media.File) *MediaAdapter {
	return &MediaAdapter{file: f}
}

// Play builds the player for the file's extension and plays through it.
// Extensions without an adapted player, mp3 included, return an
// UnsupportedFormatError.
func (a *MediaAdapter) Play() (string, error) {
	format, ok := a.file.Format()
	if !ok {
		return "", &UnsupportedFormatError{Extension: a.file.Extension()}
	}
	play, ok := advanced[format]
	if !ok {
		return "", &UnsupportedFormatError{Extension: a.file.Extension()}
	}
	return play(a.file)
}

// Adapts reports whether the adapter has a player for format.
func Adapts(format media.Format) bool {
	_, ok := advanced[format]
	return ok
}
