package player

import (
	"uniplayer/internal/media"
)

// UniversalPlayer is the entry point for playing any media file.
type UniversalPlayer struct {
	file media.File
}

// NewUniversalPlayer attaches f to a universal player.
func NewUniversalPlayer(f media.File) *UniversalPlayer {
	return &UniversalPlayer{file: f}
}

// Play plays mp3 directly, delegates mp4 and vlc to a MediaAdapter and
// returns an UnsupportedFormatError for anything else.
func (u *UniversalPlayer) Play() (string, error) {
	switch RouteOf(u.file) {
	case RouteNative:
		return media.Playing(u.file), nil
	case RouteAdapter:
		return NewMediaAdapter(u.file).Play()
	default:
		return "", &UnsupportedFormatError{Extension: u.file.Extension()}
	}
}

// RouteOf reports how UniversalPlayer handles f without playing it.
func RouteOf(f media.File) Route {
	format, ok := f.Format()
	if !ok {
		return RouteUnsupported
	}
	return RouteFor(format)
}

// RouteFor reports how UniversalPlayer handles files of format.
func RouteFor(format media.Format) Route {
	if format == media.MP3 {
		return RouteNative
	}
	if Adapts(format) {
		return RouteAdapter
	}
	return RouteUnsupported
}
