// Package player routes media files to the player that can handle them.
// UniversalPlayer plays mp3 itself and hands mp4 and vlc to a MediaAdapter,
// which translates the generic Play call into the format-specific method of
// an MP4Player or VLCPlayer.
package player

// MediaPlayer is the interface clients play files through.
type MediaPlayer interface {
	// Play returns a status line for the attached file.
	Play() (string, error)
}

// MP4Capable is implemented by players that can play mp4 files.
type MP4Capable interface {
	PlayMP4() (string, error)
}

// VLCCapable is implemented by players that can play vlc files.
type VLCCapable interface {
	PlayVLC() (string, error)
}

var (
	_ MP4Capable  = (*MP4Player)(nil)
	_ VLCCapable  = (*VLCPlayer)(nil)
	_ MediaPlayer = (*MediaAdapter)(nil)
	_ MediaPlayer = (*UniversalPlayer)(nil)
)

// Route describes how UniversalPlayer handles a file.
type Route int

const (
	RouteUnsupported Route = iota
	RouteNative
	RouteAdapter
)

func (r Route) String() string {
	switch r {
	case RouteNative:
		return "native"
	case RouteAdapter:
		return "adapter"
	default:
		return "unsupported"
	}
}
