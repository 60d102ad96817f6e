// Package media defines the file and format types shared by the players.
package media

import "strings"

// Format is a media format the players know how to route.
type Format string

const (
	MP3 Format = "mp3"
	MP4 Format = "mp4"
	VLC Format = "vlc"
)

func (f Format) String() string { return string(f) }

// Formats returns every known format in a stable order.
func Formats() []Format {
	return []Format{MP3, MP4, VLC}
}

// ParseFormat matches ext against the known formats.
// Matching is exact and case-sensitive: "MP3" is not MP3.
func ParseFormat(ext string) (Format, bool) {
	for _, f := range Formats() {
		if string(f) == ext {
			return f, true
		}
	}
	return "", false
}

// File is a media file name split into base name and extension.
type File struct {
	name      string
	extension string
}

// NewFile splits raw on "." and keeps the first and last segments.
// Without a separator both parts equal raw, so "Hello" has name and
// extension "Hello".
func NewFile(raw string) File {
	parts := strings.Split(raw, ".")
	return File{
		name:      parts[0],
		extension: parts[len(parts)-1],
	}
}

// Name is the portion before the first ".".
func (f File) Name() string { return f.name }

// Extension is the portion after the last ".".
func (f File) Extension() string { return f.extension }

// Format resolves the extension to a known Format.
func (f File) Format() (Format, bool) {
	return ParseFormat(f.extension)
}

// String returns the display form name.extension.
func (f File) String() string {
	return f.name + "." + f.extension
}

// Playing formats the status line reported for a successfully played file.
func Playing(f File) string {
	return "Playing " + f.String()
}
