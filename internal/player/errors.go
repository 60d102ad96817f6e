package player

import (
	"errors"
	"fmt"

	"uniplayer/internal/media"
)

var (
	// ErrFormatMismatch is matched by errors from a single-format player
	// given a file of another format.
	ErrFormatMismatch = errors.New("format mismatch")

	// ErrUnsupportedFormat is matched by errors for extensions no player handles.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// FormatMismatchError is returned by PlayMP4 and PlayVLC when the attached
// file's extension is not the player's format.
type FormatMismatchError struct {
	File media.File
	Want media.Format
}

func (e *FormatMismatchError) Error() string {
	return fmt.Sprintf("Not %s file.", e.Want)
}

func (e *FormatMismatchError) Is(target error) bool {
	return target == ErrFormatMismatch
}

// UnsupportedFormatError is returned when no rule covers the extension.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return "Unsupported extension."
}

func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}
