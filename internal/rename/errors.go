package rename

import (
	"errors"
	"fmt"

	"iosrename/internal/scan"
)

var (
	// ErrNoMetadata reports a file without the capture timestamp tag.
	ErrNoMetadata = errors.New("capture timestamp not found")
	// ErrTimestampParse reports a capture timestamp in an unexpected layout.
	ErrTimestampParse = errors.New("cannot parse capture timestamp")
)

// MetadataError describes a file that lacks its capture timestamp.
type MetadataError struct {
	Kind scan.Kind
	Path string
}

func (e *MetadataError) Error() string {
	if e.Kind == scan.Video {
		return fmt.Sprintf("no such metadata in video %s", e.Path)
	}
	return fmt.Sprintf("no such tag in image %s", e.Path)
}

// Is matches ErrNoMetadata.
func (e *MetadataError) Is(target error) bool {
	return target == ErrNoMetadata
}

// TimestampError describes a capture timestamp that failed to parse.
type TimestampError struct {
	Kind  scan.Kind
	Path  string
	Value string
	Err   error
}

func (e *TimestampError) Error() string {
	return fmt.Sprintf("cannot parse timestamp in %s %s: %q: %v", e.Kind, e.Path, e.Value, e.Err)
}

// Is matches ErrTimestampParse.
func (e *TimestampError) Is(target error) bool {
	return target == ErrTimestampParse
}

func (e *TimestampError) Unwrap() error {
	return e.Err
}
