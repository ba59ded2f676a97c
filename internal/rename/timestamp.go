package rename

import (
	"path/filepath"
	"strings"
	"time"
)

const (
	// ImageLayout is the EXIF DateTimeOriginal layout.
	ImageLayout = "2006:01:02 15:04:05"
	// VideoLayout is the layout Apple devices write to the creation date key.
	VideoLayout = "2006-01-02T15:04:05-0700"
	// StemLayout formats the destination stem before the suffix.
	StemLayout = "20060102_150405"
)

// RFC 3339 offsets ("Z", "+02:00") are accepted for videos too.
var videoLayouts = []string{VideoLayout, time.RFC3339}

// ParseImageTimestamp parses an EXIF DateTimeOriginal value. EXIF carries no
// zone, so the result is a wall-clock time in UTC.
func ParseImageTimestamp(value string) (time.Time, error) {
	return time.Parse(ImageLayout, strings.TrimSpace(value))
}

// ParseVideoTimestamp parses a QuickTime creation date and keeps its offset.
func ParseVideoTimestamp(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	var firstErr error
	for _, layout := range videoLayouts {
		ts, err := time.Parse(layout, trimmed)
		if err == nil {
			return ts, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

// Stem returns the destination stem for ts in its own location.
func Stem(ts time.Time, suffix byte) string {
	return ts.Format(StemLayout) + string(suffix)
}

// Destination replaces the stem of source with the timestamp stem. The
// directory part is kept verbatim and the extension keeps its original case.
func Destination(source string, ts time.Time, suffix byte) string {
	dir, name := filepath.Split(source)
	return dir + Stem(ts, suffix) + filepath.Ext(name)
}
