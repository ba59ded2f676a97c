// Package rename turns classified media files into timestamp-named files.
//
// Images are read through their EXIF DateTimeOriginal tag and videos through
// the com.apple.quicktime.creationdate key of the container-level track. The
// destination keeps the directory and extension of the source and replaces
// the stem with YYYYMMDD_HHMMSS followed by a one-character suffix.
//
// A file without the tag is skipped with a diagnostic. A tag that cannot be
// parsed yields a *TimestampError; the caller decides whether that aborts the
// run.
package rename
