package rename

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"iosrename/internal/logging"
	"iosrename/internal/metadata/exifmeta"
	"iosrename/internal/metadata/quicktime"
	"iosrename/internal/scan"
)

const (
	// ImageSuffix marks plain images and videos.
	ImageSuffix byte = 'i'
	// EditedSuffix marks edited images kept alongside their originals.
	EditedSuffix byte = 'e'
)

// Options configures a Renamer.
type Options struct {
	DryRun   bool
	Reporter Reporter
	Logger   *slog.Logger
}

// Renamer extracts capture timestamps and renames files in place.
type Renamer struct {
	dryRun   bool
	reporter Reporter
	logger   *slog.Logger
	move     func(src, dst string) error
}

// New constructs a Renamer.
func New(opts Options) *Renamer {
	reporter := opts.Reporter
	if reporter == nil {
		reporter = nopReporter{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Renamer{
		dryRun:   opts.DryRun,
		reporter: reporter,
		logger:   logging.NewComponentLogger(logger, "renamer"),
		move:     os.Rename,
	}
}

// RenameImage renames a plain or edited image using its EXIF
// DateTimeOriginal tag. A missing tag is reported and returned as a skip
// outcome with a nil error.
func (r *Renamer) RenameImage(ctx context.Context, file scan.SourceFile, suffix byte) (Outcome, error) {
	path := file.Path()
	logger := logging.WithContext(ctx, r.logger).With(
		logging.String(logging.FieldPath, path),
		logging.String(logging.FieldKind, file.Kind.String()),
	)

	tags, err := exifmeta.Read(path)
	if err != nil && !errors.Is(err, exifmeta.ErrNoEXIF) {
		return Outcome{Path: path}, fmt.Errorf("read exif %s: %w", path, err)
	}
	value, ok := tags.Lookup(exifmeta.DateTimeOriginal)
	if !ok {
		if err != nil {
			logger.Debug("image has no exif block", logging.Error(err))
		}
		return r.skip(file, logger), nil
	}

	ts, err := ParseImageTimestamp(value)
	if err != nil {
		return r.parseFailed(file, value, err)
	}
	return r.apply(file, ts, suffix, logger)
}

// RenameVideo renames a video using the creation date of its container-level
// track. Videos share the image suffix; there is no edited video.
func (r *Renamer) RenameVideo(ctx context.Context, file scan.SourceFile, suffix byte) (Outcome, error) {
	path := file.Path()
	logger := logging.WithContext(ctx, r.logger).With(
		logging.String(logging.FieldPath, path),
		logging.String(logging.FieldKind, file.Kind.String()),
	)

	info, err := quicktime.Parse(path)
	if err != nil && !errors.Is(err, quicktime.ErrNotContainer) {
		return Outcome{Path: path}, fmt.Errorf("read container %s: %w", path, err)
	}
	if err != nil {
		logger.Debug("video container unreadable", logging.Error(err))
		return r.skip(file, logger), nil
	}

	value, ok := info.General().Lookup(quicktime.CreationDateKey)
	if !ok {
		return r.skip(file, logger), nil
	}

	ts, err := ParseVideoTimestamp(value)
	if err != nil {
		return r.parseFailed(file, value, err)
	}
	return r.apply(file, ts, suffix, logger)
}

func (r *Renamer) apply(file scan.SourceFile, ts time.Time, suffix byte, logger *slog.Logger) (Outcome, error) {
	source := file.Path()
	decision := Decision{
		Source: source,
		Target: Destination(source, ts, suffix),
		Suffix: suffix,
	}

	outcome := Outcome{Path: source, Decision: decision, Status: Planned}
	if !r.dryRun {
		if err := r.move(decision.Source, decision.Target); err != nil {
			return Outcome{Path: source}, fmt.Errorf("rename %s -> %s: %w", decision.Source, decision.Target, err)
		}
		outcome.Status = Renamed
	}

	logger.Debug("capture timestamp applied",
		logging.String("target", decision.Target),
		logging.String("status", outcome.Status.String()),
	)
	r.reporter.Report(outcome)
	return outcome, nil
}

func (r *Renamer) skip(file scan.SourceFile, logger *slog.Logger) Outcome {
	outcome := Outcome{
		Path:   file.Path(),
		Status: SkippedNoMetadata,
		Err:    &MetadataError{Kind: file.Kind, Path: file.Path()},
	}
	logger.Info("capture timestamp missing; file left in place")
	r.reporter.Report(outcome)
	return outcome
}

// parseFailed does not report; the caller decides whether the failure is fatal.
func (r *Renamer) parseFailed(file scan.SourceFile, value string, err error) (Outcome, error) {
	tsErr := &TimestampError{Kind: file.Kind, Path: file.Path(), Value: value, Err: err}
	return Outcome{Path: file.Path(), Status: ParseFailed, Err: tsErr}, tsErr
}

// Report forwards an outcome produced outside the renamer, such as a
// tolerated parse failure.
func (r *Renamer) Report(o Outcome) {
	r.reporter.Report(o)
}
