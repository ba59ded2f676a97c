package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"iosrename/internal/config"
	"iosrename/internal/logging"
	"iosrename/internal/preflight"
	"iosrename/internal/rename"
	"iosrename/internal/scan"
)

// ErrNoPhotosDir reports a run without a photos directory.
var ErrNoPhotosDir = errors.New("photos directory not set")

// Options carries per-invocation settings that do not live in config.
type Options struct {
	DryRun   bool
	Reporter rename.Reporter
	Logger   *slog.Logger
}

type phase struct {
	kind   scan.Kind
	files  []scan.SourceFile
	suffix byte
}

// Run renames the media files of cfg.Rename.PhotosDir. The returned summary
// is non-nil whenever the directory was scanned, including aborted runs.
func Run(ctx context.Context, cfg *config.Config, opts Options) (*Summary, error) {
	if cfg == nil {
		return nil, errors.New("workflow requires config")
	}
	dir := cfg.Rename.PhotosDir
	if dir == "" {
		return nil, ErrNoPhotosDir
	}

	runID := uuid.NewString()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.WithContext(ctx, logging.NewComponentLogger(opts.Logger, "workflow"))

	if err := checkDirectory(dir, opts.DryRun); err != nil {
		return nil, err
	}

	if !opts.DryRun && cfg.Lock.Enabled {
		lock, err := acquireLock(dir)
		if err != nil {
			return nil, err
		}
		logger.Debug("directory lock acquired", logging.String("lock", lock.path))
		defer func() {
			if err := lock.release(); err != nil {
				logger.Warn("failed to release directory lock", logging.Error(err))
			}
		}()
	}

	listing, err := scan.Scan(dir, scan.NewClassifier())
	if err != nil {
		return nil, err
	}

	summary := &Summary{RunID: runID, Dir: dir, DryRun: opts.DryRun, Ignored: len(listing.Ignored)}
	start := time.Now()
	logger.Info("rename run started",
		logging.String(logging.FieldPath, dir),
		logging.Bool("dry_run", opts.DryRun),
		logging.Int("files", listing.Total()),
		logging.Int("images", len(listing.Images)),
		logging.Int("edited", len(listing.Edited)),
		logging.Int("videos", len(listing.Videos)),
		logging.Int("ignored", len(listing.Ignored)),
	)

	renamer := rename.New(rename.Options{DryRun: opts.DryRun, Reporter: opts.Reporter, Logger: opts.Logger})
	for _, p := range phases(cfg, listing) {
		if err := runPhase(ctx, renamer, p, cfg.Rename.Strict, summary, logger); err != nil {
			logger.Error("rename run aborted", logging.Error(err))
			return summary, err
		}
	}

	totals := summary.Totals()
	logger.Info("rename run finished",
		logging.Int("renamed", totals.Renamed),
		logging.Int("planned", totals.Planned),
		logging.Int("skipped", totals.Skipped),
		logging.Int("failed", totals.Failed),
		logging.Duration("elapsed", time.Since(start)),
	)
	return summary, nil
}

// phases orders the classes plain, edited, video. With only-edited-photos
// the edited images take the plain suffix and overwrite their originals.
func phases(cfg *config.Config, listing *scan.Listing) []phase {
	imageSuffix := cfg.Rename.ImageSuffix[0]
	editedSuffix := cfg.Rename.EditedSuffix[0]
	if cfg.Rename.OnlyEditedPhotos {
		editedSuffix = imageSuffix
	}
	return []phase{
		{kind: scan.PlainImage, files: listing.Images, suffix: imageSuffix},
		{kind: scan.EditedImage, files: listing.Edited, suffix: editedSuffix},
		{kind: scan.Video, files: listing.Videos, suffix: imageSuffix},
	}
}

func runPhase(ctx context.Context, renamer *rename.Renamer, p phase, strict bool, summary *Summary, logger *slog.Logger) error {
	for _, file := range p.files {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("rename run interrupted: %w", err)
		}

		var (
			outcome rename.Outcome
			err     error
		)
		if p.kind == scan.Video {
			outcome, err = renamer.RenameVideo(ctx, file, p.suffix)
		} else {
			outcome, err = renamer.RenameImage(ctx, file, p.suffix)
		}

		if err != nil {
			if !errors.Is(err, rename.ErrTimestampParse) {
				return err
			}
			summary.record(p.kind, rename.ParseFailed)
			if strict {
				return err
			}
			logger.Warn("capture timestamp unparsable; file left in place",
				logging.String(logging.FieldPath, file.Path()),
				logging.Error(err),
			)
			renamer.Report(outcome)
			continue
		}
		summary.record(p.kind, outcome.Status)
	}
	return nil
}

func checkDirectory(dir string, dryRun bool) error {
	failure, failed := preflight.FirstFailure(preflight.RunAll(dir, dryRun))
	if !failed {
		return nil
	}
	// Only a directory that exists and can be listed reaches the write
	// check; every earlier failure means there is no usable directory.
	if errors.Is(failure.Err, preflight.ErrNotWritable) {
		return fmt.Errorf("%s: %s: %w", failure.Name, failure.Detail, failure.Err)
	}
	return fmt.Errorf("%w: %s", scan.ErrDirectoryNotFound, failure.Detail)
}
