package main

import (
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"iosrename/internal/logging"
	"iosrename/internal/workflow"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var flags runFlags

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "iosrename",
		Short: "Rename iPhone photos and videos to their capture time",
		Long: "Renames IMG_NNNN.JPG, IMG_ENNNN.JPG and IMG_NNNN.MOV files to\n" +
			"YYYYMMDD_HHMMSS<suffix> names taken from EXIF DateTimeOriginal (photos)\n" +
			"or the QuickTime creation date (videos).",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}
			if cfg.Rename.PhotosDir == "" {
				return errors.New("--photos-dir is required (or set rename.photos_dir in the config file)")
			}

			logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			signalCtx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			out := cmd.OutOrStdout()
			summary, err := workflow.Run(signalCtx, cfg, workflow.Options{
				DryRun:   flags.dryRun,
				Reporter: newReportPrinter(out, shouldColorize(out)),
				Logger:   logger,
			})
			if flags.summary && summary != nil {
				fmt.Fprintln(out, renderSummary(summary))
			}
			return err
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	runFlagSet := rootCmd.Flags()
	runFlagSet.StringVar(&flags.photosDir, "photos-dir", "", "Directory holding the IMG_* files")
	runFlagSet.BoolVar(&flags.dryRun, "dry-run", false, "Print the planned renames without touching any file")
	runFlagSet.BoolVar(&flags.onlyEditedPhotos, "only-edited-photos", false, "Rename edited photos (IMG_E*) onto their original's name so the edit replaces it")
	runFlagSet.BoolVar(&flags.strict, "strict", false, "Abort on the first timestamp that cannot be parsed")
	runFlagSet.BoolVar(&flags.summary, "summary", false, "Print a per-class summary table after the run")
	runFlagSet.StringVar(&flags.logLevel, "log-level", "", "Log level for stderr diagnostics (debug, info, warn, error)")
	runFlagSet.StringVar(&flags.logFormat, "log-format", "", "Log format for stderr diagnostics (console, json)")

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
