package main

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"iosrename/internal/config"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configFile bool
	configErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configFile = exists
	})
	return c.config, c.configErr
}

// runFlags mirrors the root command's rename flags. A flag only overrides
// config when it was set on the command line.
type runFlags struct {
	photosDir        string
	dryRun           bool
	onlyEditedPhotos bool
	strict           bool
	summary          bool
	logLevel         string
	logFormat        string
}

func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("photos-dir") {
		dir, err := config.ExpandHome(strings.TrimSpace(f.photosDir))
		if err != nil {
			return fmt.Errorf("resolve photos dir: %w", err)
		}
		cfg.Rename.PhotosDir = dir
	}
	if flags.Changed("only-edited-photos") {
		cfg.Rename.OnlyEditedPhotos = f.onlyEditedPhotos
	}
	if flags.Changed("strict") {
		cfg.Rename.Strict = f.strict
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(f.logLevel))
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = strings.ToLower(strings.TrimSpace(f.logFormat))
	}
	return cfg.Validate()
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
