package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeRename(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeRename() error {
	c.Rename.PhotosDir = strings.TrimSpace(c.Rename.PhotosDir)
	if c.Rename.PhotosDir != "" {
		expanded, err := ExpandHome(c.Rename.PhotosDir)
		if err != nil {
			return fmt.Errorf("rename.photos_dir: %w", err)
		}
		c.Rename.PhotosDir = expanded
	}
	c.Rename.ImageSuffix = strings.TrimSpace(c.Rename.ImageSuffix)
	if c.Rename.ImageSuffix == "" {
		c.Rename.ImageSuffix = defaultImageSuffix
	}
	c.Rename.EditedSuffix = strings.TrimSpace(c.Rename.EditedSuffix)
	if c.Rename.EditedSuffix == "" {
		c.Rename.EditedSuffix = defaultEditedSuffix
	}
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
