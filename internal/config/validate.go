package config

import (
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRename(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRename() error {
	if err := validateSuffix("rename.image_suffix", c.Rename.ImageSuffix); err != nil {
		return err
	}
	if err := validateSuffix("rename.edited_suffix", c.Rename.EditedSuffix); err != nil {
		return err
	}
	if c.Rename.ImageSuffix == c.Rename.EditedSuffix {
		return fmt.Errorf("rename.edited_suffix must differ from rename.image_suffix (both %q)", c.Rename.ImageSuffix)
	}
	return nil
}

// validateSuffix accepts exactly one ASCII letter or digit.
func validateSuffix(field, value string) error {
	if len(value) != 1 {
		return fmt.Errorf("%s must be a single character, got %q", field, value)
	}
	ch := value[0]
	switch {
	case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		return nil
	default:
		return fmt.Errorf("%s must be an ASCII letter or digit, got %q", field, value)
	}
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
}
