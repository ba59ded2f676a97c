package testsupport

import (
	"path/filepath"
	"testing"

	"iosrename/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config whose photos directory is a fresh temp
// directory. Locking is disabled so tests never touch the shared temp lock
// directory unless they opt in.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Rename.PhotosDir = filepath.Join(base, "photos")
	cfgVal.Lock.Enabled = false

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithOnlyEditedPhotos enables the edited-photo merge policy.
func WithOnlyEditedPhotos() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Rename.OnlyEditedPhotos = true
	}
}

// WithStrict aborts runs on the first unparsable timestamp.
func WithStrict() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Rename.Strict = true
	}
}

// WithLock enables the per-directory run lock.
func WithLock() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Lock.Enabled = true
	}
}

// PhotoPath returns the path of name inside the config's photos directory.
func PhotoPath(cfg *config.Config, name string) string {
	return filepath.Join(cfg.Rename.PhotosDir, name)
}
