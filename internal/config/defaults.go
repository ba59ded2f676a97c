package config

const (
	defaultConfigPath   = "~/.config/iosrename/config.toml"
	projectConfigName   = "iosrename.toml"
	defaultImageSuffix  = "i"
	defaultEditedSuffix = "e"
	defaultLogFormat    = "console"
	defaultLogLevel     = "warn"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Rename: Rename{
			ImageSuffix:  defaultImageSuffix,
			EditedSuffix: defaultEditedSuffix,
		},
		Lock: Lock{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
