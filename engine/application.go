package engine

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/easel/engine/core"
	"github.com/spaghettifunk/easel/engine/objects"
)

type ApplicationConfig struct {
	// The application name used in windowing, if applicable.
	Name string `toml:"name"`
	// Window starting width, if applicable.
	StartWidth int `toml:"width"`
	// Window starting height, if applicable.
	StartHeight int `toml:"height"`
	// One of debug, info, warn, error.
	LogLevel string `toml:"log_level"`
	// How entities turn motion into position: snap or accumulate.
	Integration string `toml:"integration"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:        "easel",
		StartWidth:  1280,
		StartHeight: 720,
		LogLevel:    core.InfoLevel.String(),
		Integration: objects.IntegratorSnap,
	}
}

// LoadApplicationConfig reads a TOML file on top of the defaults. An empty
// path returns the defaults.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	cfg := DefaultApplicationConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", core.ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *ApplicationConfig) Validate() error {
	if c.StartWidth < 0 || c.StartHeight < 0 {
		return fmt.Errorf("%w: negative window size %dx%d", core.ErrInvalidConfig, c.StartWidth, c.StartHeight)
	}
	if _, err := core.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", core.ErrInvalidConfig, err)
	}
	if _, err := objects.IntegratorByName(c.Integration); err != nil {
		return fmt.Errorf("%w: %w", core.ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the configured log level, falling back to info.
func (c *ApplicationConfig) Level() core.LogLevel {
	level, err := core.ParseLogLevel(c.LogLevel)
	if err != nil {
		return core.InfoLevel
	}
	return level
}
