package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spaghettifunk/easel/engine/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()

	path := filepath.Join(dir, "easel.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadApplicationConfigDefaults(t *testing.T) {
	cfg, err := LoadApplicationConfig("")
	require.NoError(t, err)

	assert.Equal(t, DefaultApplicationConfig(), cfg)
	assert.Equal(t, core.InfoLevel, cfg.Level())
}

func TestLoadApplicationConfigFromFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
name = "robot"
width = 800
log_level = "debug"
integration = "accumulate"
`)

	cfg, err := LoadApplicationConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "robot", cfg.Name)
	assert.Equal(t, 800, cfg.StartWidth)
	assert.Equal(t, 720, cfg.StartHeight)
	assert.Equal(t, core.DebugLevel, cfg.Level())
	assert.Equal(t, "accumulate", cfg.Integration)
}

func TestLoadApplicationConfigRejectsBadValues(t *testing.T) {
	dir := t.TempDir()

	for name, body := range map[string]string{
		"syntax":      `name = `,
		"size":        `width = -1`,
		"level":       `log_level = "loud"`,
		"integration": `integration = "verlet"`,
	} {
		_, err := LoadApplicationConfig(writeConfig(t, dir, body))
		assert.ErrorIs(t, err, core.ErrInvalidConfig, name)
	}
}

func TestLoadApplicationConfigMissingFile(t *testing.T) {
	_, err := LoadApplicationConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWatchApplicationConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `log_level = "info"`)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan *ApplicationConfig, 8)
	require.NoError(t, WatchApplicationConfig(ctx, path, func(cfg *ApplicationConfig) {
		changes <- cfg
	}))

	writeConfig(t, dir, `log_level = "error"`)

	// A rewrite may be observed mid-way, so wait for the final content.
	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-changes:
			if cfg.Level() == core.ErrorLevel {
				return
			}
		case <-timeout:
			t.Fatal("config change was not observed")
		}
	}
}
