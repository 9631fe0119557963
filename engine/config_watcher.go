package engine

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/easel/engine/core"
)

// WatchApplicationConfig reloads the config file whenever it is written and
// hands the new config to onChange. Invalid files are logged and skipped. The
// directory is watched rather than the file so editors that replace the file
// on save are picked up too. Watching stops when ctx is done.
func WatchApplicationConfig(ctx context.Context, path string, onChange func(*ApplicationConfig)) error {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	target, err := filepath.Abs(path)
	if err != nil {
		fsWatch.Close()
		return err
	}
	if err := fsWatch.Add(filepath.Dir(target)); err != nil {
		fsWatch.Close()
		return err
	}

	go func() {
		defer fsWatch.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case e, ok := <-fsWatch.Events:
				if !ok {
					return
				}
				if filepath.Clean(e.Name) != target {
					continue
				}
				// Handle create or modify events
				if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
					continue
				}
				cfg, err := LoadApplicationConfig(target)
				if err != nil {
					core.LogError("config reload failed: %s", err)
					continue
				}
				core.LogInfo("config reloaded from %s", target)
				onChange(cfg)
			case err, ok := <-fsWatch.Errors:
				if !ok {
					return
				}
				core.LogError("config watcher: %s", err)
			}
		}
	}()

	return nil
}
