package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spaghettifunk/easel/engine"
	"github.com/spaghettifunk/easel/engine/core"
	"github.com/spaghettifunk/easel/engine/platform"
	"github.com/spaghettifunk/easel/engine/platform/desktop"
	"github.com/spaghettifunk/easel/engine/renderer/ebitengine"
	"github.com/spaghettifunk/easel/engine/renderer/raster"
	"github.com/spaghettifunk/easel/testbed"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	headless   bool
	frames     int
	interval   time.Duration
	snapshot   string
	watch      bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "easel",
		Short:         "Animate the testbed scenario in a window or headless",
		SilenceUsage:  true,
		SilenceErrors: false,
		PreRunE: func(*cobra.Command, []string) error {
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a TOML config file")
	flags.BoolVar(&opts.headless, "headless", false, "render off screen instead of opening a window")
	flags.IntVar(&opts.frames, "frames", 60, "number of frames to run in headless mode")
	flags.DurationVar(&opts.interval, "interval", 16*time.Millisecond, "time between frames in headless mode")
	flags.StringVar(&opts.snapshot, "snapshot", "", "write the last headless frame to this PNG file")
	flags.BoolVar(&opts.watch, "watch", false, "reload the log level when the config file changes")

	return cmd
}

func (o *options) validate() error {
	if !o.headless {
		return nil
	}
	if o.interval <= 0 {
		return fmt.Errorf("--interval %s: %w", o.interval, core.ErrInvalidInterval)
	}
	if o.frames < 0 {
		return fmt.Errorf("--frames %d: must not be negative", o.frames)
	}
	return nil
}

func run(ctx context.Context, opts *options) error {
	cfg, err := engine.LoadApplicationConfig(opts.configPath)
	if err != nil {
		return err
	}
	core.SetLogLevel(cfg.Level())

	if ctx == nil {
		ctx = context.Background()
	}
	// capture sigterm and other system call here
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if opts.watch && opts.configPath != "" {
		if err := engine.WatchApplicationConfig(ctx, opts.configPath, func(c *engine.ApplicationConfig) {
			core.SetLogLevel(c.Level())
		}); err != nil {
			return fmt.Errorf("watching %s: %w", opts.configPath, err)
		}
	}

	tb := testbed.NewTestGame(cfg)
	if opts.headless {
		return runHeadless(ctx, tb, opts)
	}
	return runDesktop(ctx, tb)
}

func runHeadless(ctx context.Context, tb *testbed.TestGame, opts *options) error {
	cfg := tb.ApplicationConfig
	host := platform.NewHeadless(cfg.StartWidth, cfg.StartHeight)
	surface := raster.New(0, 0)

	app, err := engine.New(tb.Game, host, surface)
	if err != nil {
		return err
	}
	app.Run()

	frames, err := host.Run(ctx, opts.frames, opts.interval)
	if err != nil {
		return err
	}
	fps, frameTime := app.Metrics().Frame()
	core.LogInfo("ran %d frames (%.1f fps, %.2f ms avg)", frames, fps, frameTime)

	if opts.snapshot == "" {
		return nil
	}
	f, err := os.Create(opts.snapshot)
	if err != nil {
		return err
	}
	if err := surface.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("writing snapshot: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	core.LogInfo("snapshot written to %s", opts.snapshot)
	return nil
}

func runDesktop(ctx context.Context, tb *testbed.TestGame) error {
	cfg := tb.ApplicationConfig
	host := desktop.NewEbiten(cfg.Name, cfg.StartWidth, cfg.StartHeight)
	surface := ebitengine.New(0, 0)
	host.SetPresenter(surface)

	app, err := engine.New(tb.Game, host, surface)
	if err != nil {
		return err
	}
	app.Run()

	return host.Run(ctx)
}
