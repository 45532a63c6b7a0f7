package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/robmorgan/cutscene/config"
	"github.com/robmorgan/cutscene/logger"
	"github.com/robmorgan/cutscene/player"
	"golang.org/x/sync/errgroup"
	"k8s.io/utils/clock"
)

type options struct {
	script     string
	fps        int
	logLevel   string
	logFile    string
	startDelay time.Duration
	headless   bool
	dumpScript string
}

func parseFlags(args []string) (options, error) {
	fs := flag.NewFlagSet("cutscene", flag.ContinueOnError)

	var opts options
	fs.StringVar(&opts.script, "script", "", "YAML show script to play instead of the built-in show")
	fs.IntVar(&opts.fps, "fps", 0, "frame rate, overrides CUTSCENE_FPS")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level, overrides CUTSCENE_LOG_LEVEL")
	fs.StringVar(&opts.logFile, "log-file", "", "write logs to this file, overrides CUTSCENE_LOG_FILE")
	fs.DurationVar(&opts.startDelay, "start-delay", -1, "pause before the first scene, overrides CUTSCENE_START_DELAY")
	fs.BoolVar(&opts.headless, "headless", false, "play without the terminal UI, logging scene changes to stderr")
	fs.StringVar(&opts.dumpScript, "dump-script", "", "write the active show as a YAML script to this path and exit")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

// apply layers the command line over the settings read from the environment.
func (o options) apply(s config.Settings) config.Settings {
	if o.script != "" {
		s.ScriptPath = o.script
	}
	if o.fps > 0 {
		s.FPS = o.fps
	}
	if o.logLevel != "" {
		s.LogLevel = o.logLevel
	}
	if o.logFile != "" {
		s.LogFile = o.logFile
	}
	if o.startDelay >= 0 {
		s.StartDelay = o.startDelay
	}
	return s
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	if err := Run(context.Background(), opts); err != nil {
		fmt.Fprintln(os.Stderr, "cutscene:", err)
		os.Exit(1)
	}
}

// Run loads the configuration and plays the show.
func Run(ctx context.Context, opts options) error {
	log := logger.GetProjectLogger()

	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	cfg, err := config.Build(opts.apply(settings))
	if err != nil {
		return err
	}

	out, closeLog, err := logOutput(cfg.Settings, opts.headless)
	if err != nil {
		return err
	}
	defer closeLog()
	logger.Configure(cfg.Settings.LogLevel, out)

	if opts.dumpScript != "" {
		log.Infof("Writing show script to %s", opts.dumpScript)
		return config.WriteShow(cfg.Show, opts.dumpScript)
	}

	if opts.headless {
		return runHeadless(ctx, cfg)
	}

	model, err := player.New(cfg, clock.RealClock{})
	if err != nil {
		return err
	}

	log.Info("Starting player...")
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx)).Run()
	return err
}

// runHeadless plays the show on the real clock until it finishes or the process is interrupted.
func runHeadless(ctx context.Context, cfg config.CinematicConfig) error {
	log := logger.GetProjectLogger()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return player.RunHeadless(ctx, cfg, clock.RealClock{})
	})
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case <-quit:
			log.Println("shutting down cutscene")
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// logOutput picks where logs go. The TUI owns the terminal, so without a log file its logs are discarded.
func logOutput(s config.Settings, headless bool) (io.Writer, func(), error) {
	if s.LogFile != "" {
		f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	}
	if headless {
		return os.Stderr, func() {}, nil
	}
	return io.Discard, func() {}, nil
}
