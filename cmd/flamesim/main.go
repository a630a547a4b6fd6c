package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/coreman2200/flamesim/internal/app"
	"github.com/coreman2200/flamesim/internal/config"
	"github.com/coreman2200/flamesim/internal/tui"
)

var (
	configPath = "flamesim.yaml"
	layoutName = ""
	fps        = 0
	intensity  = 1.0
	logFile    = ""
	verbose    = false
	noIntro    = false
	help       = false
)

func init() {
	pflag.StringVarP(&configPath, "config", "c", configPath, "YAML config file")
	pflag.StringVar(&layoutName, "layout", layoutName, "board layout revision")
	pflag.IntVar(&fps, "fps", fps, "frames per second")
	pflag.Float64VarP(&intensity, "intensity", "i", intensity, "starting intensity in [0,1]")
	pflag.StringVar(&logFile, "log-file", logFile, "log file (the terminal is taken by the UI)")
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "verbose logging")
	pflag.BoolVar(&noIntro, "no-intro", noIntro, "open straight on the scene menu")
	pflag.BoolVarP(&help, "help", "h", help, "show this help")
}

func main() {
	log.SetFlags(0)
	pflag.Parse()

	if help {
		fmt.Print(tui.Welcome)
		fmt.Println()
		fmt.Println("Usage: flamesim [flags]")
		pflag.PrintDefaults()
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !pflag.CommandLine.Changed("config") {
			cfg, err = config.Default(), nil
		} else {
			return config.Default(), err
		}
	}
	flags := pflag.CommandLine
	if flags.Changed("layout") {
		cfg.Layout = layoutName
		cfg.LEDs = nil
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("intensity") {
		cfg.Intensity = intensity
	}
	if flags.Changed("log-file") {
		cfg.Log.File = logFile
	}
	if verbose {
		cfg.Log.Level = "debug"
	}
	return cfg, cfg.Validate()
}

func openLog(cfg config.LogCfg) (zerolog.Logger, io.Closer, error) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	if cfg.File == "" {
		return zerolog.Nop(), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), io.NopCloser(nil), fmt.Errorf("failed to open log file %q: %w", cfg.File, err)
	}
	w := zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: "15:04:05.000"}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), f, nil
}

func run(ctx context.Context) error {
	cfg, cfgErr := loadConfig()
	if cfgErr != nil {
		// Fall back to defaults; the flags that were given still apply
		// where they validate on their own.
		cfg = config.Default()
		if pflag.CommandLine.Changed("layout") {
			cfg.Layout = layoutName
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, closer, err := openLog(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	if cfgErr != nil {
		logger.Warn().Err(cfgErr).Str("path", configPath).Msg("config rejected, using defaults")
	}

	rev, err := cfg.Revision()
	if err != nil {
		return err
	}

	core, err := app.InitCore(app.Options{
		Revision:  rev,
		Intensity: cfg.Intensity,
		WhiteCap:  cfg.WhiteCap,
		Log:       &logger,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize simulator: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	defer screen.Fini()

	logger.Info().
		Str("layout", rev.Name).
		Int("leds", len(rev.Points)).
		Int("fps", cfg.FPS).
		Msg("starting")

	ui := tui.New(screen, core, tui.Options{
		FPS:           cfg.FPS,
		IntensityStep: cfg.IntensityStep,
		Program:       cfg.Program,
		SkipIntro:     noIntro,
		Log:           &logger,
	})
	if err := ui.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info().Msg("bye")
	return nil
}
