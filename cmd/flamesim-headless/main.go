// Command flamesim-headless renders a scene or a program without a UI and
// logs a summary of each frame.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/coreman2200/flamesim/internal/app"
	"github.com/coreman2200/flamesim/internal/config"
	"github.com/coreman2200/flamesim/internal/driver/fake"
	"github.com/coreman2200/flamesim/internal/sequence"
)

var (
	configPath  = ""
	sceneName   = "Candle flame (colored)"
	programPath = ""
	frames      = 90
	fps         = 30
	intensity   = 1.0
	every       = 10
	verbose     = false
)

func init() {
	pflag.StringVarP(&configPath, "config", "c", configPath, "YAML config file")
	pflag.StringVarP(&sceneName, "scene", "s", sceneName, "scene to render")
	pflag.StringVarP(&programPath, "program", "p", programPath, "program YAML file; overrides --scene")
	pflag.IntVarP(&frames, "frames", "n", frames, "frames to render; 0 runs until interrupted")
	pflag.IntVar(&fps, "fps", fps, "frames per second")
	pflag.Float64VarP(&intensity, "intensity", "i", intensity, "intensity in [0,1]")
	pflag.IntVar(&every, "every", every, "log one frame in this many")
	pflag.BoolVarP(&verbose, "verbose", "v", verbose, "verbose logging")
}

func main() {
	log.SetFlags(0)
	pflag.Parse()

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05.000",
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	}).Level(level).With().Timestamp().Logger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, logger); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, logger zerolog.Logger) error {
	cfg := config.Default()
	if configPath != "" {
		c, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	}
	if pflag.CommandLine.Changed("fps") || configPath == "" {
		cfg.FPS = fps
	}
	if pflag.CommandLine.Changed("intensity") || configPath == "" {
		cfg.Intensity = intensity
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	rev, err := cfg.Revision()
	if err != nil {
		return err
	}

	drvLog := logger.With().Str("component", "driver").Logger()
	core, err := app.InitCore(app.Options{
		Revision:  rev,
		Driver:    fake.New(drvLog, every),
		Intensity: cfg.Intensity,
		WhiteCap:  cfg.WhiteCap,
		Log:       &logger,
	})
	if err != nil {
		return err
	}

	var prog *sequence.Program
	switch {
	case programPath != "":
		if prog, err = config.LoadProgram(programPath); err != nil {
			return err
		}
	case cfg.Program != nil && !pflag.CommandLine.Changed("scene"):
		prog = cfg.Program
	}

	if prog != nil {
		if err := core.Play(*prog); err != nil {
			return err
		}
		logger.Info().Str("program", prog.Name).Bool("loop", prog.Loop).
			Float64("duration_s", core.Seq.Duration()).Msg("playing program")
	} else {
		if err := core.Eng.SelectByName(sceneName); err != nil {
			return fmt.Errorf("scene %q: %w (have %q)", sceneName, err, core.Reg.Names())
		}
		logger.Info().Str("scene", sceneName).Msg("rendering scene")
	}

	c := app.Conductor{Core: core, FPS: cfg.FPS, Frames: frames, Log: &logger}
	start := time.Now()
	err = c.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	logger.Info().Dur("took", time.Since(start)).Msg("done")
	return err
}
