package config

import (
	"errors"
	"fmt"
	"image"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/coreman2200/flamesim/internal/layout"
	"github.com/coreman2200/flamesim/internal/sequence"
)

var ErrInvalidConfig = errors.New("invalid config")

// Point is an LED position as written in YAML: [x, y].
type Point [2]int

// CandleCfg overrides the candle scene's LED groups.
type CandleCfg struct {
	Base         []int   `yaml:"base"`
	Wick         []int   `yaml:"wick"`
	Flame        []int   `yaml:"flame"`
	BaseX        int     `yaml:"base_x"`
	BaseY        int     `yaml:"base_y"`
	FlameOriginY float64 `yaml:"flame_origin_y"`
}

type LogCfg struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

type Config struct {
	Layout        string            `yaml:"layout"`
	LEDs          []Point           `yaml:"leds,omitempty"`
	Candle        *CandleCfg        `yaml:"candle,omitempty"`
	FPS           int               `yaml:"fps"`
	Intensity     float64           `yaml:"intensity"`
	IntensityStep float64           `yaml:"intensity_step"`
	WhiteCap      float64           `yaml:"white_cap"`
	Log           LogCfg            `yaml:"log"`
	Program       *sequence.Program `yaml:"program,omitempty"`
}

// Default is what runs with no config file.
func Default() *Config {
	return &Config{
		Layout:        layout.Default,
		FPS:           30,
		Intensity:     1,
		IntensityStep: 0.05,
		Log:           LogCfg{File: "flamesim.log", Level: "info"},
	}
}

// Load reads path over the defaults. Fields missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

// Validate checks ranges and that the layout resolves.
func (c *Config) Validate() error {
	if c.FPS <= 0 || c.FPS > 240 {
		return invalid("fps %d outside (0,240]", c.FPS)
	}
	if c.Intensity < 0 || c.Intensity > 1 {
		return invalid("intensity %v outside [0,1]", c.Intensity)
	}
	if c.IntensityStep <= 0 || c.IntensityStep > 1 {
		return invalid("intensity_step %v outside (0,1]", c.IntensityStep)
	}
	if c.WhiteCap < 0 || c.WhiteCap > 1 {
		return invalid("white_cap %v outside [0,1]", c.WhiteCap)
	}
	rev, err := c.Revision()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := rev.Candle.Validate(len(rev.Points)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Program != nil {
		if err := c.Program.Validate(nil); err != nil {
			return fmt.Errorf("%w: program: %w", ErrInvalidConfig, err)
		}
	}
	return nil
}

// Revision resolves the LED layout: explicit leds win over a named layout.
func (c *Config) Revision() (layout.Revision, error) {
	var (
		rev layout.Revision
		err error
	)
	if len(c.LEDs) > 0 {
		pts := make([]image.Point, len(c.LEDs))
		for i, p := range c.LEDs {
			pts[i] = image.Pt(p[0], p[1])
		}
		rev, err = layout.FromPoints("custom", pts)
	} else {
		rev, err = layout.Lookup(c.Layout)
	}
	if err != nil {
		return layout.Revision{}, err
	}
	if c.Candle != nil {
		rev.Candle = layout.CandleGroups{
			Base:         c.Candle.Base,
			Wick:         c.Candle.Wick,
			Flame:        c.Candle.Flame,
			CandleBase:   image.Pt(c.Candle.BaseX, c.Candle.BaseY),
			FlameOriginY: c.Candle.FlameOriginY,
		}
	}
	return rev, nil
}

// LoadProgram reads a standalone program file.
func LoadProgram(path string) (*sequence.Program, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p sequence.Program
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := p.Validate(nil); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrInvalidConfig, err)
	}
	return &p, nil
}
