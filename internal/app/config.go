package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"lifegrid/assets"
	"lifegrid/internal/life"
)

// Config holds the driver settings shared by the terminal and window front ends.
type Config struct {
	Grid        string
	Delay       time.Duration
	Style       string
	TUI         bool
	Scale       int
	TPS         int
	Seed        int64
	Generations int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Delay: 200 * time.Millisecond, Style: "bordered", Scale: 8, TPS: 60}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Grid, "grid", c.Grid, "grid file to load (default: built-in sample)")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause between generations")
	fs.StringVar(&c.Style, "style", c.Style, "text rendering: bordered or shaded")
	fs.BoolVar(&c.TUI, "tui", c.TUI, "draw into a full-screen terminal instead of printing")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "window ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "start from a random board with this seed instead of the sample")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many generations (0 runs forever)")
}

// FromMap overrides fields from flag-style key/value pairs. Unparseable
// values are reported rather than ignored.
func (c *Config) FromMap(kv map[string]string) error {
	var errs []error
	for key, v := range kv {
		var err error
		switch key {
		case "grid":
			c.Grid = v
		case "delay":
			c.Delay, err = time.ParseDuration(v)
		case "style":
			c.Style = v
		case "tui":
			c.TUI, err = strconv.ParseBool(v)
		case "scale":
			c.Scale, err = strconv.Atoi(v)
		case "tps":
			c.TPS, err = strconv.Atoi(v)
		case "seed":
			c.Seed, err = strconv.ParseInt(v, 10, 64)
		case "generations":
			c.Generations, err = strconv.Atoi(v)
		default:
			err = errors.New("unknown key")
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", key, v, err))
		}
	}
	return errors.Join(errs...)
}

// ParseOverrides turns "key=value" strings into a map for FromMap.
func ParseOverrides(pairs []string) (map[string]string, error) {
	kv := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("override %q is not key=value", p)
		}
		kv[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return kv, nil
}

// Validate reports settings that cannot run.
func (c *Config) Validate() error {
	if c.Delay < 0 {
		return fmt.Errorf("delay must not be negative, got %v", c.Delay)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations must not be negative, got %d", c.Generations)
	}
	if _, err := life.ParseStyle(c.Style); err != nil {
		return err
	}
	return nil
}

// TextStyle resolves the Style name, falling back to the bordered preset.
func (c *Config) TextStyle() life.Style {
	s, err := life.ParseStyle(c.Style)
	if err != nil {
		return life.Bordered
	}
	return s
}

// Engine builds the starting engine: the -grid file when set, otherwise a
// random board for a non-zero seed, otherwise the embedded sample.
func (c *Config) Engine() (*life.Engine, error) {
	switch {
	case c.Grid != "":
		return life.Load(c.Grid)
	case c.Seed != 0:
		e := life.New(life.Grid{})
		e.Reset(c.Seed)
		return e, nil
	default:
		return life.LoadReader(assets.SampleName, strings.NewReader(assets.Sample))
	}
}
