package app

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"perlinmap/pkg/heightmap"

	"gopkg.in/yaml.v3"
)

// Config represents the command-line and preset-file parameters shared by the
// viewer and the headless renderer.
type Config struct {
	Field  string `yaml:"field"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Seed   int64  `yaml:"seed"`

	heightmap.Params `yaml:",inline"`

	Scale    int    `yaml:"pixel_scale"`
	HUDWidth int    `yaml:"hud_width"`
	TPS      int    `yaml:"tps"`
	Theme    string `yaml:"theme"`

	Out   string `yaml:"out"`
	Seeds int    `yaml:"seeds"`

	ConfigPath string `yaml:"-"`
}

// NewConfig returns a Config populated with the reference viewer's defaults.
func NewConfig() *Config {
	return &Config{
		Field:    "heightmap",
		Width:    512,
		Height:   512,
		Seed:     42,
		Params:   heightmap.Params{Octaves: 12, Persistence: 1, Scale: 0.01, Workers: runtime.NumCPU()},
		Scale:    1,
		HUDWidth: 220,
		TPS:      60,
		Theme:    "light",
		Out:      "heightmap.png",
		Seeds:    1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML preset file; explicit flags override it")
	fs.StringVar(&c.Field, "field", c.Field, "field to render (heightmap or noise)")
	fs.IntVar(&c.Width, "w", c.Width, "map width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "map height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "noise seed")
	fs.IntVar(&c.Octaves, "octaves", c.Octaves, "number of octaves")
	fs.Float64Var(&c.Persistence, "persistence", c.Persistence, "amplitude decay per octave")
	fs.Float64Var(&c.Params.Scale, "noise-scale", c.Params.Scale, "coordinate scale before sampling")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used to generate rows")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.Theme, "theme", c.Theme, "light or dark")
	fs.StringVar(&c.Out, "out", c.Out, "PNG output path")
	fs.IntVar(&c.Seeds, "seeds", c.Seeds, "number of consecutive seeds to render")
}

// Load binds c to fs and parses args. When -config names a file, its values
// are applied and args are parsed again so explicit flags win.
func (c *Config) Load(fs *flag.FlagSet, args []string) error {
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if c.ConfigPath == "" {
		return nil
	}
	if err := c.LoadFile(c.ConfigPath); err != nil {
		return err
	}
	return fs.Parse(args)
}

// LoadFile overlays the YAML preset at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config yaml %s: %w", path, err)
	}
	return nil
}

// FieldOptions converts the config into the key/value form field factories
// accept.
func (c *Config) FieldOptions() map[string]string {
	return map[string]string{
		"w":           strconv.Itoa(c.Width),
		"h":           strconv.Itoa(c.Height),
		"seed":        strconv.FormatInt(c.Seed, 10),
		"octaves":     strconv.Itoa(c.Octaves),
		"persistence": strconv.FormatFloat(c.Persistence, 'f', -1, 64),
		"scale":       strconv.FormatFloat(c.Params.Scale, 'f', -1, 64),
		"workers":     strconv.Itoa(c.Workers),
	}
}
