package fields

import (
	"strconv"

	"perlinmap/pkg/heightmap"
)

// Ranges exposed by the viewer controls.
const (
	MinOctaves     = 1
	MaxOctaves     = 20
	MinPersistence = 0.01
	MaxPersistence = 1.0
	MinScale       = 0.01
	MaxScale       = 1.0
)

// Config controls the field dimensions, seed and fractal parameters.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params heightmap.Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  512,
		Height: 512,
		Seed:   42,
		Params: heightmap.DefaultParams(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range entries keep their defaults; fractal values are
// clamped to the viewer ranges.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Params.Octaves = clampInt(parsed, MinOctaves, MaxOctaves)
		}
	}
	if v, ok := cfg["persistence"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Persistence = clampFloat(parsed, MinPersistence, MaxPersistence)
		}
	}
	if v, ok := cfg["scale"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Scale = clampFloat(parsed, MinScale, MaxScale)
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.Workers = parsed
		}
	}
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampFloat maps NaN to lo.
func clampFloat(v, lo, hi float64) float64 {
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
