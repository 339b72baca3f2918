// Package fields adapts the height-map engine to the viewer's Field contract.
package fields

import (
	"context"
	"math"
	"strconv"

	"perlinmap/internal/core"
	"perlinmap/pkg/heightmap"
)

// Registered field names.
const (
	NameHeightmap = "heightmap"
	NameNoise     = "noise"
)

// Perlin renders a fractal height map. When smooth is set the interior is
// averaged before rasterizing, as the reference viewer displays it.
type Perlin struct {
	name   string
	smooth bool
	cfg    Config

	gen    *heightmap.Generator
	grid   *heightmap.Grid
	raster *heightmap.Raster
	cells  []uint8

	dirty bool
	err   error
}

// New returns a field that regenerates lazily on the next Step.
func New(name string, smooth bool, cfg Config) *Perlin {
	total := cfg.Width * cfg.Height
	if total < 0 {
		total = 0
	}
	return &Perlin{
		name:   name,
		smooth: smooth,
		cfg:    cfg,
		gen:    heightmap.NewGenerator(cfg.Seed),
		cells:  make([]uint8, total),
		dirty:  true,
	}
}

// Name returns the field identifier.
func (p *Perlin) Name() string { return p.name }

// Size reports the raster dimensions.
func (p *Perlin) Size() core.Size { return core.Size{W: p.cfg.Width, H: p.cfg.Height} }

// Cells exposes the current intensity buffer.
func (p *Perlin) Cells() []uint8 { return p.cells }

// Seed returns the active seed.
func (p *Perlin) Seed() int64 { return p.cfg.Seed }

// Config returns a copy of the active configuration.
func (p *Perlin) Config() Config { return p.cfg }

// Grid returns the last generated height grid, or nil before the first Step.
func (p *Perlin) Grid() *heightmap.Grid { return p.grid }

// Raster returns the last rasterized output, or nil before the first Step.
func (p *Perlin) Raster() *heightmap.Raster { return p.raster }

// Err reports the error from the last regeneration attempt.
func (p *Perlin) Err() error { return p.err }

// Reset rebuilds the permutation table for seed and regenerates.
func (p *Perlin) Reset(seed int64) {
	p.cfg.Seed = seed
	p.gen = heightmap.NewGenerator(seed)
	p.dirty = true
	p.Step()
}

// Step regenerates the map if any parameter changed since the last call.
func (p *Perlin) Step() {
	if !p.dirty {
		return
	}
	p.dirty = false
	grid, err := p.gen.Generate(context.Background(), p.cfg.Width, p.cfg.Height, p.cfg.Params)
	p.err = err
	if err != nil {
		return
	}
	p.grid = grid
	if p.smooth {
		p.raster = heightmap.SmoothAndRasterize(grid)
	} else {
		p.raster = heightmap.Rasterize(grid)
	}
	copy(p.cells, p.raster.Pix)
}

// Parameters reports the current values for the HUD.
func (p *Perlin) Parameters() core.ParameterSnapshot {
	params := p.cfg.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				intParam("w", "Width", int64(p.cfg.Width)),
				intParam("h", "Height", int64(p.cfg.Height)),
				intParam("seed", "Seed", p.cfg.Seed),
			},
		},
		{
			Name: "Fractal",
			Params: []core.Parameter{
				intParam("octaves", "Octaves", int64(params.Octaves)),
				floatParam("persistence", "Persistence", params.Persistence),
				floatParam("scale", "Scale", params.Scale),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (p *Perlin) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "octaves", Label: "Octaves", Type: core.ParamTypeInt, Step: 1, Min: MinOctaves, Max: MaxOctaves, HasMin: true, HasMax: true},
		{Key: "persistence", Label: "Persistence", Type: core.ParamTypeFloat, Step: 0.01, Min: MinPersistence, Max: MaxPersistence, HasMin: true, HasMax: true},
		{Key: "scale", Label: "Scale", Type: core.ParamTypeFloat, Step: 0.01, Min: MinScale, Max: MaxScale, HasMin: true, HasMax: true},
		{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Step: 1},
	}
}

// SetIntParameter updates octaves or the seed.
func (p *Perlin) SetIntParameter(key string, value int64) bool {
	switch key {
	case "octaves":
		v := int(value)
		if int64(v) != value {
			v = MaxOctaves
		}
		v = clampInt(v, MinOctaves, MaxOctaves)
		if v != p.cfg.Params.Octaves {
			p.cfg.Params.Octaves = v
			p.dirty = true
		}
		return true
	case "seed":
		if value != p.cfg.Seed {
			p.cfg.Seed = value
			p.gen = heightmap.NewGenerator(value)
			p.dirty = true
		}
		return true
	}
	return false
}

// SetFloatParameter updates persistence or scale.
func (p *Perlin) SetFloatParameter(key string, value float64) bool {
	if math.IsNaN(value) {
		return false
	}
	switch key {
	case "persistence":
		v := clampFloat(value, MinPersistence, MaxPersistence)
		if v != p.cfg.Params.Persistence {
			p.cfg.Params.Persistence = v
			p.dirty = true
		}
		return true
	case "scale":
		v := clampFloat(value, MinScale, MaxScale)
		if v != p.cfg.Params.Scale {
			p.cfg.Params.Scale = v
			p.dirty = true
		}
		return true
	}
	return false
}

func intParam(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func init() {
	core.Register(NameHeightmap, func(cfg map[string]string) core.Field {
		return New(NameHeightmap, true, FromMap(cfg))
	})
	core.Register(NameNoise, func(cfg map[string]string) core.Field {
		return New(NameNoise, false, FromMap(cfg))
	})
}
