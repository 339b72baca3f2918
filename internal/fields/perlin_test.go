package fields

import (
	"math"
	"slices"
	"testing"

	"perlinmap/internal/core"
	"perlinmap/pkg/heightmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Seed = 99
	cfg.Params.Octaves = 4
	cfg.Params.Persistence = 0.5
	cfg.Params.Scale = 0.05
	return cfg
}

func TestStepMatchesEngine(t *testing.T) {
	cfg := smallConfig()
	field := New(NameHeightmap, true, cfg)
	field.Step()
	require.NoError(t, field.Err())

	grid, err := heightmap.Generate(cfg.Seed, cfg.Width, cfg.Height, cfg.Params)
	require.NoError(t, err)
	want := heightmap.SmoothAndRasterize(grid).Pix
	assert.Equal(t, want, field.Cells())
	assert.Equal(t, grid.Values(), field.Grid().Values())
}

func TestNoiseFieldIsUnsmoothed(t *testing.T) {
	cfg := smallConfig()
	field := New(NameNoise, false, cfg)
	field.Step()

	grid, err := heightmap.Generate(cfg.Seed, cfg.Width, cfg.Height, cfg.Params)
	require.NoError(t, err)
	assert.Equal(t, heightmap.Rasterize(grid).Pix, field.Cells())
}

func TestResetDeterministic(t *testing.T) {
	field := New(NameHeightmap, true, smallConfig())
	field.Reset(777)
	first := slices.Clone(field.Cells())

	field.Cells()[0] ^= 0xff
	field.Reset(777)
	assert.Equal(t, first, field.Cells())
	assert.Equal(t, int64(777), field.Seed())

	field.Reset(778)
	assert.NotEqual(t, first, field.Cells(), "different seeds should produce different maps")
}

func TestStepOnlyRegeneratesWhenDirty(t *testing.T) {
	field := New(NameHeightmap, true, smallConfig())
	field.Step()
	grid := field.Grid()
	field.Step()
	assert.Same(t, grid, field.Grid())

	require.True(t, field.SetFloatParameter("scale", 0.2))
	field.Step()
	assert.NotSame(t, grid, field.Grid())
}

func TestSettersClampToViewerRanges(t *testing.T) {
	field := New(NameHeightmap, true, smallConfig())

	assert.True(t, field.SetIntParameter("octaves", 0))
	assert.Equal(t, MinOctaves, field.Config().Params.Octaves)
	assert.True(t, field.SetIntParameter("octaves", 50))
	assert.Equal(t, MaxOctaves, field.Config().Params.Octaves)
	assert.True(t, field.SetIntParameter("octaves", 1<<40))
	assert.Equal(t, MaxOctaves, field.Config().Params.Octaves)

	assert.True(t, field.SetFloatParameter("persistence", 0))
	assert.Equal(t, MinPersistence, field.Config().Params.Persistence)
	assert.True(t, field.SetFloatParameter("scale", 3))
	assert.Equal(t, MaxScale, field.Config().Params.Scale)

	assert.False(t, field.SetFloatParameter("scale", math.NaN()))
	assert.False(t, field.SetFloatParameter("unknown", 1))
	assert.False(t, field.SetIntParameter("unknown", 1))
}

func TestSeedParameterRebuildsTable(t *testing.T) {
	a := New(NameHeightmap, true, smallConfig())
	require.True(t, a.SetIntParameter("seed", -5))
	a.Step()

	cfg := smallConfig()
	cfg.Seed = -5
	b := New(NameHeightmap, true, cfg)
	b.Step()
	assert.Equal(t, b.Cells(), a.Cells())
}

func TestParametersSnapshot(t *testing.T) {
	field := New(NameHeightmap, true, smallConfig())
	snap := field.Parameters()
	for key, want := range map[string]string{
		"w":           "32",
		"h":           "24",
		"seed":        "99",
		"octaves":     "4",
		"persistence": "0.5",
		"scale":       "0.05",
	} {
		p, ok := snap.Lookup(key)
		require.True(t, ok, "missing %q", key)
		assert.Equal(t, want, p.Value, "param %q", key)
	}
	for _, ctrl := range field.ParameterControls() {
		_, ok := snap.Lookup(ctrl.Key)
		assert.True(t, ok, "control %q has no snapshot value", ctrl.Key)
	}
}

func TestInvalidSizeReportsError(t *testing.T) {
	cfg := smallConfig()
	cfg.Width = 0
	field := New(NameHeightmap, true, cfg)
	field.Step()
	assert.ErrorIs(t, field.Err(), heightmap.ErrInvalidDimensions)
	assert.Empty(t, field.Cells())
}

func TestRegistered(t *testing.T) {
	for _, name := range []string{NameHeightmap, NameNoise} {
		factory, ok := core.Fields()[name]
		require.True(t, ok, "field %q not registered", name)
		f := factory(map[string]string{"w": "8", "h": "6"})
		assert.Equal(t, name, f.Name())
		assert.Equal(t, core.Size{W: 8, H: 6}, f.Size())
		f.Step()
		assert.Len(t, f.Cells(), 48)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":           "64",
		"h":           "-1",
		"seed":        "-12",
		"octaves":     "99",
		"persistence": "0.25",
		"scale":       "nope",
		"workers":     "4",
	})
	assert.Equal(t, 64, c.Width)
	assert.Equal(t, DefaultConfig().Height, c.Height)
	assert.Equal(t, int64(-12), c.Seed)
	assert.Equal(t, MaxOctaves, c.Params.Octaves)
	assert.Equal(t, 0.25, c.Params.Persistence)
	assert.Equal(t, DefaultConfig().Params.Scale, c.Params.Scale)
	assert.Equal(t, 4, c.Params.Workers)

	assert.Equal(t, DefaultConfig(), FromMap(nil))
}
