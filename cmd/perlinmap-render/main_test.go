package main

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"perlinmap/pkg/heightmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func TestRunWritesPNG(t *testing.T) {
	out := filepath.Join(t.TempDir(), "map.png")
	var stdout bytes.Buffer
	err := run([]string{"-w", "16", "-h", "12", "-seed", "42", "-octaves", "3", "-persistence", "0.5", "-noise-scale", "0.1", "-out", out}, &stdout)
	require.NoError(t, err)

	img := decodePNG(t, out)
	assert.Equal(t, image.Rect(0, 0, 16, 12), img.Bounds())
	assert.Contains(t, stdout.String(), "seed=42 ")

	grid, err := heightmap.Generate(42, 16, 12, heightmap.Params{Octaves: 3, Persistence: 0.5, Scale: 0.1})
	require.NoError(t, err)
	want := heightmap.SmoothAndRasterize(grid)
	gray, ok := img.(*image.Gray)
	require.True(t, ok, "expected *image.Gray, got %T", img)
	for y := 0; y < 12; y++ {
		for x := 0; x < 16; x++ {
			require.Equal(t, want.At(x, y), gray.GrayAt(x, y).Y, "pixel (%d,%d)", x, y)
		}
	}
}

func TestRunMultipleSeeds(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer
	err := run([]string{"-w", "8", "-h", "8", "-seed", "-1", "-seeds", "3", "-field", "noise", "-out", filepath.Join(dir, "n.png")}, &stdout)
	require.NoError(t, err)
	for _, name := range []string{"n--1.png", "n-0.png", "n-1.png"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, "missing %s", name)
	}
	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "seed=-1 "))
	assert.True(t, strings.HasPrefix(lines[3], "seed=1 "))
}

func TestRunRejectsZeroOctaves(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bad.png")
	err := run([]string{"-w", "4", "-h", "4", "-octaves", "0", "-out", out}, &bytes.Buffer{})
	assert.ErrorIs(t, err, heightmap.ErrInvalidConfiguration)
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no file should be written on failure")
}

func TestRunRejectsBadInput(t *testing.T) {
	assert.Error(t, run([]string{"-field", "simplex"}, &bytes.Buffer{}))
	assert.Error(t, run([]string{"-seeds", "0"}, &bytes.Buffer{}))
	assert.Error(t, run([]string{"-seed", "abc"}, &bytes.Buffer{}))
	assert.ErrorIs(t, run([]string{"-w", "0", "-h", "4"}, &bytes.Buffer{}), heightmap.ErrInvalidDimensions)
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "a/map.png", outputPath("a/map.png", 5, 1))
	assert.Equal(t, "a/map-5.png", outputPath("a/map.png", 5, 2))
	assert.Equal(t, "map--3", outputPath("map", -3, 4))
}
