package heightmap

import (
	"context"

	"perlinmap/pkg/perlin"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"
)

// Generator produces height grids from a single permutation table.
type Generator struct {
	table *perlin.Table
}

// NewGenerator builds the permutation table for seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{table: perlin.BuildTable(seed)}
}

// Seed returns the seed the generator was built from.
func (g *Generator) Seed() int64 { return g.table.Seed() }

// Table exposes the generator's permutation table.
func (g *Generator) Table() *perlin.Table { return g.table }

// Generate builds a fresh permutation table for seed and returns a
// width x height grid of fractal heights.
func Generate(seed int64, width, height int, p Params) (*Grid, error) {
	return NewGenerator(seed).Generate(context.Background(), width, height, p)
}

// Generate returns a width x height grid of normalized fractal heights. The
// output does not depend on p.Workers. Cancellation is observed between rows.
func (g *Generator) Generate(ctx context.Context, width, height int, p Params) (*Grid, error) {
	if err := validate(width, height, p); err != nil {
		return nil, err
	}
	grid := NewGrid(width, height)

	if p.Workers < 2 || height == 1 {
		for y := 0; y < height; y++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			g.fillRow(grid, y, p)
		}
		return grid, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(p.Workers)
	for y := 0; y < height; y++ {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			g.fillRow(grid, y, p)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return grid, nil
}

// Sample returns the normalized fractal height at grid cell (x, y).
func (g *Generator) Sample(x, y int, p Params) float64 {
	return fractal(g.table, float64(x), float64(y), p)
}

func (g *Generator) fillRow(grid *Grid, y int, p Params) {
	row := grid.Row(y)
	fy := float64(y)
	for x := range row {
		row[x] = fractal(g.table, float64(x), fy, p)
	}
}

// fractal requires validated params: maxValue is never zero and neither
// frequency nor amplitude overflows.
func fractal(t *perlin.Table, x, y float64, p Params) float64 {
	total := 0.0
	frequency := 1.0
	amplitude := 1.0
	maxValue := 0.0
	for o := 0; o < p.Octaves; o++ {
		total += t.Noise(x*p.Scale*frequency, y*p.Scale*frequency) * amplitude
		maxValue += amplitude
		amplitude *= p.Persistence
		frequency *= 2
	}
	return total / maxValue
}

func validate(width, height int, p Params) error {
	return multierr.Combine(validateSize(width, height), p.Validate())
}
