package heightmap

import "math"

// Grid stores normalized heights in row-major order.
type Grid struct {
	W, H int
	data []float64
}

// NewGrid allocates a zeroed grid. Callers validate dimensions first.
func NewGrid(w, h int) *Grid {
	return &Grid{W: w, H: h, data: make([]float64, w*h)}
}

// At returns the height at (x, y).
func (g *Grid) At(x, y int) float64 { return g.data[y*g.W+x] }

// Set stores the height at (x, y).
func (g *Grid) Set(x, y int, v float64) { g.data[y*g.W+x] = v }

// Values exposes the backing slice.
func (g *Grid) Values() []float64 { return g.data }

// Row returns the slice backing row y.
func (g *Grid) Row(y int) []float64 { return g.data[y*g.W : (y+1)*g.W] }

// Stats summarizes a grid's values.
type Stats struct {
	Min, Max, Mean float64
}

// Stats computes the min, max and mean height. An empty grid yields zeros.
func (g *Grid) Stats() Stats {
	if len(g.data) == 0 {
		return Stats{}
	}
	s := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	var sum float64
	for _, v := range g.data {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		sum += v
	}
	s.Mean = sum / float64(len(g.data))
	return s
}

// Raster stores 8-bit intensities in row-major order.
type Raster struct {
	W, H int
	Pix  []uint8
}

// NewRaster allocates a zeroed raster.
func NewRaster(w, h int) *Raster {
	return &Raster{W: w, H: h, Pix: make([]uint8, w*h)}
}

// At returns the intensity at (x, y).
func (r *Raster) At(x, y int) uint8 { return r.Pix[y*r.W+x] }
