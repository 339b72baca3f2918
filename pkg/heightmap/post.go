package heightmap

import "math"

// Smooth returns a copy of g with every interior cell replaced by the mean of
// its four edge neighbours. Border cells are copied unfiltered.
func Smooth(g *Grid) *Grid {
	out := NewGrid(g.W, g.H)
	copy(out.data, g.data)
	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			sum := g.At(x-1, y) + g.At(x+1, y) + g.At(x, y-1) + g.At(x, y+1)
			out.Set(x, y, sum/4)
		}
	}
	return out
}

// Intensity maps a height in [-1, 1] onto [0, 255].
func Intensity(h float64) uint8 {
	v := math.Round((h + 1) * 127.5)
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// Rasterize converts heights into 8-bit intensities.
func Rasterize(g *Grid) *Raster {
	r := NewRaster(g.W, g.H)
	for i, h := range g.data {
		r.Pix[i] = Intensity(h)
	}
	return r
}

// SmoothAndRasterize applies Smooth and then Rasterize.
func SmoothAndRasterize(g *Grid) *Raster {
	return Rasterize(Smooth(g))
}
