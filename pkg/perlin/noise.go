package perlin

import "math"

// Noise returns gradient noise at (x, y), nominally in [-1, 1].
func (t *Table) Noise(x, y float64) float64 {
	fx0 := math.Floor(x)
	fy0 := math.Floor(y)
	xi := int(fx0) & (Period - 1)
	yi := int(fy0) & (Period - 1)

	x -= fx0
	y -= fy0

	u := fade(x)
	v := fade(y)

	p := &t.p
	aa := p[p[xi]+yi]
	ab := p[p[xi]+yi+1]
	ba := p[p[xi+1]+yi]
	bb := p[p[xi+1]+yi+1]

	x1 := lerp(grad(aa, x, y), grad(ba, x-1, y), u)
	x2 := lerp(grad(ab, x, y-1), grad(bb, x-1, y-1), u)
	return lerp(x1, x2, v)
}

// Noise is the free-function form of (*Table).Noise.
func Noise(t *Table, x, y float64) float64 { return t.Noise(x, y) }

// fade is the quintic 6t^5 - 15t^4 + 10t^3.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// grad dots the offset with one of four diagonal gradients picked by the low
// two bits of hash.
func grad(hash int, x, y float64) float64 {
	h := hash & 3
	u, v := x, y
	if h >= 2 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}
