package render

// fillGrayRGBA expands 8-bit intensities into opaque RGBA pixels in buf.
func fillGrayRGBA(buf []byte, cells []uint8) {
	for i, c := range cells {
		base := i * 4
		buf[base+0] = c
		buf[base+1] = c
		buf[base+2] = c
		buf[base+3] = 0xff
	}
}
