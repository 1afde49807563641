package tonecurve

// Histogram holds 256-bin channel counts for one RGBA8 buffer. Each array
// sums to the pixel count of the analyzed buffer.
type Histogram struct {
	R    [256]uint32 `json:"r"`
	G    [256]uint32 `json:"g"`
	B    [256]uint32 `json:"b"`
	Luma [256]uint32 `json:"luma"`
}

// Analyze computes per-channel and BT.709 luma histograms over a
// straight-alpha RGBA8 buffer in a single linear pass. A zero-sized or
// short buffer yields a zero histogram rather than an error.
func Analyze(pix []uint8, w, h int) Histogram {
	var hist Histogram
	if w <= 0 || h <= 0 || len(pix) < w*h*4 {
		return hist
	}
	n := w * h * 4
	for i := 0; i < n; i += 4 {
		r := pix[i]
		g := pix[i+1]
		b := pix[i+2]
		hist.R[r]++
		hist.G[g]++
		hist.B[b]++
		luma := lumaR709*float32(r) + lumaG709*float32(g) + lumaB709*float32(b)
		hist.Luma[clampToByte(luma)]++
	}
	return hist
}
