package tonecurve

// CurvePoint is one sample of the effective tone curve.
type CurvePoint struct {
	X uint8 `json:"x"`
	Y uint8 `json:"y"`
}

// Curve is the tone response of a parameter set, sampled over a neutral
// 256-step ramp. Points are ordered with X ascending 0..255. The curve is
// recomputed from scratch on every parameter change and doubles as a 1-D
// lookup table for 8-bit previews.
type Curve [256]CurvePoint

// SampleCurve runs a synthetic achromatic gradient through the pipeline
// and records the red-channel response. It captures the effective tone
// mapping of the settings, not per-channel or saturation effects.
func SampleCurve(p Params) Curve {
	var out Curve
	for i := 0; i < 256; i++ {
		v := float32(i) / 255
		res := Transform(RGBA{R: v, G: v, B: v, A: 1}, p)
		out[i] = CurvePoint{X: uint8(i), Y: clampToByte(res.R * 255)}
	}
	return out
}

// LUT flattens the curve into a 256-entry lookup table.
func (c Curve) LUT() [256]uint8 {
	var lut [256]uint8
	for i, pt := range c {
		lut[i] = pt.Y
	}
	return lut
}

// ApplyLUT maps every color channel of an RGBA8 buffer through lut in
// place. Alpha bytes are untouched. This approximates the full transform
// for neutral content and serves fast previews.
func ApplyLUT(pix []uint8, lut *[256]uint8) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] = lut[pix[i]]
		pix[i+1] = lut[pix[i+1]]
		pix[i+2] = lut[pix[i+2]]
	}
}
