package tonecurve

import "github.com/chewxy/math32"

// Params is the full set of grading adjustments. The zero value is not
// neutral; use DefaultParams for the identity setting.
type Params struct {
	Temperature float32 `json:"temperature" toml:"temperature"` // white balance, Kelvin, 2000-12000
	Tint        float32 `json:"tint" toml:"tint"`               // green-magenta balance, -150-150
	Exposure    float32 `json:"exposure" toml:"exposure"`       // stops (EV), -5-5
	Highlights  float32 `json:"highlights" toml:"highlights"`   // bright tone recovery, -100-100
	Shadows     float32 `json:"shadows" toml:"shadows"`         // dark tone recovery, -100-100
	Whites      float32 `json:"whites" toml:"whites"`           // white point shift, -100-100
	Blacks      float32 `json:"blacks" toml:"blacks"`           // black point shift, -100-100
	Contrast    float32 `json:"contrast" toml:"contrast"`       // 0-100, 50 is identity
	Vibrance    float32 `json:"vibrance" toml:"vibrance"`       // saturation-weighted saturation, -100-100
	Saturation  float32 `json:"saturation" toml:"saturation"`   // global saturation, -100-100
}

// DefaultParams returns the neutral parameter set. Rendering with it
// reproduces the source image.
func DefaultParams() Params {
	return Params{Temperature: defaultTemperature, Contrast: defaultContrast}
}

// Clamped returns a copy with every field forced into its declared range.
// Non-finite values reset to the field default. The render path clamps on
// entry, so out-of-range values never reach the pipeline.
func (p Params) Clamped() Params {
	d := DefaultParams()
	p.Temperature = clampField(p.Temperature, 2000, 12000, d.Temperature)
	p.Tint = clampField(p.Tint, -150, 150, d.Tint)
	p.Exposure = clampField(p.Exposure, -5, 5, d.Exposure)
	p.Highlights = clampField(p.Highlights, -100, 100, d.Highlights)
	p.Shadows = clampField(p.Shadows, -100, 100, d.Shadows)
	p.Whites = clampField(p.Whites, -100, 100, d.Whites)
	p.Blacks = clampField(p.Blacks, -100, 100, d.Blacks)
	p.Contrast = clampField(p.Contrast, 0, 100, d.Contrast)
	p.Vibrance = clampField(p.Vibrance, -100, 100, d.Vibrance)
	p.Saturation = clampField(p.Saturation, -100, 100, d.Saturation)
	return p
}

func clampField(v, lo, hi, fallback float32) float32 {
	if math32.IsNaN(v) {
		return fallback
	}
	return clampf(v, lo, hi)
}
