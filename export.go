package tonecurve

// KelvinToRGB exposes the white-balance temperature fit for chart and
// swatch rendering. The result is the raw clamped fit, not normalized to
// the 5500 K neutral point the pipeline uses.
func KelvinToRGB(kelvin float32) (r, g, b float32) {
	c := kelvinToRGB(kelvin)
	return c.r, c.g, c.b
}

// RGBToHSL converts display-referred RGB in [0,1] to hue, saturation, and
// lightness, each in [0,1].
func RGBToHSL(r, g, b float32) (hue, sat, light float32) {
	c := rgbToHSL(rgb{r, g, b})
	return c.h, c.s, c.l
}

// HSLToRGB converts hue, saturation, and lightness back to RGB.
func HSLToRGB(hue, sat, light float32) (r, g, b float32) {
	c := hslToRGB(hsl{hue, sat, light})
	return c.r, c.g, c.b
}
