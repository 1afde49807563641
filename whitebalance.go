package tonecurve

import "github.com/chewxy/math32"

// kelvinToRGB converts a correlated color temperature to an RGB multiplier
// using the piecewise log/pow fit in const.go. Each channel is clamped to
// [0,1]. Non-finite input, input below the fit domain, or a NaN escaping
// the fit all fall back to the neutral multiplier.
func kelvinToRGB(kelvin float32) rgb {
	if math32.IsNaN(kelvin) || math32.IsInf(kelvin, 0) || kelvin < minKelvinDomain {
		return rgb{1, 1, 1}
	}
	t := kelvin / 100
	var c rgb
	if t <= 66 {
		c.r = 1
		c.g = kelvinGreenLogScale*math32.Log(t) + kelvinGreenLogOffset
	} else {
		c.r = kelvinRedPowScale * math32.Pow(t-60, kelvinRedPowExp)
		c.g = kelvinGreenPowScale * math32.Pow(t-60, kelvinGreenPowExp)
	}
	switch {
	case t >= 66:
		c.b = 1
	case t <= 19:
		c.b = 0
	default:
		c.b = kelvinBlueLogScale*math32.Log(t-10) + kelvinBlueLogOffset
	}
	if math32.IsNaN(c.r) || math32.IsNaN(c.g) || math32.IsNaN(c.b) {
		return rgb{1, 1, 1}
	}
	return rgb{clamp01(c.r), clamp01(c.g), clamp01(c.b)}
}

// neutralWB is the fit at the default temperature. Dividing the fit by it
// calibrates the multiplier so 5500 K is exactly (1,1,1).
var neutralWB = kelvinToRGB(defaultTemperature)

// wbMultiplier returns the white-balance multiplier for a temperature,
// normalized to the 5500 K neutral point.
func wbMultiplier(kelvin float32) rgb {
	m := kelvinToRGB(kelvin)
	return rgb{m.r / neutralWB.r, m.g / neutralWB.g, m.b / neutralWB.b}
}

// whiteBalance applies the temperature multiplier and the simplified
// green-magenta tint axis. Tint raises green and lowers red and blue; it is
// not a true chromaticity rotation.
func whiteBalance(c rgb, temperature, tint float32) rgb {
	m := wbMultiplier(temperature)
	shift := tint * 0.01
	c.r *= m.r * (1 - shift)
	c.g *= m.g * (1 + shift)
	c.b *= m.b * (1 - shift)
	return c
}
