package tonecurve

import "github.com/chewxy/math32"

// RGBA is a straight-alpha color with channels nominally in [0,1].
type RGBA struct {
	R, G, B, A float32
}

type rgb struct {
	r, g, b float32
}

type hsl struct {
	h, s, l float32
}

// luma601 is the BT.601 luma used by the tonal masks.
func luma601(c rgb) float32 {
	return lumaR601*c.r + lumaG601*c.g + lumaB601*c.b
}

// smoothstep is the cubic Hermite 0-1 transition between the two edges.
// Passing edge1 < edge0 yields the descending transition.
func smoothstep(edge0, edge1, x float32) float32 {
	t := clamp01((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

func rgbToHSL(c rgb) hsl {
	mx := max3(c.r, c.g, c.b)
	mn := min3(c.r, c.g, c.b)
	d := mx - mn
	l := (mx + mn) / 2
	if d == 0 {
		// Achromatic; also avoids the divide by zero below.
		return hsl{l: l}
	}
	var s float32
	if l < 0.5 {
		s = d / (mx + mn)
	} else {
		s = d / (2 - mx - mn)
	}
	var h float32
	switch mx {
	case c.r:
		h = math32.Mod((c.g-c.b)/d, 6)
	case c.g:
		h = (c.b-c.r)/d + 2
	default:
		h = (c.r-c.g)/d + 4
	}
	h /= 6
	if h < 0 {
		h++
	}
	return hsl{h: h, s: s, l: l}
}

func hslToRGB(c hsl) rgb {
	if c.s == 0 {
		return rgb{c.l, c.l, c.l}
	}
	var q float32
	if c.l < 0.5 {
		q = c.l * (1 + c.s)
	} else {
		q = c.l + c.s - c.l*c.s
	}
	p := 2*c.l - q
	return rgb{
		r: hueToChannel(p, q, c.h+1.0/3.0),
		g: hueToChannel(p, q, c.h),
		b: hueToChannel(p, q, c.h-1.0/3.0),
	}
}

func hueToChannel(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}

// clamp01 maps NaN to 0 so degenerate math cannot escape the pipeline.
func clamp01(v float32) float32 {
	if v < 0 || math32.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampToByte(v float32) uint8 {
	if v <= 0 || math32.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func max3(a, b, c float32) float32 {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}

func min3(a, b, c float32) float32 {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
