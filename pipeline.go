package tonecurve

import "github.com/chewxy/math32"

// Transform applies the full grading pipeline to a single pixel. It is
// pure, deterministic, and stateless; one invocation per pixel with no
// cross-pixel dependencies. Callers pass in-range parameters (see
// Params.Clamped); the transform does not re-validate.
//
// Stage order is a correctness requirement: white balance, exposure,
// highlight/shadow recovery, white/black point shift, contrast, then
// saturation and vibrance in HSL space, with a final clamp to [0,1].
// Alpha passes through untouched.
func Transform(c RGBA, p Params) RGBA {
	v := rgb{c.R, c.G, c.B}

	v = whiteBalance(v, p.Temperature, p.Tint)

	if p.Exposure != 0 {
		ev := math32.Exp2(p.Exposure)
		v.r *= ev
		v.g *= ev
		v.b *= ev
	}

	if p.Highlights != 0 || p.Shadows != 0 {
		luma := luma601(v)
		if p.Highlights != 0 {
			f := 1 + p.Highlights*0.01*smoothstep(0.5, 1.0, luma)
			v.r *= f
			v.g *= f
			v.b *= f
		}
		if p.Shadows != 0 {
			f := 1 + p.Shadows*0.01*smoothstep(0.5, 0.0, luma)
			v.r *= f
			v.g *= f
			v.b *= f
		}
	}

	if p.Whites != 0 || p.Blacks != 0 {
		luma := luma601(v)
		if p.Whites != 0 {
			f := 1 + p.Whites*0.01*smoothstep(0.75, 1.0, luma)
			v.r *= f
			v.g *= f
			v.b *= f
		}
		if p.Blacks != 0 {
			f := 1 + p.Blacks*0.01*smoothstep(0.25, 0.0, luma)
			v.r *= f
			v.g *= f
			v.b *= f
		}
	}

	if p.Contrast != defaultContrast {
		f := 1 + (p.Contrast-50)/50
		v.r = (v.r-0.5)*f + 0.5
		v.g = (v.g-0.5)*f + 0.5
		v.b = (v.b-0.5)*f + 0.5
	}

	if p.Saturation != 0 || p.Vibrance != 0 {
		cc := rgbToHSL(v)
		cc.s *= 1 + p.Saturation*0.01
		// Vibrance protects already saturated colors: the boost fades as
		// saturation approaches 1.
		cc.s *= 1 + p.Vibrance*0.01*(1-cc.s)
		v = hslToRGB(cc)
	}

	return RGBA{R: clamp01(v.r), G: clamp01(v.g), B: clamp01(v.b), A: c.A}
}
