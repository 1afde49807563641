package tonecurve

import "github.com/chewxy/math32"

// AutoParams is the partial parameter patch produced by AutoAdjust. The
// caller merges it into the live parameter set; fields the estimator does
// not cover keep their current values.
type AutoParams struct {
	Exposure    float32 `json:"exposure"`
	Contrast    float32 `json:"contrast"`
	Temperature float32 `json:"temperature"`
	Blacks      float32 `json:"blacks"`
	Whites      float32 `json:"whites"`
}

// ApplyTo merges the patch into p and returns the clamped result.
func (a AutoParams) ApplyTo(p Params) Params {
	p.Exposure = a.Exposure
	p.Contrast = a.Contrast
	p.Temperature = a.Temperature
	p.Blacks = a.Blacks
	p.Whites = a.Whites
	return p.Clamped()
}

// AutoAdjust estimates corrective settings from a histogram. Exposure and
// temperature come from the gray-world assumption (a natural scene
// averages to neutral gray); the black and white points come from 0.5%
// percentile clipping on the luma histogram. An empty histogram returns
// the neutral patch.
func AutoAdjust(hist Histogram) AutoParams {
	out := AutoParams{Contrast: defaultContrast, Temperature: defaultTemperature}

	var total uint64
	for _, n := range hist.Luma {
		total += uint64(n)
	}
	if total == 0 {
		return out
	}

	avgR := histMean(&hist.R, total)
	avgG := histMean(&hist.G, total)
	avgB := histMean(&hist.B, total)

	if avg := (avgR + avgG + avgB) / 3; avg > 0 {
		out.Exposure = clampf(math32.Log2(127.5/avg), -2, 2)
	}

	blackPoint, whitePoint := percentileBounds(&hist.Luma, total, autoClipFraction)

	out.Contrast = clampf(50+(float32(whitePoint-blackPoint)/255-0.5)*50, 40, 100)
	out.Temperature = clampf(5500+(avgB-avgR)*25, 2000, 12000)

	// A rising black point pulls blacks deeper; a falling white point
	// lifts whites.
	out.Blacks = math32.Max(-float32(blackPoint)/2, -50)
	out.Whites = math32.Min(float32(255-whitePoint)/2, 50)
	return out
}

func histMean(bins *[256]uint32, total uint64) float32 {
	var sum float64
	for v, n := range bins {
		sum += float64(n) * float64(v)
	}
	return float32(sum / float64(total))
}

// percentileBounds returns the first and last luma bins whose cumulative
// count from their end of the range exceeds the clip fraction.
func percentileBounds(bins *[256]uint32, total uint64, clip float64) (black, white int) {
	threshold := uint64(float64(total) * clip)

	var cum uint64
	for v := 0; v < 256; v++ {
		cum += uint64(bins[v])
		if cum > threshold {
			black = v
			break
		}
	}

	white = 255
	cum = 0
	for v := 255; v >= 0; v-- {
		cum += uint64(bins[v])
		if cum > threshold {
			white = v
			break
		}
	}
	if white < black {
		white = black
	}
	return black, white
}
