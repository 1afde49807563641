package tonecurve

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// flatHistogram fills every bin of every channel with n counts, modeling a
// neutral, full-dynamic-range, uniformly distributed image.
func flatHistogram(n uint32) Histogram {
	var hist Histogram
	for v := 0; v < 256; v++ {
		hist.R[v] = n
		hist.G[v] = n
		hist.B[v] = n
		hist.Luma[v] = n
	}
	return hist
}

func TestAutoAdjustNeutralFullRange(t *testing.T) {
	got := AutoAdjust(flatHistogram(10))

	if absDiff(got.Exposure, 0) > 1e-3 {
		t.Fatalf("exposure for neutral image: %v", got.Exposure)
	}
	if absDiff(got.Temperature, 5500) > 1 {
		t.Fatalf("temperature for neutral image: %v", got.Temperature)
	}
	// Clip threshold lands on bins 1 and 254, so the detected range is 253
	// of 255 and the contrast formula yields just under 75.
	if got.Contrast < 74 || got.Contrast > 75 {
		t.Fatalf("contrast for full-range image: %v", got.Contrast)
	}
	if absDiff(got.Blacks, -0.5) > eps || absDiff(got.Whites, 0.5) > eps {
		t.Fatalf("black/white shifts: %v %v", got.Blacks, got.Whites)
	}
}

func TestAutoAdjustDarkImage(t *testing.T) {
	var hist Histogram
	const n = 1000
	hist.R[30] = n
	hist.G[30] = n
	hist.B[30] = n
	hist.Luma[30] = n

	got := AutoAdjust(hist)
	// log2(127.5/30) is above the +2 EV cap.
	if got.Exposure != 2 {
		t.Fatalf("dark image exposure not clamped to +2: %v", got.Exposure)
	}
	if got.Blacks != -15 {
		t.Fatalf("blacks for black point 30: %v", got.Blacks)
	}
	if got.Whites != 50 {
		t.Fatalf("whites not clamped to 50: %v", got.Whites)
	}
}

func TestAutoAdjustWarmCast(t *testing.T) {
	var hist Histogram
	const n = 500
	hist.R[180] = n
	hist.G[150] = n
	hist.B[120] = n
	hist.Luma[150] = n

	got := AutoAdjust(hist)
	// avgB - avgR = -60, so the estimate cools toward 4000 K.
	if absDiff(got.Temperature, 4000) > 1 {
		t.Fatalf("warm cast temperature: %v", got.Temperature)
	}
}

func TestAutoAdjustEmptyHistogram(t *testing.T) {
	want := AutoParams{Contrast: 50, Temperature: 5500}
	if diff := cmp.Diff(want, AutoAdjust(Histogram{})); diff != "" {
		t.Fatalf("empty histogram patch (-want +got):\n%s", diff)
	}
}

func TestAutoAdjustContrastFloor(t *testing.T) {
	// Everything in one bin: detected range 0, formula floor of 40 applies.
	var hist Histogram
	hist.R[128] = 100
	hist.G[128] = 100
	hist.B[128] = 100
	hist.Luma[128] = 100
	if got := AutoAdjust(hist); got.Contrast != 40 {
		t.Fatalf("contrast floor: %v", got.Contrast)
	}
}

func TestAutoParamsApplyTo(t *testing.T) {
	base := DefaultParams()
	base.Saturation = 30
	base.Tint = -20

	patch := AutoParams{Exposure: 9, Contrast: 70, Temperature: 4800, Blacks: -10, Whites: 20}
	got := patch.ApplyTo(base)

	want := base
	want.Exposure = 5 // clamped from 9
	want.Contrast = 70
	want.Temperature = 4800
	want.Blacks = -10
	want.Whites = 20
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("merged params (-want +got):\n%s", diff)
	}
}
