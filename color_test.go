package tonecurve

import (
	"math/rand"
	"testing"
)

func TestHSLRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	for i := 0; i < 1000; i++ {
		c := rgb{rnd.Float32(), rnd.Float32(), rnd.Float32()}
		got := hslToRGB(rgbToHSL(c))
		if absDiff(got.r, c.r) > eps || absDiff(got.g, c.g) > eps || absDiff(got.b, c.b) > eps {
			t.Fatalf("round trip failed for %+v: got %+v", c, got)
		}
	}
}

func TestHSLAchromatic(t *testing.T) {
	for _, v := range []float32{0, 0.25, 0.5, 0.75, 1} {
		c := rgbToHSL(rgb{v, v, v})
		if c.s != 0 || c.h != 0 {
			t.Fatalf("achromatic %v: got h=%v s=%v", v, c.h, c.s)
		}
		back := hslToRGB(hsl{h: 0.7, s: 0, l: v})
		if back != (rgb{v, v, v}) {
			t.Fatalf("s=0 did not reproduce gray %v: %+v", v, back)
		}
	}
}

func TestHSLKnownValues(t *testing.T) {
	cases := []struct {
		in   rgb
		want hsl
	}{
		{rgb{1, 0, 0}, hsl{h: 0, s: 1, l: 0.5}},
		{rgb{0, 1, 0}, hsl{h: 1.0 / 3.0, s: 1, l: 0.5}},
		{rgb{0, 0, 1}, hsl{h: 2.0 / 3.0, s: 1, l: 0.5}},
		{rgb{1, 1, 0}, hsl{h: 1.0 / 6.0, s: 1, l: 0.5}},
	}
	for _, tc := range cases {
		got := rgbToHSL(tc.in)
		if absDiff(got.h, tc.want.h) > eps || absDiff(got.s, tc.want.s) > eps || absDiff(got.l, tc.want.l) > eps {
			t.Fatalf("rgbToHSL(%+v) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestHSLHueWrap(t *testing.T) {
	// Magenta-ish color where (g-b)/delta is negative; hue must wrap into
	// [0,1) rather than go negative.
	c := rgbToHSL(rgb{1, 0, 0.5})
	if c.h < 0 || c.h >= 1 {
		t.Fatalf("hue out of range: %v", c.h)
	}
	if got := hslToRGB(c); absDiff(got.r, 1) > eps || absDiff(got.g, 0) > eps || absDiff(got.b, 0.5) > eps {
		t.Fatalf("wrapped hue round trip failed: %+v", got)
	}
}

func TestSmoothstep(t *testing.T) {
	if got := smoothstep(0.5, 1.0, 0.5); got != 0 {
		t.Fatalf("below edge0: %v", got)
	}
	if got := smoothstep(0.5, 1.0, 1.0); got != 1 {
		t.Fatalf("at edge1: %v", got)
	}
	if got := smoothstep(0.5, 1.0, 0.75); absDiff(got, 0.5) > eps {
		t.Fatalf("midpoint: %v", got)
	}
	// Reversed edges give the descending transition.
	if got := smoothstep(0.5, 0.0, 0.75); got != 0 {
		t.Fatalf("descending above edge0: %v", got)
	}
	if got := smoothstep(0.5, 0.0, 0.0); got != 1 {
		t.Fatalf("descending at edge1: %v", got)
	}
	if got := smoothstep(0.5, 0.0, 0.25); absDiff(got, 0.5) > eps {
		t.Fatalf("descending midpoint: %v", got)
	}
}

func TestClampToByte(t *testing.T) {
	cases := []struct {
		in   float32
		want uint8
	}{
		{-10, 0},
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{127.5, 128},
		{254.6, 255},
		{255, 255},
		{400, 255},
	}
	for _, tc := range cases {
		if got := clampToByte(tc.in); got != tc.want {
			t.Fatalf("clampToByte(%v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
