package tonecurve

import (
	"errors"
	"fmt"
)

// RenderOptions controls Render behavior.
type RenderOptions struct {
	// Workers caps the number of parallel row slices; 0 uses GOMAXPROCS.
	Workers int
	// OnResult is invoked with the finished frame before Render returns.
	OnResult func(out []uint8)
}

// Render runs the grading pipeline over a straight-alpha RGBA8 buffer and
// returns a new buffer of the same shape. Parameters are clamped on entry;
// alpha bytes are copied through unmodified.
func Render(src []uint8, w, h int, p Params, opts ...func(o *RenderOptions)) ([]uint8, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.New("invalid dimensions")
	}
	if len(src) < w*h*4 {
		return nil, fmt.Errorf("buffer too short: got %d bytes, want %d", len(src), w*h*4)
	}

	var opt RenderOptions
	for _, applyOpt := range opts {
		applyOpt(&opt)
	}

	dst := make([]uint8, w*h*4)
	renderInto(dst, src, w, h, p.Clamped(), opt.Workers)

	if opt.OnResult != nil {
		opt.OnResult(dst)
	}
	return dst, nil
}

// renderInto is the CPU stand-in for the per-pixel compute kernel: row
// slices run concurrently, each pixel independent, no shared mutable
// state beyond the disjoint destination rows.
func renderInto(dst, src []uint8, w, h int, p Params, workers int) {
	parallelFor(h, workers, func(start, end int) {
		for y := start; y < end; y++ {
			rowOff := y * w * 4
			for x := 0; x < w; x++ {
				off := rowOff + x*4
				c := RGBA{
					R: float32(src[off]) / 255,
					G: float32(src[off+1]) / 255,
					B: float32(src[off+2]) / 255,
				}
				res := Transform(c, p)
				dst[off] = clampToByte(res.R * 255)
				dst[off+1] = clampToByte(res.G * 255)
				dst[off+2] = clampToByte(res.B * 255)
				dst[off+3] = src[off+3]
			}
		}
	})
}

// Renderer binds one source buffer and one parameter set, mirroring a
// single logical display surface. Independent surfaces (original,
// processed, curve preview) each hold their own Renderer; the pipeline
// they share is stateless and re-entrant.
//
// A Renderer is not safe for concurrent use. Within one Commit every
// result is read-after-write, so no locking is needed.
type Renderer struct {
	src    []uint8
	w, h   int
	params Params
	out    []uint8
	curve  Curve
	hist   Histogram
}

// NewRenderer returns a renderer with the neutral parameter set committed.
func NewRenderer() *Renderer {
	return &Renderer{
		params: DefaultParams(),
		curve:  SampleCurve(DefaultParams()),
	}
}

// SetSource binds a straight-alpha RGBA8 buffer. The buffer is not copied;
// the caller keeps ownership and must not mutate it during Commit.
func (r *Renderer) SetSource(pix []uint8, w, h int) error {
	if w <= 0 || h <= 0 || len(pix) < w*h*4 {
		return fmt.Errorf("source buffer mismatch: %d bytes for %dx%d", len(pix), w, h)
	}
	r.src = pix
	r.w, r.h = w, h
	r.out = nil
	return nil
}

// Commit is the settings-committed event: it re-renders the bound buffer,
// resamples the tone curve, and recomputes the histogram in one
// synchronous turn. Rapid successive commits simply overwrite earlier
// results; each pass is short-lived and idempotent, so there is nothing
// to cancel.
func (r *Renderer) Commit(p Params) {
	r.params = p.Clamped()
	r.curve = SampleCurve(r.params)
	if r.src == nil {
		r.out = nil
		r.hist = Histogram{}
		return
	}
	if r.out == nil {
		r.out = make([]uint8, r.w*r.h*4)
	}
	renderInto(r.out, r.src, r.w, r.h, r.params, 0)
	r.hist = Analyze(r.out, r.w, r.h)
}

// Params returns the last committed parameter set.
func (r *Renderer) Params() Params { return r.params }

// Output returns the rendered frame from the last Commit, or nil before a
// source is bound. The slice is owned by the Renderer and reused across
// commits.
func (r *Renderer) Output() []uint8 { return r.out }

// Curve returns the tone curve from the last Commit.
func (r *Renderer) Curve() Curve { return r.curve }

// Histogram returns the histogram of the rendered frame from the last
// Commit.
func (r *Renderer) Histogram() Histogram { return r.hist }
