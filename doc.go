// Package tonecurve implements a parameter-driven color grading pipeline:
// ten named adjustments (white balance, exposure, tonal recovery, contrast,
// saturation/vibrance) applied per pixel over straight-alpha RGBA8 buffers,
// plus the tone-response curve sampling, histogram analysis, and gray-world
// auto adjustment that drive chart display and one-click correction.
//
// The per-pixel transform is pure and stateless; full-frame rendering
// spreads it across row slices on all available cores.
package tonecurve
