package tonecurve

// Tanner Helland piecewise fit from color temperature to RGB, valid for
// 1000-40000 K. Input below the domain falls back to a neutral multiplier.
const (
	kelvinRedPowScale    = 1.29293618606
	kelvinRedPowExp      = -0.1332047592
	kelvinGreenLogScale  = 0.39008157877
	kelvinGreenLogOffset = -0.63184144379
	kelvinGreenPowScale  = 1.12989086090
	kelvinGreenPowExp    = -0.0755148492
	kelvinBlueLogScale   = 0.54320678911
	kelvinBlueLogOffset  = -1.19625408914

	minKelvinDomain = 1000
)

const (
	defaultTemperature = 5500.0
	defaultContrast    = 50.0
)

// Luma weights. The tonal masks inside the pipeline use BT.601; the
// histogram uses BT.709. Both follow their reference standard and the
// difference is intentional, do not unify.
const (
	lumaR601 = 0.299
	lumaG601 = 0.587
	lumaB601 = 0.114

	lumaR709 = 0.2126
	lumaG709 = 0.7152
	lumaB709 = 0.0722
)

// Percentile clip fraction for the auto-adjust black/white points.
const autoClipFraction = 0.005
