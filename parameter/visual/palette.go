package visual

import "github.com/lucasb-eyer/go-colorful"

// Background radial gradient stops from center to corners
var (
	BackgroundInner = colorful.Color{R: 30.0 / 255, G: 0, B: 60.0 / 255}
	BackgroundMid   = colorful.Color{R: 15.0 / 255, G: 0, B: 30.0 / 255}
	BackgroundOuter = colorful.Color{R: 0, G: 0, B: 10.0 / 255}
)

// Glow is the additive halo color around stars
var Glow = colorful.Color{R: 1, G: 1, B: 1}

// Panel and text colors for stage screens
var (
	PanelBg    = colorful.Color{R: 8.0 / 255, G: 2.0 / 255, B: 20.0 / 255}
	TitleFg    = colorful.Color{R: 1, G: 0.55, B: 0.65}
	BodyFg     = colorful.Color{R: 0.90, G: 0.88, B: 1}
	HintFg     = colorful.Color{R: 0.55, G: 0.52, B: 0.75}
	StatusFg   = colorful.Color{R: 0.45, G: 0.45, B: 0.60}
	FinalTitle = colorful.Color{R: 1, G: 0.80, B: 0.45}
)
