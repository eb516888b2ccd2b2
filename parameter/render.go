package parameter

// Star draw constants
const (
	// BlinkBase and BlinkAmplitude shape brightness = base * (BlinkBase + BlinkAmplitude*sin)
	BlinkBase      = 0.7
	BlinkAmplitude = 0.3

	// GlowRadiusFactor is glow radius as a multiple of the core radius
	GlowRadiusFactor = 4.0

	// GlowAlphaFactor scales brightness into glow center alpha
	GlowAlphaFactor = 0.2

	// MinDrawRadius keeps sub-pixel stars visible when zoomed out
	MinDrawRadius = 0.35
)

// Terminal geometry
const (
	// PixelsPerRow is the vertical pixel count packed into one cell with half blocks
	PixelsPerRow = 2

	// HalfBlock renders the top pixel as foreground and bottom pixel as background
	HalfBlock = '▀'
)

// Overlay panel
const (
	// PanelAlpha is how strongly stage panels darken the scene behind text
	PanelAlpha = 0.55

	// PanelMaxWidth caps text column width in cells
	PanelMaxWidth = 56

	// PanelPadding is the blank margin around panel text in cells
	PanelPadding = 2
)
