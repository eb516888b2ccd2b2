package render

// Layer selects the pixel surface a LayerRenderer draws into
type Layer int

const (
	// LayerBackground is redrawn only after a resize
	LayerBackground Layer = iota
	// LayerStars is cleared and redrawn every frame
	LayerStars
	// LayerParticles is cleared and redrawn every frame
	LayerParticles

	layerCount
)

// RenderPriority determines cell overlay order. Lower values render first
type RenderPriority int

const (
	PriorityUI RenderPriority = iota
	PriorityOverlay
	PriorityDebug
)
