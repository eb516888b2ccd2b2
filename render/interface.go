package render

// LayerRenderer draws into one pixel layer
type LayerRenderer interface {
	Render(ctx RenderContext, canvas *Canvas)
}

// SystemRenderer draws cells over the composited pixel layers
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
