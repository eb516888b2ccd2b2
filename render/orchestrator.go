package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starlock/parameter"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

type layerEntry struct {
	renderer LayerRenderer
	layer    Layer
}

// RenderOrchestrator coordinates the render pipeline
// Pixel layers composite additively into half-block cells, then cell overlays draw in priority order
type RenderOrchestrator struct {
	screen tcell.Screen
	buffer *RenderBuffer
	layers [layerCount]*Canvas

	layerRenderers []layerEntry
	renderers      []rendererEntry
	regCount       int

	backgroundDirty bool
}

// NewRenderOrchestrator creates an orchestrator for a screen of width x height cells
// screen may be nil for headless use
func NewRenderOrchestrator(screen tcell.Screen, width, height int) *RenderOrchestrator {
	o := &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(width, height),
		renderers: make([]rendererEntry, 0, 8),
	}
	for i := range o.layers {
		o.layers[i] = NewCanvas(width, height*parameter.PixelsPerRow)
	}
	o.backgroundDirty = true
	return o
}

// RegisterLayer adds a pixel renderer to a layer, run in registration order
func (o *RenderOrchestrator) RegisterLayer(r LayerRenderer, layer Layer) {
	o.layerRenderers = append(o.layerRenderers, layerEntry{renderer: r, layer: layer})
}

// Register adds a cell renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer and canvas dimensions and schedules a background redraw
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	for _, c := range o.layers {
		c.Resize(width, height*parameter.PixelsPerRow)
	}
	o.backgroundDirty = true
	if o.screen != nil {
		o.screen.Sync()
	}
}

// InvalidateBackground forces the static layer to redraw on the next frame
func (o *RenderOrchestrator) InvalidateBackground() {
	o.backgroundDirty = true
}

// Buffer exposes the composited cell buffer, used by tests
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// Layer exposes a pixel surface, used by tests
func (o *RenderOrchestrator) Layer(l Layer) *Canvas {
	return o.layers[l]
}

// RenderFrame executes the render pipeline: static layer if dirty, dynamic layers, composite, overlays, flush
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	if o.backgroundDirty {
		o.layers[LayerBackground].Clear()
		o.drawLayer(ctx, LayerBackground)
		o.backgroundDirty = false
	}

	for l := LayerStars; l < layerCount; l++ {
		o.layers[l].Clear()
		o.drawLayer(ctx, l)
	}

	Composite(o.buffer, o.layers[:]...)

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	if o.screen != nil {
		o.buffer.FlushToScreen(o.screen)
		o.screen.Show()
	}
}

func (o *RenderOrchestrator) drawLayer(ctx RenderContext, l Layer) {
	canvas := o.layers[l]
	for _, e := range o.layerRenderers {
		if e.layer != l {
			continue
		}
		if vt, ok := e.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		e.renderer.Render(ctx, canvas)
	}
}
