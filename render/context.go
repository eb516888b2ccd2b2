package render

import (
	"time"

	"github.com/lixenwraith/starlock/camera"
	"github.com/lixenwraith/starlock/narrative"
)

// RenderContext provides frame state for renderers, passed by value
type RenderContext struct {
	// Scene time, frozen while paused
	SceneTime time.Time
	// Seconds since scene start, drives twinkle and pulse phases
	Seconds   float64
	DeltaTime float64
	IsPaused  bool

	// Camera snapshot for this frame
	View camera.View

	Stage narrative.Stage

	// Terminal size in cells and the pixel canvas derived from it
	ScreenWidth  int
	ScreenHeight int
	PixelWidth   int
	PixelHeight  int
}

// ToScreen projects a world point through the frame's camera snapshot
func (rc *RenderContext) ToScreen(wx, wy float64) (float64, float64) {
	return rc.View.ToScreen(wx, wy)
}

// PixelToCell maps a pixel to the cell that displays it
func PixelToCell(px, py float64) (int, int) {
	return int(px), int(py) / 2
}
