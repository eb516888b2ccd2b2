package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starlock/parameter/visual"
	"github.com/lixenwraith/starlock/render"
	"github.com/lixenwraith/starlock/status"
)

const pausedLabel = "· paused ·"

// StatusRenderer draws the telemetry line on the last row in debug mode
// and a paused marker whenever the scene clock is frozen
type StatusRenderer struct {
	reg   *status.Registry
	debug bool
}

func NewStatusRenderer(reg *status.Registry, debug bool) *StatusRenderer {
	return &StatusRenderer{reg: reg, debug: debug}
}

// Render implements render.SystemRenderer
func (r *StatusRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	cols, rows := buf.Bounds()
	if rows == 0 {
		return
	}
	fg := render.FromColorful(visual.StatusFg)

	if ctx.IsPaused {
		x := max((cols-render.StringWidth(pausedLabel))/2, 0)
		drawText(buf, x, 0, pausedLabel, render.FromColorful(visual.HintFg), tcell.AttrBold)
	}

	if !r.debug || r.reg == nil {
		return
	}
	y := rows - 1
	for x := 0; x < cols; x++ {
		buf.SetWithBg(x, y, ' ', fg, render.RGBBlack)
	}
	line := r.reg.Line()
	if w := render.StringWidth(line); w > cols {
		line = truncate(line, cols)
	}
	drawText(buf, 0, y, line, fg, tcell.AttrNone)
}

func truncate(s string, cols int) string {
	w := 0
	for i, r := range s {
		rw := render.RuneWidth(r)
		if w+rw > cols {
			return s[:i]
		}
		w += rw
	}
	return s
}
