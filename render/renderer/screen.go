package renderer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/starlock/narrative"
	"github.com/lixenwraith/starlock/parameter"
	"github.com/lixenwraith/starlock/parameter/visual"
	"github.com/lixenwraith/starlock/render"
)

type panelLine struct {
	text  string
	fg    render.RGB
	attrs tcell.AttrMask
}

// StagePanel is the text screen of one stage
// The sequencer owns its visibility through Show and Hide
type StagePanel struct {
	screen  narrative.Screen
	visible bool
	titleFg render.RGB
}

// NewStagePanel creates a hidden panel for a stage screen
func NewStagePanel(stage narrative.Stage, screen narrative.Screen) *StagePanel {
	titleFg := visual.TitleFg
	if stage == narrative.StageFinal {
		titleFg = visual.FinalTitle
	}
	return &StagePanel{screen: screen, titleFg: render.FromColorful(titleFg)}
}

// NewStagePanels builds one panel per scripted stage
func NewStagePanels(script *narrative.Script) map[narrative.Stage]*StagePanel {
	panels := make(map[narrative.Stage]*StagePanel)
	for _, stage := range narrative.Stages() {
		if sc, ok := script.Screen(stage); ok {
			panels[stage] = NewStagePanel(stage, sc)
		}
	}
	return panels
}

// Show implements narrative.Surface
func (p *StagePanel) Show() { p.visible = true }

// Hide implements narrative.Surface
func (p *StagePanel) Hide() { p.visible = false }

// IsVisible implements render.VisibilityToggle
func (p *StagePanel) IsVisible() bool { return p.visible }

// boxed reports whether the panel has a title or body and gets a framed box
func (p *StagePanel) boxed() bool {
	return p.screen.Title != "" || p.screen.Subtitle != "" || len(p.screen.Body) > 0
}

// layout wraps and centers the screen text to width cells
func (p *StagePanel) layout(width int) []panelLine {
	style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var out []panelLine
	section := func(text string, fg render.RGB, attrs tcell.AttrMask) {
		if text == "" {
			return
		}
		for _, l := range strings.Split(style.Render(text), "\n") {
			out = append(out, panelLine{text: l, fg: fg, attrs: attrs})
		}
	}
	gap := func() {
		if len(out) > 0 {
			out = append(out, panelLine{})
		}
	}

	section(p.screen.Title, p.titleFg, tcell.AttrBold)
	section(p.screen.Subtitle, render.FromColorful(visual.BodyFg), tcell.AttrItalic)
	if len(p.screen.Body) > 0 {
		gap()
		section(strings.Join(p.screen.Body, "\n"), render.FromColorful(visual.BodyFg), tcell.AttrNone)
	}
	if p.screen.Hint != "" && p.boxed() {
		gap()
		section(p.screen.Hint, render.FromColorful(visual.HintFg), tcell.AttrDim)
	}
	return out
}

// Render implements render.SystemRenderer
func (p *StagePanel) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	cols, rows := buf.Bounds()
	if cols < 4 || rows < 2 {
		return
	}

	if !p.boxed() {
		if p.screen.Hint != "" {
			p.drawHint(buf, cols, rows)
		}
		return
	}

	inner := min(parameter.PanelMaxWidth, cols-2*parameter.PanelPadding-2)
	if inner < 1 {
		return
	}
	lines := p.layout(inner)

	boxW := inner + 2*parameter.PanelPadding + 2
	boxH := len(lines) + 2*(parameter.PanelPadding/2) + 2
	x0 := (cols - boxW) / 2
	y0 := max((rows-boxH)/2, 0)

	panelBg := render.FromColorful(visual.PanelBg)
	for y := y0; y < y0+boxH && y < rows; y++ {
		for x := x0; x < x0+boxW; x++ {
			buf.Set(x, y, 0, panelBg, panelBg, render.BlendAlpha, parameter.PanelAlpha, tcell.AttrNone)
		}
	}

	p.drawBorder(buf, x0, y0, boxW, boxH)

	tx := x0 + 1 + parameter.PanelPadding
	ty := y0 + 1 + parameter.PanelPadding/2
	for i, l := range lines {
		drawText(buf, tx, ty+i, l.text, l.fg, l.attrs)
	}
}

func (p *StagePanel) drawBorder(buf *render.RenderBuffer, x0, y0, w, h int) {
	b := lipgloss.RoundedBorder()
	fg := render.FromColorful(visual.HintFg)
	first := func(s string) rune {
		for _, r := range s {
			return r
		}
		return ' '
	}
	top, bottom := first(b.Top), first(b.Bottom)
	left, right := first(b.Left), first(b.Right)

	x1, y1 := x0+w-1, y0+h-1
	for x := x0 + 1; x < x1; x++ {
		buf.SetFgOnly(x, y0, top, fg, tcell.AttrNone)
		buf.SetFgOnly(x, y1, bottom, fg, tcell.AttrNone)
	}
	for y := y0 + 1; y < y1; y++ {
		buf.SetFgOnly(x0, y, left, fg, tcell.AttrNone)
		buf.SetFgOnly(x1, y, right, fg, tcell.AttrNone)
	}
	buf.SetFgOnly(x0, y0, first(b.TopLeft), fg, tcell.AttrNone)
	buf.SetFgOnly(x1, y0, first(b.TopRight), fg, tcell.AttrNone)
	buf.SetFgOnly(x0, y1, first(b.BottomLeft), fg, tcell.AttrNone)
	buf.SetFgOnly(x1, y1, first(b.BottomRight), fg, tcell.AttrNone)
}

// drawHint centers a single dim line on the second-to-last row
func (p *StagePanel) drawHint(buf *render.RenderBuffer, cols, rows int) {
	w := render.StringWidth(p.screen.Hint)
	x := max((cols-w)/2, 0)
	drawText(buf, x, rows-2, p.screen.Hint, render.FromColorful(visual.HintFg), tcell.AttrDim)
}

// drawText writes s starting at (x, y), advancing by rune width and leaving spaces transparent
func drawText(buf *render.RenderBuffer, x, y int, s string, fg render.RGB, attrs tcell.AttrMask) {
	for _, r := range s {
		w := render.RuneWidth(r)
		if w == 0 {
			continue
		}
		if r != ' ' {
			buf.SetFgOnly(x, y, r, fg, attrs)
		}
		x += w
	}
}
