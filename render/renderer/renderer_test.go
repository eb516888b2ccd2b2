package renderer

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/starlock/camera"
	"github.com/lixenwraith/starlock/narrative"
	"github.com/lixenwraith/starlock/particle"
	"github.com/lixenwraith/starlock/render"
	"github.com/lixenwraith/starlock/starfield"
	"github.com/lixenwraith/starlock/status"
)

func frameCtx(stage narrative.Stage, cols, rows int, view camera.View) render.RenderContext {
	return render.RenderContext{
		Stage:        stage,
		View:         view,
		ScreenWidth:  cols,
		ScreenHeight: rows,
		PixelWidth:   cols,
		PixelHeight:  rows * 2,
	}
}

func litPixels(c *render.Canvas) int {
	w, h := c.Bounds()
	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if l := c.At(x, y); l.R+l.G+l.B > 0 {
				n++
			}
		}
	}
	return n
}

func rowText(buf *render.RenderBuffer, y int) string {
	cols, _ := buf.Bounds()
	var sb strings.Builder
	for x := 0; x < cols; x++ {
		sb.WriteRune(buf.Get(x, y).Rune)
	}
	return sb.String()
}

func bufferText(buf *render.RenderBuffer) string {
	_, rows := buf.Bounds()
	var sb strings.Builder
	for y := 0; y < rows; y++ {
		sb.WriteString(rowText(buf, y))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestStarRendererStageGate(t *testing.T) {
	field := starfield.NewField(starfield.NewGenerator(rand.New(rand.NewSource(1)), 0), 200)
	field.Resize(80, 48)
	r := NewStarRenderer(field, true)
	view := camera.View{PanX: 40, PanY: 24, Scale: 1}

	tests := []struct {
		stage narrative.Stage
		lit   bool
	}{
		{narrative.StageIntro, false},
		{narrative.StageMainMenu, false},
		{narrative.StageUniverseExploration, true},
		{narrative.StageHeartReveal, true},
		{narrative.StageMessage, true},
		{narrative.StageFinal, false},
	}
	for _, tt := range tests {
		t.Run(tt.stage.String(), func(t *testing.T) {
			canvas := render.NewCanvas(80, 48)
			r.Render(frameCtx(tt.stage, 80, 24, view), canvas)
			if got := litPixels(canvas) > 0; got != tt.lit {
				t.Errorf("lit = %v, want %v", got, tt.lit)
			}
		})
	}
}

func TestStarRendererDoesNotMutateField(t *testing.T) {
	field := starfield.NewField(starfield.NewGenerator(rand.New(rand.NewSource(2)), 0), 50)
	field.Resize(80, 48)
	before := append([]starfield.Star(nil), field.Stars()...)

	r := NewStarRenderer(field, false)
	canvas := render.NewCanvas(80, 48)
	ctx := frameCtx(narrative.StageUniverseExploration, 80, 24, camera.View{PanX: 40, PanY: 24, Scale: 2.5})
	ctx.Seconds = 12.3
	r.Render(ctx, canvas)

	after := field.Stars()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("Star %d mutated by render", i)
		}
	}
}

func TestGlowWidensFootprint(t *testing.T) {
	field := starfield.NewField(starfield.NewGenerator(rand.New(rand.NewSource(3)), 0), 30)
	field.Resize(80, 48)
	ctx := frameCtx(narrative.StageUniverseExploration, 80, 24, camera.View{PanX: 40, PanY: 24, Scale: 2})

	plain := render.NewCanvas(80, 48)
	NewStarRenderer(field, false).Render(ctx, plain)
	glowing := render.NewCanvas(80, 48)
	NewStarRenderer(field, true).Render(ctx, glowing)

	if litPixels(glowing) <= litPixels(plain) {
		t.Errorf("Glow should light more pixels: %d vs %d", litPixels(glowing), litPixels(plain))
	}
}

func TestParticleRendererProjectsWorldParticles(t *testing.T) {
	pool := particle.NewPool()
	white := colorful.Color{R: 1, G: 1, B: 1}
	pool.Add(particle.Particle{Kind: particle.KindDust, Space: particle.SpaceWorld, X: 10, Y: 10, Size: 1, Alpha: 1, Color: white})
	pool.Add(particle.Particle{Kind: particle.KindFinalStar, Space: particle.SpaceScreen, X: 70, Y: 40, Size: 1, Alpha: 1, Color: white})
	r := NewParticleRenderer(pool)

	// pan (40,24) scale 0.5: world (10,10) -> (25,17)
	canvas := render.NewCanvas(80, 48)
	r.Render(frameCtx(narrative.StageUniverseExploration, 80, 24, camera.View{PanX: 40, PanY: 24, Scale: 0.5}), canvas)

	if l := canvas.At(25, 17); l.R == 0 {
		t.Error("World particle not drawn at projected position")
	}
	if l := canvas.At(10, 10); l.R != 0 {
		t.Error("World particle drawn at unprojected position")
	}
	if l := canvas.At(70, 40); l.R == 0 {
		t.Error("Screen particle not drawn at its screen position")
	}
}

func TestBackgroundGradient(t *testing.T) {
	canvas := render.NewCanvas(40, 20)
	NewBackgroundRenderer().Render(render.RenderContext{}, canvas)
	center, corner := canvas.At(20, 10), canvas.At(0, 0)
	if center.B <= corner.B {
		t.Errorf("Center should be brighter than corner: %v vs %v", center, corner)
	}
}

func TestStagePanelVisibility(t *testing.T) {
	script := narrative.DefaultScript()
	panels := NewStagePanels(script)
	menu, ok := panels[narrative.StageMainMenu]
	if !ok {
		t.Fatal("MainMenu panel missing")
	}

	var surface narrative.Surface = menu
	if menu.IsVisible() {
		t.Error("Panels start hidden")
	}
	surface.Show()
	if !menu.IsVisible() {
		t.Error("Show did not reveal panel")
	}
	surface.Hide()
	if menu.IsVisible() {
		t.Error("Hide did not hide panel")
	}
}

func TestStagePanelDrawsCenteredText(t *testing.T) {
	panel := NewStagePanel(narrative.StageMessage, narrative.Screen{
		Stage: "Message",
		Title: "Hello",
		Body:  []string{"world"},
		Hint:  "tap",
	})
	buf := render.NewRenderBuffer(60, 20)
	panel.Render(render.RenderContext{}, buf)

	text := bufferText(buf)
	for _, want := range []string{"Hello", "world", "tap", "╭", "╯"} {
		if !strings.Contains(text, want) {
			t.Errorf("Panel output missing %q:\n%s", want, text)
		}
	}

	// Title centered within a couple of cells
	for y := 0; y < 20; y++ {
		row := rowText(buf, y)
		if i := strings.Index(row, "Hello"); i >= 0 {
			mid := i + len("Hello")/2
			if mid < 28 || mid > 32 {
				t.Errorf("Title centered at column %d", mid)
			}
			return
		}
	}
}

func TestStagePanelHintOnly(t *testing.T) {
	panel := NewStagePanel(narrative.StageUniverseExploration, narrative.Screen{Hint: "drag to pan"})
	buf := render.NewRenderBuffer(40, 10)
	panel.Render(render.RenderContext{}, buf)

	if !strings.Contains(rowText(buf, 8), "drag to pan") {
		t.Errorf("Hint not on second-to-last row:\n%s", bufferText(buf))
	}
	if strings.Contains(bufferText(buf), "╭") {
		t.Error("Hint-only panel should not draw a box")
	}
}

func TestStatusRenderer(t *testing.T) {
	reg := status.NewRegistry()
	reg.Labels.Get("stage").Set("Intro")
	buf := render.NewRenderBuffer(30, 4)

	NewStatusRenderer(reg, true).Render(render.RenderContext{IsPaused: true, SceneTime: time.Now()}, buf)

	if !strings.HasPrefix(rowText(buf, 3), "stage=Intro") {
		t.Errorf("Status row = %q", rowText(buf, 3))
	}
	if !strings.Contains(rowText(buf, 0), "paused") {
		t.Errorf("Paused marker missing: %q", rowText(buf, 0))
	}

	quiet := render.NewRenderBuffer(30, 4)
	NewStatusRenderer(reg, false).Render(render.RenderContext{}, quiet)
	if strings.Contains(bufferText(quiet), "stage=") {
		t.Error("Status line drawn without debug")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdef", 3); got != "abc" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("ab", 5); got != "ab" {
		t.Errorf("truncate = %q", got)
	}
}
