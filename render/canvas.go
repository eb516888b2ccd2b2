package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/starlock/parameter"
)

// Light is linear additive pixel energy, channels may exceed 1 before compositing
type Light struct {
	R, G, B float64
}

// Canvas is a pixel surface at half-block resolution: cols x rows*2
type Canvas struct {
	pix    []Light
	width  int
	height int
}

// NewCanvas creates a canvas in pixels
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize reallocates only if capacity is insufficient and clears the canvas
func (c *Canvas) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(c.pix) < size {
		c.pix = make([]Light, size)
	} else {
		c.pix = c.pix[:size]
	}
	c.width, c.height = width, height
	c.Clear()
}

// Clear zeroes every pixel
func (c *Canvas) Clear() {
	clear(c.pix)
}

// Bounds returns the canvas size in pixels
func (c *Canvas) Bounds() (int, int) {
	return c.width, c.height
}

// At returns the pixel at (x, y)
func (c *Canvas) At(x, y int) Light {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return Light{}
	}
	return c.pix[y*c.width+x]
}

// Set overwrites a pixel
func (c *Canvas) Set(x, y int, l Light) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = l
}

func (c *Canvas) addPixel(x, y int, col colorful.Color, a float64) {
	p := &c.pix[y*c.width+x]
	p.R += col.R * a
	p.G += col.G * a
	p.B += col.B * a
}

// bbox returns the clipped pixel range covering a disc, ok=false when fully outside
func (c *Canvas) bbox(cx, cy, r float64) (x0, y0, x1, y1 int, ok bool) {
	x0 = max(int(math.Floor(cx-r)), 0)
	y0 = max(int(math.Floor(cy-r)), 0)
	x1 = min(int(math.Ceil(cx+r)), c.width-1)
	y1 = min(int(math.Ceil(cy+r)), c.height-1)
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}

// AddDisc adds a solid disc with a one-pixel antialiased rim
// Discs smaller than a pixel deposit their area into the center pixel
func (c *Canvas) AddDisc(cx, cy, r float64, col colorful.Color, alpha float64) {
	if !(r > 0) || alpha <= 0 {
		return
	}
	if r < parameter.MinDrawRadius {
		x, y := int(math.Floor(cx)), int(math.Floor(cy))
		if x >= 0 && x < c.width && y >= 0 && y < c.height {
			coverage := math.Min(1, math.Pi*r*r/(math.Pi*parameter.MinDrawRadius*parameter.MinDrawRadius))
			c.addPixel(x, y, col, alpha*coverage)
		}
		return
	}

	x0, y0, x1, y1, ok := c.bbox(cx, cy, r+0.5)
	if !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			d := math.Sqrt(dx*dx + dy*dy)
			coverage := r + 0.5 - d
			if coverage <= 0 {
				continue
			}
			if coverage > 1 {
				coverage = 1
			}
			c.addPixel(x, y, col, alpha*coverage)
		}
	}
}

// AddGlow adds a radial falloff from alpha at the center to zero at r
func (c *Canvas) AddGlow(cx, cy, r float64, col colorful.Color, alpha float64) {
	if !(r > 0) || alpha <= 0 {
		return
	}
	x0, y0, x1, y1, ok := c.bbox(cx, cy, r)
	if !ok {
		return
	}
	r2 := r * r
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - cy
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - cx
			d2 := dx*dx + dy*dy
			if d2 >= r2 {
				continue
			}
			f := 1 - math.Sqrt(d2)/r
			c.addPixel(x, y, col, alpha*f*f)
		}
	}
}

// FillRadial paints a radial gradient centered on the canvas through the given stops
// stops[0] at the center, the last stop at the farthest corner
func (c *Canvas) FillRadial(stops []colorful.Color) {
	if len(stops) == 0 || c.width == 0 || c.height == 0 {
		return
	}
	cx, cy := float64(c.width)/2, float64(c.height)/2
	maxD := math.Hypot(cx, cy)
	segs := float64(len(stops) - 1)

	for y := 0; y < c.height; y++ {
		dy := float64(y) + 0.5 - cy
		for x := 0; x < c.width; x++ {
			dx := float64(x) + 0.5 - cx
			t := math.Min(math.Hypot(dx, dy)/maxD, 1)

			var col colorful.Color
			if segs == 0 {
				col = stops[0]
			} else {
				pos := t * segs
				i := min(int(pos), len(stops)-2)
				col = stops[i].BlendRgb(stops[i+1], pos-float64(i))
			}
			c.pix[y*c.width+x] = Light{R: col.R, G: col.G, B: col.B}
		}
	}
}

// toRGB converts summed light to an 8-bit color
func (l Light) toRGB() RGB {
	return RGB{R: clamp(l.R*255 + 0.5), G: clamp(l.G*255 + 0.5), B: clamp(l.B*255 + 0.5)}
}

// Composite sums the layers additively and packs pixel pairs into half-block cells
// Layers must share the buffer geometry: width = cols, height = rows*2
func Composite(buf *RenderBuffer, layers ...*Canvas) {
	cols, rows := buf.Bounds()
	for row := 0; row < rows; row++ {
		top := row * parameter.PixelsPerRow
		for col := 0; col < cols; col++ {
			var hi, lo Light
			for _, l := range layers {
				if l == nil {
					continue
				}
				a, b := l.At(col, top), l.At(col, top+1)
				hi.R, hi.G, hi.B = hi.R+a.R, hi.G+a.G, hi.B+a.B
				lo.R, lo.G, lo.B = lo.R+b.R, lo.G+b.G, lo.B+b.B
			}
			buf.SetWithBg(col, row, parameter.HalfBlock, hi.toRGB(), lo.toRGB())
		}
	}
}
