package plot

import (
	"image/color"
	"strconv"

	"chosenoffset.com/pointplot/internal/render"
)

// Label placement relative to the grid line, in pixels.
const (
	labelPad       = 2  // gap between a line and its label
	xLabelBaseline = 10 // baseline of the x labels along the top edge
)

// Style controls how the painter draws. Every color except SelectedColor
// must be set. Zero widths are drawn as 1px.
type Style struct {
	Background color.Color

	GridStep   int
	GridColor  color.Color
	GridWidth  float64
	LabelColor color.Color
	LabelScale float64

	PointRadius   float64
	PointFill     color.Color
	PointStroke   color.Color
	PointWidth    float64
	SelectedColor color.Color // nil draws selected points like the others
}

// Painter redraws the whole surface: background, grid, labels, then points.
// It only reads the points it is given.
type Painter struct {
	renderer render.Renderer
	style    Style
}

// NewPainter creates a painter that draws through r.
func NewPainter(r render.Renderer, style Style) *Painter {
	return &Painter{renderer: r, style: style}
}

// Render fills dst with the background and draws the grid and every point
// at its current position. Each call is a full redraw.
func (p *Painter) Render(dst render.Image, points []Point) {
	dst.Fill(p.style.Background)

	w, h := dst.Size()
	p.drawGrid(dst, w, h)
	p.drawPoints(dst, points)
}

// drawGrid draws vertical lines from x=0 to the width and horizontal lines
// from y=0 to the height, both inclusive, each with its coordinate label.
func (p *Painter) drawGrid(dst render.Image, w, h int) {
	step := p.style.GridStep
	if step <= 0 {
		return
	}
	lw := lineWidth(p.style.GridWidth)

	for x := 0; x <= w; x += step {
		p.renderer.StrokeLine(dst, float32(x), 0, float32(x), float32(h), lw, p.style.GridColor)
		p.renderer.DrawText(dst, strconv.Itoa(x), x+labelPad, xLabelBaseline, p.style.LabelColor, p.style.LabelScale)
	}

	// y grows downward, so labels read top to bottom.
	for y := 0; y <= h; y += step {
		p.renderer.StrokeLine(dst, 0, float32(y), float32(w), float32(y), lw, p.style.GridColor)
		p.renderer.DrawText(dst, strconv.Itoa(y), labelPad, y-labelPad, p.style.LabelColor, p.style.LabelScale)
	}
}

func (p *Painter) drawPoints(dst render.Image, points []Point) {
	r := float32(p.style.PointRadius)
	sw := lineWidth(p.style.PointWidth)

	for _, pt := range points {
		fill, stroke := p.style.PointFill, p.style.PointStroke
		if pt.Selected && p.style.SelectedColor != nil {
			fill, stroke = p.style.SelectedColor, p.style.SelectedColor
		}
		x, y := float32(pt.X), float32(pt.Y)
		p.renderer.FillCircle(dst, x, y, r, fill)
		p.renderer.StrokeCircle(dst, x, y, r, sw, stroke)
	}
}

func lineWidth(w float64) float32 {
	if w <= 0 {
		return 1
	}
	return float32(w)
}
