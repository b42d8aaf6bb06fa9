// Package recorder is an in-memory render backend that records every draw
// call instead of rasterizing it. Tests use it to assert on what was drawn
// without a GPU or a window.
package recorder

import (
	"image/color"

	"chosenoffset.com/pointplot/internal/render"
)

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpFill OpKind = iota
	OpFillCircle
	OpStrokeCircle
	OpStrokeLine
	OpText
	OpDrawImage
)

// Op is a single recorded draw call. Only the fields relevant to Kind are set.
type Op struct {
	Kind  OpKind
	Color color.Color

	// Circles use X0/Y0 as the center; lines use both endpoints.
	X0, Y0, X1, Y1 float32
	Radius         float32
	Width          float32

	Text         string
	TextX, TextY int
	Scale        float64

	Src *Image
}

// Image records the operations drawn onto it.
type Image struct {
	width, height int
	Ops           []Op
}

// NewImage creates an empty recording image.
func NewImage(width, height int) *Image {
	return &Image{width: width, height: height}
}

// Size returns the width and height of the image.
func (i *Image) Size() (width, height int) {
	return i.width, i.height
}

// Fill records a fill.
func (i *Image) Fill(clr color.Color) {
	i.Ops = append(i.Ops, Op{Kind: OpFill, Color: clr})
}

// DrawImage records src being composited onto this image.
func (i *Image) DrawImage(src render.Image) {
	op := Op{Kind: OpDrawImage}
	if s, ok := src.(*Image); ok {
		op.Src = s
	}
	i.Ops = append(i.Ops, op)
}

// Reset forgets all recorded operations.
func (i *Image) Reset() {
	i.Ops = nil
}

// OfKind returns the recorded operations of the given kind, in order.
func (i *Image) OfKind(kind OpKind) []Op {
	var out []Op
	for _, op := range i.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Renderer implements render.Renderer on recording images.
type Renderer struct {
	// Images lists every image created through NewImage.
	Images []*Image
}

// NewRenderer creates a recording renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// NewImage creates a recording image and remembers it.
func (r *Renderer) NewImage(width, height int) render.Image {
	img := NewImage(width, height)
	r.Images = append(r.Images, img)
	return img
}

// FillCircle records a filled circle.
func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	record(dst, Op{Kind: OpFillCircle, X0: x, Y0: y, Radius: radius, Color: clr})
}

// StrokeCircle records a circle outline.
func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	record(dst, Op{Kind: OpStrokeCircle, X0: x, Y0: y, Radius: radius, Width: strokeWidth, Color: clr})
}

// StrokeLine records a line segment.
func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	record(dst, Op{Kind: OpStrokeLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Width: strokeWidth, Color: clr})
}

// DrawText records a text draw.
func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	record(dst, Op{Kind: OpText, Text: text, TextX: x, TextY: y, Color: clr, Scale: scale})
}

func record(dst render.Image, op Op) {
	if img, ok := dst.(*Image); ok {
		img.Ops = append(img.Ops, op)
	}
}
