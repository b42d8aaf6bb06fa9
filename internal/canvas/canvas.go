// Package canvas ties the drag session and painter to a render backend.
// It polls the input manager once per tick, turns mouse state into
// pointer-down/move/up events, and keeps an offscreen surface that is
// repainted whenever point geometry changes.
package canvas

import (
	"log"

	"chosenoffset.com/pointplot/internal/config"
	"chosenoffset.com/pointplot/internal/plot"
	"chosenoffset.com/pointplot/internal/render"
)

// Canvas implements render.Game for the point plot.
type Canvas struct {
	Width  int
	Height int

	Renderer render.Renderer
	InputMgr render.InputManager

	session *plot.Session
	painter *plot.Painter
	surface render.Image

	// Last polled cursor position, used to detect pointer moves
	lastX, lastY int
	tracking     bool

	Debug bool
}

// New creates a canvas from cfg and paints the initial surface.
func New(r render.Renderer, input render.InputManager, cfg *config.Config) *Canvas {
	c := &Canvas{
		Width:    cfg.Window.Width,
		Height:   cfg.Window.Height,
		Renderer: r,
		InputMgr: input,
		painter:  plot.NewPainter(r, NewStyle(cfg)),
		surface:  r.NewImage(cfg.Window.Width, cfg.Window.Height),
	}

	c.session = plot.NewSession(InitialPoints(cfg), cfg.Point.Radius, plot.PresenterFunc(c.Render))
	if cfg.Point.ClampToSurface {
		c.session.ClampTo(float64(c.Width), float64(c.Height))
	}

	c.Render()
	return c
}

// NewStyle maps config onto painter settings
func NewStyle(cfg *config.Config) plot.Style {
	s := plot.Style{
		Background:  cfg.Background,
		GridStep:    cfg.Grid.Step,
		GridColor:   cfg.Grid.LineColor,
		GridWidth:   cfg.Grid.LineWidth,
		LabelColor:  cfg.Grid.LabelColor,
		LabelScale:  cfg.Grid.LabelScale,
		PointRadius: cfg.Point.Radius,
		PointFill:   cfg.Point.FillColor,
		PointStroke: cfg.Point.StrokeColor,
		PointWidth:  cfg.Point.StrokeWidth,
	}
	if cfg.Point.SelectedColor != nil {
		s.SelectedColor = *cfg.Point.SelectedColor
	}
	return s
}

// InitialPoints converts the configured starting positions to points
func InitialPoints(cfg *config.Config) []plot.Point {
	points := make([]plot.Point, len(cfg.Points))
	for i, pos := range cfg.Points {
		points[i] = plot.Point{X: pos.X, Y: pos.Y}
	}
	return points
}

// Session returns the drag session.
func (c *Canvas) Session() *plot.Session {
	return c.session
}

// Surface returns the offscreen image the painter draws on.
func (c *Canvas) Surface() render.Image {
	return c.surface
}

// Render repaints the surface from the current points.
func (c *Canvas) Render() {
	c.painter.Render(c.surface, c.session.Points())
}

// Update polls input and feeds the session. Events within one tick are
// delivered in the order down, move, up.
func (c *Canvas) Update() error {
	if c.InputMgr.IsKeyJustPressed(render.KeyEscape) || c.InputMgr.IsKeyJustPressed(render.KeyQ) {
		return render.ErrQuit
	}

	cx, cy := c.InputMgr.GetCursorPosition()
	moved := !c.tracking || cx != c.lastX || cy != c.lastY
	c.lastX, c.lastY, c.tracking = cx, cy, true
	x, y := float64(cx), float64(cy)

	if c.InputMgr.IsMouseButtonJustPressed(render.MouseButtonLeft) {
		c.session.PointerDown(x, y)
		if c.Debug {
			if i, ok := c.session.Active(); ok {
				dx, dy := c.session.Offset()
				log.Printf("Drag start: point %d at (%d, %d), offset (%g, %g)", i, cx, cy, dx, dy)
			} else {
				log.Printf("Pointer down at (%d, %d): no hit", cx, cy)
			}
		}
	} else if moved {
		c.session.PointerMove(x, y)
	}

	if c.InputMgr.IsMouseButtonJustReleased(render.MouseButtonLeft) {
		if c.Debug {
			if i, ok := c.session.Active(); ok {
				p := c.session.Points()[i]
				log.Printf("Drag end: point %d at (%g, %g)", i, p.X, p.Y)
			}
		}
		c.session.PointerUp()
	}

	return nil
}

// Draw presents the surface. Painting happens in Render, not here.
func (c *Canvas) Draw(screen render.Image) {
	screen.DrawImage(c.surface)
}

// Layout returns the fixed surface size.
func (c *Canvas) Layout(outsideWidth, outsideHeight int) (int, int) {
	return c.Width, c.Height
}
