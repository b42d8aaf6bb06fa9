package canvas

import (
	"errors"
	"testing"

	"chosenoffset.com/pointplot/internal/config"
	"chosenoffset.com/pointplot/internal/render"
	"chosenoffset.com/pointplot/internal/render/recorder"
)

// scriptedInput replays one frame of mouse state per Update.
type scriptedInput struct {
	x, y         int
	justPressed  bool
	justReleased bool
	keys         map[render.Key]bool
}

func (s *scriptedInput) IsKeyJustPressed(key render.Key) bool { return s.keys[key] }
func (s *scriptedInput) GetCursorPosition() (int, int)        { return s.x, s.y }

func (s *scriptedInput) IsMouseButtonJustPressed(b render.MouseButton) bool {
	return b == render.MouseButtonLeft && s.justPressed
}
func (s *scriptedInput) IsMouseButtonJustReleased(b render.MouseButton) bool {
	return b == render.MouseButtonLeft && s.justReleased
}

// press, move and release advance the script by one frame each.
func (s *scriptedInput) press(x, y int) {
	s.x, s.y = x, y
	s.justPressed, s.justReleased = true, false
}

func (s *scriptedInput) move(x, y int) {
	s.x, s.y = x, y
	s.justPressed, s.justReleased = false, false
}

func (s *scriptedInput) release(x, y int) {
	s.x, s.y = x, y
	s.justPressed, s.justReleased = false, true
}

func newTestCanvas(t *testing.T, cfg *config.Config) (*Canvas, *scriptedInput, *recorder.Image) {
	t.Helper()
	in := &scriptedInput{keys: map[render.Key]bool{}}
	c := New(recorder.NewRenderer(), in, cfg)
	surface, ok := c.Surface().(*recorder.Image)
	if !ok {
		t.Fatalf("Expected recorder surface, got %T", c.Surface())
	}
	return c, in, surface
}

func step(t *testing.T, c *Canvas) {
	t.Helper()
	if err := c.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
}

func TestNewPaintsInitialSurface(t *testing.T) {
	_, _, surface := newTestCanvas(t, config.DefaultConfig())

	if w, h := surface.Size(); w != 800 || h != 600 {
		t.Errorf("Expected 800x600 surface, got %dx%d", w, h)
	}
	if n := len(surface.OfKind(recorder.OpFill)); n != 1 {
		t.Errorf("Expected one initial render, got %d", n)
	}
	circles := surface.OfKind(recorder.OpFillCircle)
	if len(circles) != 3 {
		t.Fatalf("Expected 3 points drawn, got %d", len(circles))
	}
	if circles[2].X0 != 300 || circles[2].Y0 != 150 {
		t.Errorf("Expected third point at (300, 150), got (%g, %g)", circles[2].X0, circles[2].Y0)
	}
}

func TestDragThroughInput(t *testing.T) {
	c, in, surface := newTestCanvas(t, config.DefaultConfig())

	in.move(105, 103)
	step(t, c)
	in.press(105, 103)
	step(t, c)

	if i, ok := c.Session().Active(); !ok || i != 0 {
		t.Fatalf("Expected point 0 as drag target, got %d (ok=%v)", i, ok)
	}

	surface.Reset()
	in.move(150, 150)
	step(t, c)

	p := c.Session().Points()[0]
	if p.X != 145 || p.Y != 147 {
		t.Errorf("Expected point 0 at (145, 147), got (%g, %g)", p.X, p.Y)
	}

	// The move repainted the surface with the new position
	circles := surface.OfKind(recorder.OpFillCircle)
	if len(circles) != 3 {
		t.Fatalf("Expected a full redraw with 3 points, got %d", len(circles))
	}
	if circles[0].X0 != 145 || circles[0].Y0 != 147 {
		t.Errorf("Expected redraw at (145, 147), got (%g, %g)", circles[0].X0, circles[0].Y0)
	}

	in.release(150, 150)
	step(t, c)
	if c.Session().Dragging() {
		t.Error("Expected drag to end on release")
	}

	surface.Reset()
	in.move(400, 400)
	step(t, c)
	p = c.Session().Points()[0]
	if p.X != 145 || p.Y != 147 {
		t.Errorf("Expected point 0 to stay at (145, 147), got (%g, %g)", p.X, p.Y)
	}
	if len(surface.Ops) != 0 {
		t.Errorf("Expected no redraw without a drag, got %d ops", len(surface.Ops))
	}
}

func TestStationaryFramesDoNotRedraw(t *testing.T) {
	c, in, surface := newTestCanvas(t, config.DefaultConfig())

	in.press(200, 200)
	step(t, c)
	surface.Reset()

	in.move(200, 200)
	step(t, c)
	step(t, c)

	if len(surface.Ops) != 0 {
		t.Errorf("Expected no redraw while the cursor is still, got %d ops", len(surface.Ops))
	}
}

func TestMissLeavesNothingSelected(t *testing.T) {
	c, in, _ := newTestCanvas(t, config.DefaultConfig())

	in.press(500, 500)
	step(t, c)

	if c.Session().Dragging() {
		t.Error("Expected no drag target after a miss")
	}
	for i, p := range c.Session().Points() {
		if p.Selected {
			t.Errorf("Expected point %d unselected", i)
		}
	}
}

func TestClampFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Point.ClampToSurface = true
	c, in, _ := newTestCanvas(t, cfg)

	in.press(100, 100)
	step(t, c)
	in.move(-30, 900)
	step(t, c)

	p := c.Session().Points()[0]
	if p.X != 0 || p.Y != 600 {
		t.Errorf("Expected clamped point at (0, 600), got (%g, %g)", p.X, p.Y)
	}
}

func TestSelectedColorFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	blue := config.MustParseColor("blue")
	red := config.DefaultConfig().Point.FillColor
	cfg.Point.SelectedColor = &blue
	c, in, surface := newTestCanvas(t, cfg)

	// Click point 2 without moving
	surface.Reset()
	in.press(300, 150)
	step(t, c)
	in.release(300, 150)
	step(t, c)

	circles := surface.OfKind(recorder.OpFillCircle)
	if len(circles) != 3 {
		t.Fatalf("Expected the click to repaint 3 points, got %d", len(circles))
	}
	for i, want := range []config.Color{red, red, blue} {
		if circles[i].Color != want {
			t.Errorf("After click: expected point %d drawn %v, got %v", i, want, circles[i].Color)
		}
	}

	// Click empty space; the highlight must go away
	surface.Reset()
	in.press(500, 500)
	step(t, c)

	circles = surface.OfKind(recorder.OpFillCircle)
	if len(circles) != 3 {
		t.Fatalf("Expected the miss to repaint 3 points, got %d", len(circles))
	}
	for i, op := range circles {
		if op.Color != red {
			t.Errorf("After miss: expected point %d drawn %v, got %v", i, red, op.Color)
		}
	}
}

func TestClickWithoutSelectionChangeDoesNotRedraw(t *testing.T) {
	c, in, surface := newTestCanvas(t, config.DefaultConfig())

	in.press(100, 100)
	step(t, c)
	in.release(100, 100)
	step(t, c)
	surface.Reset()

	in.press(101, 100)
	step(t, c)
	if len(surface.Ops) != 0 {
		t.Errorf("Expected no redraw when reselecting the same point, got %d ops", len(surface.Ops))
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []render.Key{render.KeyEscape, render.KeyQ} {
		c, in, _ := newTestCanvas(t, config.DefaultConfig())
		in.keys[key] = true
		if err := c.Update(); !errors.Is(err, render.ErrQuit) {
			t.Errorf("Key %d: expected ErrQuit, got %v", key, err)
		}
	}
}

func TestDrawPresentsSurface(t *testing.T) {
	c, _, surface := newTestCanvas(t, config.DefaultConfig())
	screen := recorder.NewImage(800, 600)

	c.Draw(screen)

	if len(screen.Ops) != 1 || screen.Ops[0].Kind != recorder.OpDrawImage || screen.Ops[0].Src != surface {
		t.Errorf("Expected a single blit of the surface, got %+v", screen.Ops)
	}
}

func TestLayout(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Window.Width, cfg.Window.Height = 640, 480
	c, _, _ := newTestCanvas(t, cfg)

	w, h := c.Layout(1920, 1080)
	if w != 640 || h != 480 {
		t.Errorf("Expected layout 640x480, got %dx%d", w, h)
	}
}
