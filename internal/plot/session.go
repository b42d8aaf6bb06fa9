package plot

// Presenter redraws the surface. A Session calls it after every change to
// point geometry or selection, before returning to the event source.
type Presenter interface {
	Present()
}

// PresenterFunc adapts an ordinary function to the Presenter interface.
type PresenterFunc func()

// Present calls f().
func (f PresenterFunc) Present() { f() }

// Session owns the points and the drag state. It is driven by pointer
// events and is not safe for concurrent use; events are expected to arrive
// one at a time from a single loop.
type Session struct {
	points    []Point
	radius    float64
	presenter Presenter

	// Drag state. active is an index into points, -1 when idle.
	active           int
	offsetX, offsetY float64

	clamp         bool
	width, height float64
}

// NewSession creates a session over a copy of points. radius is used for
// hit testing. presenter may be nil.
func NewSession(points []Point, radius float64, presenter Presenter) *Session {
	ps := make([]Point, len(points))
	copy(ps, points)
	return &Session{
		points:    ps,
		radius:    radius,
		presenter: presenter,
		active:    -1,
	}
}

// ClampTo keeps dragged points inside [0, width] x [0, height].
// Without it points can be dragged off the surface.
func (s *Session) ClampTo(width, height float64) {
	s.clamp = true
	s.width, s.height = width, height
}

// PointerDown hit-tests every point in order. The last point hit becomes
// the drag target, with the pointer offset recorded, and is the only point
// left selected. With no hit at all, the drag target and every selected
// flag are cleared. If any selected flag changed, the session presents.
func (s *Session) PointerDown(x, y float64) {
	s.active = -1
	for i := range s.points {
		if HitTest(s.points[i], x, y, s.radius) {
			s.active = i
		}
	}
	if s.active >= 0 {
		p := s.points[s.active]
		s.offsetX = x - p.X
		s.offsetY = y - p.Y
	}

	changed := false
	for i := range s.points {
		sel := i == s.active
		if s.points[i].Selected != sel {
			s.points[i].Selected = sel
			changed = true
		}
	}
	if changed {
		s.present()
	}
}

// PointerMove moves the drag target so that it keeps its original offset
// from the pointer, then presents. Without a drag target it does nothing.
func (s *Session) PointerMove(x, y float64) {
	if s.active < 0 {
		return
	}
	s.apply(func() {
		nx, ny := x-s.offsetX, y-s.offsetY
		if s.clamp {
			nx, ny = Clamp(nx, ny, s.width, s.height)
		}
		p := &s.points[s.active]
		p.X, p.Y = nx, ny
	})
}

// PointerUp ends the drag. Selected flags are left as they are.
func (s *Session) PointerUp() {
	s.active = -1
}

// apply runs a geometry mutation and presents the result.
func (s *Session) apply(mutate func()) {
	mutate()
	s.present()
}

func (s *Session) present() {
	if s.presenter != nil {
		s.presenter.Present()
	}
}

// Points returns a copy of the points in insertion order.
func (s *Session) Points() []Point {
	out := make([]Point, len(s.points))
	copy(out, s.points)
	return out
}

// Len returns the number of points.
func (s *Session) Len() int {
	return len(s.points)
}

// Active returns the index of the drag target, if any.
func (s *Session) Active() (int, bool) {
	return s.active, s.active >= 0
}

// Dragging reports whether a drag target is set.
func (s *Session) Dragging() bool {
	return s.active >= 0
}

// Offset returns the pointer-to-center offset captured at drag start.
// It is only meaningful while Dragging.
func (s *Session) Offset() (dx, dy float64) {
	return s.offsetX, s.offsetY
}
