package clippath

// modeHandler interprets one pointer interaction phase for a mode.
type modeHandler interface {
	down(s *Session, p Point)
	move(s *Session, p Point)
	up(s *Session, p Point)
}

var handlers = [...]modeHandler{
	ModeDraw:    drawHandler{},
	ModeReshape: reshapeHandler{},
	ModeRemove:  removeHandler{},
}

// drawHandler appends vertices. The first press seeds the polygon; every
// release commits a point.
type drawHandler struct{}

func (drawHandler) down(s *Session, p Point) {
	if len(s.store) == 0 {
		s.commit(p)
	}
}

// move previews the edge from the last committed vertex to the pointer.
func (drawHandler) move(s *Session, p Point) {
	s.drawEdges()
	if n := len(s.store); n > 0 {
		s.renderer.Line(s.store[n-1].Point, p)
	}
}

func (drawHandler) up(s *Session, p Point) {
	s.commit(p)
	s.drawEdges()
}

// reshapeHandler drags the vertex under the press.
type reshapeHandler struct{}

func (reshapeHandler) down(s *Session, p Point) {
	if i, ok := s.store.HitTest(p, s.radius); ok {
		s.drag = DragTarget{Index: i, Active: true}
		s.logger().Debug("clippath: drag started", "index", i)
	}
}

func (reshapeHandler) move(s *Session, p Point) {
	if !s.drag.Active {
		return
	}
	i := s.drag.Index
	closed := s.store.Closed()
	s.store[i].Point = p
	// The closing duplicate follows the first vertex so the ring stays closed.
	if i == 0 && closed {
		s.store[len(s.store)-1].Point = p
	}
	s.redraw(true)
}

func (reshapeHandler) up(s *Session, _ Point) {
	s.drag = DragTarget{}
}

// removeHandler deletes the vertex under the press.
type removeHandler struct{}

func (removeHandler) down(s *Session, p Point) {
	i, ok := s.store.HitTest(p, s.radius)
	if !ok {
		return
	}
	s.store, _ = s.store.Remove(i)
	if len(s.store) >= 3 {
		s.store = s.store.Close()
	}
	s.redraw(true)
	s.logger().Debug("clippath: vertex removed", "index", i, "remaining", len(s.store))
}

func (removeHandler) move(*Session, Point) {}

func (removeHandler) up(*Session, Point) {}
