package clippath

import (
	"fmt"
	"log/slog"
)

// Phase is the stage of a pointer interaction.
type Phase uint8

const (
	// PhaseDown starts an interaction (mouse down, touch start).
	PhaseDown Phase = iota
	// PhaseMove continues it (mouse move, touch move).
	PhaseMove
	// PhaseUp ends it (mouse up, touch end).
	PhaseUp
)

// DragTarget is the vertex being dragged in reshape mode, if any.
type DragTarget struct {
	Index  int
	Active bool
}

// Session is one polygon editing session: the vertex store, the current
// mode, and the pointer state between a press and its release.
//
// Every command runs to completion before returning. A Session is not safe
// for concurrent use; give each editor (or connection) its own.
type Session struct {
	mode   Mode
	store  Polygon
	drag   DragTarget
	held   bool
	width  int
	height int

	renderer Renderer
	radius   float64
	colors   ColorSource
	log      *slog.Logger
}

// NewSession creates an empty session in draw mode for a canvas of the
// given size. A non-positive dimension is raised to one pixel so
// percentages stay finite; call Resize once the real size is known.
func NewSession(width, height int, opts ...SessionOption) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.colors == nil {
		o.colors = RandomColors(o.seed)
	}
	s := &Session{
		mode:     ModeDraw,
		width:    max(width, 1),
		height:   max(height, 1),
		renderer: o.renderer,
		radius:   o.anchorRadius,
		colors:   o.colors,
		log:      o.logger,
	}
	if width <= 0 || height <= 0 {
		s.logger().Warn("clippath: canvas size raised to 1px", "width", width, "height", height)
	}
	return s
}

func (s *Session) logger() *slog.Logger {
	if s.log != nil {
		return s.log
	}
	return Logger()
}

// Mode returns the current interaction mode.
func (s *Session) Mode() Mode { return s.mode }

// Vertices returns a copy of the vertex store.
func (s *Session) Vertices() Polygon { return s.store.Clone() }

// Drag returns the active drag target.
func (s *Session) Drag() DragTarget { return s.drag }

// Held reports whether a pointer is currently pressed.
func (s *Session) Held() bool { return s.held }

// Size returns the canvas size in pixels.
func (s *Session) Size() (width, height int) { return s.width, s.height }

// AnchorRadius returns the radius used for anchors and hit-testing.
func (s *Session) AnchorRadius() float64 { return s.radius }

// SetMode switches the interaction mode.
//
// Entering reshape or remove closes the polygon and shows anchors.
// Entering draw drops the closing duplicate so new points append after
// the last real vertex. Switching to the current mode does nothing.
func (s *Session) SetMode(m Mode) {
	if m == s.mode {
		return
	}
	if int(m) >= len(handlers) {
		s.logger().Warn("clippath: unknown mode ignored", "mode", m)
		return
	}
	from := s.mode
	s.mode = m
	s.drag = DragTarget{}

	switch m {
	case ModeReshape, ModeRemove:
		s.store = s.store.Close()
		s.redraw(true)
	default:
		s.store = s.store.Open()
		s.redraw(false)
	}
	s.logger().Debug("clippath: mode changed", "from", from, "to", m, "vertices", len(s.store))
}

// PointerDown handles a press at canvas point p.
func (s *Session) PointerDown(p Point) {
	s.held = true
	s.handler().down(s, p)
}

// PointerMove handles pointer motion. Motion without a press is ignored.
func (s *Session) PointerMove(p Point) {
	if !s.held {
		return
	}
	s.handler().move(s, p)
}

// PointerUp handles a release at canvas point p.
func (s *Session) PointerUp(p Point) {
	s.held = false
	s.handler().up(s, p)
}

// HandleEvent normalizes a raw event and dispatches it by phase.
// It panics if the event's input kind is unknown.
func (s *Session) HandleEvent(phase Phase, ev Event) {
	p := Normalize(ev, float64(s.width), float64(s.height))
	switch phase {
	case PhaseDown:
		s.PointerDown(p)
	case PhaseMove:
		s.PointerMove(p)
	case PhaseUp:
		s.PointerUp(p)
	}
}

// Resize changes the canvas size and rescales every vertex to it.
// A non-positive size is rejected and the session is left unchanged.
func (s *Session) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		s.logger().Warn("clippath: resize rejected", "width", width, "height", height)
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	store := s.store
	if len(store) > 0 {
		var err error
		store, err = Rescale(store, s.width, s.height, width, height)
		if err != nil {
			s.logger().Warn("clippath: resize rejected", "width", width, "height", height, "err", err)
			return err
		}
	}
	if err := s.renderer.Resize(width, height); err != nil {
		return fmt.Errorf("clippath: resize renderer: %w", err)
	}

	s.store = store
	s.width, s.height = width, height
	s.redraw(s.mode != ModeDraw)
	s.logger().Debug("clippath: resized", "width", width, "height", height)
	return nil
}

// Clear empties the store and returns to draw mode.
func (s *Session) Clear() {
	s.store = nil
	s.mode = ModeDraw
	s.drag = DragTarget{}
	s.held = false
	s.renderer.Clear()
	s.logger().Debug("clippath: cleared")
}

// Tokens returns the clip-path points of the current store.
func (s *Session) Tokens() []Token {
	return Tokens(s.store, float64(s.width), float64(s.height))
}

// ClipPath returns the clip-path declaration for the current store, or ""
// when there are no vertices.
func (s *Session) ClipPath() string {
	return Expression(s.Tokens())
}

// Redraw repaints the current state to the renderer.
func (s *Session) Redraw() {
	s.redraw(s.mode != ModeDraw)
}

func (s *Session) handler() modeHandler {
	return handlers[s.mode]
}

func (s *Session) commit(p Point) {
	s.store = append(s.store, Vertex{Point: p, Color: s.colors()})
	s.logger().Debug("clippath: vertex committed", "index", len(s.store)-1, "x", p.X, "y", p.Y)
}

// drawEdges clears the canvas and strokes the polyline through the store.
func (s *Session) drawEdges() {
	s.renderer.Clear()
	for i := 1; i < len(s.store); i++ {
		s.renderer.Line(s.store[i-1].Point, s.store[i].Point)
	}
}

func (s *Session) drawAnchors() {
	for _, v := range s.store {
		s.renderer.Anchor(v.Point, s.radius, v.Color)
	}
}

func (s *Session) redraw(anchors bool) {
	s.drawEdges()
	if anchors {
		s.drawAnchors()
	}
}
