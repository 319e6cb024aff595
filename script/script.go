// Package script replays recorded editing sessions from YAML.
//
// A script names the canvas size and lists input steps in order:
//
//	canvas: {width: 200, height: 100}
//	steps:
//	  - down: [0, 0]
//	  - up: [200, 0]
//	  - click: [200, 100]
//	  - mode: reshape
//	  - down: [200, 100]
//	  - move: [150, 100]
//	  - up: [150, 100]
//	  - touch: {phase: down, touches: [{page: [60, 70], target: [10, 20]}]}
//	  - resize: [100, 50]
//	  - clear: true
//
// Every step carries exactly one action.
package script

import (
	"errors"
	"fmt"
	"os"

	"github.com/gogpu/clippath"
	"gopkg.in/yaml.v3"
)

// ErrInvalidStep is returned for steps with zero or several actions.
var ErrInvalidStep = errors.New("script: step must have exactly one action")

// XY is a point written as a two element list, [x, y].
type XY [2]float64

// Point converts xy to a canvas point.
func (xy XY) Point() clippath.Point {
	return clippath.Pt(xy[0], xy[1])
}

// Size is a canvas size.
type Size struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TouchPoint is one finger of a touch step.
type TouchPoint struct {
	Page   XY `yaml:"page"`
	Target XY `yaml:"target"`
}

// TouchStep is a raw touch event. Phase is down, move or up; an up phase
// is a touch end and reads Changed (or Touches when Changed is empty).
type TouchStep struct {
	Phase   string       `yaml:"phase"`
	Touches []TouchPoint `yaml:"touches"`
	Changed []TouchPoint `yaml:"changed,omitempty"`
}

// Step is a single scripted action.
type Step struct {
	Down   *XY            `yaml:"down,omitempty"`
	Move   *XY            `yaml:"move,omitempty"`
	Up     *XY            `yaml:"up,omitempty"`
	Click  *XY            `yaml:"click,omitempty"`
	Mode   *clippath.Mode `yaml:"mode,omitempty"`
	Touch  *TouchStep     `yaml:"touch,omitempty"`
	Resize *[2]int        `yaml:"resize,omitempty"`
	Clear  bool           `yaml:"clear,omitempty"`
}

// actions counts the actions set on s.
func (s Step) actions() int {
	n := 0
	for _, set := range []bool{
		s.Down != nil, s.Move != nil, s.Up != nil, s.Click != nil,
		s.Mode != nil, s.Touch != nil, s.Resize != nil, s.Clear,
	} {
		if set {
			n++
		}
	}
	return n
}

// Script is a parsed session script.
type Script struct {
	Canvas Size   `yaml:"canvas"`
	Steps  []Step `yaml:"steps"`
}

// DefaultCanvas is used when a script does not name a canvas size.
var DefaultCanvas = Size{Width: 400, Height: 300}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return Parse(data)
}

// Parse parses a YAML script and validates its steps.
func Parse(data []byte) (*Script, error) {
	var sc Script
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing script: %w", err)
	}
	if sc.Canvas.Width == 0 && sc.Canvas.Height == 0 {
		sc.Canvas = DefaultCanvas
	}
	if sc.Canvas.Width <= 0 || sc.Canvas.Height <= 0 {
		return nil, fmt.Errorf("parsing script: canvas %dx%d: %w",
			sc.Canvas.Width, sc.Canvas.Height, clippath.ErrInvalidDimensions)
	}
	for i, st := range sc.Steps {
		if st.actions() != 1 {
			return nil, fmt.Errorf("step %d: %w", i, ErrInvalidStep)
		}
		if st.Touch != nil {
			phase, err := parsePhase(st.Touch.Phase)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			if len(st.Touch.points(phase)) == 0 {
				return nil, fmt.Errorf("step %d: %w", i, clippath.ErrNoTouchPoint)
			}
		}
	}
	return &sc, nil
}

// NewSession creates a session sized to the script canvas.
func (sc *Script) NewSession(opts ...clippath.SessionOption) *clippath.Session {
	return clippath.NewSession(sc.Canvas.Width, sc.Canvas.Height, opts...)
}

// Run applies every step to s in order. A rejected resize stops the run
// and is returned with its step index; earlier steps stay applied.
func (sc *Script) Run(s *clippath.Session) error {
	log := clippath.Logger()
	for i, st := range sc.Steps {
		if err := apply(s, st); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	log.Debug("script: replayed", "steps", len(sc.Steps), "vertices", len(s.Vertices()))
	return nil
}

func apply(s *clippath.Session, st Step) error {
	switch {
	case st.Down != nil:
		s.PointerDown(st.Down.Point())
	case st.Move != nil:
		s.PointerMove(st.Move.Point())
	case st.Up != nil:
		s.PointerUp(st.Up.Point())
	case st.Click != nil:
		s.PointerDown(st.Click.Point())
		s.PointerUp(st.Click.Point())
	case st.Mode != nil:
		s.SetMode(*st.Mode)
	case st.Touch != nil:
		phase, err := parsePhase(st.Touch.Phase)
		if err != nil {
			return err
		}
		s.HandleEvent(phase, st.Touch.event(phase))
	case st.Resize != nil:
		return s.Resize(st.Resize[0], st.Resize[1])
	case st.Clear:
		s.Clear()
	}
	return nil
}

// points returns the list a phase reads: changed (falling back to touches)
// for a touch end, touches otherwise.
func (ts *TouchStep) points(phase clippath.Phase) []TouchPoint {
	if phase != clippath.PhaseUp {
		return ts.Touches
	}
	if len(ts.Changed) > 0 {
		return ts.Changed
	}
	return ts.Touches
}

func (ts *TouchStep) event(phase clippath.Phase) clippath.Event {
	ev := clippath.Event{
		Kind:    clippath.InputTouch,
		Touches: touches(ts.Touches),
		End:     phase == clippath.PhaseUp,
	}
	if ev.End {
		ev.ChangedTouches = touches(ts.points(phase))
	}
	return ev
}

func touches(in []TouchPoint) []clippath.Touch {
	if len(in) == 0 {
		return nil
	}
	out := make([]clippath.Touch, len(in))
	for i, tp := range in {
		out[i] = clippath.Touch{Page: tp.Page.Point(), TargetOffset: tp.Target.Point()}
	}
	return out
}

func parsePhase(s string) (clippath.Phase, error) {
	switch s {
	case "down", "start":
		return clippath.PhaseDown, nil
	case "move":
		return clippath.PhaseMove, nil
	case "up", "end":
		return clippath.PhaseUp, nil
	default:
		return 0, fmt.Errorf("script: unknown touch phase %q", s)
	}
}
