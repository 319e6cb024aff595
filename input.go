package clippath

import "fmt"

// InputKind tags the device an Event came from.
type InputKind uint8

const (
	// InputPointer is a mouse or pen event carrying a canvas-relative offset.
	InputPointer InputKind = iota + 1

	// InputTouch is a touch event carrying page coordinates.
	InputTouch
)

// String returns the input kind name.
func (k InputKind) String() string {
	switch k {
	case InputPointer:
		return "pointer"
	case InputTouch:
		return "touch"
	default:
		return fmt.Sprintf("InputKind(%d)", uint8(k))
	}
}

// Touch is a single touch point as reported by the browser.
type Touch struct {
	// Page is the touch position in page coordinates.
	Page Point

	// TargetOffset is the offset of the touched element within the page.
	TargetOffset Point
}

// Event is a raw input event before normalization.
type Event struct {
	Kind InputKind

	// Offset is the canvas-relative position of a pointer event.
	Offset Point

	// Touches lists the fingers currently on the surface.
	Touches []Touch

	// ChangedTouches lists the fingers that changed in this event.
	// On a touch end it is the only place the lifted finger appears.
	ChangedTouches []Touch

	// End marks the final event of a touch (finger lifted).
	End bool
}

// PointerEvent returns a pointer Event at (x, y).
func PointerEvent(x, y float64) Event {
	return Event{Kind: InputPointer, Offset: Pt(x, y)}
}

// Normalize converts ev into a canvas-local point.
//
// Pointer offsets are used as is. Touch positions are taken relative to the
// target element and clamped into [0,width] x [0,height]; a touch end uses
// the changed touch list because the finger is no longer on the surface.
//
// Normalize panics on an unknown input kind or a touch event without touch
// points: both mean the integration layer is wired incorrectly.
func Normalize(ev Event, width, height float64) Point {
	switch ev.Kind {
	case InputPointer:
		return ev.Offset
	case InputTouch:
		list := ev.Touches
		if ev.End {
			list = ev.ChangedTouches
		}
		if len(list) == 0 {
			panic(fmt.Errorf("%w (end=%t)", ErrNoTouchPoint, ev.End))
		}
		t := list[0]
		return clampPoint(t.Page.Sub(t.TargetOffset), width, height)
	default:
		panic(fmt.Errorf("%w: %v", ErrUnknownInputKind, ev.Kind))
	}
}
