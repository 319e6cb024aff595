package live

import (
	"fmt"

	"github.com/gogpu/clippath"
)

// Message is a client request. Type selects the command:
// down, move and up carry an input event; mode carries Mode; resize
// carries Width and Height; clear carries nothing.
type Message struct {
	Type    string      `json:"type"`
	Kind    string      `json:"kind,omitempty"`
	X       float64     `json:"x,omitempty"`
	Y       float64     `json:"y,omitempty"`
	Touches []WireTouch `json:"touches,omitempty"`
	Changed []WireTouch `json:"changed,omitempty"`
	Mode    string      `json:"mode,omitempty"`
	Width   int         `json:"width,omitempty"`
	Height  int         `json:"height,omitempty"`
}

// WireTouch is a touch point as sent by the page script.
type WireTouch struct {
	PageX   float64 `json:"pageX"`
	PageY   float64 `json:"pageY"`
	OffsetX float64 `json:"offsetLeft"`
	OffsetY float64 `json:"offsetTop"`
}

// WireCommand is a drawing request for the page's 2D context.
type WireCommand struct {
	Op     string  `json:"op"`
	X1     float64 `json:"x1,omitempty"`
	Y1     float64 `json:"y1,omitempty"`
	X2     float64 `json:"x2,omitempty"`
	Y2     float64 `json:"y2,omitempty"`
	Radius float64 `json:"r,omitempty"`
	Color  string  `json:"color,omitempty"`
}

// WireToken is a clip-path point and its display colors.
type WireToken struct {
	Text       string `json:"text"`
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// Reply is sent after every message and once when the connection opens.
type Reply struct {
	Commands []WireCommand `json:"commands"`
	Tokens   []WireToken   `json:"tokens"`
	ClipPath string        `json:"clipPath"`
	Mode     string        `json:"mode"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Error    string        `json:"error,omitempty"`
}

// phases maps message types carrying input events to their phase.
var phases = map[string]clippath.Phase{
	"down": clippath.PhaseDown,
	"move": clippath.PhaseMove,
	"up":   clippath.PhaseUp,
}

// event converts an input message into a raw event. Unknown input kinds and
// empty touch lists are rejected here, since clippath.Normalize panics on them.
func (m Message) event(phase clippath.Phase) (clippath.Event, error) {
	switch m.Kind {
	case "", "pointer", "mouse":
		return clippath.PointerEvent(m.X, m.Y), nil
	case "touch":
		ev := clippath.Event{
			Kind:           clippath.InputTouch,
			Touches:        touches(m.Touches),
			ChangedTouches: touches(m.Changed),
			End:            phase == clippath.PhaseUp,
		}
		list := ev.Touches
		if ev.End {
			list = ev.ChangedTouches
		}
		if len(list) == 0 {
			return ev, clippath.ErrNoTouchPoint
		}
		return ev, nil
	default:
		return clippath.Event{}, fmt.Errorf("%w: %q", clippath.ErrUnknownInputKind, m.Kind)
	}
}

func touches(in []WireTouch) []clippath.Touch {
	out := make([]clippath.Touch, len(in))
	for i, t := range in {
		out[i] = clippath.Touch{
			Page:         clippath.Pt(t.PageX, t.PageY),
			TargetOffset: clippath.Pt(t.OffsetX, t.OffsetY),
		}
	}
	return out
}

func wireCommands(cmds []clippath.Command) []WireCommand {
	out := make([]WireCommand, 0, len(cmds))
	for _, c := range cmds {
		w := WireCommand{Op: c.Op.String()}
		switch c.Op {
		case clippath.OpLine:
			w.X1, w.Y1, w.X2, w.Y2 = c.From.X, c.From.Y, c.To.X, c.To.Y
		case clippath.OpAnchor:
			w.X1, w.Y1, w.Radius, w.Color = c.From.X, c.From.Y, c.Radius, clippath.Hex(c.Color)
		case clippath.OpResize:
			w.X2, w.Y2 = c.To.X, c.To.Y
		}
		out = append(out, w)
	}
	return out
}

func wireTokens(tokens []clippath.Token) []WireToken {
	out := make([]WireToken, len(tokens))
	for i, t := range tokens {
		out[i] = WireToken{
			Text:       t.Text,
			Background: clippath.Hex(t.Color),
			Foreground: clippath.Hex(clippath.Contrast(t.Color)),
		}
	}
	return out
}
