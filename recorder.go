package clippath

import "github.com/gogpu/gg"

// Op identifies the kind of a recorded drawing Command.
type Op uint8

const (
	// OpClear erases the canvas.
	OpClear Op = iota + 1
	// OpLine draws an edge from From to To.
	OpLine
	// OpAnchor draws a circle of Radius around From.
	OpAnchor
	// OpResize changes the canvas size to (To.X, To.Y).
	OpResize
)

var opNames = [...]string{
	OpClear:  "clear",
	OpLine:   "line",
	OpAnchor: "anchor",
	OpResize: "resize",
}

// String returns the operation name.
func (op Op) String() string {
	if int(op) < len(opNames) && opNames[op] != "" {
		return opNames[op]
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler so commands serialize
// with readable op names.
func (op Op) MarshalText() ([]byte, error) {
	return []byte(op.String()), nil
}

// Command is one recorded drawing request.
type Command struct {
	Op     Op
	From   Point
	To     Point
	Radius float64
	Color  gg.RGBA
}

// Recorder is a Renderer that stores drawing requests instead of
// rasterizing them. Commands can be inspected or replayed to another
// Renderer.
type Recorder struct {
	width, height int
	commands      []Command
}

// NewRecorder creates a Recorder for a canvas of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

// Clear records an OpClear.
func (r *Recorder) Clear() {
	r.commands = append(r.commands, Command{Op: OpClear})
}

// Line records an OpLine.
func (r *Recorder) Line(a, b Point) {
	r.commands = append(r.commands, Command{Op: OpLine, From: a, To: b})
}

// Anchor records an OpAnchor.
func (r *Recorder) Anchor(center Point, radius float64, c gg.RGBA) {
	r.commands = append(r.commands, Command{Op: OpAnchor, From: center, Radius: radius, Color: c})
}

// Resize records an OpResize.
func (r *Recorder) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	r.width, r.height = width, height
	r.commands = append(r.commands, Command{Op: OpResize, To: Pt(float64(width), float64(height))})
	return nil
}

// Width returns the canvas width.
func (r *Recorder) Width() int { return r.width }

// Height returns the canvas height.
func (r *Recorder) Height() int { return r.height }

// Commands returns the recorded commands. The slice is owned by the Recorder.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Take returns the recorded commands and resets the Recorder.
func (r *Recorder) Take() []Command {
	cmds := r.commands
	r.commands = nil
	return cmds
}

// Playback replays the recorded commands to dst in order.
func (r *Recorder) Playback(dst Renderer) error {
	for _, cmd := range r.commands {
		switch cmd.Op {
		case OpClear:
			dst.Clear()
		case OpLine:
			dst.Line(cmd.From, cmd.To)
		case OpAnchor:
			dst.Anchor(cmd.From, cmd.Radius, cmd.Color)
		case OpResize:
			if err := dst.Resize(int(cmd.To.X), int(cmd.To.Y)); err != nil {
				return err
			}
		}
	}
	return nil
}
