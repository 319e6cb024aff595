package clippath

import "github.com/gogpu/gg"

// Renderer receives the drawing requests a Session produces.
//
// A Session redraws from scratch: Clear, one Line per edge, then one
// Anchor per vertex when anchors are visible. Implementations decide
// stroke width and background.
type Renderer interface {
	// Clear erases the canvas.
	Clear()

	// Line draws a straight edge from a to b.
	Line(a, b Point)

	// Anchor draws a circular vertex marker.
	Anchor(center Point, radius float64, c gg.RGBA)

	// Resize changes the canvas size in pixels.
	Resize(width, height int) error
}

// nopRenderer discards all drawing requests.
type nopRenderer struct{}

func (nopRenderer) Clear()                         {}
func (nopRenderer) Line(Point, Point)              {}
func (nopRenderer) Anchor(Point, float64, gg.RGBA) {}
func (nopRenderer) Resize(int, int) error          { return nil }
