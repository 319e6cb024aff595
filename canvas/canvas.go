// Package canvas rasterizes clippath drawing requests with gg.
//
// A Canvas is a [clippath.Renderer]: pass it to [clippath.WithRenderer] and
// every session redraw lands in an in-memory pixmap that can be encoded
// as PNG.
//
//	cv, err := canvas.New(400, 300)
//	if err != nil {
//	    return err
//	}
//	s := clippath.NewSession(400, 300, clippath.WithRenderer(cv))
//	// ... drive the session ...
//	cv.DrawLabels(s.Tokens(), s.Vertices())
//	err = cv.SavePNG("polygon.png")
package canvas

import (
	"fmt"
	"image"
	"io"
	"sync"

	"github.com/gogpu/clippath"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// labelSource is the font used for token labels, parsed once.
var labelSource = sync.OnceValues(func() (*text.FontSource, error) {
	return text.NewFontSource(goregular.TTF)
})

// Canvas is a clippath.Renderer backed by a gg drawing context.
type Canvas struct {
	dc   *gg.Context
	opts options
	face text.Face
}

var _ clippath.Renderer = (*Canvas)(nil)

// New creates a canvas of the given size, cleared to the background color.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas: %w: %dx%d", clippath.ErrInvalidDimensions, width, height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	src, err := labelSource()
	if err != nil {
		return nil, fmt.Errorf("canvas: load label font: %w", err)
	}

	c := &Canvas{
		dc:   gg.NewContext(width, height),
		opts: o,
		face: src.Face(o.labelSize),
	}
	c.Clear()
	return c, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.dc.Height() }

// Clear fills the canvas with the background color.
func (c *Canvas) Clear() {
	c.dc.ClearWithColor(c.opts.background)
}

// Line strokes an edge in the stroke color.
func (c *Canvas) Line(a, b clippath.Point) {
	c.setColor(c.opts.stroke)
	c.dc.SetLineWidth(c.opts.lineWidth)
	c.dc.DrawLine(a.X, a.Y, b.X, b.Y)
	c.stroke()
}

// Anchor strokes a vertex marker circle in the vertex color.
func (c *Canvas) Anchor(center clippath.Point, radius float64, col gg.RGBA) {
	c.setColor(col)
	c.dc.SetLineWidth(c.opts.lineWidth)
	c.dc.DrawCircle(center.X, center.Y, radius)
	c.stroke()
}

// Resize changes the canvas size. The content is cleared; the session
// redraws right after resizing.
func (c *Canvas) Resize(width, height int) error {
	if err := c.dc.Resize(width, height); err != nil {
		return fmt.Errorf("canvas: %w", err)
	}
	c.Clear()
	return nil
}

// DrawLabels writes each token's text next to its vertex on a box of the
// vertex color, with the text in the contrasting color. Tokens and
// vertices are matched by index; a closing duplicate is ignored.
func (c *Canvas) DrawLabels(tokens []clippath.Token, vertices clippath.Polygon) {
	c.dc.SetFont(c.face)
	vertices = vertices.Unique()
	for i, tok := range tokens {
		if i >= len(vertices) {
			break
		}
		v := vertices[i]
		w, h := c.dc.MeasureString(tok.Text)
		x, y := c.labelOrigin(v.Point, w, h)

		c.setColor(tok.Color)
		c.dc.DrawRectangle(x-labelPad, y-h-labelPad, w+2*labelPad, h+2*labelPad)
		if err := c.dc.Fill(); err != nil {
			clippath.Logger().Warn("canvas: label fill failed", "err", err)
		}
		c.setColor(clippath.Contrast(tok.Color))
		c.dc.DrawString(tok.Text, x, y)
	}
}

const labelPad = 2

// labelOrigin places a w x h label to the lower right of p, flipped inward
// when it would leave the canvas. The result is the text baseline origin.
func (c *Canvas) labelOrigin(p clippath.Point, w, h float64) (x, y float64) {
	off := c.opts.labelOffset
	x, y = p.X+off, p.Y+off+h
	if x+w+labelPad > float64(c.Width()) {
		x = p.X - off - w
	}
	if y+labelPad > float64(c.Height()) {
		y = p.Y - off
	}
	return x, y
}

// Image returns the current pixels.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return c.dc.SavePNG(path)
}

func (c *Canvas) setColor(col gg.RGBA) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
}

func (c *Canvas) stroke() {
	if err := c.dc.Stroke(); err != nil {
		clippath.Logger().Warn("canvas: stroke failed", "err", err)
	}
}
