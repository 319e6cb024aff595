package clippath

import (
	"fmt"
	"math"
)

// Rescale maps every vertex of p from a w0 x h0 canvas onto a w1 x h1
// canvas, rounding to whole pixels. Colors are kept. p is not modified.
func Rescale(p Polygon, w0, h0, w1, h1 int) (Polygon, error) {
	if w1 <= 0 || h1 <= 0 {
		return p, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w1, h1)
	}
	if w0 <= 0 || h0 <= 0 {
		return p, fmt.Errorf("%w: source canvas %dx%d", ErrInvalidDimensions, w0, h0)
	}
	if w0 == w1 && h0 == h1 {
		return p.Clone(), nil
	}
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Vertex{
			Point: Pt(
				math.Round(v.X/float64(w0)*float64(w1)),
				math.Round(v.Y/float64(h0)*float64(h1)),
			),
			Color: v.Color,
		}
	}
	return out, nil
}
