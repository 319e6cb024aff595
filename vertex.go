package clippath

import "github.com/gogpu/gg"

// Vertex is a polygon corner: a canvas position and the color assigned to
// it when it was committed. The color never affects geometry.
type Vertex struct {
	Point
	Color gg.RGBA
}

// Polygon is the ordered vertex store. Order defines edge connectivity and
// the order of clip-path points.
//
// A closed polygon repeats its first vertex at the end. The duplicate is
// transient: it exists while reshaping, removing or exporting and is
// dropped again before drawing resumes.
type Polygon []Vertex

// Closed reports whether the last vertex is a closing duplicate of the first.
// Positions are compared by value.
func (p Polygon) Closed() bool {
	n := len(p)
	return n >= 2 && p[0].Point == p[n-1].Point
}

// Close returns p with a copy of the first vertex appended, unless p is
// already closed. Polygons with fewer than two vertices are returned
// unchanged. p is not modified.
func (p Polygon) Close() Polygon {
	if len(p) < 2 || p.Closed() {
		return p
	}
	out := make(Polygon, len(p), len(p)+1)
	copy(out, p)
	return append(out, p[0])
}

// Open drops the trailing closing duplicate, if any, and nothing else.
// The result shares p's backing array.
func (p Polygon) Open() Polygon {
	if !p.Closed() {
		return p
	}
	return p[:len(p)-1]
}

// Unique returns the vertices without the closing duplicate.
func (p Polygon) Unique() Polygon {
	return p.Open()
}

// Clone returns an independent copy of p.
func (p Polygon) Clone() Polygon {
	if p == nil {
		return nil
	}
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// Remove deletes the vertex at index i.
//
// Index 0 of a closed ring shares its position with the last vertex, so
// removing it drops both copies. Two short stores are special: with two
// vertices only index 0 goes, with one the result is empty.
// The second result is false when i is out of range. p is not modified.
func (p Polygon) Remove(i int) (Polygon, bool) {
	n := len(p)
	if i < 0 || i >= n {
		return p, false
	}
	if i == 0 {
		switch n {
		case 1:
			return Polygon{}, true
		case 2:
			return Polygon{p[1]}, true
		default:
			return p[1 : n-1].Clone(), true
		}
	}
	out := make(Polygon, 0, n-1)
	out = append(out, p[:i]...)
	return append(out, p[i+1:]...), true
}

// HitTest returns the index of the first vertex, in store order, whose
// anchor circle of the given radius contains pt.
func (p Polygon) HitTest(pt Point, radius float64) (int, bool) {
	for i, v := range p {
		if v.Distance(pt) <= radius {
			return i, true
		}
	}
	return 0, false
}
