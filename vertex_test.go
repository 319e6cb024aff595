package clippath

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func poly(pts ...Point) Polygon {
	p := make(Polygon, len(pts))
	for i, pt := range pts {
		p[i] = Vertex{Point: pt, Color: gg.RGB(float64(i)/10, 0, 0)}
	}
	return p
}

func positions(p Polygon) []Point {
	out := make([]Point, len(p))
	for i, v := range p {
		out[i] = v.Point
	}
	return out
}

func TestPolygonClose(t *testing.T) {
	tests := []struct {
		name string
		in   Polygon
		want int
	}{
		{"empty", nil, 0},
		{"single", poly(Pt(1, 1)), 1},
		{"two points", poly(Pt(1, 1), Pt(5, 5)), 3},
		{"triangle", poly(Pt(0, 0), Pt(10, 0), Pt(10, 10)), 4},
		{"already closed", poly(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 0)), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Clone().Close()
			assert.Len(t, got, tt.want)
			if len(got) >= 2 {
				assert.True(t, got.Closed())
				assert.Equal(t, got[0].Point, got[len(got)-1].Point)
			}
		})
	}
}

func TestPolygonCloseCopiesFirstVertex(t *testing.T) {
	p := poly(Pt(0, 0), Pt(10, 0), Pt(10, 10)).Close()
	assert.Equal(t, p[0], p[3], "duplicate keeps the first vertex color")
}

func TestPolygonOpenRemovesOnlyDuplicate(t *testing.T) {
	open := poly(Pt(0, 0), Pt(10, 0), Pt(10, 10))
	closed := open.Clone().Close()

	assert.Equal(t, open, closed.Open())
	assert.Equal(t, open, open.Clone().Open(), "open polygon is unchanged")
	assert.Len(t, poly(Pt(3, 3)).Open(), 1, "a single vertex is not a closing duplicate")
}

func TestPolygonRemoveWrapAround(t *testing.T) {
	a, b, c, d := Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)

	tests := []struct {
		name  string
		in    Polygon
		index int
		want  []Point
	}{
		{"index 0 of one", poly(a), 0, []Point{}},
		{"index 0 of two", poly(a, b), 0, []Point{b}},
		{"index 0 of closed triangle", poly(a, b, c, a), 0, []Point{b, c}},
		{"index 0 of closed square", poly(a, b, c, d, a), 0, []Point{b, c, d}},
		{"middle", poly(a, b, c, d, a), 2, []Point{a, b, d, a}},
		{"closing duplicate", poly(a, b, c, a), 3, []Point{a, b, c}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.in.Remove(tt.index)
			require.True(t, ok)
			assert.Equal(t, tt.want, positions(got))
		})
	}
}

func TestPolygonRemoveIndexZeroKeepsRingClosed(t *testing.T) {
	p := poly(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0))
	n := len(p)

	got, ok := p.Remove(0)
	require.True(t, ok)
	assert.Len(t, got, n-2)

	got = got.Close()
	assert.True(t, got.Closed())
	assert.Equal(t, Pt(10, 0), got[0].Point)
}

func TestPolygonRemoveLeavesInputIntact(t *testing.T) {
	a, b, c := Pt(0, 0), Pt(10, 0), Pt(10, 10)
	for _, i := range []int{0, 1, 2} {
		p := poly(a, b, c, a)
		_, ok := p.Remove(i)
		require.True(t, ok)
		assert.Equal(t, []Point{a, b, c, a}, positions(p), "Remove(%d)", i)
	}
}

func TestPolygonCloseLeavesInputIntact(t *testing.T) {
	backing := poly(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(99, 99))
	p := backing[:3]

	closed := p.Close()
	require.True(t, closed.Closed())
	assert.Equal(t, Pt(99, 99), backing[3].Point, "spare capacity is not written")
}

func TestPolygonRemoveOutOfRange(t *testing.T) {
	p := poly(Pt(0, 0), Pt(1, 1))
	for _, i := range []int{-1, 2, 10} {
		got, ok := p.Remove(i)
		assert.False(t, ok, "Remove(%d)", i)
		assert.Len(t, got, 2)
	}
}

func TestPolygonHitTest(t *testing.T) {
	p := poly(Pt(50, 50), Pt(100, 100), Pt(50, 50))

	i, ok := p.HitTest(Pt(55, 52), 8)
	require.True(t, ok)
	assert.Equal(t, 0, i, "first vertex in store order wins")

	i, ok = p.HitTest(Pt(100, 108), 8)
	require.True(t, ok, "boundary of the anchor circle is a hit")
	assert.Equal(t, 1, i)

	_, ok = p.HitTest(Pt(200, 200), 8)
	assert.False(t, ok)

	_, ok = Polygon(nil).HitTest(Pt(0, 0), 8)
	assert.False(t, ok)
}

func TestPolygonCloneIsIndependent(t *testing.T) {
	p := poly(Pt(1, 2), Pt(3, 4))
	c := p.Clone()
	c[0].X = 99
	assert.Equal(t, 1.0, p[0].X)
	assert.Nil(t, Polygon(nil).Clone())
}
