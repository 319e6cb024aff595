package clippath

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/gg"
)

// countingRenderer is a test renderer for DI testing.
type countingRenderer struct {
	clears  int
	lines   int
	anchors int
}

func (m *countingRenderer) Clear()                               { m.clears++ }
func (m *countingRenderer) Line(_, _ Point)                      { m.lines++ }
func (m *countingRenderer) Anchor(_ Point, _ float64, _ gg.RGBA) { m.anchors++ }
func (m *countingRenderer) Resize(_, _ int) error                { return nil }

// TestNewSessionDefault tests the defaults used without options.
func TestNewSessionDefault(t *testing.T) {
	s := NewSession(100, 50)
	if s.Mode() != ModeDraw {
		t.Errorf("Mode() = %v, want draw", s.Mode())
	}
	if w, h := s.Size(); w != 100 || h != 50 {
		t.Errorf("Size() = %dx%d, want 100x50", w, h)
	}
	if s.AnchorRadius() != DefaultAnchorRadius {
		t.Errorf("AnchorRadius() = %v, want %v", s.AnchorRadius(), DefaultAnchorRadius)
	}
	if _, ok := s.renderer.(nopRenderer); !ok {
		t.Errorf("renderer = %T, want nopRenderer", s.renderer)
	}
}

// TestWithRenderer tests dependency injection of a custom renderer.
func TestWithRenderer(t *testing.T) {
	mock := &countingRenderer{}
	s := NewSession(100, 100, WithRenderer(mock))

	s.PointerDown(Pt(0, 0))
	s.PointerUp(Pt(10, 0))
	if mock.clears == 0 || mock.lines != 1 {
		t.Errorf("clears=%d lines=%d, want >0 and 1", mock.clears, mock.lines)
	}

	// nil keeps the default
	s = NewSession(100, 100, WithRenderer(nil))
	if _, ok := s.renderer.(nopRenderer); !ok {
		t.Errorf("renderer = %T, want nopRenderer", s.renderer)
	}
}

func TestWithAnchorRadius(t *testing.T) {
	tests := []struct {
		radius float64
		want   float64
	}{
		{12, 12},
		{0, DefaultAnchorRadius},
		{-3, DefaultAnchorRadius},
	}
	for _, tt := range tests {
		s := NewSession(10, 10, WithAnchorRadius(tt.radius))
		if s.AnchorRadius() != tt.want {
			t.Errorf("WithAnchorRadius(%v): got %v, want %v", tt.radius, s.AnchorRadius(), tt.want)
		}
	}
}

func TestWithSeedIsDeterministic(t *testing.T) {
	a := NewSession(10, 10, WithSeed(42))
	b := NewSession(10, 10, WithSeed(42))
	for _, s := range []*Session{a, b} {
		s.PointerDown(Pt(1, 1))
		s.PointerUp(Pt(2, 2))
	}
	va, vb := a.Vertices(), b.Vertices()
	for i := range va {
		if va[i].Color != vb[i].Color {
			t.Errorf("vertex %d: colors differ with the same seed", i)
		}
	}
}

func TestWithColorSourceOverridesSeed(t *testing.T) {
	s := NewSession(10, 10, WithSeed(7), WithColorSource(FixedColor(gg.Blue)))
	s.PointerUp(Pt(1, 1))
	if got := s.Vertices()[0].Color; got != gg.Blue {
		t.Errorf("color = %v, want blue", got)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewSession(10, 10, WithLogger(l))
	s.SetMode(ModeReshape)
	if !strings.Contains(buf.String(), "mode changed") {
		t.Errorf("session logger not used, got %q", buf.String())
	}
}
