package clippath

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touchAt(pageX, pageY float64) Touch {
	return Touch{Page: Pt(pageX, pageY), TargetOffset: Pt(10, 20)}
}

func TestNormalizePointerIsNotClamped(t *testing.T) {
	got := Normalize(PointerEvent(-5, 500), 200, 100)
	assert.Equal(t, Pt(-5, 500), got)
}

func TestNormalizeTouch(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want Point
	}{
		{
			name: "inside",
			ev:   Event{Kind: InputTouch, Touches: []Touch{touchAt(60, 70)}},
			want: Pt(50, 50),
		},
		{
			name: "clamped low",
			ev:   Event{Kind: InputTouch, Touches: []Touch{touchAt(0, 0)}},
			want: Pt(0, 0),
		},
		{
			name: "clamped high",
			ev:   Event{Kind: InputTouch, Touches: []Touch{touchAt(1000, 1000)}},
			want: Pt(200, 100),
		},
		{
			name: "end uses changed touches",
			ev: Event{
				Kind:           InputTouch,
				End:            true,
				ChangedTouches: []Touch{touchAt(110, 120)},
			},
			want: Pt(100, 100),
		},
		{
			name: "first touch wins",
			ev:   Event{Kind: InputTouch, Touches: []Touch{touchAt(20, 30), touchAt(90, 90)}},
			want: Pt(10, 10),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.ev, 200, 100))
		})
	}
}

func TestNormalizeUnknownKindPanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "Normalize should panic on unknown input kind")
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrUnknownInputKind))
	}()
	Normalize(Event{Kind: 0}, 100, 100)
}

func TestNormalizeTouchWithoutPointsPanics(t *testing.T) {
	assert.PanicsWithError(t, "clippath: touch event without touch point (end=true)", func() {
		Normalize(Event{Kind: InputTouch, End: true, Touches: []Touch{touchAt(1, 1)}}, 100, 100)
	})
}

func TestInputKindString(t *testing.T) {
	assert.Equal(t, "pointer", InputPointer.String())
	assert.Equal(t, "touch", InputTouch.String())
	assert.Equal(t, "InputKind(9)", InputKind(9).String())
}
