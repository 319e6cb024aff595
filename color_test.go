package clippath

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
)

func TestHex(t *testing.T) {
	tests := []struct {
		c    gg.RGBA
		want string
	}{
		{gg.Black, "#000000"},
		{gg.White, "#ffffff"},
		{gg.Red, "#ff0000"},
		{gg.RGB(0.5, 0.25, 2), "#8040ff"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Hex(tt.c))
	}
}

func TestContrast(t *testing.T) {
	assert.Equal(t, gg.White, Contrast(gg.Black))
	assert.Equal(t, gg.Cyan, Contrast(gg.Red))
	assert.Equal(t, 0.5, Contrast(gg.RGBA2(0, 0, 0, 0.5)).A)
}

func TestRandomColorsAreOpaqueAndSeeded(t *testing.T) {
	a, b := RandomColors(42), RandomColors(42)
	for range 10 {
		ca, cb := a(), b()
		assert.Equal(t, ca, cb)
		assert.Equal(t, 1.0, ca.A)
	}
}

func TestFixedColor(t *testing.T) {
	src := FixedColor(gg.Magenta)
	assert.Equal(t, gg.Magenta, src())
	assert.Equal(t, gg.Magenta, src())
}
