package clippath

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gogpu/gg"
)

// ColorSource returns the display color for a newly committed vertex.
type ColorSource func() gg.RGBA

// RandomColors returns a ColorSource producing saturated colors of random hue.
// The same seed yields the same sequence.
func RandomColors(seed uint64) ColorSource {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	return func() gg.RGBA {
		return gg.HSL(rng.Float64()*360, 0.75, 0.5)
	}
}

// FixedColor returns a ColorSource that always yields c.
func FixedColor(c gg.RGBA) ColorSource {
	return func() gg.RGBA { return c }
}

// Contrast returns the inverse of c, used for text drawn over c.
// Alpha is kept.
func Contrast(c gg.RGBA) gg.RGBA {
	return gg.RGBA{R: 1 - c.R, G: 1 - c.G, B: 1 - c.B, A: c.A}
}

// Hex formats c as #rrggbb, ignoring alpha.
func Hex(c gg.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

func to8(v float64) uint8 {
	return uint8(math.Round(math.Min(1, math.Max(0, v)) * 255))
}
