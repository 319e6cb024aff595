package clippath

import (
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// Token is one clip-path point, "X% Y%", paired with the color of the
// vertex it came from. The color is for display only.
type Token struct {
	Text  string
	Color gg.RGBA
}

// Tokens formats the vertices of p as percentages of the canvas size.
// A trailing closing duplicate is skipped. An empty polygon yields nil.
func Tokens(p Polygon, width, height float64) []Token {
	p = p.Unique()
	if len(p) == 0 {
		return nil
	}
	tokens := make([]Token, len(p))
	for i, v := range p {
		tokens[i] = Token{
			Text:  percent(v.X, width) + " " + percent(v.Y, height),
			Color: v.Color,
		}
	}
	return tokens
}

// percent returns v as a whole percentage of dim, e.g. "50%".
func percent(v, dim float64) string {
	r := math.Round(v / dim * 100)
	if r == 0 {
		r = 0 // no "-0%"
	}
	return strconv.FormatFloat(r, 'f', 0, 64) + "%"
}

// Expression joins tokens into a CSS declaration:
//
//	clip-path: polygon(0% 0%, 100% 0%, 100% 100%);
//
// No tokens yields "".
func Expression(tokens []Token) string {
	if len(tokens) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("clip-path: polygon(")
	for i, t := range tokens {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(t.Text)
	}
	b.WriteString(");")
	return b.String()
}
