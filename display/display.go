// Package display prints clip-path expressions to a terminal with every
// point shown in its vertex color.
package display

import (
	"io"
	"strings"

	"github.com/gogpu/clippath"
	"github.com/muesli/termenv"
)

// Format renders tokens as a clip-path declaration. Each token is drawn on
// its vertex color with contrasting text. termenv.Ascii yields exactly
// clippath.Expression(tokens).
func Format(tokens []clippath.Token, profile termenv.Profile) string {
	if len(tokens) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("clip-path: polygon(")
	for i, t := range tokens {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(profile.String(t.Text).
			Background(profile.Color(clippath.Hex(t.Color))).
			Foreground(profile.Color(clippath.Hex(clippath.Contrast(t.Color)))).
			String())
	}
	b.WriteString(");")
	return b.String()
}

// Write prints the formatted expression followed by a newline. Nothing is
// written for an empty token list.
func Write(w io.Writer, tokens []clippath.Token, profile termenv.Profile) error {
	s := Format(tokens, profile)
	if s == "" {
		return nil
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}
