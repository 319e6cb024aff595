package canvas

import "github.com/gogpu/gg"

// Option configures a Canvas during creation.
type Option func(*options)

type options struct {
	background  gg.RGBA
	stroke      gg.RGBA
	lineWidth   float64
	labelSize   float64
	labelOffset float64
}

func defaultOptions() options {
	return options{
		background:  gg.White,
		stroke:      gg.Black,
		lineWidth:   2,
		labelSize:   12,
		labelOffset: 10,
	}
}

// WithBackground sets the color the canvas is cleared to.
func WithBackground(c gg.RGBA) Option {
	return func(o *options) { o.background = c }
}

// WithStrokeColor sets the edge color.
func WithStrokeColor(c gg.RGBA) Option {
	return func(o *options) { o.stroke = c }
}

// WithLineWidth sets the width of edges and anchor outlines.
// Non-positive values keep the default.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		if w > 0 {
			o.lineWidth = w
		}
	}
}

// WithLabelSize sets the label font size in points.
// Non-positive values keep the default.
func WithLabelSize(size float64) Option {
	return func(o *options) {
		if size > 0 {
			o.labelSize = size
		}
	}
}
