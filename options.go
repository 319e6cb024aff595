package clippath

import "log/slog"

// DefaultAnchorRadius is the radius of vertex markers, in pixels.
const DefaultAnchorRadius = 8

// SessionOption configures a Session during creation.
//
// Example:
//
//	rec := clippath.NewRecorder(400, 300)
//	s := clippath.NewSession(400, 300,
//	    clippath.WithRenderer(rec),
//	    clippath.WithAnchorRadius(10),
//	)
type SessionOption func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	renderer     Renderer
	anchorRadius float64
	colors       ColorSource
	seed         uint64
	logger       *slog.Logger
}

// defaultOptions returns the default session options.
func defaultOptions() sessionOptions {
	return sessionOptions{
		renderer:     nopRenderer{},
		anchorRadius: DefaultAnchorRadius,
		seed:         1,
	}
}

// WithRenderer sets the Renderer that receives drawing requests.
// By default drawing requests are discarded.
func WithRenderer(r Renderer) SessionOption {
	return func(o *sessionOptions) {
		if r != nil {
			o.renderer = r
		}
	}
}

// WithAnchorRadius sets the anchor marker radius used for drawing and
// hit-testing. Non-positive values keep the default.
func WithAnchorRadius(radius float64) SessionOption {
	return func(o *sessionOptions) {
		if radius > 0 {
			o.anchorRadius = radius
		}
	}
}

// WithColorSource sets how new vertices get their display color.
func WithColorSource(src ColorSource) SessionOption {
	return func(o *sessionOptions) {
		o.colors = src
	}
}

// WithSeed seeds the default random color source.
// It has no effect when WithColorSource is also given.
func WithSeed(seed uint64) SessionOption {
	return func(o *sessionOptions) {
		o.seed = seed
	}
}

// WithLogger sets a session-specific logger instead of the package logger.
func WithLogger(l *slog.Logger) SessionOption {
	return func(o *sessionOptions) {
		o.logger = l
	}
}
