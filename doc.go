// Package clippath is the editing core of a polygon clip-path maker.
//
// # Overview
//
// A user places polygon vertices on a canvas by clicking or tapping, then
// drags or deletes them, and finally copies a CSS clip-path expression in
// which every vertex is a percentage of the canvas size:
//
//	clip-path: polygon(0% 0%, 100% 0%, 100% 100%);
//
// The package holds no UI. A [Session] receives pointer commands, mutates
// its vertex store and emits drawing requests to a [Renderer]; the canvas
// sub-package rasterizes them with gg, the live sub-package streams them to
// a browser.
//
// # Quick Start
//
//	s := clippath.NewSession(200, 100)
//
//	// The first press seeds the polygon, each release commits a vertex.
//	s.PointerDown(clippath.Pt(0, 0))
//	s.PointerUp(clippath.Pt(200, 0))
//	s.PointerDown(clippath.Pt(200, 100))
//	s.PointerUp(clippath.Pt(200, 100))
//
//	fmt.Println(s.ClipPath())
//	// clip-path: polygon(0% 0%, 100% 0%, 100% 100%);
//
// # Modes
//
// [ModeDraw] appends a vertex on every release. [ModeReshape] drags the
// vertex whose anchor is under the press. [ModeRemove] deletes it. Entering
// reshape or remove closes the ring by repeating the first vertex at the
// end; entering draw again drops that duplicate.
//
// # Coordinate System
//
// Canvas pixels, origin at top-left, X right, Y down. Touch input is
// clamped to the canvas, pointer input is not. See [Normalize].
package clippath
