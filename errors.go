package clippath

import "errors"

var (
	// ErrInvalidDimensions is returned when a canvas size is not strictly positive.
	ErrInvalidDimensions = errors.New("clippath: canvas dimensions must be positive")

	// ErrUnknownInputKind marks an event whose input kind is neither pointer nor touch.
	// It is a caller bug and is raised as a panic by Normalize.
	ErrUnknownInputKind = errors.New("clippath: unknown input kind")

	// ErrNoTouchPoint marks a touch event that carries no touch point.
	ErrNoTouchPoint = errors.New("clippath: touch event without touch point")

	// ErrUnknownMode is returned by ParseMode for unrecognized mode names.
	ErrUnknownMode = errors.New("clippath: unknown edit mode")
)
