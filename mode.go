package clippath

import (
	"fmt"
	"strings"
)

// Mode is the current interaction mode of a Session.
type Mode uint8

const (
	// ModeDraw appends vertices on pointer release.
	ModeDraw Mode = iota

	// ModeReshape drags existing vertices.
	ModeReshape

	// ModeRemove deletes the vertex under the pointer.
	ModeRemove
)

var modeNames = [...]string{
	ModeDraw:    "draw",
	ModeReshape: "reshape",
	ModeRemove:  "remove",
}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode parses a mode name case-insensitively.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(m), nil
		}
	}
	return ModeDraw, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
