// Package pyraminx models the tetrahedral twisty puzzle as a set of oriented
// pieces under rotation. It contains no storage or UI dependencies so the
// model stays pure and testable.
package pyraminx

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidColor is returned when a color label cannot be parsed.
var ErrInvalidColor = errors.New("pyraminx: invalid color")

// Color is the sticker color shown on one face of a piece.
type Color uint8

const (
	Undefined Color = iota // No sticker visible on this face
	Yellow
	Blue
	Green
	Orange
)

// Colors lists the four real sticker colors.
// The order is significant: missing-color detection reports in this order.
var Colors = [4]Color{Yellow, Blue, Green, Orange}

// String returns the one-letter label used in serialized state keys.
func (c Color) String() string {
	switch c {
	case Yellow:
		return "Y"
	case Blue:
		return "B"
	case Green:
		return "G"
	case Orange:
		return "O"
	default:
		return "."
	}
}

// Name returns the human-readable color name.
func (c Color) Name() string {
	switch c {
	case Yellow:
		return "Yellow"
	case Blue:
		return "Blue"
	case Green:
		return "Green"
	case Orange:
		return "Orange"
	default:
		return "Undefined"
	}
}

// ParseColor parses a color from its letter or full name (case-insensitive).
// "." and "undefined" map to Undefined.
func ParseColor(s string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yellow":
		return Yellow, nil
	case "b", "blue":
		return Blue, nil
	case "g", "green":
		return Green, nil
	case "o", "orange":
		return Orange, nil
	case ".", "undefined":
		return Undefined, nil
	}
	return Undefined, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// AxisColor returns the color that sits on axis a's face in the solved state.
func AxisColor(a Axis) Color {
	switch a {
	case AxisW:
		return Yellow
	case AxisX:
		return Blue
	case AxisY:
		return Orange
	case AxisZ:
		return Green
	default:
		return Undefined
	}
}

// ColorAxis is the inverse of AxisColor.
// Returns false for Undefined.
func ColorAxis(c Color) (Axis, bool) {
	switch c {
	case Yellow:
		return AxisW, true
	case Blue:
		return AxisX, true
	case Orange:
		return AxisY, true
	case Green:
		return AxisZ, true
	default:
		return 0, false
	}
}
