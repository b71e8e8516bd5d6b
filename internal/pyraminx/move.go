package pyraminx

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMove is returned when a move-string cannot be parsed.
var ErrInvalidMove = errors.New("pyraminx: invalid move")

// Axis identifies one of the four corners of the puzzle.
type Axis uint8

const (
	AxisW Axis = iota
	AxisX
	AxisY
	AxisZ
)

// AxisCount is the number of axes (and color slots per piece).
const AxisCount = 4

// Axes lists all axes in W, X, Y, Z order.
var Axes = [AxisCount]Axis{AxisW, AxisX, AxisY, AxisZ}

// String returns the lower-case axis letter used in move-strings.
func (a Axis) String() string {
	switch a {
	case AxisW:
		return "w"
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// ParseAxis parses an axis letter (case-insensitive).
func ParseAxis(b byte) (Axis, bool) {
	switch b {
	case 'w', 'W':
		return AxisW, true
	case 'x', 'X':
		return AxisX, true
	case 'y', 'Y':
		return AxisY, true
	case 'z', 'Z':
		return AxisZ, true
	}
	return 0, false
}

// Direction is the sense of a rotation.
type Direction int8

const (
	DirNone Direction = iota
	DirPos
	DirNeg
)

// Opposite returns the inverse direction. DirNone stays DirNone.
func (d Direction) Opposite() Direction {
	switch d {
	case DirPos:
		return DirNeg
	case DirNeg:
		return DirPos
	default:
		return DirNone
	}
}

// String returns "+" or "-" (empty for DirNone).
func (d Direction) String() string {
	switch d {
	case DirPos:
		return "+"
	case DirNeg:
		return "-"
	default:
		return ""
	}
}

// Move is a single rotation of one axis.
type Move struct {
	Axis Axis
	Dir  Direction
}

// Predefined moves.
var (
	WPos = Move{Axis: AxisW, Dir: DirPos}
	WNeg = Move{Axis: AxisW, Dir: DirNeg}
	XPos = Move{Axis: AxisX, Dir: DirPos}
	XNeg = Move{Axis: AxisX, Dir: DirNeg}
	YPos = Move{Axis: AxisY, Dir: DirPos}
	YNeg = Move{Axis: AxisY, Dir: DirNeg}
	ZPos = Move{Axis: AxisZ, Dir: DirPos}
	ZNeg = Move{Axis: AxisZ, Dir: DirNeg}
)

// Generators are the eight move generators in search order.
var Generators = [8]Move{WPos, WNeg, XPos, XNeg, YPos, YNeg, ZPos, ZNeg}

// String returns the two-character token, e.g. "w+".
func (m Move) String() string {
	return m.Axis.String() + m.Dir.String()
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{Axis: m.Axis, Dir: m.Dir.Opposite()}
}

// ParseMove parses a single two-character token such as "w+" or "Z-".
func ParseMove(s string) (Move, error) {
	if len(s) != 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	axis, ok := ParseAxis(s[0])
	if !ok {
		return Move{}, fmt.Errorf("%w: unknown axis in %q", ErrInvalidMove, s)
	}
	switch s[1] {
	case '+':
		return Move{Axis: axis, Dir: DirPos}, nil
	case '-':
		return Move{Axis: axis, Dir: DirNeg}, nil
	}
	return Move{}, fmt.Errorf("%w: unknown direction in %q", ErrInvalidMove, s)
}

// ParseMoves parses a concatenated move-string such as "w+x-z+".
// Whitespace between tokens is tolerated. An empty string yields no moves.
func ParseMoves(s string) ([]Move, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: odd length %q", ErrInvalidMove, s)
	}
	moves := make([]Move, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		m, err := ParseMove(s[i : i+2])
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// FormatMoves joins moves into a move-string without separators.
func FormatMoves(moves []Move) string {
	var sb strings.Builder
	sb.Grow(len(moves) * 2)
	for _, m := range moves {
		sb.WriteString(m.String())
	}
	return sb.String()
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
