package pyraminx

import (
	"errors"
	"fmt"
)

// ErrInvalidState is returned when a puzzle cannot be brought into the
// canonical orientation, which happens only for corrupted scans.
var ErrInvalidState = errors.New("pyraminx: invalid state")

// Transform identifies the current orientation of a puzzle by the axes
// whose colors are missing from tip W and tip X.
type Transform struct {
	TipW Axis
	TipX Axis
}

// CanonicalTransform is the transform of a puzzle already in canonical orientation.
var CanonicalTransform = Transform{TipW: AxisW, TipX: AxisX}

// Reorientation holds the flips that bring a puzzle into the canonical
// orientation and the flips that undo them.
type Reorientation struct {
	Forward []Move
	Inverse []Move
}

// reorientations maps every off-diagonal (TipW, TipX) pair to its
// forward and inverse flip sequences.
var reorientations = map[Transform][2]string{
	{AxisW, AxisX}: {"", ""},
	{AxisW, AxisY}: {"w-", "w+"},
	{AxisW, AxisZ}: {"w+", "w-"},

	{AxisX, AxisW}: {"z-w+", "w-z+"},
	{AxisX, AxisY}: {"z+", "z-"},
	{AxisX, AxisZ}: {"w+z+", "z-w-"},

	{AxisY, AxisW}: {"z-", "z+"},
	{AxisY, AxisX}: {"x+", "x-"},
	{AxisY, AxisZ}: {"w+z-", "z+w-"},

	{AxisZ, AxisW}: {"y+", "y-"},
	{AxisZ, AxisX}: {"x-", "x+"},
	{AxisZ, AxisY}: {"x+w-", "w+x-"},
}

// Transform inspects tips W and X and reports which colors they carry.
func (p *Puzzle) Transform() (Transform, error) {
	w := p.tips[AxisW].MissingColors()
	x := p.tips[AxisX].MissingColors()
	if len(w) == 0 || len(x) == 0 {
		return Transform{}, fmt.Errorf("%w: cannot calculate transform", ErrInvalidState)
	}

	tw, _ := ColorAxis(w[0])
	tx, _ := ColorAxis(x[0])
	return Transform{TipW: tw, TipX: tx}, nil
}

// Reorientation looks up the flip sequences for t.
func (t Transform) Reorientation() (Reorientation, error) {
	seq, ok := reorientations[t]
	if !ok {
		return Reorientation{}, fmt.Errorf("%w: tips W and X both miss %s", ErrInvalidState, AxisColor(t.TipW).Name())
	}
	// The table is constant and well-formed.
	fwd, _ := ParseMoves(seq[0])
	inv, _ := ParseMoves(seq[1])
	return Reorientation{Forward: fwd, Inverse: inv}, nil
}

// Canonical returns a copy of p flipped into the canonical orientation,
// together with the reorientation that was applied.
func (p *Puzzle) Canonical() (Puzzle, Reorientation, error) {
	t, err := p.Transform()
	if err != nil {
		return Puzzle{}, Reorientation{}, err
	}
	r, err := t.Reorientation()
	if err != nil {
		return Puzzle{}, Reorientation{}, err
	}

	c := p.Clone()
	for _, m := range r.Forward {
		c.ApplyFlip(m)
	}
	return c, r, nil
}
