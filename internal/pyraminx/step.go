package pyraminx

import (
	"fmt"
	"strings"
)

// StepKind tells how a Step's move is performed.
type StepKind uint8

const (
	StepTurn StepKind = iota
	StepTip
	StepFlip
)

// Step is one recorded action on the puzzle.
type Step struct {
	Kind StepKind
	Move Move
}

// Do performs s on p.
func (p *Puzzle) Do(s Step) {
	switch s.Kind {
	case StepTurn:
		p.Apply(s.Move)
	case StepTip:
		p.ApplyTip(s.Move)
	case StepFlip:
		p.ApplyFlip(s.Move)
	}
}

// Inverse returns the step that undoes s.
func (s Step) Inverse() Step {
	return Step{Kind: s.Kind, Move: s.Move.Inverse()}
}

// stepBrackets holds the opening and closing marks of each kind in the
// step notation. Turns are unmarked.
var stepBrackets = [...][2]string{
	StepTurn: {"", ""},
	StepTip:  {"(", ")"},
	StepFlip: {"[", "]"},
}

// FormatSteps renders steps in step notation: turns as plain move-string
// tokens, tip-only turns in parentheses and flips in brackets, e.g.
// "[w+]x-y+(z-)". Consecutive steps of one kind share a group.
func FormatSteps(steps []Step) string {
	var sb strings.Builder
	for i, s := range steps {
		if i == 0 || steps[i-1].Kind != s.Kind {
			sb.WriteString(stepBrackets[s.Kind][0])
		}
		sb.WriteString(s.Move.String())
		if i == len(steps)-1 || steps[i+1].Kind != s.Kind {
			sb.WriteString(stepBrackets[s.Kind][1])
		}
	}
	return sb.String()
}

// ParseSteps parses step notation as produced by FormatSteps.
// Groups may not nest.
func ParseSteps(s string) ([]Step, error) {
	var steps []Step
	kind := StepTurn
	var group strings.Builder

	flush := func() error {
		moves, err := ParseMoves(group.String())
		if err != nil {
			return err
		}
		for _, m := range moves {
			steps = append(steps, Step{Kind: kind, Move: m})
		}
		group.Reset()
		return nil
	}

	for _, r := range s {
		switch r {
		case '(', '[':
			if kind != StepTurn {
				return nil, fmt.Errorf("%w: nested group in %q", ErrInvalidMove, s)
			}
			if err := flush(); err != nil {
				return nil, err
			}
			kind = StepTip
			if r == '[' {
				kind = StepFlip
			}
		case ')', ']':
			if (r == ')') != (kind == StepTip) || kind == StepTurn {
				return nil, fmt.Errorf("%w: unbalanced %q in %q", ErrInvalidMove, r, s)
			}
			if err := flush(); err != nil {
				return nil, err
			}
			kind = StepTurn
		default:
			group.WriteRune(r)
		}
	}
	if kind != StepTurn {
		return nil, fmt.Errorf("%w: unclosed group in %q", ErrInvalidMove, s)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return steps, nil
}
