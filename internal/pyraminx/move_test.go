package pyraminx

import (
	"errors"
	"testing"
)

func TestParseMoves(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []Move
		wantErr bool
	}{
		{"empty", "", []Move{}, false},
		{"single", "w+", []Move{WPos}, false},
		{"mixed case", "X-z+", []Move{XNeg, ZPos}, false},
		{"whitespace", "y+ y- ", []Move{YPos, YNeg}, false},
		{"odd length", "w+x", nil, true},
		{"bad axis", "q+", nil, true},
		{"bad direction", "w2", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMoves(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMove) {
					t.Errorf("ParseMoves(%q) error = %v, want ErrInvalidMove", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMoves(%q) failed: %v", tt.in, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseMoves(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("ParseMoves(%q)[%d] = %s, want %s", tt.in, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFormatMoves(t *testing.T) {
	moves := []Move{WPos, XNeg, ZPos}
	if got := FormatMoves(moves); got != "w+x-z+" {
		t.Errorf("FormatMoves() = %q, want %q", got, "w+x-z+")
	}
	if got := FormatMoves(nil); got != "" {
		t.Errorf("FormatMoves(nil) = %q, want empty", got)
	}
}

func TestInvertMoves(t *testing.T) {
	moves := []Move{WPos, XNeg, ZPos}
	inv := InvertMoves(moves)
	if got := FormatMoves(inv); got != "z-x+w-" {
		t.Errorf("InvertMoves() = %q, want %q", got, "z-x+w-")
	}

	p := scrambled(7, 6)
	start := p
	p.ApplyAll(moves)
	p.ApplyAll(inv)
	if p != start {
		t.Error("a sequence followed by its inverse should be the identity")
	}
}

func TestGeneratorsOrder(t *testing.T) {
	if got := FormatMoves(Generators[:]); got != "w+w-x+x-y+y-z+z-" {
		t.Errorf("Generators = %q", got)
	}
}

func TestDirectionOpposite(t *testing.T) {
	if DirPos.Opposite() != DirNeg || DirNeg.Opposite() != DirPos || DirNone.Opposite() != DirNone {
		t.Error("Opposite() should swap Pos and Neg and keep None")
	}
}
