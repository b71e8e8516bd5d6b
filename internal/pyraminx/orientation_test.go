package pyraminx

import (
	"errors"
	"math/rand"
	"testing"
)

func TestTransformSolvedIsCanonical(t *testing.T) {
	p := Solved()
	tr, err := p.Transform()
	if err != nil {
		t.Fatalf("Transform() failed: %v", err)
	}
	if tr != CanonicalTransform {
		t.Errorf("Transform() = %+v, want %+v", tr, CanonicalTransform)
	}

	c, r, err := p.Canonical()
	if err != nil {
		t.Fatalf("Canonical() failed: %v", err)
	}
	if len(r.Forward) != 0 || len(r.Inverse) != 0 {
		t.Errorf("canonical state should need no flips, got %v / %v", r.Forward, r.Inverse)
	}
	if c != p {
		t.Error("canonicalizing a canonical state should not change it")
	}
}

func TestCanonicalizationIdempotent(t *testing.T) {
	p := scrambled(11, 15)
	p.Flip(AxisX, DirPos)
	p.Flip(AxisZ, DirNeg)

	c, _, err := p.Canonical()
	if err != nil {
		t.Fatalf("Canonical() failed: %v", err)
	}
	c2, r, err := c.Canonical()
	if err != nil {
		t.Fatalf("second Canonical() failed: %v", err)
	}
	if len(r.Forward) != 0 {
		t.Errorf("second canonicalization should be the identity, got %s", FormatMoves(r.Forward))
	}
	if c2 != c {
		t.Error("second canonicalization changed the state")
	}
}

// Every state reachable with turns, tip turns and flips has a well-defined
// transform, and its forward flips always land in the canonical orientation.
func TestTransformClosure(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	seen := make(map[Transform]bool)

	for i := 0; i < 500; i++ {
		p := Solved()
		for j := rng.Intn(12); j > 0; j-- {
			m := Generators[rng.Intn(len(Generators))]
			switch rng.Intn(3) {
			case 0:
				p.Apply(m)
			case 1:
				p.ApplyTip(m)
			default:
				p.ApplyFlip(m)
			}
		}

		for _, a := range Axes {
			if n := len(p.Tip(a).MissingColors()); n != 1 {
				t.Fatalf("tip %s has %d missing colors", a, n)
			}
		}

		tr, err := p.Transform()
		if err != nil {
			t.Fatalf("Transform() failed: %v", err)
		}
		seen[tr] = true

		c, r, err := p.Canonical()
		if err != nil {
			t.Fatalf("Canonical() failed for %+v: %v", tr, err)
		}
		ct, _ := c.Transform()
		if ct != CanonicalTransform {
			t.Fatalf("forward flips %s for %+v landed in %+v", FormatMoves(r.Forward), tr, ct)
		}

		back := c
		for _, m := range r.Inverse {
			back.ApplyFlip(m)
		}
		if back != p {
			t.Fatalf("inverse flips %s did not restore %+v", FormatMoves(r.Inverse), tr)
		}
	}

	if len(seen) != 12 {
		t.Errorf("expected all 12 orientations to be reachable, saw %d", len(seen))
	}
}

func TestTransformInvalidState(t *testing.T) {
	t.Run("tip shows all colors", func(t *testing.T) {
		p := Solved()
		*p.Tip(AxisW) = NewPiece(Yellow, Blue, Orange, Green)
		if _, err := p.Transform(); !errors.Is(err, ErrInvalidState) {
			t.Errorf("Transform() error = %v, want ErrInvalidState", err)
		}
		if _, _, err := p.Canonical(); !errors.Is(err, ErrInvalidState) {
			t.Errorf("Canonical() error = %v, want ErrInvalidState", err)
		}
	})

	t.Run("tips miss the same color", func(t *testing.T) {
		p := New()
		if _, _, err := p.Canonical(); !errors.Is(err, ErrInvalidState) {
			t.Errorf("Canonical() error = %v, want ErrInvalidState", err)
		}
	})
}
