package pyraminx

import "testing"

func TestPieceRotateCycles(t *testing.T) {
	base := NewPiece(Yellow, Blue, Orange, Green)

	tests := []struct {
		name     string
		axis     Axis
		dir      Direction
		expected Piece
	}{
		{"W positive", AxisW, DirPos, NewPiece(Yellow, Orange, Green, Blue)},
		{"W negative", AxisW, DirNeg, NewPiece(Yellow, Green, Blue, Orange)},
		{"X positive", AxisX, DirPos, NewPiece(Green, Blue, Yellow, Orange)},
		{"X negative", AxisX, DirNeg, NewPiece(Orange, Blue, Green, Yellow)},
		{"Y positive", AxisY, DirPos, NewPiece(Blue, Green, Orange, Yellow)},
		{"Y negative", AxisY, DirNeg, NewPiece(Green, Yellow, Orange, Blue)},
		{"Z positive", AxisZ, DirPos, NewPiece(Orange, Yellow, Blue, Green)},
		{"Z negative", AxisZ, DirNeg, NewPiece(Blue, Orange, Yellow, Green)},
		{"none", AxisZ, DirNone, base},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			p.Rotate(tt.axis, tt.dir)
			if p != tt.expected {
				t.Errorf("Rotate(%s, %d) = %s, want %s", tt.axis, tt.dir, p, tt.expected)
			}
			if p.Face(tt.axis) != base.Face(tt.axis) {
				t.Errorf("Rotate(%s) must not touch its own slot", tt.axis)
			}
		})
	}
}

func TestPieceRotateInverse(t *testing.T) {
	base := NewPiece(Undefined, Blue, Orange, Green)
	for _, a := range Axes {
		p := base
		p.Rotate(a, DirPos)
		p.Rotate(a, DirNeg)
		if p != base {
			t.Errorf("axis %s: positive then negative = %s, want %s", a, p, base)
		}

		p.Rotate(a, DirPos)
		p.Rotate(a, DirPos)
		p.Rotate(a, DirPos)
		if p != base {
			t.Errorf("axis %s: three positive rotations = %s, want %s", a, p, base)
		}
	}
}

func TestPieceMissingColors(t *testing.T) {
	tests := []struct {
		name    string
		piece   Piece
		missing []Color
	}{
		{"tip W", NewPiece(Undefined, Blue, Orange, Green), []Color{Yellow}},
		{"tip X", NewPiece(Yellow, Undefined, Orange, Green), []Color{Blue}},
		{"edge", NewPiece(Undefined, Undefined, Orange, Green), []Color{Yellow, Blue}},
		{"full", NewPiece(Yellow, Blue, Orange, Green), nil},
		{"empty", Piece{}, []Color{Yellow, Blue, Green, Orange}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.piece.MissingColors()
			if len(got) != len(tt.missing) {
				t.Fatalf("MissingColors() = %v, want %v", got, tt.missing)
			}
			for i := range got {
				if got[i] != tt.missing[i] {
					t.Errorf("MissingColors()[%d] = %s, want %s", i, got[i], tt.missing[i])
				}
			}
		})
	}
}

func TestPieceString(t *testing.T) {
	p := NewPiece(Undefined, Blue, Orange, Green)
	if p.String() != "[.BOG]" {
		t.Errorf("String() = %q, want %q", p.String(), "[.BOG]")
	}
	if len(p.Colors()) != 3 {
		t.Errorf("Colors() = %v, want 3 visible colors", p.Colors())
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"Y", Yellow, false},
		{"blue", Blue, false},
		{" Green ", Green, false},
		{"o", Orange, false},
		{".", Undefined, false},
		{"red", Undefined, true},
		{"", Undefined, true},
	}

	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestAxisColorRoundTrip(t *testing.T) {
	for _, a := range Axes {
		got, ok := ColorAxis(AxisColor(a))
		if !ok || got != a {
			t.Errorf("ColorAxis(AxisColor(%s)) = %s, %v", a, got, ok)
		}
	}
	if _, ok := ColorAxis(Undefined); ok {
		t.Error("ColorAxis(Undefined) should report false")
	}
}
