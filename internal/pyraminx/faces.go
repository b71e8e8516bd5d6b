package pyraminx

// Sticker addresses one visible facelet: the piece at Coord and the color
// slot Axis that faces outward.
type Sticker struct {
	Coord Coord
	Axis  Axis
}

// faceLayouts lists, for the face showing each axis slot, the pieces of
// the triangle row by row from its apex (1, 3 and 5 stickers).
var faceLayouts = [AxisCount][9]Coord{
	AxisW: {
		TipCoord(AxisZ),
		EdgeCoord(AxisX, AxisZ), CenterCoord(AxisZ), EdgeCoord(AxisY, AxisZ),
		TipCoord(AxisX), CenterCoord(AxisX), EdgeCoord(AxisX, AxisY), CenterCoord(AxisY), TipCoord(AxisY),
	},
	AxisX: {
		TipCoord(AxisW),
		EdgeCoord(AxisW, AxisY), CenterCoord(AxisW), EdgeCoord(AxisW, AxisZ),
		TipCoord(AxisY), CenterCoord(AxisY), EdgeCoord(AxisY, AxisZ), CenterCoord(AxisZ), TipCoord(AxisZ),
	},
	AxisY: {
		TipCoord(AxisW),
		EdgeCoord(AxisW, AxisZ), CenterCoord(AxisW), EdgeCoord(AxisW, AxisX),
		TipCoord(AxisZ), CenterCoord(AxisZ), EdgeCoord(AxisX, AxisZ), CenterCoord(AxisX), TipCoord(AxisX),
	},
	AxisZ: {
		TipCoord(AxisW),
		EdgeCoord(AxisW, AxisX), CenterCoord(AxisW), EdgeCoord(AxisW, AxisY),
		TipCoord(AxisX), CenterCoord(AxisX), EdgeCoord(AxisX, AxisY), CenterCoord(AxisY), TipCoord(AxisY),
	},
}

// FaceStickers returns the nine stickers of the face that shows slot a,
// ordered row by row from the apex of the triangle.
func FaceStickers(a Axis) [9]Sticker {
	var out [9]Sticker
	for i, c := range faceLayouts[a] {
		out[i] = Sticker{Coord: c, Axis: a}
	}
	return out
}

// FaceColors returns the colors currently shown on the face of slot a,
// in FaceStickers order.
func (p *Puzzle) FaceColors(a Axis) [9]Color {
	var out [9]Color
	for i, s := range FaceStickers(a) {
		pc, _ := p.At(s.Coord)
		out[i] = pc.Face(a)
	}
	return out
}
