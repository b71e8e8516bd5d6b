// Package scan turns four photographed faces into a puzzle state.
//
// The puzzle is shown to the camera one face at a time. Between shots it
// is flipped by FlipSequence, and every shot is read as the face that
// carries the Y slot, apex first.
package scan

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/pyraminx/internal/pyraminx"
)

// ErrInvalidScan is returned for scans that cannot be read.
var ErrInvalidScan = errors.New("scan: invalid scan")

// Count is the number of faces making up a full scan.
const Count = 4

// FlipSequence lists the flip applied before each shot. The first shot is
// taken as the puzzle is presented.
var FlipSequence = [Count]string{"", "w+", "w+", "z-"}

// Facelets holds the nine colors of one face, row by row from the apex.
type Facelets [9]pyraminx.Color

// String renders the facelets as a nine-letter word.
func (f Facelets) String() string {
	var b strings.Builder
	for _, c := range f {
		b.WriteString(c.String())
	}
	return b.String()
}

// ParseFacelets reads nine colors, either separated by spaces or commas
// ("Y, B, ..." or "yellow blue ...") or written as one nine-letter word.
func ParseFacelets(s string) (Facelets, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 1 && len(fields[0]) == len(Facelets{}) {
		fields = strings.Split(fields[0], "")
	}

	var f Facelets
	if len(fields) != len(f) {
		return Facelets{}, fmt.Errorf("%w: want %d colors, got %d in %q", ErrInvalidScan, len(f), len(fields), s)
	}
	for i, field := range fields {
		c, err := pyraminx.ParseColor(field)
		if err != nil {
			return Facelets{}, fmt.Errorf("%w: facelet %d: %w", ErrInvalidScan, i, err)
		}
		f[i] = c
	}
	return f, nil
}

// Assemble builds the puzzle state described by four shots. The result is
// in the orientation of the last shot.
//
// The colors are trusted as given; a physically impossible scan shows up
// later as an invalid state or as a state without a solution.
func Assemble(scans [Count]Facelets) pyraminx.Puzzle {
	p := pyraminx.New()
	stickers := pyraminx.FaceStickers(pyraminx.AxisY)

	for i, f := range scans {
		_ = p.ExecuteFlips(FlipSequence[i]) // constant, always valid
		for j, s := range stickers {
			pc, _ := p.At(s.Coord)
			pc.SetFace(s.Axis, f[j])
		}
	}
	return p
}

// Capture produces the four shots a camera would take of p, leaving p
// untouched. Assemble(Capture(p)) equals p after FlipSequence.
func Capture(p pyraminx.Puzzle) [Count]Facelets {
	var scans [Count]Facelets
	for i := range scans {
		_ = p.ExecuteFlips(FlipSequence[i])
		scans[i] = p.FaceColors(pyraminx.AxisY)
	}
	return scans
}

// File is the on-disk scan format:
//
//	scans:
//	  - OOOOOOOOO
//	  - GGGGGGGGG
//	  - BBBBBBBBB
//	  - YYYYYYYYY
type File struct {
	Scans []string `yaml:"scans"`
}

// Parse decodes a scan file.
func Parse(data []byte) ([Count]Facelets, error) {
	var scans [Count]Facelets

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return scans, fmt.Errorf("%w: %w", ErrInvalidScan, err)
	}
	if len(file.Scans) != Count {
		return scans, fmt.Errorf("%w: want %d scans, got %d", ErrInvalidScan, Count, len(file.Scans))
	}

	for i, s := range file.Scans {
		f, err := ParseFacelets(s)
		if err != nil {
			return scans, fmt.Errorf("scan %d: %w", i+1, err)
		}
		scans[i] = f
	}
	return scans, nil
}

// LoadFile reads and decodes a scan file.
func LoadFile(path string) ([Count]Facelets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return [Count]Facelets{}, fmt.Errorf("scan: cannot read %s: %w", path, err)
	}
	return Parse(data)
}

// Marshal encodes scans in the File format.
func Marshal(scans [Count]Facelets) ([]byte, error) {
	var file File
	for _, f := range scans {
		file.Scans = append(file.Scans, f.String())
	}
	return yaml.Marshal(file)
}
