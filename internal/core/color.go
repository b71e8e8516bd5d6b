package core

import "github.com/vovakirdan/pyraminx/internal/pyraminx"

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for the net and its frame.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorOrange
	ColorGray
)

// StickerColor returns the screen color used for a puzzle color.
// Empty stickers are drawn gray.
func StickerColor(c pyraminx.Color) Color {
	switch c {
	case pyraminx.Yellow:
		return ColorYellow
	case pyraminx.Blue:
		return ColorBlue
	case pyraminx.Green:
		return ColorGreen
	case pyraminx.Orange:
		return ColorOrange
	default:
		return ColorGray
	}
}
