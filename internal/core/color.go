package core

// Color represents a foreground color for a screen cell.
// Shells map it to whatever their backend understands.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorBrightGreen
	ColorBrightWhite
	ColorDarkGray
)
