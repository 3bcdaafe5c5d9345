package core

// Color represents a foreground color for a screen cell.
// Platforms map each value to a terminal palette entry.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorGreen
	ColorYellow
	ColorGold
	ColorSkyBlue
	ColorLime
	ColorDarkGray
)

// String returns the lowercase color name.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorBlack:
		return "black"
	case ColorWhite:
		return "white"
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorGold:
		return "gold"
	case ColorSkyBlue:
		return "skyblue"
	case ColorLime:
		return "lime"
	case ColorDarkGray:
		return "darkgray"
	default:
		return "unknown"
	}
}
