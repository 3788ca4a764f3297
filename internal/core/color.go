package core

// Color represents a foreground or background color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorNavy
)

// ANSI returns the 256-color palette index for the color as a string,
// or "" for ColorDefault.
func (c Color) ANSI() string {
	switch c {
	case ColorBlack:
		return "0"
	case ColorRed:
		return "1"
	case ColorGreen:
		return "2"
	case ColorYellow:
		return "3"
	case ColorBlue:
		return "4"
	case ColorMagenta:
		return "5"
	case ColorCyan:
		return "6"
	case ColorWhite:
		return "7"
	case ColorBrightRed:
		return "9"
	case ColorBrightGreen:
		return "10"
	case ColorBrightYellow:
		return "11"
	case ColorBrightBlue:
		return "12"
	case ColorBrightMagenta:
		return "13"
	case ColorBrightCyan:
		return "14"
	case ColorBrightWhite:
		return "15"
	case ColorOrange:
		return "208"
	case ColorGray:
		return "245"
	case ColorNavy:
		return "17"
	default:
		return ""
	}
}
