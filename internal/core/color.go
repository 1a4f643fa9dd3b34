package core

import "fmt"

// Color is a foreground colour for a screen cell. The zero value keeps the
// terminal default. Named colours map to ANSI 256 codes; RGB builds a
// 24-bit colour that the renderer degrades to the terminal's profile.
type Color uint32

// Named colours for HUD elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

var ansiCodes = map[Color]string{
	ColorRed:         "1",
	ColorGreen:       "2",
	ColorYellow:      "3",
	ColorBlue:        "4",
	ColorMagenta:     "5",
	ColorCyan:        "6",
	ColorWhite:       "7",
	ColorBrightWhite: "15",
	ColorOrange:      "208",
	ColorGray:        "245",
	ColorDarkGray:    "238",
}

const rgbFlag Color = 1 << 24

// RGB returns a 24-bit colour.
func RGB(r, g, b uint8) Color {
	return rgbFlag | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// IsRGB reports whether c was built with RGB.
func (c Color) IsRGB() bool {
	return c&rgbFlag != 0
}

// Code returns the colour in the form terminal styling libraries accept:
// "" for the default, an ANSI code such as "208", or "#rrggbb".
func (c Color) Code() string {
	if c.IsRGB() {
		return fmt.Sprintf("#%06x", uint32(c&^rgbFlag))
	}
	return ansiCodes[c]
}
