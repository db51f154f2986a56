package core

// Color is the foreground color of a screen cell.
type Color uint8

// Colors available to games. Block colors use the bright and extended
// variants so that they stay distinct on dark terminals.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
	ColorPink
	ColorPurple
)

// ansiCodes holds the ANSI 256-color code of each color.
var ansiCodes = [...]string{
	ColorDefault:       "",
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorCyan:          "6",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorGray:          "245",
	ColorPink:          "213",
	ColorPurple:        "135",
}

// ANSI returns the ANSI 256-color code for c, or "" for the terminal's
// default color. Unknown colors render as the default.
func (c Color) ANSI() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
