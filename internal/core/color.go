package core

// Color represents a foreground or background color for a screen cell.
// Platforms map it to ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBlack
	ColorBrightWhite
	ColorOrange
	ColorGray

	// Playfield colors.
	ColorSky      // sky blue behind the street
	ColorStreet   // asphalt gray
	ColorSidewalk // light gray kerb strips
	ColorSand     // beach wheat
	ColorOcean    // dodger blue water
	ColorTrunk    // saddle brown trunks, doors and dogs
	ColorLeaf     // lime green canopy
	ColorGold     // tuk-tuk yellow
	ColorTomato   // backpacker red
	ColorPeru     // hostel walls
)

var colorNames = [...]string{
	ColorDefault:     "default",
	ColorRed:         "red",
	ColorGreen:       "green",
	ColorYellow:      "yellow",
	ColorBlue:        "blue",
	ColorMagenta:     "magenta",
	ColorCyan:        "cyan",
	ColorWhite:       "white",
	ColorBlack:       "black",
	ColorBrightWhite: "bright_white",
	ColorOrange:      "orange",
	ColorGray:        "gray",
	ColorSky:         "sky",
	ColorStreet:      "street",
	ColorSidewalk:    "sidewalk",
	ColorSand:        "sand",
	ColorOcean:       "ocean",
	ColorTrunk:       "trunk",
	ColorLeaf:        "leaf",
	ColorGold:        "gold",
	ColorTomato:      "tomato",
	ColorPeru:        "peru",
}

// String returns the color name used in sprite sheets.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}

// ParseColor resolves a color name. The empty string is ColorDefault.
func ParseColor(name string) (Color, bool) {
	if name == "" {
		return ColorDefault, true
	}
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}
	return ColorDefault, false
}
