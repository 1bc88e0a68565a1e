package core

// Color is the foreground color of a canvas cell.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
)

// PieceColors cycles through distinct colors for dealt pieces.
var PieceColors = []Color{
	ColorCyan,
	ColorYellow,
	ColorMagenta,
	ColorGreen,
	ColorOrange,
	ColorBlue,
	ColorRed,
}

// PieceColor returns the color for a piece id.
func PieceColor(id int) Color {
	return PieceColors[Wrap(id, len(PieceColors))]
}
