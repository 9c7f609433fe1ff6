// internal/models/card.go
package models

// Color is a card face color. ColorWild marks the two wild card kinds; it
// is never a legal chosen color.
type Color string

const (
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorWild   Color = "wild"
)

// ChromaticColors are the four colors a wild's chooser may pick.
var ChromaticColors = []Color{ColorRed, ColorYellow, ColorGreen, ColorBlue}

// Card face values. Digits are their literal strings "0" through "9".
const (
	ValueSkip         = "Skip"
	ValueReverse      = "Reverse"
	ValueDrawTwo      = "Draw Two"
	ValueWild         = "Wild"
	ValueWildDrawFour = "Wild Draw Four"
)

// Card is a single card identified by a stable ID. Deck cards get
// deterministic IDs at build time so clients can track them across
// snapshots; trivia bonus cards use a separate "bonus-" namespace.
type Card struct {
	ID    string `json:"id"`
	Color Color  `json:"color"`
	Value string `json:"value"`
}

// IsWild reports whether the card is Wild or Wild Draw Four.
func (c Card) IsWild() bool {
	return c.Color == ColorWild
}

// IsAction reports whether the card is a chromatic action card.
func (c Card) IsAction() bool {
	switch c.Value {
	case ValueSkip, ValueReverse, ValueDrawTwo:
		return true
	}
	return false
}

// Valid reports whether the color and value form a card that exists in the
// game: wild values on the wild color, digits and actions on a chromatic
// color.
func (c Card) Valid() bool {
	switch c.Value {
	case ValueWild, ValueWildDrawFour:
		return c.Color == ColorWild
	case ValueSkip, ValueReverse, ValueDrawTwo:
		return chromaticColor(c.Color)
	default:
		if len(c.Value) != 1 || c.Value[0] < '0' || c.Value[0] > '9' {
			return false
		}
		return chromaticColor(c.Color)
	}
}

// ValidChosenColor reports whether color may be chosen for a played wild.
func ValidChosenColor(color Color) bool {
	return chromaticColor(color)
}

func chromaticColor(color Color) bool {
	switch color {
	case ColorRed, ColorYellow, ColorGreen, ColorBlue:
		return true
	}
	return false
}
