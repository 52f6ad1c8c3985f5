package domain

// Color is the display color of a word category.
type Color string

const (
	ColorRed    Color = "red"
	ColorOrange Color = "orange"
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
	ColorPink   Color = "pink"
	ColorGray   Color = "gray"
)

// ValidColors is the fixed category palette.
var ValidColors = map[Color]bool{
	ColorRed: true, ColorOrange: true, ColorYellow: true, ColorGreen: true,
	ColorBlue: true, ColorPurple: true, ColorPink: true, ColorGray: true,
}

func (c Color) Valid() bool {
	return ValidColors[c]
}
