package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/wordpick/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorOrange = lipgloss.Color("#fe8019")
	ColorPink   = lipgloss.Color("#f5a7b8")
	ColorGray   = lipgloss.Color("#a89984")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorBg     = lipgloss.Color("#282828")
	ColorHeader = ColorOrange
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

var categoryColors = map[domain.Color]lipgloss.Color{
	domain.ColorRed:    ColorRed,
	domain.ColorOrange: ColorOrange,
	domain.ColorYellow: ColorYellow,
	domain.ColorGreen:  ColorGreen,
	domain.ColorBlue:   ColorBlue,
	domain.ColorPurple: ColorPurple,
	domain.ColorPink:   ColorPink,
	domain.ColorGray:   ColorGray,
}

// CategoryColor maps a palette color to its terminal color.
func CategoryColor(c domain.Color) lipgloss.Color {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return ColorDim
}

// CategoryStyle returns the foreground style for a category color.
func CategoryStyle(c domain.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CategoryColor(c))
}

// CategoryChip renders a category name as a filled chip, e.g. " ANIMALS ".
func CategoryChip(id string, c domain.Color) string {
	return lipgloss.NewStyle().
		Foreground(ColorBg).
		Background(CategoryColor(c)).
		Bold(true).
		Padding(0, 1).
		Render(strings.ToUpper(id))
}

// CategoryDot renders "● id" in the category color.
func CategoryDot(id string, c domain.Color) string {
	return CategoryStyle(c).Render("● " + id)
}

// AllPlayBadge marks a word every team draws at once.
func AllPlayBadge() string {
	return StyleYellow.Bold(true).Render("★ ALL PLAY")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
