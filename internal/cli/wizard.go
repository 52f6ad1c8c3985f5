package cli

import (
	"github.com/alexanderramin/wordpick/internal/cli/formatter"
	"github.com/alexanderramin/wordpick/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// wordpickHuhTheme returns a huh theme using the Gruvbox palette.
func wordpickHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorBg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// durationForm picks a countdown length. result holds the current value on
// entry and the chosen one on completion.
func durationForm(result *int) *huh.Form {
	options := make([]huh.Option[int], 0, len(domain.DurationOptions))
	for _, d := range domain.DurationOptions {
		options = append(options, huh.NewOption(formatter.Clock(d), d))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Countdown length").
				Description("Changing it stops the timer and refills it.").
				Options(options...).
				Value(result),
		),
	).WithTheme(wordpickHuhTheme()).WithShowHelp(false)
}

// confirmForm asks a yes/no question inside the TUI.
func confirmForm(title string, result *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Reset").
				Negative("Cancel").
				Value(result),
		),
	).WithTheme(wordpickHuhTheme()).WithShowHelp(false)
}
