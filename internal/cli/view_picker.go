package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/wordpick/internal/cli/formatter"
	"github.com/alexanderramin/wordpick/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pickerView is the home screen: current word, countdown and controls.
type pickerView struct {
	state *SharedState
	keys  pickerKeyMap
	help  help.Model
}

func newPickerView(state *SharedState) *pickerView {
	h := help.New()
	h.Styles.ShortKey = formatter.StyleFg
	h.Styles.ShortDesc = formatter.StyleDim
	h.Styles.FullKey = formatter.StyleFg
	h.Styles.FullDesc = formatter.StyleDim
	return &pickerView{state: state, keys: newPickerKeyMap(), help: h}
}

func (v *pickerView) Init() tea.Cmd { return nil }

func (v *pickerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.help.Width = msg.Width
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *pickerView) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := v.state.Session

	switch {
	case key.Matches(msg, v.keys.Reveal):
		cmd, err := s.holdReveal()
		if err != nil {
			v.state.Notice = describeError(err)
		}
		return cmd

	case key.Matches(msg, v.keys.Select):
		v.state.Notice = ""
		cmd, err := s.selectWord()
		if errors.Is(err, domain.ErrExhausted) {
			return v.confirmExhausted()
		}
		if err != nil {
			v.state.Notice = describeError(err)
		}
		return cmd

	case key.Matches(msg, v.keys.Timer):
		v.state.Notice = ""
		cmd, err := s.toggleTimer()
		if err != nil {
			v.state.Notice = describeError(err)
		}
		return cmd

	case key.Matches(msg, v.keys.Restart):
		v.state.Notice = ""
		cmd, err := s.restart()
		if err != nil {
			v.state.Notice = describeError(err)
		}
		return cmd

	case key.Matches(msg, v.keys.Duration):
		v.state.Notice = ""
		seconds := s.snapshot().Duration
		return openForm(v.state, "duration", durationForm(&seconds), func() tea.Cmd {
			cmd, err := s.changeDuration(seconds)
			if err != nil {
				return tea.Batch(cmd, notice(describeError(err)))
			}
			return tea.Batch(cmd, notice(fmt.Sprintf("Timer set to %s.", formatter.Clock(seconds))))
		})

	case key.Matches(msg, v.keys.Reset):
		v.state.Notice = ""
		var ok bool
		used := s.snapshot().Used
		form := confirmForm(fmt.Sprintf("Reset the session and forget %d used words?", used), &ok)
		return openForm(v.state, "reset", form, func() tea.Cmd {
			if !ok {
				return notice("Reset cancelled.")
			}
			return tea.Batch(s.reset(), notice("Ledger cleared. Every word is back in play."))
		})

	case key.Matches(msg, v.keys.Ledger):
		return pushView(newLedgerView(v.state))

	case key.Matches(msg, v.keys.Help):
		v.help.ShowAll = !v.help.ShowAll
	}
	return nil
}

// confirmExhausted offers a ledger reset once every word has been used.
func (v *pickerView) confirmExhausted() tea.Cmd {
	s := v.state.Session
	var ok bool
	form := confirmForm("All words used. Reset?", &ok)
	return openForm(v.state, "all words used", form, func() tea.Cmd {
		if !ok {
			return notice("No words left. Press x to reset when ready.")
		}
		cmd, err := s.resetAndSelect()
		if err != nil {
			return tea.Batch(cmd, notice(describeError(err)))
		}
		return cmd
	})
}

func (v *pickerView) View() string {
	snap := v.state.Session.snapshot()
	var b strings.Builder
	b.WriteString("\n")

	if !snap.HasWord {
		b.WriteString(formatter.RenderBox("", formatter.Dim("Press ")+formatter.Bold("n")+formatter.Dim(" to draw a word.")))
	} else {
		line := formatter.CategoryChip(snap.Category, snap.Color)
		if snap.AllPlay {
			line += "  " + formatter.AllPlayBadge()
		}
		b.WriteString("  " + line + "\n\n")

		word := formatter.Dim(formatter.HiddenWord) + "\n" + formatter.Dim("hold space to peek")
		if snap.Revealed {
			word = formatter.CategoryStyle(snap.Color).Bold(true).Render(snap.Word)
		}
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(formatter.CategoryColor(snap.Color)).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(min(max(v.state.Width-4, 24), 48)).
			Render(word)
		b.WriteString(box)
	}
	b.WriteString("\n\n")

	pct := 0.0
	if snap.Duration > 0 {
		pct = float64(snap.Remaining) / float64(snap.Duration)
	}
	b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		formatter.TimerClock(snap.State, snap.Remaining, snap.Duration),
		formatter.RenderProgress(pct, 24),
		formatter.TimerStateLabel(snap.State),
	))
	if snap.State == domain.TimerExpired {
		b.WriteString("  " + formatter.StyleRed.Bold(true).Render("TIME'S UP! Pencils down.") + "\n")
	}

	b.WriteString(fmt.Sprintf("\n  %s\n", formatter.Dim(fmt.Sprintf("%d of %d words left · %d used", snap.Eligible, snap.Total, snap.Used))))

	if v.state.Notice != "" {
		b.WriteString("  " + formatter.StyleYellow.Render(v.state.Notice) + "\n")
	}
	if v.help.ShowAll {
		b.WriteString("\n" + v.help.View(v.keys) + "\n")
	}
	return b.String()
}

func (v *pickerView) ID() ViewID    { return ViewPicker }
func (v *pickerView) Title() string { return "" }
func (v *pickerView) ShortHelp() []key.Binding {
	return v.keys.ShortHelp()
}

// describeError turns session errors into a short hint.
func describeError(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoWordSelected):
		return "Draw a word first (n)."
	case errors.Is(err, domain.ErrExhausted):
		return "No words left. Press x to reset."
	case errors.Is(err, domain.ErrInvalidDuration):
		return "That duration is not available."
	default:
		return err.Error()
	}
}
