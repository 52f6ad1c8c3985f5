package cli

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// wizardView puts one of the picker's forms (countdown length, reset
// confirm, exhausted confirm) on top of the stack. onSubmit runs once the
// form completes and its command follows the pop.
type wizardView struct {
	state    *SharedState
	form     *huh.Form
	heading  string
	onSubmit func() tea.Cmd
	finished bool
}

func newWizardView(state *SharedState, heading string, form *huh.Form, onSubmit func() tea.Cmd) *wizardView {
	return &wizardView{state: state, form: form, heading: heading, onSubmit: onSubmit}
}

func (v *wizardView) Init() tea.Cmd {
	return v.form.Init()
}

func (v *wizardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if v.finished {
		return v, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		v.finished = true
		return v, func() tea.Msg { return wizardCompleteMsg{notice: "Cancelled."} }
	}

	model, cmd := v.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		v.form = f
	}
	if v.form.State != huh.StateCompleted {
		return v, cmd
	}

	// The session change happens here, while the picker is still below us.
	v.finished = true
	var after tea.Cmd
	if v.onSubmit != nil {
		after = v.onSubmit()
	}
	next := tea.Batch(cmd, after)
	return v, func() tea.Msg { return wizardCompleteMsg{nextCmd: next} }
}

func (v *wizardView) View() string {
	return "\n" + v.form.View()
}

func (v *wizardView) ID() ViewID    { return ViewForm }
func (v *wizardView) Title() string { return v.heading }
func (v *wizardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "choose")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "keep as is")),
	}
}

// openForm pushes a wizardView for form. A nil form skips the prompt and
// runs onSubmit straight away.
func openForm(state *SharedState, heading string, form *huh.Form, onSubmit func() tea.Cmd) tea.Cmd {
	if form != nil {
		return pushView(newWizardView(state, heading, form, onSubmit))
	}
	if onSubmit == nil {
		return nil
	}
	return onSubmit()
}
