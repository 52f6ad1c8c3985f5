package cli

import "github.com/charmbracelet/bubbles/key"

type pickerKeyMap struct {
	Select   key.Binding
	Reveal   key.Binding
	Timer    key.Binding
	Restart  key.Binding
	Duration key.Binding
	Reset    key.Binding
	Ledger   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func newPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Select:   key.NewBinding(key.WithKeys("n", "enter"), key.WithHelp("n", "new word")),
		Reveal:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "hold to reveal")),
		Timer:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start/stop")),
		Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Duration: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "duration")),
		Reset:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset")),
		Ledger:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "used words")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Reveal, k.Timer, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Select, k.Reveal, k.Ledger},
		{k.Timer, k.Restart, k.Duration},
		{k.Reset, k.Help, k.Quit},
	}
}
