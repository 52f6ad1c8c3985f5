package cli

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/wordpick/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// historyPreview is how many recent picks the ledger view lists.
const historyPreview = 10

// ledgerView lists used words and recent picks in a scrollable viewport.
type ledgerView struct {
	state *SharedState
	vp    viewport.Model
}

func newLedgerView(state *SharedState) *ledgerView {
	vp := viewport.New(max(state.Width, 20), state.ContentHeight())
	vp.MouseWheelEnabled = true
	v := &ledgerView{state: state, vp: vp}
	v.reload()
	return v
}

func (v *ledgerView) reload() {
	ctx := context.Background()
	var b strings.Builder
	b.WriteString(formatter.FormatLedger(v.state.App.Ledger.List(ctx)))

	if v.state.App.History != nil {
		b.WriteString("\n" + formatter.Header("Recent picks") + "\n")
		picks, err := v.state.App.History.ListRecent(ctx, historyPreview)
		if err != nil {
			b.WriteString(formatter.StyleRed.Render(err.Error()) + "\n")
		} else {
			b.WriteString(formatter.FormatHistory(picks, time.Now()))
		}
	}
	v.vp.SetContent(b.String())
}

func (v *ledgerView) Init() tea.Cmd { return nil }

func (v *ledgerView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		return v, nil
	case refreshViewMsg:
		v.reload()
		return v, nil
	}
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return v, cmd
}

func (v *ledgerView) View() string {
	return v.vp.View()
}

func (v *ledgerView) ID() ViewID    { return ViewLedger }
func (v *ledgerView) Title() string { return "used words" }
func (v *ledgerView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "scroll")),
	}
}
