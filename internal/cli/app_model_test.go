package cli

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubView struct {
	id         ViewID
	title      string
	viewText   string
	shortHelp  []key.Binding
	initCmd    tea.Cmd
	updateCmd  tea.Cmd
	updateSeen []tea.Msg
}

func (v *stubView) Init() tea.Cmd { return v.initCmd }

func (v *stubView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	v.updateSeen = append(v.updateSeen, msg)
	return v, v.updateCmd
}

func (v *stubView) View() string             { return v.viewText }
func (v *stubView) ID() ViewID               { return v.id }
func (v *stubView) ShortHelp() []key.Binding { return v.shortHelp }
func (v *stubView) Title() string            { return v.title }

func newStubView(id ViewID, title, text string) *stubView {
	return &stubView{id: id, title: title, viewText: text}
}

func newTestAppModel(t *testing.T) appModel {
	t.Helper()
	m, err := newAppModel(testApp(t), &programNotifier{})
	require.NoError(t, err)
	return m
}

func TestNewAppModelStartsAtPicker(t *testing.T) {
	m := newTestAppModel(t)

	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewPicker, m.activeView().ID())
}

func TestNewAppModelPropagatesGameError(t *testing.T) {
	app := testApp(t)
	app.Config.Duration = 50

	_, err := newAppModel(app, &programNotifier{})
	require.Error(t, err)
}

func TestAppModel_NavigationMessages(t *testing.T) {
	m := newTestAppModel(t)
	v2 := newStubView(ViewLedger, "used words", "ledger view")

	model, cmd := m.Update(pushViewMsg{view: v2})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 2)
	assert.Equal(t, v2, m.activeView())

	model, cmd = m.Update(popViewMsg{})
	m = model.(appModel)
	require.Nil(t, cmd)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewPicker, m.activeView().ID())
}

func TestAppModel_PopKeepsRootView(t *testing.T) {
	m := newTestAppModel(t)

	model, _ := m.Update(popViewMsg{})
	m = model.(appModel)

	require.Len(t, m.viewStack, 1)
}

func TestAppModel_WindowResizeReachesEveryView(t *testing.T) {
	m := newTestAppModel(t)
	bottom := newStubView(ViewPicker, "", "picker")
	top := newStubView(ViewLedger, "used words", "ledger")
	m.viewStack = []View{bottom, top}

	model, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = model.(appModel)

	assert.Equal(t, 100, m.state.Width)
	assert.Equal(t, 30, m.state.Height)
	assert.Equal(t, 25, m.state.ContentHeight())
	require.Len(t, bottom.updateSeen, 1)
	require.Len(t, top.updateSeen, 1)
}

func TestAppModel_WizardCompletePopsAndSetsNotice(t *testing.T) {
	m := newTestAppModel(t)
	m.viewStack = append(m.viewStack, newStubView(ViewForm, "reset", "form"))

	model, cmd := m.Update(wizardCompleteMsg{notice: "Cancelled."})
	m = model.(appModel)

	require.NotNil(t, cmd)
	require.Len(t, m.viewStack, 1)
	assert.Equal(t, "Cancelled.", m.state.Notice)
}

func TestAppModel_FormReceivesEscAndQ(t *testing.T) {
	m := newTestAppModel(t)
	form := newStubView(ViewForm, "reset", "form")
	m.viewStack = append(m.viewStack, form)

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = model.(appModel)
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(appModel)

	assert.False(t, m.quitting)
	require.Len(t, m.viewStack, 2)
	assert.Len(t, form.updateSeen, 2)
}

func TestAppModel_EscPopsNonFormView(t *testing.T) {
	m := newTestAppModel(t)
	m.viewStack = append(m.viewStack, newStubView(ViewLedger, "used words", "ledger"))

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(appModel)

	require.Len(t, m.viewStack, 1)
}

func TestAppModel_RendersBreadcrumbsAndHints(t *testing.T) {
	m := newTestAppModel(t)
	top := newStubView(ViewLedger, "used words", "ledger body")
	top.shortHelp = []key.Binding{key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "scroll"))}
	m.viewStack = append(m.viewStack, top)

	view := m.View()

	assert.Contains(t, view, "wordpick")
	assert.Contains(t, view, "used words")
	assert.Contains(t, view, "ledger body")
	assert.Contains(t, view, "↑: scroll")
	assert.Contains(t, view, "esc: back")
}

func TestAppModel_QuittingRendersNothing(t *testing.T) {
	m := newTestAppModel(t)

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = model.(appModel)

	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}
