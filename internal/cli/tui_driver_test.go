package cli

import (
	"sync"
	"testing"

	"github.com/alexanderramin/wordpick/internal/service"
	"github.com/alexanderramin/wordpick/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

// TestDriver wraps teatest.Driver with access to appModel internals
// (view stack, session, toasts) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver

	notifier *programNotifier

	mu   sync.Mutex
	sent []tea.Msg
}

// NewTestDriver builds the appModel for app at 120x40 and drains Init().
// Notifications are captured instead of reaching a program; FlushAlerts
// delivers them.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	td := &TestDriver{notifier: &programNotifier{}}
	td.notifier.attach(func(msg tea.Msg) {
		td.mu.Lock()
		defer td.mu.Unlock()
		td.sent = append(td.sent, msg)
	})

	m, err := newAppModel(app, td.notifier)
	require.NoError(t, err)
	td.Driver = teatest.New(t, m, teatest.WithSize(120, 40))
	td.DrainInit()
	return td
}

// ── High-level helpers ───────────────────────────────────────────────────────

// Tick delivers n countdown ticks of the live schedule.
func (d *TestDriver) Tick(n int) {
	d.T.Helper()
	for range n {
		d.Send(tickMsg{gen: d.Session().ticks.gen})
	}
}

// ReleaseReveal delivers the release of the latest reveal press.
func (d *TestDriver) ReleaseReveal() {
	d.T.Helper()
	d.Send(revealReleaseMsg{gen: d.Session().revealGen})
}

// FlushAlerts waits for in-flight alerts and feeds captured messages to the model.
func (d *TestDriver) FlushAlerts() {
	d.T.Helper()
	d.Session().alerts.Wait()

	d.mu.Lock()
	msgs := d.sent
	d.sent = nil
	d.mu.Unlock()

	for _, msg := range msgs {
		d.Send(msg)
	}
}

// Plain returns the rendered view without ANSI styling.
func (d *TestDriver) Plain() string {
	return ansi.Strip(d.View())
}

// ── Inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

func (d *TestDriver) Session() *gameSession {
	return d.State().Session
}

func (d *TestDriver) Snapshot() service.Snapshot {
	return d.Session().snapshot()
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// IsQuitting checks both the model flag and tea.QuitMsg seen by the driver.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
