package cli

import (
	"context"
	"sync"
	"time"

	"github.com/alexanderramin/wordpick/internal/alert"
	tea "github.com/charmbracelet/bubbletea"
)

// toastLifetime is how long a notification stays on screen.
const toastLifetime = 4 * time.Second

// toastMsg shows a notification. A toast with the same ID replaces the
// current one.
type toastMsg struct {
	id    string
	title string
	body  string
}

type toastExpiredMsg struct {
	seq int
}

// programNotifier delivers alert notifications into a running bubbletea
// program. It is called from alert goroutines.
type programNotifier struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func (n *programNotifier) attach(send func(tea.Msg)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.send = send
}

func (n *programNotifier) Notify(_ context.Context, note alert.Notification) error {
	n.mu.Lock()
	send := n.send
	n.mu.Unlock()
	if send == nil {
		return alert.ErrUnsupported
	}
	send(toastMsg{id: note.ID, title: note.Title, body: note.Body})
	return nil
}

// toast is the notification currently on screen.
type toast struct {
	id    string
	title string
	body  string
	seq   int
}

func (t *toast) show(msg toastMsg) tea.Cmd {
	t.seq++
	t.id, t.title, t.body = msg.id, msg.title, msg.body
	seq := t.seq
	return tea.Tick(toastLifetime, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func (t *toast) expire(msg toastExpiredMsg) {
	if msg.seq == t.seq {
		t.id, t.title, t.body = "", "", ""
	}
}

func (t *toast) visible() bool {
	return t.title != "" || t.body != ""
}
