package cli

import (
	"testing"

	"github.com/alexanderramin/wordpick/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizardView_SubmitRunsOnce(t *testing.T) {
	var ok bool
	calls := 0
	w := newWizardView(&SharedState{}, "reset", confirmForm("Reset?", &ok), func() tea.Cmd {
		calls++
		return nil
	})
	d := teatest.New(t, w)
	d.DrainInit()

	d.PressKey('y')
	d.PressKey('y')

	assert.True(t, ok)
	assert.Equal(t, 1, calls)
	assert.Equal(t, ViewForm, w.ID())
	assert.Equal(t, "reset", w.Title())
}

func TestWizardView_EscCancelsOnce(t *testing.T) {
	calls := 0
	var seconds int
	w := newWizardView(&SharedState{}, "duration", durationForm(&seconds), func() tea.Cmd {
		calls++
		return nil
	})

	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	msg, isComplete := cmd().(wizardCompleteMsg)
	require.True(t, isComplete)
	assert.Equal(t, "Cancelled.", msg.notice)

	_, cmd = w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Zero(t, calls)
}

func TestOpenForm_NilFormRunsSubmitDirectly(t *testing.T) {
	ran := false
	cmd := openForm(&SharedState{}, "noop", nil, func() tea.Cmd {
		ran = true
		return nil
	})

	assert.Nil(t, cmd)
	assert.True(t, ran)
	assert.Nil(t, openForm(&SharedState{}, "noop", nil, nil))
}
