package cli

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg is one countdown second. gen identifies the schedule it belongs to.
type tickMsg struct {
	gen int
}

// teaScheduler implements timer.Scheduler on bubbletea tick commands.
//
// Every Schedule and Cancel bumps the generation, so ticks still in flight
// from an earlier schedule are recognised and dropped. Schedule only queues
// the first tick; the owner collects it with drain and returns it from Update.
type teaScheduler struct {
	interval time.Duration
	gen      int
	active   bool
	pending  []tea.Cmd
}

func newTeaScheduler(interval time.Duration) *teaScheduler {
	return &teaScheduler{interval: interval}
}

func (s *teaScheduler) Schedule() {
	s.gen++
	s.active = true
	s.pending = append(s.pending, s.next())
}

func (s *teaScheduler) Cancel() {
	s.gen++
	s.active = false
}

// accept reports whether msg belongs to the live schedule.
func (s *teaScheduler) accept(msg tickMsg) bool {
	return s.active && msg.gen == s.gen
}

// next returns the command for the following tick of the live schedule.
func (s *teaScheduler) next() tea.Cmd {
	gen := s.gen
	return tea.Tick(s.interval, func(time.Time) tea.Msg {
		return tickMsg{gen: gen}
	})
}

// drain hands over queued tick commands.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
