// Package timer implements the countdown state machine.
//
// The Timer never schedules anything itself: it is advanced by Tick and tells
// its Scheduler when a recurring one-second tick must begin or end. It calls
// Schedule only on entering Running and Cancel on every exit from Running, so
// at most one tick source is live at any time.
package timer

import (
	"github.com/alexanderramin/wordpick/internal/domain"
)

// Scheduler starts and stops the recurring tick that drives a Timer.
type Scheduler interface {
	Schedule()
	Cancel()
}

type noopScheduler struct{}

func (noopScheduler) Schedule() {}
func (noopScheduler) Cancel()   {}

// Status is a read-only copy of the timer's state.
type Status struct {
	State     domain.TimerState
	Duration  int
	Remaining int
}

type Timer struct {
	duration  int
	remaining int
	armed     bool
	running   bool

	sched    Scheduler
	onExpire func()
}

// New returns an Idle timer. onExpire runs synchronously inside the Tick that
// reaches zero; it must not block.
func New(duration int, sched Scheduler, onExpire func()) (*Timer, error) {
	if err := domain.ValidateDuration(duration); err != nil {
		return nil, err
	}
	if sched == nil {
		sched = noopScheduler{}
	}
	if onExpire == nil {
		onExpire = func() {}
	}
	return &Timer{
		duration:  duration,
		remaining: duration,
		sched:     sched,
		onExpire:  onExpire,
	}, nil
}

func (t *Timer) State() domain.TimerState {
	switch {
	case !t.armed:
		return domain.TimerIdle
	case t.running:
		return domain.TimerRunning
	case t.remaining == 0:
		return domain.TimerExpired
	default:
		return domain.TimerReady
	}
}

func (t *Timer) Status() Status {
	return Status{State: t.State(), Duration: t.duration, Remaining: t.remaining}
}

func (t *Timer) Duration() int  { return t.duration }
func (t *Timer) Remaining() int { return t.remaining }
func (t *Timer) Running() bool  { return t.running }

// Arm moves to Ready with a full countdown. Called when a word is selected.
func (t *Timer) Arm() {
	t.halt()
	t.armed = true
	t.remaining = t.duration
}

// Start begins counting down. It reports false, changing nothing, when no
// word is armed, the timer is already running, or the countdown is at zero.
func (t *Timer) Start() bool {
	if !t.armed || t.running || t.remaining == 0 {
		return false
	}
	t.running = true
	t.sched.Schedule()
	return true
}

// Stop pauses a running countdown, keeping the remaining time.
func (t *Timer) Stop() bool {
	if !t.running {
		return false
	}
	t.halt()
	return true
}

// Tick consumes one second. It reports true on the tick that expires the
// countdown, after cancelling the schedule and running onExpire.
// Ticks outside Running are ignored.
func (t *Timer) Tick() bool {
	if !t.running {
		return false
	}
	t.remaining--
	if t.remaining > 0 {
		return false
	}
	t.remaining = 0
	t.halt()
	t.onExpire()
	return true
}

// Restart refills the countdown and runs it, whatever the prior state.
// It reports false when no word is armed.
func (t *Timer) Restart() bool {
	if !t.armed {
		return false
	}
	t.halt()
	t.remaining = t.duration
	t.running = true
	t.sched.Schedule()
	return true
}

// SetDuration changes the countdown length, refills it and stops the timer.
// The armed word is kept.
func (t *Timer) SetDuration(seconds int) error {
	if err := domain.ValidateDuration(seconds); err != nil {
		return err
	}
	t.halt()
	t.duration = seconds
	t.remaining = seconds
	return nil
}

// Reset returns to Idle.
func (t *Timer) Reset() {
	t.halt()
	t.armed = false
	t.remaining = t.duration
}

func (t *Timer) halt() {
	if !t.running {
		return
	}
	t.running = false
	t.sched.Cancel()
}
