package timer_test

import (
	"testing"
	"time"

	"github.com/alexanderramin/wordpick/internal/timer"
	"github.com/stretchr/testify/assert"
)

func TestTickerScheduler_DeliversUntilCancelled(t *testing.T) {
	s := timer.NewTickerScheduler(5 * time.Millisecond)
	s.Schedule()
	assert.True(t, s.Active())

	for range 2 {
		select {
		case <-s.C():
		case <-time.After(time.Second):
			t.Fatal("no tick delivered")
		}
	}

	s.Cancel()
	assert.False(t, s.Active())

	select {
	case <-s.C():
		t.Fatal("tick delivered after cancel")
	case <-time.After(30 * time.Millisecond):
	}
}

func TestTickerScheduler_CancelIdempotent(t *testing.T) {
	s := timer.NewTickerScheduler(time.Millisecond)
	s.Cancel()
	s.Schedule()
	s.Cancel()
	s.Cancel()
	assert.False(t, s.Active())
}

func TestTickerScheduler_DrivesTimerToExpiry(t *testing.T) {
	s := timer.NewTickerScheduler(time.Millisecond)
	expired := 0
	tm, err := timer.New(30, s, func() { expired++ })
	if err != nil {
		t.Fatal(err)
	}
	tm.Arm()
	tm.Start()

	deadline := time.After(5 * time.Second)
	for tm.Running() {
		select {
		case <-s.C():
			tm.Tick()
		case <-deadline:
			t.Fatal("timer did not expire")
		}
	}
	assert.Equal(t, 1, expired)
	assert.False(t, s.Active())
	assert.Zero(t, tm.Remaining())
}
