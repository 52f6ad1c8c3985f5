package domain

import "fmt"

type TimerState string

const (
	TimerIdle    TimerState = "idle"
	TimerReady   TimerState = "ready"
	TimerRunning TimerState = "running"
	TimerExpired TimerState = "expired"
)

// DefaultDuration is the countdown length in seconds for a fresh session.
const DefaultDuration = 60

// DurationOptions are the recognized countdown lengths in seconds.
var DurationOptions = []int{30, 45, 60, 75, 90, 120}

// ValidateDuration reports ErrInvalidDuration for seconds outside DurationOptions.
func ValidateDuration(seconds int) error {
	for _, d := range DurationOptions {
		if d == seconds {
			return nil
		}
	}
	return fmt.Errorf("%w: %d (expected one of %v)", ErrInvalidDuration, seconds, DurationOptions)
}
