package formatter

import (
	"fmt"

	"github.com/alexanderramin/wordpick/internal/domain"
)

// Clock formats seconds as m:ss.
func Clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// TimerClock renders the countdown colored by timer state.
func TimerClock(state domain.TimerState, remaining, duration int) string {
	c := Clock(remaining)
	switch state {
	case domain.TimerRunning:
		if remaining <= 10 {
			return StyleRed.Bold(true).Render(c)
		}
		return StyleGreen.Bold(true).Render(c)
	case domain.TimerExpired:
		return StyleRed.Render(c)
	case domain.TimerReady:
		return StyleFg.Render(c)
	default:
		return StyleDim.Render(Clock(duration))
	}
}

// TimerStateLabel is a short human label for a timer state.
func TimerStateLabel(state domain.TimerState) string {
	switch state {
	case domain.TimerRunning:
		return StyleGreen.Render("● running")
	case domain.TimerReady:
		return StyleYellow.Render("○ paused")
	case domain.TimerExpired:
		return StyleRed.Render("■ time's up")
	default:
		return StyleDim.Render("○ idle")
	}
}
