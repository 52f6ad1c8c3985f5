package timer

import (
	"sync"
	"time"
)

// TickerScheduler delivers recurring ticks on a channel from a time.Ticker
// goroutine. Cancel waits for that goroutine to exit, so once it returns no
// tick from the cancelled schedule can still be received.
//
// The consumer of C must be the goroutine calling Schedule and Cancel.
type TickerScheduler struct {
	interval time.Duration
	ticks    chan time.Time

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	return &TickerScheduler{interval: interval, ticks: make(chan time.Time)}
}

// C returns the tick channel.
func (s *TickerScheduler) C() <-chan time.Time {
	return s.ticks
}

// Active reports whether a schedule is running.
func (s *TickerScheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil
}

func (s *TickerScheduler) Schedule() {
	s.Cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.run(s.stop, s.done)
}

func (s *TickerScheduler) Cancel() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (s *TickerScheduler) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	tk := time.NewTicker(s.interval)
	defer tk.Stop()

	for {
		select {
		case <-stop:
			return
		case now := <-tk.C:
			select {
			case s.ticks <- now:
			case <-stop:
				return
			}
		}
	}
}
