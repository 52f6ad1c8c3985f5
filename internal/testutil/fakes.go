package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/alexanderramin/wordpick/internal/alert"
	"github.com/alexanderramin/wordpick/internal/repository"
)

// ScriptedRand replays fixed values. IntN returns the next Ints value modulo n;
// Float64 returns the next Floats value. Both record how often they ran.
type ScriptedRand struct {
	Ints   []int
	Floats []float64

	IntCalls   int
	FloatCalls int
}

func (r *ScriptedRand) IntN(n int) int {
	v := 0
	if r.IntCalls < len(r.Ints) {
		v = r.Ints[r.IntCalls]
	}
	r.IntCalls++
	return v % n
}

func (r *ScriptedRand) Float64() float64 {
	v := 0.99
	if r.FloatCalls < len(r.Floats) {
		v = r.Floats[r.FloatCalls]
	}
	r.FloatCalls++
	return v
}

// MemoryKV is an in-memory repository.KVRepo.
type MemoryKV struct {
	mu     sync.Mutex
	Values map[string]string
	Puts   int
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{Values: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.Values[key]
	if !ok {
		return "", fmt.Errorf("kv key %q: %w", key, repository.ErrNotFound)
	}
	return v, nil
}

func (m *MemoryKV) Put(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Values[key] = value
	m.Puts++
	return nil
}

func (m *MemoryKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Values, key)
	return nil
}

// ErrStorageDown is returned by FailingKV.
var ErrStorageDown = errors.New("storage unavailable")

// FailingKV is a KV store where every call fails.
type FailingKV struct{}

func (FailingKV) Get(context.Context, string) (string, error) { return "", ErrStorageDown }
func (FailingKV) Put(context.Context, string, string) error   { return ErrStorageDown }
func (FailingKV) Delete(context.Context, string) error        { return ErrStorageDown }

// RecordingScheduler counts Schedule/Cancel calls and tracks how many
// schedules are live. MaxOutstanding is the peak of Outstanding.
type RecordingScheduler struct {
	Schedules      int
	Cancels        int
	Outstanding    int
	MaxOutstanding int
}

func (s *RecordingScheduler) Schedule() {
	s.Schedules++
	s.Outstanding++
	if s.Outstanding > s.MaxOutstanding {
		s.MaxOutstanding = s.Outstanding
	}
}

func (s *RecordingScheduler) Cancel() {
	s.Cancels++
	if s.Outstanding > 0 {
		s.Outstanding--
	}
}

// AlertRecorder implements every alert channel and records deliveries.
// Setting an Err field makes that channel fail; Block delays the tone
// channel until the channel is closed.
type AlertRecorder struct {
	mu sync.Mutex

	Vibrations    int
	Cues          int
	Notifications []alert.Notification

	VibrateErr error
	PlayErr    error
	NotifyErr  error
	Block      chan struct{}
}

func (r *AlertRecorder) Vibrate(context.Context, []time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Vibrations++
	return r.VibrateErr
}

func (r *AlertRecorder) Play(context.Context, []alert.Tone) error {
	if r.Block != nil {
		<-r.Block
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Cues++
	return r.PlayErr
}

func (r *AlertRecorder) Notify(_ context.Context, n alert.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Notifications = append(r.Notifications, n)
	return r.NotifyErr
}

// Counts returns a consistent snapshot of delivery counts.
func (r *AlertRecorder) Counts() (vibrations, cues, notifications int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Vibrations, r.Cues, len(r.Notifications)
}
