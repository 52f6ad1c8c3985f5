// Package alert fans a timer expiry out to vibration, sound and a visual
// notification. Every channel is best effort: each runs on its own goroutine,
// failures are logged and never retried, and one channel never blocks another.
package alert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// ErrUnsupported is returned by a channel the current device cannot provide.
var ErrUnsupported = errors.New("capability not supported")

// ExpiredNotificationID keys the expiry toast so a later expiry replaces it.
const ExpiredNotificationID = "timer-expired"

// Tone is one step of the synthesized audio cue.
type Tone struct {
	FrequencyHz int
	Duration    time.Duration
}

// DefaultCue is the expiry cue. It stays well under one second.
var DefaultCue = []Tone{
	{FrequencyHz: 880, Duration: 150 * time.Millisecond},
	{FrequencyHz: 660, Duration: 150 * time.Millisecond},
	{FrequencyHz: 880, Duration: 150 * time.Millisecond},
}

// DefaultVibration alternates on/off durations, starting with on.
var DefaultVibration = []time.Duration{200 * time.Millisecond, 100 * time.Millisecond, 200 * time.Millisecond}

type Notification struct {
	ID    string
	Title string
	Body  string
}

type Vibrator interface {
	Vibrate(ctx context.Context, pattern []time.Duration) error
}

type TonePlayer interface {
	Play(ctx context.Context, cue []Tone) error
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// Dispatcher delivers expiry alerts.
type Dispatcher struct {
	vibrator Vibrator
	tones    TonePlayer
	notifier Notifier
	logger   *slog.Logger

	wg sync.WaitGroup
}

// NewDispatcher wires the three channels. A nil channel behaves as unsupported.
func NewDispatcher(v Vibrator, tp TonePlayer, n Notifier, logger *slog.Logger) *Dispatcher {
	if v == nil {
		v = NoVibration{}
	}
	if tp == nil {
		tp = Silent{}
	}
	if n == nil {
		n = NotifierFunc(func(context.Context, Notification) error { return ErrUnsupported })
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{vibrator: v, tones: tp, notifier: n, logger: logger}
}

// ExpiredNotification builds the toast shown when the countdown for word ends.
func ExpiredNotification(word string) Notification {
	body := "Pencils down."
	if word != "" {
		body = fmt.Sprintf("Pencils down. The word was %q.", word)
	}
	return Notification{ID: ExpiredNotificationID, Title: "Time's up!", Body: body}
}

// Dispatch fires all channels and returns immediately.
// Deliveries outlive cancellation of ctx; they are short by construction.
func (d *Dispatcher) Dispatch(ctx context.Context, word string) {
	ctx = context.WithoutCancel(ctx)
	note := ExpiredNotification(word)

	d.deliver(ctx, "vibration", func(ctx context.Context) error {
		return d.vibrator.Vibrate(ctx, DefaultVibration)
	})
	d.deliver(ctx, "sound", func(ctx context.Context) error {
		return d.tones.Play(ctx, DefaultCue)
	})
	d.deliver(ctx, "notification", func(ctx context.Context) error {
		return d.notifier.Notify(ctx, note)
	})
}

// Wait blocks until every in-flight delivery has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) deliver(ctx context.Context, channel string, fn func(context.Context) error) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if p := recover(); p != nil {
				d.logger.WarnContext(ctx, "alert_channel_panic", "channel", channel, "panic", fmt.Sprint(p))
			}
		}()

		err := fn(ctx)
		switch {
		case err == nil:
			d.logger.DebugContext(ctx, "alert_delivered", "channel", channel)
		case errors.Is(err, ErrUnsupported):
			d.logger.DebugContext(ctx, "alert_channel_unsupported", "channel", channel)
		default:
			d.logger.WarnContext(ctx, "alert_channel_failed", "channel", channel, "error", err.Error())
		}
	}()
}
