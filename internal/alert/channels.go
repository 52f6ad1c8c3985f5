package alert

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// NoVibration is the vibrator for devices without a motor, i.e. terminals.
type NoVibration struct{}

func (NoVibration) Vibrate(context.Context, []time.Duration) error { return ErrUnsupported }

// Silent plays nothing. It is used when sound is disabled.
type Silent struct{}

func (Silent) Play(context.Context, []Tone) error { return nil }

// BellPlayer renders a cue on a terminal: one bell per tone, spaced by the
// tone's duration. Terminals cannot pitch a bell, so frequency is ignored.
type BellPlayer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewBellPlayer(w io.Writer) *BellPlayer {
	return &BellPlayer{w: w}
}

func (b *BellPlayer) Play(ctx context.Context, cue []Tone) error {
	if b.w == nil {
		return ErrUnsupported
	}
	// Overlapping cues would interleave bells.
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, tone := range cue {
		if _, err := io.WriteString(b.w, "\a"); err != nil {
			return fmt.Errorf("ringing bell: %w", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(tone.Duration):
		}
	}
	return nil
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notification) error

func (f NotifierFunc) Notify(ctx context.Context, n Notification) error { return f(ctx, n) }

// WriterNotifier prints notifications as single lines, used by headless
// commands. Render formats the line; nil prints "Title: Body".
type WriterNotifier struct {
	mu     sync.Mutex
	w      io.Writer
	Render func(Notification) string
}

func NewWriterNotifier(w io.Writer, render func(Notification) string) *WriterNotifier {
	return &WriterNotifier{w: w, Render: render}
}

func (n *WriterNotifier) Notify(_ context.Context, note Notification) error {
	line := note.Title + ": " + note.Body
	if n.Render != nil {
		line = n.Render(note)
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, err := fmt.Fprintln(n.w, line); err != nil {
		return fmt.Errorf("writing notification: %w", err)
	}
	return nil
}
