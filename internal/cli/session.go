package cli

import (
	"context"
	"time"

	"github.com/alexanderramin/wordpick/internal/alert"
	"github.com/alexanderramin/wordpick/internal/domain"
	"github.com/alexanderramin/wordpick/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

// revealHold is how long the word stays visible after the last space press.
// Held keys repeat, and each repeat extends the window.
const revealHold = 600 * time.Millisecond

// revealReleaseMsg hides the word unless a newer press re-armed the reveal.
type revealReleaseMsg struct {
	gen int
}

// gameSession binds a GameService to the TUI event loop. Every intent returns
// the tick commands it scheduled so the caller can hand them to bubbletea.
type gameSession struct {
	game      service.GameService
	ticks     *teaScheduler
	alerts    *alert.Dispatcher
	revealGen int
}

func newGameSession(app *App, notifier alert.Notifier) (*gameSession, error) {
	ticks := newTeaScheduler(time.Second)
	dispatcher := app.newDispatcher(notifier)
	game, err := app.NewGame(ticks, dispatcher)
	if err != nil {
		return nil, err
	}
	return &gameSession{game: game, ticks: ticks, alerts: dispatcher}, nil
}

func (s *gameSession) snapshot() service.Snapshot {
	return s.game.Snapshot()
}

func (s *gameSession) selectWord() (tea.Cmd, error) {
	_, err := s.game.SelectWord(context.Background())
	return s.ticks.drain(), err
}

// resetAndSelect clears the ledger and draws again.
func (s *gameSession) resetAndSelect() (tea.Cmd, error) {
	s.game.Reset(context.Background())
	return s.selectWord()
}

func (s *gameSession) reset() tea.Cmd {
	s.game.Reset(context.Background())
	return s.ticks.drain()
}

// toggleTimer stops a running countdown and starts any other.
func (s *gameSession) toggleTimer() (tea.Cmd, error) {
	ctx := context.Background()
	if s.game.Snapshot().State == domain.TimerRunning {
		s.game.Stop(ctx)
		return nil, nil
	}
	err := s.game.Start(ctx)
	return s.ticks.drain(), err
}

func (s *gameSession) restart() (tea.Cmd, error) {
	err := s.game.Restart(context.Background())
	return s.ticks.drain(), err
}

func (s *gameSession) changeDuration(seconds int) (tea.Cmd, error) {
	err := s.game.ChangeDuration(context.Background(), seconds)
	return s.ticks.drain(), err
}

// tick advances the countdown for a tick of the live schedule and queues
// the next one while it keeps running.
func (s *gameSession) tick(msg tickMsg) tea.Cmd {
	if !s.ticks.accept(msg) {
		return nil
	}
	s.game.Tick(context.Background())
	if !s.ticks.active {
		return nil
	}
	return s.ticks.next()
}

// holdReveal shows the word and arms the release timer.
func (s *gameSession) holdReveal() (tea.Cmd, error) {
	if err := s.game.Reveal(context.Background()); err != nil {
		return nil, err
	}
	s.revealGen++
	gen := s.revealGen
	return tea.Tick(revealHold, func(time.Time) tea.Msg {
		return revealReleaseMsg{gen: gen}
	}), nil
}

func (s *gameSession) release(msg revealReleaseMsg) {
	if msg.gen == s.revealGen {
		s.game.Unreveal(context.Background())
	}
}
