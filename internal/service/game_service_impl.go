package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/wordpick/internal/domain"
	"github.com/alexanderramin/wordpick/internal/ledger"
	"github.com/alexanderramin/wordpick/internal/picker"
	"github.com/alexanderramin/wordpick/internal/repository"
	"github.com/alexanderramin/wordpick/internal/timer"
	"github.com/google/uuid"
)

// Alerter fires the expiry alert. *alert.Dispatcher satisfies it.
type Alerter interface {
	Dispatch(ctx context.Context, word string)
}

// GameConfig wires a GameService. Picks, Scheduler, Alerts, Logger and Now
// are optional.
type GameConfig struct {
	Pool      *domain.Pool
	Ledger    *ledger.Ledger
	Picks     repository.PickRepo
	Rand      picker.Rand
	Scheduler timer.Scheduler
	Alerts    Alerter
	Duration  int
	Logger    *slog.Logger
	Now       func() time.Time
}

type gameService struct {
	sessionID string
	pool      *domain.Pool
	ledger    *ledger.Ledger
	picks     repository.PickRepo
	rng       picker.Rand
	timer     *timer.Timer
	alerts    Alerter
	logger    *slog.Logger
	now       func() time.Time
	observer  UseCaseObserver

	current  *domain.Selection
	revealed bool
}

func NewGameService(cfg GameConfig, observers ...UseCaseObserver) (GameService, error) {
	if cfg.Pool == nil || cfg.Ledger == nil || cfg.Rand == nil {
		return nil, errors.New("game service: pool, ledger and random source are required")
	}
	if cfg.Duration == 0 {
		cfg.Duration = domain.DefaultDuration
	}
	tm, err := timer.New(cfg.Duration, cfg.Scheduler, nil)
	if err != nil {
		return nil, fmt.Errorf("game service: %w", err)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &gameService{
		sessionID: uuid.New().String(),
		pool:      cfg.Pool,
		ledger:    cfg.Ledger,
		picks:     cfg.Picks,
		rng:       cfg.Rand,
		timer:     tm,
		alerts:    cfg.Alerts,
		logger:    cfg.Logger,
		now:       cfg.Now,
		observer:  useCaseObserverOrNoop(observers),
	}, nil
}

func (s *gameService) fields(kv ...any) map[string]any {
	f := map[string]any{"session_id": s.sessionID}
	for i := 0; i+1 < len(kv); i += 2 {
		f[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return f
}

func (s *gameService) SelectWord(ctx context.Context) (sel domain.Selection, err error) {
	fields := s.fields()
	defer observe(ctx, s.observer, "select-word", time.Now(), fields, &err)

	sel, err = picker.Select(s.pool, s.ledger, s.rng)
	if err != nil {
		fields["eligible"] = 0
		return domain.Selection{}, err
	}

	if ferr := s.ledger.Add(ctx, sel.Word); ferr != nil {
		s.logger.WarnContext(ctx, "ledger_write_failed", "session_id", s.sessionID, "error", ferr.Error())
	}
	s.recordPick(ctx, sel)

	s.current = &sel
	s.revealed = false
	s.timer.Arm()

	fields["category"] = sel.Category
	fields["all_play"] = sel.AllPlay
	fields["eligible"] = picker.CountEligible(s.pool, s.ledger)
	return sel, nil
}

func (s *gameService) recordPick(ctx context.Context, sel domain.Selection) {
	if s.picks == nil {
		return
	}
	rec := &domain.PickRecord{
		ID:       uuid.New().String(),
		Word:     sel.Word,
		Category: sel.Category,
		AllPlay:  sel.AllPlay,
		PickedAt: s.now().UTC(),
	}
	if err := s.picks.Create(ctx, rec); err != nil {
		s.logger.WarnContext(ctx, "pick_history_write_failed", "session_id", s.sessionID, "error", err.Error())
	}
}

func (s *gameService) Reveal(ctx context.Context) error {
	if s.current == nil {
		return domain.ErrNoWordSelected
	}
	s.revealed = true
	return nil
}

func (s *gameService) Unreveal(ctx context.Context) {
	s.revealed = false
}

func (s *gameService) Start(ctx context.Context) (err error) {
	fields := s.fields()
	defer observe(ctx, s.observer, "start-timer", time.Now(), fields, &err)

	if s.current == nil {
		return domain.ErrNoWordSelected
	}
	fields["started"] = s.timer.Start()
	fields["remaining"] = s.timer.Remaining()
	return nil
}

func (s *gameService) Stop(ctx context.Context) {
	fields := s.fields()
	defer observe(ctx, s.observer, "stop-timer", time.Now(), fields, nil)

	fields["stopped"] = s.timer.Stop()
	fields["remaining"] = s.timer.Remaining()
}

func (s *gameService) Restart(ctx context.Context) (err error) {
	fields := s.fields()
	defer observe(ctx, s.observer, "restart-timer", time.Now(), fields, &err)

	if !s.timer.Restart() {
		return domain.ErrNoWordSelected
	}
	fields["duration"] = s.timer.Duration()
	return nil
}

func (s *gameService) Tick(ctx context.Context) bool {
	if !s.timer.Tick() {
		return false
	}

	word := ""
	if s.current != nil {
		word = s.current.Word
	}
	if s.alerts != nil {
		s.alerts.Dispatch(ctx, word)
	}
	observe(ctx, s.observer, "timer-expired", time.Now(), s.fields("duration", s.timer.Duration()), nil)
	return true
}

func (s *gameService) ChangeDuration(ctx context.Context, seconds int) (err error) {
	fields := s.fields("duration", seconds)
	defer observe(ctx, s.observer, "change-duration", time.Now(), fields, &err)

	return s.timer.SetDuration(seconds)
}

func (s *gameService) Reset(ctx context.Context) {
	fields := s.fields("cleared", s.ledger.Len())
	defer observe(ctx, s.observer, "reset-session", time.Now(), fields, nil)

	s.current = nil
	s.revealed = false
	s.timer.Reset()
	if err := s.ledger.Clear(ctx); err != nil {
		s.logger.WarnContext(ctx, "ledger_clear_failed", "session_id", s.sessionID, "error", err.Error())
		fields["storage_error"] = err.Error()
	}
}

func (s *gameService) Snapshot() Snapshot {
	st := s.timer.Status()
	snap := Snapshot{
		SessionID: s.sessionID,
		State:     st.State,
		Duration:  st.Duration,
		Remaining: st.Remaining,
		Eligible:  picker.CountEligible(s.pool, s.ledger),
		Total:     s.pool.TotalWords(),
		Used:      s.ledger.Len(),
	}
	if s.current != nil {
		snap.HasWord = true
		snap.Category = s.current.Category
		snap.Word = s.current.Word
		snap.AllPlay = s.current.AllPlay
		snap.Revealed = s.revealed
		if c, ok := s.pool.Category(s.current.Category); ok {
			snap.Color = c.Color
		}
	}
	return snap
}
