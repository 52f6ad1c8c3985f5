package service

import (
	"context"

	"github.com/alexanderramin/wordpick/internal/domain"
)

// GameService drives one play session: word selection, reveal and countdown.
// Calls must come from a single goroutine.
type GameService interface {
	SelectWord(ctx context.Context) (domain.Selection, error)
	Reveal(ctx context.Context) error
	Unreveal(ctx context.Context)
	Start(ctx context.Context) error
	Stop(ctx context.Context)
	Restart(ctx context.Context) error
	// Tick advances a running countdown by one second and reports whether it expired.
	Tick(ctx context.Context) bool
	ChangeDuration(ctx context.Context, seconds int) error
	Reset(ctx context.Context)
	Snapshot() Snapshot
}

type HistoryService interface {
	ListRecent(ctx context.Context, limit int) ([]*domain.PickRecord, error)
	Count(ctx context.Context) (int, error)
}

type LedgerService interface {
	List(ctx context.Context) []string
	Reset(ctx context.Context) error
}

type PoolService interface {
	Summary(ctx context.Context) PoolSummary
}

// Snapshot is a read-only view of a session.
type Snapshot struct {
	SessionID string

	HasWord  bool
	Category string
	Color    domain.Color
	Word     string
	AllPlay  bool
	Revealed bool

	State     domain.TimerState
	Duration  int
	Remaining int

	Eligible int
	Total    int
	Used     int
}

// CategoryStats counts one category's words and how many are still eligible.
type CategoryStats struct {
	ID        string
	Color     domain.Color
	Total     int
	Remaining int
}

type PoolSummary struct {
	Categories []CategoryStats
	Total      int
	Eligible   int
	Used       int
}
