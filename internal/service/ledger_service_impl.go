package service

import (
	"context"
	"time"

	"github.com/alexanderramin/wordpick/internal/ledger"
)

type ledgerService struct {
	ledger   *ledger.Ledger
	observer UseCaseObserver
}

func NewLedgerService(l *ledger.Ledger, observers ...UseCaseObserver) LedgerService {
	return &ledgerService{ledger: l, observer: useCaseObserverOrNoop(observers)}
}

// List returns the used words in the order they were drawn.
func (s *ledgerService) List(ctx context.Context) []string {
	return s.ledger.Words()
}

// Reset empties the ledger. The in-memory ledger is cleared even when the
// store write fails.
func (s *ledgerService) Reset(ctx context.Context) (err error) {
	fields := map[string]any{"cleared": s.ledger.Len()}
	defer observe(ctx, s.observer, "reset-ledger", time.Now(), fields, &err)

	return s.ledger.Clear(ctx)
}
