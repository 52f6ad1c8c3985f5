package service

import (
	"context"

	"github.com/alexanderramin/wordpick/internal/domain"
	"github.com/alexanderramin/wordpick/internal/repository"
)

type historyService struct {
	picks repository.PickRepo
}

func NewHistoryService(picks repository.PickRepo) HistoryService {
	return &historyService{picks: picks}
}

func (s *historyService) ListRecent(ctx context.Context, limit int) ([]*domain.PickRecord, error) {
	return s.picks.ListRecent(ctx, limit)
}

func (s *historyService) Count(ctx context.Context) (int, error) {
	return s.picks.Count(ctx)
}
