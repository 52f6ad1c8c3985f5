package service

import (
	"context"

	"github.com/alexanderramin/wordpick/internal/domain"
	"github.com/alexanderramin/wordpick/internal/ledger"
	"github.com/samber/lo"
)

type poolService struct {
	pool   *domain.Pool
	ledger *ledger.Ledger
}

func NewPoolService(pool *domain.Pool, l *ledger.Ledger) PoolService {
	return &poolService{pool: pool, ledger: l}
}

func (s *poolService) Summary(ctx context.Context) PoolSummary {
	cats := lo.Map(s.pool.Categories(), func(c domain.Category, _ int) CategoryStats {
		return CategoryStats{
			ID:        c.ID,
			Color:     c.Color,
			Total:     len(c.Words),
			Remaining: lo.CountBy(c.Words, func(w string) bool { return !s.ledger.Contains(w) }),
		}
	})
	return PoolSummary{
		Categories: cats,
		Total:      lo.SumBy(cats, func(c CategoryStats) int { return c.Total }),
		Eligible:   lo.SumBy(cats, func(c CategoryStats) int { return c.Remaining }),
		Used:       s.ledger.Len(),
	}
}
