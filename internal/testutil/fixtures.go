package testutil

import (
	"testing"
	"time"

	"github.com/alexanderramin/wordpick/internal/domain"
	"github.com/google/uuid"
)

// PoolOption adds categories to a test pool.
type PoolOption func(*[]domain.Category)

func WithCategory(id string, color domain.Color, words ...string) PoolOption {
	return func(cats *[]domain.Category) {
		*cats = append(*cats, domain.Category{ID: id, Color: color, Words: words})
	}
}

// NewTestPool builds a pool from options. Without options it holds
// {"animals": blue, ["cat", "dog"]}.
func NewTestPool(t *testing.T, opts ...PoolOption) *domain.Pool {
	t.Helper()
	var cats []domain.Category
	if len(opts) == 0 {
		opts = []PoolOption{WithCategory("animals", domain.ColorBlue, "cat", "dog")}
	}
	for _, opt := range opts {
		opt(&cats)
	}
	pool, err := domain.NewPool(cats)
	if err != nil {
		t.Fatalf("building test pool: %v", err)
	}
	return pool
}

// Pick options
type PickOption func(*domain.PickRecord)

func WithPickedAt(ts time.Time) PickOption {
	return func(p *domain.PickRecord) {
		p.PickedAt = ts
	}
}

func WithAllPlay() PickOption {
	return func(p *domain.PickRecord) {
		p.AllPlay = true
	}
}

func NewTestPick(word, category string, opts ...PickOption) *domain.PickRecord {
	p := &domain.PickRecord{
		ID:       uuid.New().String(),
		Word:     word,
		Category: category,
		PickedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
