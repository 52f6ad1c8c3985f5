package repository

import (
	"context"

	"github.com/alexanderramin/wordpick/internal/domain"
)

// KVRepo is a string key-value store. Get returns ErrNotFound for a missing key.
type KVRepo interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type PickRepo interface {
	Create(ctx context.Context, p *domain.PickRecord) error
	ListRecent(ctx context.Context, limit int) ([]*domain.PickRecord, error)
	Count(ctx context.Context) (int, error)
}
