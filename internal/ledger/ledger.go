// Package ledger keeps the set of words already shown, persisted as an
// ordered JSON array under a single key of a key-value store.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/wordpick/internal/repository"
)

// StorageKey is the key the ledger is stored under.
const StorageKey = "wordpick.used-words"

// Store is the durable key-value boundary. repository.KVRepo satisfies it.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Ledger is an insertion-ordered set of used words. Every mutation is written
// to the store before it returns. A failed write keeps the in-memory change
// and returns the error so the caller can log it.
type Ledger struct {
	store  Store
	logger *slog.Logger

	words []string
	index map[string]struct{}
}

// New returns an empty ledger. Call Load to rehydrate it from the store.
func New(store Store, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Ledger{store: store, logger: logger, index: make(map[string]struct{})}
}

// Open builds a ledger and loads it from the store.
func Open(ctx context.Context, store Store, logger *slog.Logger) *Ledger {
	l := New(store, logger)
	l.Load(ctx)
	return l
}

// Load replaces the in-memory set with the stored one and returns a copy.
// Missing, unreadable or malformed data loads as an empty ledger.
func (l *Ledger) Load(ctx context.Context) []string {
	l.reset(nil)

	raw, err := l.store.Get(ctx, StorageKey)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			l.logger.WarnContext(ctx, "ledger_load_failed", "error", err.Error())
		}
		return l.Words()
	}

	var words []string
	if err := json.Unmarshal([]byte(raw), &words); err != nil {
		l.logger.WarnContext(ctx, "ledger_malformed", "error", err.Error())
		return l.Words()
	}

	l.reset(words)
	l.logger.DebugContext(ctx, "ledger_loaded", "words", len(l.words))
	return l.Words()
}

// Save replaces the ledger with words (duplicates dropped, first position kept)
// and persists it.
func (l *Ledger) Save(ctx context.Context, words []string) error {
	l.reset(words)
	return l.flush(ctx)
}

// Add records word. Adding a present word leaves the set unchanged but still
// writes it through.
func (l *Ledger) Add(ctx context.Context, word string) error {
	if _, ok := l.index[word]; !ok {
		l.index[word] = struct{}{}
		l.words = append(l.words, word)
	}
	return l.flush(ctx)
}

func (l *Ledger) Contains(word string) bool {
	_, ok := l.index[word]
	return ok
}

// Clear empties the ledger and removes it from the store.
func (l *Ledger) Clear(ctx context.Context) error {
	l.reset(nil)
	if err := l.store.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("clearing ledger: %w", err)
	}
	return nil
}

// Words returns the used words in insertion order.
func (l *Ledger) Words() []string {
	out := make([]string, len(l.words))
	copy(out, l.words)
	return out
}

func (l *Ledger) Len() int {
	return len(l.words)
}

func (l *Ledger) reset(words []string) {
	l.words = make([]string, 0, len(words))
	l.index = make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, dup := l.index[w]; dup {
			continue
		}
		l.index[w] = struct{}{}
		l.words = append(l.words, w)
	}
}

func (l *Ledger) flush(ctx context.Context) error {
	data, err := json.Marshal(l.words)
	if err != nil {
		return fmt.Errorf("encoding ledger: %w", err)
	}
	if err := l.store.Put(ctx, StorageKey, string(data)); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}
	return nil
}
