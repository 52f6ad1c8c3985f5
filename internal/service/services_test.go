package service

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/alexanderramin/wordpick/internal/domain"
	"github.com/alexanderramin/wordpick/internal/ledger"
	"github.com/alexanderramin/wordpick/internal/repository"
	"github.com/alexanderramin/wordpick/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolService_Summary(t *testing.T) {
	ctx := context.Background()
	pool := testutil.NewTestPool(t,
		testutil.WithCategory("animals", domain.ColorBlue, "cat", "dog"),
		testutil.WithCategory("food", domain.ColorRed, "pizza"),
	)
	led := ledger.New(testutil.NewMemoryKV(), nil)
	require.NoError(t, led.Add(ctx, "dog"))
	require.NoError(t, led.Add(ctx, "retired-word"))

	sum := NewPoolService(pool, led).Summary(ctx)
	assert.Equal(t, []CategoryStats{
		{ID: "animals", Color: domain.ColorBlue, Total: 2, Remaining: 1},
		{ID: "food", Color: domain.ColorRed, Total: 1, Remaining: 1},
	}, sum.Categories)
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 2, sum.Eligible)
	assert.Equal(t, 2, sum.Used, "stale entries are kept")
}

func TestLedgerService_ListAndReset(t *testing.T) {
	ctx := context.Background()
	kv := testutil.NewMemoryKV()
	led := ledger.New(kv, nil)
	require.NoError(t, led.Add(ctx, "owl"))
	require.NoError(t, led.Add(ctx, "cat"))

	obs := &recordingObserver{}
	svc := NewLedgerService(led, obs)
	assert.Equal(t, []string{"owl", "cat"}, svc.List(ctx))

	require.NoError(t, svc.Reset(ctx))
	assert.Empty(t, svc.List(ctx))
	assert.Empty(t, kv.Values)
	require.Len(t, obs.events, 1)
	assert.Equal(t, "reset-ledger", obs.events[0].Name)
	assert.Equal(t, 2, obs.events[0].Fields["cleared"])
}

func TestLedgerService_ResetStorageFailure(t *testing.T) {
	svc := NewLedgerService(ledger.New(testutil.FailingKV{}, nil))
	err := svc.Reset(context.Background())
	assert.ErrorIs(t, err, testutil.ErrStorageDown)
}

func TestHistoryService(t *testing.T) {
	ctx := context.Background()
	picks := repository.NewSQLitePickRepo(testutil.NewTestDB(t))
	require.NoError(t, picks.Create(ctx, testutil.NewTestPick("cat", "animals")))

	svc := NewHistoryService(picks)
	recent, err := svc.ListRecent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "cat", recent[0].Word)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestLogUseCaseObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(slog.New(slog.NewTextHandler(&buf, nil)))

	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "select-word", Success: true, Fields: map[string]any{"category": "food"}})
	obs.ObserveUseCase(context.Background(), UseCaseEvent{Name: "start-timer", Err: errors.New("boom")})

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "use_case=select-word")
	assert.Contains(t, out, "category=food")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "error=boom")

	assert.IsType(t, NoopUseCaseObserver{}, NewLogUseCaseObserver(nil))
}
