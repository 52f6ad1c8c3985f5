package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/wordpick/internal/repository"
	"github.com/alexanderramin/wordpick/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickRepo_CreateAndListRecent(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSQLitePickRepo(testutil.NewTestDB(t))

	base := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	first := testutil.NewTestPick("cat", "animals", testutil.WithPickedAt(base))
	second := testutil.NewTestPick("pizza", "food", testutil.WithPickedAt(base.Add(100*time.Millisecond)), testutil.WithAllPlay())
	third := testutil.NewTestPick("ghost", "random", testutil.WithPickedAt(base.Add(time.Second)), testutil.WithAllPlay())

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NoError(t, repo.Create(ctx, third))

	picks, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, picks, 3)
	assert.Equal(t, "ghost", picks[0].Word)
	assert.Equal(t, "pizza", picks[1].Word)
	assert.Equal(t, "cat", picks[2].Word)

	assert.Equal(t, second.ID, picks[1].ID)
	assert.Equal(t, "food", picks[1].Category)
	assert.True(t, picks[1].AllPlay)
	assert.False(t, picks[2].AllPlay)
	assert.True(t, picks[1].PickedAt.Equal(second.PickedAt))
}

func TestPickRepo_ListRecentLimit(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSQLitePickRepo(testutil.NewTestDB(t))

	base := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	for i, w := range []string{"cat", "dog", "owl"} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestPick(w, "animals",
			testutil.WithPickedAt(base.Add(time.Duration(i)*time.Minute)))))
	}

	picks, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, picks, 2)
	assert.Equal(t, "owl", picks[0].Word)
	assert.Equal(t, "dog", picks[1].Word)
}

func TestPickRepo_SameInstantKeepsInsertOrder(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSQLitePickRepo(testutil.NewTestDB(t))

	ts := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, testutil.NewTestPick("cat", "animals", testutil.WithPickedAt(ts))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestPick("dog", "animals", testutil.WithPickedAt(ts))))

	picks, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, picks, 2)
	assert.Equal(t, "dog", picks[0].Word)
}

func TestPickRepo_Count(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSQLitePickRepo(testutil.NewTestDB(t))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, repo.Create(ctx, testutil.NewTestPick("cat", "animals")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestPick("cat", "animals")))

	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "history keeps repeats")
}

func TestPickRepo_DuplicateIDRejected(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewSQLitePickRepo(testutil.NewTestDB(t))

	p := testutil.NewTestPick("cat", "animals")
	require.NoError(t, repo.Create(ctx, p))
	assert.Error(t, repo.Create(ctx, p))
}
