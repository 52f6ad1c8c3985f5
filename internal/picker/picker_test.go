package picker_test

import (
	"math/rand/v2"
	"testing"

	"github.com/alexanderramin/wordpick/internal/domain"
	"github.com/alexanderramin/wordpick/internal/picker"
	"github.com/alexanderramin/wordpick/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type usedSet map[string]bool

func (u usedSet) Contains(w string) bool { return u[w] }

func TestSelect_CatDogScenario(t *testing.T) {
	pool := testutil.NewTestPool(t)
	rng := &testutil.ScriptedRand{Ints: []int{1, 0}, Floats: []float64{0.5, 0.5}}
	used := usedSet{}

	sel, err := picker.Select(pool, used, rng)
	require.NoError(t, err)
	assert.Equal(t, domain.Selection{Category: "animals", Word: "dog"}, sel)

	used["dog"] = true
	sel, err = picker.Select(pool, used, rng)
	require.NoError(t, err)
	assert.Equal(t, "cat", sel.Word)
	assert.False(t, sel.AllPlay)

	used["cat"] = true
	_, err = picker.Select(pool, used, rng)
	assert.ErrorIs(t, err, domain.ErrExhausted)
}

func TestSelect_ExhaustedConsumesNoRandomness(t *testing.T) {
	pool := testutil.NewTestPool(t)
	rng := &testutil.ScriptedRand{}

	_, err := picker.Select(pool, usedSet{"cat": true, "dog": true}, rng)
	require.ErrorIs(t, err, domain.ErrExhausted)
	assert.Zero(t, rng.IntCalls)
	assert.Zero(t, rng.FloatCalls)
}

func TestSelect_EmptyPool(t *testing.T) {
	pool, err := domain.NewPool(nil)
	require.NoError(t, err)

	_, err = picker.Select(pool, usedSet{}, &testutil.ScriptedRand{})
	assert.ErrorIs(t, err, domain.ErrExhausted)
}

func TestSelect_AllPlayThreshold(t *testing.T) {
	pool := testutil.NewTestPool(t)

	tests := []struct {
		name    string
		draw    float64
		allPlay bool
	}{
		{"below", 0.19, true},
		{"zero", 0, true},
		{"at threshold", 0.20, false},
		{"above", 0.75, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &testutil.ScriptedRand{Floats: []float64{tt.draw}}
			sel, err := picker.Select(pool, usedSet{}, rng)
			require.NoError(t, err)
			assert.Equal(t, tt.allPlay, sel.AllPlay)
			assert.Equal(t, 1, rng.FloatCalls)
		})
	}
}

func TestSelect_RandomCategoryAlwaysAllPlay(t *testing.T) {
	pool := testutil.NewTestPool(t,
		testutil.WithCategory(domain.RandomCategoryID, domain.ColorGray, "banana"),
	)
	rng := &testutil.ScriptedRand{Floats: []float64{0.99}}

	sel, err := picker.Select(pool, usedSet{}, rng)
	require.NoError(t, err)
	assert.Equal(t, "banana", sel.Word)
	assert.True(t, sel.AllPlay)
	assert.Equal(t, 1, rng.IntCalls)
	assert.Zero(t, rng.FloatCalls, "random category must not draw for All Play")
}

func TestSelect_IndexesEligibleInDocumentOrder(t *testing.T) {
	pool := testutil.NewTestPool(t,
		testutil.WithCategory("animals", domain.ColorBlue, "cat", "dog"),
		testutil.WithCategory("food", domain.ColorRed, "pizza", "taco"),
	)
	used := usedSet{"dog": true}

	// eligible: cat, pizza, taco
	want := []string{"cat", "pizza", "taco"}
	for i, w := range want {
		rng := &testutil.ScriptedRand{Ints: []int{i}}
		sel, err := picker.Select(pool, used, rng)
		require.NoError(t, err)
		assert.Equal(t, w, sel.Word)
	}
}

func TestSelect_NeverReturnsUsedWord(t *testing.T) {
	pool := testutil.NewTestPool(t,
		testutil.WithCategory("animals", domain.ColorBlue, "cat", "dog", "owl"),
		testutil.WithCategory("food", domain.ColorRed, "pizza", "taco"),
		testutil.WithCategory(domain.RandomCategoryID, domain.ColorGray, "ghost"),
	)
	rng := rand.New(rand.NewPCG(7, 11))
	used := usedSet{}

	for range pool.TotalWords() {
		sel, err := picker.Select(pool, used, rng)
		require.NoError(t, err)
		require.False(t, used[sel.Word], "word %q drawn twice", sel.Word)
		used[sel.Word] = true
	}
	_, err := picker.Select(pool, used, rng)
	assert.ErrorIs(t, err, domain.ErrExhausted)
}

func TestSelect_SharedWordExcludedEverywhere(t *testing.T) {
	pool := testutil.NewTestPool(t,
		testutil.WithCategory("animals", domain.ColorBlue, "bat"),
		testutil.WithCategory("sports", domain.ColorGreen, "bat", "ball"),
	)

	eligible := picker.Eligible(pool, usedSet{"bat": true})
	assert.Equal(t, []picker.Candidate{{Category: "sports", Word: "ball"}}, eligible)
	assert.Equal(t, 1, picker.CountEligible(pool, usedSet{"bat": true}))
	assert.Equal(t, 3, picker.CountEligible(pool, usedSet{}))
}
