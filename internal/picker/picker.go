// Package picker draws words from a pool without replacement.
//
// Selection is a pure function of the pool, the set of used words and the
// injected random source; recording the drawn word is the caller's job.
package picker

import (
	"github.com/alexanderramin/wordpick/internal/domain"
	"github.com/samber/lo"
)

// AllPlayChance is the probability that a word outside the random category
// is flagged All Play.
const AllPlayChance = 0.20

// Rand is the random source used for drawing. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Membership reports whether a word has already been shown.
type Membership interface {
	Contains(word string) bool
}

// Candidate is one eligible (category, word) pair.
type Candidate struct {
	Category string
	Word     string
}

// Eligible lists every pool word not in used, in category document order
// then word order.
func Eligible(pool *domain.Pool, used Membership) []Candidate {
	return lo.FlatMap(pool.Categories(), func(c domain.Category, _ int) []Candidate {
		return lo.FilterMap(c.Words, func(w string, _ int) (Candidate, bool) {
			return Candidate{Category: c.ID, Word: w}, !used.Contains(w)
		})
	})
}

// CountEligible returns len(Eligible(pool, used)) without allocating the list.
func CountEligible(pool *domain.Pool, used Membership) int {
	n := 0
	for _, c := range pool.Categories() {
		n += lo.CountBy(c.Words, func(w string) bool { return !used.Contains(w) })
	}
	return n
}

// Select draws one eligible pair uniformly at random. It returns
// domain.ErrExhausted when nothing is eligible.
//
// The random category forces All Play before the All Play draw, so a pick
// from it consumes exactly one random value.
func Select(pool *domain.Pool, used Membership, rng Rand) (domain.Selection, error) {
	eligible := Eligible(pool, used)
	if len(eligible) == 0 {
		return domain.Selection{}, domain.ErrExhausted
	}

	picked := eligible[rng.IntN(len(eligible))]
	sel := domain.Selection{Category: picked.Category, Word: picked.Word}
	if picked.Category == domain.RandomCategoryID {
		sel.AllPlay = true
	} else {
		sel.AllPlay = rng.Float64() < AllPlayChance
	}
	return sel, nil
}
