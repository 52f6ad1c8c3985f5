package domain

import "fmt"

// RandomCategoryID is the reserved category whose words are always All Play.
const RandomCategoryID = "random"

type Category struct {
	ID    string
	Color Color
	Words []string
}

// Pool maps category IDs to categories. Order holds the category IDs in
// document order so eligible words enumerate deterministically.
type Pool struct {
	categories map[string]*Category
	order      []string
}

// NewPool builds a Pool from categories in the given order. Category IDs must
// be unique and non-empty, and colors must come from the palette.
func NewPool(categories []Category) (*Pool, error) {
	p := &Pool{categories: make(map[string]*Category, len(categories))}
	for i := range categories {
		c := categories[i]
		if c.ID == "" {
			return nil, fmt.Errorf("%w: category %d has no id", ErrInvalidPool, i)
		}
		if _, dup := p.categories[c.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate category %q", ErrInvalidPool, c.ID)
		}
		if !c.Color.Valid() {
			return nil, fmt.Errorf("%w: category %q has unknown color %q", ErrInvalidPool, c.ID, c.Color)
		}
		words := make([]string, len(c.Words))
		copy(words, c.Words)
		c.Words = words
		p.categories[c.ID] = &c
		p.order = append(p.order, c.ID)
	}
	return p, nil
}

// Category returns the category with the given ID.
func (p *Pool) Category(id string) (Category, bool) {
	c, ok := p.categories[id]
	if !ok {
		return Category{}, false
	}
	return *c, true
}

// Categories returns all categories in document order.
func (p *Pool) Categories() []Category {
	out := make([]Category, 0, len(p.order))
	for _, id := range p.order {
		out = append(out, *p.categories[id])
	}
	return out
}

// TotalWords counts every (category, word) pair in the pool.
func (p *Pool) TotalWords() int {
	n := 0
	for _, c := range p.categories {
		n += len(c.Words)
	}
	return n
}
