// Package items builds item catalogs for tests.
//
//	catalog := items.NewBuilder().
//		WithCategory("Bracelets", "Silver Cuff", "Charm Bracelet").
//		WithUncategorized("Gift Card").
//		Build()
package items

import "github.com/Veraticus/taxform/internal/model"

// DefaultStartID is the id given to the first built item.
const DefaultStartID = 100

// Builder accumulates items with sequential ids.
type Builder struct {
	items  []model.Item
	nextID int
}

// NewBuilder returns a builder whose ids start at DefaultStartID.
func NewBuilder() *Builder {
	return &Builder{nextID: DefaultStartID}
}

// StartingAt sets the id of the next item.
func (b *Builder) StartingAt(id int) *Builder {
	b.nextID = id
	return b
}

// WithCategory adds one item per name under category.
func (b *Builder) WithCategory(category string, names ...string) *Builder {
	for _, name := range names {
		b.add(name, &model.ItemCategory{Name: category})
	}
	return b
}

// WithUncategorized adds items that have no category.
func (b *Builder) WithUncategorized(names ...string) *Builder {
	for _, name := range names {
		b.add(name, nil)
	}
	return b
}

// WithItem adds a fully specified item and moves the id counter past it.
func (b *Builder) WithItem(item model.Item) *Builder {
	b.items = append(b.items, item)
	if item.ID >= b.nextID {
		b.nextID = item.ID + 1
	}
	return b
}

// Build returns a copy of the accumulated items.
func (b *Builder) Build() []model.Item {
	out := make([]model.Item, len(b.items))
	copy(out, b.items)
	return out
}

// IDs returns the ids of the accumulated items in order.
func (b *Builder) IDs() []int {
	ids := make([]int, len(b.items))
	for i, item := range b.items {
		ids[i] = item.ID
	}
	return ids
}

func (b *Builder) add(name string, category *model.ItemCategory) {
	b.items = append(b.items, model.Item{ID: b.nextID, Name: name, Category: category})
	b.nextID++
}
