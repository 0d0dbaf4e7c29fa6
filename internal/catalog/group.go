// Package catalog derives category groupings and selection state from the item catalog.
package catalog

import "github.com/Veraticus/taxform/internal/model"

// UncategorizedLabel is the bucket for items with no category name.
const UncategorizedLabel = "Uncategorized"

// Group is one category bucket and its items in catalog order.
type Group struct {
	Label string
	Items []model.Item
}

// Groups is an ordered partition of the catalog by category label.
// Labels appear in order of first occurrence in the source list.
type Groups struct {
	index  map[string]int
	groups []Group
}

// CategoryLabel returns the grouping label for an item.
func CategoryLabel(item model.Item) string {
	if name := item.CategoryName(); name != "" {
		return name
	}
	return UncategorizedLabel
}

// GroupByCategory partitions items by category label. It never mutates its input
// and is meant to be called again on every render rather than cached.
func GroupByCategory(items []model.Item) Groups {
	g := Groups{index: make(map[string]int)}
	for _, item := range items {
		label := CategoryLabel(item)
		i, ok := g.index[label]
		if !ok {
			i = len(g.groups)
			g.index[label] = i
			g.groups = append(g.groups, Group{Label: label})
		}
		g.groups[i].Items = append(g.groups[i].Items, item)
	}
	return g
}

// Len returns the number of groups.
func (g Groups) Len() int {
	return len(g.groups)
}

// Labels returns the group labels in display order.
func (g Groups) Labels() []string {
	labels := make([]string, len(g.groups))
	for i, grp := range g.groups {
		labels[i] = grp.Label
	}
	return labels
}

// Items returns the items under label, or nil for an unknown label.
func (g Groups) Items(label string) []model.Item {
	i, ok := g.index[label]
	if !ok {
		return nil
	}
	return g.groups[i].Items
}

// ItemIDs returns the ids of the items under label.
func (g Groups) ItemIDs(label string) []int {
	items := g.Items(label)
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}

// Has reports whether label is a known group.
func (g Groups) Has(label string) bool {
	_, ok := g.index[label]
	return ok
}

// Each calls fn for every group in display order.
func (g Groups) Each(fn func(Group)) {
	for _, grp := range g.groups {
		fn(grp)
	}
}

// Map returns the grouping as a plain label to items map.
func (g Groups) Map() map[string][]model.Item {
	m := make(map[string][]model.Item, len(g.groups))
	for _, grp := range g.groups {
		m[grp.Label] = grp.Items
	}
	return m
}
