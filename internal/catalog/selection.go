package catalog

import "github.com/Veraticus/taxform/internal/model"

// Selection is a set of item ids that remembers insertion order.
// The zero value is an empty selection ready to use. Mutators detach from
// storage shared with earlier copies, so a copy never observes later edits.
type Selection struct {
	members map[int]struct{}
	order   []int
}

// NewSelection returns a selection containing ids, without duplicates.
func NewSelection(ids ...int) Selection {
	var s Selection
	for _, id := range ids {
		s.add(id)
	}
	return s
}

// Clone returns an independent copy of s.
func (s Selection) Clone() Selection {
	return NewSelection(s.order...)
}

// Has reports whether id is selected.
func (s Selection) Has(id int) bool {
	_, ok := s.members[id]
	return ok
}

// Len returns the number of selected ids.
func (s Selection) Len() int {
	return len(s.order)
}

// IDs returns a copy of the selected ids in insertion order. It is never nil.
func (s Selection) IDs() []int {
	ids := make([]int, len(s.order))
	copy(ids, s.order)
	return ids
}

// Toggle flips membership of id. Ids outside the catalog are accepted.
func (s *Selection) Toggle(id int) {
	s.detach()
	if s.Has(id) {
		s.remove(id)
		return
	}
	s.add(id)
}

// ToggleCategory deselects every item of label when the whole category is
// selected, and otherwise adds the category's items to the selection.
func (s *Selection) ToggleCategory(groups Groups, label string) {
	ids := groups.ItemIDs(label)
	s.detach()
	if s.IsCategorySelected(groups, label) {
		for _, id := range ids {
			s.remove(id)
		}
		return
	}
	for _, id := range ids {
		s.add(id)
	}
}

// IsCategorySelected reports whether every item under label is selected.
// Unknown labels are never selected.
func (s Selection) IsCategorySelected(groups Groups, label string) bool {
	if !groups.Has(label) {
		return false
	}
	for _, id := range groups.ItemIDs(label) {
		if !s.Has(id) {
			return false
		}
	}
	return true
}

// SelectAll replaces the selection with every id in items.
func (s *Selection) SelectAll(items []model.Item) {
	s.Clear()
	for _, item := range items {
		s.add(item.ID)
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.members = nil
	s.order = nil
}

// detach gives s private copies of its map and order slice.
func (s *Selection) detach() {
	members := make(map[int]struct{}, len(s.order)+1)
	for _, id := range s.order {
		members[id] = struct{}{}
	}
	s.members = members
	s.order = append([]int(nil), s.order...)
}

func (s *Selection) add(id int) {
	if s.Has(id) {
		return
	}
	if s.members == nil {
		s.members = make(map[int]struct{})
	}
	s.members[id] = struct{}{}
	s.order = append(s.order, id)
}

func (s *Selection) remove(id int) {
	if !s.Has(id) {
		return
	}
	delete(s.members, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
}
