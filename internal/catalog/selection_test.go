package catalog

import (
	"testing"

	"github.com/Veraticus/taxform/internal/model"
	"github.com/stretchr/testify/assert"
)

func testCatalog() []model.Item {
	return []model.Item{
		item(1, "Bread", "Food"),
		item(2, "Cheese", "Food"),
		item(3, "Pen", "Office"),
		item(4, "Gift Card", ""),
	}
}

func TestSelection_ZeroValue(t *testing.T) {
	var s Selection

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(1))
	assert.NotNil(t, s.IDs())
	assert.Empty(t, s.IDs())
}

func TestSelection_Toggle(t *testing.T) {
	s := NewSelection(1, 3)

	s.Toggle(2)
	assert.Equal(t, []int{1, 3, 2}, s.IDs())

	s.Toggle(3)
	assert.Equal(t, []int{1, 2}, s.IDs())

	// Ids outside the catalog are accepted.
	s.Toggle(999)
	assert.True(t, s.Has(999))
}

func TestSelection_ToggleTwiceRestores(t *testing.T) {
	for _, id := range []int{1, 2, 3, 4, 42} {
		s := NewSelection(1, 4)
		before := s.IDs()

		s.Toggle(id)
		s.Toggle(id)

		assert.ElementsMatch(t, before, s.IDs(), "toggling %d twice should restore the selection", id)
	}
}

func TestNewSelection_Dedupes(t *testing.T) {
	s := NewSelection(2, 2, 1, 2)
	assert.Equal(t, []int{2, 1}, s.IDs())
}

func TestSelection_Clone(t *testing.T) {
	s := NewSelection(1, 2)
	c := s.Clone()

	c.Toggle(3)
	s.Toggle(1)

	assert.Equal(t, []int{2}, s.IDs())
	assert.Equal(t, []int{1, 2, 3}, c.IDs())
}

func TestSelection_CopiesStayConsistent(t *testing.T) {
	groups := GroupByCategory(testCatalog())
	a := NewSelection(1, 3)

	b := a
	b.Toggle(9)
	b.Toggle(1)
	assert.False(t, a.Has(9))
	assert.True(t, a.Has(1))
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, []int{1, 3}, a.IDs())
	assert.Equal(t, []int{3, 9}, b.IDs())

	c := a
	c.ToggleCategory(groups, "Food")
	assert.False(t, a.Has(2))
	assert.Equal(t, []int{1, 3}, a.IDs())
	assert.Equal(t, []int{1, 3, 2}, c.IDs())
}

func TestSelection_ToggleCategory(t *testing.T) {
	groups := GroupByCategory(testCatalog())

	tests := []struct {
		name  string
		label string
		start []int
		want  []int
	}{
		{
			name:  "empty selection selects whole category",
			label: "Food",
			start: nil,
			want:  []int{1, 2},
		},
		{
			name:  "partial selection completes the category",
			label: "Food",
			start: []int{2},
			want:  []int{2, 1},
		},
		{
			name:  "union keeps other categories",
			label: "Food",
			start: []int{3, 4},
			want:  []int{3, 4, 1, 2},
		},
		{
			name:  "fully selected category is removed",
			label: "Food",
			start: []int{1, 3, 2},
			want:  []int{3},
		},
		{
			name:  "uncategorized bucket",
			label: UncategorizedLabel,
			start: []int{1},
			want:  []int{1, 4},
		},
		{
			name:  "unknown label is a no-op",
			label: "Garden",
			start: []int{1},
			want:  []int{1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelection(tt.start...)
			s.ToggleCategory(groups, tt.label)
			assert.Equal(t, tt.want, s.IDs())
		})
	}
}

func TestSelection_ToggleCategoryProperties(t *testing.T) {
	groups := GroupByCategory(testCatalog())

	for _, label := range groups.Labels() {
		s := NewSelection(3)
		if !s.IsCategorySelected(groups, label) {
			s.ToggleCategory(groups, label)
			for _, id := range groups.ItemIDs(label) {
				assert.True(t, s.Has(id), "%s: item %d should be selected", label, id)
			}
		}

		assert.True(t, s.IsCategorySelected(groups, label))
		s.ToggleCategory(groups, label)
		for _, id := range groups.ItemIDs(label) {
			assert.False(t, s.Has(id), "%s: item %d should be deselected", label, id)
		}
	}
}

func TestSelection_IsCategorySelected(t *testing.T) {
	groups := GroupByCategory(testCatalog())

	s := NewSelection(1)
	assert.False(t, s.IsCategorySelected(groups, "Food"))

	s.Toggle(2)
	assert.True(t, s.IsCategorySelected(groups, "Food"))
	assert.False(t, s.IsCategorySelected(groups, "Office"))
	assert.False(t, s.IsCategorySelected(groups, "Garden"))

	// The predicate follows the selection without any cached state.
	s.Toggle(1)
	assert.False(t, s.IsCategorySelected(groups, "Food"))
}

func TestSelection_SelectAllAndClear(t *testing.T) {
	items := testCatalog()
	s := NewSelection(99)

	s.SelectAll(items)
	assert.Equal(t, []int{1, 2, 3, 4}, s.IDs())

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Has(1))
}
