package catalog

import (
	"strings"

	"github.com/Veraticus/taxform/internal/model"
)

// Filter returns the items whose name contains query, ignoring case.
// An empty query returns items unchanged.
func Filter(items []model.Item, query string) []model.Item {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return items
	}

	var matched []model.Item
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), query) {
			matched = append(matched, item)
		}
	}
	return matched
}
