// Package model defines the core domain models used throughout the application.
package model

// ItemCategory is the category reference embedded in a catalog item.
type ItemCategory struct {
	Name string `json:"name"`
}

// Item represents a catalog item a tax can apply to.
type Item struct {
	Category *ItemCategory `json:"category,omitempty"`
	Name     string        `json:"name"`
	ID       int           `json:"id"`
}

// CategoryName returns the item's category name, or "" when it has none.
func (i Item) CategoryName() string {
	if i.Category == nil {
		return ""
	}
	return i.Category.Name
}
