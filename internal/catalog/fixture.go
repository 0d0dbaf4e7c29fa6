package catalog

import (
	"context"

	"github.com/Veraticus/taxform/internal/model"
)

func category(name string) *model.ItemCategory {
	return &model.ItemCategory{Name: name}
}

// fixtureItems mirrors the mock item API response the form was designed against.
var fixtureItems = []model.Item{
	{ID: 14864, Name: "Tasty Fresh Bracelet", Category: category("Bracelets")},
	{ID: 14865, Name: "Intelligent Metal Bracelet", Category: category("Bracelets")},
	{ID: 14866, Name: "Handcrafted Silver Bracelet", Category: category("Bracelets")},
	{ID: 14867, Name: "Jasmine Stud Earrings", Category: category("Earrings")},
	{ID: 14868, Name: "Ergonomic Gold Hoops", Category: category("Earrings")},
	{ID: 14869, Name: "Gift Card"},
	{ID: 14870, Name: "Refined Rubber Bracelet", Category: category("Bracelets")},
	{ID: 14871, Name: "Sleek Pearl Drops", Category: category("Earrings")},
	{ID: 14872, Name: "Polishing Cloth", Category: &model.ItemCategory{}},
	{ID: 14873, Name: "Oval Pendant Necklace", Category: category("Necklaces")},
	{ID: 14874, Name: "Layered Chain Necklace", Category: category("Necklaces")},
	{ID: 14875, Name: "Gift Wrapping"},
}

// Fixture returns a copy of the static mock catalog.
func Fixture() []model.Item {
	items := make([]model.Item, len(fixtureItems))
	copy(items, fixtureItems)
	return items
}

// FixtureSource serves the static mock catalog.
type FixtureSource struct{}

// Items returns the fixture catalog.
func (FixtureSource) Items(_ context.Context) ([]model.Item, error) {
	return Fixture(), nil
}
