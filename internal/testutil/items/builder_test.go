package items_test

import (
	"testing"

	"github.com/Veraticus/taxform/internal/testutil"
	"github.com/Veraticus/taxform/internal/testutil/items"
)

func TestBuilder_SequentialIDs(t *testing.T) {
	b := items.NewBuilder().
		WithCategory("Rings", "Gold Band", "Silver Band").
		WithUncategorized("Gift Card")

	got := b.Build()
	if len(got) != 3 {
		t.Fatalf("expected 3 items, got %d", len(got))
	}

	wantIDs := []int{100, 101, 102}
	for i, id := range b.IDs() {
		if id != wantIDs[i] {
			t.Errorf("item %d: expected id %d, got %d", i, wantIDs[i], id)
		}
	}
	if got[0].Category == nil || got[0].Category.Name != "Rings" {
		t.Errorf("expected first item in Rings, got %+v", got[0].Category)
	}
	if got[2].Category != nil {
		t.Errorf("expected Gift Card to be uncategorized, got %+v", got[2].Category)
	}
}

func TestBuilder_WithItemAdvancesCounter(t *testing.T) {
	got := items.NewBuilder().
		StartingAt(1).
		WithItem(items.NewBuilder().StartingAt(50).WithUncategorized("Pin").Build()[0]).
		WithUncategorized("Clasp").
		Build()

	if got[1].ID != 51 {
		t.Errorf("expected id 51 after an explicit item, got %d", got[1].ID)
	}
}

func TestSetupCatalogDB(t *testing.T) {
	seed := items.NewBuilder().
		WithCategory("Necklaces", "Pendant").
		WithUncategorized("Gift Wrapping").
		Build()

	db := testutil.SetupCatalogDB(t, seed)

	got := db.MustItems(t)
	if len(got) != len(seed) {
		t.Fatalf("expected %d items, got %d", len(seed), len(got))
	}
	for i := range seed {
		if got[i].ID != seed[i].ID || got[i].Name != seed[i].Name {
			t.Errorf("item %d: expected %+v, got %+v", i, seed[i], got[i])
		}
	}
	if db.Path == "" {
		t.Error("expected a database path")
	}
}
