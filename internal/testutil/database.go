// Package testutil provides shared test fixtures for catalog databases.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Veraticus/taxform/internal/model"
	"github.com/Veraticus/taxform/internal/storage"
)

// CatalogDB is a migrated, seeded catalog database on disk.
type CatalogDB struct {
	Storage *storage.SQLiteStorage
	Path    string
	Items   []model.Item
}

// SetupCatalogDB creates a catalog database in a temporary directory and seeds
// it with items. The file outlives Storage so callers can reopen it by path.
//
// Example:
//
//	db := testutil.SetupCatalogDB(t, items.NewBuilder().
//		WithCategory("Rings", "Gold Band", "Silver Band").
//		WithUncategorized("Gift Card").
//		Build())
func SetupCatalogDB(t *testing.T, seed []model.Item) *CatalogDB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.db")
	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	if len(seed) > 0 {
		if err := store.ImportItems(ctx, seed); err != nil {
			t.Fatalf("failed to seed items: %v", err)
		}
	}

	t.Cleanup(func() {
		store.Close()
	})

	return &CatalogDB{
		Storage: store,
		Path:    path,
		Items:   seed,
	}
}

// MustItems reads the catalog back or fails the test.
func (db *CatalogDB) MustItems(t *testing.T) []model.Item {
	t.Helper()

	got, err := db.Storage.Items(context.Background())
	if err != nil {
		t.Fatalf("failed to read items: %v", err)
	}
	return got
}
