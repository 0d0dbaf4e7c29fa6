package catalog

import (
	"context"
	"fmt"

	"github.com/Veraticus/taxform/internal/common"
	"github.com/Veraticus/taxform/internal/model"
	"github.com/Veraticus/taxform/internal/service"
	"github.com/Veraticus/taxform/internal/storage"
)

// Options selects where the catalog is loaded from.
type Options struct {
	Source string
	Path   string
}

// Load reads the whole catalog once from the configured source.
func Load(ctx context.Context, opts Options) ([]model.Item, error) {
	switch opts.Source {
	case SourceFixture, "":
		return FixtureSource{}.Items(ctx)

	case SourceFile:
		if opts.Path == "" {
			return nil, fmt.Errorf("%w: catalog.path is required for the file source", common.ErrMissingConfig)
		}
		return FileSource{Path: opts.Path}.Items(ctx)

	case SourceSQLite:
		if opts.Path == "" {
			return nil, fmt.Errorf("%w: catalog.path is required for the sqlite source", common.ErrMissingConfig)
		}
		store, err := storage.NewSQLiteStorage(opts.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", common.ErrCatalogUnavailable, err)
		}
		defer store.Close()

		if err := store.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("failed to prepare catalog database: %w", err)
		}
		return itemsFrom(ctx, store)

	default:
		return nil, fmt.Errorf("%w: unknown catalog source %q", common.ErrInvalidConfig, opts.Source)
	}
}

func itemsFrom(ctx context.Context, src service.CatalogSource) ([]model.Item, error) {
	items, err := src.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return items, nil
}
