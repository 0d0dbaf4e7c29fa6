package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/Veraticus/taxform/internal/common"
	"github.com/Veraticus/taxform/internal/model"
)

// Source kinds accepted by catalog.source.
const (
	SourceFixture = "fixture"
	SourceFile    = "file"
	SourceSQLite  = "sqlite"
)

// FileSource reads the catalog from a JSON array shaped like the item API response.
type FileSource struct {
	Path string
}

// Items reads and decodes the catalog file.
func (f FileSource) Items(ctx context.Context) ([]model.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.Path) // #nosec G304 - path comes from user configuration
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read catalog file: %w", common.ErrCatalogUnavailable, err)
	}

	items, err := DecodeItems(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode catalog file %s: %w", f.Path, err)
	}

	slog.Debug("loaded catalog file", "path", f.Path, "count", len(items))
	return items, nil
}

// DecodeItems parses a JSON item list.
func DecodeItems(data []byte) ([]model.Item, error) {
	var items []model.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}
