package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Veraticus/taxform/internal/model"
)

// Items returns the catalog in stored order. Items without a category carry a nil Category.
func (s *SQLiteStorage) Items(ctx context.Context) ([]model.Item, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT i.id, i.name, c.name
		FROM items i
		LEFT JOIN categories c ON c.id = i.category_id
		ORDER BY i.position, i.id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		var (
			item         model.Item
			categoryName sql.NullString
		)
		if err := rows.Scan(&item.ID, &item.Name, &categoryName); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		if categoryName.Valid {
			item.Category = &model.ItemCategory{Name: categoryName.String}
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	slog.Debug("retrieved catalog items", "count", len(items))
	return items, nil
}

// ImportItems replaces the catalog with items, keeping their order.
func (s *SQLiteStorage) ImportItems(ctx context.Context, items []model.Item) error {
	if err := validateItems(items); err != nil {
		return err
	}

	tx, err := s.beginTx(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, query := range []string{`DELETE FROM items`, `DELETE FROM categories`} {
		if _, err := tx.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to clear catalog: %w", err)
		}
	}

	categoryIDs := make(map[string]int64)
	for pos, item := range items {
		var categoryID sql.NullInt64
		if name := item.CategoryName(); name != "" {
			id, ok := categoryIDs[name]
			if !ok {
				res, err := tx.ExecContext(ctx, `INSERT INTO categories (name) VALUES (?)`, name)
				if err != nil {
					return fmt.Errorf("failed to insert category %q: %w", name, err)
				}
				if id, err = res.LastInsertId(); err != nil {
					return fmt.Errorf("failed to read category id: %w", err)
				}
				categoryIDs[name] = id
			}
			categoryID = sql.NullInt64{Int64: id, Valid: true}
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO items (id, name, category_id, position) VALUES (?, ?, ?, ?)`,
			item.ID, item.Name, categoryID, pos,
		); err != nil {
			return fmt.Errorf("failed to insert item %d: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit catalog import: %w", err)
	}

	slog.Info("imported catalog", "items", len(items), "categories", len(categoryIDs))
	return nil
}
