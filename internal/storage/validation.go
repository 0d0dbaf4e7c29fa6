// Package storage provides the SQLite-backed item catalog.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/taxform/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrInvalidItem    = errors.New("invalid item")
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return ctx.Err()
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateItems checks every item and rejects duplicate ids.
func validateItems(items []model.Item) error {
	seen := make(map[int]struct{}, len(items))
	for i, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("%w at index %d: name is required", ErrInvalidItem, i)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("%w: item id %d", ErrDuplicateEntry, item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}
