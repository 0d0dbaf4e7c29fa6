// Package service defines the collaborator interfaces the form depends on.
package service

import (
	"context"

	"github.com/Veraticus/taxform/internal/model"
)

// CatalogSource supplies the ordered item catalog at load time.
type CatalogSource interface {
	Items(ctx context.Context) ([]model.Item, error)
}

// SubmissionSink receives exactly one payload per successful validated submit.
type SubmissionSink interface {
	Submit(ctx context.Context, submission model.TaxSubmission) error
}
