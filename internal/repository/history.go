// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g. postgres) inside this directory.
package repository

import (
	"context"

	"placefinder/internal/model"
)

// SearchHistoryRepository persists the search query log using SQL only.
// No business logic here — strictly persistence operations.
type SearchHistoryRepository interface {
	// Create inserts a new search record. The caller provides ID and CreatedAt.
	// Returns the stored record (may include values set by the DB).
	Create(ctx context.Context, rec *model.SearchRecord) (*model.SearchRecord, error)

	// Recent returns up to limit records, newest first.
	Recent(ctx context.Context, limit int) ([]model.SearchRecord, error)
}
