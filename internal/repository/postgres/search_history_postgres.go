package postgres

import (
	"context"
	"database/sql"

	"placefinder/internal/model"
	"placefinder/internal/repository"
)

// SearchHistoryPostgres is a PostgreSQL implementation of
// repository.SearchHistoryRepository. It uses database/sql with parameterized
// queries and contains no business logic.
type SearchHistoryPostgres struct {
	db *sql.DB
}

// NewSearchHistoryPostgres creates a new SearchHistoryPostgres repository.
func NewSearchHistoryPostgres(db *sql.DB) *SearchHistoryPostgres {
	return &SearchHistoryPostgres{db: db}
}

var _ repository.SearchHistoryRepository = (*SearchHistoryPostgres)(nil)

// Create inserts a new search record row and returns the stored record.
func (r *SearchHistoryPostgres) Create(ctx context.Context, rec *model.SearchRecord) (*model.SearchRecord, error) {
	const q = `
		INSERT INTO search_history (id, address, keyword, place_type, lat, lng, result_count, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, address, keyword, place_type, lat, lng, result_count, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		rec.ID,
		rec.Address,
		rec.Keyword,
		rec.PlaceType,
		rec.Lat,
		rec.Lng,
		rec.ResultCount,
		rec.CreatedAt,
	)
	var out model.SearchRecord
	if err := row.Scan(
		&out.ID,
		&out.Address,
		&out.Keyword,
		&out.PlaceType,
		&out.Lat,
		&out.Lng,
		&out.ResultCount,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// Recent returns the newest records first, bounded by limit.
func (r *SearchHistoryPostgres) Recent(ctx context.Context, limit int) ([]model.SearchRecord, error) {
	const q = `
		SELECT id, address, keyword, place_type, lat, lng, result_count, created_at
		FROM search_history
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.SearchRecord, 0)
	for rows.Next() {
		var rec model.SearchRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.Address,
			&rec.Keyword,
			&rec.PlaceType,
			&rec.Lat,
			&rec.Lng,
			&rec.ResultCount,
			&rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
