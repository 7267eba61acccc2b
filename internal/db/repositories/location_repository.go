package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// LocationRepo serves the search-form autocomplete over sqlx; these are
// hot prefix queries with no reason to go through the ORM.
type LocationRepo struct {
	db *sqlx.DB
}

// NewLocationRepo creates a new sqlx-based location repository
func NewLocationRepo(db *sqlx.DB) *LocationRepo {
	return &LocationRepo{db: db}
}

// StartLocations suggests origins matching the typed prefix.
func (r *LocationRepo) StartLocations(ctx context.Context, prefix string, limit int) ([]string, error) {
	var locations []string

	err := r.db.SelectContext(ctx, &locations,
		`SELECT DISTINCT start_location FROM flights
		 WHERE start_location ILIKE $1 || '%'
		 ORDER BY start_location
		 LIMIT $2`, prefix, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch start locations: %w", err)
	}

	return locations, nil
}

// EndLocations suggests destinations reachable from the chosen origin.
func (r *LocationRepo) EndLocations(ctx context.Context, startLocation, prefix string) ([]string, error) {
	var locations []string

	err := r.db.SelectContext(ctx, &locations,
		`SELECT DISTINCT end_location FROM flights
		 WHERE start_location = $1 AND end_location ILIKE $2 || '%'
		 ORDER BY end_location`, startLocation, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch end locations: %w", err)
	}

	return locations, nil
}
