// Package repo contains all trip data access for the bikeshare explorer.
// A TripSource yields the raw rows of one city; the CSV implementation reads
// the per-city files and the Postgres implementation reads imported rows.
// No filtering or statistics live here, only I/O and type mapping.
package repo

import (
	"context"

	"github.com/pkordes/bikeshare/internal/domain"
)

// TripSource loads every trip row of a city in source order.
// Calendar fields are not derived here; the loader does that.
type TripSource interface {
	// Load returns all rows for city.
	// Returns domain.ErrNotFound if the city has no backing rows and
	// domain.ErrValidation if any row cannot be parsed.
	Load(ctx context.Context, city domain.City) ([]domain.Trip, error)
}
