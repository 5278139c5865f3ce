// Package service contains the business logic of the bikeshare explorer:
// loading and filtering a city's trips and computing the report statistics.
// No I/O lives here: the loader depends on the repo.TripSource interface
// and the statistics are pure functions over a domain.Dataset.
package service

import (
	"context"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pkordes/bikeshare/internal/domain"
	"github.com/pkordes/bikeshare/internal/repo"
)

// DatasetService builds the Filtered View for a Filter.
type DatasetService struct {
	source repo.TripSource
}

// NewDatasetService constructs a DatasetService reading from src.
func NewDatasetService(src repo.TripSource) *DatasetService {
	return &DatasetService{source: src}
}

// Load reads every row of the filter's city, derives month and weekday and
// keeps only the rows matching the month and day selection.
// Any source error is fatal and returned wrapped; an empty result is not an error.
func (s *DatasetService) Load(ctx context.Context, f domain.Filter) (domain.Dataset, error) {
	trips, err := s.source.Load(ctx, f.City)
	if err != nil {
		return domain.Dataset{}, fmt.Errorf("service.DatasetService.Load: %w", err)
	}

	for i := range trips {
		trips[i] = trips[i].WithCalendar()
	}

	return domain.Dataset{
		City:       f.City,
		Trips:      FilterTrips(trips, f.Month, f.Day),
		Unfiltered: len(trips),
	}, nil
}

// FilterTrips returns the trips whose derived month and weekday match month
// and day. domain.All disables the corresponding constraint. Input order is
// preserved; with both set to domain.All the input slice is returned as is.
func FilterTrips(trips []domain.Trip, month, day string) []domain.Trip {
	if month == domain.All && day == domain.All {
		return trips
	}

	wantMonth := domain.MonthNumber(month)
	wantDay := cases.Title(language.English).String(day)

	out := make([]domain.Trip, 0, len(trips))
	for _, t := range trips {
		if month != domain.All && int(t.Month) != wantMonth {
			continue
		}
		if day != domain.All && t.DayOfWeek != wantDay {
			continue
		}
		out = append(out, t)
	}
	return out
}
