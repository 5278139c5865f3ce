// Package domain contains the core data types for the bikeshare explorer.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, console).
package domain

import "time"

// Trip is a single bikeshare trip row.
// Gender and BirthYear are only populated for cities whose Schema provides
// them; an empty Gender or nil BirthYear also marks a blank cell in the source.
type Trip struct {
	// Index is the zero-based position of the row in its source.
	Index        int
	StartTime    time.Time
	EndTime      *time.Time // nil when the source has no end timestamp
	Duration     float64    // seconds; NaN when the cell was blank
	StartStation string
	EndStation   string
	UserType     string
	Gender       string
	BirthYear    *int

	// Derived from StartTime by WithCalendar.
	Month     time.Month
	DayOfWeek string
}

// WithCalendar returns a copy of t with Month and DayOfWeek derived from StartTime.
func (t Trip) WithCalendar() Trip {
	t.Month = t.StartTime.Month()
	t.DayOfWeek = t.StartTime.Weekday().String()
	return t
}

// Dataset is the ordered row set of one city together with its schema.
// A filtered Dataset is the Filtered View every report and the paginator read.
type Dataset struct {
	City  City
	Trips []Trip
	// Unfiltered is the row count of the city before the filter was applied.
	Unfiltered int
}

// Schema is shorthand for d.City.Schema.
func (d Dataset) Schema() Schema {
	return d.City.Schema
}

// Len returns the number of rows in the dataset.
func (d Dataset) Len() int {
	return len(d.Trips)
}
