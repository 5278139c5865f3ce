package service

import (
	"math"
	"time"

	"github.com/pkordes/bikeshare/internal/domain"
)

// TimeStats holds the most frequent times of travel. Fields are only
// meaningful when Rows > 0.
type TimeStats struct {
	Rows      int
	Month     time.Month
	DayOfWeek string
	Hour      int
}

// ComputeTimeStats returns the modal month, weekday and start hour.
func ComputeTimeStats(d domain.Dataset) TimeStats {
	months := make([]time.Month, len(d.Trips))
	days := make([]string, len(d.Trips))
	hours := make([]int, len(d.Trips))
	for i, t := range d.Trips {
		months[i] = t.Month
		days[i] = t.DayOfWeek
		hours[i] = t.StartTime.Hour()
	}

	s := TimeStats{Rows: len(d.Trips)}
	s.Month, _ = Mode(months)
	s.DayOfWeek, _ = Mode(days)
	s.Hour, _ = Mode(hours)
	return s
}

// StationStats holds the most popular stations and station pair.
type StationStats struct {
	Rows  int
	Start string
	End   string
	// Trip is "<start> and <end>" for the most frequent pair.
	Trip string
}

// ComputeStationStats returns the modal start station, end station and
// start/end combination. The combination is built in a local slice; d is
// not modified.
func ComputeStationStats(d domain.Dataset) StationStats {
	starts := make([]string, len(d.Trips))
	ends := make([]string, len(d.Trips))
	pairs := make([]string, len(d.Trips))
	for i, t := range d.Trips {
		starts[i] = t.StartStation
		ends[i] = t.EndStation
		pairs[i] = t.StartStation + " and " + t.EndStation
	}

	s := StationStats{Rows: len(d.Trips)}
	s.Start, _ = Mode(starts)
	s.End, _ = Mode(ends)
	s.Trip, _ = Mode(pairs)
	return s
}

// DurationStats holds total and mean trip duration in minutes.
type DurationStats struct {
	Rows         int
	TotalMinutes float64
	MeanMinutes  float64
}

// ComputeDurationStats sums trip durations and converts seconds to minutes.
// Blank (NaN) durations are left out of both the total and the mean.
// MeanMinutes is 0 when no trip has a duration.
func ComputeDurationStats(d domain.Dataset) DurationStats {
	var (
		total float64
		n     int
	)
	for _, t := range d.Trips {
		if math.IsNaN(t.Duration) {
			continue
		}
		total += t.Duration
		n++
	}

	s := DurationStats{Rows: len(d.Trips), TotalMinutes: total / 60}
	if n > 0 {
		s.MeanMinutes = total / float64(n) / 60
	}
	return s
}

// BirthYearStats summarises the non-blank birth years of a view.
type BirthYearStats struct {
	Earliest   int
	Latest     int
	MostCommon int
}

// UserStats holds the user demographics of a view.
// Gender and BirthYear are only computed when Schema provides the column;
// BirthYear is also nil when every birth year cell is blank.
type UserStats struct {
	Rows      int
	Schema    domain.Schema
	UserTypes []Count[string]
	Gender    []Count[string]
	BirthYear *BirthYearStats
}

// ComputeUserStats counts user types and, where the city schema allows,
// genders and birth years. Blank cells are left out of every count.
func ComputeUserStats(d domain.Dataset) UserStats {
	s := UserStats{Rows: len(d.Trips), Schema: d.Schema()}

	var userTypes, genders []string
	var years []int
	for _, t := range d.Trips {
		if t.UserType != "" {
			userTypes = append(userTypes, t.UserType)
		}
		if s.Schema.HasGender && t.Gender != "" {
			genders = append(genders, t.Gender)
		}
		if s.Schema.HasBirthYear && t.BirthYear != nil {
			years = append(years, *t.BirthYear)
		}
	}

	s.UserTypes = ValueCounts(userTypes)
	if s.Schema.HasGender {
		s.Gender = ValueCounts(genders)
	}
	if mostCommon, ok := Mode(years); ok {
		b := BirthYearStats{Earliest: years[0], Latest: years[0], MostCommon: mostCommon}
		for _, y := range years[1:] {
			b.Earliest = min(b.Earliest, y)
			b.Latest = max(b.Latest, y)
		}
		s.BirthYear = &b
	}
	return s
}
