package service_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/bikeshare/internal/domain"
	"github.com/pkordes/bikeshare/internal/service"
)

func intPtr(v int) *int { return &v }

func dataset(t *testing.T, city string, trips ...domain.Trip) domain.Dataset {
	t.Helper()
	c, err := domain.LookupCity(city)
	require.NoError(t, err)
	for i := range trips {
		trips[i] = trips[i].WithCalendar()
	}
	return domain.Dataset{City: c, Trips: trips, Unfiltered: len(trips)}
}

func TestComputeTimeStats(t *testing.T) {
	d := dataset(t, "chicago",
		tripAt(2017, time.March, 6, 8),  // Monday
		tripAt(2017, time.June, 3, 17),  // Saturday
		tripAt(2017, time.June, 10, 17), // Saturday
		tripAt(2017, time.March, 13, 8), // Monday
		tripAt(2017, time.June, 5, 9),   // Monday
	)

	got := service.ComputeTimeStats(d)

	assert.Equal(t, 5, got.Rows)
	assert.Equal(t, time.June, got.Month)
	assert.Equal(t, "Monday", got.DayOfWeek)
	// 8 and 17 both occur twice; 8 is seen first.
	assert.Equal(t, 8, got.Hour)
}

func TestComputeTimeStats_Empty(t *testing.T) {
	got := service.ComputeTimeStats(dataset(t, "chicago"))

	assert.Zero(t, got.Rows)
}

func TestComputeStationStats(t *testing.T) {
	mk := func(start, end string) domain.Trip {
		trip := tripAt(2017, time.January, 2, 8)
		trip.StartStation, trip.EndStation = start, end
		return trip
	}
	d := dataset(t, "washington",
		mk("A", "B"),
		mk("C", "D"),
		mk("C", "B"),
		mk("A", "B"),
		mk("C", "E"),
	)
	before := append([]domain.Trip(nil), d.Trips...)

	got := service.ComputeStationStats(d)

	assert.Equal(t, "C", got.Start)
	assert.Equal(t, "B", got.End)
	assert.Equal(t, "A and B", got.Trip)
	assert.Equal(t, before, d.Trips, "station stats must not change the view")
}

// TestComputeDurationStats checks [60, 120, 180] seconds gives 6 minutes in
// total and 2 on average.
func TestComputeDurationStats(t *testing.T) {
	var trips []domain.Trip
	for _, secs := range []float64{60, 120, 180} {
		trip := tripAt(2017, time.January, 2, 8)
		trip.Duration = secs
		trips = append(trips, trip)
	}

	got := service.ComputeDurationStats(dataset(t, "chicago", trips...))

	assert.InDelta(t, 6.0, got.TotalMinutes, 1e-9)
	assert.InDelta(t, 2.0, got.MeanMinutes, 1e-9)
}

// TestComputeDurationStats_SkipsBlankDurations checks a NaN duration counts
// toward neither the total nor the mean.
func TestComputeDurationStats_SkipsBlankDurations(t *testing.T) {
	var trips []domain.Trip
	for _, secs := range []float64{60, math.NaN(), 180} {
		trip := tripAt(2017, time.January, 2, 8)
		trip.Duration = secs
		trips = append(trips, trip)
	}

	got := service.ComputeDurationStats(dataset(t, "chicago", trips...))

	assert.Equal(t, 3, got.Rows)
	assert.InDelta(t, 4.0, got.TotalMinutes, 1e-9)
	assert.InDelta(t, 2.0, got.MeanMinutes, 1e-9)
}

func TestComputeDurationStats_AllBlank(t *testing.T) {
	trip := tripAt(2017, time.January, 2, 8)
	trip.Duration = math.NaN()

	got := service.ComputeDurationStats(dataset(t, "chicago", trip))

	assert.Zero(t, got.TotalMinutes)
	assert.Zero(t, got.MeanMinutes)
}

func TestComputeDurationStats_Empty(t *testing.T) {
	got := service.ComputeDurationStats(dataset(t, "chicago"))

	assert.Zero(t, got.Rows)
	assert.Zero(t, got.TotalMinutes)
	assert.Zero(t, got.MeanMinutes)
}

func TestComputeUserStats_WithDemographics(t *testing.T) {
	mk := func(userType, gender string, year *int) domain.Trip {
		trip := tripAt(2017, time.January, 2, 8)
		trip.UserType, trip.Gender, trip.BirthYear = userType, gender, year
		return trip
	}
	d := dataset(t, "new york city",
		mk("Subscriber", "Male", intPtr(1985)),
		mk("Customer", "", nil),
		mk("Subscriber", "Female", intPtr(1962)),
		mk("Subscriber", "Male", intPtr(1985)),
		mk("", "Female", intPtr(2001)),
	)

	got := service.ComputeUserStats(d)

	assert.Equal(t, []service.Count[string]{{Value: "Subscriber", N: 3}, {Value: "Customer", N: 1}}, got.UserTypes)
	assert.Equal(t, []service.Count[string]{{Value: "Male", N: 2}, {Value: "Female", N: 2}}, got.Gender)
	require.NotNil(t, got.BirthYear)
	assert.Equal(t, service.BirthYearStats{Earliest: 1962, Latest: 2001, MostCommon: 1985}, *got.BirthYear)
}

// TestComputeUserStats_NoDemographicsSchema checks that a city without gender
// and birth year columns yields neither sub-report, even if rows carry values.
func TestComputeUserStats_NoDemographicsSchema(t *testing.T) {
	trip := tripAt(2017, time.January, 2, 8)
	trip.Gender = "Male"
	trip.BirthYear = intPtr(1990)

	got := service.ComputeUserStats(dataset(t, "washington", trip))

	assert.Len(t, got.UserTypes, 1)
	assert.Nil(t, got.Gender)
	assert.Nil(t, got.BirthYear)
	assert.False(t, got.Schema.HasGender)
}

func TestComputeUserStats_Empty(t *testing.T) {
	got := service.ComputeUserStats(dataset(t, "chicago"))

	assert.Zero(t, got.Rows)
	assert.Empty(t, got.UserTypes)
	assert.Empty(t, got.Gender)
	assert.Nil(t, got.BirthYear)
}
