package console

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/pkordes/bikeshare/internal/domain"
	"github.com/pkordes/bikeshare/internal/service"
)

const noData = "No data available for the selected filters."

// TimeReport prints the most frequent month, weekday and start hour.
func TimeReport(w io.Writer, d domain.Dataset) {
	fmt.Fprint(w, "\nCalculating The Most Frequent Times of Travel...\n\n")

	s := service.ComputeTimeStats(d)
	if s.Rows == 0 {
		fmt.Fprintln(w, noData)
		return
	}
	fmt.Fprintf(w, "The common month was %s.\n", s.Month)
	fmt.Fprintf(w, "The most common day of the week was %s.\n", s.DayOfWeek)
	fmt.Fprintf(w, "The most common start hour was %d.\n", s.Hour)
}

// StationReport prints the most popular start station, end station and trip.
func StationReport(w io.Writer, d domain.Dataset) {
	fmt.Fprint(w, "\nCalculating The Most Popular Stations and Trip...\n\n")

	s := service.ComputeStationStats(d)
	if s.Rows == 0 {
		fmt.Fprintln(w, noData)
		return
	}
	fmt.Fprintf(w, "The most common start station was %s.\n", s.Start)
	fmt.Fprintf(w, "The most common end station was %s.\n", s.End)
	fmt.Fprintf(w, "The most common combination of start and end station trip was %s.\n", s.Trip)
}

// DurationReport prints total and mean travel time in minutes.
func DurationReport(w io.Writer, d domain.Dataset) {
	fmt.Fprint(w, "\nCalculating Trip Duration...\n\n")

	s := service.ComputeDurationStats(d)
	if s.Rows == 0 {
		fmt.Fprintln(w, noData)
		return
	}
	fmt.Fprintf(w, "Total travel time was %s minutes.\n", formatFloat(s.TotalMinutes))
	fmt.Fprintf(w, "Mean travel time was %s minutes.\n", formatFloat(s.MeanMinutes))
}

// UserReport prints user type counts and, for cities that record them,
// gender counts and birth year statistics.
func UserReport(w io.Writer, d domain.Dataset) {
	fmt.Fprint(w, "\nCalculating User Stats...\n\n")

	s := service.ComputeUserStats(d)
	if s.Rows == 0 {
		fmt.Fprintln(w, noData)
		return
	}

	fmt.Fprintln(w, "User Type values counts:")
	printCounts(w, s.UserTypes)

	if s.Schema.HasGender {
		fmt.Fprintln(w, "Gender counts:")
		printCounts(w, s.Gender)
	}

	if s.Schema.HasBirthYear {
		if s.BirthYear == nil {
			fmt.Fprintln(w, "Birth years: no data.")
			return
		}
		fmt.Fprintf(w, "Birth years:\nEarliest year: %d\nMost recent: %d\nMost common: %d\n",
			s.BirthYear.Earliest, s.BirthYear.Latest, s.BirthYear.MostCommon)
	}
}

func printCounts(w io.Writer, counts []service.Count[string]) {
	tw := tabwriter.NewWriter(w, 0, 0, 4, ' ', 0)
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%d\n", c.Value, c.N)
	}
	tw.Flush()
	fmt.Fprintln(w)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
