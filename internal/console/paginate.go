package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/pkordes/bikeshare/internal/domain"
)

const (
	pagePrompt  = "\nDo you want to see the next 5 rows of data? Enter yes or no.\n"
	endOfTable  = "Reached end of table, restarting."
	timeDisplay = "2006-01-02 15:04:05"
)

// Paginate shows the view five rows at a time for as long as the answer is
// "yes". After the last window it announces the end of the table and starts
// again from the first row. Any other answer returns.
func (c *Console) Paginate(d domain.Dataset) error {
	cur := domain.NewCursor()
	for {
		more, err := c.askYes(pagePrompt)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}

		lo, hi, wrapped := cur.Next(d.Len())
		if hi > lo {
			printRows(c.out, d.Schema(), d.Trips[lo:hi])
			c.rec.PageShown()
		}
		if wrapped {
			fmt.Fprintln(c.out, endOfTable)
		}
	}
}

// printRows writes trips as an aligned table headed by the source column names.
func printRows(w io.Writer, schema domain.Schema, trips []domain.Trip) {
	header := []string{"", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}
	if schema.HasGender {
		header = append(header, "Gender")
	}
	if schema.HasBirthYear {
		header = append(header, "Birth Year")
	}
	header = append(header, "month", "day_of_week")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, t := range trips {
		row := []string{
			strconv.Itoa(t.Index),
			t.StartTime.Format(timeDisplay),
			formatEnd(t),
			formatFloat(t.Duration),
			t.StartStation,
			t.EndStation,
			t.UserType,
		}
		if schema.HasGender {
			row = append(row, orNaN(t.Gender))
		}
		if schema.HasBirthYear {
			year := ""
			if t.BirthYear != nil {
				year = strconv.Itoa(*t.BirthYear)
			}
			row = append(row, orNaN(year))
		}
		row = append(row, strconv.Itoa(int(t.Month)), t.DayOfWeek)
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

func formatEnd(t domain.Trip) string {
	if t.EndTime == nil {
		return "NaN"
	}
	return t.EndTime.Format(timeDisplay)
}

func orNaN(s string) string {
	if s == "" {
		return "NaN"
	}
	return s
}
