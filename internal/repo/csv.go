package repo

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pkordes/bikeshare/internal/domain"
)

// Column names of the city CSV files.
const (
	colStartTime    = "Start Time"
	colEndTime      = "End Time"
	colDuration     = "Trip Duration"
	colStartStation = "Start Station"
	colEndStation   = "End Station"
	colUserType     = "User Type"
	colGender       = "Gender"
	colBirthYear    = "Birth Year"
)

// timeLayouts are tried in order when parsing timestamp cells.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
}

// csvSource reads trips from <dir>/<city.File>.
type csvSource struct {
	dir string
}

// NewCSVSource constructs a TripSource reading the city CSV files in dir.
func NewCSVSource(dir string) TripSource {
	return &csvSource{dir: dir}
}

// Load opens the city's CSV file and parses every row.
func (s *csvSource) Load(_ context.Context, city domain.City) ([]domain.Trip, error) {
	path := filepath.Join(s.dir, city.File)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("repo.csvSource.Load: %s: %w", path, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("repo.csvSource.Load: %w", err)
	}
	defer f.Close()

	trips, err := ReadTrips(f, city.Schema)
	if err != nil {
		return nil, fmt.Errorf("repo.csvSource.Load: %s: %w", path, err)
	}
	return trips, nil
}

// ReadTrips parses a city CSV stream. The header row must name every
// required column plus the optional columns schema declares; other columns
// (such as the unnamed leading index) are ignored.
func ReadTrips(r io.Reader, schema domain.Schema) ([]domain.Trip, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	// Rows may stop early when their trailing cells are blank.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", domain.ErrValidation)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := mapColumns(header, schema)
	if err != nil {
		return nil, err
	}

	var trips []domain.Trip
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(trips)+1, err)
		}
		t, err := cols.trip(rec, schema)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", len(trips)+1, err)
		}
		t.Index = len(trips)
		trips = append(trips, t)
	}
	return trips, nil
}

// columns holds the header position of each known column; -1 when absent.
type columns struct {
	start, end, duration, startStation, endStation, userType, gender, birthYear int
}

func mapColumns(header []string, schema domain.Schema) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		pos[strings.TrimSpace(h)] = i
	}
	find := func(name string) int {
		if i, ok := pos[name]; ok {
			return i
		}
		return -1
	}

	c := columns{
		start:        find(colStartTime),
		end:          find(colEndTime),
		duration:     find(colDuration),
		startStation: find(colStartStation),
		endStation:   find(colEndStation),
		userType:     find(colUserType),
		gender:       find(colGender),
		birthYear:    find(colBirthYear),
	}

	required := map[string]int{
		colStartTime:    c.start,
		colDuration:     c.duration,
		colStartStation: c.startStation,
		colEndStation:   c.endStation,
		colUserType:     c.userType,
	}
	if schema.HasGender {
		required[colGender] = c.gender
	}
	if schema.HasBirthYear {
		required[colBirthYear] = c.birthYear
	}
	var missing []string
	for name, i := range required {
		if i < 0 {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		slices.Sort(missing)
		return columns{}, fmt.Errorf("%w: missing columns %s", domain.ErrValidation, strings.Join(missing, ", "))
	}
	return c, nil
}

func (c columns) trip(rec []string, schema domain.Schema) (domain.Trip, error) {
	cell := func(i int) string {
		if i < 0 || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	start, err := parseTime(cell(c.start))
	if err != nil {
		return domain.Trip{}, err
	}
	duration := math.NaN()
	if v := cell(c.duration); v != "" {
		duration, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("%w: trip duration %q", domain.ErrValidation, v)
		}
	}

	t := domain.Trip{
		StartTime:    start,
		Duration:     duration,
		StartStation: cell(c.startStation),
		EndStation:   cell(c.endStation),
		UserType:     cell(c.userType),
	}
	if v := cell(c.end); v != "" {
		end, err := parseTime(v)
		if err != nil {
			return domain.Trip{}, err
		}
		t.EndTime = &end
	}
	if schema.HasGender {
		t.Gender = cell(c.gender)
	}
	if schema.HasBirthYear {
		if v := cell(c.birthYear); v != "" {
			// Source files store years as floats ("1992.0").
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return domain.Trip{}, fmt.Errorf("%w: birth year %q", domain.ErrValidation, v)
			}
			year := int(f)
			t.BirthYear = &year
		}
	}
	return t, nil
}

func parseTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unparsable timestamp %q", domain.ErrValidation, s)
}
