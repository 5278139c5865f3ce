package console_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/bikeshare/internal/console"
	"github.com/pkordes/bikeshare/internal/domain"
)

// stubLoader is a hand-written test double for console.DatasetLoader.
type stubLoader struct {
	load    func(ctx context.Context, f domain.Filter) (domain.Dataset, error)
	filters []domain.Filter
}

func (s *stubLoader) Load(ctx context.Context, f domain.Filter) (domain.Dataset, error) {
	s.filters = append(s.filters, f)
	return s.load(ctx, f)
}

// compile-time check: stubLoader must satisfy console.DatasetLoader.
var _ console.DatasetLoader = (*stubLoader)(nil)

// countingRecorder counts Recorder events.
type countingRecorder struct {
	sessions, failures, pages int
	reports                   []string
}

func (r *countingRecorder) ObserveReport(name string, _ time.Duration) {
	r.reports = append(r.reports, name)
}
func (r *countingRecorder) SessionStarted()                { r.sessions++ }
func (r *countingRecorder) LoadFailed()                    { r.failures++ }
func (r *countingRecorder) PageShown()                     { r.pages++ }
func (r *countingRecorder) DatasetLoaded(string, int, int) {}

var _ console.Recorder = (*countingRecorder)(nil)

// newConsole wires a Console to scripted input lines and a capture buffer.
func newConsole(loader console.DatasetLoader, rec console.Recorder, lines ...string) (*console.Console, *bytes.Buffer) {
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return console.New(in, &out, logger, loader, rec), &out
}

// numberedTrips returns n trips whose start stations are S0..S(n-1).
func numberedTrips(n int) []domain.Trip {
	trips := make([]domain.Trip, n)
	for i := range trips {
		trips[i] = domain.Trip{
			Index:        i,
			StartTime:    time.Date(2017, time.January, 2, 8, i, 0, 0, time.UTC),
			Duration:     60,
			StartStation: fmt.Sprintf("S%d", i),
			EndStation:   "End",
			UserType:     "Subscriber",
		}.WithCalendar()
	}
	return trips
}

func city(t *testing.T, name string) domain.City {
	t.Helper()
	c, err := domain.LookupCity(name)
	require.NoError(t, err)
	return c
}
