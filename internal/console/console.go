// Package console implements the interactive terminal surface of the
// explorer: the filter prompts, the statistics reports, the raw-row
// paginator and the session loop that ties them together.
// All methods hang off Console, which owns the input and output streams.
package console

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/pkordes/bikeshare/internal/domain"
	"github.com/pkordes/bikeshare/internal/middleware"
)

// DatasetLoader builds the Filtered View for a filter.
type DatasetLoader interface {
	Load(ctx context.Context, f domain.Filter) (domain.Dataset, error)
}

// Recorder receives session events for metrics. *metrics.Collector satisfies it.
type Recorder interface {
	middleware.Observer
	SessionStarted()
	LoadFailed()
	PageShown()
	DatasetLoaded(city string, unfiltered, filtered int)
}

// namedReport pairs a report with the name it is logged under.
type namedReport struct {
	name string
	run  middleware.Report
}

// Console runs explorer sessions over a line-oriented input stream.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	log      *slog.Logger
	datasets DatasetLoader
	rec      Recorder
	reports  []namedReport
}

// New constructs a Console reading answers from in and printing to out.
// rec may be nil when metrics are not wanted.
func New(in io.Reader, out io.Writer, log *slog.Logger, datasets DatasetLoader, rec Recorder) *Console {
	if rec == nil {
		rec = nopRecorder{}
	}
	timed := middleware.NewReportTimer(log, rec)

	c := &Console{
		in:       bufio.NewReader(in),
		out:      out,
		log:      log,
		datasets: datasets,
		rec:      rec,
	}
	// Fixed order: time, station, duration, user.
	for _, r := range []namedReport{
		{"time", TimeReport},
		{"station", StationReport},
		{"duration", DurationReport},
		{"user", UserReport},
	} {
		c.reports = append(c.reports, namedReport{name: r.name, run: timed(r.name, r.run)})
	}
	return c
}

type nopRecorder struct{}

func (nopRecorder) ObserveReport(string, time.Duration) {}
func (nopRecorder) SessionStarted()                     {}
func (nopRecorder) LoadFailed()                         {}
func (nopRecorder) PageShown()                          {}
func (nopRecorder) DatasetLoaded(string, int, int)      {}
