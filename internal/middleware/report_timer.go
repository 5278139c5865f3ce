// Package middleware provides wrappers around the explorer's report steps.
package middleware

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/pkordes/bikeshare/internal/domain"
)

// Report renders one statistics report for a view to w.
type Report func(w io.Writer, d domain.Dataset)

// Observer receives the elapsed time of every finished report.
type Observer interface {
	ObserveReport(report string, d time.Duration)
}

// NewReportTimer returns a wrapper that times a report, prints the
// "This took N seconds." footer and separator rule after it, logs one
// structured line and forwards the duration to obs (which may be nil).
func NewReportTimer(log *slog.Logger, obs Observer) func(name string, next Report) Report {
	return func(name string, next Report) Report {
		return func(w io.Writer, d domain.Dataset) {
			start := time.Now()

			next(w, d)

			elapsed := time.Since(start)
			fmt.Fprintf(w, "\nThis took %s seconds.\n", strconv.FormatFloat(elapsed.Seconds(), 'f', -1, 64))
			fmt.Fprintln(w, strings.Repeat("-", 40))

			log.Info("report finished",
				"report", name,
				"city", d.City.Name,
				"rows", d.Len(),
				"duration_ms", elapsed.Milliseconds(),
			)
			if obs != nil {
				obs.ObserveReport(name, elapsed)
			}
		}
	}
}
