// Package metrics keeps Prometheus counters and histograms for explorer
// sessions on a private registry. There is no scrape endpoint; the registry
// is written to a node-exporter style textfile on exit.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds the explorer's metrics and the registry they live on.
type Collector struct {
	reg *prometheus.Registry

	Sessions     prometheus.Counter
	LoadFailures prometheus.Counter
	PagesShown   prometheus.Counter

	RowsLoaded   *prometheus.CounterVec // city label; rows before filtering
	RowsFiltered *prometheus.CounterVec // city label; rows in the Filtered View

	ReportDuration *prometheus.HistogramVec // report label: time|station|duration|user
}

// NewCollector creates every metric and registers it on a fresh registry.
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		Sessions: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bikeshare_sessions_total",
			Help: "Total explorer sessions started.",
		}),
		LoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bikeshare_load_failures_total",
			Help: "Total dataset loads that failed.",
		}),
		PagesShown: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bikeshare_pages_shown_total",
			Help: "Total raw-data windows printed by the paginator.",
		}),
		RowsLoaded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bikeshare_rows_loaded_total",
			Help: "Trip rows read from the source, before filtering.",
		}, []string{"city"}),
		RowsFiltered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bikeshare_rows_filtered_total",
			Help: "Trip rows kept by the month/day filter.",
		}, []string{"city"}),
		ReportDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bikeshare_report_duration_seconds",
			Help:    "Time spent computing and printing a statistics report.",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 15),
		}, []string{"report"}),
	}

	reg.MustRegister(
		c.Sessions, c.LoadFailures, c.PagesShown,
		c.RowsLoaded, c.RowsFiltered, c.ReportDuration,
	)
	return c
}

// Gatherer exposes the private registry, mainly for tests.
func (c *Collector) Gatherer() prometheus.Gatherer { return c.reg }

// WriteFile writes every metric to path in the Prometheus text format.
func (c *Collector) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, c.reg)
}

// SessionStarted counts a session whose filter was collected.
func (c *Collector) SessionStarted() { c.Sessions.Inc() }

// LoadFailed counts a dataset load that returned an error.
func (c *Collector) LoadFailed() { c.LoadFailures.Inc() }

// PageShown counts one printed window of raw rows.
func (c *Collector) PageShown() { c.PagesShown.Inc() }

// DatasetLoaded adds the row counts before and after filtering for city.
func (c *Collector) DatasetLoaded(city string, unfiltered, filtered int) {
	c.RowsLoaded.WithLabelValues(city).Add(float64(unfiltered))
	c.RowsFiltered.WithLabelValues(city).Add(float64(filtered))
}

// ObserveReport records how long the named report took.
func (c *Collector) ObserveReport(report string, d time.Duration) {
	c.ReportDuration.WithLabelValues(report).Observe(d.Seconds())
}
