package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/pkordes/bikeshare/internal/config"
	"github.com/pkordes/bikeshare/internal/console"
	"github.com/pkordes/bikeshare/internal/domain"
	"github.com/pkordes/bikeshare/internal/metrics"
	"github.com/pkordes/bikeshare/internal/repo"
	"github.com/pkordes/bikeshare/internal/service"
)

// app carries what every command needs once flags and env are resolved.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	var flags struct {
		dataDir, databaseURL, logLevel string
	}

	root := &cobra.Command{
		Use:   "bikeshare",
		Short: "Explore US bikeshare trip data interactively",
		Long: `Explore bikeshare trips for Chicago, New York City or Washington.

Pick a city, a month and a day of the week; the explorer prints the most
frequent travel times, the most popular stations, trip durations and user
demographics, then lets you page through the matching rows.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("data-dir") {
				cfg.DataDir = flags.dataDir
			}
			if cmd.Flags().Changed("database-url") {
				cfg.DatabaseURL = flags.databaseURL
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = strings.ToLower(flags.logLevel)
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			a.cfg = cfg
			a.logger = newLogger(cfg.LogLevel, cfg.LogFormat, errOut)
			slog.SetDefault(a.logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.explore(cmd.Context())
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&flags.dataDir, "data-dir", "", "directory holding the city CSV files (env DATA_DIR)")
	pf.StringVar(&flags.databaseURL, "database-url", "", "read trips from Postgres instead of CSV (env DATABASE_URL)")
	pf.StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error (env LOG_LEVEL)")

	root.AddCommand(newImportCmd(a), newMigrateCmd(a))
	return root
}

// explore runs interactive sessions until the user declines to restart or
// input ends.
func (a *app) explore(ctx context.Context) error {
	src, closeSource, err := a.openSource(ctx)
	if err != nil {
		return err
	}
	defer closeSource()

	rec := metrics.NewCollector()
	defer a.writeMetrics(rec)

	c := console.New(a.in, a.out, a.logger, service.NewDatasetService(src), rec)
	err = c.Run(ctx)
	if errors.Is(err, domain.ErrInputClosed) {
		a.logger.Info("input closed")
		return nil
	}
	return err
}

// openSource returns the Postgres trip repo when a database is configured and
// the CSV source otherwise, plus the matching cleanup function.
func (a *app) openSource(ctx context.Context) (repo.TripSource, func(), error) {
	if a.cfg.DatabaseURL == "" {
		a.logger.Debug("reading trips from CSV", "data_dir", a.cfg.DataDir)
		return repo.NewCSVSource(a.cfg.DataDir), func() {}, nil
	}

	pool, err := openPool(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	a.logger.Info("database connection established")
	return repo.NewTripRepo(pool), pool.Close, nil
}

func (a *app) writeMetrics(rec *metrics.Collector) {
	if a.cfg.MetricsFile == "" {
		return
	}
	if err := rec.WriteFile(a.cfg.MetricsFile); err != nil {
		a.logger.Error("failed to write metrics file", "path", a.cfg.MetricsFile, "error", err)
	}
}

// openPool creates a pgx pool and verifies the database is reachable.
func openPool(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return pool, nil
}

// newLogger builds the slog logger. Unknown levels fall back to info.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		logLevel = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: logLevel}

	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
