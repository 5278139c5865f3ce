package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/jackc/pgx/v5/stdlib" // registers "pgx" driver for database/sql
	"github.com/spf13/cobra"

	"github.com/pkordes/bikeshare/internal/domain"
	"github.com/pkordes/bikeshare/internal/repo"
	"github.com/pkordes/bikeshare/migrations"
)

var errNoDatabase = errors.New("no database configured: set DATABASE_URL or --database-url")

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations for the Postgres trip store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.migrate(ctx)
		},
	}
}

func newImportCmd(a *app) *cobra.Command {
	var cityName string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load city CSV files into the Postgres trip store",
		Long: `Apply migrations, then read each selected city's CSV file from the data
directory and replace that city's rows in Postgres.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return a.importCities(ctx, cityName)
		},
	}
	cmd.Flags().StringVar(&cityName, "city", "all", `city to import, or "all"`)
	return cmd
}

func (a *app) migrate(ctx context.Context) error {
	if a.cfg.DatabaseURL == "" {
		return errNoDatabase
	}

	db, err := sql.Open("pgx", a.cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	results, err := migrations.Up(ctx, db)
	if err != nil {
		return err
	}
	for _, r := range results {
		fmt.Fprintf(a.out, "applied %s\n", r.Source.Path)
	}
	a.logger.Info("migrations applied", "count", len(results))
	return nil
}

func (a *app) importCities(ctx context.Context, cityName string) error {
	cities := domain.Cities
	if cityName != domain.All {
		c, err := domain.LookupCity(cityName)
		if err != nil {
			return err
		}
		cities = []domain.City{c}
	}

	if err := a.migrate(ctx); err != nil {
		return err
	}

	pool, err := openPool(ctx, a.cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	store := repo.NewTripRepo(pool)
	files := repo.NewCSVSource(a.cfg.DataDir)
	for _, c := range cities {
		trips, err := files.Load(ctx, c)
		if err != nil {
			return err
		}
		n, err := store.ReplaceCity(ctx, c, trips)
		if err != nil {
			return err
		}
		fmt.Fprintf(a.out, "imported %d trips for %s\n", n, c.Name)
		a.logger.Info("city imported", "city", c.Name, "rows", n)
	}
	return nil
}
