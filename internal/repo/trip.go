package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/bikeshare/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, *pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test.
type db interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// TripRepo is the Postgres-backed trip store. It is a TripSource for the
// explorer and the sink for `bikeshare import`.
type TripRepo interface {
	TripSource

	// ReplaceCity deletes every stored row of city and bulk-inserts trips in
	// one transaction. Returns the number of rows copied.
	ReplaceCity(ctx context.Context, city domain.City, trips []domain.Trip) (int64, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// tripColumns is the column order used by both Load and ReplaceCity.
var tripColumns = []string{
	"city", "source_index", "start_time", "end_time", "trip_duration",
	"start_station", "end_station", "user_type", "gender", "birth_year",
}

// Load returns the stored rows of city ordered by their original position.
// Returns domain.ErrNotFound if nothing was imported for the city.
func (r *pgTripRepo) Load(ctx context.Context, city domain.City) ([]domain.Trip, error) {
	const q = `
		SELECT source_index, start_time, end_time, trip_duration,
		       start_station, end_station, user_type, gender, birth_year
		FROM trips
		WHERE city = @city
		ORDER BY source_index`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"city": city.Name})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.Load: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.Load: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.Load: rows: %w", err)
	}

	if len(trips) == 0 {
		return nil, fmt.Errorf("repo.TripRepo.Load: no trips imported for %q: %w", city.Name, domain.ErrNotFound)
	}
	return trips, nil
}

// ReplaceCity swaps the stored rows of a city for trips.
func (r *pgTripRepo) ReplaceCity(ctx context.Context, city domain.City, trips []domain.Trip) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("repo.TripRepo.ReplaceCity: begin: %w", err)
	}
	// Rollback after a successful Commit is a no-op.
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM trips WHERE city = @city`, pgx.NamedArgs{"city": city.Name}); err != nil {
		return 0, fmt.Errorf("repo.TripRepo.ReplaceCity: delete: %w", err)
	}

	n, err := tx.CopyFrom(ctx, pgx.Identifier{"trips"}, tripColumns,
		pgx.CopyFromSlice(len(trips), func(i int) ([]any, error) {
			t := trips[i]
			return []any{
				city.Name,
				int32(t.Index),
				t.StartTime,
				t.EndTime, // nil becomes NULL
				t.Duration,
				t.StartStation,
				t.EndStation,
				t.UserType,
				nullableText(t.Gender),
				t.BirthYear,
			}, nil
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("repo.TripRepo.ReplaceCity: copy: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("repo.TripRepo.ReplaceCity: commit: %w", err)
	}
	return n, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.Trip, handling the
// nullable end_time, gender and birth_year columns.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t         domain.Trip
		index     int32
		start     pgtype.Timestamp
		end       pgtype.Timestamp
		gender    pgtype.Text
		birthYear pgtype.Int4
	)

	err := s.Scan(&index, &start, &end, &t.Duration,
		&t.StartStation, &t.EndStation, &t.UserType, &gender, &birthYear)
	if err != nil {
		return domain.Trip{}, err
	}

	t.Index = int(index)
	t.StartTime = start.Time
	if end.Valid {
		e := end.Time
		t.EndTime = &e
	}
	if gender.Valid {
		t.Gender = gender.String
	}
	if birthYear.Valid {
		y := int(birthYear.Int32)
		t.BirthYear = &y
	}
	return t, nil
}

func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
