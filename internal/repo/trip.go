// Package repo contains the database access logic for the TripDiary
// fallback API. Trips are stored as whole JSONB documents — the server path
// mirrors the document-store semantics the client grew up with, so the two
// never disagree about shape. No business logic lives here.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/501wxrit/TripDiary-PWA/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and
// pgx.Tx. Integration tests pass a transaction that is rolled back after
// each test, giving per-test isolation without manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations the fallback API needs.
// Handlers depend on this interface, not the Postgres implementation.
type TripRepo interface {
	// List returns all trips, newest first.
	List(ctx context.Context) ([]domain.Trip, error)

	// Create stores trip as a new document. The trip id is caller-supplied.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a trip by its client-assigned id.
	// Returns domain.ErrNotFound if no such trip exists.
	GetByID(ctx context.Context, id string) (domain.Trip, error)

	// AppendEntry pushes entry onto the trip's entries array.
	// Returns domain.ErrNotFound if the trip does not exist.
	AppendEntry(ctx context.Context, tripID string, entry domain.DiaryEntry) error

	// Delete removes a trip document. Returns domain.ErrNotFound if it
	// does not exist.
	Delete(ctx context.Context, tripID string) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

func (r *pgTripRepo) List(ctx context.Context) ([]domain.Trip, error) {
	const q = `SELECT doc FROM trips ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: rows: %w", err)
	}

	return trips, nil
}

func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if trip.Entries == nil {
		trip.Entries = []domain.DiaryEntry{}
	}
	doc, err := json.Marshal(trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: encode: %w", err)
	}

	const q = `INSERT INTO trips (id, doc) VALUES (@id, @doc)`
	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": trip.ID, "doc": doc}); err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}
	return trip, nil
}

func (r *pgTripRepo) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	const q = `SELECT doc FROM trips WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	t, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return t, nil
}

func (r *pgTripRepo) AppendEntry(ctx context.Context, tripID string, entry domain.DiaryEntry) error {
	doc, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("repo.TripRepo.AppendEntry: encode: %w", err)
	}

	// COALESCE guards documents created before entries defaulted to [].
	const q = `
		UPDATE trips
		SET doc = jsonb_set(doc, '{entries}',
			COALESCE(doc->'entries', '[]'::jsonb) || @entry::jsonb)
		WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": tripID, "entry": doc})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.AppendEntry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.AppendEntry: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgTripRepo) Delete(ctx context.Context, tripID string) error {
	const q = `DELETE FROM trips WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": tripID})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip decodes one JSONB document column into a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	var doc []byte
	if err := s.Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	var t domain.Trip
	if err := json.Unmarshal(doc, &t); err != nil {
		return domain.Trip{}, fmt.Errorf("decode document: %w", err)
	}
	return t, nil
}
