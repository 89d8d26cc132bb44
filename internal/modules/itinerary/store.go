// README: Saved-itinerary store backed by PostgreSQL; day plans are kept as JSONB.
package itinerary

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("itinerary not found")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the itineraries table if it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS itineraries (
			id TEXT PRIMARY KEY,
			trip_title TEXT NOT NULL,
			total_estimated_cost TEXT NOT NULL,
			city TEXT NOT NULL,
			country TEXT NOT NULL,
			days JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	return err
}

func (s *Store) Save(ctx context.Context, it *Itinerary) error {
	days, err := json.Marshal(it.Days)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO itineraries (id, trip_title, total_estimated_cost, city, country, days, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`,
		it.ID, it.TripTitle, it.TotalEstimatedCost,
		it.Location.City, it.Location.Country, days, time.Now().UTC(),
	)
	return err
}

func (s *Store) Get(ctx context.Context, id string) (*Itinerary, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, trip_title, total_estimated_cost, city, country, days
		FROM itineraries
		WHERE id = $1`, id,
	)

	var it Itinerary
	var days []byte
	err := row.Scan(&it.ID, &it.TripTitle, &it.TotalEstimatedCost,
		&it.Location.City, &it.Location.Country, &days)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(days, &it.Days); err != nil {
		return nil, err
	}
	return &it, nil
}

// List returns saved itineraries in save order, oldest first.
func (s *Store) List(ctx context.Context) ([]*Itinerary, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, trip_title, total_estimated_cost, city, country, days
		FROM itineraries
		ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*Itinerary
	for rows.Next() {
		var it Itinerary
		var days []byte
		if err := rows.Scan(&it.ID, &it.TripTitle, &it.TotalEstimatedCost,
			&it.Location.City, &it.Location.Country, &days); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(days, &it.Days); err != nil {
			return nil, err
		}
		list = append(list, &it)
	}
	return list, rows.Err()
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM itineraries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
