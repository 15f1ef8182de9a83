package repository

import (
	"context"
	"errors"
	"fmt"

	"venue-recommender/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the repository interface for PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// TopVenues returns up to limit venues for the given cluster, most visited
// first. Ranking is precomputed at data-preparation time; this only reads it.
func (r *Repository) TopVenues(ctx context.Context, clusterID int, limit int) ([]models.Venue, error) {
	sql := `
		SELECT
			cluster_id,
			visit_count,
			latitude,
			longitude,
			name,
			COALESCE(external_link, '') AS external_link
		FROM venues
		WHERE cluster_id = $1
		ORDER BY visit_count DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, sql, clusterID, limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query venues: %w", err)
	}
	defer rows.Close()

	var venues []models.Venue
	for rows.Next() {
		var v models.Venue
		err := rows.Scan(
			&v.ClusterID,
			&v.VisitCount,
			&v.Latitude,
			&v.Longitude,
			&v.Name,
			&v.ExternalLink,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan venue: %w", err)
		}
		venues = append(venues, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return venues, nil
}

// SetVenueLink caches an external reference link on the venue row for a
// cluster. The write is an idempotent overwrite keyed by cluster id.
func (r *Repository) SetVenueLink(ctx context.Context, clusterID int, link string) error {
	sql := `UPDATE venues SET external_link = $2 WHERE cluster_id = $1`

	tag, err := r.db.Exec(ctx, sql, clusterID, link)
	if err != nil {
		return fmt.Errorf("repository: failed to update venue link: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repository: no venue for cluster %d: %w", clusterID, models.ErrVenueNotFound)
	}

	return nil
}

// GetModel fetches the serialized clustering model blob stored under the
// given model name.
func (r *Repository) GetModel(ctx context.Context, name string) ([]byte, error) {
	sql := `SELECT model FROM cluster_models WHERE name = $1`

	var blob []byte
	err := r.db.QueryRow(ctx, sql, name).Scan(&blob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repository: no model named %q: %w", name, models.ErrModelUnavailable)
		}
		return nil, fmt.Errorf("repository: failed to fetch model: %w", err)
	}

	return blob, nil
}
