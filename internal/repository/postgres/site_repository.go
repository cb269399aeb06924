package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/cultural-sites-service/internal/domain"
	"github.com/cultural-sites-service/internal/domain/repository"
	"github.com/cultural-sites-service/internal/pkg/errors"
)

const siteColumns = `
	id, name, description, latitude, longitude, category, type,
	address, website, image_url, osm_id, opening_hours, wheelchair,
	phone, email, tags, created_at, updated_at
`

type siteRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewSiteRepository(db *DB) repository.SiteRepository {
	return &siteRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *siteRepository) Create(ctx context.Context, site *domain.Site) (*domain.Site, error) {
	query := `
		INSERT INTO sites (
			name, description, latitude, longitude, category, type,
			address, website, image_url, osm_id, opening_hours, wheelchair,
			phone, email, tags
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, created_at, updated_at
	`

	tagsJSON, err := marshalTags(site.Tags)
	if err != nil {
		r.logger.Error("Failed to marshal site tags", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	err = r.db.QueryRowContext(ctx, query,
		site.Name, site.Description, site.Latitude, site.Longitude,
		site.Category, site.Type, site.Address, site.Website, site.ImageUrl,
		site.OSMId, site.OpeningHours, site.Wheelchair, site.Phone,
		site.Email, tagsJSON,
	).Scan(&site.ID, &site.CreatedAt, &site.UpdatedAt)
	if err != nil {
		r.logger.Error("Failed to create site", zap.String("name", site.Name), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return site, nil
}

func (r *siteRepository) GetByID(ctx context.Context, id string) (*domain.Site, error) {
	// A malformed identifier can never resolve; report it as not found
	// rather than leaking a parse error
	if _, err := uuid.Parse(id); err != nil {
		return nil, errors.ErrSiteNotFound
	}

	query := `SELECT ` + siteColumns + ` FROM sites WHERE id = $1`

	site, err := r.scanSite(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrSiteNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get site by ID", zap.String("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return site, nil
}

func (r *siteRepository) GetAll(ctx context.Context) ([]*domain.Site, error) {
	query := `SELECT ` + siteColumns + ` FROM sites ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to list sites", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	sites := make([]*domain.Site, 0)
	for rows.Next() {
		site, err := r.scanSite(rows)
		if err != nil {
			r.logger.Error("Failed to scan site", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		sites = append(sites, site)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Site rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return sites, nil
}

func (r *siteRepository) Update(ctx context.Context, site *domain.Site) (*domain.Site, error) {
	query := `
		UPDATE sites SET
			name = $2, description = $3, latitude = $4, longitude = $5,
			category = $6, type = $7, address = $8, website = $9,
			image_url = $10, updated_at = now()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.db.QueryRowContext(ctx, query,
		site.ID, site.Name, site.Description, site.Latitude, site.Longitude,
		site.Category, site.Type, site.Address, site.Website, site.ImageUrl,
	).Scan(&site.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, errors.ErrSiteNotFound
	}
	if err != nil {
		r.logger.Error("Failed to update site", zap.String("id", site.ID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return site, nil
}

func (r *siteRepository) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return errors.ErrSiteNotFound
	}

	result, err := r.db.ExecContext(ctx, `DELETE FROM sites WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete site", zap.String("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrSiteNotFound
	}

	return nil
}

// ReplaceAll swaps the whole collection inside one transaction: readers
// never observe a partially imported state.
func (r *siteRepository) ReplaceAll(ctx context.Context, sites []*domain.Site) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin import transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sites`); err != nil {
		r.logger.Error("Failed to clear site collection", zap.Error(err))
		return errors.ErrDatabaseError
	}

	stmt, err := tx.PreparexContext(ctx, `
		INSERT INTO sites (
			name, description, latitude, longitude, category, type,
			address, website, image_url, osm_id, opening_hours, wheelchair,
			phone, email, tags
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`)
	if err != nil {
		r.logger.Error("Failed to prepare bulk insert", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer stmt.Close()

	for _, site := range sites {
		tagsJSON, err := marshalTags(site.Tags)
		if err != nil {
			r.logger.Error("Failed to marshal site tags", zap.String("name", site.Name), zap.Error(err))
			return errors.ErrDatabaseError
		}

		_, err = stmt.ExecContext(ctx,
			site.Name, site.Description, site.Latitude, site.Longitude,
			site.Category, site.Type, site.Address, site.Website, site.ImageUrl,
			site.OSMId, site.OpeningHours, site.Wheelchair, site.Phone,
			site.Email, tagsJSON,
		)
		if err != nil {
			r.logger.Error("Failed to insert site", zap.String("name", site.Name), zap.Error(err))
			return errors.ErrDatabaseError
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit import transaction", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *siteRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sites`); err != nil {
		r.logger.Error("Failed to delete all sites", zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *siteRepository) Stats(ctx context.Context) (*domain.SiteStats, error) {
	stats := &domain.SiteStats{
		ByCategory: make(map[string]int),
		ByType:     make(map[string]int),
	}

	if err := r.db.GetContext(ctx, &stats.TotalSites, `SELECT count(*) FROM sites`); err != nil {
		r.logger.Error("Failed to count sites", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	if err := r.countGrouped(ctx, `SELECT category, count(*) FROM sites GROUP BY category`, stats.ByCategory); err != nil {
		return nil, err
	}
	if err := r.countGrouped(ctx, `SELECT coalesce(type, 'Other'), count(*) FROM sites GROUP BY coalesce(type, 'Other')`, stats.ByType); err != nil {
		return nil, err
	}

	return stats, nil
}

func (r *siteRepository) countGrouped(ctx context.Context, query string, into map[string]int) error {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		r.logger.Error("Failed to aggregate sites", zap.Error(err))
		return errors.ErrDatabaseError
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			r.logger.Error("Failed to scan aggregate row", zap.Error(err))
			return errors.ErrDatabaseError
		}
		into[key] = count
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *siteRepository) scanSite(row rowScanner) (*domain.Site, error) {
	var site domain.Site
	var tagsJSON []byte

	err := row.Scan(
		&site.ID, &site.Name, &site.Description, &site.Latitude, &site.Longitude,
		&site.Category, &site.Type, &site.Address, &site.Website, &site.ImageUrl,
		&site.OSMId, &site.OpeningHours, &site.Wheelchair, &site.Phone,
		&site.Email, &tagsJSON, &site.CreatedAt, &site.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	// Unmarshal tags JSON if present
	if len(tagsJSON) > 0 {
		tags := make(map[string]string)
		if err := json.Unmarshal(tagsJSON, &tags); err != nil {
			r.logger.Warn("Failed to unmarshal site tags", zap.String("id", site.ID), zap.Error(err))
		} else {
			site.Tags = tags
		}
	}

	return &site, nil
}

func marshalTags(tags map[string]string) ([]byte, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	return json.Marshal(tags)
}
