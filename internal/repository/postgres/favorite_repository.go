package postgres

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/cultural-sites-service/internal/domain"
	"github.com/cultural-sites-service/internal/domain/repository"
	"github.com/cultural-sites-service/internal/pkg/errors"
)

// pgUniqueViolation is the PostgreSQL error code for a unique
// constraint violation
const pgUniqueViolation = "23505"

type favoriteRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFavoriteRepository(db *DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

// Create inserts the association. The unique (user_id, site_id) index is
// the authoritative duplicate guard; the violation error maps to the
// conflict error rather than being pre-checked.
func (r *favoriteRepository) Create(ctx context.Context, userID, siteID string) (*domain.Favorite, error) {
	query := `
		INSERT INTO favorites (user_id, site_id)
		VALUES ($1, $2)
		RETURNING created_at
	`

	favorite := &domain.Favorite{
		UserID: userID,
		SiteID: siteID,
	}

	err := r.db.QueryRowContext(ctx, query, userID, siteID).Scan(&favorite.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, errors.ErrAlreadyFavorited
		}
		r.logger.Error("Failed to create favorite",
			zap.String("user_id", userID),
			zap.String("site_id", siteID),
			zap.Error(err),
		)
		return nil, errors.ErrDatabaseError
	}

	return favorite, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, siteID string) error {
	if _, err := uuid.Parse(siteID); err != nil {
		return errors.ErrFavoriteNotFound
	}

	result, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND site_id = $2`,
		userID, siteID,
	)
	if err != nil {
		r.logger.Error("Failed to delete favorite",
			zap.String("user_id", userID),
			zap.String("site_id", siteID),
			zap.Error(err),
		)
		return errors.ErrDatabaseError
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrFavoriteNotFound
	}

	return nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, siteID string) (bool, error) {
	if _, err := uuid.Parse(siteID); err != nil {
		return false, nil
	}

	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM favorites WHERE user_id = $1 AND site_id = $2)`,
		userID, siteID,
	)
	if err != nil && err != sql.ErrNoRows {
		r.logger.Error("Failed to check favorite", zap.Error(err))
		return false, errors.ErrDatabaseError
	}

	return exists, nil
}

// ListSites joins favorites with the live site rows. Dangling favorites
// (site deleted after being favorited) drop out of the inner join.
func (r *favoriteRepository) ListSites(ctx context.Context, userID string) ([]*domain.Site, error) {
	query := `
		SELECT
			s.id, s.name, s.description, s.latitude, s.longitude, s.category,
			s.type, s.address, s.website, s.image_url, s.osm_id,
			s.opening_hours, s.wheelchair, s.phone, s.email, s.tags,
			s.created_at, s.updated_at
		FROM favorites f
		JOIN sites s ON s.id = f.site_id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list favorite sites", zap.String("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	siteRepo := &siteRepository{db: r.db, logger: r.logger}

	sites := make([]*domain.Site, 0)
	for rows.Next() {
		site, err := siteRepo.scanSite(rows)
		if err != nil {
			r.logger.Error("Failed to scan favorite site", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		sites = append(sites, site)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Favorite rows iteration failed", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return sites, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return stderrors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
