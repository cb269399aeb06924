package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/cultural-sites-service/internal/domain"
	"github.com/cultural-sites-service/internal/domain/repository"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	siteRepo     repository.SiteRepository
	logger       *zap.Logger
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	siteRepo repository.SiteRepository,
	logger *zap.Logger,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		siteRepo:     siteRepo,
		logger:       logger,
	}
}

// Add favorites a site for a user. The site must resolve; duplicate
// pairs are refused by the store's compound unique index, which is the
// authoritative guard (no check-then-insert).
func (uc *FavoriteUseCase) Add(ctx context.Context, userID, siteID string) (*domain.Favorite, error) {
	if _, err := uc.siteRepo.GetByID(ctx, siteID); err != nil {
		return nil, err
	}

	favorite, err := uc.favoriteRepo.Create(ctx, userID, siteID)
	if err != nil {
		return nil, err
	}

	return favorite, nil
}

func (uc *FavoriteUseCase) Remove(ctx context.Context, userID, siteID string) error {
	return uc.favoriteRepo.Delete(ctx, userID, siteID)
}

// IsFavorited - pure lookup; an absent pair is false, never an error
func (uc *FavoriteUseCase) IsFavorited(ctx context.Context, userID, siteID string) (bool, error) {
	return uc.favoriteRepo.Exists(ctx, userID, siteID)
}

// List returns the user's favorited sites joined with current site data.
// Favorites whose site was deleted are omitted by the join.
func (uc *FavoriteUseCase) List(ctx context.Context, userID string) ([]*domain.Site, error) {
	sites, err := uc.favoriteRepo.ListSites(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to list favorites", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return sites, nil
}
