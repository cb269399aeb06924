package usecase

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/cultural-sites-service/internal/domain"
	"github.com/cultural-sites-service/internal/domain/repository"
	"github.com/cultural-sites-service/internal/pkg/errors"
	"github.com/cultural-sites-service/internal/pkg/utils"
	"github.com/cultural-sites-service/internal/usecase/dto"
)

type SiteUseCase struct {
	siteRepo  repository.SiteRepository
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewSiteUseCase(
	siteRepo repository.SiteRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *SiteUseCase {
	return &SiteUseCase{
		siteRepo:  siteRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// GetAll returns the full site listing, served from cache when possible.
// Cache failures degrade to the store, never to an error.
func (uc *SiteUseCase) GetAll(ctx context.Context) ([]*domain.Site, error) {
	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.GetSites(ctx)
		if err != nil {
			uc.logger.Warn("Sites cache read failed", zap.Error(err))
		} else if cached != nil {
			return cached, nil
		}
	}

	sites, err := uc.siteRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("Failed to list sites", zap.Error(err))
		return nil, err
	}

	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetSites(ctx, sites, uc.cacheTTL); err != nil {
			uc.logger.Warn("Sites cache write failed", zap.Error(err))
		}
	}

	return sites, nil
}

func (uc *SiteUseCase) GetByID(ctx context.Context, id string) (*domain.Site, error) {
	return uc.siteRepo.GetByID(ctx, id)
}

func (uc *SiteUseCase) Create(ctx context.Context, req dto.CreateSiteRequest) (*domain.Site, error) {
	site := &domain.Site{
		Name:        req.Name,
		Description: req.Description,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Category:    req.Category,
		Type:        req.Type,
		Address:     req.Address,
		Website:     req.Website,
		ImageUrl:    req.ImageUrl,
	}

	created, err := uc.siteRepo.Create(ctx, site)
	if err != nil {
		uc.logger.Error("Failed to create site", zap.String("name", req.Name), zap.Error(err))
		return nil, err
	}

	uc.invalidateCache(ctx)
	return created, nil
}

func (uc *SiteUseCase) Update(ctx context.Context, id string, req dto.UpdateSiteRequest) (*domain.Site, error) {
	site, err := uc.siteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		site.Name = *req.Name
	}
	if req.Description != nil {
		site.Description = *req.Description
	}
	if req.Latitude != nil {
		site.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		site.Longitude = *req.Longitude
	}
	if req.Category != nil {
		site.Category = *req.Category
	}
	if req.Type != nil {
		site.Type = req.Type
	}
	if req.Address != nil {
		site.Address = req.Address
	}
	if req.Website != nil {
		site.Website = req.Website
	}
	if req.ImageUrl != nil {
		site.ImageUrl = req.ImageUrl
	}

	updated, err := uc.siteRepo.Update(ctx, site)
	if err != nil {
		uc.logger.Error("Failed to update site", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	uc.invalidateCache(ctx)
	return updated, nil
}

// Delete removes a site. Favorites referencing it are left dangling and
// filtered out at read time.
func (uc *SiteUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.siteRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidateCache(ctx)
	return nil
}

// Nearby returns sites within radiusKm of the given point, sorted by
// haversine distance ascending.
func (uc *SiteUseCase) Nearby(ctx context.Context, lat, lon, radiusKm float64) ([]dto.SiteWithDistance, error) {
	if !utils.ValidateCoordinates(lat, lon) {
		return nil, errors.ErrInvalidCoordinates
	}
	if !utils.ValidateRadius(radiusKm) {
		return nil, errors.ErrInvalidRadius
	}

	sites, err := uc.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.SiteWithDistance, 0)
	for _, site := range sites {
		distance := utils.HaversineDistance(lat, lon, site.Latitude, site.Longitude)
		if distance <= radiusKm {
			result = append(result, dto.SiteWithDistance{
				Site:       site,
				DistanceKm: distance,
			})
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].DistanceKm < result[j].DistanceKm
	})

	return result, nil
}

func (uc *SiteUseCase) Stats(ctx context.Context) (*domain.SiteStats, error) {
	stats, err := uc.siteRepo.Stats(ctx)
	if err != nil {
		uc.logger.Error("Failed to aggregate site stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}

func (uc *SiteUseCase) invalidateCache(ctx context.Context) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.InvalidateSites(ctx); err != nil {
		uc.logger.Warn("Sites cache invalidation failed", zap.Error(err))
	}
}
