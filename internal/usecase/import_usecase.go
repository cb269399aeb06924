package usecase

import (
	"context"
	"encoding/json"
	"os"

	"go.uber.org/zap"

	"github.com/cultural-sites-service/internal/domain"
	"github.com/cultural-sites-service/internal/domain/repository"
	"github.com/cultural-sites-service/internal/pkg/errors"
	"github.com/cultural-sites-service/internal/pkg/validator"
	"github.com/cultural-sites-service/internal/usecase/dto"
)

// ImportUseCase runs the one-shot GeoJSON import pipeline: read, parse,
// normalize every feature, validate the whole candidate set and replace
// the site collection in one transaction. Not meant to run concurrently
// with itself or with live API traffic.
type ImportUseCase struct {
	siteRepo        repository.SiteRepository
	cacheRepo       repository.CacheRepository
	logger          *zap.Logger
	fallbackAddress string
}

func NewImportUseCase(
	siteRepo repository.SiteRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	fallbackAddress string,
) *ImportUseCase {
	return &ImportUseCase{
		siteRepo:        siteRepo,
		cacheRepo:       cacheRepo,
		logger:          logger,
		fallbackAddress: fallbackAddress,
	}
}

// Run imports the GeoJSON file at path. An unreadable or unparsable file
// is fatal to the run. Rejected features are counted and logged, never
// fatal. A validation failure anywhere in the batch aborts the entire
// import with every failing record reported: all-or-nothing, partial
// success is never reported as full success.
func (uc *ImportUseCase) Run(ctx context.Context, path string) (*dto.ImportResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		uc.logger.Error("Failed to read import file", zap.String("path", path), zap.Error(err))
		return nil, errors.ErrMalformedImportFile
	}

	var collection domain.FeatureCollection
	if err := json.Unmarshal(raw, &collection); err != nil {
		uc.logger.Error("Failed to parse import file", zap.String("path", path), zap.Error(err))
		return nil, errors.ErrMalformedImportFile
	}

	result := &dto.ImportResult{}
	candidates := make([]*domain.SiteCandidate, 0, len(collection.Features))

	for i, feature := range collection.Features {
		candidate, err := NormalizeFeature(feature, uc.fallbackAddress)
		if err != nil {
			result.Rejected++
			uc.logger.Debug("Skipping feature",
				zap.Int("index", i),
				zap.String("name", feature.Prop("name")),
				zap.Error(err),
			)
			continue
		}
		candidates = append(candidates, candidate)
	}

	// Validate the whole batch before touching the store
	for i, candidate := range candidates {
		if err := validator.Validate(candidate); err != nil {
			result.Errors = append(result.Errors, dto.ImportError{
				Index:   i,
				Name:    candidate.Name,
				Message: validator.FormatErrors(err),
			})
		}
	}
	if len(result.Errors) > 0 {
		uc.logger.Error("Import aborted: candidate validation failed",
			zap.Int("failing", len(result.Errors)),
			zap.Int("total", len(candidates)),
		)
		return result, errors.NewValidation("import validation failed for one or more records")
	}

	sites := make([]*domain.Site, 0, len(candidates))
	for _, candidate := range candidates {
		sites = append(sites, candidate.ToSite())
	}

	if err := uc.siteRepo.ReplaceAll(ctx, sites); err != nil {
		uc.logger.Error("Failed to replace site collection", zap.Error(err))
		return result, err
	}

	result.Imported = len(sites)
	uc.invalidateCache(ctx)

	uc.logger.Info("Import finished",
		zap.Int("features", len(collection.Features)),
		zap.Int("imported", result.Imported),
		zap.Int("rejected", result.Rejected),
	)

	return result, nil
}

// DeleteAll unconditionally clears the site collection
func (uc *ImportUseCase) DeleteAll(ctx context.Context) error {
	if err := uc.siteRepo.DeleteAll(ctx); err != nil {
		uc.logger.Error("Failed to delete sites", zap.Error(err))
		return err
	}

	uc.invalidateCache(ctx)
	uc.logger.Info("All sites deleted")
	return nil
}

func (uc *ImportUseCase) invalidateCache(ctx context.Context) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.InvalidateSites(ctx); err != nil {
		uc.logger.Warn("Sites cache invalidation failed", zap.Error(err))
	}
}
