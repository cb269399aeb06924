package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cultural-sites-service/internal/domain"
	"github.com/cultural-sites-service/internal/pkg/errors"
	"github.com/cultural-sites-service/internal/usecase"
	"github.com/cultural-sites-service/internal/usecase/dto"
)

func newSiteUseCase() (*usecase.SiteUseCase, *MockSiteRepository, *MockCacheRepository) {
	siteRepo := new(MockSiteRepository)
	cacheRepo := new(MockCacheRepository)
	uc := usecase.NewSiteUseCase(siteRepo, cacheRepo, zap.NewNop(), 5*time.Minute)
	return uc, siteRepo, cacheRepo
}

func TestSiteGetAll(t *testing.T) {
	sites := []*domain.Site{
		{ID: testSiteID, Name: "Cafe Central"},
	}

	t.Run("cache hit skips the store", func(t *testing.T) {
		uc, siteRepo, cacheRepo := newSiteUseCase()
		cacheRepo.On("GetSites", mock.Anything).Return(sites, nil)

		got, err := uc.GetAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, sites, got)
		siteRepo.AssertNotCalled(t, "GetAll", mock.Anything)
	})

	t.Run("cache miss populates the cache", func(t *testing.T) {
		uc, siteRepo, cacheRepo := newSiteUseCase()
		cacheRepo.On("GetSites", mock.Anything).Return(nil, nil)
		siteRepo.On("GetAll", mock.Anything).Return(sites, nil)
		cacheRepo.On("SetSites", mock.Anything, sites, 5*time.Minute).Return(nil)

		got, err := uc.GetAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, sites, got)
		cacheRepo.AssertExpectations(t)
	})

	t.Run("cache failure degrades to the store", func(t *testing.T) {
		uc, siteRepo, cacheRepo := newSiteUseCase()
		cacheRepo.On("GetSites", mock.Anything).Return(nil, errors.ErrCacheError)
		siteRepo.On("GetAll", mock.Anything).Return(sites, nil)
		cacheRepo.On("SetSites", mock.Anything, sites, mock.Anything).Return(errors.ErrCacheError)

		got, err := uc.GetAll(context.Background())
		require.NoError(t, err)
		assert.Equal(t, sites, got)
	})
}

func TestSiteUpdate_MergesChangedFieldsOnly(t *testing.T) {
	uc, siteRepo, cacheRepo := newSiteUseCase()

	existing := &domain.Site{
		ID:          testSiteID,
		Name:        "Cafe Central",
		Description: "Coffee house.",
		Latitude:    50.83,
		Longitude:   12.92,
		Category:    "Cafe",
		Type:        strPtr("Amenity"),
	}

	siteRepo.On("GetByID", mock.Anything, testSiteID).Return(existing, nil)

	var updated *domain.Site
	siteRepo.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(*domain.Site)
		}).
		Return(existing, nil)
	cacheRepo.On("InvalidateSites", mock.Anything).Return(nil)

	_, err := uc.Update(context.Background(), testSiteID, dto.UpdateSiteRequest{
		Name:     strPtr("Cafe Zentral"),
		Latitude: floatPtr(50.84),
	})
	require.NoError(t, err)

	require.NotNil(t, updated)
	assert.Equal(t, "Cafe Zentral", updated.Name)
	assert.Equal(t, 50.84, updated.Latitude)
	assert.Equal(t, "Coffee house.", updated.Description)
	assert.Equal(t, 12.92, updated.Longitude)
	cacheRepo.AssertExpectations(t)
}

func TestSiteDelete_InvalidatesCache(t *testing.T) {
	uc, siteRepo, cacheRepo := newSiteUseCase()
	siteRepo.On("Delete", mock.Anything, testSiteID).Return(nil)
	cacheRepo.On("InvalidateSites", mock.Anything).Return(nil)

	require.NoError(t, uc.Delete(context.Background(), testSiteID))
	cacheRepo.AssertExpectations(t)
}

func TestSiteNearby(t *testing.T) {
	// Theaterplatz as the search origin; one site in the center, one a
	// few hundred meters out, one in another city
	sites := []*domain.Site{
		{ID: "far", Name: "Zwinger", Latitude: 51.0530, Longitude: 13.7337},
		{ID: "near", Name: "Opernhaus", Latitude: 50.8357, Longitude: 12.9200},
		{ID: "mid", Name: "Schlossteich", Latitude: 50.8420, Longitude: 12.9180},
	}

	t.Run("filters by radius and sorts ascending", func(t *testing.T) {
		uc, siteRepo, cacheRepo := newSiteUseCase()
		cacheRepo.On("GetSites", mock.Anything).Return(nil, nil)
		siteRepo.On("GetAll", mock.Anything).Return(sites, nil)
		cacheRepo.On("SetSites", mock.Anything, mock.Anything, mock.Anything).Return(nil)

		got, err := uc.Nearby(context.Background(), 50.8357, 12.9200, 2)
		require.NoError(t, err)

		require.Len(t, got, 2)
		assert.Equal(t, "near", got[0].Site.ID)
		assert.Equal(t, "mid", got[1].Site.ID)
		assert.Less(t, got[0].DistanceKm, got[1].DistanceKm)
	})

	t.Run("invalid coordinates", func(t *testing.T) {
		uc, _, _ := newSiteUseCase()
		_, err := uc.Nearby(context.Background(), 91, 12.92, 2)
		assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)
	})

	t.Run("invalid radius", func(t *testing.T) {
		uc, _, _ := newSiteUseCase()
		_, err := uc.Nearby(context.Background(), 50.83, 12.92, -1)
		assert.ErrorIs(t, err, errors.ErrInvalidRadius)
	})
}

func TestSiteStats(t *testing.T) {
	uc, siteRepo, _ := newSiteUseCase()

	stats := &domain.SiteStats{
		TotalSites: 3,
		ByCategory: map[string]int{"Cafe": 2, "Museum": 1},
		ByType:     map[string]int{"Amenity": 2, "Tourism": 1},
	}
	siteRepo.On("Stats", mock.Anything).Return(stats, nil)

	got, err := uc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, got.TotalSites)
	assert.Equal(t, 2, got.ByCategory["Cafe"])
}
