package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cultural-sites-service/internal/delivery/http/handler"
	"github.com/cultural-sites-service/internal/domain"
	"github.com/cultural-sites-service/internal/pkg/errors"
	"github.com/cultural-sites-service/internal/usecase"
)

// stubSiteRepository serves a fixed listing; mutations are not exercised
// by these handler tests.
type stubSiteRepository struct {
	sites []*domain.Site
}

func (s *stubSiteRepository) Create(ctx context.Context, site *domain.Site) (*domain.Site, error) {
	return site, nil
}

func (s *stubSiteRepository) GetByID(ctx context.Context, id string) (*domain.Site, error) {
	return nil, errors.ErrSiteNotFound
}

func (s *stubSiteRepository) GetAll(ctx context.Context) ([]*domain.Site, error) {
	return s.sites, nil
}

func (s *stubSiteRepository) Update(ctx context.Context, site *domain.Site) (*domain.Site, error) {
	return site, nil
}

func (s *stubSiteRepository) Delete(ctx context.Context, id string) error {
	return nil
}

func (s *stubSiteRepository) ReplaceAll(ctx context.Context, sites []*domain.Site) error {
	return nil
}

func (s *stubSiteRepository) DeleteAll(ctx context.Context) error {
	return nil
}

func (s *stubSiteRepository) Stats(ctx context.Context) (*domain.SiteStats, error) {
	return &domain.SiteStats{TotalSites: len(s.sites)}, nil
}

func nearbyApp(sites []*domain.Site) *fiber.App {
	uc := usecase.NewSiteUseCase(&stubSiteRepository{sites: sites}, nil, zap.NewNop(), time.Minute)
	h := handler.NewSiteHandler(uc, zap.NewNop())

	app := fiber.New()
	app.Get("/api/sites/nearby", h.GetNearbySites)
	return app
}

func TestGetNearbySites_CoordinateValidation(t *testing.T) {
	sites := []*domain.Site{
		{ID: "near", Name: "Opernhaus", Latitude: 50.8357, Longitude: 12.9200},
	}

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{"no parameters", "/api/sites/nearby", http.StatusBadRequest},
		{"missing lon", "/api/sites/nearby?lat=50.83", http.StatusBadRequest},
		{"missing lat", "/api/sites/nearby?lon=12.92", http.StatusBadRequest},
		{"unparsable lat", "/api/sites/nearby?lat=north&lon=12.92", http.StatusBadRequest},
		{"out of range lat", "/api/sites/nearby?lat=91&lon=12.92", http.StatusBadRequest},
		{"valid point", "/api/sites/nearby?lat=50.8357&lon=12.9200", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := nearbyApp(sites)

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, tt.target, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestGetNearbySites_ReturnsSortedListing(t *testing.T) {
	sites := []*domain.Site{
		{ID: "mid", Name: "Schlossteich", Latitude: 50.8420, Longitude: 12.9180},
		{ID: "near", Name: "Opernhaus", Latitude: 50.8357, Longitude: 12.9200},
	}
	app := nearbyApp(sites)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/sites/nearby?lat=50.8357&lon=12.9200&radius_km=2", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Count   int  `json:"count"`
		Data    []struct {
			ID         string  `json:"id"`
			DistanceKm float64 `json:"distance_km"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.True(t, body.Success)
	require.Equal(t, 2, body.Count)
	assert.Equal(t, "near", body.Data[0].ID)
	assert.Equal(t, "mid", body.Data[1].ID)
	assert.Less(t, body.Data[0].DistanceKm, body.Data[1].DistanceKm)
}
