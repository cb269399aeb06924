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
)

const (
	testUserID = "1b4e28ba-2fa1-11d2-883f-0016d3cca427"
	testSiteID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
)

func newFavoriteUseCase() (*usecase.FavoriteUseCase, *MockFavoriteRepository, *MockSiteRepository) {
	favoriteRepo := new(MockFavoriteRepository)
	siteRepo := new(MockSiteRepository)
	uc := usecase.NewFavoriteUseCase(favoriteRepo, siteRepo, zap.NewNop())
	return uc, favoriteRepo, siteRepo
}

func TestFavoriteAdd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, favoriteRepo, siteRepo := newFavoriteUseCase()

		siteRepo.On("GetByID", mock.Anything, testSiteID).
			Return(&domain.Site{ID: testSiteID, Name: "Cafe Central"}, nil)
		favoriteRepo.On("Create", mock.Anything, testUserID, testSiteID).
			Return(&domain.Favorite{UserID: testUserID, SiteID: testSiteID, CreatedAt: time.Now()}, nil)

		favorite, err := uc.Add(context.Background(), testUserID, testSiteID)
		require.NoError(t, err)
		assert.Equal(t, testSiteID, favorite.SiteID)
		favoriteRepo.AssertExpectations(t)
	})

	t.Run("site not found", func(t *testing.T) {
		uc, favoriteRepo, siteRepo := newFavoriteUseCase()

		siteRepo.On("GetByID", mock.Anything, testSiteID).Return(nil, errors.ErrSiteNotFound)

		_, err := uc.Add(context.Background(), testUserID, testSiteID)
		assert.ErrorIs(t, err, errors.ErrSiteNotFound)
		favoriteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate pair", func(t *testing.T) {
		uc, favoriteRepo, siteRepo := newFavoriteUseCase()

		siteRepo.On("GetByID", mock.Anything, testSiteID).
			Return(&domain.Site{ID: testSiteID}, nil)
		favoriteRepo.On("Create", mock.Anything, testUserID, testSiteID).
			Return(nil, errors.ErrAlreadyFavorited)

		_, err := uc.Add(context.Background(), testUserID, testSiteID)
		assert.ErrorIs(t, err, errors.ErrAlreadyFavorited)
	})
}

func TestFavoriteRemove(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc, favoriteRepo, _ := newFavoriteUseCase()
		favoriteRepo.On("Delete", mock.Anything, testUserID, testSiteID).Return(nil)

		assert.NoError(t, uc.Remove(context.Background(), testUserID, testSiteID))
	})

	t.Run("absent pair", func(t *testing.T) {
		uc, favoriteRepo, _ := newFavoriteUseCase()
		favoriteRepo.On("Delete", mock.Anything, testUserID, testSiteID).
			Return(errors.ErrFavoriteNotFound)

		err := uc.Remove(context.Background(), testUserID, testSiteID)
		assert.ErrorIs(t, err, errors.ErrFavoriteNotFound)
	})
}

func TestFavoriteIsFavorited(t *testing.T) {
	uc, favoriteRepo, _ := newFavoriteUseCase()
	favoriteRepo.On("Exists", mock.Anything, testUserID, testSiteID).Return(false, nil)

	favorited, err := uc.IsFavorited(context.Background(), testUserID, testSiteID)
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestFavoriteList(t *testing.T) {
	uc, favoriteRepo, _ := newFavoriteUseCase()

	sites := []*domain.Site{
		{ID: testSiteID, Name: "Cafe Central"},
	}
	favoriteRepo.On("ListSites", mock.Anything, testUserID).Return(sites, nil)

	got, err := uc.List(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Cafe Central", got[0].Name)
}
