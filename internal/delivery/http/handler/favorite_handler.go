package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cultural-sites-service/internal/delivery/http/middleware"
	"github.com/cultural-sites-service/internal/pkg/utils"
	"github.com/cultural-sites-service/internal/usecase"
	"github.com/cultural-sites-service/internal/usecase/dto"
)

// FavoriteHandler - handlers for the per-user favorites endpoints.
// All of them sit behind the auth middleware.
type FavoriteHandler struct {
	favoriteUC *usecase.FavoriteUseCase
	logger     *zap.Logger
}

func NewFavoriteHandler(favoriteUC *usecase.FavoriteUseCase, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: favoriteUC,
		logger:     logger,
	}
}

// GetFavorites - the user's favorited sites, joined with live site data
func (h *FavoriteHandler) GetFavorites(c *fiber.Ctx) error {
	sites, err := h.favoriteUC.List(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendList(c, sites, len(sites))
}

// AddFavorite - favorite a site
func (h *FavoriteHandler) AddFavorite(c *fiber.Ctx) error {
	favorite, err := h.favoriteUC.Add(c.Context(), middleware.UserID(c), c.Params("siteId"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.StatusCreated, favorite)
}

// RemoveFavorite - unfavorite a site
func (h *FavoriteHandler) RemoveFavorite(c *fiber.Ctx) error {
	if err := h.favoriteUC.Remove(c.Context(), middleware.UserID(c), c.Params("siteId")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, fiber.Map{})
}

// CheckFavorite - whether the user has favorited a site
func (h *FavoriteHandler) CheckFavorite(c *fiber.Ctx) error {
	isFavorited, err := h.favoriteUC.IsFavorited(c.Context(), middleware.UserID(c), c.Params("siteId"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, dto.FavoriteStatus{IsFavorited: isFavorited})
}
