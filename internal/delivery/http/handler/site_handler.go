package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cultural-sites-service/internal/pkg/errors"
	"github.com/cultural-sites-service/internal/pkg/utils"
	"github.com/cultural-sites-service/internal/pkg/validator"
	"github.com/cultural-sites-service/internal/usecase"
	"github.com/cultural-sites-service/internal/usecase/dto"
)

// SiteHandler - handlers for cultural site endpoints
type SiteHandler struct {
	siteUC *usecase.SiteUseCase
	logger *zap.Logger
}

func NewSiteHandler(siteUC *usecase.SiteUseCase, logger *zap.Logger) *SiteHandler {
	return &SiteHandler{
		siteUC: siteUC,
		logger: logger,
	}
}

// GetSites - full site listing
func (h *SiteHandler) GetSites(c *fiber.Ctx) error {
	sites, err := h.siteUC.GetAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendList(c, sites, len(sites))
}

// GetSite - single site by identifier
func (h *SiteHandler) GetSite(c *fiber.Ctx) error {
	site, err := h.siteUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, site)
}

// CreateSite - create a site (auth required)
func (h *SiteHandler) CreateSite(c *fiber.Ctx) error {
	var req dto.CreateSiteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.NewValidation("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	site, err := h.siteUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.StatusCreated, site)
}

// UpdateSite - partial update of a site (auth required)
func (h *SiteHandler) UpdateSite(c *fiber.Ctx) error {
	var req dto.UpdateSiteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.NewValidation("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	site, err := h.siteUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, site)
}

// DeleteSite - delete a site (auth required)
func (h *SiteHandler) DeleteSite(c *fiber.Ctx) error {
	if err := h.siteUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, fiber.Map{})
}

// GetNearbySites - sites within a radius of a point, sorted by distance.
// lat and lon are required; a missing or unparsable coordinate is a 400,
// never silently treated as (0, 0).
func (h *SiteHandler) GetNearbySites(c *fiber.Ctx) error {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}
	radiusKm := c.QueryFloat("radius_km", 2)

	sites, err := h.siteUC.Nearby(c.Context(), lat, lon, radiusKm)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendList(c, sites, len(sites))
}

// GetStats - aggregate counts by category and type
func (h *SiteHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.siteUC.Stats(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, stats)
}
