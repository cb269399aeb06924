package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cultural-sites-service/internal/delivery/http/middleware"
	"github.com/cultural-sites-service/internal/pkg/errors"
	"github.com/cultural-sites-service/internal/pkg/utils"
	"github.com/cultural-sites-service/internal/pkg/validator"
	"github.com/cultural-sites-service/internal/usecase"
	"github.com/cultural-sites-service/internal/usecase/dto"
)

// AuthHandler - handlers for registration, login and the current user
type AuthHandler struct {
	authUC *usecase.AuthUseCase
	logger *zap.Logger
}

func NewAuthHandler(authUC *usecase.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// Register - create an account, returns a session token
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.NewValidation("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.authUC.Register(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendToken(c, fiber.StatusCreated, resp.Token, resp.User)
}

// Login - credential login, returns a session token
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.NewValidation("Invalid request body"))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	resp, err := h.authUC.Login(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendToken(c, fiber.StatusOK, resp.Token, resp.User)
}

// Me - current authenticated user
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := h.authUC.Me(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.StatusOK, user)
}
