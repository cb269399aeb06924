package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cultural-sites-service/internal/auth"
	"github.com/cultural-sites-service/internal/pkg/errors"
	"github.com/cultural-sites-service/internal/pkg/utils"
)

const userIDKey = "userID"

// Protect gates favorite-mutating and site-mutating routes behind a
// valid bearer token. Missing, malformed, expired and badly signed
// tokens all map to the same generic 401: verification internals are
// never leaked to the caller.
func Protect(jwtManager *auth.JWTManager, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		userID, err := jwtManager.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			logger.Debug("Token rejected", zap.String("path", c.Path()), zap.Error(err))
			return utils.SendError(c, errors.ErrUnauthorized)
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID returns the authenticated user's ID set by Protect
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
