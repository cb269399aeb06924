package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/cultural-sites-service/internal/auth"
	"github.com/cultural-sites-service/internal/config"
	"github.com/cultural-sites-service/internal/delivery/http/handler"
	"github.com/cultural-sites-service/internal/delivery/http/middleware"
)

// Server - HTTP server based on Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	jwtManager *auth.JWTManager

	// Handlers
	siteHandler     *handler.SiteHandler
	authHandler     *handler.AuthHandler
	favoriteHandler *handler.FavoriteHandler
}

// NewServer - create a new HTTP server
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	jwtManager *auth.JWTManager,
	siteHandler *handler.SiteHandler,
	authHandler *handler.AuthHandler,
	favoriteHandler *handler.FavoriteHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Cultural Sites Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		jwtManager:      jwtManager,
		siteHandler:     siteHandler,
		authHandler:     authHandler,
		favoriteHandler: favoriteHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - middleware configuration
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - route configuration
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	protect := middleware.Protect(s.jwtManager, s.logger)

	api := s.app.Group("/api")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Site routes. Fixed paths register before the :id parameter so
	// that /nearby and /stats do not resolve as identifiers.
	sites := api.Group("/sites")
	sites.Get("/", s.siteHandler.GetSites)
	sites.Get("/nearby", s.siteHandler.GetNearbySites)
	sites.Get("/stats", s.siteHandler.GetStats)
	sites.Get("/:id", s.siteHandler.GetSite)
	sites.Post("/", protect, s.siteHandler.CreateSite)
	sites.Put("/:id", protect, s.siteHandler.UpdateSite)
	sites.Delete("/:id", protect, s.siteHandler.DeleteSite)

	// Auth routes
	authGroup := api.Group("/auth")
	authGroup.Post("/register", s.authHandler.Register)
	authGroup.Post("/login", s.authHandler.Login)
	authGroup.Get("/me", protect, s.authHandler.Me)

	// Favorite routes - every one requires a valid token
	favorites := api.Group("/favorites", protect)
	favorites.Get("/", s.favoriteHandler.GetFavorites)
	favorites.Get("/check/:siteId", s.favoriteHandler.CheckFavorite)
	favorites.Post("/:siteId", s.favoriteHandler.AddFavorite)
	favorites.Delete("/:siteId", s.favoriteHandler.RemoveFavorite)
}

// Start - run the HTTP server
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful HTTP server shutdown
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the Fiber app for tests
func (s *Server) App() *fiber.App {
	return s.app
}

// customErrorHandler - errors escaping handlers become a generic 500
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"success": false,
			"message": err.Error(),
		})
	}
}
