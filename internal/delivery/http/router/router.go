// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mawadda/config"
	"mawadda/internal/delivery/http/middleware"
	"mawadda/internal/delivery/http/router/handler"
	"mawadda/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config             *config.Config
	AuthHandler        *handler.AuthHandler
	MatchmakingHandler *handler.MatchmakingHandler
	TestHandler        *handler.TestHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg                *config.Config
	authHandler        *handler.AuthHandler
	matchmakingHandler *handler.MatchmakingHandler
	testHandler        *handler.TestHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:                params.Config,
		authHandler:        params.AuthHandler,
		matchmakingHandler: params.MatchmakingHandler,
		testHandler:        params.TestHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Matchmaking routes require an authenticated staff member
	matchGroup := e.Group("/matchmaking")
	matchGroup.Use(r.authMiddleware.Authenticate)
	matchGroup.Use(r.authMiddleware.RequireRole(
		string(entity.RoleMatchmaker),
		string(entity.RoleManager),
		string(entity.RoleAdmin),
	))
	{
		matchGroup.GET("/references", r.matchmakingHandler.ListReferences)
		matchGroup.POST("/references/:id/matches", r.matchmakingHandler.FindMatches)
	}

	// Test routes for middleware validation, enabled per environment
	if r.cfg.TestRoutes != nil && r.cfg.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
	}
}
