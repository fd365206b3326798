package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tagcash-inc/tagcash/internal/interfaces/http/handlers"
)

// AuthRouteConfig holds dependencies for authentication and registration routes.
type AuthRouteConfig struct {
	AuthHandler     *handlers.AuthHandler
	CustomerHandler *handlers.CustomerHandler
	BrandHandler    *handlers.BrandHandler
}

// SetupAuthRoutes configures the public authentication and registration routes.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		auth.POST("/login", cfg.AuthHandler.Login)
	}

	engine.POST("/customers/register", cfg.CustomerHandler.Register)
	engine.POST("/brands/register", cfg.BrandHandler.Register)
}
