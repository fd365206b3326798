package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tagcash-inc/tagcash/internal/interfaces/http/handlers"
	"github.com/tagcash-inc/tagcash/internal/interfaces/http/middleware"
)

// BrandRouteConfig holds dependencies for brand account routes.
type BrandRouteConfig struct {
	BrandHandler         *handlers.BrandHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupBrandRoutes configures the authenticated brand account routes.
// Registration lives with the other public routes in SetupAuthRoutes.
func SetupBrandRoutes(engine *gin.Engine, cfg *BrandRouteConfig) {
	brands := engine.Group("/brands")
	brands.Use(cfg.AuthMiddleware.RequireAuth())
	{
		brands.GET("/balance", cfg.PermissionMiddleware.RequirePermission("balance", "read"), cfg.BrandHandler.GetBalance)
		brands.POST("/balance/topup", cfg.PermissionMiddleware.RequirePermission("balance", "topup"), cfg.BrandHandler.TopUp)
		brands.PUT("/policy", cfg.PermissionMiddleware.RequirePermission("policy", "update"), cfg.BrandHandler.UpdateRefundPolicy)
	}
}
