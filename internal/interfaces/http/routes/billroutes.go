package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tagcash-inc/tagcash/internal/interfaces/http/handlers"
	"github.com/tagcash-inc/tagcash/internal/interfaces/http/middleware"
	"github.com/tagcash-inc/tagcash/internal/shared/constants"
)

// BillRouteConfig holds dependencies for bill and refund routes.
type BillRouteConfig struct {
	BillHandler          *handlers.BillHandler
	RefundHandler        *handlers.RefundHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
}

// SetupBillRoutes configures the bill lifecycle and refund routes.
func SetupBillRoutes(engine *gin.Engine, cfg *BillRouteConfig) {
	bills := engine.Group("/bills")
	{
		// Gateway redirects hit this without a session token.
		bills.POST("/payments/verify", cfg.BillHandler.VerifyPayment)

		protected := bills.Group("")
		protected.Use(cfg.AuthMiddleware.RequireAuth())
		{
			protected.POST("", cfg.PermissionMiddleware.RequirePermission("bills", "create"), cfg.BillHandler.CreateBill)
			protected.GET("", cfg.PermissionMiddleware.RequirePermission("bills", "read"), cfg.BillHandler.ListBills)
			protected.GET("/:id", cfg.PermissionMiddleware.RequirePermission("bills", "read"), cfg.BillHandler.GetBill)
			protected.DELETE("/:id", cfg.AuthMiddleware.RequireRole(constants.RoleAdmin), cfg.BillHandler.DeleteBill)

			protected.POST("/:id/content", cfg.PermissionMiddleware.RequirePermission("bills", "update"), cfg.BillHandler.SubmitContent)
			protected.PUT("/:id/content", cfg.PermissionMiddleware.RequirePermission("bills", "update"), cfg.BillHandler.UpdateContent)
			protected.POST("/:id/decision", cfg.PermissionMiddleware.RequirePermission("bills", "decide"), cfg.BillHandler.Decide)
			protected.POST("/:id/engagement", cfg.PermissionMiddleware.RequirePermission("bills", "read"), cfg.BillHandler.RefreshEngagement)

			protected.POST("/:id/refund/claim", cfg.PermissionMiddleware.RequirePermission("refunds", "claim"), cfg.RefundHandler.ClaimRefund)
			protected.POST("/:id/refund/settle", cfg.AuthMiddleware.RequireRole(constants.RoleAdmin), cfg.RefundHandler.SettleCustomerRefund)
			protected.POST("/:id/refund/settle-brand", cfg.AuthMiddleware.RequireRole(constants.RoleAdmin), cfg.RefundHandler.SettleBrandRefund)
		}
	}
}
