package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	authUsecases "github.com/tagcash-inc/tagcash/internal/application/auth/usecases"
	billingUsecases "github.com/tagcash-inc/tagcash/internal/application/billing/usecases"
	brandUsecases "github.com/tagcash-inc/tagcash/internal/application/brand/usecases"
	customerUsecases "github.com/tagcash-inc/tagcash/internal/application/customer/usecases"
	infraAuth "github.com/tagcash-inc/tagcash/internal/infrastructure/auth"
	"github.com/tagcash-inc/tagcash/internal/infrastructure/cache"
	"github.com/tagcash-inc/tagcash/internal/infrastructure/config"
	"github.com/tagcash-inc/tagcash/internal/infrastructure/email"
	"github.com/tagcash-inc/tagcash/internal/infrastructure/gateway"
	"github.com/tagcash-inc/tagcash/internal/infrastructure/instagram"
	"github.com/tagcash-inc/tagcash/internal/infrastructure/permission"
	"github.com/tagcash-inc/tagcash/internal/infrastructure/ratelimit"
	"github.com/tagcash-inc/tagcash/internal/infrastructure/repository"
	"github.com/tagcash-inc/tagcash/internal/interfaces/http/handlers"
	"github.com/tagcash-inc/tagcash/internal/interfaces/http/middleware"
	"github.com/tagcash-inc/tagcash/internal/interfaces/http/routes"
	sharedDB "github.com/tagcash-inc/tagcash/internal/shared/db"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
	"github.com/tagcash-inc/tagcash/internal/shared/services/markdown"

	_ "github.com/tagcash-inc/tagcash/docs"
)

const rbacModelPath = "./configs/rbac_model.conf"

// Router wires repositories, use cases, handlers and middleware into a
// Gin engine.
type Router struct {
	engine               *gin.Engine
	billHandler          *handlers.BillHandler
	refundHandler        *handlers.RefundHandler
	brandHandler         *handlers.BrandHandler
	customerHandler      *handlers.CustomerHandler
	authHandler          *handlers.AuthHandler
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          ratelimit.RateLimiter
	log                  logger.Interface
}

// NewRouter builds the full dependency graph from the database, redis
// client and configuration.
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()

	billRepo := repository.NewBillRepository(db)
	brandRepo := repository.NewBrandRepository(db)
	balanceTxRepo := repository.NewBalanceTransactionRepository(db)
	customerRepo := repository.NewCustomerRepository(db)

	txManager := sharedDB.NewTransactionManager(db)

	hasher := infraAuth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := infraAuth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	paymentGateway := gateway.NewRazorpayGateway(&cfg.PaymentGateway, log.Named("gateway"))
	metadataFetcher := instagram.NewFetcher(&cfg.Instagram, log.Named("instagram"))
	engagementCache := cache.NewRedisEngagementCache(
		redisClient,
		time.Duration(cfg.Billing.EngagementCacheTTLMinutes)*time.Minute,
		log.Named("cache"),
	)
	sender := email.NewSMTPSender(cfg.Email, markdown.NewService(), log.Named("email"))

	enforcer, err := permission.NewEnforcer(db, rbacModelPath, log.Named("permission"))
	if err != nil {
		return nil, err
	}
	if err := enforcer.SeedDefaultPolicies(); err != nil {
		return nil, err
	}

	settlementCfg := billingUsecases.BrandSettlementConfig{
		Direction: cfg.Billing.SettlementDirection,
	}

	createBillUC := billingUsecases.NewCreateBillUseCase(billRepo, brandRepo, customerRepo, paymentGateway, log)
	verifyPaymentUC := billingUsecases.NewVerifyPaymentUseCase(billRepo, paymentGateway, log)
	submitContentUC := billingUsecases.NewSubmitContentUseCase(billRepo, brandRepo, customerRepo, sender, log)
	updateContentUC := billingUsecases.NewUpdateContentUseCase(billRepo, log)
	brandDecideUC := billingUsecases.NewBrandDecideUseCase(billRepo, customerRepo, sender, log)
	refreshEngagementUC := billingUsecases.NewRefreshEngagementUseCase(billRepo, metadataFetcher, engagementCache, log)
	getBillUC := billingUsecases.NewGetBillUseCase(billRepo, log)
	listBillsUC := billingUsecases.NewListBillsUseCase(billRepo, log)
	deleteBillUC := billingUsecases.NewDeleteBillUseCase(billRepo, log)

	claimRefundUC := billingUsecases.NewClaimRefundUseCase(billRepo, brandRepo, log)
	settleCustomerRefundUC := billingUsecases.NewSettleCustomerRefundUseCase(billRepo, customerRepo, sender, log)
	settleBrandRefundUC := billingUsecases.NewSettleBrandRefundUseCase(billRepo, brandRepo, balanceTxRepo, txManager, settlementCfg, log)

	registerBrandUC := brandUsecases.NewRegisterBrandUseCase(brandRepo, hasher, log)
	topUpUC := brandUsecases.NewTopUpUseCase(brandRepo, balanceTxRepo, txManager, log)
	updateRefundPolicyUC := brandUsecases.NewUpdateRefundPolicyUseCase(brandRepo, log)
	getBalanceUC := brandUsecases.NewGetBalanceUseCase(brandRepo, balanceTxRepo, log)

	registerCustomerUC := customerUsecases.NewRegisterCustomerUseCase(customerRepo, hasher, log)
	loginUC := authUsecases.NewLoginUseCase(customerRepo, brandRepo, hasher, jwtService, log)

	billHandler := handlers.NewBillHandler(
		createBillUC, verifyPaymentUC, submitContentUC, updateContentUC,
		brandDecideUC, refreshEngagementUC, getBillUC, listBillsUC, deleteBillUC, log,
	)
	refundHandler := handlers.NewRefundHandler(claimRefundUC, settleCustomerRefundUC, settleBrandRefundUC, log)
	brandHandler := handlers.NewBrandHandler(registerBrandUC, topUpUC, updateRefundPolicyUC, getBalanceUC, log)
	customerHandler := handlers.NewCustomerHandler(registerCustomerUC, log)
	authHandler := handlers.NewAuthHandler(loginUC, log)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)
	permissionMiddleware := middleware.NewPermissionMiddleware(enforcer, log)
	rateLimiter := ratelimit.NewRedisRateLimiter(
		redisClient,
		cfg.RateLimit.Requests,
		time.Duration(cfg.RateLimit.WindowSeconds)*time.Second,
	)

	return &Router{
		engine:               engine,
		billHandler:          billHandler,
		refundHandler:        refundHandler,
		brandHandler:         brandHandler,
		customerHandler:      customerHandler,
		authHandler:          authHandler,
		authMiddleware:       authMiddleware,
		permissionMiddleware: permissionMiddleware,
		rateLimiter:          rateLimiter,
		log:                  log,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes(cfg *config.Config) {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.log))
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())
	r.engine.Use(middleware.RateLimit(r.rateLimiter))
	r.engine.Use(middleware.ErrorHandler())

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(r.engine, &routes.AuthRouteConfig{
		AuthHandler:     r.authHandler,
		CustomerHandler: r.customerHandler,
		BrandHandler:    r.brandHandler,
	})

	routes.SetupBillRoutes(r.engine, &routes.BillRouteConfig{
		BillHandler:          r.billHandler,
		RefundHandler:        r.refundHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})

	routes.SetupBrandRoutes(r.engine, &routes.BrandRouteConfig{
		BrandHandler:         r.brandHandler,
		AuthMiddleware:       r.authMiddleware,
		PermissionMiddleware: r.permissionMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
