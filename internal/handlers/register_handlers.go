package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/customer_ledger_app/cmd/docs"
	portssvc "github.com/SscSPs/customer_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/customer_ledger_app/internal/metrics"
	"github.com/SscSPs/customer_ledger_app/internal/middleware"
	"github.com/SscSPs/customer_ledger_app/internal/platform/config"
	"github.com/SscSPs/customer_ledger_app/internal/utils"
	"github.com/SscSPs/customer_ledger_app/internal/validation"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// posthogClient may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) error {
	if err := validation.RegisterWithGin(); err != nil {
		return fmt.Errorf("failed to register request validators: %w", err)
	}

	tokenLimiter, err := middleware.NewMemoryRateLimiter(cfg.TokenRateLimit)
	if err != nil {
		return fmt.Errorf("invalid token rate limit %q: %w", cfg.TokenRateLimit, err)
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	registerAuthRoutes(r, services, middleware.RateLimit(tokenLimiter))

	setupAppRoutes(r, cfg, services, posthogClient)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAppRoutes configures the authenticated /app group and delegates to specific entity route registrations
func setupAppRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	posthogClient *utils.PosthogClientWrapper,
) {
	app := r.Group("/app",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.PosthogMiddleware(posthogClient),
	)

	registerCustomerRoutes(app, services.Customer)
	registerEntryRoutes(app, services.Entry)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
