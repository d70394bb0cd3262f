package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/nepalicrafts/storefront_api/cmd/docs"
	portssvc "github.com/nepalicrafts/storefront_api/internal/core/ports/services"
	"github.com/nepalicrafts/storefront_api/internal/middleware"
	"github.com/nepalicrafts/storefront_api/internal/platform/config"
	"github.com/nepalicrafts/storefront_api/internal/utils"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// rateLimiter and posthogClient may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
	posthogClient *utils.PosthogClientWrapper,
) {
	if err := registerValidators(); err != nil {
		slog.Error("Failed to register request validators", slog.String("error", err.Error()))
	}

	registerHealthRoutes(r, services.Rates)

	setupAPIV1Routes(r, cfg, services, rateLimiter, posthogClient)

	// Swagger routes (only outside production)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group: public storefront routes and admin routes.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	rateLimiter *limiter.Limiter,
	posthogClient *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1")

	public := v1.Group("")
	if rateLimiter != nil {
		public.Use(middleware.RateLimit(rateLimiter))
	}
	public.Use(middleware.PosthogMiddleware(posthogClient))
	registerCurrencyRoutes(public, service.Currency, service.Pricing)

	admin := v1.Group("/admin", middleware.AuthMiddleware(cfg.JWTSecret))
	registerExchangeRateRoutes(admin, service.ExchangeRate)
	registerProductPriceRoutes(admin, service.Pricing)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
