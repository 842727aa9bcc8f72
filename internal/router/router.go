package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/abdul8704/Cookify-server/config"
	"github.com/abdul8704/Cookify-server/internal/api"
	"github.com/abdul8704/Cookify-server/internal/middleware"
	"github.com/abdul8704/Cookify-server/internal/service"
)

// Deps carries the shared infrastructure the route tree needs.
type Deps struct {
	DB     *gorm.DB
	Redis  *redis.Client
	Config *config.Config
	S3     *config.S3Config
}

// New builds the gin engine with every route group wired up.
func New(deps Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())

	router.GET("/health", api.HealthCheck)
	router.GET("/api/health", api.HealthCheck)

	authService := service.NewAuthService(deps.DB, deps.Config.JWTSecret, deps.Config.AccessTokenTTL, deps.Config.RefreshTokenTTL)
	goalsService := service.NewGoalsService(deps.DB)
	profileService := service.NewProfileService(deps.DB, goalsService)
	userService := service.NewUserService(deps.DB)
	ingredientService := service.NewIngredientService(deps.DB)
	recipeService := service.NewRecipeService(deps.DB)
	intakeService := service.NewIntakeService(deps.DB)
	scheduleService := service.NewScheduleService(deps.DB, intakeService)
	favouriteService := service.NewFavouriteService(deps.DB)
	inventoryService := service.NewInventoryService(deps.DB)
	emailService := service.NewSMTPEmailService(deps.Config)

	v1 := router.Group("/api/v1")

	// Public routes. The reset flow sends mail, so it gets a tighter limit
	// than login.
	public := v1.Group("")
	if deps.Redis != nil {
		authLimiter := middleware.NewRateLimiter(deps.Redis, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     20,
			KeyPrefix: "ratelimit:auth",
		})
		public.Use(authLimiter.Middleware())
	}
	api.NewAuthHandler(authService).RegisterRoutes(public)

	// OTP state lives in Redis, so the reset flow is only available when
	// Redis is up.
	if deps.Redis != nil {
		resetService := service.NewPasswordResetService(deps.DB, deps.Redis, emailService)
		resetGroup := v1.Group("")
		resetLimiter := middleware.NewRateLimiter(deps.Redis, middleware.RateLimitConfig{
			Window:    15 * time.Minute,
			Limit:     5,
			KeyPrefix: "ratelimit:pwreset",
		})
		resetGroup.Use(resetLimiter.Middleware())
		api.NewPasswordResetHandler(resetService).RegisterRoutes(resetGroup)
	}

	// Everything else requires a valid access token.
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))

	api.NewUserHandler(userService).RegisterRoutes(protected)
	api.NewProfileHandler(profileService).RegisterRoutes(protected)
	api.NewIngredientHandler(ingredientService).RegisterRoutes(protected)
	api.NewRecipeHandler(recipeService).RegisterRoutes(protected)
	api.NewFavouriteHandler(favouriteService).RegisterRoutes(protected)
	api.NewInventoryHandler(inventoryService).RegisterRoutes(protected)
	api.NewIntakeHandler(intakeService, goalsService).RegisterRoutes(protected)
	api.NewScheduleHandler(scheduleService).RegisterRoutes(protected)

	if deps.S3 != nil {
		api.NewImageHandler(service.NewImageService(deps.S3)).RegisterRoutes(protected)
	}

	return router
}
