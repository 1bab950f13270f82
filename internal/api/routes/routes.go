package routes

import (
	"context"
	"log"
	"time"

	"nortetech-site/internal/api/handlers"
	"nortetech-site/internal/api/middleware"
	"nortetech-site/internal/api/openapi"
	"nortetech-site/internal/app"
	"nortetech-site/internal/models"
	"nortetech-site/internal/services"
	"nortetech-site/internal/storage/content"
	"nortetech-site/internal/storage/postgres"
	"nortetech-site/internal/storage/redisstore"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes builds repositories, services and handlers from the application
// container and registers every route group on router.
func RegisterRoutes(router *gin.Engine, app *app.Application) {
	cfg := app.Config

	// --- Repositories ---
	userRepo := postgres.NewUserRepo(app.DBPool)
	profileRepo := postgres.NewProfileRepo(app.DBPool)
	jobRepo := postgres.NewJobRepo(app.DBPool)
	candidateRepo := postgres.NewCandidateRepo(app.DBPool)
	docTypeRepo := postgres.NewDocumentTypeRepo(app.DBPool)
	documentRepo := postgres.NewCandidateDocumentRepo(app.DBPool)
	txManager := postgres.NewTxManager(app.DBPool)
	contentStore := content.NewStore(app.ContentDB)

	tokenStore := redisstore.NewTokenStore(app.RedisClient)
	limiter := redisstore.NewFixedWindowLimiter(app.RedisClient)

	// --- Services ---
	userService := services.NewUserService(userRepo, tokenStore, cfg.JWT.Secret, cfg.JWT.AccessTTL, cfg.JWT.RefreshTTL)
	profileService := services.NewProfileService(profileRepo, app.Files)
	careersService := services.NewCareersService(jobRepo, profileRepo, userRepo, candidateRepo, txManager)
	onboardingService := services.NewOnboardingService(candidateRepo, documentRepo, userRepo, app.Files)
	hrService := services.NewHRService(jobRepo, docTypeRepo, candidateRepo, documentRepo, app.Files, cfg.Server.PublicURL)
	contentService := services.NewContentService(contentStore)

	// --- Handlers ---
	userHandler := handlers.NewUserHandler(userService, app.Validator)
	profileHandler := handlers.NewProfileHandler(profileService, app.Validator)
	careersHandler := handlers.NewCareersHandler(careersService, cfg.Server.PublicURL)
	onboardingHandler := handlers.NewOnboardingHandler(onboardingService)
	hrHandler := handlers.NewHRHandler(hrService, app.Validator)
	siteHandler := handlers.NewSiteHandler(contentService, app.Validator)

	// --- Middleware ---
	authMiddleware := middleware.JWTAuthMiddleware(cfg.JWT.Secret)
	requireHR := middleware.RequireRole(models.RoleHR)
	loginLimit := middleware.RateLimit(limiter, "login", cfg.RateLimit.LoginPerMinute, time.Minute)
	applyLimit := middleware.RateLimit(limiter, "apply", cfg.RateLimit.ApplyPerMinute, time.Minute)

	var adminExtra []gin.HandlerFunc
	if app.AdminSpec != nil {
		log.Println("OpenAPI request validation enabled for /admin")
		adminExtra = append(adminExtra, openapi.RequestValidator(app.AdminSpec))
	}

	// --- Register Route Groups ---
	root := router.Group("")
	RegisterSiteRoutes(root, siteHandler)
	RegisterAccountRoutes(root, userHandler, profileHandler, authMiddleware, loginLimit)
	RegisterCareersRoutes(root, careersHandler, onboardingHandler, authMiddleware, applyLimit)
	RegisterAdminRoutes(root, hrHandler, siteHandler, authMiddleware, requireHR, adminExtra...)

	// --- Health Check ---
	router.GET("/health", handlers.HealthCheck(map[string]handlers.Checker{
		"database": func(ctx context.Context) error { return app.DBPool.Ping(ctx) },
		"redis":    func(ctx context.Context) error { return app.RedisClient.Ping(ctx).Err() },
	}))

	log.Println("Configuring Swagger UI handler")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
