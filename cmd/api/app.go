package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"hypergo-properties/internal/handlers"
	"hypergo-properties/internal/middleware"
	"hypergo-properties/internal/repositories"
	"hypergo-properties/internal/repositories/memory"
	"hypergo-properties/internal/services"
	"hypergo-properties/internal/validators"
	"hypergo-properties/pkg/cache"
	"hypergo-properties/pkg/config"
	"hypergo-properties/pkg/database"
	"hypergo-properties/pkg/logger"
	"hypergo-properties/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// repositorySet groups the four stores the services are built on.
type repositorySet struct {
	properties      repositories.PropertyRepository
	users           repositories.UserRepository
	favorites       repositories.FavoriteRepository
	recommendations repositories.RecommendationRepository
}

// App represents the application structure
type App struct {
	Config *config.Config
	Router *gin.Engine
	Server *http.Server

	Database    *database.MongoDatabase
	Cache       cache.Store
	RateLimiter *middleware.RateLimiter

	PropertyHandler       *handlers.PropertyHandler
	FavoriteHandler       *handlers.FavoriteHandler
	RecommendationHandler *handlers.RecommendationHandler
	UserHandler           *handlers.UserHandler
	HealthHandler         *handlers.HealthHandler

	repos repositorySet

	ctx    context.Context
	cancel context.CancelFunc
}

// Create and initialize a new App instance
func NewApp(cfg *config.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{Config: cfg, ctx: ctx, cancel: cancel}

	// Initialize infrastructure
	app.initializeMetrics()
	app.initializeDatabase()
	app.initializeCache()
	app.initializeRateLimiter()

	// Initialize business logic
	app.initializeDependencies()

	// Initialize web layer
	app.initializeRouter()

	return app
}

// initialize the listing store, either MongoDB or the in-process fallback
func (a *App) initializeDatabase() {
	if a.Config.Database.Driver == config.DriverMemory {
		logger.GlobalLogger.Warnf("Using in-memory store; data is lost on restart")
		a.repos = repositorySet{
			properties:      memory.NewPropertyRepository(),
			users:           memory.NewUserRepository(),
			favorites:       memory.NewFavoriteRepository(),
			recommendations: memory.NewRecommendationRepository(),
		}
		return
	}

	db, err := database.Connect(a.ctx, a.Config)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize database: %v", err)
		os.Exit(1)
	}
	if err := db.CreateIndexes(a.ctx); err != nil {
		logger.GlobalLogger.Errorf("Failed to create indexes: %v", err)
		os.Exit(1)
	}
	a.Database = db
	a.repos = repositorySet{
		properties:      repositories.NewPropertyRepository(db.DB()),
		users:           repositories.NewUserRepository(db.DB()),
		favorites:       repositories.NewFavoriteRepository(db.DB()),
		recommendations: repositories.NewRecommendationRepository(db.DB()),
	}
}

// initialize the result cache
func (a *App) initializeCache() {
	if a.Config.Cache.Driver == config.DriverMemory {
		a.Cache = cache.NewMemoryStore(a.Config.Cache.Capacity, a.Config.Cache.TTL)
		return
	}

	client, err := cache.NewRedisClient(cache.RedisConfigFrom(a.Config))
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to initialize Redis: %v", err)
		os.Exit(1)
	}
	a.Cache = cache.NewRedisStore(a.ctx, client)
}

// initialize Prometheus metrics
func (a *App) initializeMetrics() {
	metrics.Init()
}

// initialize the rate limiter
func (a *App) initializeRateLimiter() {
	a.RateLimiter = middleware.NewRateLimiter(a.Config.RateLimit.PerMinute, a.Config.RateLimit.Burst)
	go a.RateLimiter.Cleanup(a.ctx, time.Minute)
}

// initialize all dependencies
func (a *App) initializeDependencies() {
	ttl := a.Config.Cache.TTL

	// validators
	propertyValidator := validators.NewPropertyValidator()
	userValidator := validators.NewUserValidator()
	recommendationValidator := validators.NewRecommendationValidator()

	// services
	invalidator := services.NewInvalidationCoordinator(a.Cache)
	propertyService := services.NewPropertyService(a.repos.properties, a.repos.users, a.repos.favorites, a.repos.recommendations, propertyValidator, invalidator)
	searchService := services.NewPropertySearchService(a.repos.properties, a.repos.users, a.Cache, invalidator, ttl)
	favoriteService := services.NewFavoriteService(a.repos.favorites, a.repos.properties, a.repos.users, a.Cache, invalidator, ttl)
	recommendationService := services.NewRecommendationService(a.repos.recommendations, a.repos.properties, a.repos.users, recommendationValidator, a.Cache, invalidator, ttl)
	userService := services.NewUserService(a.repos.users, userValidator, a.Config.JWT.Secret, a.Config.JWT.TTL)

	// handlers
	a.PropertyHandler = handlers.NewPropertyHandler(propertyService, searchService)
	a.FavoriteHandler = handlers.NewFavoriteHandler(favoriteService)
	a.RecommendationHandler = handlers.NewRecommendationHandler(recommendationService)
	a.UserHandler = handlers.NewUserHandler(userService)

	var store handlers.Pinger
	if a.Database != nil {
		store = a.Database
	}
	a.HealthHandler = handlers.NewHealthHandler(store, a.Cache)
}

// set up the Gin router with middleware and routes
func (a *App) initializeRouter() {
	if a.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	a.Router = gin.New()
	a.setupMiddleware()
	a.setupRoutes()
}

// cleanup operations
func (a *App) cleanup() {
	a.cancel()

	if err := a.Cache.Close(); err != nil {
		logger.GlobalLogger.Errorf("Failed to close cache: %v", err)
	}
	if a.Database != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.Database.Close(ctx); err != nil {
			logger.GlobalLogger.Errorf("Failed to close database: %v", err)
		}
	}
}
