package routes

import (
	"fmt"
	"net/http"
	"time"

	"marina-guard-backend/internal/api/handlers"
	"marina-guard-backend/internal/api/middleware"
	"marina-guard-backend/internal/auth"
	"marina-guard-backend/internal/config"
	"marina-guard-backend/internal/database/models"
	"marina-guard-backend/internal/metrics"
	"marina-guard-backend/internal/repository"
	"marina-guard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies are the process-wide resources the router is built from.
// Redis, Events, Metrics and Provider are optional.
type Dependencies struct {
	DB       *gorm.DB
	Config   *config.Config
	Version  string
	Redis    *redis.Client
	Events   service.EventPublisher
	Metrics  *metrics.Metrics
	Provider auth.IdentityProvider
	Clock    func() time.Time

	// HealthChecks are reported by /health next to the database
	HealthChecks map[string]handlers.HealthCheck
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(deps Dependencies) (*gin.Engine, error) {
	cfg := deps.Config

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(cfg))
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}

	var limiter middleware.RateLimiter
	if deps.Redis != nil {
		limiter = middleware.NewRedisRateLimiter(deps.Redis)
	}
	router.Use(middleware.RateLimit(limiter, cfg.RateLimitRequests, cfg.RateLimitWindow))

	validator := service.NewValidator()
	opts := service.Options{
		Clock:    deps.Clock,
		Events:   deps.Events,
		Location: cfg.Location(),
	}
	if deps.Metrics != nil {
		opts.Metrics = deps.Metrics
	}

	// Initialize repositories
	tx := repository.NewTransactor(deps.DB)
	userRepo := repository.NewUserRepository(deps.DB)
	locationRepo := repository.NewLocationRepository(deps.DB)
	sessionRepo := repository.NewDutySessionRepository(deps.DB)
	checklistRepo := repository.NewChecklistRepository(deps.DB)
	shiftRepo := repository.NewShiftRepository(deps.DB)
	patternRepo := repository.NewRecurringPatternRepository(deps.DB)
	logRepo := repository.NewLogRepository(deps.DB)
	messageRepo := repository.NewMessageRepository(deps.DB)

	// Initialize services
	userService := service.NewUserService(userRepo, validator, opts)
	locationService := service.NewLocationService(locationRepo, validator)
	checklistService := service.NewChecklistService(checklistRepo, locationRepo, validator)
	sessionService := service.NewDutySessionService(sessionRepo, userRepo, locationRepo, shiftRepo, checklistRepo, logRepo, tx, validator, opts)
	shiftService := service.NewShiftService(shiftRepo, locationRepo, userRepo, tx, validator, opts)
	patternService := service.NewRecurringShiftService(patternRepo, shiftRepo, locationRepo, userRepo, tx, validator, service.ExpansionPolicy{
		DefaultHorizonDays: cfg.DefaultExpansionHorizonDays,
		MaxHorizonDays:     cfg.MaxExpansionHorizonDays,
	}, opts)
	logService := service.NewLogService(logRepo, locationRepo, shiftRepo, validator, opts)
	messageService := service.NewMessageService(messageRepo, userRepo, validator, opts)
	exportService := service.NewExportService(shiftRepo, userRepo, opts)

	// Initialize auth
	var tokenStore auth.TokenStore
	if deps.Redis != nil {
		tokenStore = auth.NewRedisTokenStore(deps.Redis)
	} else {
		logrus.Warn("Redis not configured, refresh tokens are kept in memory")
	}
	if deps.Provider == nil {
		logrus.Warn("Identity provider not configured, login is disabled")
	}
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), deps.Provider, tokenStore, userService)
	if err != nil {
		return nil, fmt.Errorf("initialize auth: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService, cfg.FrontendURL, cfg.IsProduction())
	authMiddleware := auth.NewAuthMiddleware(authService, userService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(deps.DB, deps.Version)
	for name, check := range deps.HealthChecks {
		healthHandler.AddCheck(name, check)
	}
	userHandler := handlers.NewUserHandler(userService)
	locationHandler := handlers.NewLocationHandler(locationService)
	checklistHandler := handlers.NewChecklistHandler(checklistService)
	sessionHandler := handlers.NewDutySessionHandler(sessionService)
	shiftHandler := handlers.NewShiftHandler(shiftService)
	patternHandler := handlers.NewRecurringPatternHandler(patternService)
	logHandler := handlers.NewLogHandler(logService)
	messageHandler := handlers.NewMessageHandler(messageService)
	exportHandler := handlers.NewExportHandler(exportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	if cfg.MetricsEnabled && deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}
	if cfg.SwaggerEnabled {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := router.Group("/api/v1")

	authRoutes := v1.Group("/auth")
	{
		authRoutes.GET("/login", authHandler.Login)
		authRoutes.GET("/callback", authHandler.Callback)
		authRoutes.POST("/refresh", authHandler.Refresh)
		authRoutes.POST("/logout", authHandler.Logout)
		authRoutes.GET("/validate", authHandler.Validate)
	}

	// Everything below requires a bearer token
	api := v1.Group("")
	api.Use(authMiddleware.RequireAuth())

	supervisor := authMiddleware.RequireRole(models.RoleCanManageShifts)
	admin := authMiddleware.RequireRole(models.RoleCanManageUsers)

	{
		api.GET("/me", userHandler.GetMe)
		api.PUT("/me", userHandler.UpdateMe)

		// User routes
		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id/role", admin, userHandler.UpdateRole)
			users.POST("/:id/archive", admin, userHandler.ArchiveUser)
			users.POST("/:id/unarchive", admin, userHandler.UnarchiveUser)
			users.GET("/:id/shifts", shiftHandler.ListUserShifts)
			users.GET("/:id/shifts.ics", exportHandler.UserCalendar)
		}

		// Location routes
		locations := api.Group("/locations")
		{
			locations.GET("", locationHandler.ListLocations)
			locations.GET("/:id", locationHandler.GetLocation)
			locations.POST("", admin, locationHandler.CreateLocation)
			locations.PUT("/:id", admin, locationHandler.UpdateLocation)
		}

		// Checklist item routes
		checklistItems := api.Group("/checklist-items")
		{
			checklistItems.GET("", checklistHandler.ListItems)
			checklistItems.POST("", supervisor, checklistHandler.CreateItem)
			checklistItems.PUT("/:id", supervisor, checklistHandler.UpdateItem)
			checklistItems.DELETE("/:id", supervisor, checklistHandler.DeactivateItem)
		}

		// Duty session routes
		sessions := api.Group("/duty-sessions")
		{
			sessions.POST("/clock-in", sessionHandler.ClockIn)
			sessions.GET("", sessionHandler.ListSessions)
			sessions.GET("/current", sessionHandler.Current)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.POST("/:id/clock-out", sessionHandler.ClockOut)
			sessions.POST("/:id/override-clock-out", supervisor, sessionHandler.OverrideClockOut)
			sessions.POST("/:id/check-ins", supervisor, sessionHandler.CheckIn)
			sessions.GET("/:id/check-ins", sessionHandler.ListCheckIns)
			sessions.POST("/:id/checklist", sessionHandler.SubmitChecklist)
			sessions.POST("/:id/equipment", sessionHandler.CheckOutEquipment)
			sessions.GET("/:id/equipment", sessionHandler.ListEquipment)
		}
		api.POST("/equipment/:id/return", sessionHandler.ReturnEquipment)

		// Shift routes
		shifts := api.Group("/shifts")
		{
			shifts.GET("", shiftHandler.ListShifts)
			shifts.GET("/export", supervisor, exportHandler.ShiftsWorkbook)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.POST("", supervisor, shiftHandler.CreateShift)
			shifts.PUT("/:id", supervisor, shiftHandler.UpdateShift)
			shifts.DELETE("/:id", supervisor, shiftHandler.DeleteShift)
			shifts.POST("/:id/assignments", supervisor, shiftHandler.AssignUser)
			shifts.DELETE("/:id/assignments/:userId", supervisor, shiftHandler.UnassignUser)
		}

		// Recurring pattern routes
		patterns := api.Group("/recurring-patterns")
		{
			patterns.GET("", patternHandler.ListPatterns)
			patterns.GET("/:id", patternHandler.GetPattern)
			patterns.POST("", supervisor, patternHandler.CreatePattern)
			patterns.PUT("/:id", supervisor, patternHandler.UpdatePattern)
			patterns.DELETE("/:id", supervisor, patternHandler.DeletePattern)
			patterns.POST("/:id/crew", supervisor, patternHandler.AssignCrew)
			patterns.DELETE("/:id/crew/:userId", supervisor, patternHandler.RemoveCrew)
			patterns.POST("/:id/expand", supervisor, patternHandler.ExpandPattern)
		}

		// Log routes
		logs := api.Group("/logs")
		{
			logs.GET("", logHandler.ListLogs)
			logs.POST("", logHandler.CreateLog)
			logs.GET("/:id", logHandler.GetLog)
			logs.PUT("/:id", logHandler.UpdateLog)
			logs.POST("/:id/archive", logHandler.ArchiveLog)
			logs.POST("/:id/review", supervisor, logHandler.ReviewLog)
		}

		// Message routes
		messages := api.Group("/messages")
		{
			messages.GET("", messageHandler.Inbox)
			messages.GET("/sent", messageHandler.Sent)
			messages.GET("/unread-count", messageHandler.UnreadCount)
			messages.POST("", messageHandler.Send)
			messages.POST("/:id/read", messageHandler.MarkRead)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handlers.ErrorResponse{Error: "route not found"})
	})

	return router, nil
}
