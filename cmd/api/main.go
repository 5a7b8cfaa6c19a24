// @title Quiz Room API
// @version 1.0
// @description Backend for the Quiz Room web client: auth, quiz catalog, timed quiz sessions and results.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "quiz-room/cmd/api/docs"
	"quiz-room/internal/adapter"
	"quiz-room/internal/adapter/gotrue"
	"quiz-room/internal/cache"
	"quiz-room/internal/config"
	"quiz-room/internal/database"
	"quiz-room/internal/handler"
	"quiz-room/internal/logger"
	"quiz-room/internal/middleware"
	"quiz-room/internal/repository"
	"quiz-room/internal/service"
	"quiz-room/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		// Process request
		err := c.Next()

		// Log request details
		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// Connect to database
	db, err := database.NewSQLXPostgresDB(cfg.DB, cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	quizRepository := repository.NewQuizRepository(db)
	questionRepository := repository.NewQuestionRepository(db)
	attemptRepository := repository.NewAttemptRepository(db)

	// Initialize Redis Client
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Initialize services
	navigationService := service.NewNavigationService(cacheAdapter, cfg.Navigation.TTL)
	sessionService := service.NewSessionService(quizRepository, questionRepository, attemptRepository, navigationService, cfg.Session)
	catalogService := service.NewCatalogService(quizRepository, attemptRepository)
	resultsService := service.NewResultsService(quizRepository, questionRepository, attemptRepository)

	resetNavigation := func(ctx context.Context, userID string) {
		if err := navigationService.Reset(ctx, userID); err != nil {
			appLogger.Warn("Failed to clear screen state on sign-out", zap.String("userID", userID), zap.Error(err))
		}
	}
	authService, err := service.NewAuthService(gotrue.NewClient(cfg.Auth), cfg.Auth.JWTSecret,
		sessionService.AbandonUser, resetNavigation)
	if err != nil {
		appLogger.Fatal("Failed to create AuthService", zap.Error(err))
	}
	appLogger.Info("Services initialized")

	// Initialize handlers
	validator := validation.NewValidator()
	validationMiddleware := middleware.NewValidationMiddleware(validator)
	authHandler := handler.NewAuthHandler(authService, validator, cfg.Auth)
	dashboardHandler := handler.NewDashboardHandler(catalogService)
	sessionHandler := handler.NewSessionHandler(sessionService, validator)
	resultsHandler := handler.NewResultsHandler(resultsService, validator)
	screenHandler := handler.NewScreenHandler(navigationService, catalogService, sessionService, resultsService)
	healthHandler := handler.NewHealthHandler(quizRepository, cacheAdapter)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(recover.New())
	app.Use(requestLogger())
	app.Use(middleware.Metrics())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept,Authorization",
		AllowCredentials: cfg.Server.AllowOrigins != "*",
		MaxAge:           300,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/healthz", healthHandler.Health)

	// API group
	apiGroup := app.Group("/api")
	protected := middleware.Protected(authService)
	optional := middleware.OptionalAuth(authService)

	// Auth routes
	authGroup := apiGroup.Group("/auth")
	authGroup.Post("/sign-in", authHandler.SignIn)
	authGroup.Post("/sign-up", authHandler.SignUp)
	authGroup.Post("/refresh", authHandler.Refresh)
	authGroup.Post("/sign-out", protected, authHandler.SignOut)
	authGroup.Get("/session", optional, authHandler.Session)

	// Navigation root
	apiGroup.Get("/screen", optional, screenHandler.GetScreen)
	apiGroup.Post("/screen/back", protected, screenHandler.Back)

	// Dashboard
	apiGroup.Get("/dashboard", protected, dashboardHandler.GetDashboard)
	apiGroup.Post("/dashboard/retry", protected, dashboardHandler.Retry)

	// Quiz sessions and results
	validQuiz := validationMiddleware.ValidateQuizID()
	quizGroup := apiGroup.Group("/quizzes", protected)
	quizGroup.Post("/:quizId/sessions", validQuiz, sessionHandler.StartSession)
	quizGroup.Get("/:quizId/results", validQuiz, resultsHandler.GetResults)

	validSession := validationMiddleware.ValidateSessionID()
	sessionGroup := apiGroup.Group("/sessions", protected)
	sessionGroup.Get("/:sessionId", validSession, sessionHandler.GetSession)
	sessionGroup.Delete("/:sessionId", validSession, sessionHandler.Abandon)
	sessionGroup.Put("/:sessionId/answer", validSession, sessionHandler.SelectAnswer)
	sessionGroup.Post("/:sessionId/next", validSession, sessionHandler.Next)
	sessionGroup.Post("/:sessionId/previous", validSession, sessionHandler.Previous)
	sessionGroup.Post("/:sessionId/jump", validSession, sessionHandler.Jump)
	sessionGroup.Post("/:sessionId/submit", validSession, sessionHandler.Submit)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	sessionService.Shutdown()
	appLogger.Info("Server exited gracefully")
}
