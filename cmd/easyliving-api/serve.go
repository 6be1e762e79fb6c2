package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/easyliving/backend/internal/config"
	"github.com/easyliving/backend/internal/handlers"
	"github.com/easyliving/backend/internal/logger"
	"github.com/easyliving/backend/internal/middleware"
	"github.com/easyliving/backend/internal/repository"
	"github.com/easyliving/backend/internal/service"
	"github.com/easyliving/backend/pkg/mlapi"
	"github.com/easyliving/backend/pkg/supabase"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	logger.SetDefault(logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Server.LogLevel),
		Format: cfg.Server.LogFormat,
	}))
	log := logger.Default()

	log.Info("starting EasyLiving API server",
		logger.String("env", cfg.Server.Env),
		logger.String("supabase_url", cfg.Supabase.URL),
		logger.String("ml_api_url", cfg.MLAPI.URL),
	)

	// Initialize clients
	supabaseClient := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.ServiceKey)
	mlClient := mlapi.NewClient(cfg.MLAPI.URL, cfg.MLAPI.Timeout)

	// Initialize repositories
	moodRepo := repository.NewMoodLogRepository(supabaseClient)
	expenseRepo := repository.NewExpenseLogRepository(supabaseClient)
	activityRepo := repository.NewActivityLogRepository(supabaseClient)
	userRepo := repository.NewUserRepository(supabaseClient)

	// Initialize services
	insightsService := service.NewInsightsService(moodRepo, expenseRepo, activityRepo)
	logService := service.NewLogService(moodRepo, expenseRepo, activityRepo)
	predictionService := service.NewPredictionService(mlClient, moodRepo, insightsService)
	authService := service.NewAuthService(supabaseClient, userRepo)

	// Initialize handlers
	insightsHandler := handlers.NewInsightsHandler(insightsService)
	logHandler := handlers.NewLogHandler(logService)
	predictionHandler := handlers.NewPredictionHandler(predictionService)
	authHandler := handlers.NewAuthHandler(authService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())

	// Middleware
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeaders(cfg.Server.Env))
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API routes
	api := router.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.Auth(supabaseClient), authHandler.Me)
		}

		// Protected routes
		protected := api.Group("")
		protected.Use(middleware.Auth(supabaseClient))
		{
			// Log routes
			protected.GET("/logs/mood", logHandler.GetMoodLogs)
			protected.POST("/logs/mood", logHandler.CreateMoodLog)
			protected.DELETE("/logs/mood/:id", logHandler.DeleteMoodLog)

			protected.GET("/logs/expense", logHandler.GetExpenseLogs)
			protected.POST("/logs/expense", logHandler.CreateExpenseLog)
			protected.DELETE("/logs/expense/:id", logHandler.DeleteExpenseLog)

			protected.GET("/logs/activity", logHandler.GetActivityLogs)
			protected.POST("/logs/activity", logHandler.CreateActivityLog)
			protected.DELETE("/logs/activity/:id", logHandler.DeleteActivityLog)

			// Insight routes
			protected.GET("/insights/weekly", insightsHandler.GetWeeklySummary)
			protected.GET("/insights/trends/:kind", insightsHandler.GetTrend)
			protected.GET("/insights/recommendations", insightsHandler.GetRecommendations)
			protected.GET("/insights/recent-expenses", insightsHandler.GetRecentExpenses)

			// Prediction routes
			protected.POST("/predict/mood", predictionHandler.PredictMood)
			protected.POST("/predict/expense", predictionHandler.PredictExpense)
		}
	}

	log.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
