package main

import (
	"log"
	"net/http"
	"os"
	"runtime"
	"time"

	"fitcoach/database"
	"fitcoach/docs"
	"fitcoach/internal/cache"
	"fitcoach/internal/controllers"
	"fitcoach/internal/llm"
	"fitcoach/internal/repository"
	"fitcoach/internal/services"
	"fitcoach/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	// Swagger Documentation
	docs.SwaggerInfo.Title = "FitCoach API"
	docs.SwaggerInfo.Description = "Fitness log and AI-generated next-day plan service."
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.BasePath = "/api"
	docs.SwaggerInfo.Schemes = []string{"http", "https"}

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	database.MonitorDBConnections()

	// Initialize repositories
	userRepo := repository.NewUserRepository(database.DB)
	recommendationRepo := repository.NewRecommendationRepository(database.DB)
	profileRepo := repository.NewUserProfileRepository(database.DB)
	planRepo := repository.NewPlanRepository(database.DB)

	// Initialize generation client; a missing API key is fatal here,
	// before the server ever accepts a request.
	llmConfig := llm.LoadConfig()
	generator, err := llm.NewOpenAIClient(llmConfig)
	if err != nil {
		log.Fatalf("Failed to create generation client: %v", err)
	}
	log.Printf("Generation client ready (model: %s, timeout: %dms, retries: %d)",
		llmConfig.Model, llmConfig.TimeoutMs, llmConfig.MaxRetries)

	planService := services.NewPlanService(userRepo, generator)

	// Recommendation cache is optional; the service runs without Redis.
	var recCache cache.RecommendationCache
	if os.Getenv("REDIS_URL") != "" {
		c, err := cache.NewRecommendationCache()
		if err != nil {
			log.Printf("Warning: recommendation cache disabled: %v", err)
		} else {
			recCache = c
			defer recCache.Close()
			log.Println("Recommendation cache connected")
		}
	} else {
		log.Println("REDIS_URL not set, recommendation cache disabled")
	}

	// Initialize controllers
	userController := controllers.NewUserController(userRepo, profileRepo, recCache)
	dailyLogController := controllers.NewDailyLogController(planService, planRepo, recCache)
	recommendationController := controllers.NewRecommendationController(recommendationRepo, recCache)
	profileController := controllers.NewUserProfileController(userRepo, profileRepo)

	gin.SetMode(gin.ReleaseMode)
	// Setup Gin router
	router := gin.Default()

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":  "FitCoach API is running",
			"version":  "1.0.0",
			"status":   "healthy",
			"database": "PostgreSQL",
			"planner":  "OpenAI chat completions",
		})
	})

	routes.RegisterUserRoutes(router, userController)
	routes.RegisterDailyLogRoutes(router, dailyLogController)
	routes.RegisterRecommendationRoutes(router, recommendationController)
	routes.RegisterUserProfileRoutes(router, profileController)
	routes.RegisterSwaggerRoutes(router)

	// Debug endpoints
	router.GET("/debug/stats", func(c *gin.Context) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		cacheStatus := map[string]interface{}{
			"enabled": recCache != nil,
		}
		if recCache != nil {
			if status, err := recCache.Status(); err == nil {
				cacheStatus["redis"] = status
			} else {
				cacheStatus["error"] = err.Error()
			}
		}

		c.JSON(200, gin.H{
			"goroutines": runtime.NumGoroutine(),
			"memory_mb":  m.Alloc / 1024 / 1024,
			"cache":      cacheStatus,
		})
	})

	router.GET("/debug/database", func(c *gin.Context) {
		sqlDB, err := database.DB.DB()
		if err != nil {
			c.JSON(500, gin.H{
				"database_health": false,
				"error":           err.Error(),
			})
			return
		}

		var result int
		row := sqlDB.QueryRowContext(c.Request.Context(), "SELECT 1")
		err = row.Scan(&result)
		isHealthy := err == nil && result == 1

		c.JSON(200, gin.H{
			"database_health": isHealthy,
			"pool":            sqlDB.Stats(),
		})
	})

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Printf("API Documentation: http://localhost:%s/swagger/index.html", port)
	log.Printf("Database Health: http://localhost:%s/debug/database", port)

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}
	runtime.GOMAXPROCS(runtime.NumCPU())

	log.Printf("FitCoach API Server started successfully on port %s", port)

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
