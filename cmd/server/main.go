package main

import (
	"fmt"
	"log"
	"net/http"

	"hangman/backend/internal/auth"
	"hangman/backend/internal/cache"
	"hangman/backend/internal/config"
	"hangman/backend/internal/database"
	"hangman/backend/internal/handler"
	"hangman/backend/internal/notify"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "hangman/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Hangman API
// @version         1.0
// @description     This is the API for the Hangman service.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	// Wire the average-attempts cache: Redis when configured, in-process
	// otherwise.
	var store cache.Store
	if config.AppConfig.RedisAddr != "" {
		redisStore, err := cache.NewRedis(config.AppConfig.RedisAddr)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		store = redisStore
	} else {
		store = cache.NewMemory()
	}
	handler.Stats = cache.New(database.DB, store)

	mailer := notify.NewMailer(config.AppConfig.SMTPAddr, config.AppConfig.MailFrom)
	handler.Reminder = notify.New(database.DB, mailer)

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		// Auth routes
		authRoutes := apiV1.Group("/auth")
		{
			authRoutes.POST("/register", handler.RegisterUser)
			authRoutes.POST("/login", handler.LoginUser)
		}

		// User routes (protected)
		userRoutes := apiV1.Group("/users")
		userRoutes.Use(auth.AuthMiddleware())
		{
			userRoutes.GET("/rankings", handler.GetUserRankings)
		}

		// Game routes (protected)
		gameRoutes := apiV1.Group("/games")
		gameRoutes.Use(auth.AuthMiddleware())
		{
			gameRoutes.POST("", handler.CreateGame)
			gameRoutes.GET("", handler.GetUserGames)
			gameRoutes.GET("/:key", handler.GetGame)
			gameRoutes.PUT("/:key/move", handler.MakeMove)
			gameRoutes.PUT("/:key/cancel", handler.CancelGame)
			gameRoutes.GET("/:key/history", handler.GetGameHistory)
		}

		// Score routes (protected)
		scoreRoutes := apiV1.Group("/scores")
		scoreRoutes.Use(auth.AuthMiddleware())
		{
			scoreRoutes.GET("", handler.GetScores)
			scoreRoutes.GET("/leaderboard", handler.GetHighScores)
		}

		// Public stats route
		apiV1.GET("/stats/average-attempts", handler.GetAverageAttempts)
	}

	// Internal task and cron triggers (guarded by TASK_TOKEN when set)
	tasks := router.Group("/tasks")
	tasks.Use(auth.TaskMiddleware())
	{
		tasks.POST("/cache-average-attempts", handler.CacheAverageAttempts)
	}
	crons := router.Group("/crons")
	crons.Use(auth.TaskMiddleware())
	{
		crons.GET("/send-reminder", handler.SendReminder)
	}

	fmt.Printf("Server is running on %s\n", config.AppConfig.ServerAddr)
	fmt.Println("Swagger UI is available at http://localhost:8080/swagger/index.html")
	log.Fatal(router.Run(config.AppConfig.ServerAddr))
}
