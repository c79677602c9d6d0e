package main

import (
	"fmt"
	"log"
	"os"

	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Fatalf("Error loading .env file: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REDIS_URL",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()
	utils.InitRedisClient()
	services.InitTokenBlacklist(utils.RedisClient)
}

func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	// Repositories
	usersRepo := repository.GetUsersRepo(utils.MongoClient)
	notesRepo := repository.GetNotesRepo(utils.MongoClient)
	tasksRepo := repository.GetTasksRepo(utils.MongoClient)
	ideasRepo := repository.GetIdeasRepo(utils.MongoClient)
	eventsRepo := repository.GetEventsRepo(utils.MongoClient)
	xpHistoryRepo := repository.GetXPHistoryRepo(utils.MongoClient)
	sessionRepo := repository.GetSessionRepo(utils.MongoClient)

	// Services
	guestStore := services.NewGuestStore(utils.RedisClient)
	userService := usecase.NewUserService(usersRepo)
	rewardsService := usecase.NewRewardsService(usersRepo, xpHistoryRepo)
	notesService := usecase.NewNotesService(notesRepo, rewardsService)
	tasksService := usecase.NewTasksService(tasksRepo, rewardsService)
	ideasService := usecase.NewIdeasService(ideasRepo)
	eventsService := usecase.NewEventsService(eventsRepo, rewardsService)
	syncService := usecase.NewSyncService(guestStore, notesRepo, tasksRepo, ideasRepo, eventsRepo)

	// Handlers
	notesHandler := handler.NewNotesHandler(notesService)
	tasksHandler := handler.NewTasksHandler(tasksService)
	ideasHandler := handler.NewIdeasHandler(ideasService)
	eventsHandler := handler.NewEventsHandler(eventsService)
	guestHandler := handler.NewGuestHandler(guestStore)

	// Operational endpoints
	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegistrationHandler(c, userService, sessionRepo)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, userService, rewardsService, sessionRepo)
			})
			auth.POST("/guest", guestHandler.StartGuestSession)
		}
	}

	// Guest routes (guest token required, no account)
	guest := router.Group("/api/guest")
	guest.Use(middleware.GuestMiddleware())
	{
		guestNotes := guest.Group("/notes")
		{
			guestNotes.GET("", guestHandler.GetNotes)
			guestNotes.POST("", guestHandler.CreateNote)
			guestNotes.PUT("/:id", guestHandler.UpdateNote)
			guestNotes.DELETE("/:id", guestHandler.DeleteNote)
		}

		guestTasks := guest.Group("/tasks")
		{
			guestTasks.GET("", guestHandler.GetTasks)
			guestTasks.POST("", guestHandler.CreateTask)
			guestTasks.PUT("/:id", guestHandler.UpdateTask)
			guestTasks.DELETE("/:id", guestHandler.DeleteTask)
		}

		guestIdeas := guest.Group("/ideas")
		{
			guestIdeas.GET("", guestHandler.GetIdeas)
			guestIdeas.POST("", guestHandler.CreateIdea)
			guestIdeas.PUT("/:id", guestHandler.UpdateIdea)
			guestIdeas.DELETE("/:id", guestHandler.DeleteIdea)
		}

		guestEvents := guest.Group("/events")
		{
			guestEvents.GET("", guestHandler.GetEvents)
			guestEvents.POST("", guestHandler.CreateEvent)
			guestEvents.PUT("/:id", guestHandler.UpdateEvent)
			guestEvents.DELETE("/:id", guestHandler.DeleteEvent)
		}
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		// User management
		user := protected.Group("/user")
		{
			user.GET("/profile", func(c *gin.Context) {
				handler.GetProfileHandler(c, usersRepo)
			})
			user.POST("/change-password", func(c *gin.Context) {
				handler.ChangePasswordHandler(c, userService)
			})
			user.POST("/logout", func(c *gin.Context) {
				handler.LogoutHandler(c, sessionRepo)
			})
			user.DELETE("/delete", func(c *gin.Context) {
				handler.DeleteUserHandler(c, usersRepo, notesRepo, tasksRepo, ideasRepo, eventsRepo, xpHistoryRepo, sessionRepo)
			})

			twoFactor := user.Group("/2fa")
			{
				twoFactor.POST("/enable", func(c *gin.Context) {
					handler.Enable2FAHandler(c, usersRepo)
				})
				twoFactor.POST("/verify", func(c *gin.Context) {
					handler.VerifyAndActivate2FAHandler(c, usersRepo)
				})
				twoFactor.POST("/disable", func(c *gin.Context) {
					handler.Disable2FAHandler(c, usersRepo)
				})
			}
		}

		// Session management
		sessions := protected.Group("/sessions")
		{
			sessions.GET("/active", func(c *gin.Context) {
				handler.GetActiveSessionsHandler(c, sessionRepo)
			})
			sessions.DELETE("/:id", func(c *gin.Context) {
				handler.EndSessionHandler(c, sessionRepo)
			})
			sessions.POST("/logout-all", func(c *gin.Context) {
				handler.EndAllSessionsHandler(c, sessionRepo)
			})
		}

		// XP ledger
		protected.GET("/xp/history", func(c *gin.Context) {
			handler.GetXPHistoryHandler(c, xpHistoryRepo)
		})

		// Guest data merge
		protected.POST("/auth/sync", func(c *gin.Context) {
			handler.SyncHandler(c, syncService)
		})

		// Notes
		notes := protected.Group("/notes")
		{
			notes.GET("", notesHandler.GetNotes)
			notes.POST("", notesHandler.CreateNote)
			notes.PUT("/:id", notesHandler.UpdateNote)
			notes.DELETE("/:id", notesHandler.DeleteNote)
		}

		// Tasks
		tasks := protected.Group("/tasks")
		{
			tasks.GET("", tasksHandler.GetTasks)
			tasks.POST("", tasksHandler.CreateTask)
			tasks.PUT("/:id", tasksHandler.UpdateTask)
			tasks.DELETE("/:id", tasksHandler.DeleteTask)
		}

		// Ideas
		ideas := protected.Group("/ideas")
		{
			ideas.GET("", ideasHandler.GetIdeas)
			ideas.POST("", ideasHandler.CreateIdea)
			ideas.PUT("/:id", ideasHandler.UpdateIdea)
			ideas.DELETE("/:id", ideasHandler.DeleteIdea)
		}

		// Events
		events := protected.Group("/events")
		{
			events.GET("", eventsHandler.GetEvents)
			events.POST("", eventsHandler.CreateEvent)
			events.PUT("/:id", eventsHandler.UpdateEvent)
			events.DELETE("/:id", eventsHandler.DeleteEvent)
		}
	}

	return router
}

func main() {
	if err := repository.EnsureIndexes(utils.MongoClient); err != nil {
		log.Fatalf("Failed to ensure database indexes: %v", err)
	}

	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
