package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"obratrack/config"
	"obratrack/cron"
	"obratrack/database"
	activityRepoPkg "obratrack/database/repository/activity"
	projectRepoPkg "obratrack/database/repository/project"
	tvSessionRepoPkg "obratrack/database/repository/tvsession"
	updateNoteRepoPkg "obratrack/database/repository/updatenote"
	userRepoPkg "obratrack/database/repository/user"
	"obratrack/handlers"
	"obratrack/middleware"
	"obratrack/routes"
	"obratrack/services/activity"
	"obratrack/services/project"
	"obratrack/services/realtime"
	"obratrack/services/storage"
	"obratrack/services/tv"
	"obratrack/services/user"
	"obratrack/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.InitRealtimeClient()
	utils.InitTaskQueueClient()

	utils.StartHealthMonitor(map[string]utils.RedisPinger{
		"cache":     utils.GetCacheClient(),
		"auth":      utils.GetAuthCacheClient(),
		"realtime":  utils.GetRealtimeClient(),
		"taskQueue": utils.GetTaskQueueClient(),
	}, database.MongoClient)

	storageService, err := storage.NewCloudinaryStorageService()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	projectRepo := projectRepoPkg.NewMongoProjectRepo()
	activityRepo := activityRepoPkg.NewMongoActivityRepo()
	updateNoteRepo := updateNoteRepoPkg.NewMongoUpdateNoteRepo()
	tvSessionRepo := tvSessionRepoPkg.NewMongoTVSessionRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	projectService := &project.DefaultProjectService{
		Repo:       projectRepo,
		Notes:      updateNoteRepo,
		Activities: activityRepo,
	}

	activityService := &activity.DefaultActivityService{
		Repo:     activityRepo,
		Projects: projectRepo,
	}

	channelService := realtime.NewRedisChannelService(utils.GetRealtimeClient(), logger)
	scheduler := cron.NewTaskScheduler()
	defer scheduler.Close()

	sessionTTL := time.Duration(config.AppConfig.TVSessionTTLMin) * time.Minute

	tvService := &tv.DefaultTVService{
		Repo:      tvSessionRepo,
		Users:     userRepo,
		Channel:   channelService,
		Generator: tv.NewCodeGenerator(config.AppConfig.TVQRCodeSize),
		Scheduler: scheduler,
		TTL:       sessionTTL,
	}

	// The expiry worker closes sessions whose deadline elapsed so displays
	// still listening hear about it.
	cron.InitExpiryWorker(tvService)

	// handlers.
	authHandler := handlers.NewAuthHandler(userService)
	projectHandler := handlers.NewProjectHandler(projectService)
	activityHandler := handlers.NewActivityHandler(activityService)
	tvHandler := handlers.NewTVHandler(tvService, sessionTTL)
	storageHandler := handlers.NewStorageHandler(storageService)

	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		RegisterHandler: authHandler.RegisterHandler,
		LoginHandler:    authHandler.LoginHandler,
		MeHandler:       authHandler.MeHandler,

		CreateProjectHandler:   projectHandler.CreateProjectHandler,
		ListProjectsHandler:    projectHandler.ListProjectsHandler,
		GetProjectHandler:      projectHandler.GetProjectHandler,
		UpdateProjectHandler:   projectHandler.UpdateProjectHandler,
		DeleteProjectHandler:   projectHandler.DeleteProjectHandler,
		ListUpdateNotesHandler: projectHandler.ListUpdateNotesHandler,
		StatsHandler:           projectHandler.StatsHandler,

		CreateActivityHandler: activityHandler.CreateActivityHandler,
		ListActivitiesHandler: activityHandler.ListActivitiesHandler,
		GetActivityHandler:    activityHandler.GetActivityHandler,
		UpdateActivityHandler: activityHandler.UpdateActivityHandler,
		DeleteActivityHandler: activityHandler.DeleteActivityHandler,

		CreateTVSessionHandler: tvHandler.CreateSessionHandler,
		ConnectTVHandler:       tvHandler.ConnectHandler,
		TVStatusHandler:        tvHandler.StatusHandler,
		DisconnectTVHandler:    tvHandler.DisconnectHandler,
		TVEventsHandler:        tvHandler.EventsHandler(channelService),

		UploadImageHandler: storageHandler.UploadImageHandler,
		DeleteImageHandler: storageHandler.DeleteImageHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
