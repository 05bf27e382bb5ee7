package routes

import (
	"time"

	"obratrack/handlers"
	"obratrack/middleware"
	"obratrack/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.MeHandler)
	}
}

// RegisterProjectRoutes registers project CRUD and update-note endpoints.
func RegisterProjectRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/projects")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateProjectHandler)
		api.GET("", hb.ListProjectsHandler)
		api.GET("/:id", hb.GetProjectHandler)
		api.PUT("/:id", hb.UpdateProjectHandler)
		api.DELETE("/:id", hb.DeleteProjectHandler)
		api.GET("/:id/update-notes", hb.ListUpdateNotesHandler)
	}
}

// RegisterActivityRoutes registers the activity log endpoints.
func RegisterActivityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/activities")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateActivityHandler)
		api.GET("", hb.ListActivitiesHandler)
		api.GET("/:id", hb.GetActivityHandler)
		api.PUT("/:id", hb.UpdateActivityHandler)
		api.DELETE("/:id", hb.DeleteActivityHandler)
	}
}

// RegisterStatsRoutes registers the dashboard summary endpoint.
func RegisterStatsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/stats")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.StatsHandler)
	}
}

// RegisterTVRoutes registers the display pairing endpoints. Session creation,
// status and the event stream stay public: the display side holds no
// credentials until a user pairs with it. Connect and disconnect require the
// phone's token.
func RegisterTVRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/tv")
	{
		api.POST("/sessions", hb.CreateTVSessionHandler)
		api.GET("/sessions/:token", hb.TVStatusHandler)
		api.GET("/sessions/:token/events", hb.TVEventsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("/sessions/:token/connect", hb.ConnectTVHandler)
		protected.POST("/sessions/:token/disconnect", hb.DisconnectTVHandler)
	}
}

// RegisterUploadRoutes registers the image upload endpoints.
func RegisterUploadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/upload")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleSupervisor))
		api.POST("/image", hb.UploadImageHandler)
		api.DELETE("/image", hb.DeleteImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterProjectRoutes(r, hb)
	RegisterActivityRoutes(r, hb)
	RegisterStatsRoutes(r, hb)
	RegisterTVRoutes(r, hb)
	RegisterUploadRoutes(r, hb)
	RegisterHealthRoute(r)
}
