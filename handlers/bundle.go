package handlers

import (
	userRepoPkg "obratrack/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct so the routes
// package receives a single wiring point.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterHandler gin.HandlerFunc
	LoginHandler    gin.HandlerFunc
	MeHandler       gin.HandlerFunc

	// Project endpoints
	CreateProjectHandler   gin.HandlerFunc
	ListProjectsHandler    gin.HandlerFunc
	GetProjectHandler      gin.HandlerFunc
	UpdateProjectHandler   gin.HandlerFunc
	DeleteProjectHandler   gin.HandlerFunc
	ListUpdateNotesHandler gin.HandlerFunc
	StatsHandler           gin.HandlerFunc

	// Activity endpoints
	CreateActivityHandler gin.HandlerFunc
	ListActivitiesHandler gin.HandlerFunc
	GetActivityHandler    gin.HandlerFunc
	UpdateActivityHandler gin.HandlerFunc
	DeleteActivityHandler gin.HandlerFunc

	// TV pairing endpoints
	CreateTVSessionHandler gin.HandlerFunc
	ConnectTVHandler       gin.HandlerFunc
	TVStatusHandler        gin.HandlerFunc
	DisconnectTVHandler    gin.HandlerFunc
	TVEventsHandler        gin.HandlerFunc

	// Storage endpoints
	UploadImageHandler gin.HandlerFunc
	DeleteImageHandler gin.HandlerFunc
}
