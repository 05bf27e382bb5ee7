package handlers

import (
	"errors"
	"net/http"

	activityRepo "obratrack/database/repository/activity"
	"obratrack/models"
	"obratrack/services/activity"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ActivityHandler exposes the activity log endpoints.
type ActivityHandler struct {
	Service activity.ActivityService
}

// NewActivityHandler wires the activity endpoints to an activity service.
func NewActivityHandler(svc activity.ActivityService) *ActivityHandler {
	return &ActivityHandler{Service: svc}
}

func (h *ActivityHandler) respondActivityError(c *gin.Context, err error, action string) {
	logger := getLogger(c)
	switch {
	case errors.Is(err, activity.ErrActivityNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Activity not found"})
	case errors.Is(err, activity.ErrNoAccess):
		c.JSON(http.StatusForbidden, gin.H{"error": "No access to this project"})
	default:
		logger.Error("Activity operation failed", zap.String("action", action), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// CreateActivityHandler records a new activity on an accessible project.
func (h *ActivityHandler) CreateActivityHandler(c *gin.Context) {
	logger := getLogger(c)

	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid activity payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	a, err := h.Service.CreateActivity(input, u)
	if err != nil {
		h.respondActivityError(c, err, "create activity")
		return
	}

	c.JSON(http.StatusCreated, a)
}

// ListActivitiesHandler lists activities filtered by project and status.
func (h *ActivityHandler) ListActivitiesHandler(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	filter := activityRepo.ActivityFilter{
		ProjectID: c.Query("projectId"),
		Status:    c.Query("status"),
	}

	activities, err := h.Service.ListActivities(filter, u)
	if err != nil {
		h.respondActivityError(c, err, "list activities")
		return
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities, "count": len(activities)})
}

// GetActivityHandler returns one accessible activity.
func (h *ActivityHandler) GetActivityHandler(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	a, err := h.Service.GetActivity(c.Param("id"), u)
	if err != nil {
		h.respondActivityError(c, err, "get activity")
		return
	}

	c.JSON(http.StatusOK, a)
}

// UpdateActivityHandler replaces the mutable fields of an activity.
func (h *ActivityHandler) UpdateActivityHandler(c *gin.Context) {
	logger := getLogger(c)

	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid activity payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	a, err := h.Service.UpdateActivity(c.Param("id"), input, u)
	if err != nil {
		h.respondActivityError(c, err, "update activity")
		return
	}

	c.JSON(http.StatusOK, a)
}

// DeleteActivityHandler soft-deletes an activity.
func (h *ActivityHandler) DeleteActivityHandler(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.DeleteActivity(c.Param("id"), u); err != nil {
		h.respondActivityError(c, err, "delete activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activity deleted successfully"})
}
