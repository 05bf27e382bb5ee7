package handlers

import (
	"errors"
	"net/http"

	"obratrack/models"
	"obratrack/services/project"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProjectHandler exposes project CRUD, update-note history and stats.
type ProjectHandler struct {
	Service project.ProjectService
}

// NewProjectHandler wires the project endpoints to a project service.
func NewProjectHandler(svc project.ProjectService) *ProjectHandler {
	return &ProjectHandler{Service: svc}
}

func (h *ProjectHandler) respondProjectError(c *gin.Context, err error, action string) {
	logger := getLogger(c)
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
	case errors.Is(err, project.ErrNoAccess):
		c.JSON(http.StatusForbidden, gin.H{"error": "No access to this project"})
	default:
		logger.Error("Project operation failed", zap.String("action", action), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// CreateProjectHandler creates a project supervised by the requester.
func (h *ProjectHandler) CreateProjectHandler(c *gin.Context) {
	logger := getLogger(c)

	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.ProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid project payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, err := h.Service.CreateProject(input, u.ID)
	if err != nil {
		h.respondProjectError(c, err, "create project")
		return
	}

	c.JSON(http.StatusCreated, p)
}

// ListProjectsHandler lists the requester's projects, newest first.
func (h *ProjectHandler) ListProjectsHandler(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	projects, err := h.Service.ListProjects(u.ID)
	if err != nil {
		h.respondProjectError(c, err, "list projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects, "count": len(projects)})
}

// GetProjectHandler returns one project the requester can access.
func (h *ProjectHandler) GetProjectHandler(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	p, err := h.Service.GetProject(c.Param("id"), u)
	if err != nil {
		h.respondProjectError(c, err, "get project")
		return
	}

	c.JSON(http.StatusOK, p)
}

// UpdateProjectHandler applies a partial update and records an update note.
func (h *ProjectHandler) UpdateProjectHandler(c *gin.Context) {
	logger := getLogger(c)

	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.ProjectUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid project update payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	p, err := h.Service.UpdateProject(c.Param("id"), req, u)
	if err != nil {
		h.respondProjectError(c, err, "update project")
		return
	}

	c.JSON(http.StatusOK, p)
}

// DeleteProjectHandler soft-deletes a project.
func (h *ProjectHandler) DeleteProjectHandler(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.Service.DeleteProject(c.Param("id"), u); err != nil {
		h.respondProjectError(c, err, "delete project")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

// ListUpdateNotesHandler returns the audit trail of a project's updates.
func (h *ProjectHandler) ListUpdateNotesHandler(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	notes, err := h.Service.ListUpdateNotes(c.Param("id"), u)
	if err != nil {
		h.respondProjectError(c, err, "list update notes")
		return
	}

	c.JSON(http.StatusOK, gin.H{"updateNotes": notes, "count": len(notes)})
}

// StatsHandler computes the requester's dashboard summary.
func (h *ProjectHandler) StatsHandler(c *gin.Context) {
	u := currentUser(c)
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	stats, err := h.Service.Stats(u.ID)
	if err != nil {
		h.respondProjectError(c, err, "compute stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}
