package project

import (
	activityRepo "obratrack/database/repository/activity"
	projectRepo "obratrack/database/repository/project"
	updateNoteRepo "obratrack/database/repository/updatenote"
	"obratrack/models"
)

// ProjectService manages projects, their audit notes and the dashboard stats.
type ProjectService interface {
	CreateProject(input models.ProjectInput, supervisorID string) (*models.Project, error)
	GetProject(id string, requester *models.User) (*models.Project, error)
	ListProjects(supervisorID string) ([]models.Project, error)
	// UpdateProject applies the change and records an update note capturing
	// the previous and new values.
	UpdateProject(id string, req models.ProjectUpdateRequest, requester *models.User) (*models.Project, error)
	DeleteProject(id string, requester *models.User) error
	ListUpdateNotes(projectID string, requester *models.User) ([]models.UpdateNote, error)
	// Stats computes the supervisor's dashboard summary from live data.
	Stats(supervisorID string) (*models.Stats, error)
}

// DefaultProjectService is the production implementation.
type DefaultProjectService struct {
	Repo       projectRepo.ProjectRepository
	Notes      updateNoteRepo.UpdateNoteRepository
	Activities activityRepo.ActivityRepository
}
