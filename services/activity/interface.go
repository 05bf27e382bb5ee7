package activity

import (
	activityRepo "obratrack/database/repository/activity"
	projectRepo "obratrack/database/repository/project"
	"obratrack/models"
)

// ActivityService manages activity records, enforcing project access on the
// way in.
type ActivityService interface {
	CreateActivity(input models.ActivityInput, requester *models.User) (*models.Activity, error)
	GetActivity(id string, requester *models.User) (*models.Activity, error)
	ListActivities(filter activityRepo.ActivityFilter, requester *models.User) ([]models.Activity, error)
	UpdateActivity(id string, input models.ActivityInput, requester *models.User) (*models.Activity, error)
	DeleteActivity(id string, requester *models.User) error
}

// DefaultActivityService is the production implementation.
type DefaultActivityService struct {
	Repo     activityRepo.ActivityRepository
	Projects projectRepo.ProjectRepository
}
