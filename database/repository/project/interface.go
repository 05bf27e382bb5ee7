package projectRepo

import "obratrack/models"

// ProjectRepository defines methods for project data access. Soft-deleted
// projects (isActive == false) are excluded from all lookups.
type ProjectRepository interface {
	// GetByID retrieves an active project by its unique ID. Returns
	// (nil, nil) when no project matches.
	GetByID(id string) (*models.Project, error)
	// ListBySupervisor retrieves the supervisor's active projects, newest first.
	ListBySupervisor(supervisorID string) ([]models.Project, error)
	// Create inserts a new project record.
	Create(project *models.Project) error
	// Update modifies an existing project record.
	Update(project *models.Project) error
	// SoftDelete marks a project inactive without removing the document.
	SoftDelete(id string) error
}
