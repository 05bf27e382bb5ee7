package activityRepo

import "obratrack/models"

// ActivityFilter narrows activity listings.
type ActivityFilter struct {
	ProjectID string // empty matches all projects
	UserID    string // empty matches all users
	Status    string // empty matches all statuses
}

// ActivityRepository defines methods for activity data access. Soft-deleted
// activities (isActive == false) are excluded from all lookups.
type ActivityRepository interface {
	// GetByID retrieves an active activity by its unique ID. Returns
	// (nil, nil) when no activity matches.
	GetByID(id string) (*models.Activity, error)
	// List retrieves active activities matching the filter, newest first.
	List(filter ActivityFilter) ([]models.Activity, error)
	// Create inserts a new activity record.
	Create(activity *models.Activity) error
	// Update modifies an existing activity record.
	Update(activity *models.Activity) error
	// SoftDelete marks an activity inactive without removing the document.
	SoftDelete(id string) error
}
