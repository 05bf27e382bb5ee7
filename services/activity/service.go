package activity

import (
	"errors"

	activityRepo "obratrack/database/repository/activity"
	"obratrack/models"

	"github.com/google/uuid"
)

// ErrActivityNotFound signals that no active activity matches the ID.
var ErrActivityNotFound = errors.New("activity not found")

// ErrNoAccess signals that the requester may not touch the activity's project.
var ErrNoAccess = errors.New("no access to this project")

// checkProjectAccess verifies the requester supervises the project or is an
// admin.
func (s *DefaultActivityService) checkProjectAccess(projectID string, requester *models.User) error {
	p, err := s.Projects.GetByID(projectID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrActivityNotFound
	}
	if p.Supervisor != requester.ID && requester.Role != models.RoleAdmin {
		return ErrNoAccess
	}
	return nil
}

// CreateActivity inserts a new activity on a project the requester can access.
func (s *DefaultActivityService) CreateActivity(input models.ActivityInput, requester *models.User) (*models.Activity, error) {
	if err := s.checkProjectAccess(input.ProjectID, requester); err != nil {
		return nil, err
	}

	typ := input.Type
	if typ == "" {
		typ = models.ActivityTypeOther
	}
	status := input.Status
	if status == "" {
		status = models.ActivityStatusCompleted
	}

	a := &models.Activity{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		Type:        typ,
		Status:      status,
		ProjectID:   input.ProjectID,
		UserID:      requester.ID,
		IsActive:    true,
	}
	if err := s.Repo.Create(a); err != nil {
		return nil, err
	}
	return a, nil
}

// GetActivity retrieves an activity on a project the requester can access.
func (s *DefaultActivityService) GetActivity(id string, requester *models.User) (*models.Activity, error) {
	a, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrActivityNotFound
	}
	if err := s.checkProjectAccess(a.ProjectID, requester); err != nil {
		return nil, err
	}
	return a, nil
}

// ListActivities retrieves activities, restricted to a project the requester
// can access when a project filter is given, otherwise to the requester's own.
func (s *DefaultActivityService) ListActivities(filter activityRepo.ActivityFilter, requester *models.User) ([]models.Activity, error) {
	if filter.ProjectID != "" {
		if err := s.checkProjectAccess(filter.ProjectID, requester); err != nil {
			return nil, err
		}
	} else if requester.Role != models.RoleAdmin {
		filter.UserID = requester.ID
	}
	return s.Repo.List(filter)
}

// UpdateActivity applies the new field values to an accessible activity.
func (s *DefaultActivityService) UpdateActivity(id string, input models.ActivityInput, requester *models.User) (*models.Activity, error) {
	a, err := s.GetActivity(id, requester)
	if err != nil {
		return nil, err
	}

	a.Title = input.Title
	a.Description = input.Description
	a.Date = input.Date
	if input.Type != "" {
		a.Type = input.Type
	}
	if input.Status != "" {
		a.Status = input.Status
	}

	if err := s.Repo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

// DeleteActivity soft-deletes an accessible activity.
func (s *DefaultActivityService) DeleteActivity(id string, requester *models.User) error {
	if _, err := s.GetActivity(id, requester); err != nil {
		return err
	}
	return s.Repo.SoftDelete(id)
}
