package project

import (
	"fmt"

	"obratrack/models"
	"obratrack/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// access reports whether the requester may read or mutate the project.
func access(p *models.Project, requester *models.User) bool {
	return p.Supervisor == requester.ID || requester.Role == models.RoleAdmin
}

// CreateProject inserts a new active project supervised by the given user.
func (s *DefaultProjectService) CreateProject(input models.ProjectInput, supervisorID string) (*models.Project, error) {
	p := &models.Project{
		ID:          uuid.NewString(),
		Name:        input.Name,
		ClientName:  input.ClientName,
		Description: input.Description,
		Location:    input.Location,
		Budget:      input.Budget,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      models.ProjectStatusActive,
		ImageURL:    input.ImageURL,
		Supervisor:  supervisorID,
		Team:        input.Team,
		IsActive:    true,
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProject retrieves a project the requester has access to.
func (s *DefaultProjectService) GetProject(id string, requester *models.User) (*models.Project, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProjectNotFound
	}
	if !access(p, requester) {
		return nil, ErrNoAccess
	}
	return p, nil
}

// ListProjects retrieves the supervisor's active projects.
func (s *DefaultProjectService) ListProjects(supervisorID string) ([]models.Project, error) {
	return s.Repo.ListBySupervisor(supervisorID)
}

// UpdateProject applies the requested changes and records an update note
// with the values before and after.
func (s *DefaultProjectService) UpdateProject(id string, req models.ProjectUpdateRequest, requester *models.User) (*models.Project, error) {
	p, err := s.GetProject(id, requester)
	if err != nil {
		return nil, err
	}

	previous := map[string]any{}
	changed := map[string]any{}
	updateType := models.UpdateTypeGeneral

	if req.Name != nil && *req.Name != p.Name {
		previous["name"], changed["name"] = p.Name, *req.Name
		p.Name = *req.Name
	}
	if req.ClientName != nil && *req.ClientName != p.ClientName {
		previous["clientName"], changed["clientName"] = p.ClientName, *req.ClientName
		p.ClientName = *req.ClientName
	}
	if req.Description != nil && *req.Description != p.Description {
		previous["description"], changed["description"] = p.Description, *req.Description
		p.Description = *req.Description
	}
	if req.Location != nil && *req.Location != p.Location {
		previous["location"], changed["location"] = p.Location, *req.Location
		p.Location = *req.Location
	}
	if req.Budget != nil && *req.Budget != p.Budget {
		previous["budget"], changed["budget"] = p.Budget, *req.Budget
		p.Budget = *req.Budget
	}
	if req.StartDate != nil && *req.StartDate != p.StartDate {
		previous["startDate"], changed["startDate"] = p.StartDate, *req.StartDate
		p.StartDate = *req.StartDate
	}
	if req.EndDate != nil && *req.EndDate != p.EndDate {
		previous["endDate"], changed["endDate"] = p.EndDate, *req.EndDate
		p.EndDate = *req.EndDate
	}
	if req.ImageURL != nil && *req.ImageURL != p.ImageURL {
		previous["imageUrl"], changed["imageUrl"] = p.ImageURL, *req.ImageURL
		p.ImageURL = *req.ImageURL
	}
	if req.Team != nil {
		previous["team"], changed["team"] = p.Team, req.Team
		p.Team = req.Team
	}
	if req.Progress != nil && *req.Progress != p.Progress {
		previous["progress"], changed["progress"] = p.Progress, *req.Progress
		p.Progress = *req.Progress
		updateType = models.UpdateTypeProgress
	}
	if req.Status != nil && *req.Status != p.Status {
		previous["status"], changed["status"] = p.Status, *req.Status
		p.Status = *req.Status
		updateType = models.UpdateTypeStatus
	}
	if req.KeyIndicators != nil && *req.KeyIndicators != p.KeyIndicators {
		previous["keyIndicators"], changed["keyIndicators"] = p.KeyIndicators, *req.KeyIndicators
		p.KeyIndicators = *req.KeyIndicators
		updateType = models.UpdateTypeIndicators
	}

	if len(changed) == 0 && req.Note == "" {
		return p, nil
	}

	if err := s.Repo.Update(p); err != nil {
		return nil, err
	}

	content := req.Note
	if content == "" {
		content = fmt.Sprintf("Project updated (%s)", updateType)
	}
	note := &models.UpdateNote{
		ID:             uuid.NewString(),
		Content:        content,
		ProjectID:      p.ID,
		UserID:         requester.ID,
		UpdateType:     updateType,
		PreviousValues: previous,
		NewValues:      changed,
		IsActive:       true,
	}
	if err := s.Notes.Create(note); err != nil {
		// The update itself succeeded; losing the audit note is logged, not fatal.
		utils.GetLogger().Warn("project: failed to record update note",
			zap.String("projectId", p.ID), zap.Error(err))
	}

	return p, nil
}

// DeleteProject soft-deletes a project the requester has access to.
func (s *DefaultProjectService) DeleteProject(id string, requester *models.User) error {
	if _, err := s.GetProject(id, requester); err != nil {
		return err
	}
	return s.Repo.SoftDelete(id)
}

// ListUpdateNotes retrieves the audit trail of a project the requester has
// access to.
func (s *DefaultProjectService) ListUpdateNotes(projectID string, requester *models.User) ([]models.UpdateNote, error) {
	if _, err := s.GetProject(projectID, requester); err != nil {
		return nil, err
	}
	return s.Notes.ListByProject(projectID)
}
