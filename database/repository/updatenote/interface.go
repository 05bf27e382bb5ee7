package updateNoteRepo

import "obratrack/models"

// UpdateNoteRepository defines methods for project update note data access.
type UpdateNoteRepository interface {
	// Create inserts a new update note record.
	Create(note *models.UpdateNote) error
	// ListByProject retrieves the active notes for a project, newest first.
	ListByProject(projectID string) ([]models.UpdateNote, error)
}
