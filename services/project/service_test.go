package project

import (
	"errors"
	"testing"

	"obratrack/models"
)

type fakeNoteRepo struct {
	notes []models.UpdateNote
}

func (r *fakeNoteRepo) Create(n *models.UpdateNote) error {
	r.notes = append(r.notes, *n)
	return nil
}

func (r *fakeNoteRepo) ListByProject(projectID string) ([]models.UpdateNote, error) {
	var out []models.UpdateNote
	for _, n := range r.notes {
		if n.ProjectID == projectID {
			out = append(out, n)
		}
	}
	return out, nil
}

func supervisor() *models.User {
	return &models.User{ID: "sup-1", Role: models.RoleSupervisor}
}

func ptr[T any](v T) *T { return &v }

func newProjectService(projects ...models.Project) (*DefaultProjectService, *fakeNoteRepo) {
	notes := &fakeNoteRepo{}
	svc := &DefaultProjectService{
		Repo:       &fakeProjectRepo{projects: projects},
		Notes:      notes,
		Activities: &fakeActivityRepo{},
	}
	return svc, notes
}

func TestGetProjectEnforcesAccess(t *testing.T) {
	svc, _ := newProjectService(models.Project{ID: "p1", Supervisor: "sup-1", IsActive: true})

	if _, err := svc.GetProject("p1", supervisor()); err != nil {
		t.Errorf("GetProject() by supervisor error = %v", err)
	}

	other := &models.User{ID: "sup-2", Role: models.RoleSupervisor}
	if _, err := svc.GetProject("p1", other); !errors.Is(err, ErrNoAccess) {
		t.Errorf("GetProject() by other supervisor error = %v, want ErrNoAccess", err)
	}

	admin := &models.User{ID: "adm-1", Role: models.RoleAdmin}
	if _, err := svc.GetProject("p1", admin); err != nil {
		t.Errorf("GetProject() by admin error = %v", err)
	}

	if _, err := svc.GetProject("missing", supervisor()); !errors.Is(err, ErrProjectNotFound) {
		t.Errorf("GetProject() for missing id error = %v, want ErrProjectNotFound", err)
	}
}

func TestUpdateProjectRecordsNote(t *testing.T) {
	svc, notes := newProjectService(models.Project{
		ID: "p1", Supervisor: "sup-1", IsActive: true,
		Progress: 0.4, Status: models.ProjectStatusActive,
	})

	updated, err := svc.UpdateProject("p1", models.ProjectUpdateRequest{
		Progress: ptr(0.6),
		Note:     "Avance de obra semanal",
	}, supervisor())
	if err != nil {
		t.Fatalf("UpdateProject() error = %v", err)
	}
	if updated.Progress != 0.6 {
		t.Errorf("Progress = %v, want 0.6", updated.Progress)
	}

	if len(notes.notes) != 1 {
		t.Fatalf("recorded notes = %d, want 1", len(notes.notes))
	}
	note := notes.notes[0]
	if note.UpdateType != models.UpdateTypeProgress {
		t.Errorf("UpdateType = %q, want %q", note.UpdateType, models.UpdateTypeProgress)
	}
	if note.Content != "Avance de obra semanal" {
		t.Errorf("Content = %q, want the provided note", note.Content)
	}
	if note.PreviousValues["progress"] != 0.4 {
		t.Errorf("PreviousValues[progress] = %v, want 0.4", note.PreviousValues["progress"])
	}
	if note.NewValues["progress"] != 0.6 {
		t.Errorf("NewValues[progress] = %v, want 0.6", note.NewValues["progress"])
	}
}

func TestUpdateProjectNoChangesNoNote(t *testing.T) {
	svc, notes := newProjectService(models.Project{
		ID: "p1", Supervisor: "sup-1", IsActive: true, Name: "Torre Norte",
	})

	// Same value as stored: nothing changed, nothing recorded.
	if _, err := svc.UpdateProject("p1", models.ProjectUpdateRequest{
		Name: ptr("Torre Norte"),
	}, supervisor()); err != nil {
		t.Fatalf("UpdateProject() error = %v", err)
	}

	if len(notes.notes) != 0 {
		t.Errorf("recorded notes = %d, want 0", len(notes.notes))
	}
}

func TestUpdateProjectStatusType(t *testing.T) {
	svc, notes := newProjectService(models.Project{
		ID: "p1", Supervisor: "sup-1", IsActive: true, Status: models.ProjectStatusActive,
	})

	if _, err := svc.UpdateProject("p1", models.ProjectUpdateRequest{
		Status: ptr(models.ProjectStatusPaused),
	}, supervisor()); err != nil {
		t.Fatalf("UpdateProject() error = %v", err)
	}

	if len(notes.notes) != 1 {
		t.Fatalf("recorded notes = %d, want 1", len(notes.notes))
	}
	if notes.notes[0].UpdateType != models.UpdateTypeStatus {
		t.Errorf("UpdateType = %q, want %q", notes.notes[0].UpdateType, models.UpdateTypeStatus)
	}
}
