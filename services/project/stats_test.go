package project

import (
	"testing"
	"time"

	activityRepo "obratrack/database/repository/activity"
	"obratrack/models"
)

func TestParseBudget(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"$1,500,000 MXN", 1500000},
		{"2500000", 2500000},
		{"$0", 0},
		{"presupuesto pendiente", 0},
		{"", 0},
		{"$12,345.67", 12345.67},
	}
	for _, tt := range tests {
		if got := parseBudget(tt.in); got != tt.want {
			t.Errorf("parseBudget(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatBudget(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{1500, "$1,500"},
		{1500000, "$1,500,000"},
		{123456789, "$123,456,789"},
	}
	for _, tt := range tests {
		if got := formatBudget(tt.in); got != tt.want {
			t.Errorf("formatBudget(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestActivityOverdue(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		act  models.Activity
		want bool
	}{
		{"pending past date", models.Activity{Date: "2026-03-01", Status: models.ActivityStatusPending}, true},
		{"in progress past date", models.Activity{Date: "2026-03-10", Status: models.ActivityStatusInProgress}, true},
		{"completed past date", models.Activity{Date: "2026-03-01", Status: models.ActivityStatusCompleted}, false},
		{"cancelled past date", models.Activity{Date: "2026-03-01", Status: models.ActivityStatusCancelled}, false},
		{"pending future date", models.Activity{Date: "2026-04-01", Status: models.ActivityStatusPending}, false},
		{"malformed date", models.Activity{Date: "mañana", Status: models.ActivityStatusPending}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := activityOverdue(tt.act, now); got != tt.want {
				t.Errorf("activityOverdue() = %v, want %v", got, tt.want)
			}
		})
	}
}

type fakeProjectRepo struct {
	projects []models.Project
}

func (r *fakeProjectRepo) GetByID(id string) (*models.Project, error) {
	for i := range r.projects {
		if r.projects[i].ID == id {
			return &r.projects[i], nil
		}
	}
	return nil, nil
}

func (r *fakeProjectRepo) ListBySupervisor(supervisorID string) ([]models.Project, error) {
	var out []models.Project
	for _, p := range r.projects {
		if p.Supervisor == supervisorID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) Create(p *models.Project) error { return nil }
func (r *fakeProjectRepo) Update(p *models.Project) error { return nil }
func (r *fakeProjectRepo) SoftDelete(id string) error     { return nil }

type fakeActivityRepo struct {
	activities []models.Activity
}

func (r *fakeActivityRepo) GetByID(id string) (*models.Activity, error) { return nil, nil }

func (r *fakeActivityRepo) List(filter activityRepo.ActivityFilter) ([]models.Activity, error) {
	var out []models.Activity
	for _, a := range r.activities {
		if filter.ProjectID != "" && a.ProjectID != filter.ProjectID {
			continue
		}
		if filter.UserID != "" && a.UserID != filter.UserID {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeActivityRepo) Create(a *models.Activity) error { return nil }
func (r *fakeActivityRepo) Update(a *models.Activity) error { return nil }
func (r *fakeActivityRepo) SoftDelete(id string) error      { return nil }

func TestStatsAggregation(t *testing.T) {
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	svc := &DefaultProjectService{
		Repo: &fakeProjectRepo{projects: []models.Project{
			{ID: "p1", Supervisor: "sup-1", Status: models.ProjectStatusActive, Budget: "$1,000,000", Progress: 0.5},
			{ID: "p2", Supervisor: "sup-1", Status: models.ProjectStatusActive, Budget: "$500,000", Progress: 0.3},
			{ID: "p3", Supervisor: "sup-1", Status: models.ProjectStatusCompleted, Budget: "$250,000", Progress: 1.0},
			{ID: "p4", Supervisor: "sup-2", Status: models.ProjectStatusActive, Budget: "$9,000,000", Progress: 0.1},
		}},
		Activities: &fakeActivityRepo{activities: []models.Activity{
			{ID: "a1", ProjectID: "p1", Date: yesterday, Status: models.ActivityStatusPending},
			{ID: "a2", ProjectID: "p1", Date: yesterday, Status: models.ActivityStatusCompleted},
			{ID: "a3", ProjectID: "p2", Date: tomorrow, Status: models.ActivityStatusPending},
			{ID: "a4", ProjectID: "p4", Date: yesterday, Status: models.ActivityStatusPending}, // other supervisor
		}},
	}

	stats, err := svc.Stats("sup-1")
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if stats.ActiveProjects != 2 {
		t.Errorf("ActiveProjects = %d, want 2", stats.ActiveProjects)
	}
	if stats.TotalBudget != "$1,750,000" {
		t.Errorf("TotalBudget = %q, want $1,750,000", stats.TotalBudget)
	}
	if want := (0.5 + 0.3 + 1.0) / 3; stats.AverageProgress < want-1e-9 || stats.AverageProgress > want+1e-9 {
		t.Errorf("AverageProgress = %v, want %v", stats.AverageProgress, want)
	}
	if stats.ActiveAlerts != 1 {
		t.Errorf("ActiveAlerts = %d, want 1", stats.ActiveAlerts)
	}
	if stats.UserID != "sup-1" {
		t.Errorf("UserID = %q, want sup-1", stats.UserID)
	}
}

func TestStatsWithNoProjects(t *testing.T) {
	svc := &DefaultProjectService{
		Repo:       &fakeProjectRepo{},
		Activities: &fakeActivityRepo{},
	}

	stats, err := svc.Stats("sup-9")
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.ActiveProjects != 0 || stats.ActiveAlerts != 0 {
		t.Errorf("counts = %d/%d, want 0/0", stats.ActiveProjects, stats.ActiveAlerts)
	}
	if stats.AverageProgress != 0 {
		t.Errorf("AverageProgress = %v, want 0", stats.AverageProgress)
	}
	if stats.TotalBudget != "$0" {
		t.Errorf("TotalBudget = %q, want $0", stats.TotalBudget)
	}
}
