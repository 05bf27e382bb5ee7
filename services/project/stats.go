package project

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	activityRepo "obratrack/database/repository/activity"
	"obratrack/models"
)

// parseBudget extracts the numeric amount from a free-form budget string
// such as "$1,500,000 MXN". Unparseable budgets count as zero.
func parseBudget(budget string) float64 {
	var b strings.Builder
	for _, r := range budget {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0
	}
	return v
}

// formatBudget renders a total with thousands separators, mirroring the
// client's display format.
func formatBudget(total float64) string {
	whole := int64(total)
	s := strconv.FormatInt(whole, 10)

	negative := strings.HasPrefix(s, "-")
	if negative {
		s = s[1:]
	}
	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	out := strings.Join(groups, ",")
	if negative {
		out = "-" + out
	}
	return "$" + out
}

// activityOverdue reports whether an activity is past its date and still not
// finished. Activity dates use YYYY-MM-DD; malformed dates never alert.
func activityOverdue(a models.Activity, now time.Time) bool {
	if a.Status == models.ActivityStatusCompleted || a.Status == models.ActivityStatusCancelled {
		return false
	}
	d, err := time.Parse("2006-01-02", a.Date)
	if err != nil {
		return false
	}
	return d.Before(now.Truncate(24 * time.Hour))
}

// Stats computes the supervisor's dashboard summary from the current
// projects and activities. Alerts are the overdue unfinished activities on
// the supervisor's active projects.
func (s *DefaultProjectService) Stats(supervisorID string) (*models.Stats, error) {
	projects, err := s.Repo.ListBySupervisor(supervisorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects for stats: %w", err)
	}

	var (
		active        int
		totalBudget   float64
		totalProgress float64
	)
	projectIDs := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		projectIDs[p.ID] = struct{}{}
		if p.Status == models.ProjectStatusActive {
			active++
		}
		totalBudget += parseBudget(p.Budget)
		totalProgress += p.Progress
	}

	averageProgress := 0.0
	if len(projects) > 0 {
		averageProgress = totalProgress / float64(len(projects))
	}

	alerts := 0
	now := time.Now()
	activities, err := s.Activities.List(activityRepo.ActivityFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to load activities for stats: %w", err)
	}
	for _, a := range activities {
		if _, ours := projectIDs[a.ProjectID]; !ours {
			continue
		}
		if activityOverdue(a, now) {
			alerts++
		}
	}

	return &models.Stats{
		ActiveProjects:  active,
		ActiveAlerts:    alerts,
		TotalBudget:     formatBudget(totalBudget),
		AverageProgress: averageProgress,
		LastUpdated:     now,
		UserID:          supervisorID,
	}, nil
}
