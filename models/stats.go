package models

import "time"

// Stats is the per-supervisor dashboard summary computed from live data.
type Stats struct {
	ActiveProjects  int       `json:"activeProjects"`
	ActiveAlerts    int       `json:"activeAlerts"`
	TotalBudget     string    `json:"totalBudget"`
	AverageProgress float64   `json:"averageProgress"`
	LastUpdated     time.Time `json:"lastUpdated"`
	UserID          string    `json:"user"`
}
