package models

import "time"

// Valid activity types.
const (
	ActivityTypeInstallation = "installation"
	ActivityTypeReview       = "review"
	ActivityTypeCompletion   = "completion"
	ActivityTypeInspection   = "inspection"
	ActivityTypeMaintenance  = "maintenance"
	ActivityTypeOther        = "other"
)

// Valid activity statuses.
const (
	ActivityStatusPending    = "pending"
	ActivityStatusInProgress = "in_progress"
	ActivityStatusCompleted  = "completed"
	ActivityStatusCancelled  = "cancelled"
)

// Activity is a unit of work logged against a project.
type Activity struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description,omitempty" json:"description,omitempty"`
	Date        string    `bson:"date" json:"date"`
	Type        string    `bson:"type" json:"type"`
	Status      string    `bson:"status" json:"status"`
	ProjectID   string    `bson:"projectId" json:"projectId"`
	UserID      string    `bson:"userId" json:"userId"`
	IsActive    bool      `bson:"isActive" json:"-"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}
