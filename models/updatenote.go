package models

import "time"

// Valid update note types.
const (
	UpdateTypeProgress   = "progress"
	UpdateTypeStatus     = "status"
	UpdateTypeIndicators = "indicators"
	UpdateTypeGeneral    = "general"
)

// UpdateNote records a change applied to a project, with the values before
// and after the change for auditability.
type UpdateNote struct {
	ID             string         `bson:"id" json:"id"`
	Content        string         `bson:"content" json:"content"`
	ProjectID      string         `bson:"projectId" json:"projectId"`
	UserID         string         `bson:"userId" json:"userId"`
	UpdateType     string         `bson:"updateType" json:"updateType"`
	PreviousValues map[string]any `bson:"previousValues,omitempty" json:"previousValues,omitempty"`
	NewValues      map[string]any `bson:"newValues,omitempty" json:"newValues,omitempty"`
	IsActive       bool           `bson:"isActive" json:"-"`
	CreatedAt      time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time      `bson:"updatedAt" json:"updatedAt"`
}
