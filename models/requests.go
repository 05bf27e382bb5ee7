package models

// RegisterRequest is the payload for creating a new user.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=admin supervisor worker"`
	Position string `json:"position"`
}

// LoginRequest is the payload for authenticating a user.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ProjectInput is the payload for creating a project.
type ProjectInput struct {
	Name        string   `json:"name" binding:"required,max=200"`
	ClientName  string   `json:"clientName" binding:"required,max=200"`
	Description string   `json:"description" binding:"required,max=1000"`
	Location    string   `json:"location" binding:"required,max=200"`
	Budget      string   `json:"budget" binding:"required"`
	StartDate   string   `json:"startDate" binding:"required"`
	EndDate     string   `json:"endDate" binding:"required"`
	ImageURL    string   `json:"imageUrl"`
	Team        []string `json:"team"`
}

// ProjectUpdateRequest carries the mutable project fields plus an optional
// note describing the change. Pointer fields distinguish "not sent" from
// zero values.
type ProjectUpdateRequest struct {
	Name          *string        `json:"name,omitempty" binding:"omitempty,max=200"`
	ClientName    *string        `json:"clientName,omitempty" binding:"omitempty,max=200"`
	Description   *string        `json:"description,omitempty" binding:"omitempty,max=1000"`
	Location      *string        `json:"location,omitempty" binding:"omitempty,max=200"`
	Budget        *string        `json:"budget,omitempty"`
	StartDate     *string        `json:"startDate,omitempty"`
	EndDate       *string        `json:"endDate,omitempty"`
	Progress      *float64       `json:"progress,omitempty" binding:"omitempty,min=0,max=1"`
	Status        *string        `json:"status,omitempty" binding:"omitempty,oneof=Activo Pausado Completado Cancelado"`
	KeyIndicators *KeyIndicators `json:"keyIndicators,omitempty"`
	ImageURL      *string        `json:"imageUrl,omitempty"`
	Team          []string       `json:"team,omitempty"`
	Note          string         `json:"note,omitempty" binding:"omitempty,max=2000"`
}

// ActivityInput is the payload for creating or updating an activity.
type ActivityInput struct {
	Title       string `json:"title" binding:"required,max=300"`
	Description string `json:"description" binding:"omitempty,max=1000"`
	Date        string `json:"date" binding:"required"`
	Type        string `json:"type" binding:"omitempty,oneof=installation review completion inspection maintenance other"`
	Status      string `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	ProjectID   string `json:"projectId" binding:"required"`
}
