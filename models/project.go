package models

import "time"

// KeyIndicators are the 0..1 quality metrics tracked per project.
type KeyIndicators struct {
	Calidad float64 `bson:"calidad" json:"Calidad"`
	Tiempo  float64 `bson:"tiempo" json:"Tiempo"`
	Costo   float64 `bson:"costo" json:"Costo"`
}

// Valid project statuses.
const (
	ProjectStatusActive    = "Activo"
	ProjectStatusPaused    = "Pausado"
	ProjectStatusCompleted = "Completado"
	ProjectStatusCancelled = "Cancelado"
)

// Project is a construction project supervised by a user.
type Project struct {
	ID            string        `bson:"id" json:"id"`
	Name          string        `bson:"name" json:"name"`
	ClientName    string        `bson:"clientName" json:"clientName"`
	Description   string        `bson:"description" json:"description"`
	Location      string        `bson:"location" json:"location"`
	Budget        string        `bson:"budget" json:"budget"`
	StartDate     string        `bson:"startDate" json:"startDate"`
	EndDate       string        `bson:"endDate" json:"endDate"`
	Progress      float64       `bson:"progress" json:"progress"`
	Status        string        `bson:"status" json:"status"`
	KeyIndicators KeyIndicators `bson:"keyIndicators" json:"keyIndicators"`
	ImageURL      string        `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	Supervisor    string        `bson:"supervisor" json:"supervisor"`
	Team          []string      `bson:"team,omitempty" json:"team,omitempty"`
	IsActive      bool          `bson:"isActive" json:"-"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}
