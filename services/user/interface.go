package user

import (
	userRepo "obratrack/database/repository/user"
	"obratrack/models"
)

// UserService handles registration, authentication and profile reads.
type UserService interface {
	// Register creates a new user and returns a signed token for it.
	Register(req models.RegisterRequest) (*AuthResponse, error)
	// Authenticate verifies credentials, updates lastLogin and returns a
	// signed token.
	Authenticate(email, password string) (*AuthResponse, error)
	// GetUserByID retrieves a user by its unique ID.
	GetUserByID(userID string) (*models.User, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// AuthResponse contains the user's token and identity summary.
type AuthResponse struct {
	Token string             `json:"token"`
	User  models.UserSummary `json:"user"`
}
