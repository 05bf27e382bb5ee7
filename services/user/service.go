package user

import (
	"fmt"
	"time"

	"obratrack/models"
	"obratrack/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a new user with a bcrypt-hashed password and returns a
// signed token for the fresh account.
func (s *DefaultUserService) Register(req models.RegisterRequest) (*AuthResponse, error) {
	existing, err := s.Repo.GetByEmail(req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleSupervisor
	}
	position := req.Position
	if position == "" {
		position = "Supervisor"
	}

	usr := &models.User{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
		Position: position,
		IsActive: true,
	}
	if err := s.Repo.Create(usr); err != nil {
		return nil, err
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, utils.AuthTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResponse{Token: token, User: usr.Summary()}, nil
}

// Authenticate verifies the credentials and issues a token. Unknown emails
// and wrong passwords are indistinguishable to the caller.
func (s *DefaultUserService) Authenticate(email, password string) (*AuthResponse, error) {
	usr, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if usr == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	usr.LastLogin = &now
	if err := s.Repo.Update(usr); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	token, err := utils.GenerateToken(usr.ID, usr.Email, utils.AuthTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &AuthResponse{Token: token, User: usr.Summary()}, nil
}

// GetUserByID retrieves a user by its unique ID.
func (s *DefaultUserService) GetUserByID(userID string) (*models.User, error) {
	return s.Repo.GetByID(userID)
}
