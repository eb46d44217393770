// Package server provides the HTTP REST API for the resume studio.
package server

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/types"
)

// DBClient is the slice of the persistence layer the HTTP server uses.
// It matches *db.DB and lets handler tests substitute a fake.
type DBClient interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (uuid.UUID, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*types.User, error)
	SetPremium(ctx context.Context, userID uuid.UUID, premium bool) error
	SaveSnapshot(ctx context.Context, userID uuid.UUID, resume *types.Resume, scores types.Scores) error
	LoadSnapshot(ctx context.Context, userID uuid.UUID) (*types.ResumeSnapshot, error)
	DeleteSnapshot(ctx context.Context, userID uuid.UUID) error
}

// UserService provides business logic for user authentication operations
type UserService struct {
	db         DBClient
	authConfig *config.AuthConfig
}

// NewUserService creates a new UserService with the given dependencies
func NewUserService(db DBClient, authConfig *config.AuthConfig) *UserService {
	return &UserService{
		db:         db,
		authConfig: authConfig,
	}
}

// publicUser strips the password hash before a user leaves the service layer.
func publicUser(u *types.User) *types.User {
	if u == nil {
		return nil
	}
	out := *u
	out.PasswordHash = ""
	return &out
}

// Register creates a new user with password authentication
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.User, error) {
	// Check if email already exists
	existing, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, &ErrEmailAlreadyExists{Email: req.Email}
	}

	// Hash password
	passwordHash, err := s.authConfig.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	userID, err := s.db.CreateUser(ctx, req.Name, req.Email, passwordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Retrieve created user
	user, err := s.db.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve created user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("created user not found: %s", userID)
	}

	return publicUser(user), nil
}

// Login authenticates a user and returns user data
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.User, error) {
	user, err := s.db.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	// Security: Always return generic error if user not found or password wrong
	if user == nil {
		return nil, &ErrInvalidCredentials{}
	}

	if !s.authConfig.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, &ErrInvalidCredentials{}
	}

	return publicUser(user), nil
}
