package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rrens/focusbot/internal/domain"
	"github.com/Rrens/focusbot/internal/security"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   domain.UserRepository
	jwtManager *security.JWTManager
	now        func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo domain.UserRepository, jwtManager *security.JWTManager) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		now:        time.Now,
	}
}

var (
	errEmailTaken         = domain.NewPublicError(domain.ErrDuplicateUser, "Email already registered.")
	errBadCredentials     = domain.NewPublicError(domain.ErrInvalidCredentials, "Invalid email or password.")
	errMissingCredentials = domain.NewValidationError("email", "Email and password are required.")
)

func validateCredentials(input domain.Credentials) error {
	if input.Email == "" || input.Password == "" {
		return errMissingCredentials
	}
	if len(input.Password) > 72 {
		return domain.NewValidationError("password", "Password must be at most 72 bytes")
	}
	return nil
}

// Signup creates a new account and returns an access token for it
func (s *AuthService) Signup(ctx context.Context, input domain.Credentials) (*domain.TokenResponse, error) {
	input = input.Normalize()
	if err := validateCredentials(input); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, errEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    s.now().UTC(),
	}

	// The unique index still catches a concurrent signup for the same email
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateUser) {
			return nil, errEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issue(user.Email)
}

// Login authenticates a user and returns an access token
func (s *AuthService) Login(ctx context.Context, input domain.Credentials) (*domain.TokenResponse, error) {
	input = input.Normalize()
	if input.Email == "" || input.Password == "" {
		return nil, errMissingCredentials
	}

	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, errBadCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, errBadCredentials
	}

	return s.issue(user.Email)
}

func (s *AuthService) issue(email string) (*domain.TokenResponse, error) {
	token, err := s.jwtManager.Issue(email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &domain.TokenResponse{Token: token}, nil
}
