package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Rrens/focusbot/internal/domain"
	"github.com/Rrens/focusbot/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthService(repo *MockUserRepository) (*AuthService, *security.JWTManager) {
	jwtManager := security.NewJWTManager("test-secret", "focusbot", time.Hour)
	return NewAuthService(repo, jwtManager), jwtManager
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("success normalizes email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, jwtManager := newTestAuthService(repo)

		repo.On("GetByEmail", ctx, "a@b.com").Return(nil, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == "a@b.com" &&
				bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pw")) == nil
		})).Return(nil)

		resp, err := svc.Signup(ctx, domain.Credentials{Email: "  A@B.com ", Password: " pw "})
		require.NoError(t, err)

		result := jwtManager.Verify(resp.Token)
		assert.True(t, result.Valid)
		assert.Equal(t, "a@b.com", result.Identity)
		repo.AssertExpectations(t)
	})

	t.Run("empty fields", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newTestAuthService(repo)

		_, err := svc.Signup(ctx, domain.Credentials{Email: "a@b.com", Password: "   "})
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.EqualError(t, err, "Email and password are required.")
		repo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})

	t.Run("password too long", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newTestAuthService(repo)

		_, err := svc.Signup(ctx, domain.Credentials{Email: "a@b.com", Password: strings.Repeat("x", 73)})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newTestAuthService(repo)

		repo.On("GetByEmail", ctx, "a@b.com").Return(&domain.User{Email: "a@b.com"}, nil)

		_, err := svc.Signup(ctx, domain.Credentials{Email: "a@b.com", Password: "pw"})
		assert.ErrorIs(t, err, domain.ErrDuplicateUser)
		assert.EqualError(t, err, "Email already registered.")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate on insert race", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newTestAuthService(repo)

		repo.On("GetByEmail", ctx, "a@b.com").Return(nil, nil)
		repo.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicateUser)

		_, err := svc.Signup(ctx, domain.Credentials{Email: "a@b.com", Password: "pw"})
		assert.ErrorIs(t, err, domain.ErrDuplicateUser)
	})

	t.Run("store failure", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newTestAuthService(repo)

		repo.On("GetByEmail", ctx, "a@b.com").Return(nil, errors.New("connection reset"))

		_, err := svc.Signup(ctx, domain.Credentials{Email: "a@b.com", Password: "pw"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrValidation)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.User{Email: "a@b.com", PasswordHash: string(hash)}

	t.Run("success", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, jwtManager := newTestAuthService(repo)
		repo.On("GetByEmail", ctx, "a@b.com").Return(stored, nil)

		resp, err := svc.Login(ctx, domain.Credentials{Email: "A@b.com", Password: "secret"})
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", jwtManager.Verify(resp.Token).Identity)
	})

	t.Run("wrong password and unknown user are indistinguishable", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newTestAuthService(repo)
		repo.On("GetByEmail", ctx, "a@b.com").Return(stored, nil)
		repo.On("GetByEmail", ctx, "x@b.com").Return(nil, nil)

		_, wrongPassword := svc.Login(ctx, domain.Credentials{Email: "a@b.com", Password: "nope"})
		_, unknownUser := svc.Login(ctx, domain.Credentials{Email: "x@b.com", Password: "secret"})

		assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
		assert.ErrorIs(t, unknownUser, domain.ErrInvalidCredentials)
		assert.Equal(t, wrongPassword.Error(), unknownUser.Error())
	})

	t.Run("empty fields", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _ := newTestAuthService(repo)

		_, err := svc.Login(ctx, domain.Credentials{Email: "", Password: "secret"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
