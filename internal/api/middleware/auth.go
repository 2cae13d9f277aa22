package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Rrens/focusbot/internal/domain"
	"github.com/Rrens/focusbot/internal/security"
)

type contextKey string

const IdentityKey contextKey = "identity"

// IdentityMiddleware resolves the caller from an optional bearer token.
// Requests are never rejected: a missing or invalid token yields the guest identity.
type IdentityMiddleware struct {
	jwtManager *security.JWTManager
}

// NewIdentityMiddleware creates a new identity middleware
func NewIdentityMiddleware(jwtManager *security.JWTManager) *IdentityMiddleware {
	return &IdentityMiddleware{jwtManager: jwtManager}
}

// Resolve stores the caller identity in the request context
func (m *IdentityMiddleware) Resolve(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := m.jwtManager.Verify(bearerToken(r)).IdentityOr(domain.GuestUser)

		ctx := context.WithValue(r.Context(), IdentityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(r *http.Request) string {
	parts := strings.SplitN(r.Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetIdentity gets the caller identity from context, defaulting to guest
func GetIdentity(ctx context.Context) string {
	identity, ok := ctx.Value(IdentityKey).(string)
	if !ok || identity == "" {
		return domain.GuestUser
	}
	return identity
}
