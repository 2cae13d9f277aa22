package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims represents JWT claims. The subject carries the user email.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenResult is the outcome of verifying a bearer token
type TokenResult struct {
	Identity string
	Valid    bool
}

// IdentityOr returns the verified identity, or fallback when the token was not valid
func (r TokenResult) IdentityOr(fallback string) string {
	if !r.Valid || r.Identity == "" {
		return fallback
	}
	return r.Identity
}

// JWTManager handles JWT token operations
type JWTManager struct {
	secret         []byte
	issuer         string
	accessTokenTTL time.Duration
	now            func() time.Time
}

// Option configures a JWTManager
type Option func(*JWTManager)

// WithClock overrides the time source used for issuing and validating tokens
func WithClock(now func() time.Time) Option {
	return func(m *JWTManager) {
		m.now = now
	}
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(secret, issuer string, accessTTL time.Duration, opts ...Option) *JWTManager {
	m := &JWTManager{
		secret:         []byte(secret),
		issuer:         issuer,
		accessTokenTTL: accessTTL,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Issue generates a signed access token for identity
func (m *JWTManager) Issue(identity string) (string, error) {
	now := m.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// ValidateAccessToken validates an access token and returns the claims
func (m *JWTManager) ValidateAccessToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}

// Verify checks a token and never fails: any problem yields an invalid result
func (m *JWTManager) Verify(tokenString string) TokenResult {
	claims, err := m.ValidateAccessToken(tokenString)
	if err != nil {
		return TokenResult{}
	}
	return TokenResult{Identity: claims.Subject, Valid: true}
}
