package security

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"notes-saas-backend/internal/domain"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("token has expired")
	ErrWrongTokenType = errors.New("wrong token type for this endpoint")
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// UserClaims defines the standard claims for our application. Tenant and
// role travel inside the token so every request can resolve its identity
// context without a user lookup.
type UserClaims struct {
	UserID     int32       `json:"user_id"`
	TenantID   int32       `json:"tenant_id"`
	TenantSlug string      `json:"tenant_slug,omitempty"`
	Email      string      `json:"email,omitempty"`
	Role       domain.Role `json:"role,omitempty"`
	Type       TokenType   `json:"type"`
	jwt.RegisteredClaims
}

// Identity converts the claims into the request identity context.
func (c *UserClaims) Identity() domain.Identity {
	return domain.Identity{
		UserID:     c.UserID,
		TenantID:   c.TenantID,
		TenantSlug: c.TenantSlug,
		Email:      c.Email,
		Role:       c.Role,
	}
}

type TokenManager interface {
	GenerateAccessToken(user *domain.User, tenant *domain.Tenant) (string, error)
	GenerateRefreshToken(user *domain.User) (string, error)
	ValidateToken(tokenString string) (*UserClaims, error)
}

type tokenManager struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewTokenManager(secret string, accessExpiryMinutes, refreshExpiryMinutes int) TokenManager {
	return &tokenManager{
		secret:        []byte(secret),
		accessExpiry:  time.Duration(accessExpiryMinutes) * time.Minute,
		refreshExpiry: time.Duration(refreshExpiryMinutes) * time.Minute,
	}
}

func (m *tokenManager) GenerateAccessToken(user *domain.User, tenant *domain.Tenant) (string, error) {
	claims := UserClaims{
		UserID:     user.ID,
		TenantID:   user.TenantID,
		TenantSlug: tenant.Slug,
		Email:      user.Email,
		Role:       user.Role,
		Type:       TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(user.ID)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.accessExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "notes-saas-backend",
			Audience:  jwt.ClaimStrings{"api-access"},
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) GenerateRefreshToken(user *domain.User) (string, error) {
	claims := UserClaims{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Email:    user.Email,
		Type:     TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(int(user.ID)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.refreshExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "notes-saas-backend",
			Audience:  jwt.ClaimStrings{"token-refresh"},
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *tokenManager) ValidateToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrInvalidToken
}
