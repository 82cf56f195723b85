package security

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"notes-saas-backend/internal/domain"
)

const testSecret = "test-secret-that-is-long-enough-32ch"

func TestTokenManager_RoundTrip(t *testing.T) {
	mgr := NewTokenManager(testSecret, 60, 60*24*7)
	user := &domain.User{ID: 5, Email: "user@acme.test", Role: domain.RoleMember, TenantID: 10}
	tenant := &domain.Tenant{ID: 10, Slug: "acme"}

	token, err := mgr.GenerateAccessToken(user, tenant)
	assert.NoError(t, err)

	claims, err := mgr.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, TokenTypeAccess, claims.Type)

	identity := claims.Identity()
	assert.Equal(t, int32(5), identity.UserID)
	assert.Equal(t, int32(10), identity.TenantID)
	assert.Equal(t, "acme", identity.TenantSlug)
	assert.Equal(t, domain.RoleMember, identity.Role)
}

func TestTokenManager_RefreshTokenHasNoTenantSlug(t *testing.T) {
	mgr := NewTokenManager(testSecret, 60, 60*24*7)
	user := &domain.User{ID: 5, Email: "user@acme.test", TenantID: 10}

	token, err := mgr.GenerateRefreshToken(user)
	assert.NoError(t, err)

	claims, err := mgr.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.Type)
	assert.Empty(t, claims.TenantSlug)
}

func TestTokenManager_RejectsForeignSignature(t *testing.T) {
	mgr := NewTokenManager(testSecret, 60, 60)
	other := NewTokenManager("another-secret-that-is-also-32-chars!", 60, 60)
	user := &domain.User{ID: 5, TenantID: 10}
	tenant := &domain.Tenant{ID: 10, Slug: "acme"}

	token, err := other.GenerateAccessToken(user, tenant)
	assert.NoError(t, err)

	_, err = mgr.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_ExpiredToken(t *testing.T) {
	mgr := NewTokenManager(testSecret, -1, 60)
	user := &domain.User{ID: 5, TenantID: 10}
	tenant := &domain.Tenant{ID: 10, Slug: "acme"}

	token, err := mgr.GenerateAccessToken(user, tenant)
	assert.NoError(t, err)

	_, err = mgr.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
