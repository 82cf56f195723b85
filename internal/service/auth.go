package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"notes-saas-backend/internal/domain"
	"notes-saas-backend/internal/logger"
	"notes-saas-backend/internal/repository"
	"notes-saas-backend/internal/security"
)

type authService struct {
	userRepo   repository.UserRepository
	tenantRepo repository.TenantRepository
	tokens     security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tenantRepo repository.TenantRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo:   userRepo,
		tenantRepo: tenantRepo,
		tokens:     tokens,
	}
}

func (s *authService) Signup(ctx context.Context, email, password, tenantSlug string) (*domain.User, error) {
	return s.createUser(ctx, email, password, tenantSlug, domain.RoleMember)
}

func (s *authService) CreateAdmin(ctx context.Context, email, password, tenantSlug string) (*domain.User, error) {
	return s.createUser(ctx, email, password, tenantSlug, domain.RoleAdmin)
}

func (s *authService) createUser(ctx context.Context, email, password, tenantSlug string, role domain.Role) (*domain.User, error) {
	// 1. Reject duplicate emails
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	// 2. Resolve tenant by slug
	tenant, err := s.tenantRepo.GetBySlug(ctx, tenantSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve tenant %q: %w", tenantSlug, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		TenantID:     tenant.ID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("user created", "email", email, "role", role, "tenant", tenantSlug)
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, string, *domain.User, *domain.Tenant, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", "", nil, nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", nil, nil, domain.ErrInvalidCredentials
	}

	tenant, err := s.tenantRepo.GetByID(ctx, user.TenantID)
	if err != nil {
		return "", "", nil, nil, fmt.Errorf("failed to load tenant: %w", err)
	}

	access, err := s.tokens.GenerateAccessToken(user, tenant)
	if err != nil {
		return "", "", nil, nil, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return "", "", nil, nil, err
	}

	logger.Info("login", "email", user.Email, "role", user.Role, "tenant", tenant.Slug)
	return access, refresh, user, tenant, nil
}

func (s *authService) RefreshToken(ctx context.Context, refresh string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refresh)
	if err != nil {
		return "", "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", security.ErrWrongTokenType
	}

	// Reload user and tenant so role or plan changes since issuance are
	// reflected in the new access token.
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", err
	}
	tenant, err := s.tenantRepo.GetByID(ctx, user.TenantID)
	if err != nil {
		return "", "", err
	}

	access, err := s.tokens.GenerateAccessToken(user, tenant)
	if err != nil {
		return "", "", err
	}
	newRefresh, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return "", "", err
	}
	return access, newRefresh, nil
}

func (s *authService) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	return s.tenantRepo.List(ctx)
}
