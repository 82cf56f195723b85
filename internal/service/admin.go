package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"notes-saas-backend/internal/domain"
	"notes-saas-backend/internal/logger"
	"notes-saas-backend/internal/repository"
)

// ErrSelfDeletion guards an admin against removing their own account.
var ErrSelfDeletion = errors.New("cannot delete your own account")

type adminService struct {
	userRepo repository.UserRepository
	noteRepo repository.NoteRepository
}

func NewAdminService(userRepo repository.UserRepository, noteRepo repository.NoteRepository) AdminService {
	return &adminService{
		userRepo: userRepo,
		noteRepo: noteRepo,
	}
}

func (s *adminService) requireAdmin(identity domain.Identity) error {
	if identity.Role != domain.RoleAdmin {
		return domain.ErrAccessDenied
	}
	return nil
}

func (s *adminService) ListUsers(ctx context.Context, identity domain.Identity) ([]domain.User, error) {
	if err := s.requireAdmin(identity); err != nil {
		return nil, err
	}
	return s.userRepo.ListByTenant(ctx, identity.TenantID)
}

func (s *adminService) CreateUser(ctx context.Context, identity domain.Identity, email, password string, role domain.Role) (*domain.User, error) {
	if err := s.requireAdmin(identity); err != nil {
		return nil, err
	}
	if !domain.ValidRole(role) {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Admins only ever create users inside their own tenant.
	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		TenantID:     identity.TenantID,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	logger.Info("admin created user", "email", email, "role", role, "by", identity.UserID)
	return user, nil
}

func (s *adminService) DeleteUser(ctx context.Context, identity domain.Identity, userID int32) error {
	if err := s.requireAdmin(identity); err != nil {
		return err
	}
	if userID == identity.UserID {
		return ErrSelfDeletion
	}

	// Tenant-scoped delete; a cross-tenant id reads as not found.
	if err := s.userRepo.Delete(ctx, userID, identity.TenantID); err != nil {
		return err
	}

	logger.Info("admin deleted user", "user_id", userID, "by", identity.UserID)
	return nil
}

func (s *adminService) ListTenantNotes(ctx context.Context, identity domain.Identity) ([]domain.Note, error) {
	if err := s.requireAdmin(identity); err != nil {
		return nil, err
	}
	return s.noteRepo.ListByTenant(ctx, identity.TenantID)
}

func (s *adminService) Analytics(ctx context.Context, identity domain.Identity) (*domain.TenantAnalytics, error) {
	if err := s.requireAdmin(identity); err != nil {
		return nil, err
	}

	totalUsers, err := s.userRepo.CountByTenant(ctx, identity.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	totalNotes, err := s.noteRepo.CountByTenant(ctx, identity.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to count notes: %w", err)
	}
	activity, err := s.noteRepo.RecentActivity(ctx, identity.TenantID, 7)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent activity: %w", err)
	}

	return &domain.TenantAnalytics{
		TotalUsers:     totalUsers,
		TotalNotes:     totalNotes,
		RecentActivity: activity,
	}, nil
}
