package service

import (
	"context"
	"errors"
	"fmt"

	"notes-saas-backend/internal/domain"
	"notes-saas-backend/internal/logger"
	"notes-saas-backend/internal/repository"
)

type upgradeService struct {
	reqRepo    repository.UpgradeRequestRepository
	tenantRepo repository.TenantRepository
	userRepo   repository.UserRepository
	emailSvc   EmailService
}

func NewUpgradeService(
	reqRepo repository.UpgradeRequestRepository,
	tenantRepo repository.TenantRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
) UpgradeService {
	return &upgradeService{
		reqRepo:    reqRepo,
		tenantRepo: tenantRepo,
		userRepo:   userRepo,
		emailSvc:   emailSvc,
	}
}

func (s *upgradeService) CreateRequest(ctx context.Context, identity domain.Identity) (*domain.UpgradeRequest, error) {
	// 1. Atomic check-and-create; at most one pending request per user.
	req, err := s.reqRepo.InsertPending(ctx, identity.UserID, identity.TenantID)
	if err != nil {
		return nil, err
	}

	// 2. Let the tenant's admins know. Failures are logged, never fatal.
	tenant, err := s.tenantRepo.GetByID(ctx, identity.TenantID)
	if err != nil {
		logger.Error("failed to load tenant for upgrade notification", "tenant_id", identity.TenantID, "error", err)
		return req, nil
	}
	admins, err := s.userRepo.ListAdminsByTenant(ctx, identity.TenantID)
	if err != nil {
		logger.Error("failed to list admins for upgrade notification", "tenant_id", identity.TenantID, "error", err)
		return req, nil
	}
	for _, admin := range admins {
		_ = s.emailSvc.SendUpgradeRequestNotification(ctx, admin.Email, identity.Email, tenant.Name)
	}

	return req, nil
}

func (s *upgradeService) Status(ctx context.Context, identity domain.Identity) (*domain.UpgradeRequest, error) {
	return s.reqRepo.FindLatestByUser(ctx, identity.UserID)
}

func (s *upgradeService) ListRequests(ctx context.Context, identity domain.Identity) ([]domain.UpgradeRequest, error) {
	if identity.Role != domain.RoleAdmin {
		return nil, domain.ErrAccessDenied
	}
	return s.reqRepo.ListByTenant(ctx, identity.TenantID)
}

func (s *upgradeService) Approve(ctx context.Context, identity domain.Identity, requestID int32) (*domain.UpgradeRequest, error) {
	return s.settle(ctx, identity, requestID, domain.UpgradeRequestStatusApproved)
}

func (s *upgradeService) Reject(ctx context.Context, identity domain.Identity, requestID int32) (*domain.UpgradeRequest, error) {
	return s.settle(ctx, identity, requestID, domain.UpgradeRequestStatusRejected)
}

func (s *upgradeService) settle(ctx context.Context, identity domain.Identity, requestID int32, status domain.UpgradeRequestStatus) (*domain.UpgradeRequest, error) {
	if identity.Role != domain.RoleAdmin {
		return nil, domain.ErrAccessDenied
	}

	// 1. Transition pending -> terminal, tenant-guarded. Approval upgrades
	//    the tenant's plan inside the same store transaction.
	req, err := s.reqRepo.SetStatus(ctx, requestID, identity.TenantID, status)
	if err != nil {
		return nil, err
	}

	logger.Info("upgrade request settled", "request_id", req.ID, "status", req.Status, "tenant_id", req.TenantID, "by", identity.UserID)

	// 2. Notify the requester.
	requester, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("failed to load requester for decision notification", "user_id", req.UserID, "error", err)
		}
		return req, nil
	}
	tenant, err := s.tenantRepo.GetByID(ctx, req.TenantID)
	if err != nil {
		logger.Error("failed to load tenant for decision notification", "tenant_id", req.TenantID, "error", err)
		return req, nil
	}
	_ = s.emailSvc.SendUpgradeDecisionNotification(ctx, requester.Email, tenant.Name, status == domain.UpgradeRequestStatusApproved)

	return req, nil
}

// DirectUpgrade lets an admin move their own tenant to pro without a
// request. This bypasses the approval workflow on purpose; both paths are
// kept because the product supports both.
func (s *upgradeService) DirectUpgrade(ctx context.Context, identity domain.Identity, tenantSlug string) (*domain.Tenant, error) {
	if identity.Role != domain.RoleAdmin || identity.TenantSlug != tenantSlug {
		return nil, domain.ErrAccessDenied
	}

	tenant, err := s.tenantRepo.SetPlanBySlug(ctx, tenantSlug, domain.PlanPro)
	if err != nil {
		return nil, fmt.Errorf("failed to upgrade tenant %q: %w", tenantSlug, err)
	}

	logger.Info("tenant upgraded directly", "tenant", tenantSlug, "by", identity.UserID)
	return tenant, nil
}
