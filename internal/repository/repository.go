package repository

import (
	"context"
	"time"

	"notes-saas-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ListByTenant(ctx context.Context, tenantID int32) ([]domain.User, error)
	ListAdminsByTenant(ctx context.Context, tenantID int32) ([]domain.User, error)
	CountByTenant(ctx context.Context, tenantID int32) (int32, error)

	// Delete removes the user and every note they created, in one
	// transaction. Scoped to tenantID so a cross-tenant id is invisible.
	Delete(ctx context.Context, id, tenantID int32) error
}

type TenantRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
	List(ctx context.Context) ([]domain.Tenant, error)

	// SetPlanBySlug moves the tenant to plan and returns the updated row.
	// The plan is monotonic free -> pro; no caller ever sets it back.
	SetPlanBySlug(ctx context.Context, slug string, plan domain.SubscriptionPlan) (*domain.Tenant, error)
}

type NoteRepository interface {
	// Create inserts a note without touching the tenant's trial counter.
	// Only valid for tenants whose plan is not metered.
	Create(ctx context.Context, note *domain.Note) error

	// CreateWithTrialQuota inserts a note and consumes one unit of the
	// tenant's trial quota in a single transaction. The counter increment
	// is conditional on notes_created_count < limit; when the tenant is
	// already at the limit nothing is written and domain.ErrTrialExpired is
	// returned. Two concurrent calls can never both succeed past the limit.
	CreateWithTrialQuota(ctx context.Context, note *domain.Note, limit int32) error

	GetByID(ctx context.Context, id, tenantID int32) (*domain.Note, error)
	ListByTenant(ctx context.Context, tenantID int32) ([]domain.Note, error)
	ListByOwner(ctx context.Context, tenantID, ownerID int32) ([]domain.Note, error)
	Update(ctx context.Context, note *domain.Note) error
	Delete(ctx context.Context, id, tenantID int32) error
	CountByTenant(ctx context.Context, tenantID int32) (int32, error)
	RecentActivity(ctx context.Context, tenantID int32, days int) ([]domain.NoteActivity, error)
}

type UpgradeRequestRepository interface {
	// InsertPending creates a new pending request for the user unless one
	// already exists, atomically. A duplicate returns
	// domain.ErrDuplicateRequest with no row written.
	InsertPending(ctx context.Context, userID, tenantID int32) (*domain.UpgradeRequest, error)

	FindLatestByUser(ctx context.Context, userID int32) (*domain.UpgradeRequest, error)
	ListByTenant(ctx context.Context, tenantID int32) ([]domain.UpgradeRequest, error)

	// SetStatus transitions a pending request to a terminal status, guarded
	// by tenant match. Approval also flips the owning tenant's plan to pro
	// in the same transaction. A request that exists in-tenant but is no
	// longer pending returns domain.ErrInvalidState; anything else (absent,
	// or belonging to another tenant) returns domain.ErrNotFound.
	SetStatus(ctx context.Context, id, tenantID int32, status domain.UpgradeRequestStatus) (*domain.UpgradeRequest, error)

	// RejectOlderThan bulk-rejects pending requests created before cutoff
	// and returns how many were touched. Used by the maintenance job.
	RejectOlderThan(ctx context.Context, cutoff time.Time) (int64, error)

	CountPendingByTenant(ctx context.Context) ([]domain.PendingRequestCount, error)
}
