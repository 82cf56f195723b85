package service

import (
	"context"

	"notes-saas-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, email, password, tenantSlug string) (*domain.User, error)
	CreateAdmin(ctx context.Context, email, password, tenantSlug string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, string, *domain.User, *domain.Tenant, error) // access, refresh
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
}

type NoteService interface {
	CreateNote(ctx context.Context, identity domain.Identity, title, content string) (*domain.Note, error)
	GetNote(ctx context.Context, identity domain.Identity, noteID int32) (*domain.Note, error)
	ListNotes(ctx context.Context, identity domain.Identity) ([]domain.Note, error)
	UpdateNote(ctx context.Context, identity domain.Identity, noteID int32, title, content string) (*domain.Note, error)
	DeleteNote(ctx context.Context, identity domain.Identity, noteID int32) error
}

type UpgradeService interface {
	CreateRequest(ctx context.Context, identity domain.Identity) (*domain.UpgradeRequest, error)
	Status(ctx context.Context, identity domain.Identity) (*domain.UpgradeRequest, error)
	ListRequests(ctx context.Context, identity domain.Identity) ([]domain.UpgradeRequest, error)
	Approve(ctx context.Context, identity domain.Identity, requestID int32) (*domain.UpgradeRequest, error)
	Reject(ctx context.Context, identity domain.Identity, requestID int32) (*domain.UpgradeRequest, error)
	DirectUpgrade(ctx context.Context, identity domain.Identity, tenantSlug string) (*domain.Tenant, error)
}

type AdminService interface {
	ListUsers(ctx context.Context, identity domain.Identity) ([]domain.User, error)
	CreateUser(ctx context.Context, identity domain.Identity, email, password string, role domain.Role) (*domain.User, error)
	DeleteUser(ctx context.Context, identity domain.Identity, userID int32) error
	ListTenantNotes(ctx context.Context, identity domain.Identity) ([]domain.Note, error)
	Analytics(ctx context.Context, identity domain.Identity) (*domain.TenantAnalytics, error)
}

type EmailService interface {
	SendUpgradeRequestNotification(ctx context.Context, adminEmail, requesterEmail, tenantName string) error
	SendUpgradeDecisionNotification(ctx context.Context, requesterEmail, tenantName string, approved bool) error
	SendPendingRequestReminder(ctx context.Context, adminEmail, tenantName string, pendingCount int32) error
}
