package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"notes-saas-backend/internal/domain"
	"notes-saas-backend/internal/security"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListByTenant(ctx context.Context, tenantID int32) ([]domain.User, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) ListAdminsByTenant(ctx context.Context, tenantID int32) ([]domain.User, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) CountByTenant(ctx context.Context, tenantID int32) (int32, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockUserRepo) Delete(ctx context.Context, id, tenantID int32) error {
	args := m.Called(ctx, id, tenantID)
	return args.Error(0)
}

// MockTenantRepo
type MockTenantRepo struct {
	mock.Mock
}

func (m *MockTenantRepo) GetByID(ctx context.Context, id int32) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) List(ctx context.Context) ([]domain.Tenant, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tenant), args.Error(1)
}
func (m *MockTenantRepo) SetPlanBySlug(ctx context.Context, slug string, plan domain.SubscriptionPlan) (*domain.Tenant, error) {
	args := m.Called(ctx, slug, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

// MockNoteRepo
type MockNoteRepo struct {
	mock.Mock
}

func (m *MockNoteRepo) Create(ctx context.Context, note *domain.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNoteRepo) CreateWithTrialQuota(ctx context.Context, note *domain.Note, limit int32) error {
	args := m.Called(ctx, note, limit)
	return args.Error(0)
}
func (m *MockNoteRepo) GetByID(ctx context.Context, id, tenantID int32) (*domain.Note, error) {
	args := m.Called(ctx, id, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Note), args.Error(1)
}
func (m *MockNoteRepo) ListByTenant(ctx context.Context, tenantID int32) ([]domain.Note, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.Note), args.Error(1)
}
func (m *MockNoteRepo) ListByOwner(ctx context.Context, tenantID, ownerID int32) ([]domain.Note, error) {
	args := m.Called(ctx, tenantID, ownerID)
	return args.Get(0).([]domain.Note), args.Error(1)
}
func (m *MockNoteRepo) Update(ctx context.Context, note *domain.Note) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNoteRepo) Delete(ctx context.Context, id, tenantID int32) error {
	args := m.Called(ctx, id, tenantID)
	return args.Error(0)
}
func (m *MockNoteRepo) CountByTenant(ctx context.Context, tenantID int32) (int32, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockNoteRepo) RecentActivity(ctx context.Context, tenantID int32, days int) ([]domain.NoteActivity, error) {
	args := m.Called(ctx, tenantID, days)
	return args.Get(0).([]domain.NoteActivity), args.Error(1)
}

// MockUpgradeRequestRepo
type MockUpgradeRequestRepo struct {
	mock.Mock
}

func (m *MockUpgradeRequestRepo) InsertPending(ctx context.Context, userID, tenantID int32) (*domain.UpgradeRequest, error) {
	args := m.Called(ctx, userID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpgradeRequest), args.Error(1)
}
func (m *MockUpgradeRequestRepo) FindLatestByUser(ctx context.Context, userID int32) (*domain.UpgradeRequest, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpgradeRequest), args.Error(1)
}
func (m *MockUpgradeRequestRepo) ListByTenant(ctx context.Context, tenantID int32) ([]domain.UpgradeRequest, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]domain.UpgradeRequest), args.Error(1)
}
func (m *MockUpgradeRequestRepo) SetStatus(ctx context.Context, id, tenantID int32, status domain.UpgradeRequestStatus) (*domain.UpgradeRequest, error) {
	args := m.Called(ctx, id, tenantID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpgradeRequest), args.Error(1)
}
func (m *MockUpgradeRequestRepo) RejectOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockUpgradeRequestRepo) CountPendingByTenant(ctx context.Context) ([]domain.PendingRequestCount, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.PendingRequestCount), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendUpgradeRequestNotification(ctx context.Context, adminEmail, requesterEmail, tenantName string) error {
	args := m.Called(ctx, adminEmail, requesterEmail, tenantName)
	return args.Error(0)
}
func (m *MockEmailService) SendUpgradeDecisionNotification(ctx context.Context, requesterEmail, tenantName string, approved bool) error {
	args := m.Called(ctx, requesterEmail, tenantName, approved)
	return args.Error(0)
}
func (m *MockEmailService) SendPendingRequestReminder(ctx context.Context, adminEmail, tenantName string, pendingCount int32) error {
	args := m.Called(ctx, adminEmail, tenantName, pendingCount)
	return args.Error(0)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(user *domain.User, tenant *domain.Tenant) (string, error) {
	args := m.Called(user, tenant)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) GenerateRefreshToken(user *domain.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(tokenString string) (*security.UserClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
