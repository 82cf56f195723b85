package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"notes-saas-backend/internal/domain"
)

func TestAdminService_MemberDeniedEverywhere(t *testing.T) {
	svc := NewAdminService(new(MockUserRepo), new(MockNoteRepo))
	ctx := context.Background()
	member := memberIdentity()

	_, err := svc.ListUsers(ctx, member)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
	_, err = svc.CreateUser(ctx, member, "x@acme.test", "pw", domain.RoleMember)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
	err = svc.DeleteUser(ctx, member, 2)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
	_, err = svc.ListTenantNotes(ctx, member)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
	_, err = svc.Analytics(ctx, member)
	assert.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestAdminCreateUser_ForcedIntoOwnTenant(t *testing.T) {
	userRepo := new(MockUserRepo)
	svc := NewAdminService(userRepo, new(MockNoteRepo))
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "new@acme.test").Return(nil, domain.ErrNotFound)
	userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.CreateUser(ctx, adminIdentity(), "new@acme.test", "pw", domain.RoleMember)
	assert.NoError(t, err)
	assert.Equal(t, int32(10), user.TenantID)
}

func TestAdminCreateUser_InvalidRole(t *testing.T) {
	svc := NewAdminService(new(MockUserRepo), new(MockNoteRepo))
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, adminIdentity(), "new@acme.test", "pw", domain.Role("owner"))
	assert.Error(t, err)
}

func TestAdminDeleteUser(t *testing.T) {
	t.Run("Self", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAdminService(userRepo, new(MockNoteRepo))
		admin := adminIdentity()

		err := svc.DeleteUser(context.Background(), admin, admin.UserID)
		assert.ErrorIs(t, err, ErrSelfDeletion)
		userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("TenantScoped", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAdminService(userRepo, new(MockNoteRepo))
		ctx := context.Background()

		userRepo.On("Delete", ctx, int32(5), int32(10)).Return(nil)

		err := svc.DeleteUser(ctx, adminIdentity(), 5)
		assert.NoError(t, err)
		userRepo.AssertExpectations(t)
	})

	t.Run("CrossTenantInvisible", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAdminService(userRepo, new(MockNoteRepo))
		ctx := context.Background()

		userRepo.On("Delete", ctx, int32(88), int32(10)).Return(domain.ErrNotFound)

		err := svc.DeleteUser(ctx, adminIdentity(), 88)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAdminAnalytics(t *testing.T) {
	userRepo := new(MockUserRepo)
	noteRepo := new(MockNoteRepo)
	svc := NewAdminService(userRepo, noteRepo)
	ctx := context.Background()

	userRepo.On("CountByTenant", ctx, int32(10)).Return(int32(4), nil)
	noteRepo.On("CountByTenant", ctx, int32(10)).Return(int32(12), nil)
	noteRepo.On("RecentActivity", ctx, int32(10), 7).
		Return([]domain.NoteActivity{{Date: "2026-08-29", NotesCreated: 2}}, nil)

	analytics, err := svc.Analytics(ctx, adminIdentity())
	assert.NoError(t, err)
	assert.Equal(t, int32(4), analytics.TotalUsers)
	assert.Equal(t, int32(12), analytics.TotalNotes)
	assert.Len(t, analytics.RecentActivity, 1)
}
