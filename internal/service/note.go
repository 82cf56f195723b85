package service

import (
	"context"
	"fmt"

	"notes-saas-backend/internal/domain"
	"notes-saas-backend/internal/policy"
	"notes-saas-backend/internal/repository"
)

type noteService struct {
	noteRepo   repository.NoteRepository
	tenantRepo repository.TenantRepository
	trialLimit int32
}

func NewNoteService(noteRepo repository.NoteRepository, tenantRepo repository.TenantRepository, trialLimit int32) NoteService {
	if trialLimit <= 0 {
		trialLimit = policy.DefaultTrialNoteLimit
	}
	return &noteService{
		noteRepo:   noteRepo,
		tenantRepo: tenantRepo,
		trialLimit: trialLimit,
	}
}

func (s *noteService) CreateNote(ctx context.Context, identity domain.Identity, title, content string) (*domain.Note, error) {
	if !policy.CanAccess(identity, identity.TenantID, identity.UserID, policy.ActionCreate) {
		return nil, domain.ErrAccessDenied
	}

	tenant, err := s.tenantRepo.GetByID(ctx, identity.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}

	// Deterministic rejection before any write. The metered path below
	// re-checks atomically inside the store transaction, so a stale read
	// here can never overshoot the limit.
	if !policy.CanCreateNote(tenant, s.trialLimit) {
		return nil, domain.ErrTrialExpired
	}

	note := &domain.Note{
		Title:          title,
		Content:        content,
		TenantID:       identity.TenantID,
		CreatedBy:      identity.UserID,
		CreatedByEmail: identity.Email,
	}

	if policy.Metered(tenant) {
		err = s.noteRepo.CreateWithTrialQuota(ctx, note, s.trialLimit)
	} else {
		err = s.noteRepo.Create(ctx, note)
	}
	if err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) GetNote(ctx context.Context, identity domain.Identity, noteID int32) (*domain.Note, error) {
	// The tenant-scoped lookup makes cross-tenant notes indistinguishable
	// from absent ones.
	note, err := s.noteRepo.GetByID(ctx, noteID, identity.TenantID)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccess(identity, note.TenantID, note.CreatedBy, policy.ActionRead) {
		return nil, domain.ErrAccessDenied
	}
	return note, nil
}

func (s *noteService) ListNotes(ctx context.Context, identity domain.Identity) ([]domain.Note, error) {
	switch policy.ListScope(identity) {
	case policy.ScopeTenant:
		return s.noteRepo.ListByTenant(ctx, identity.TenantID)
	case policy.ScopeOwner:
		return s.noteRepo.ListByOwner(ctx, identity.TenantID, identity.UserID)
	default:
		return nil, domain.ErrAccessDenied
	}
}

func (s *noteService) UpdateNote(ctx context.Context, identity domain.Identity, noteID int32, title, content string) (*domain.Note, error) {
	note, err := s.noteRepo.GetByID(ctx, noteID, identity.TenantID)
	if err != nil {
		return nil, err
	}
	if !policy.CanAccess(identity, note.TenantID, note.CreatedBy, policy.ActionUpdate) {
		return nil, domain.ErrAccessDenied
	}

	note.Title = title
	note.Content = content
	if err := s.noteRepo.Update(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, identity domain.Identity, noteID int32) error {
	note, err := s.noteRepo.GetByID(ctx, noteID, identity.TenantID)
	if err != nil {
		return err
	}
	if !policy.CanAccess(identity, note.TenantID, note.CreatedBy, policy.ActionDelete) {
		return domain.ErrAccessDenied
	}
	return s.noteRepo.Delete(ctx, noteID, identity.TenantID)
}
