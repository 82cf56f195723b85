package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"notes-saas-backend/internal/domain"
)

func freeTenant(count int32) *domain.Tenant {
	return &domain.Tenant{ID: 1, SubscriptionPlan: domain.PlanFree, NotesCreatedCount: count}
}

func TestCanCreateNote_TrialBoundary(t *testing.T) {
	// Closed threshold: with limit 3 the tenant may create its third note,
	// and the fourth attempt is the first rejected one.
	assert.True(t, CanCreateNote(freeTenant(0), 3))
	assert.True(t, CanCreateNote(freeTenant(2), 3))
	assert.False(t, CanCreateNote(freeTenant(3), 3))
	assert.False(t, CanCreateNote(freeTenant(4), 3))
}

func TestCanCreateNote_ProBypass(t *testing.T) {
	pro := &domain.Tenant{ID: 1, SubscriptionPlan: domain.PlanPro, NotesCreatedCount: 1000}
	assert.True(t, CanCreateNote(pro, 3))
}

func TestMetered(t *testing.T) {
	assert.True(t, Metered(freeTenant(0)))
	assert.False(t, Metered(&domain.Tenant{SubscriptionPlan: domain.PlanPro}))
}
