package policy

import "notes-saas-backend/internal/domain"

// DefaultTrialNoteLimit is the number of notes a free-plan tenant may create
// before creation is blocked pending an upgrade.
const DefaultTrialNoteLimit int32 = 3

// CanCreateNote reports whether tenant may create one more note under limit.
// Pro tenants are never metered. The threshold is closed: with limit 3 the
// fourth attempt is the first rejected one.
//
// This is the advisory check only. The authoritative enforcement is the
// conditional increment the note store performs inside the creation
// transaction, so concurrent requests cannot both pass at the boundary.
func CanCreateNote(tenant *domain.Tenant, limit int32) bool {
	if tenant.SubscriptionPlan == domain.PlanPro {
		return true
	}
	return tenant.NotesCreatedCount < limit
}

// Metered reports whether note creation consumes trial quota for tenant.
func Metered(tenant *domain.Tenant) bool {
	return tenant.SubscriptionPlan != domain.PlanPro
}
