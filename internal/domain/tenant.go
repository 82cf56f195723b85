package domain

import "time"

type SubscriptionPlan string

const (
	PlanFree SubscriptionPlan = "free"
	PlanPro  SubscriptionPlan = "pro"
)

type Tenant struct {
	ID                int32            `json:"id"`
	Name              string           `json:"name"`
	Slug              string           `json:"slug"`
	SubscriptionPlan  SubscriptionPlan `json:"subscription_plan"`
	NotesCreatedCount int32            `json:"notes_created_count"`
	TrialUsed         bool             `json:"trial_used"`
	CreatedAt         time.Time        `json:"created_at"`
}

// TenantAnalytics is the admin dashboard rollup for one tenant.
type TenantAnalytics struct {
	TotalUsers     int32          `json:"total_users"`
	TotalNotes     int32          `json:"total_notes"`
	RecentActivity []NoteActivity `json:"recent_activity"`
}

// PendingRequestCount is a per-tenant rollup of open upgrade requests,
// populated by CountPendingByTenant for the reminder job.
type PendingRequestCount struct {
	TenantID   int32  `json:"tenant_id"`
	TenantName string `json:"tenant_name"`
	Pending    int32  `json:"pending"`
}
