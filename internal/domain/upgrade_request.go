package domain

import "time"

type UpgradeRequestStatus string

const (
	UpgradeRequestStatusPending  UpgradeRequestStatus = "pending"
	UpgradeRequestStatusApproved UpgradeRequestStatus = "approved"
	UpgradeRequestStatusRejected UpgradeRequestStatus = "rejected"
)

type UpgradeRequest struct {
	ID        int32                `json:"id"`
	UserID    int32                `json:"user_id"`
	TenantID  int32                `json:"tenant_id"`
	UserEmail string               `json:"user_email,omitempty"` // Populated in ListByTenant
	Status    UpgradeRequestStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}
