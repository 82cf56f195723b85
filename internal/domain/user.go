package domain

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r Role) bool {
	return r == RoleAdmin || r == RoleMember
}

type User struct {
	ID           int32     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	TenantID     int32     `json:"tenant_id"`
	NotesCount   int32     `json:"notes_count,omitempty"` // Populated in ListByTenant
	CreatedAt    time.Time `json:"created_at"`
}
