package domain

// Identity is the authenticated caller, resolved once per request from a
// validated access token. The rest of the system trusts it as-is.
type Identity struct {
	UserID     int32
	TenantID   int32
	TenantSlug string
	Email      string
	Role       Role
}
