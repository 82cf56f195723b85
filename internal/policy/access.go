package policy

import "notes-saas-backend/internal/domain"

type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"
)

// Scope describes how wide a list operation may reach for a caller.
type Scope int

const (
	ScopeNone   Scope = iota // caller may not list at all
	ScopeOwner               // records created by the caller only
	ScopeTenant              // every record in the caller's tenant
)

// rolePolicy decides what a role may do to an in-tenant resource. Tenant
// isolation is checked before any rolePolicy runs, so implementations only
// reason about ownership and action.
type rolePolicy interface {
	allows(identity domain.Identity, resourceOwnerID int32, action Action) bool
	listScope() Scope
}

type adminPolicy struct{}

func (adminPolicy) allows(domain.Identity, int32, Action) bool { return true }
func (adminPolicy) listScope() Scope                           { return ScopeTenant }

type memberPolicy struct{}

func (memberPolicy) allows(identity domain.Identity, resourceOwnerID int32, action Action) bool {
	switch action {
	case ActionCreate:
		// Always permitted; the trial quota is enforced separately.
		return true
	case ActionRead, ActionUpdate, ActionDelete:
		return resourceOwnerID == identity.UserID
	case ActionList:
		return true
	default:
		return false
	}
}
func (memberPolicy) listScope() Scope { return ScopeOwner }

var rolePolicies = map[domain.Role]rolePolicy{
	domain.RoleAdmin:  adminPolicy{},
	domain.RoleMember: memberPolicy{},
}

// CanAccess decides whether identity may perform action on a resource owned
// by resourceOwnerID in resourceTenantID. Evaluation is pure and stateless;
// callers translate false into an access-denied outcome.
//
// Tenant isolation is absolute: a tenant mismatch denies for every role and
// every action before role rules are consulted.
func CanAccess(identity domain.Identity, resourceTenantID, resourceOwnerID int32, action Action) bool {
	if identity.TenantID != resourceTenantID {
		return false
	}
	p, ok := rolePolicies[identity.Role]
	if !ok {
		return false
	}
	return p.allows(identity, resourceOwnerID, action)
}

// ListScope returns how wide a list within the caller's own tenant may be.
func ListScope(identity domain.Identity) Scope {
	p, ok := rolePolicies[identity.Role]
	if !ok {
		return ScopeNone
	}
	return p.listScope()
}
