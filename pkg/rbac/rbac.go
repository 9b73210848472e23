// Package rbac holds the authorization policy for pizzeria principals.
//
// Decisions are pure functions over the token claims so they can be tested
// without any HTTP or storage machinery. Roles form a tagged set: diner and
// admin are global, franchisee is scoped to one franchise via ObjectID.
package rbac

import "github.com/shashiranjanraj/pizzeria/pkg/auth"

const (
	Diner      = "diner"
	Admin      = "admin"
	Franchisee = "franchisee"
)

// HasRole reports whether the principal holds the role globally
// (ObjectID zero).
func HasRole(c *auth.Claims, role string) bool {
	if c == nil {
		return false
	}
	for _, r := range c.Roles {
		if r.Role == role && r.ObjectID == 0 {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the principal is a global admin.
func IsAdmin(c *auth.Claims) bool {
	return HasRole(c, Admin)
}

// CanUpdateUser allows a principal to modify a user record only when acting
// on itself or holding global admin.
func CanUpdateUser(c *auth.Claims, targetID uint) bool {
	if c == nil {
		return false
	}
	return c.UserID == targetID || IsAdmin(c)
}

// CanManageFranchise allows store mutation under a franchise for global
// admins and for franchisees scoped to that franchise.
func CanManageFranchise(c *auth.Claims, franchiseID uint) bool {
	if c == nil {
		return false
	}
	if IsAdmin(c) {
		return true
	}
	for _, r := range c.Roles {
		if r.Role == Franchisee && r.ObjectID == franchiseID {
			return true
		}
	}
	return false
}
