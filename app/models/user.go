package models

import "github.com/shashiranjanraj/pizzeria/pkg/rbac"

// User is a registered account. The password column only ever holds a bcrypt
// hash and is never serialised.
type User struct {
	ID       uint       `json:"id" gorm:"primaryKey"`
	Name     string     `json:"name" gorm:"size:255;not null"`
	Email    string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password string     `json:"-" gorm:"size:255;not null"`
	Roles    []UserRole `json:"roles"`
}

// UserRole is one entry of a user's role set. ObjectID scopes the role to a
// resource: a franchisee row points at its franchise. Zero means global.
type UserRole struct {
	ID       uint   `json:"-" gorm:"primaryKey"`
	UserID   uint   `json:"-" gorm:"index;not null"`
	Role     string `json:"role" gorm:"size:50;not null"`
	ObjectID uint   `json:"objectId,omitempty"`
}

// IsRole reports whether the user holds the role globally.
func (u *User) IsRole(role string) bool {
	for _, r := range u.Roles {
		if r.Role == role && r.ObjectID == 0 {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the user is a global admin.
func (u *User) IsAdmin() bool { return u.IsRole(rbac.Admin) }

// UserRef is the shape a user takes when embedded in another resource
// (e.g. a franchise's admin list).
type UserRef struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
