package model

import (
	"strings"
	"time"
)

// User represents a registered account in the system.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Roles        []Role    `json:"-" gorm:"many2many:user_roles;"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Authorities returns the user's roles rendered as authorization labels,
// e.g. role "admin" becomes "ROLE_ADMIN".
func (u *User) Authorities() []string {
	authorities := make([]string, 0, len(u.Roles))
	for _, role := range u.Roles {
		authorities = append(authorities, "ROLE_"+strings.ToUpper(role.Name))
	}
	return authorities
}

// HasRole reports whether the user carries the given role name.
func (u *User) HasRole(name string) bool {
	for _, role := range u.Roles {
		if role.Name == name {
			return true
		}
	}
	return false
}
