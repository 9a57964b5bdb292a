package model

// Role names form a closed catalog. Users only ever reference roles seeded
// from this set; registration rejects anything else.
const (
	RoleUser      = "user"
	RoleModerator = "moderator"
	RoleAdmin     = "admin"
)

// Role is immutable reference data seeded once at startup.
type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:50;not null"`
}

// CatalogNames returns every role name in the catalog.
func CatalogNames() []string {
	return []string{RoleUser, RoleModerator, RoleAdmin}
}

// ValidRoleName reports whether name belongs to the role catalog.
func ValidRoleName(name string) bool {
	switch name {
	case RoleUser, RoleModerator, RoleAdmin:
		return true
	}
	return false
}
