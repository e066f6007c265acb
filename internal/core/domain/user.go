package domain

import "time"

// RoleName identifies one of the three fixed roles.
type RoleName string

const (
	RoleSuperAdmin RoleName = "SUPER_ADMIN"
	RoleDigitador  RoleName = "DIGITADOR"
	RoleReadOnly   RoleName = "SOLO_LECTURA"
)

// IsValid reports whether r is a known role.
func (r RoleName) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleDigitador, RoleReadOnly:
		return true
	}
	return false
}

// CanWrite reports whether the role may create or modify operational data.
func (r RoleName) CanWrite() bool {
	return r == RoleSuperAdmin || r == RoleDigitador
}

// CanViewSensitive reports whether the role may see unredacted bank data.
func (r RoleName) CanViewSensitive() bool {
	return r == RoleSuperAdmin
}

// Role is a seeded role with its descriptive permission map.
type Role struct {
	Name        RoleName            `json:"name"`
	Description string              `json:"description"`
	Permissions map[string][]string `json:"permissions"`
}

// User represents a user of the application in the domain.
type User struct {
	UserID       string     `json:"userID"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	FirstName    string     `json:"firstName"`
	LastName     string     `json:"lastName"`
	PasswordHash string     `json:"-"`
	Role         RoleName   `json:"role"`
	IsActive     bool       `json:"isActive"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	AuditFields
}
