package models

import "time"

// User is a row of the users table.
type User struct {
	UserID       string     `db:"user_id"`
	Username     string     `db:"username"`
	Email        *string    `db:"email"`
	FirstName    string     `db:"first_name"`
	LastName     string     `db:"last_name"`
	PasswordHash string     `db:"password_hash"`
	Role         string     `db:"role_name"`
	IsActive     bool       `db:"is_active"`
	LastLoginAt  *time.Time `db:"last_login_at"`
	AuditFields
}

// Role is a row of the roles table. Permissions is stored as JSONB.
type Role struct {
	Name        string `db:"name"`
	Description string `db:"description"`
	Permissions []byte `db:"permissions"`
}
