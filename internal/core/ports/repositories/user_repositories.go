package repositories

import (
	"context"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByUsername retrieves a user by their unique username.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// FindUsers retrieves a paginated list of users.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details, including role, active flag and password hash.
	UpdateUser(ctx context.Context, user domain.User) error

	// UpdateLastLogin stamps a successful login.
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}

// RoleReader reads the seeded roles.
type RoleReader interface {
	ListRoles(ctx context.Context) ([]domain.Role, error)
	FindRoleByName(ctx context.Context, name domain.RoleName) (*domain.Role, error)
}
