package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portsrepo "github.com/finca-nomina/nomina_backend/internal/core/ports/repositories"
	"github.com/finca-nomina/nomina_backend/internal/models"
	"github.com/finca-nomina/nomina_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `user_id, username, email, first_name, last_name, password_hash, role_name,
	is_active, last_login_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements the user and role ports
var (
	_ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)
	_ portsrepo.RoleReader           = (*PgxUserRepository)(nil)
)

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.FirstName,
		&m.LastName,
		&m.PasswordHash,
		&m.Role,
		&m.IsActive,
		&m.LastLoginAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Username, m.Email, m.FirstName, m.LastName, m.PasswordHash, m.Role,
		m.IsActive, m.LastLoginAt, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "user "+user.Username)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, notFoundOr(err, "user "+userID)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1;`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		return nil, notFoundOr(err, "user "+username)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	// Default limit if not specified or invalid
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + userColumns + ` FROM users ORDER BY username LIMIT $1 OFFSET $2;`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan users: %w", err)
	}
	return mapping.ToDomainUserSlice(ms), nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		UPDATE users
		SET email = $2, first_name = $3, last_name = $4, password_hash = $5, role_name = $6,
			is_active = $7, last_updated_at = $8, last_updated_by = $9
		WHERE user_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Email, m.FirstName, m.LastName, m.PasswordHash, m.Role,
		m.IsActive, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return translateWriteError(err, "user "+user.UserID)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: user %s", apperrors.ErrNotFound, user.UserID)
	}
	return nil
}

func (r *PgxUserRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	_, err := r.Pool.Exec(ctx, `UPDATE users SET last_login_at = $2 WHERE user_id = $1;`, userID, at)
	if err != nil {
		return fmt.Errorf("failed to stamp last login of user %s: %w", userID, err)
	}
	return nil
}

func (r *PgxUserRepository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.Pool.Query(ctx, `SELECT name, description, permissions FROM roles ORDER BY name;`)
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Role, error) {
		var m models.Role
		err := row.Scan(&m.Name, &m.Description, &m.Permissions)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan roles: %w", err)
	}

	roles := make([]domain.Role, 0, len(ms))
	for _, m := range ms {
		role, err := mapping.ToDomainRole(m)
		if err != nil {
			return nil, fmt.Errorf("%w: role %s has malformed permissions: %v", apperrors.ErrDataIntegrity, m.Name, err)
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func (r *PgxUserRepository) FindRoleByName(ctx context.Context, name domain.RoleName) (*domain.Role, error) {
	var m models.Role
	err := r.Pool.QueryRow(ctx, `SELECT name, description, permissions FROM roles WHERE name = $1;`, string(name)).
		Scan(&m.Name, &m.Description, &m.Permissions)
	if err != nil {
		return nil, notFoundOr(err, "role "+string(name))
	}
	role, err := mapping.ToDomainRole(m)
	if err != nil {
		return nil, fmt.Errorf("%w: role %s has malformed permissions: %v", apperrors.ErrDataIntegrity, m.Name, err)
	}
	return &role, nil
}
