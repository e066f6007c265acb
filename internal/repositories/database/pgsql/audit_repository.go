package pgsql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portsrepo "github.com/finca-nomina/nomina_backend/internal/core/ports/repositories"
	"github.com/finca-nomina/nomina_backend/internal/models"
	"github.com/finca-nomina/nomina_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const auditColumns = `audit_id, user_id, action, table_name, record_id, before_data, after_data, ip_address, created_at`

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(pool *pgxpool.Pool) *PgxAuditRepository {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditRepositoryFacade = (*PgxAuditRepository)(nil)

// jsonbArg sends an empty snapshot as SQL NULL.
func jsonbArg(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	return string(raw)
}

func (r *PgxAuditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	query := `INSERT INTO audit_log (` + auditColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	_, err := r.Pool.Exec(ctx, query,
		entry.AuditID, entry.UserID, string(entry.Action), entry.TableName, entry.RecordID,
		jsonbArg(entry.Before), jsonbArg(entry.After), mapping.NullableString(entry.IPAddress), entry.CreatedAt,
	)
	if err != nil {
		return translateWriteError(err, "audit entry")
	}
	return nil
}

func (r *PgxAuditRepository) ListAuditEntries(ctx context.Context, filter domain.AuditFilter) ([]domain.AuditEntry, int, error) {
	var where whereBuilder
	if filter.Action != nil {
		where.add("action = ?", string(*filter.Action))
	}
	if filter.TableName != nil {
		where.add("table_name = ?", *filter.TableName)
	}
	if filter.UserID != nil {
		where.add("user_id = ?", *filter.UserID)
	}
	page, size := max(filter.Page, 1), filter.PageSize
	if size <= 0 {
		size = 20
	}

	query := `SELECT ` + auditColumns + `, count(*) OVER () FROM audit_log` + where.sql() +
		` ORDER BY created_at DESC, audit_id LIMIT ` + where.arg(size) + ` OFFSET ` + where.arg((page-1)*size) + `;`
	rows, err := r.Pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query audit log: %w", err)
	}
	defer rows.Close()

	total := 0
	entries := []domain.AuditEntry{}
	for rows.Next() {
		var m models.AuditEntry
		if err := rows.Scan(&m.AuditID, &m.UserID, &m.Action, &m.TableName, &m.RecordID,
			&m.Before, &m.After, &m.IPAddress, &m.CreatedAt, &total); err != nil {
			return nil, 0, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, mapping.ToDomainAuditEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating audit rows: %w", err)
	}
	return entries, total, nil
}
