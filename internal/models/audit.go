package models

import "time"

// AuditEntry is a row of the audit_log table. Before and After are JSONB.
type AuditEntry struct {
	AuditID   string    `db:"audit_id"`
	UserID    *string   `db:"user_id"`
	Action    string    `db:"action"`
	TableName string    `db:"table_name"`
	RecordID  string    `db:"record_id"`
	Before    []byte    `db:"before_data"`
	After     []byte    `db:"after_data"`
	IPAddress *string   `db:"ip_address"`
	CreatedAt time.Time `db:"created_at"`
}
