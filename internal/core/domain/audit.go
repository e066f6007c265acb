package domain

import (
	"encoding/json"
	"time"
)

// AuditAction is the kind of event an audit entry records.
type AuditAction string

const (
	AuditCreate        AuditAction = "CREATE"
	AuditUpdate        AuditAction = "UPDATE"
	AuditDelete        AuditAction = "DELETE"
	AuditViewSensitive AuditAction = "VIEW_SENSITIVE"
)

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditCreate, AuditUpdate, AuditDelete, AuditViewSensitive:
		return true
	}
	return false
}

// AuditEntry records who did what to which record.
type AuditEntry struct {
	AuditID   string          `json:"auditID"`
	UserID    *string         `json:"userID,omitempty"`
	Action    AuditAction     `json:"action"`
	TableName string          `json:"tableName"`
	RecordID  string          `json:"recordID"`
	Before    json.RawMessage `json:"before,omitempty"`
	After     json.RawMessage `json:"after,omitempty"`
	IPAddress string          `json:"ipAddress"`
	CreatedAt time.Time       `json:"createdAt"`
}

// AuditFilter narrows audit listings.
type AuditFilter struct {
	Action    *AuditAction
	TableName *string
	UserID    *string
	Page      int
	PageSize  int
}
