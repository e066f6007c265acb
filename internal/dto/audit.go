package dto

import (
	"encoding/json"
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
)

// ListAuditParams defines query parameters for browsing the audit log.
type ListAuditParams struct {
	Action    string `form:"action" binding:"omitempty,oneof=CREATE UPDATE DELETE VIEW_SENSITIVE"`
	TableName string `form:"table"`
	UserID    string `form:"userID"`
	Page      int    `form:"page,default=1" binding:"min=1"`
	PageSize  int    `form:"pageSize,default=20" binding:"min=1,max=100"`
}

// ToFilter converts the query parameters to a domain filter.
func (p ListAuditParams) ToFilter() domain.AuditFilter {
	f := domain.AuditFilter{Page: p.Page, PageSize: p.PageSize}
	if p.Action != "" {
		a := domain.AuditAction(p.Action)
		f.Action = &a
	}
	if p.TableName != "" {
		f.TableName = &p.TableName
	}
	if p.UserID != "" {
		f.UserID = &p.UserID
	}
	return f
}

// AuditEntryResponse is the API view of an audit entry.
type AuditEntryResponse struct {
	AuditID   string             `json:"auditID"`
	UserID    *string            `json:"userID,omitempty"`
	Action    domain.AuditAction `json:"action"`
	TableName string             `json:"table"`
	RecordID  string             `json:"recordID"`
	Before    json.RawMessage    `json:"before,omitempty"`
	After     json.RawMessage    `json:"after,omitempty"`
	IPAddress string             `json:"ipAddress"`
	CreatedAt time.Time          `json:"createdAt"`
}

// ListAuditResponse wraps a page of audit entries.
type ListAuditResponse struct {
	Entries  []AuditEntryResponse `json:"entries"`
	Total    int                  `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"pageSize"`
}

// ToListAuditResponse converts a page of audit entries.
func ToListAuditResponse(entries []domain.AuditEntry, total, page, pageSize int) ListAuditResponse {
	out := make([]AuditEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = AuditEntryResponse{
			AuditID:   e.AuditID,
			UserID:    e.UserID,
			Action:    e.Action,
			TableName: e.TableName,
			RecordID:  e.RecordID,
			Before:    e.Before,
			After:     e.After,
			IPAddress: e.IPAddress,
			CreatedAt: e.CreatedAt,
		}
	}
	return ListAuditResponse{Entries: out, Total: total, Page: page, PageSize: pageSize}
}

// RoleResponse is the API view of a role.
type RoleResponse struct {
	Name        domain.RoleName     `json:"name"`
	Description string              `json:"description"`
	Permissions map[string][]string `json:"permissions"`
}

// ToRoleResponses converts the role catalog.
func ToRoleResponses(roles []domain.Role) []RoleResponse {
	out := make([]RoleResponse, len(roles))
	for i, r := range roles {
		out[i] = RoleResponse{Name: r.Name, Description: r.Description, Permissions: r.Permissions}
	}
	return out
}
