package dto

import (
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLaborRequest defines the data needed to add a labor to the catalog.
type CreateLaborRequest struct {
	Code         string `json:"code" binding:"required,max=20"`
	Name         string `json:"name" binding:"required,max=200"`
	Description  string `json:"description"`
	UnitID       string `json:"unitID" binding:"required"`
	IsSpecial    bool   `json:"isSpecial"`
	ContractOnly bool   `json:"contractOnly"`
}

// UpdateLaborRequest defines the mutable labor fields.
type UpdateLaborRequest struct {
	Name         *string `json:"name" binding:"omitempty,max=200"`
	Description  *string `json:"description"`
	UnitID       *string `json:"unitID"`
	IsSpecial    *bool   `json:"isSpecial"`
	ContractOnly *bool   `json:"contractOnly"`
	Active       *bool   `json:"active"`
}

// ListLaborsParams defines query parameters for listing labors.
type ListLaborsParams struct {
	Active    *bool  `form:"active"`
	UnitID    string `form:"unitID"`
	IsSpecial *bool  `form:"isSpecial"`
	Search    string `form:"search"`
	Limit     int    `form:"limit,default=50" binding:"min=1,max=200"`
	Offset    int    `form:"offset,default=0" binding:"min=0"`
}

// ToFilter converts the query parameters to a domain filter.
func (p ListLaborsParams) ToFilter() domain.LaborFilter {
	f := domain.LaborFilter{Active: p.Active, IsSpecial: p.IsSpecial, Search: p.Search, Limit: p.Limit, Offset: p.Offset}
	if p.UnitID != "" {
		f.UnitID = &p.UnitID
	}
	return f
}

// LaborResponse is the API view of a labor. CurrentPrice is absent when no price is in force.
type LaborResponse struct {
	LaborID      string           `json:"laborID"`
	Code         string           `json:"code"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	UnitID       string           `json:"unitID"`
	UnitName     domain.UnitName  `json:"unitName"`
	IsSpecial    bool             `json:"isSpecial"`
	ContractOnly bool             `json:"contractOnly"`
	Active       bool             `json:"active"`
	CurrentPrice *decimal.Decimal `json:"currentPrice,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// ListLaborsResponse wraps a page of labors.
type ListLaborsResponse struct {
	Labors []LaborResponse `json:"labors"`
	Total  int             `json:"total"`
}

// ToLaborResponse converts a domain.Labor to LaborResponse DTO
func ToLaborResponse(l *domain.Labor, currentPrice *decimal.Decimal) LaborResponse {
	return LaborResponse{
		LaborID:      l.LaborID,
		Code:         l.Code,
		Name:         l.Name,
		Description:  l.Description,
		UnitID:       l.UnitID,
		UnitName:     l.UnitName,
		IsSpecial:    l.IsSpecial,
		ContractOnly: l.ContractOnly,
		Active:       l.Active,
		CurrentPrice: currentPrice,
		CreatedAt:    l.CreatedAt,
	}
}

// ToListLaborsResponse converts a page of labors. Prices are not resolved for listings.
func ToListLaborsResponse(labors []domain.Labor, total int) ListLaborsResponse {
	out := make([]LaborResponse, len(labors))
	for i := range labors {
		out[i] = ToLaborResponse(&labors[i], nil)
	}
	return ListLaborsResponse{Labors: out, Total: total}
}
