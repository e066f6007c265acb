package dto

import (
	"time"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
)

// CreateWorkerRequest defines the data needed to register a worker.
type CreateWorkerRequest struct {
	FirstNames        string              `json:"firstNames" binding:"required,max=100"`
	LastNames         string              `json:"lastNames" binding:"required,max=100"`
	DocumentType      domain.DocumentType `json:"documentType" binding:"required,oneof=CC TI CE PEP"`
	DocumentNumber    string              `json:"documentNumber" binding:"required,max=20"`
	DocumentPlace     string              `json:"documentPlace" binding:"max=100"`
	BirthDate         Date                `json:"birthDate" binding:"required"`
	Phone             string              `json:"phone" binding:"max=20"`
	Address           string              `json:"address" binding:"max=200"`
	Email             string              `json:"email" binding:"omitempty,email"`
	EPS               string              `json:"eps" binding:"max=100"`
	ContractTypeID    string              `json:"contractTypeID" binding:"required"`
	HireDate          Date                `json:"hireDate" binding:"required"`
	BankAccountNumber string              `json:"bankAccountNumber" binding:"max=30"`
	Bank              string              `json:"bank" binding:"max=100"`
}

// UpdateWorkerRequest defines the mutable worker fields. Omitted fields are left unchanged.
type UpdateWorkerRequest struct {
	FirstNames        *string `json:"firstNames" binding:"omitempty,max=100"`
	LastNames         *string `json:"lastNames" binding:"omitempty,max=100"`
	DocumentPlace     *string `json:"documentPlace" binding:"omitempty,max=100"`
	Phone             *string `json:"phone" binding:"omitempty,max=20"`
	Address           *string `json:"address" binding:"omitempty,max=200"`
	Email             *string `json:"email" binding:"omitempty,email"`
	EPS               *string `json:"eps" binding:"omitempty,max=100"`
	ContractTypeID    *string `json:"contractTypeID"`
	BankAccountNumber *string `json:"bankAccountNumber" binding:"omitempty,max=30"`
	Bank              *string `json:"bank" binding:"omitempty,max=100"`
}

// ChangeWorkerStatusRequest moves a worker between ACTIVE, INACTIVE and RETIRED.
type ChangeWorkerStatusRequest struct {
	Status     domain.WorkerStatus `json:"status" binding:"required,oneof=ACTIVE INACTIVE RETIRED"`
	RetireDate *Date               `json:"retireDate"`
}

// ListWorkersParams defines query parameters for listing workers.
type ListWorkersParams struct {
	Status         string `form:"status" binding:"omitempty,oneof=ACTIVE INACTIVE RETIRED"`
	ContractTypeID string `form:"contractTypeID"`
	Search         string `form:"search"`
	Limit          int    `form:"limit,default=20" binding:"min=1,max=100"`
	Offset         int    `form:"offset,default=0" binding:"min=0"`
}

// ToFilter converts the query parameters to a domain filter.
func (p ListWorkersParams) ToFilter() domain.WorkerFilter {
	f := domain.WorkerFilter{Search: p.Search, Limit: p.Limit, Offset: p.Offset}
	if p.Status != "" {
		s := domain.WorkerStatus(p.Status)
		f.Status = &s
	}
	if p.ContractTypeID != "" {
		f.ContractTypeID = &p.ContractTypeID
	}
	return f
}

// WorkerResponse is the API view of a worker, possibly with redacted bank data.
type WorkerResponse struct {
	WorkerID          string                  `json:"workerID"`
	FirstNames        string                  `json:"firstNames"`
	LastNames         string                  `json:"lastNames"`
	FullName          string                  `json:"fullName"`
	DocumentType      domain.DocumentType     `json:"documentType"`
	DocumentNumber    string                  `json:"documentNumber"`
	DocumentPlace     string                  `json:"documentPlace"`
	BirthDate         Date                    `json:"birthDate"`
	Phone             string                  `json:"phone"`
	Address           string                  `json:"address"`
	Email             string                  `json:"email"`
	EPS               string                  `json:"eps"`
	ContractTypeID    string                  `json:"contractTypeID"`
	ContractTypeName  domain.ContractTypeName `json:"contractTypeName"`
	HireDate          Date                    `json:"hireDate"`
	RetireDate        *Date                   `json:"retireDate,omitempty"`
	Status            domain.WorkerStatus     `json:"status"`
	BankAccountNumber string                  `json:"bankAccountNumber"`
	Bank              string                  `json:"bank"`
	CreatedAt         time.Time               `json:"createdAt"`
	LastUpdatedAt     time.Time               `json:"lastUpdatedAt"`
}

// ListWorkersResponse wraps a page of workers.
type ListWorkersResponse struct {
	Workers []WorkerResponse `json:"workers"`
	Total   int              `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// MaskAccountNumber hides all but the last four characters of an account number.
func MaskAccountNumber(account string) string {
	if account == "" {
		return "N/A"
	}
	if len(account) <= 4 {
		return "****" + account
	}
	return "****" + account[len(account)-4:]
}

// RedactWorker projects a worker for a viewer. Viewers without the sensitive
// capability get a masked bank account number.
func RedactWorker(w *domain.Worker, canViewSensitive bool) WorkerResponse {
	resp := WorkerResponse{
		WorkerID:          w.WorkerID,
		FirstNames:        w.FirstNames,
		LastNames:         w.LastNames,
		FullName:          w.FullName(),
		DocumentType:      w.DocumentType,
		DocumentNumber:    w.DocumentNumber,
		DocumentPlace:     w.DocumentPlace,
		BirthDate:         NewDate(w.BirthDate),
		Phone:             w.Phone,
		Address:           w.Address,
		Email:             w.Email,
		EPS:               w.EPS,
		ContractTypeID:    w.ContractTypeID,
		ContractTypeName:  w.ContractTypeName,
		HireDate:          NewDate(w.HireDate),
		RetireDate:        DatePtr(w.RetireDate),
		Status:            w.Status,
		BankAccountNumber: w.BankAccountNumber,
		Bank:              w.Bank,
		CreatedAt:         w.CreatedAt,
		LastUpdatedAt:     w.LastUpdatedAt,
	}
	if !canViewSensitive {
		resp.BankAccountNumber = MaskAccountNumber(w.BankAccountNumber)
	}
	return resp
}

// ToListWorkersResponse redacts every worker of a page.
func ToListWorkersResponse(workers []domain.Worker, total, limit, offset int, canViewSensitive bool) ListWorkersResponse {
	out := make([]WorkerResponse, len(workers))
	for i := range workers {
		out[i] = RedactWorker(&workers[i], canViewSensitive)
	}
	return ListWorkersResponse{Workers: out, Total: total, Limit: limit, Offset: offset}
}
