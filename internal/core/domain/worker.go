package domain

import "time"

// DocumentType is the kind of identity document a worker holds.
type DocumentType string

const (
	DocumentCC  DocumentType = "CC"
	DocumentTI  DocumentType = "TI"
	DocumentCE  DocumentType = "CE"
	DocumentPEP DocumentType = "PEP"
)

func (d DocumentType) IsValid() bool {
	switch d {
	case DocumentCC, DocumentTI, DocumentCE, DocumentPEP:
		return true
	}
	return false
}

// WorkerStatus is the employment status of a worker.
type WorkerStatus string

const (
	WorkerActive   WorkerStatus = "ACTIVE"
	WorkerInactive WorkerStatus = "INACTIVE"
	WorkerRetired  WorkerStatus = "RETIRED"
)

func (s WorkerStatus) IsValid() bool {
	switch s {
	case WorkerActive, WorkerInactive, WorkerRetired:
		return true
	}
	return false
}

// ContractTypeName identifies a contract type.
type ContractTypeName string

const (
	WithContract    ContractTypeName = "CON_CONTRATO"
	WithoutContract ContractTypeName = "SIN_CONTRATO"
)

// ContractType determines which payroll concepts apply to a worker.
type ContractType struct {
	ContractTypeID    string           `json:"contractTypeID"`
	Name              ContractTypeName `json:"name"`
	Description       string           `json:"description"`
	AppliesDeductions bool             `json:"appliesDeductions"`
	AppliesSundays    bool             `json:"appliesSundays"`
	AppliesTransport  bool             `json:"appliesTransport"`
}

// Worker holds the personal, labor and bank data of a finca worker.
type Worker struct {
	WorkerID          string           `json:"workerID"`
	FirstNames        string           `json:"firstNames"`
	LastNames         string           `json:"lastNames"`
	DocumentType      DocumentType     `json:"documentType"`
	DocumentNumber    string           `json:"documentNumber"`
	DocumentPlace     string           `json:"documentPlace"`
	BirthDate         time.Time        `json:"birthDate"`
	Phone             string           `json:"phone"`
	Address           string           `json:"address"`
	Email             string           `json:"email"`
	EPS               string           `json:"eps"`
	ContractTypeID    string           `json:"contractTypeID"`
	ContractTypeName  ContractTypeName `json:"contractTypeName"`
	HireDate          time.Time        `json:"hireDate"`
	RetireDate        *time.Time       `json:"retireDate,omitempty"`
	Status            WorkerStatus     `json:"status"`
	BankAccountNumber string           `json:"bankAccountNumber"`
	Bank              string           `json:"bank"`
	AuditFields
}

// FullName returns names followed by surnames.
func (w Worker) FullName() string {
	return w.FirstNames + " " + w.LastNames
}

// HasContract reports whether the worker is employed under a formal contract.
func (w Worker) HasContract() bool {
	return w.ContractTypeName == WithContract
}

// WorkerFilter narrows worker listings.
type WorkerFilter struct {
	Status         *WorkerStatus
	ContractTypeID *string
	Search         string
	Limit          int
	Offset         int
}
