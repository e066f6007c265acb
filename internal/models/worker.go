package models

import "time"

// Worker is a row of the workers table joined with its contract type name.
type Worker struct {
	WorkerID          string     `db:"worker_id"`
	FirstNames        string     `db:"first_names"`
	LastNames         string     `db:"last_names"`
	DocumentType      string     `db:"document_type"`
	DocumentNumber    string     `db:"document_number"`
	DocumentPlace     *string    `db:"document_place"`
	BirthDate         time.Time  `db:"birth_date"`
	Phone             *string    `db:"phone"`
	Address           *string    `db:"address"`
	Email             *string    `db:"email"`
	EPS               *string    `db:"eps"`
	ContractTypeID    string     `db:"contract_type_id"`
	ContractTypeName  string     `db:"contract_type_name"`
	HireDate          time.Time  `db:"hire_date"`
	RetireDate        *time.Time `db:"retire_date"`
	Status            string     `db:"status"`
	BankAccountNumber *string    `db:"bank_account_number"`
	Bank              *string    `db:"bank"`
	AuditFields
}

// ContractType is a row of the contract_types table.
type ContractType struct {
	ContractTypeID    string `db:"contract_type_id"`
	Name              string `db:"name"`
	Description       string `db:"description"`
	AppliesDeductions bool   `db:"applies_deductions"`
	AppliesSundays    bool   `db:"applies_sundays"`
	AppliesTransport  bool   `db:"applies_transport"`
}
