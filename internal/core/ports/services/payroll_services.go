package services

import (
	"context"

	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	"github.com/finca-nomina/nomina_backend/internal/dto"
)

// PayrollReaderSvc defines read operations for payrolls
type PayrollReaderSvc interface {
	GetPayroll(ctx context.Context, payrollID string) (*domain.Payroll, error)
	ListPayrolls(ctx context.Context, filter domain.PayrollFilter) ([]domain.Payroll, error)
}

// PayrollWriterSvc defines the payroll lifecycle operations
type PayrollWriterSvc interface {
	CreatePayroll(ctx context.Context, actor domain.Actor, req dto.CreatePayrollRequest) (*domain.Payroll, error)
	AddAdjustment(ctx context.Context, actor domain.Actor, payrollID string, req dto.AddAdjustmentRequest) (*domain.Payroll, error)

	// CalculatePayroll rebuilds the LABOR and LOAN lines and the totals.
	CalculatePayroll(ctx context.Context, actor domain.Actor, payrollID string) (*domain.Payroll, error)

	ApprovePayroll(ctx context.Context, actor domain.Actor, payrollID string) (*domain.Payroll, error)

	// MarkPayrollPaid pays the payroll and settles the loan installments it deducted.
	MarkPayrollPaid(ctx context.Context, actor domain.Actor, payrollID string) (*domain.Payroll, error)
}

// PayrollSvcFacade combines all payroll-related service interfaces
type PayrollSvcFacade interface {
	PayrollReaderSvc
	PayrollWriterSvc
}
