package services_test

import (
	"context"
	"testing"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/core/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LaborRecordServiceTestSuite struct {
	suite.Suite
	recordRepo    *MockLaborRecordRepository
	workerRepo    *MockWorkerRepository
	laborRepo     *MockLaborRepository
	payPeriodRepo *MockPayPeriodRepository
	service       portssvc.LaborRecordSvcFacade

	june *domain.PayPeriod
	may  *domain.PayPeriod
}

func (s *LaborRecordServiceTestSuite) SetupTest() {
	s.recordRepo = new(MockLaborRecordRepository)
	s.workerRepo = new(MockWorkerRepository)
	s.laborRepo = new(MockLaborRepository)
	s.payPeriodRepo = new(MockPayPeriodRepository)
	s.service = services.NewLaborRecordService(s.recordRepo, s.workerRepo, s.laborRepo, s.payPeriodRepo,
		services.WithClock(fixedClock),
		services.WithIDGenerator(sequentialIDs()))

	var err error
	s.june, err = domain.NewPayPeriod("pp-june", 2025, 6, 1, fixedNow)
	s.Require().NoError(err)
	s.may, err = domain.NewPayPeriod("pp-may", 2025, 5, 1, fixedNow)
	s.Require().NoError(err)
}

func (s *LaborRecordServiceTestSuite) TearDownTest() {
	s.recordRepo.AssertExpectations(s.T())
	s.workerRepo.AssertExpectations(s.T())
	s.laborRepo.AssertExpectations(s.T())
	s.payPeriodRepo.AssertExpectations(s.T())
}

func (s *LaborRecordServiceTestSuite) request(date, quantity string) dto.CreateLaborRecordRequest {
	return dto.CreateLaborRecordRequest{
		WorkerID:    "worker-1",
		LaborID:     "labor-1",
		PayPeriodID: "pp-june",
		Date:        dto.NewDate(day(date)),
		Quantity:    decimal.RequireFromString(quantity),
	}
}

func activeLabor(contractOnly bool) *domain.Labor {
	return &domain.Labor{LaborID: "labor-1", Code: "FUM01", Name: "Fumigación", Active: true, ContractOnly: contractOnly}
}

func (s *LaborRecordServiceTestSuite) TestCreateLaborRecord() {
	ctx := context.Background()

	s.payPeriodRepo.On("FindPayPeriodByID", ctx, "pp-june").Return(s.june, nil).Once()
	s.workerRepo.On("FindWorkerByID", ctx, "worker-1").Return(activeWorker("worker-1"), nil).Once()
	s.laborRepo.On("FindLaborByID", ctx, "labor-1").Return(activeLabor(true), nil).Once()
	s.recordRepo.On("SaveLaborRecord", ctx, mock.MatchedBy(func(r domain.LaborRecord) bool {
		return r.RecordID == "id-1" && r.Date.Equal(day("2025-06-09")) && r.Quantity.Equal(decimal.RequireFromString("1.5"))
	})).Return(nil).Once()

	record, err := s.service.CreateLaborRecord(ctx, writerActor, s.request("2025-06-09", "1.5"))

	s.Require().NoError(err)
	s.Equal("pp-june", record.PayPeriodID)
}

func (s *LaborRecordServiceTestSuite) TestCreateLaborRecord_Rules() {
	ctx := context.Background()

	s.Run("quantity below minimum", func() {
		_, err := s.service.CreateLaborRecord(ctx, writerActor, s.request("2025-06-09", "0.001"))
		s.ErrorIs(err, apperrors.ErrValidation)
	})

	s.Run("quantity with more than two decimals", func() {
		_, err := s.service.CreateLaborRecord(ctx, writerActor, s.request("2025-06-09", "1.255"))
		s.ErrorIs(err, apperrors.ErrValidation)
		s.Contains(err.Error(), "1.255")
	})

	s.Run("date outside the quincena", func() {
		s.payPeriodRepo.On("FindPayPeriodByID", ctx, "pp-june").Return(s.june, nil).Once()
		_, err := s.service.CreateLaborRecord(ctx, writerActor, s.request("2025-06-20", "1"))
		s.ErrorIs(err, apperrors.ErrValidation)
	})

	s.Run("quincena past its deadline", func() {
		req := s.request("2025-05-05", "1")
		req.PayPeriodID = "pp-may"
		s.payPeriodRepo.On("FindPayPeriodByID", ctx, "pp-may").Return(s.may, nil).Once()
		_, err := s.service.CreateLaborRecord(ctx, writerActor, req)
		s.ErrorIs(err, apperrors.ErrInvalidState)
	})

	s.Run("retired worker", func() {
		retired := activeWorker("worker-1")
		retired.Status = domain.WorkerRetired
		s.payPeriodRepo.On("FindPayPeriodByID", ctx, "pp-june").Return(s.june, nil).Once()
		s.workerRepo.On("FindWorkerByID", ctx, "worker-1").Return(retired, nil).Once()
		_, err := s.service.CreateLaborRecord(ctx, writerActor, s.request("2025-06-09", "1"))
		s.ErrorIs(err, apperrors.ErrValidation)
	})

	s.Run("contract-only labor for a worker without contract", func() {
		informal := activeWorker("worker-1")
		informal.ContractTypeName = domain.WithoutContract
		s.payPeriodRepo.On("FindPayPeriodByID", ctx, "pp-june").Return(s.june, nil).Once()
		s.workerRepo.On("FindWorkerByID", ctx, "worker-1").Return(informal, nil).Once()
		s.laborRepo.On("FindLaborByID", ctx, "labor-1").Return(activeLabor(true), nil).Once()
		_, err := s.service.CreateLaborRecord(ctx, writerActor, s.request("2025-06-09", "1"))
		s.ErrorIs(err, apperrors.ErrValidation)
	})

	s.recordRepo.AssertNotCalled(s.T(), "SaveLaborRecord", mock.Anything, mock.Anything)
}

func (s *LaborRecordServiceTestSuite) TestDeleteLaborRecord_ClosedQuincena() {
	ctx := context.Background()
	record := &domain.LaborRecord{RecordID: "rec-1", PayPeriodID: "pp-may", WorkerID: "worker-1", LaborID: "labor-1", Date: day("2025-05-05")}

	s.recordRepo.On("FindLaborRecordByID", ctx, "rec-1").Return(record, nil).Once()
	s.payPeriodRepo.On("FindPayPeriodByID", ctx, "pp-may").Return(s.may, nil).Once()

	err := s.service.DeleteLaborRecord(ctx, writerActor, "rec-1")

	s.ErrorIs(err, apperrors.ErrInvalidState)
	s.recordRepo.AssertNotCalled(s.T(), "DeleteLaborRecord", mock.Anything, mock.Anything)
}

func (s *LaborRecordServiceTestSuite) TestUpdateLaborRecord_Quantity() {
	ctx := context.Background()
	record := &domain.LaborRecord{RecordID: "rec-1", PayPeriodID: "pp-june", WorkerID: "worker-1", LaborID: "labor-1", Date: day("2025-06-03"), Quantity: decimal.NewFromInt(1)}
	quantity := decimal.NewFromInt(2)

	s.recordRepo.On("FindLaborRecordByID", ctx, "rec-1").Return(record, nil).Once()
	s.payPeriodRepo.On("FindPayPeriodByID", ctx, "pp-june").Return(s.june, nil).Twice()
	s.workerRepo.On("FindWorkerByID", ctx, "worker-1").Return(activeWorker("worker-1"), nil).Once()
	s.laborRepo.On("FindLaborByID", ctx, "labor-1").Return(activeLabor(false), nil).Once()
	s.recordRepo.On("UpdateLaborRecord", ctx, mock.MatchedBy(func(r domain.LaborRecord) bool {
		return r.Quantity.Equal(quantity) && r.LastUpdatedBy == writerActor.UserID
	})).Return(nil).Once()

	got, err := s.service.UpdateLaborRecord(ctx, writerActor, "rec-1", dto.UpdateLaborRecordRequest{Quantity: &quantity})

	s.Require().NoError(err)
	s.True(got.Quantity.Equal(quantity))
}

func (s *LaborRecordServiceTestSuite) TestListLaborRecords_ClampsLimit() {
	ctx := context.Background()
	s.recordRepo.On("ListLaborRecords", ctx, domain.LaborRecordFilter{Limit: 200}).Return([]domain.LaborRecord{}, "token", nil).Once()

	records, token, err := s.service.ListLaborRecords(ctx, domain.LaborRecordFilter{Limit: 5000})

	s.Require().NoError(err)
	s.NotNil(records)
	s.Require().NotNil(token)
	s.Equal("token", *token)
}

func TestLaborRecordServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LaborRecordServiceTestSuite))
}
