package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/finca-nomina/nomina_backend/internal/apperrors"
	"github.com/finca-nomina/nomina_backend/internal/core/domain"
	portssvc "github.com/finca-nomina/nomina_backend/internal/core/ports/services"
	"github.com/finca-nomina/nomina_backend/internal/core/services"
	"github.com/finca-nomina/nomina_backend/internal/dto"
	"github.com/finca-nomina/nomina_backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	audit    *MockAuditRecorder
	service  portssvc.UserSvcFacade
}

func (s *UserServiceTestSuite) SetupTest() {
	s.userRepo = new(MockUserRepository)
	s.audit = new(MockAuditRecorder)
	s.service = services.NewUserService(s.userRepo,
		services.WithClock(fixedClock),
		services.WithIDGenerator(sequentialIDs()),
		services.WithAuditRecorder(s.audit))
}

func (s *UserServiceTestSuite) TearDownTest() {
	s.userRepo.AssertExpectations(s.T())
	s.audit.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) storedUser(password string, active bool) *domain.User {
	hash, err := utils.HashPassword(password)
	s.Require().NoError(err)
	return &domain.User{
		UserID:       "user-1",
		Username:     "digitador",
		PasswordHash: hash,
		Role:         domain.RoleDigitador,
		IsActive:     active,
	}
}

func (s *UserServiceTestSuite) TestCreateUser() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username:  "digitador",
		FirstName: "Luz",
		LastName:  "Mejía",
		Password:  "secreto123",
		Role:      domain.RoleDigitador,
	}

	s.userRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == "id-1" && u.IsActive && u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(nil).Once()
	s.audit.On("Record", ctx, adminActor, domain.AuditCreate, "users", "id-1", nil, mock.Anything).Once()

	user, err := s.service.CreateUser(ctx, adminActor, req)

	s.Require().NoError(err)
	s.Equal("id-1", user.UserID)
	s.Equal(adminActor.UserID, user.CreatedBy)
}

func (s *UserServiceTestSuite) TestCreateUser_Rejections() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "x", Password: "secreto123", Role: domain.RoleReadOnly}

	_, err := s.service.CreateUser(ctx, writerActor, req)
	s.ErrorIs(err, apperrors.ErrForbidden)

	bad := req
	bad.Role = "AUDITOR"
	_, err = s.service.CreateUser(ctx, adminActor, bad)
	s.ErrorIs(err, apperrors.ErrValidation)

	s.userRepo.On("SaveUser", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()
	_, err = s.service.CreateUser(ctx, adminActor, req)
	s.ErrorIs(err, apperrors.ErrDuplicate)
}

func (s *UserServiceTestSuite) TestAuthenticateUser() {
	ctx := context.Background()

	s.Run("valid credentials stamp the last login", func() {
		s.userRepo.On("FindUserByUsername", ctx, "digitador").Return(s.storedUser("secreto123", true), nil).Once()
		s.userRepo.On("UpdateLastLogin", ctx, "user-1", fixedNow).Return(nil).Once()

		user, err := s.service.AuthenticateUser(ctx, "digitador", "secreto123")
		s.Require().NoError(err)
		s.Require().NotNil(user.LastLoginAt)
		s.Equal(fixedNow, *user.LastLoginAt)
	})

	s.Run("last login failure does not block", func() {
		s.userRepo.On("FindUserByUsername", ctx, "digitador").Return(s.storedUser("secreto123", true), nil).Once()
		s.userRepo.On("UpdateLastLogin", ctx, "user-1", fixedNow).Return(errors.New("db down")).Once()

		user, err := s.service.AuthenticateUser(ctx, "digitador", "secreto123")
		s.Require().NoError(err)
		s.Nil(user.LastLoginAt)
	})

	s.Run("wrong password", func() {
		s.userRepo.On("FindUserByUsername", ctx, "digitador").Return(s.storedUser("secreto123", true), nil).Once()
		_, err := s.service.AuthenticateUser(ctx, "digitador", "otra-clave")
		s.ErrorIs(err, apperrors.ErrUnauthorized)
	})

	s.Run("inactive user", func() {
		s.userRepo.On("FindUserByUsername", ctx, "digitador").Return(s.storedUser("secreto123", false), nil).Once()
		_, err := s.service.AuthenticateUser(ctx, "digitador", "secreto123")
		s.ErrorIs(err, apperrors.ErrUnauthorized)
	})

	s.Run("unknown user", func() {
		s.userRepo.On("FindUserByUsername", ctx, "nadie").Return(nil, apperrors.ErrNotFound).Once()
		_, err := s.service.AuthenticateUser(ctx, "nadie", "secreto123")
		s.ErrorIs(err, apperrors.ErrUnauthorized)
	})
}

func (s *UserServiceTestSuite) TestDeleteUser() {
	ctx := context.Background()

	err := s.service.DeleteUser(ctx, adminActor, adminActor.UserID)
	s.ErrorIs(err, apperrors.ErrValidation)

	s.userRepo.On("FindUserByID", ctx, "user-1").Return(s.storedUser("secreto123", true), nil).Once()
	s.userRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.UserID == "user-1" && !u.IsActive
	})).Return(nil).Once()
	s.audit.On("Record", ctx, adminActor, domain.AuditDelete, "users", "user-1", mock.Anything, mock.Anything).Once()

	s.Require().NoError(s.service.DeleteUser(ctx, adminActor, "user-1"))
}

func (s *UserServiceTestSuite) TestUpdateUser_ChangesRoleAndPassword() {
	ctx := context.Background()
	role := domain.RoleReadOnly
	password := "nueva-clave-1"

	s.userRepo.On("FindUserByID", ctx, "user-1").Return(s.storedUser("secreto123", true), nil).Once()
	s.userRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleReadOnly && utils.CheckPasswordHash(password, u.PasswordHash)
	})).Return(nil).Once()
	s.audit.On("Record", ctx, adminActor, domain.AuditUpdate, "users", "user-1", mock.Anything, mock.Anything).Once()

	user, err := s.service.UpdateUser(ctx, adminActor, "user-1", dto.UpdateUserRequest{Role: &role, Password: &password})

	s.Require().NoError(err)
	s.Equal(domain.RoleReadOnly, user.Role)
	s.Equal(fixedNow, user.LastUpdatedAt)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
