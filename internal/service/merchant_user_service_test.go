package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/repository/repoargs"
	"github.com/fsdevblog/groph-orders/internal/service/mocks"
	"github.com/fsdevblog/groph-orders/internal/service/tokens"
	"github.com/fsdevblog/groph-orders/internal/tenant"
	"github.com/fsdevblog/groph-orders/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-orders/pkg/uow/mocks"
)

type MerchantUserServiceTestSuite struct {
	suite.Suite
	mockUOW          *uowmocks.MockUOW
	mockMerchantRepo *mocks.MockMerchantUserRepository
	mockPsswd        *mocks.MockPasswordHasher
	jwtSecret        []byte
	merchantService  *MerchantUserService
	tenantID         string
}

func TestMerchantUserServiceSuite(t *testing.T) {
	suite.Run(t, new(MerchantUserServiceTestSuite))
}

func (s *MerchantUserServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockMerchantRepo = mocks.NewMockMerchantUserRepository(mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(mockCtrl)

	s.jwtSecret = []byte("secret")
	s.tenantID = "0123456789abcdef0123456789abcdef"

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.MerchantUserRepoName)).
		Return(s.mockMerchantRepo, nil).AnyTimes()

	merchantService, servErr := NewMerchantUserService(s.mockUOW, s.jwtSecret, s.mockPsswd)
	s.Require().NoError(servErr)
	s.merchantService = merchantService
}

func (s *MerchantUserServiceTestSuite) ctx() context.Context {
	return tenant.WithTenant(s.T().Context(), s.tenantID)
}

func (s *MerchantUserServiceTestSuite) TestLogin() {
	savedUsername := "staff"
	validHash := "hash ok"

	argsOk := LoginMerchantArgs{Username: savedUsername, Password: "<PASSWORD>"}
	argsWrongUsername := LoginMerchantArgs{Username: "wrong", Password: "<PASSWORD>"}
	argsWrongPass := LoginMerchantArgs{Username: savedUsername, Password: "wrong pass"}

	savedUser := domain.MerchantUser{
		ID:           "mu-1",
		TenantID:     s.tenantID,
		StoreID:      "store-1",
		Username:     savedUsername,
		PasswordHash: validHash,
		Role:         "cashier",
	}

	s.mockPsswd.EXPECT().ComparePassword(argsOk.Password, validHash).Return(true)
	s.mockPsswd.EXPECT().ComparePassword(argsWrongPass.Password, validHash).Return(false)

	s.mockMerchantRepo.EXPECT().
		FindByUsername(gomock.Any(), s.tenantID, savedUsername).
		Return(&savedUser, nil).Times(2)
	s.mockMerchantRepo.EXPECT().
		FindByUsername(gomock.Any(), s.tenantID, argsWrongUsername.Username).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		args    LoginMerchantArgs
		wantErr error
	}{
		{name: "ok", args: argsOk, wantErr: nil},
		{name: "wrong username", args: argsWrongUsername, wantErr: domain.ErrRecordNotFound},
		{name: "wrong password", args: argsWrongPass, wantErr: domain.ErrPasswordMissMatch},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			user, tokenStr, err := s.merchantService.Login(s.ctx(), t.args)
			s.Require().ErrorIs(err, t.wantErr)

			if t.wantErr == nil {
				s.Require().NotEmpty(tokenStr)
				s.NotNil(user)

				claims, tokenErr := tokens.ValidateMerchantJWT(tokenStr, s.jwtSecret)
				s.Require().NoError(tokenErr)
				s.Equal(savedUser.ID, claims.UserID)
				// tenant_id зашит в токен: авторизованные запросы мерчанта
				// привязаны к своему тенанту без повторного резолва.
				s.Equal(s.tenantID, claims.TenantID)
				s.Equal(savedUser.StoreID, claims.StoreID)
			}
		})
	}
}

func (s *MerchantUserServiceTestSuite) TestLogin_RequiresTenant() {
	_, _, err := s.merchantService.Login(s.T().Context(), LoginMerchantArgs{Username: "staff", Password: "x"})
	s.Require().ErrorIs(err, domain.ErrTenantMissing)
}
