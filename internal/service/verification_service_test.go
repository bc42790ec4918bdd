package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/repository/repoargs"
	"github.com/fsdevblog/groph-orders/internal/service/mocks"
	"github.com/fsdevblog/groph-orders/internal/tenant"
	"github.com/fsdevblog/groph-orders/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-orders/pkg/uow/mocks"
)

type VerificationServiceTestSuite struct {
	suite.Suite
	mockUOW        *uowmocks.MockUOW
	mockTX         *uowmocks.MockTX
	mockOrderRepo  *mocks.MockOrderRepository
	mockMemberRepo *mocks.MockMemberRepository
	verification   *VerificationService
	tenantID       string
	storeID        string
}

func TestVerificationServiceSuite(t *testing.T) {
	suite.Run(t, new(VerificationServiceTestSuite))
}

func (s *VerificationServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(mockCtrl)
	s.mockMemberRepo = mocks.NewMockMemberRepository(mockCtrl)

	s.tenantID = "0123456789abcdef0123456789abcdef"
	s.storeID = "store-1"

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.MemberRepoName)).
		Return(s.mockMemberRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	verification, servErr := NewVerificationService(s.mockUOW)
	s.Require().NoError(servErr)
	s.verification = verification
}

func (s *VerificationServiceTestSuite) ctx() context.Context {
	return tenant.WithTenant(s.T().Context(), s.tenantID)
}

func (s *VerificationServiceTestSuite) newOrder(status domain.OrderStatusType) domain.Order {
	return domain.Order{
		ID:                "7000000000000123456",
		TenantID:          s.tenantID,
		StoreID:           s.storeID,
		UserID:            "user-1",
		SeqNo:             "A0042",
		Status:            status,
		PricePayableCents: 3000,
	}
}

func (s *VerificationServiceTestSuite) TestVerify_ByOrderID() {
	order := s.newOrder(domain.OrderStatusWaitUse)
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), s.tenantID, order.ID).Return(&order, nil)
	s.mockOrderRepo.EXPECT().
		UpdateStatus(gomock.Any(), s.tenantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd repoargs.OrderStatusUpdate) error {
			s.Equal(domain.OrderStatusDone, upd.Target)
			s.NotNil(upd.CompletedAt)
			return nil
		})
	s.mockMemberRepo.EXPECT().AddPoints(gomock.Any(), s.tenantID, order.UserID, int64(30)).
		Return(int64(30), nil)

	verified, err := s.verification.Verify(s.ctx(), VerifyArgs{Code: order.ID, StoreID: s.storeID})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusDone, verified.Status)
}

func (s *VerificationServiceTestSuite) TestVerify_BySeqNo() {
	order := s.newOrder(domain.OrderStatusMaking)
	s.mockOrderRepo.EXPECT().
		FindBySeqNoTodayForUpdate(gomock.Any(), s.tenantID, s.storeID, order.SeqNo).
		Return(&order, nil)
	s.mockOrderRepo.EXPECT().UpdateStatus(gomock.Any(), s.tenantID, gomock.Any()).Return(nil)
	s.mockMemberRepo.EXPECT().AddPoints(gomock.Any(), s.tenantID, order.UserID, int64(30)).
		Return(int64(30), nil)

	verified, err := s.verification.Verify(s.ctx(), VerifyArgs{Code: order.SeqNo, StoreID: s.storeID})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusDone, verified.Status)
}

// Числовой код, не нашедшийся как id, повторно пробуется как суточный номер.
func (s *VerificationServiceTestSuite) TestVerify_NumericFallsBackToSeqNo() {
	order := s.newOrder(domain.OrderStatusWaitUse)
	order.SeqNo = "0042"

	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), s.tenantID, "0042").
		Return(nil, domain.ErrRecordNotFound)
	s.mockOrderRepo.EXPECT().
		FindBySeqNoTodayForUpdate(gomock.Any(), s.tenantID, s.storeID, "0042").
		Return(&order, nil)
	s.mockOrderRepo.EXPECT().UpdateStatus(gomock.Any(), s.tenantID, gomock.Any()).Return(nil)
	s.mockMemberRepo.EXPECT().AddPoints(gomock.Any(), s.tenantID, order.UserID, int64(30)).
		Return(int64(30), nil)

	verified, err := s.verification.Verify(s.ctx(), VerifyArgs{Code: "0042", StoreID: s.storeID})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusDone, verified.Status)
}

func (s *VerificationServiceTestSuite) TestVerify_Failures() {
	cases := []struct {
		name    string
		status  domain.OrderStatusType
		storeID string
		wantErr error
	}{
		{name: "foreign store", status: domain.OrderStatusWaitUse, storeID: "store-2", wantErr: domain.ErrStoreMismatch},
		{name: "already used", status: domain.OrderStatusDone, storeID: "store-1", wantErr: domain.ErrOrderAlreadyUsed},
		{name: "already reviewed", status: domain.OrderStatusReviewed, storeID: "store-1", wantErr: domain.ErrOrderAlreadyUsed},
		{name: "not paid yet", status: domain.OrderStatusCreated, storeID: "store-1", wantErr: domain.ErrOrderNotRedeemable},
		{name: "refunded", status: domain.OrderStatusRefunded, storeID: "store-1", wantErr: domain.ErrOrderNotRedeemable},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			order := s.newOrder(t.status)
			s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), s.tenantID, order.ID).Return(&order, nil)

			_, err := s.verification.Verify(s.ctx(), VerifyArgs{Code: order.ID, StoreID: t.storeID})
			s.Require().ErrorIs(err, t.wantErr)
		})
	}
}

func (s *VerificationServiceTestSuite) TestVerify_UnknownCode() {
	s.mockOrderRepo.EXPECT().
		FindBySeqNoTodayForUpdate(gomock.Any(), s.tenantID, s.storeID, "Z9999").
		Return(nil, domain.ErrRecordNotFound)

	_, err := s.verification.Verify(s.ctx(), VerifyArgs{Code: "Z9999", StoreID: s.storeID})
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *VerificationServiceTestSuite) TestVerify_RequiresTenant() {
	_, err := s.verification.Verify(s.T().Context(), VerifyArgs{Code: "A0042", StoreID: s.storeID})
	s.Require().ErrorIs(err, domain.ErrTenantMissing)
}
