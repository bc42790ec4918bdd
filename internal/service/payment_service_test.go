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

type PaymentServiceTestSuite struct {
	suite.Suite
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockOrderRepo   *mocks.MockOrderRepository
	mockWalletRepo  *mocks.MockWalletRepository
	mockPaymentRepo *mocks.MockPaymentRepository
	mockMemberRepo  *mocks.MockMemberRepository
	mockGateway     *mocks.MockPaymentGateway
	paymentService  *PaymentService
	tenantID        string
}

func TestPaymentServiceSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (s *PaymentServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(mockCtrl)
	s.mockWalletRepo = mocks.NewMockWalletRepository(mockCtrl)
	s.mockPaymentRepo = mocks.NewMockPaymentRepository(mockCtrl)
	s.mockMemberRepo = mocks.NewMockMemberRepository(mockCtrl)
	s.mockGateway = mocks.NewMockPaymentGateway(mockCtrl)

	s.tenantID = "0123456789abcdef0123456789abcdef"

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.PaymentRepoName)).
		Return(s.mockPaymentRepo, nil).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.WalletRepoName)).
		Return(s.mockWalletRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.PaymentRepoName)).
		Return(s.mockPaymentRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.MemberRepoName)).
		Return(s.mockMemberRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	paymentService, servErr := NewPaymentService(s.mockUOW, s.mockGateway)
	s.Require().NoError(servErr)
	s.paymentService = paymentService
}

func (s *PaymentServiceTestSuite) ctx() context.Context {
	return tenant.WithTenant(s.T().Context(), s.tenantID)
}

func (s *PaymentServiceTestSuite) newOrder(scene domain.OrderScene, status domain.OrderStatusType) domain.Order {
	return domain.Order{
		ID:                "7000000000000123456",
		TenantID:          s.tenantID,
		StoreID:           "store-1",
		UserID:            "user-1",
		Scene:             scene,
		Status:            status,
		PriceTotalCents:   5000,
		PricePayableCents: 5000,
	}
}

func (s *PaymentServiceTestSuite) TestPay_WalletHappyPath() {
	order := s.newOrder(domain.SceneTable, domain.OrderStatusCreated)

	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), s.tenantID, order.ID).Return(&order, nil)
	s.mockWalletRepo.EXPECT().Debit(gomock.Any(), s.tenantID, order.UserID, int64(5000)).
		Return(int64(1000), nil)
	s.mockOrderRepo.EXPECT().
		UpdateStatus(gomock.Any(), s.tenantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd repoargs.OrderStatusUpdate) error {
			s.Equal(domain.OrderStatusPaid, upd.Target)
			return nil
		})
	s.mockPaymentRepo.EXPECT().
		Create(gomock.Any(), s.tenantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, payment *domain.Payment) error {
			s.NotEmpty(payment.ID)
			s.Equal(order.ID, payment.OrderID)
			s.Equal(int64(5000), payment.AmountCents)
			s.Equal(domain.ChannelWallet, payment.Channel)
			s.Equal(domain.PaymentStatusSuccess, payment.Status)
			return nil
		})

	paid, err := s.paymentService.Pay(s.ctx(), PayOrderArgs{
		OrderID: order.ID,
		UserID:  order.UserID,
		Channel: domain.ChannelWallet,
	})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusPaid, paid.Status)
}

func (s *PaymentServiceTestSuite) TestPay_DoublePay() {
	order := s.newOrder(domain.SceneTable, domain.OrderStatusPaid)
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), s.tenantID, order.ID).Return(&order, nil)

	_, err := s.paymentService.Pay(s.ctx(), PayOrderArgs{
		OrderID: order.ID,
		UserID:  order.UserID,
		Channel: domain.ChannelWallet,
	})
	var invalidErr *domain.InvalidTransitionError
	s.Require().ErrorAs(err, &invalidErr)
}

func (s *PaymentServiceTestSuite) TestPay_InsufficientBalance() {
	order := s.newOrder(domain.SceneTable, domain.OrderStatusCreated)
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), s.tenantID, order.ID).Return(&order, nil)
	s.mockWalletRepo.EXPECT().Debit(gomock.Any(), s.tenantID, order.UserID, int64(5000)).
		Return(int64(0), domain.ErrInsufficientBalance)

	_, err := s.paymentService.Pay(s.ctx(), PayOrderArgs{
		OrderID: order.ID,
		UserID:  order.UserID,
		Channel: domain.ChannelWallet,
	})
	s.Require().ErrorIs(err, domain.ErrInsufficientBalance)
}

func (s *PaymentServiceTestSuite) TestPay_CouponGoesToWaitUse() {
	order := s.newOrder(domain.SceneCoupon, domain.OrderStatusCreated)
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), s.tenantID, order.ID).Return(&order, nil)
	s.mockOrderRepo.EXPECT().
		UpdateStatus(gomock.Any(), s.tenantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd repoargs.OrderStatusUpdate) error {
			s.Equal(domain.OrderStatusWaitUse, upd.Target)
			return nil
		})
	s.mockPaymentRepo.EXPECT().Create(gomock.Any(), s.tenantID, gomock.Any()).Return(nil)

	paid, err := s.paymentService.Pay(s.ctx(), PayOrderArgs{
		OrderID: order.ID,
		UserID:  order.UserID,
		Channel: domain.ChannelWxJSAPI,
	})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusWaitUse, paid.Status)
}

func (s *PaymentServiceTestSuite) TestPay_BillCompletesAndAwardsPoints() {
	order := s.newOrder(domain.SceneBill, domain.OrderStatusCreated)
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), s.tenantID, order.ID).Return(&order, nil)
	s.mockOrderRepo.EXPECT().
		UpdateStatus(gomock.Any(), s.tenantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd repoargs.OrderStatusUpdate) error {
			s.Equal(domain.OrderStatusDone, upd.Target)
			s.NotNil(upd.CompletedAt)
			return nil
		})
	s.mockMemberRepo.EXPECT().AddPoints(gomock.Any(), s.tenantID, order.UserID, int64(50)).
		Return(int64(50), nil)
	s.mockPaymentRepo.EXPECT().Create(gomock.Any(), s.tenantID, gomock.Any()).Return(nil)

	paid, err := s.paymentService.Pay(s.ctx(), PayOrderArgs{
		OrderID: order.ID,
		UserID:  order.UserID,
		Channel: domain.ChannelWxJSAPI,
	})
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusDone, paid.Status)
}

func (s *PaymentServiceTestSuite) TestPay_RequiresTenant() {
	_, err := s.paymentService.Pay(s.T().Context(), PayOrderArgs{OrderID: "1", UserID: "user-1"})
	s.Require().ErrorIs(err, domain.ErrTenantMissing)
}

func (s *PaymentServiceTestSuite) TestHistory() {
	payments := []domain.Payment{{
		ID:          "pay-1",
		TenantID:    s.tenantID,
		OrderID:     "7000000000000123456",
		UserID:      "user-1",
		AmountCents: 5000,
		Status:      domain.PaymentStatusSuccess,
		Channel:     domain.ChannelWallet,
	}}
	s.mockPaymentRepo.EXPECT().ListByOrder(gomock.Any(), s.tenantID, "7000000000000123456").
		Return(payments, nil)

	got, err := s.paymentService.History(s.ctx(), "7000000000000123456")
	s.Require().NoError(err)
	s.Equal(payments, got)
}

func (s *PaymentServiceTestSuite) TestHistory_RequiresTenant() {
	_, err := s.paymentService.History(s.T().Context(), "7000000000000123456")
	s.Require().ErrorIs(err, domain.ErrTenantMissing)
}

func (s *PaymentServiceTestSuite) TestPrepay() {
	order := s.newOrder(domain.SceneTable, domain.OrderStatusCreated)
	wantParams := map[string]string{"prepay_id": "wx-123"}

	s.mockOrderRepo.EXPECT().Get(gomock.Any(), s.tenantID, order.ID).Return(&order, nil)
	s.mockGateway.EXPECT().Initiate(gomock.Any(), order.ID, int64(5000)).Return(wantParams, nil)

	params, err := s.paymentService.Prepay(s.ctx(), order.ID)
	s.Require().NoError(err)
	s.Equal(wantParams, params)
}

func (s *PaymentServiceTestSuite) TestPrepay_AlreadyPaid() {
	order := s.newOrder(domain.SceneTable, domain.OrderStatusPaid)
	s.mockOrderRepo.EXPECT().Get(gomock.Any(), s.tenantID, order.ID).Return(&order, nil)

	_, err := s.paymentService.Prepay(s.ctx(), order.ID)
	var invalidErr *domain.InvalidTransitionError
	s.Require().ErrorAs(err, &invalidErr)
}
