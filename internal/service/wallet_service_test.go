package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/repository/repoargs"
	"github.com/fsdevblog/groph-orders/internal/service/mocks"
	"github.com/fsdevblog/groph-orders/internal/tenant"
	"github.com/fsdevblog/groph-orders/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-orders/pkg/uow/mocks"
)

type WalletServiceTestSuite struct {
	suite.Suite
	mockUOW          *uowmocks.MockUOW
	mockTX           *uowmocks.MockTX
	mockWalletRepo   *mocks.MockWalletRepository
	mockRechargeRepo *mocks.MockRechargeOrderRepository
	mockGateway      *mocks.MockPaymentGateway
	walletService    *WalletService
	tenantID         string
}

func TestWalletServiceSuite(t *testing.T) {
	suite.Run(t, new(WalletServiceTestSuite))
}

func (s *WalletServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockWalletRepo = mocks.NewMockWalletRepository(mockCtrl)
	s.mockRechargeRepo = mocks.NewMockRechargeOrderRepository(mockCtrl)
	s.mockGateway = mocks.NewMockPaymentGateway(mockCtrl)

	s.tenantID = "0123456789abcdef0123456789abcdef"

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.WalletRepoName)).
		Return(s.mockWalletRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.RechargeOrderRepoName)).
		Return(s.mockRechargeRepo, nil).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.WalletRepoName)).
		Return(s.mockWalletRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.RechargeOrderRepoName)).
		Return(s.mockRechargeRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	walletService, servErr := NewWalletService(s.mockUOW, s.mockGateway)
	s.Require().NoError(servErr)
	s.walletService = walletService
}

func (s *WalletServiceTestSuite) ctx() context.Context {
	return tenant.WithTenant(s.T().Context(), s.tenantID)
}

func (s *WalletServiceTestSuite) TestBalance() {
	s.mockWalletRepo.EXPECT().Get(gomock.Any(), s.tenantID, "user-1").
		Return(&domain.Wallet{BalanceCents: 4200}, nil)
	s.mockWalletRepo.EXPECT().Get(gomock.Any(), s.tenantID, "user-2").
		Return(nil, domain.ErrRecordNotFound)

	balance, err := s.walletService.Balance(s.ctx(), "user-1")
	s.Require().NoError(err)
	s.Equal(int64(4200), balance)

	// Кошелек ленивый: отсутствие записи - это нулевой баланс, а не ошибка.
	balance, err = s.walletService.Balance(s.ctx(), "user-2")
	s.Require().NoError(err)
	s.Equal(int64(0), balance)
}

func (s *WalletServiceTestSuite) TestCreateRechargeOrder_BonusRule() {
	cases := []struct {
		name        string
		amountCents int64
		wantBonus   int64
	}{
		{name: "below threshold", amountCents: 9999, wantBonus: 0},
		{name: "at threshold", amountCents: 10000, wantBonus: 1000},
		{name: "above threshold", amountCents: 50000, wantBonus: 1000},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			s.mockRechargeRepo.EXPECT().
				Create(gomock.Any(), s.tenantID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, args repoargs.RechargeOrderCreate) (*domain.RechargeOrder, error) {
					s.Equal(t.amountCents, args.AmountCents)
					s.Equal(t.wantBonus, args.BonusCents)
					return &domain.RechargeOrder{
						ID:          args.ID,
						AmountCents: args.AmountCents,
						BonusCents:  args.BonusCents,
						Status:      domain.RechargeStatusCreated,
					}, nil
				})

			recharge, err := s.walletService.CreateRechargeOrder(s.ctx(), CreateRechargeArgs{
				UserID:      "user-1",
				AmountCents: t.amountCents,
				Channel:     domain.ChannelWxJSAPI,
			})
			s.Require().NoError(err)
			s.Equal(t.wantBonus, recharge.BonusCents)
		})
	}
}

func (s *WalletServiceTestSuite) TestCreateRechargeOrder_RejectsNonPositive() {
	_, err := s.walletService.CreateRechargeOrder(s.ctx(), CreateRechargeArgs{
		UserID:      "user-1",
		AmountCents: 0,
	})
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *WalletServiceTestSuite) TestConfirmRecharge() {
	recharge := domain.RechargeOrder{
		ID:          "rc-1",
		TenantID:    s.tenantID,
		UserID:      "user-1",
		AmountCents: 10000,
		BonusCents:  1000,
		Status:      domain.RechargeStatusCreated,
	}

	s.mockRechargeRepo.EXPECT().GetForUpdate(gomock.Any(), s.tenantID, recharge.ID).
		Return(&recharge, nil)
	s.mockRechargeRepo.EXPECT().MarkPaid(gomock.Any(), s.tenantID, recharge.ID, gomock.Any()).
		Return(nil)
	// Кошелек кредитуется на amount+bonus.
	s.mockWalletRepo.EXPECT().Credit(gomock.Any(), s.tenantID, recharge.UserID, int64(11000)).
		Return(int64(11000), nil)

	confirmed, err := s.walletService.ConfirmRecharge(s.ctx(), recharge.ID)
	s.Require().NoError(err)
	s.Equal(domain.RechargeStatusPaid, confirmed.Status)
	s.False(confirmed.PaidAt.IsZero())
}

func (s *WalletServiceTestSuite) TestConfirmRecharge_Idempotent() {
	paid := domain.RechargeOrder{
		ID:          "rc-1",
		TenantID:    s.tenantID,
		UserID:      "user-1",
		AmountCents: 10000,
		BonusCents:  1000,
		Status:      domain.RechargeStatusPaid,
		PaidAt:      time.Now().Add(-time.Hour),
	}

	// Повторное подтверждение не трогает ни заявку, ни кошелек.
	s.mockRechargeRepo.EXPECT().GetForUpdate(gomock.Any(), s.tenantID, paid.ID).
		Return(&paid, nil)

	confirmed, err := s.walletService.ConfirmRecharge(s.ctx(), paid.ID)
	s.Require().NoError(err)
	s.Equal(domain.RechargeStatusPaid, confirmed.Status)
	s.Equal(paid.PaidAt, confirmed.PaidAt)
}

func (s *WalletServiceTestSuite) TestPrepayRecharge() {
	s.mockRechargeRepo.EXPECT().Get(gomock.Any(), s.tenantID, "rc-1").
		Return(&domain.RechargeOrder{
			ID:          "rc-1",
			UserID:      "user-1",
			AmountCents: 10000,
			Status:      domain.RechargeStatusCreated,
		}, nil)
	s.mockGateway.EXPECT().Initiate(gomock.Any(), "rc-1", int64(10000)).
		Return(map[string]string{"package": "prepay_id=abc"}, nil)

	params, err := s.walletService.PrepayRecharge(s.ctx(), "rc-1")
	s.Require().NoError(err)
	s.Equal("prepay_id=abc", params["package"])
}

func (s *WalletServiceTestSuite) TestPrepayRecharge_AlreadyPaid() {
	s.mockRechargeRepo.EXPECT().Get(gomock.Any(), s.tenantID, "rc-1").
		Return(&domain.RechargeOrder{ID: "rc-1", Status: domain.RechargeStatusPaid}, nil)

	_, err := s.walletService.PrepayRecharge(s.ctx(), "rc-1")
	s.Require().ErrorIs(err, domain.ErrValidation)
}

func (s *WalletServiceTestSuite) TestRecharge_Instant() {
	s.mockRechargeRepo.EXPECT().
		Create(gomock.Any(), s.tenantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, args repoargs.RechargeOrderCreate) (*domain.RechargeOrder, error) {
			return &domain.RechargeOrder{
				ID:          args.ID,
				UserID:      args.UserID,
				AmountCents: args.AmountCents,
				BonusCents:  args.BonusCents,
				Status:      domain.RechargeStatusCreated,
			}, nil
		})
	s.mockRechargeRepo.EXPECT().
		GetForUpdate(gomock.Any(), s.tenantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, id string) (*domain.RechargeOrder, error) {
			return &domain.RechargeOrder{
				ID:          id,
				UserID:      "user-1",
				AmountCents: 5000,
				Status:      domain.RechargeStatusCreated,
			}, nil
		})
	s.mockRechargeRepo.EXPECT().MarkPaid(gomock.Any(), s.tenantID, gomock.Any(), gomock.Any()).Return(nil)
	s.mockWalletRepo.EXPECT().Credit(gomock.Any(), s.tenantID, "user-1", int64(5000)).
		Return(int64(5000), nil)

	recharge, err := s.walletService.Recharge(s.ctx(), CreateRechargeArgs{
		UserID:      "user-1",
		AmountCents: 5000,
		Channel:     domain.ChannelWallet,
	})
	s.Require().NoError(err)
	s.Equal(domain.RechargeStatusPaid, recharge.Status)
}
