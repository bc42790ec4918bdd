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

type OrderServiceTestSuite struct {
	suite.Suite
	mockUOW         *uowmocks.MockUOW
	mockTX          *uowmocks.MockTX
	mockOrderRepo   *mocks.MockOrderRepository
	mockStoreRepo   *mocks.MockStoreRepository
	mockCatalogRepo *mocks.MockCatalogRepository
	mockMemberRepo  *mocks.MockMemberRepository
	mockReviewRepo  *mocks.MockOrderReviewRepository
	orderService    *OrderService
	tenantID        string
	store           domain.Store
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)
	s.mockOrderRepo = mocks.NewMockOrderRepository(mockCtrl)
	s.mockStoreRepo = mocks.NewMockStoreRepository(mockCtrl)
	s.mockCatalogRepo = mocks.NewMockCatalogRepository(mockCtrl)
	s.mockMemberRepo = mocks.NewMockMemberRepository(mockCtrl)
	s.mockReviewRepo = mocks.NewMockOrderReviewRepository(mockCtrl)

	s.tenantID = "0123456789abcdef0123456789abcdef"
	s.store = domain.Store{
		ID:       "store-1",
		TenantID: s.tenantID,
		Status:   domain.StoreStatusOpen,
	}

	// Мок получения репозиториев из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.StoreRepoName)).
		Return(s.mockStoreRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CatalogRepoName)).
		Return(s.mockCatalogRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.OrderReviewRepoName)).
		Return(s.mockReviewRepo, nil).AnyTimes()

	// Мок транзакции uow.
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.OrderRepoName)).
		Return(s.mockOrderRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.MemberRepoName)).
		Return(s.mockMemberRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.OrderReviewRepoName)).
		Return(s.mockReviewRepo, nil).AnyTimes()

	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	orderService, servErr := NewOrderService(s.mockUOW)
	s.Require().NoError(servErr)
	s.orderService = orderService
}

func (s *OrderServiceTestSuite) ctx() context.Context {
	return tenant.WithTenant(s.T().Context(), s.tenantID)
}

func (s *OrderServiceTestSuite) TestCreate() {
	s.mockStoreRepo.EXPECT().FindAnchor(gomock.Any(), s.store.ID).
		Return(&s.store, nil).AnyTimes()

	tea := domain.CatalogItem{ID: "item-tea", TenantID: s.tenantID, Name: "Tea", BasePriceCents: 2800}
	cake := domain.CatalogItem{ID: "item-cake", TenantID: s.tenantID, Name: "Cake", BasePriceCents: 2200}

	s.mockCatalogRepo.EXPECT().GetItem(gomock.Any(), s.tenantID, tea.ID).Return(&tea, nil)
	s.mockCatalogRepo.EXPECT().GetItem(gomock.Any(), s.tenantID, cake.ID).Return(&cake, nil)
	// Исчезнувшая из каталога позиция молча отбрасывается.
	s.mockCatalogRepo.EXPECT().GetItem(gomock.Any(), s.tenantID, "item-ghost").
		Return(nil, domain.ErrRecordNotFound)

	s.mockOrderRepo.EXPECT().SeqNoExistsToday(gomock.Any(), s.tenantID, s.store.ID, gomock.Any()).
		Return(false, nil)

	var saved *domain.Order
	s.mockOrderRepo.EXPECT().Create(gomock.Any(), s.tenantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, order *domain.Order) error {
			saved = order
			return nil
		})

	order, err := s.orderService.Create(s.ctx(), CreateOrderArgs{
		StoreID:   s.store.ID,
		UserID:    "user-1",
		Scene:     domain.SceneTable,
		TableCode: "T1",
		Items: []CreateOrderItem{
			{ItemID: tea.ID, Quantity: 2},
			{ItemID: cake.ID, Quantity: 1},
			{ItemID: "item-ghost", Quantity: 3},
		},
	})
	s.Require().NoError(err)
	s.Require().NotNil(saved)

	s.Equal(domain.OrderStatusCreated, order.Status)
	s.Len(order.Items, 2)
	// Сумма считается по авторитетным ценам каталога: 2*2800 + 2200.
	s.Equal(int64(7800), order.PriceTotalCents)
	s.Equal(int64(7800), order.PricePayableCents)
	s.Len(order.ID, 19)
	s.Require().NotEmpty(order.SeqNo)
	s.Equal(byte('A'), order.SeqNo[0])
}

func (s *OrderServiceTestSuite) TestCreate_SeqNoCollisionRetry() {
	s.mockStoreRepo.EXPECT().FindAnchor(gomock.Any(), s.store.ID).Return(&s.store, nil)

	item := domain.CatalogItem{ID: "item-1", TenantID: s.tenantID, Name: "Tea", BasePriceCents: 1000}
	s.mockCatalogRepo.EXPECT().GetItem(gomock.Any(), s.tenantID, item.ID).Return(&item, nil)

	// Первые две попытки коллизируют, третья свободна.
	gomock.InOrder(
		s.mockOrderRepo.EXPECT().SeqNoExistsToday(gomock.Any(), s.tenantID, s.store.ID, gomock.Any()).Return(true, nil),
		s.mockOrderRepo.EXPECT().SeqNoExistsToday(gomock.Any(), s.tenantID, s.store.ID, gomock.Any()).Return(true, nil),
		s.mockOrderRepo.EXPECT().SeqNoExistsToday(gomock.Any(), s.tenantID, s.store.ID, gomock.Any()).Return(false, nil),
	)
	s.mockOrderRepo.EXPECT().Create(gomock.Any(), s.tenantID, gomock.Any()).Return(nil)

	order, err := s.orderService.Create(s.ctx(), CreateOrderArgs{
		StoreID: s.store.ID,
		UserID:  "user-1",
		Scene:   domain.ScenePickup,
		Items:   []CreateOrderItem{{ItemID: item.ID, Quantity: 1}},
	})
	s.Require().NoError(err)
	s.NotEmpty(order.SeqNo)
}

func (s *OrderServiceTestSuite) TestCreate_TenantMismatch() {
	s.mockStoreRepo.EXPECT().FindAnchor(gomock.Any(), s.store.ID).Return(&s.store, nil)

	foreignCtx := tenant.WithTenant(s.T().Context(), "ffffffffffffffffffffffffffffffff")
	_, err := s.orderService.Create(foreignCtx, CreateOrderArgs{
		StoreID: s.store.ID,
		UserID:  "user-1",
		Scene:   domain.SceneTable,
		Items:   []CreateOrderItem{{ItemID: "item-1", Quantity: 1}},
	})
	s.Require().ErrorIs(err, domain.ErrStoreMismatch)
}

func (s *OrderServiceTestSuite) TestCreate_DirectPay() {
	s.mockStoreRepo.EXPECT().FindAnchor(gomock.Any(), s.store.ID).Return(&s.store, nil)
	s.mockOrderRepo.EXPECT().Create(gomock.Any(), s.tenantID, gomock.Any()).Return(nil)

	order, err := s.orderService.Create(s.ctx(), CreateOrderArgs{
		StoreID:           s.store.ID,
		UserID:            "user-1",
		Scene:             domain.SceneDirectPay,
		DirectAmountCents: 5000,
	})
	s.Require().NoError(err)
	s.Equal(int64(5000), order.PricePayableCents)
	s.Empty(order.Items)
	s.Empty(order.SeqNo)
}

func (s *OrderServiceTestSuite) TestCreate_DirectPay_RejectsNonPositiveAmount() {
	s.mockStoreRepo.EXPECT().FindAnchor(gomock.Any(), s.store.ID).
		Return(&s.store, nil).AnyTimes()

	// Отрицательная сумма прямой оплаты - это кредитование кошелька при
	// списании, нулевая - бесплатный заказ. Обе отклоняются до записи.
	for _, amount := range []int64{0, -5000} {
		_, err := s.orderService.Create(s.ctx(), CreateOrderArgs{
			StoreID:           s.store.ID,
			UserID:            "user-1",
			Scene:             domain.SceneDirectPay,
			DirectAmountCents: amount,
		})
		s.Require().ErrorIs(err, domain.ErrValidation)
	}
}

func (s *OrderServiceTestSuite) TestTransitions() {
	cases := []struct {
		name    string
		from    domain.OrderStatusType
		call    func(ctx context.Context, id string) (*domain.Order, error)
		want    domain.OrderStatusType
		wantErr bool
	}{
		{name: "accept paid", from: domain.OrderStatusPaid, call: s.orderService.Accept, want: domain.OrderStatusMaking},
		{name: "accept created", from: domain.OrderStatusCreated, call: s.orderService.Accept, wantErr: true},
		{name: "cancel created", from: domain.OrderStatusCreated, call: s.orderService.Cancel, want: domain.OrderStatusCancelled},
		{name: "cancel paid", from: domain.OrderStatusPaid, call: s.orderService.Cancel, wantErr: true},
		{name: "refund paid", from: domain.OrderStatusPaid, call: s.orderService.Refund, want: domain.OrderStatusRefunded},
		{name: "refund wait use", from: domain.OrderStatusWaitUse, call: s.orderService.Refund, want: domain.OrderStatusRefunded},
		{name: "refund done", from: domain.OrderStatusDone, call: s.orderService.Refund, wantErr: true},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			order := domain.Order{
				ID:       "7000000000000123456",
				TenantID: s.tenantID,
				StoreID:  s.store.ID,
				Status:   t.from,
			}
			s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), s.tenantID, order.ID).
				Return(&order, nil)
			if !t.wantErr {
				s.mockOrderRepo.EXPECT().
					UpdateStatus(gomock.Any(), s.tenantID, gomock.Any()).
					Return(nil)
			}

			got, err := t.call(s.ctx(), order.ID)
			if t.wantErr {
				var invalidErr *domain.InvalidTransitionError
				s.Require().ErrorAs(err, &invalidErr)
				return
			}
			s.Require().NoError(err)
			s.Equal(t.want, got.Status)
		})
	}
}

func (s *OrderServiceTestSuite) TestComplete_AwardsPoints() {
	order := domain.Order{
		ID:                "7000000000000123456",
		TenantID:          s.tenantID,
		StoreID:           s.store.ID,
		UserID:            "user-1",
		Status:            domain.OrderStatusMaking,
		PricePayableCents: 5990,
	}
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), s.tenantID, order.ID).Return(&order, nil)
	s.mockOrderRepo.EXPECT().
		UpdateStatus(gomock.Any(), s.tenantID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd repoargs.OrderStatusUpdate) error {
			s.Equal(domain.OrderStatusDone, upd.Target)
			s.NotNil(upd.CompletedAt)
			return nil
		})
	// 5990 копеек -> 59 баллов.
	s.mockMemberRepo.EXPECT().AddPoints(gomock.Any(), s.tenantID, order.UserID, int64(59)).
		Return(int64(59), nil)

	got, err := s.orderService.Complete(s.ctx(), order.ID)
	s.Require().NoError(err)
	s.Equal(domain.OrderStatusDone, got.Status)
	s.False(got.CompletedAt.IsZero())
}

func (s *OrderServiceTestSuite) TestReview() {
	order := domain.Order{
		ID:       "7000000000000123456",
		TenantID: s.tenantID,
		UserID:   "user-1",
		Status:   domain.OrderStatusDone,
	}
	savedReview := domain.OrderReview{ID: 1, OrderID: order.ID, UserID: order.UserID, Rating: 5}

	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), s.tenantID, order.ID).
		Return(&order, nil).AnyTimes()

	s.Run("ok", func() {
		s.mockReviewRepo.EXPECT().
			Upsert(gomock.Any(), s.tenantID, repoargs.ReviewUpsert{
				OrderID: order.ID,
				UserID:  order.UserID,
				Rating:  5,
				Content: "great",
			}).
			Return(&savedReview, nil)
		s.mockOrderRepo.EXPECT().
			UpdateStatus(gomock.Any(), s.tenantID, repoargs.OrderStatusUpdate{
				OrderID: order.ID,
				Target:  domain.OrderStatusReviewed,
			}).
			Return(nil)

		review, err := s.orderService.Review(s.ctx(), ReviewOrderArgs{
			OrderID: order.ID,
			UserID:  order.UserID,
			Rating:  5,
			Content: "great",
		})
		s.Require().NoError(err)
		s.Equal(&savedReview, review)
	})

	s.Run("foreign order is hidden", func() {
		_, err := s.orderService.Review(s.ctx(), ReviewOrderArgs{
			OrderID: order.ID,
			UserID:  "stranger",
			Rating:  1,
		})
		s.Require().ErrorIs(err, domain.ErrRecordNotFound)
	})
}

func (s *OrderServiceTestSuite) TestReview_WrongStatus() {
	order := domain.Order{
		ID:       "7000000000000123456",
		TenantID: s.tenantID,
		UserID:   "user-1",
		Status:   domain.OrderStatusPaid,
	}
	s.mockOrderRepo.EXPECT().GetForUpdate(gomock.Any(), s.tenantID, order.ID).Return(&order, nil)

	_, err := s.orderService.Review(s.ctx(), ReviewOrderArgs{OrderID: order.ID, UserID: order.UserID, Rating: 4})
	var invalidErr *domain.InvalidTransitionError
	s.Require().ErrorAs(err, &invalidErr)
}

func (s *OrderServiceTestSuite) TestGetReview() {
	review := domain.OrderReview{ID: 1, OrderID: "7000000000000123456", UserID: "user-1", Rating: 4}
	s.mockReviewRepo.EXPECT().GetByOrder(gomock.Any(), s.tenantID, review.OrderID).
		Return(&review, nil)
	s.mockReviewRepo.EXPECT().GetByOrder(gomock.Any(), s.tenantID, "7000000000000999999").
		Return(nil, domain.ErrRecordNotFound)

	got, err := s.orderService.GetReview(s.ctx(), review.OrderID)
	s.Require().NoError(err)
	s.Equal(&review, got)

	_, err = s.orderService.GetReview(s.ctx(), "7000000000000999999")
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *OrderServiceTestSuite) TestGetByUser_RequiresTenant() {
	_, err := s.orderService.GetByUser(s.T().Context(), "user-1", "")
	s.Require().ErrorIs(err, domain.ErrTenantMissing)
}
