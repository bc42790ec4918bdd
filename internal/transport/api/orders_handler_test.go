package api

import (
	"bytes"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/logger"
	"github.com/fsdevblog/groph-orders/internal/service"
	"github.com/fsdevblog/groph-orders/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-orders/internal/transport/api/testutils"
)

type OrdersHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockTenantService  *mocks.MockTenantServicer
	mockOrderService   *mocks.MockOrderServicer
	mockPaymentService *mocks.MockPaymentServicer
	jwtSecret          []byte
}

func TestOrdersHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrdersHandlerTestSuite))
}

func (s *OrdersHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockTenantService = mocks.NewMockTenantServicer(mockCtrl)
	s.mockOrderService = mocks.NewMockOrderServicer(mockCtrl)
	s.mockPaymentService = mocks.NewMockPaymentServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	router, err := New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		TenantService:  s.mockTenantService,
		OrderService:   s.mockOrderService,
		PaymentService: s.mockPaymentService,
		JWTSecretKey:   s.jwtSecret,
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *OrdersHandlerTestSuite) TestCreate() {
	validPayload := []byte(`{
		"store_id": "store-1",
		"user_id": "wx-user-1",
		"scene": "TABLE",
		"table_code": "T5",
		"items": [{"item_id": "latte", "quantity": 2}]
	}`)
	badScenePayload := []byte(`{
		"store_id": "store-1",
		"user_id": "wx-user-1",
		"scene": "TELEPATHY",
		"items": [{"item_id": "latte", "quantity": 2}]
	}`)
	foreignStorePayload := []byte(`{
		"store_id": "foreign-store",
		"user_id": "wx-user-1",
		"scene": "TABLE",
		"items": [{"item_id": "latte", "quantity": 2}]
	}`)
	negativeAmountPayload := []byte(`{
		"store_id": "store-1",
		"user_id": "wx-user-1",
		"scene": "DIRECTPAY",
		"direct_amount_cents": -5000
	}`)

	// Моки
	// Валидный запрос.
	s.mockOrderService.EXPECT().
		Create(gomock.Any(), gomock.AssignableToTypeOf(service.CreateOrderArgs{})).
		DoAndReturn(func(_ any, args service.CreateOrderArgs) (*domain.Order, error) {
			s.Equal("store-1", args.StoreID)
			s.Equal(domain.SceneTable, args.Scene)
			s.Require().Len(args.Items, 1)
			s.Equal(int32(2), args.Items[0].Quantity)
			return &domain.Order{
				ID:                "1724900000000123456",
				StoreID:           args.StoreID,
				Scene:             args.Scene,
				Status:            domain.OrderStatusCreated,
				SeqNo:             "A0042",
				PriceTotalCents:   5600,
				PricePayableCents: 5600,
				CreatedAt:         time.Now(),
			}, nil
		}).Times(1)
	// Магазин чужого тенанта.
	s.mockOrderService.EXPECT().
		Create(gomock.Any(), gomock.AssignableToTypeOf(service.CreateOrderArgs{})).
		Return(nil, domain.ErrStoreMismatch).Times(1)

	cases := []struct {
		name       string
		payload    []byte
		tenantID   string
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    validPayload,
			wantStatus: http.StatusCreated,
		}, {
			name:       "unknown scene",
			payload:    badScenePayload,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "empty body",
			payload:    []byte(""),
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "store of another tenant",
			payload:    foreignStorePayload,
			tenantID:   "0123456789abcdef0123456789abcdef",
			wantStatus: http.StatusConflict,
		}, {
			// Отрицательная сумма прямой оплаты отсекается еще на биндинге.
			name:       "negative direct amount",
			payload:    negativeAmountPayload,
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	s.mockTenantService.EXPECT().
		Resolve(gomock.Any(), "0123456789abcdef0123456789abcdef").
		Return("0123456789abcdef0123456789abcdef", nil).AnyTimes()

	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + OrdersRoute,
				Body:   bytes.NewReader(t.payload),
			}
			reqOpts := []func(*testutils.RequestOptions){
				testutils.WithHeader("Content-Type", "application/json"),
			}
			if t.tenantID != "" {
				reqOpts = append(reqOpts, testutils.WithHeader("X-Tenant-ID", t.tenantID))
			}
			res, err := testutils.MakeRequest(args, reqOpts...)
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *OrdersHandlerTestSuite) TestIndex() {
	tenantID := "0123456789abcdef0123456789abcdef"
	s.mockTenantService.EXPECT().
		Resolve(gomock.Any(), "coffee-co").
		Return(tenantID, nil).AnyTimes()

	orders := []domain.Order{
		{
			ID:        "1724900000000123456",
			TenantID:  tenantID,
			StoreID:   "store-1",
			UserID:    "wx-user-1",
			Scene:     domain.SceneTable,
			Status:    domain.OrderStatusDone,
			SeqNo:     "A0042",
			CreatedAt: time.Now(),
		},
	}
	s.mockOrderService.EXPECT().
		GetByUser(gomock.Any(), "wx-user-1", domain.OrderStatusType("")).Return(orders, nil)
	s.mockOrderService.EXPECT().
		GetByUser(gomock.Any(), "wx-user-2", domain.OrderStatusType("")).Return(nil, nil)

	cases := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{
			name:       "all ok",
			url:        RouteGroup + OrdersRoute + "?tenant_id=coffee-co&user_id=wx-user-1",
			wantStatus: http.StatusOK,
		}, {
			name:       "no orders",
			url:        RouteGroup + OrdersRoute + "?tenant_id=coffee-co&user_id=wx-user-2",
			wantStatus: http.StatusNoContent,
		}, {
			name:       "missing user_id",
			url:        RouteGroup + OrdersRoute + "?tenant_id=coffee-co",
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    t.url,
			})
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *OrdersHandlerTestSuite) TestShow() {
	s.mockOrderService.EXPECT().
		Get(gomock.Any(), "1724900000000123456").
		Return(&domain.Order{ID: "1724900000000123456", Status: domain.OrderStatusCreated}, nil)
	s.mockOrderService.EXPECT().
		Get(gomock.Any(), "missing").
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		orderID    string
		wantStatus int
	}{
		{name: "all ok", orderID: "1724900000000123456", wantStatus: http.StatusOK},
		{name: "not found", orderID: "missing", wantStatus: http.StatusNotFound},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + "/orders/" + t.orderID,
			})
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *OrdersHandlerTestSuite) TestPay() {
	orderID := "1724900000000123456"

	s.mockPaymentService.EXPECT().
		Pay(gomock.Any(), service.PayOrderArgs{
			OrderID: orderID,
			UserID:  "wx-user-1",
			Channel: domain.ChannelWallet,
		}).
		Return(&domain.Order{ID: orderID, Status: domain.OrderStatusPaid}, nil).Times(1)
	s.mockPaymentService.EXPECT().
		Pay(gomock.Any(), service.PayOrderArgs{
			OrderID: orderID,
			UserID:  "wx-broke",
			Channel: domain.ChannelWallet,
		}).
		Return(nil, domain.ErrInsufficientBalance).Times(1)
	s.mockPaymentService.EXPECT().
		Pay(gomock.Any(), service.PayOrderArgs{
			OrderID: orderID,
			UserID:  "wx-late",
			Channel: domain.ChannelWallet,
		}).
		Return(nil, domain.NewInvalidTransitionError(domain.OrderStatusPaid, domain.OrderStatusPaid)).Times(1)

	cases := []struct {
		name       string
		payload    []byte
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    []byte(`{"user_id": "wx-user-1", "channel": "WALLET"}`),
			wantStatus: http.StatusOK,
		}, {
			name:       "insufficient balance",
			payload:    []byte(`{"user_id": "wx-broke", "channel": "WALLET"}`),
			wantStatus: http.StatusPaymentRequired,
		}, {
			name:       "double pay",
			payload:    []byte(`{"user_id": "wx-late", "channel": "WALLET"}`),
			wantStatus: http.StatusConflict,
		}, {
			name:       "unknown channel",
			payload:    []byte(`{"user_id": "wx-user-1", "channel": "CASH"}`),
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + "/orders/" + orderID + "/pay",
				Body:   bytes.NewReader(t.payload),
			}, testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *OrdersHandlerTestSuite) TestPrepay() {
	orderID := "1724900000000123456"
	s.mockPaymentService.EXPECT().
		Prepay(gomock.Any(), orderID).
		Return(map[string]string{"prepay_id": "abc", "sign": "def"}, nil)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/orders/" + orderID + "/prepay",
	})
	s.Require().NoError(err)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusOK, res.StatusCode)
}

func (s *OrdersHandlerTestSuite) TestReview() {
	orderID := "1724900000000123456"

	s.mockOrderService.EXPECT().
		Review(gomock.Any(), service.ReviewOrderArgs{
			OrderID: orderID,
			UserID:  "wx-user-1",
			Rating:  5,
			Content: "nice latte",
		}).
		Return(&domain.OrderReview{OrderID: orderID, UserID: "wx-user-1", Rating: 5, Content: "nice latte"}, nil).
		Times(1)

	cases := []struct {
		name       string
		payload    []byte
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    []byte(`{"user_id": "wx-user-1", "rating": 5, "content": "nice latte"}`),
			wantStatus: http.StatusOK,
		}, {
			name:       "rating out of range",
			payload:    []byte(`{"user_id": "wx-user-1", "rating": 9}`),
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + "/orders/" + orderID + "/review",
				Body:   bytes.NewReader(t.payload),
			}, testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
