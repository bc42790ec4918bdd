package api

import (
	"bytes"
	"fmt"
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
	"github.com/fsdevblog/groph-orders/internal/service/tokens"
	"github.com/fsdevblog/groph-orders/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-orders/internal/transport/api/testutils"
)

type MerchantHandlerTestSuite struct {
	suite.Suite
	router                  *gin.Engine
	mockTenantService       *mocks.MockTenantServicer
	mockOrderService        *mocks.MockOrderServicer
	mockVerificationService *mocks.MockVerificationServicer
	mockMerchantUserService *mocks.MockMerchantUserServicer
	jwtSecret               []byte
	tenantID                string
}

func TestMerchantHandlerSuite(t *testing.T) {
	suite.Run(t, new(MerchantHandlerTestSuite))
}

func (s *MerchantHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockTenantService = mocks.NewMockTenantServicer(mockCtrl)
	s.mockOrderService = mocks.NewMockOrderServicer(mockCtrl)
	s.mockVerificationService = mocks.NewMockVerificationServicer(mockCtrl)
	s.mockMerchantUserService = mocks.NewMockMerchantUserServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")
	s.tenantID = "0123456789abcdef0123456789abcdef"

	router, err := New(RouterArgs{
		Logger:              logger.New(os.Stdout),
		TenantService:       s.mockTenantService,
		OrderService:        s.mockOrderService,
		VerificationService: s.mockVerificationService,
		MerchantUserService: s.mockMerchantUserService,
		JWTSecretKey:        s.jwtSecret,
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *MerchantHandlerTestSuite) staffToken(storeID string) string {
	token, err := tokens.GenerateMerchantJWT(tokens.MerchantClaims{
		UserID:   "staff-1",
		TenantID: s.tenantID,
		StoreID:  storeID,
		Role:     "cashier",
	}, time.Hour, s.jwtSecret)
	s.Require().NoError(err)
	return token
}

func (s *MerchantHandlerTestSuite) TestLogin() {
	s.mockTenantService.EXPECT().
		Resolve(gomock.Any(), "coffee-co").
		Return(s.tenantID, nil).AnyTimes()

	s.mockMerchantUserService.EXPECT().
		Login(gomock.Any(), service.LoginMerchantArgs{Username: "cashier1", Password: "secret123"}).
		Return(&domain.MerchantUser{
			ID:       "mu-1",
			TenantID: s.tenantID,
			StoreID:  "store-1",
			Username: "cashier1",
			Role:     "cashier",
		}, "signed-token", nil).Times(1)
	s.mockMerchantUserService.EXPECT().
		Login(gomock.Any(), service.LoginMerchantArgs{Username: "cashier1", Password: "wrongpass"}).
		Return(nil, "", domain.ErrPasswordMissMatch).Times(1)

	cases := []struct {
		name       string
		payload    []byte
		tenant     string
		wantStatus int
		wantToken  bool
	}{
		{
			name:       "all ok",
			payload:    []byte(`{"username": "cashier1", "password": "secret123"}`),
			tenant:     "coffee-co",
			wantStatus: http.StatusOK,
			wantToken:  true,
		}, {
			name:       "wrong password",
			payload:    []byte(`{"username": "cashier1", "password": "wrongpass"}`),
			tenant:     "coffee-co",
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "short password",
			payload:    []byte(`{"username": "cashier1", "password": "123"}`),
			tenant:     "coffee-co",
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + MerchantGroup + MerchantLoginRoute + "?tenant_id=" + t.tenant,
				Body:   bytes.NewReader(t.payload),
			}, testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
			if t.wantToken {
				s.Equal("Bearer signed-token", res.Header.Get("Authorization"))
			}
		})
	}
}

func (s *MerchantHandlerTestSuite) TestIndex() {
	token := s.staffToken("store-1")

	orders := []domain.Order{
		{
			ID:       "1724900000000123456",
			TenantID: s.tenantID,
			StoreID:  "store-1",
			Scene:    domain.ScenePickup,
			Status:   domain.OrderStatusPaid,
			SeqNo:    "P0042",
		},
	}
	s.mockOrderService.EXPECT().
		ListForStore(gomock.Any(), "store-1", domain.OrderStatusPaid).
		Return(orders, nil)

	cases := []struct {
		name       string
		url        string
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			url:        RouteGroup + MerchantGroup + MerchantOrdersRoute + "?status=PAID",
			jwtToken:   token,
			wantStatus: http.StatusOK,
		}, {
			name:       "not authorized",
			url:        RouteGroup + MerchantGroup + MerchantOrdersRoute,
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    t.url,
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", t.jwtToken)))
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

func (s *MerchantHandlerTestSuite) TestTransitions() {
	token := s.staffToken("store-1")
	orderID := "1724900000000123456"

	s.mockOrderService.EXPECT().
		Accept(gomock.Any(), orderID).
		Return(&domain.Order{ID: orderID, Status: domain.OrderStatusMaking}, nil)
	s.mockOrderService.EXPECT().
		Complete(gomock.Any(), orderID).
		Return(&domain.Order{ID: orderID, Status: domain.OrderStatusDone}, nil)
	s.mockOrderService.EXPECT().
		Refund(gomock.Any(), orderID).
		Return(nil, domain.NewInvalidTransitionError(domain.OrderStatusDone, domain.OrderStatusRefunded))

	cases := []struct {
		name       string
		route      string
		wantStatus int
	}{
		{name: "accept", route: "/orders/" + orderID + "/accept", wantStatus: http.StatusOK},
		{name: "complete", route: "/orders/" + orderID + "/complete", wantStatus: http.StatusOK},
		{name: "refund after done", route: "/orders/" + orderID + "/refund", wantStatus: http.StatusConflict},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + MerchantGroup + t.route,
			}, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", token)))
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *MerchantHandlerTestSuite) TestVerify() {
	token := s.staffToken("store-1")

	// Магазин не передан в теле - берется из токена сотрудника.
	s.mockVerificationService.EXPECT().
		Verify(gomock.Any(), service.VerifyArgs{Code: "A0042", StoreID: "store-1"}).
		Return(&domain.Order{
			ID:     "1724900000000123456",
			SeqNo:  "A0042",
			Status: domain.OrderStatusDone,
		}, nil).Times(1)
	s.mockVerificationService.EXPECT().
		Verify(gomock.Any(), service.VerifyArgs{Code: "A0042", StoreID: "store-2"}).
		Return(nil, domain.ErrStoreMismatch).Times(1)
	s.mockVerificationService.EXPECT().
		Verify(gomock.Any(), service.VerifyArgs{Code: "D0001", StoreID: "store-1"}).
		Return(nil, domain.ErrOrderAlreadyUsed).Times(1)

	cases := []struct {
		name       string
		payload    []byte
		wantStatus int
	}{
		{
			name:       "store from token",
			payload:    []byte(`{"code": "A0042"}`),
			wantStatus: http.StatusOK,
		}, {
			name:       "foreign store",
			payload:    []byte(`{"code": "A0042", "store_id": "store-2"}`),
			wantStatus: http.StatusConflict,
		}, {
			name:       "already used",
			payload:    []byte(`{"code": "D0001"}`),
			wantStatus: http.StatusConflict,
		}, {
			name:       "empty code",
			payload:    []byte(`{"code": ""}`),
			wantStatus: http.StatusUnprocessableEntity,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + MerchantGroup + MerchantVerifyRoute,
				Body:   bytes.NewReader(t.payload),
			},
				testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", token)),
				testutils.WithHeader("Content-Type", "application/json"),
			)
			s.Require().NoError(err)
			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *MerchantHandlerTestSuite) TestExpiredToken() {
	token, err := tokens.GenerateMerchantJWT(tokens.MerchantClaims{
		UserID:   "staff-1",
		TenantID: s.tenantID,
	}, -time.Minute, s.jwtSecret)
	s.Require().NoError(err)

	res, reqErr := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + MerchantGroup + MerchantOrdersRoute,
	}, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", token)))
	s.Require().NoError(reqErr)
	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusUnauthorized, res.StatusCode)
}
