package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/groph-orders/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second
)

const (
	RouteGroup         = "/api"
	OrdersRoute        = "/orders"
	OrderRoute         = "/orders/:id"
	OrderPayRoute      = "/orders/:id/pay"
	OrderPrepayRoute   = "/orders/:id/prepay"
	OrderCancelRoute   = "/orders/:id/cancel"
	OrderReviewRoute   = "/orders/:id/review"
	OrderPaymentsRoute = "/orders/:id/payments"
	WalletBalanceRoute = "/wallet/balance"
	RechargeRoute      = "/wallet/recharge"
	RechargeOrders     = "/wallet/recharge/orders"
	RechargeConfirm    = "/wallet/recharge/orders/:id/confirm"
	RechargePrepay     = "/wallet/recharge/orders/:id/prepay"
	MemberRoute          = "/member"
	MemberPhoneRoute     = "/member/phone"
	MemberProfileRoute   = "/member/profile"
	MemberAddressesRoute = "/member/addresses"
	MemberAddressRoute   = "/member/addresses/:id"

	MerchantGroup         = "/merchant"
	MerchantLoginRoute    = "/auth/login"
	MerchantOrdersRoute   = "/orders"
	MerchantAcceptRoute   = "/orders/:id/accept"
	MerchantCompleteRoute = "/orders/:id/complete"
	MerchantRefundRoute   = "/orders/:id/refund"
	MerchantVerifyRoute   = "/verify"
)

type RouterArgs struct {
	Logger              *logrus.Logger
	TenantService       TenantServicer
	OrderService        OrderServicer
	PaymentService      PaymentServicer
	WalletService       WalletServicer
	VerificationService VerificationServicer
	MemberService       MemberServicer
	MerchantUserService MerchantUserServicer
	JWTSecretKey        []byte
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	ordersHandler := NewOrdersHandler(args.OrderService, args.PaymentService)
	walletHandler := NewWalletHandler(args.WalletService)
	memberHandler := NewMemberHandler(args.MemberService)
	authHandler := NewAuthHandler(args.MerchantUserService)
	merchantHandler := NewMerchantHandler(args.OrderService, args.VerificationService)

	api := r.Group(RouteGroup)
	api.Use(middlewares.Tenant(args.TenantService))

	// Консьюмерские роуты: тенант приходит из запроса либо якорится магазином.
	api.POST(OrdersRoute, ordersHandler.Create)
	api.GET(OrdersRoute, ordersHandler.Index)
	api.GET(OrderRoute, ordersHandler.Show)
	api.POST(OrderPayRoute, ordersHandler.Pay)
	api.POST(OrderPrepayRoute, ordersHandler.Prepay)
	api.POST(OrderCancelRoute, ordersHandler.Cancel)
	api.POST(OrderReviewRoute, ordersHandler.Review)
	api.GET(OrderReviewRoute, ordersHandler.ShowReview)
	api.GET(OrderPaymentsRoute, ordersHandler.Payments)

	api.GET(WalletBalanceRoute, walletHandler.Balance)
	api.POST(RechargeRoute, walletHandler.Recharge)
	api.POST(RechargeOrders, walletHandler.CreateRechargeOrder)
	api.POST(RechargeConfirm, walletHandler.ConfirmRecharge)
	api.POST(RechargePrepay, walletHandler.PrepayRecharge)
	api.GET(RechargeOrders, walletHandler.RechargeOrders)

	api.GET(MemberRoute, memberHandler.Profile)
	api.POST(MemberPhoneRoute, memberHandler.BindPhone)
	api.POST(MemberProfileRoute, memberHandler.UpdateProfile)
	api.GET(MemberAddressesRoute, memberHandler.Addresses)
	api.POST(MemberAddressesRoute, memberHandler.CreateAddress)
	api.PUT(MemberAddressRoute, memberHandler.UpdateAddress)
	api.DELETE(MemberAddressRoute, memberHandler.DeleteAddress)

	merchant := api.Group(MerchantGroup)
	merchant.POST(MerchantLoginRoute, authHandler.Login)

	merchant.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного сотрудника мерчанта.
	merchant.GET(MerchantOrdersRoute, merchantHandler.Index)
	merchant.POST(MerchantAcceptRoute, merchantHandler.Accept)
	merchant.POST(MerchantCompleteRoute, merchantHandler.Complete)
	merchant.POST(MerchantRefundRoute, merchantHandler.Refund)
	merchant.POST(MerchantVerifyRoute, merchantHandler.Verify)

	return r, nil
}
