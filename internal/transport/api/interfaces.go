package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/service"
)

// TenantServicer интерфейс исключительно для моков.
type TenantServicer interface {
	Resolve(ctx context.Context, idOrSlug string) (string, error)
}

type OrderServicer interface {
	Create(ctx context.Context, args service.CreateOrderArgs) (*domain.Order, error)
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	GetByUser(ctx context.Context, userID string, status domain.OrderStatusType) ([]domain.Order, error)
	ListForStore(ctx context.Context, storeID string, status domain.OrderStatusType) ([]domain.Order, error)
	Accept(ctx context.Context, orderID string) (*domain.Order, error)
	Complete(ctx context.Context, orderID string) (*domain.Order, error)
	Cancel(ctx context.Context, orderID string) (*domain.Order, error)
	Refund(ctx context.Context, orderID string) (*domain.Order, error)
	Review(ctx context.Context, args service.ReviewOrderArgs) (*domain.OrderReview, error)
	GetReview(ctx context.Context, orderID string) (*domain.OrderReview, error)
}

type PaymentServicer interface {
	Pay(ctx context.Context, args service.PayOrderArgs) (*domain.Order, error)
	Prepay(ctx context.Context, orderID string) (map[string]string, error)
	History(ctx context.Context, orderID string) ([]domain.Payment, error)
}

type WalletServicer interface {
	Balance(ctx context.Context, userID string) (int64, error)
	Recharge(ctx context.Context, args service.CreateRechargeArgs) (*domain.RechargeOrder, error)
	CreateRechargeOrder(ctx context.Context, args service.CreateRechargeArgs) (*domain.RechargeOrder, error)
	ConfirmRecharge(ctx context.Context, rechargeID string) (*domain.RechargeOrder, error)
	PrepayRecharge(ctx context.Context, rechargeID string) (map[string]string, error)
	ListRechargeOrders(ctx context.Context, userID string) ([]domain.RechargeOrder, error)
}

type VerificationServicer interface {
	Verify(ctx context.Context, args service.VerifyArgs) (*domain.Order, error)
}

type MemberServicer interface {
	Profile(ctx context.Context, userID string) (*domain.Member, error)
	BindPhone(ctx context.Context, userID, phone string) (*domain.Member, error)
	UpdateProfile(ctx context.Context, userID, nickname string) (*domain.Member, error)
	ListAddresses(ctx context.Context, userID string) ([]domain.MemberAddress, error)
	CreateAddress(ctx context.Context, args service.CreateAddressArgs) (*domain.MemberAddress, error)
	UpdateAddress(ctx context.Context, args service.UpdateAddressArgs) (*domain.MemberAddress, error)
	DeleteAddress(ctx context.Context, userID, addressID string) error
}

type MerchantUserServicer interface {
	Login(ctx context.Context, args service.LoginMerchantArgs) (*domain.MerchantUser, string, error)
}
