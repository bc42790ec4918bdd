package service

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/repository/repoargs"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type PasswordHasher interface {
	HashPassword(password string) (string, error)
	ComparePassword(password string, hashedPassword string) bool
}

// PaymentGateway - внешний платежный провайдер. Initiate возвращает параметры
// для платежного виджета клиента (prepay).
type PaymentGateway interface {
	Initiate(ctx context.Context, orderID string, amountCents int64) (map[string]string, error)
}

type TenantRepository interface {
	GetByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error)
}

type StoreRepository interface {
	FindAnchor(ctx context.Context, storeID string) (*domain.Store, error)
	Get(ctx context.Context, tenantID, storeID string) (*domain.Store, error)
	ListByTenant(ctx context.Context, tenantID string) ([]domain.Store, error)
}

type CatalogRepository interface {
	GetItem(ctx context.Context, tenantID, itemID string) (*domain.CatalogItem, error)
	GetCoupon(ctx context.Context, tenantID, couponID string) (*domain.Coupon, error)
}

type OrderRepository interface {
	Create(ctx context.Context, tenantID string, order *domain.Order) error
	Get(ctx context.Context, tenantID, orderID string) (*domain.Order, error)
	GetForUpdate(ctx context.Context, tenantID, orderID string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, tenantID string, upd repoargs.OrderStatusUpdate) error
	SeqNoExistsToday(ctx context.Context, tenantID, storeID, seqNo string) (bool, error)
	FindBySeqNoTodayForUpdate(ctx context.Context, tenantID, storeID, seqNo string) (*domain.Order, error)
	List(ctx context.Context, tenantID string, filter repoargs.OrderListFilter) ([]domain.Order, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, tenantID string, payment *domain.Payment) error
	ListByOrder(ctx context.Context, tenantID, orderID string) ([]domain.Payment, error)
}

type WalletRepository interface {
	Get(ctx context.Context, tenantID, userID string) (*domain.Wallet, error)
	Credit(ctx context.Context, tenantID, userID string, amountCents int64) (int64, error)
	Debit(ctx context.Context, tenantID, userID string, amountCents int64) (int64, error)
}

type RechargeOrderRepository interface {
	Create(ctx context.Context, tenantID string, args repoargs.RechargeOrderCreate) (*domain.RechargeOrder, error)
	Get(ctx context.Context, tenantID, rechargeID string) (*domain.RechargeOrder, error)
	GetForUpdate(ctx context.Context, tenantID, rechargeID string) (*domain.RechargeOrder, error)
	MarkPaid(ctx context.Context, tenantID, rechargeID string, paidAt time.Time) error
	ListByUser(ctx context.Context, tenantID, userID string) ([]domain.RechargeOrder, error)
}

type MemberRepository interface {
	Get(ctx context.Context, tenantID, userID string) (*domain.Member, error)
	Upsert(ctx context.Context, tenantID string, args repoargs.MemberUpsert) (*domain.Member, error)
	AddPoints(ctx context.Context, tenantID, userID string, points int64) (int64, error)
}

type MemberAddressRepository interface {
	ListByUser(ctx context.Context, tenantID, userID string) ([]domain.MemberAddress, error)
	CountByUser(ctx context.Context, tenantID, userID string) (int64, error)
	Get(ctx context.Context, tenantID, userID, addressID string) (*domain.MemberAddress, error)
	Create(ctx context.Context, tenantID string, addr *domain.MemberAddress) error
	Update(ctx context.Context, tenantID string, addr *domain.MemberAddress) error
	Delete(ctx context.Context, tenantID, userID, addressID string) error
	ClearDefault(ctx context.Context, tenantID, userID, exceptID string) error
}

type OrderReviewRepository interface {
	Upsert(ctx context.Context, tenantID string, args repoargs.ReviewUpsert) (*domain.OrderReview, error)
	GetByOrder(ctx context.Context, tenantID, orderID string) (*domain.OrderReview, error)
}

type MerchantUserRepository interface {
	FindByUsername(ctx context.Context, tenantID, username string) (*domain.MerchantUser, error)
}
