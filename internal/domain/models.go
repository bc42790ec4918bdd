package domain

import "time"

// Tenant - независимый мерчант, единица изоляции данных. ID неизменяемый,
// все остальные сущности шардируются по нему.
type Tenant struct {
	ID        string
	Slug      string
	Name      string
	Plan      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Store struct {
	ID        string
	TenantID  string
	Slug      string
	Name      string
	Status    StoreStatusType
	Features  map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CatalogItem struct {
	ID             string
	TenantID       string
	StoreID        string
	Name           string
	BasePriceCents int64
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Coupon хранит правило в свободной форме; авторитетные title/price_cents
// извлекаются из правила при создании заказа сцены COUPON.
type Coupon struct {
	ID         string
	TenantID   string
	StoreID    string
	Title      string
	PriceCents int64
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderItemSnapshot - позиция заказа, зафиксированная в момент создания.
// После создания заказа никогда не перечитывается из живого каталога.
type OrderItemSnapshot struct {
	ItemID     string
	Name       string
	PriceCents int64
	Quantity   int32
	Specs      []map[string]any
	Modifiers  []map[string]any
}

// Order - агрегат заказа. ID - глобально уникальная числовая строка,
// чеканится до первой записи в БД.
type Order struct {
	ID                string
	TenantID          string
	StoreID           string
	UserID            string
	Scene             OrderScene
	TableCode         string
	SeqNo             string
	Status            OrderStatusType
	PriceTotalCents   int64
	PricePayableCents int64
	CouponApplied     map[string]any
	Remark            string
	DeliveryInfo      map[string]any
	Items             []OrderItemSnapshot
	CreatedAt         time.Time
	CompletedAt       time.Time
	UpdatedAt         time.Time
}

// Payment - одна запись на завершенную попытку оплаты, неизменяемая.
type Payment struct {
	ID          string
	TenantID    string
	OrderID     string
	UserID      string
	AmountCents int64
	Status      PaymentStatusType
	Channel     PaymentChannel
	CreatedAt   time.Time
}

type Wallet struct {
	ID           int64
	TenantID     string
	UserID       string
	BalanceCents int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RechargeOrder - двухфазное пополнение: создается в CREATED, ровно один раз
// переводится в PAID, и только в этот момент кошелек кредитуется на
// amount+bonus.
type RechargeOrder struct {
	ID          string
	TenantID    string
	UserID      string
	AmountCents int64
	BonusCents  int64
	Status      RechargeStatusType
	Channel     PaymentChannel
	CreatedAt   time.Time
	PaidAt      time.Time
	UpdatedAt   time.Time
}

type Member struct {
	ID        int64
	TenantID  string
	UserID    string
	Phone     string
	Nickname  string
	Points    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MaxMemberAddresses - предел адресной книги одного пользователя.
const MaxMemberAddresses = 20

// MemberAddress - адрес доставки из адресной книги участника. У пользователя
// не больше одного адреса по умолчанию.
type MemberAddress struct {
	ID        string
	TenantID  string
	UserID    string
	Name      string
	Phone     string
	Address   string
	Detail    string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderReview struct {
	ID        int64
	TenantID  string
	OrderID   string
	UserID    string
	Rating    int32
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type MerchantUser struct {
	ID           string
	TenantID     string
	StoreID      string
	Username     string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
