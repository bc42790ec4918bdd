package repoargs

import "github.com/fsdevblog/groph-orders/internal/domain"

type RechargeOrderCreate struct {
	ID          string
	UserID      string
	AmountCents int64
	BonusCents  int64
	Channel     domain.PaymentChannel
}

type MemberUpsert struct {
	UserID   string
	Phone    string
	Nickname string
}

type ReviewUpsert struct {
	OrderID string
	UserID  string
	Rating  int32
	Content string
}
