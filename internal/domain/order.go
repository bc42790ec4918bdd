package domain

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// transitions - таблица переходов state machine заказа. Любой переход вне
// таблицы отклоняется с InvalidTransitionError.
var transitions = map[OrderStatusType][]OrderStatusType{
	OrderStatusCreated: {OrderStatusPaid, OrderStatusWaitUse, OrderStatusDone, OrderStatusCancelled},
	OrderStatusPaid:    {OrderStatusMaking, OrderStatusRefunded},
	OrderStatusWaitUse: {OrderStatusDone, OrderStatusRefunded},
	OrderStatusMaking:  {OrderStatusDone},
	OrderStatusDone:    {OrderStatusReviewed},
}

func CanTransition(current, target OrderStatusType) bool {
	for _, allowed := range transitions[current] {
		if allowed == target {
			return true
		}
	}
	return false
}

// LoyaltyPoints возвращает число баллов лояльности за заказ: 1 балл за каждые
// 100 минорных единиц оплаченной суммы (целочисленное деление).
func LoyaltyPoints(payableCents int64) int64 {
	return payableCents / 100
}

// PayTargetStatus возвращает целевой статус заказа после успешной оплаты.
// COUPON ждет ручного погашения, BILL завершается сразу, минуя выдачу.
func PayTargetStatus(scene OrderScene) OrderStatusType {
	switch scene {
	case SceneCoupon:
		return OrderStatusWaitUse
	case SceneBill:
		return OrderStatusDone
	default:
		return OrderStatusPaid
	}
}

// SeqNoPrefix возвращает буквенный префикс суточного номера для сцены.
// Пустая строка означает что сцене номер не положен.
func SeqNoPrefix(scene OrderScene) string {
	switch scene {
	case SceneTable:
		return "A"
	case SceneDelivery:
		return "D"
	case ScenePickup:
		return "P"
	default:
		return ""
	}
}

// RandomSeqNo генерирует кандидата суточного номера: префикс + 4 случайные цифры.
func RandomSeqNo(prefix string) string {
	return fmt.Sprintf("%s%04d", prefix, rand.IntN(10000)) //nolint:gosec
}

// MintOrderID чеканит id заказа: 13 цифр миллисекундного таймштампа + 6
// случайных цифр. Коллизии считаются пренебрежимо маловероятными и не
// дедуплицируются.
func MintOrderID() string {
	return fmt.Sprintf("%d%06d", time.Now().UnixMilli(), 100000+rand.IntN(900000)) //nolint:gosec
}

// NewOrderArgs - аргументы фабрики заказа. Items должны быть уже обогащены
// авторитетными ценами (сервисный слой перечитывает их из каталога, поля
// клиента игнорируются).
type NewOrderArgs struct {
	TenantID          string
	StoreID           string
	UserID            string
	Scene             OrderScene
	TableCode         string
	Remark            string
	CouponApplied     map[string]any
	DeliveryInfo      map[string]any
	Items             []OrderItemSnapshot
	DirectAmountCents int64
}

// NewOrder собирает агрегат заказа в статусе CREATED: снимки позиций, сумма,
// чеканка id. Суточный номер (SeqNo) назначается отдельно, так как требует
// проверки уникальности в хранилище.
func NewOrder(args NewOrderArgs) *Order {
	var total int64
	items := args.Items

	if args.Scene == SceneDirectPay {
		// DIRECTPAY: сумма берется напрямую, позиции отсутствуют.
		total = args.DirectAmountCents
		items = nil
	} else {
		for _, it := range items {
			total += it.PriceCents * int64(it.Quantity)
		}
	}

	// Скидочный движок не реализован: к оплате ровно сумма, поле
	// coupon_applied хранится только для отображения.
	payable := total

	return &Order{
		ID:                MintOrderID(),
		TenantID:          args.TenantID,
		StoreID:           args.StoreID,
		UserID:            args.UserID,
		Scene:             args.Scene,
		TableCode:         args.TableCode,
		Status:            OrderStatusCreated,
		PriceTotalCents:   total,
		PricePayableCents: payable,
		CouponApplied:     args.CouponApplied,
		Remark:            args.Remark,
		DeliveryInfo:      args.DeliveryInfo,
		Items:             items,
		CreatedAt:         time.Now(),
	}
}
