package repoargs

import (
	"time"

	"github.com/fsdevblog/groph-orders/internal/domain"
)

// OrderStatusUpdate - аргументы смены статуса заказа. CompletedAt ставится
// только при переходе в DONE.
type OrderStatusUpdate struct {
	OrderID     string
	Target      domain.OrderStatusType
	CompletedAt *time.Time
}

// OrderListFilter - фильтр выборки заказов. Пустые поля не фильтруют.
type OrderListFilter struct {
	UserID  string
	StoreID string
	Status  domain.OrderStatusType
}
