package pgrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/repository/repoargs"
	"github.com/fsdevblog/groph-orders/pkg/uow"
)

const orderColumns = `id, tenant_id, store_id, user_id, scene, table_code, seq_no, status,
	price_total_cents, price_payable_cents, coupon_applied, remark, delivery_info,
	created_at, completed_at, updated_at`

type OrderRepository struct {
	conn uow.DBTX
}

func NewOrderRepository(conn uow.DBTX) *OrderRepository {
	return &OrderRepository{conn: conn}
}

// Create сохраняет заказ вместе со снимками позиций. Вызывается внутри
// uow-транзакции, чтобы заказ и позиции записались атомарно.
func (o *OrderRepository) Create(ctx context.Context, tenantID string, order *domain.Order) error {
	coupon, couponErr := marshalMap(order.CouponApplied)
	if couponErr != nil {
		return convertErr(couponErr, "marshaling coupon snapshot")
	}
	delivery, deliveryErr := marshalMap(order.DeliveryInfo)
	if deliveryErr != nil {
		return convertErr(deliveryErr, "marshaling delivery snapshot")
	}

	_, execErr := o.conn.Exec(ctx, `
		INSERT INTO orders (id, tenant_id, store_id, user_id, scene, table_code, seq_no, status,
			price_total_cents, price_payable_cents, coupon_applied, remark, delivery_info, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		order.ID, tenantID, order.StoreID, order.UserID, order.Scene, order.TableCode,
		order.SeqNo, order.Status, order.PriceTotalCents, order.PricePayableCents,
		coupon, order.Remark, delivery, order.CreatedAt,
	)
	if execErr != nil {
		return convertErr(execErr, "creating order `%s`", order.ID)
	}

	for _, it := range order.Items {
		specs, specsErr := marshalList(it.Specs)
		if specsErr != nil {
			return convertErr(specsErr, "marshaling item specs")
		}
		modifiers, modErr := marshalList(it.Modifiers)
		if modErr != nil {
			return convertErr(modErr, "marshaling item modifiers")
		}
		_, itemErr := o.conn.Exec(ctx, `
			INSERT INTO order_items (order_id, tenant_id, item_id, name, price_cents, quantity, specs, modifiers)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			order.ID, tenantID, it.ItemID, it.Name, it.PriceCents, it.Quantity, specs, modifiers,
		)
		if itemErr != nil {
			return convertErr(itemErr, "creating order item `%s`", it.ItemID)
		}
	}
	return nil
}

func (o *OrderRepository) Get(ctx context.Context, tenantID, orderID string) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE tenant_id = $1 AND id = $2`,
		tenantID, orderID,
	)
	return o.scanOrderWithItems(ctx, tenantID, row, "getting order `%s`", orderID)
}

// GetForUpdate читает заказ с блокировкой строки. Используется в мутирующих
// потоках (оплата, переходы), чтобы два конкурентных запроса не увидели один
// и тот же исходный статус.
func (o *OrderRepository) GetForUpdate(ctx context.Context, tenantID, orderID string) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE tenant_id = $1 AND id = $2 FOR UPDATE`,
		tenantID, orderID,
	)
	return o.scanOrderWithItems(ctx, tenantID, row, "locking order `%s`", orderID)
}

func (o *OrderRepository) UpdateStatus(ctx context.Context, tenantID string, upd repoargs.OrderStatusUpdate) error {
	tag, err := o.conn.Exec(ctx, `
		UPDATE orders SET status = $3, completed_at = COALESCE($4, completed_at), updated_at = now()
		WHERE tenant_id = $1 AND id = $2`,
		tenantID, upd.OrderID, upd.Target, upd.CompletedAt,
	)
	if err != nil {
		return convertErr(err, "updating status of order `%s`", upd.OrderID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating status of order `%s`", upd.OrderID)
	}
	return nil
}

// SeqNoExistsToday проверяет, занят ли суточный номер в рамках магазина и
// текущего календарного дня.
func (o *OrderRepository) SeqNoExistsToday(ctx context.Context, tenantID, storeID, seqNo string) (bool, error) {
	var exists bool
	err := o.conn.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM orders
			WHERE tenant_id = $1 AND store_id = $2 AND seq_no = $3 AND created_at >= CURRENT_DATE
		)`,
		tenantID, storeID, seqNo,
	).Scan(&exists)
	if err != nil {
		return false, convertErr(err, "checking seq_no `%s`", seqNo)
	}
	return exists, nil
}

// FindBySeqNoTodayForUpdate резолвит сегодняшний суточный номер магазина в
// заказ, с блокировкой строки под последующее погашение.
func (o *OrderRepository) FindBySeqNoTodayForUpdate(
	ctx context.Context,
	tenantID, storeID, seqNo string,
) (*domain.Order, error) {
	row := o.conn.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders
		WHERE tenant_id = $1 AND store_id = $2 AND seq_no = $3 AND created_at >= CURRENT_DATE
		ORDER BY created_at DESC LIMIT 1 FOR UPDATE`,
		tenantID, storeID, seqNo,
	)
	return o.scanOrderWithItems(ctx, tenantID, row, "finding order by seq_no `%s`", seqNo)
}

// List возвращает заказы тенанта, отсортированные по дате создания по убыванию.
func (o *OrderRepository) List(
	ctx context.Context,
	tenantID string,
	filter repoargs.OrderListFilter,
) ([]domain.Order, error) {
	rows, err := o.conn.Query(ctx,
		`SELECT `+orderColumns+` FROM orders
		WHERE tenant_id = $1
			AND ($2 = '' OR user_id = $2)
			AND ($3 = '' OR store_id = $3)
			AND ($4 = '' OR status = $4)
		ORDER BY created_at DESC`,
		tenantID, filter.UserID, filter.StoreID, string(filter.Status),
	)
	if err != nil {
		return nil, convertErr(err, "listing orders")
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, scanErr := scanOrder(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning order row")
		}
		orders = append(orders, *order)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing orders")
	}

	for i := range orders {
		items, itemsErr := o.loadItems(ctx, tenantID, orders[i].ID)
		if itemsErr != nil {
			return nil, itemsErr
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (o *OrderRepository) scanOrderWithItems(
	ctx context.Context,
	tenantID string,
	row pgx.Row,
	format string,
	formatArgs ...any,
) (*domain.Order, error) {
	order, err := scanOrder(row)
	if err != nil {
		return nil, convertErr(err, format, formatArgs...)
	}
	items, itemsErr := o.loadItems(ctx, tenantID, order.ID)
	if itemsErr != nil {
		return nil, itemsErr
	}
	order.Items = items
	return order, nil
}

func (o *OrderRepository) loadItems(ctx context.Context, tenantID, orderID string) ([]domain.OrderItemSnapshot, error) {
	rows, err := o.conn.Query(ctx, `
		SELECT item_id, name, price_cents, quantity, specs, modifiers
		FROM order_items WHERE tenant_id = $1 AND order_id = $2 ORDER BY id`,
		tenantID, orderID,
	)
	if err != nil {
		return nil, convertErr(err, "loading items of order `%s`", orderID)
	}
	defer rows.Close()

	var items []domain.OrderItemSnapshot
	for rows.Next() {
		var it domain.OrderItemSnapshot
		var specs, modifiers []byte
		if scanErr := rows.Scan(&it.ItemID, &it.Name, &it.PriceCents, &it.Quantity, &specs, &modifiers); scanErr != nil {
			return nil, convertErr(scanErr, "scanning item of order `%s`", orderID)
		}
		var convErr error
		if it.Specs, convErr = unmarshalList(specs); convErr != nil {
			return nil, convertErr(convErr, "unmarshaling item specs")
		}
		if it.Modifiers, convErr = unmarshalList(modifiers); convErr != nil {
			return nil, convertErr(convErr, "unmarshaling item modifiers")
		}
		items = append(items, it)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "loading items of order `%s`", orderID)
	}
	return items, nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	var coupon, delivery []byte
	var completedAt *time.Time

	err := row.Scan(
		&order.ID, &order.TenantID, &order.StoreID, &order.UserID, &order.Scene,
		&order.TableCode, &order.SeqNo, &order.Status, &order.PriceTotalCents,
		&order.PricePayableCents, &coupon, &order.Remark, &delivery,
		&order.CreatedAt, &completedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if completedAt != nil {
		order.CompletedAt = *completedAt
	}
	if order.CouponApplied, err = unmarshalMap(coupon); err != nil {
		return nil, err
	}
	if order.DeliveryInfo, err = unmarshalMap(delivery); err != nil {
		return nil, err
	}
	return &order, nil
}
