package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/pkg/uow"
)

type PaymentRepository struct {
	conn uow.DBTX
}

func NewPaymentRepository(conn uow.DBTX) *PaymentRepository {
	return &PaymentRepository{conn: conn}
}

// Create записывает факт оплаты. Вызывается в той же транзакции, что и смена
// статуса заказа.
func (p *PaymentRepository) Create(ctx context.Context, tenantID string, payment *domain.Payment) error {
	_, err := p.conn.Exec(ctx, `
		INSERT INTO payments (id, tenant_id, order_id, user_id, channel, amount_cents, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		payment.ID, tenantID, payment.OrderID, payment.UserID, payment.Channel,
		payment.AmountCents, payment.Status, payment.CreatedAt,
	)
	if err != nil {
		return convertErr(err, "creating payment for order `%s`", payment.OrderID)
	}
	return nil
}

func (p *PaymentRepository) ListByOrder(ctx context.Context, tenantID, orderID string) ([]domain.Payment, error) {
	rows, err := p.conn.Query(ctx, `
		SELECT id, tenant_id, order_id, user_id, channel, amount_cents, status, created_at
		FROM payments WHERE tenant_id = $1 AND order_id = $2 ORDER BY created_at`,
		tenantID, orderID,
	)
	if err != nil {
		return nil, convertErr(err, "listing payments of order `%s`", orderID)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var pay domain.Payment
		scanErr := rows.Scan(&pay.ID, &pay.TenantID, &pay.OrderID, &pay.UserID,
			&pay.Channel, &pay.AmountCents, &pay.Status, &pay.CreatedAt)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning payment row")
		}
		payments = append(payments, pay)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing payments of order `%s`", orderID)
	}
	return payments, nil
}
