package pgrepo

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/repository/repoargs"
	"github.com/fsdevblog/groph-orders/pkg/uow"
)

const rechargeColumns = `id, tenant_id, user_id, amount_cents, bonus_cents, channel, status,
	created_at, paid_at, updated_at`

type RechargeOrderRepository struct {
	conn uow.DBTX
}

func NewRechargeOrderRepository(conn uow.DBTX) *RechargeOrderRepository {
	return &RechargeOrderRepository{conn: conn}
}

func (r *RechargeOrderRepository) Create(
	ctx context.Context,
	tenantID string,
	args repoargs.RechargeOrderCreate,
) (*domain.RechargeOrder, error) {
	row := r.conn.QueryRow(ctx, `
		INSERT INTO recharge_orders (id, tenant_id, user_id, amount_cents, bonus_cents, channel, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+rechargeColumns,
		args.ID, tenantID, args.UserID, args.AmountCents, args.BonusCents,
		args.Channel, domain.RechargeStatusCreated,
	)
	return scanRecharge(row, "creating recharge order `%s`", args.ID)
}

func (r *RechargeOrderRepository) Get(ctx context.Context, tenantID, rechargeID string) (*domain.RechargeOrder, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+rechargeColumns+` FROM recharge_orders WHERE tenant_id = $1 AND id = $2`,
		tenantID, rechargeID,
	)
	return scanRecharge(row, "getting recharge order `%s`", rechargeID)
}

// GetForUpdate читает заявку на пополнение с блокировкой строки. Подтверждение
// идемпотентно именно благодаря этой блокировке: второй конкурентный confirm
// дождется коммита первого и увидит статус PAID.
func (r *RechargeOrderRepository) GetForUpdate(
	ctx context.Context,
	tenantID, rechargeID string,
) (*domain.RechargeOrder, error) {
	row := r.conn.QueryRow(ctx,
		`SELECT `+rechargeColumns+` FROM recharge_orders WHERE tenant_id = $1 AND id = $2 FOR UPDATE`,
		tenantID, rechargeID,
	)
	return scanRecharge(row, "locking recharge order `%s`", rechargeID)
}

func (r *RechargeOrderRepository) MarkPaid(ctx context.Context, tenantID, rechargeID string, paidAt time.Time) error {
	tag, err := r.conn.Exec(ctx, `
		UPDATE recharge_orders SET status = $3, paid_at = $4, updated_at = now()
		WHERE tenant_id = $1 AND id = $2`,
		tenantID, rechargeID, domain.RechargeStatusPaid, paidAt,
	)
	if err != nil {
		return convertErr(err, "marking recharge order `%s` paid", rechargeID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "marking recharge order `%s` paid", rechargeID)
	}
	return nil
}

func (r *RechargeOrderRepository) ListByUser(
	ctx context.Context,
	tenantID, userID string,
) ([]domain.RechargeOrder, error) {
	rows, err := r.conn.Query(ctx,
		`SELECT `+rechargeColumns+` FROM recharge_orders
		WHERE tenant_id = $1 AND user_id = $2 ORDER BY created_at DESC`,
		tenantID, userID,
	)
	if err != nil {
		return nil, convertErr(err, "listing recharge orders of user `%s`", userID)
	}
	defer rows.Close()

	var list []domain.RechargeOrder
	for rows.Next() {
		recharge, scanErr := scanRecharge(rows, "scanning recharge order row")
		if scanErr != nil {
			return nil, scanErr
		}
		list = append(list, *recharge)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing recharge orders of user `%s`", userID)
	}
	return list, nil
}

func scanRecharge(row pgx.Row, format string, formatArgs ...any) (*domain.RechargeOrder, error) {
	var recharge domain.RechargeOrder
	var paidAt *time.Time
	err := row.Scan(&recharge.ID, &recharge.TenantID, &recharge.UserID, &recharge.AmountCents,
		&recharge.BonusCents, &recharge.Channel, &recharge.Status,
		&recharge.CreatedAt, &paidAt, &recharge.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, format, formatArgs...)
	}
	if paidAt != nil {
		recharge.PaidAt = *paidAt
	}
	return &recharge, nil
}
