package pgrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/pkg/uow"
)

type WalletRepository struct {
	conn uow.DBTX
}

func NewWalletRepository(conn uow.DBTX) *WalletRepository {
	return &WalletRepository{conn: conn}
}

func (w *WalletRepository) Get(ctx context.Context, tenantID, userID string) (*domain.Wallet, error) {
	row := w.conn.QueryRow(ctx, `
		SELECT id, tenant_id, user_id, balance_cents, created_at, updated_at
		FROM wallets WHERE tenant_id = $1 AND user_id = $2`, tenantID, userID)

	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.TenantID, &wallet.UserID,
		&wallet.BalanceCents, &wallet.CreatedAt, &wallet.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "getting wallet of user `%s`", userID)
	}
	return &wallet, nil
}

// Credit зачисляет amount одной атомарной командой: upsert с инкрементом.
// Кошелек создается лениво при первом обращении. Возвращает новый баланс.
func (w *WalletRepository) Credit(ctx context.Context, tenantID, userID string, amountCents int64) (int64, error) {
	var balance int64
	err := w.conn.QueryRow(ctx, `
		INSERT INTO wallets (tenant_id, user_id, balance_cents)
		VALUES ($1, $2, $3)
		ON CONFLICT (tenant_id, user_id)
		DO UPDATE SET balance_cents = wallets.balance_cents + EXCLUDED.balance_cents, updated_at = now()
		RETURNING balance_cents`,
		tenantID, userID, amountCents,
	).Scan(&balance)
	if err != nil {
		return 0, convertErr(err, "crediting wallet of user `%s`", userID)
	}
	return balance, nil
}

// Debit списывает amount условным UPDATE'ом: условие balance >= amount входит
// в сам запрос, поэтому баланс не может уйти в минус даже при конкурентных
// списаниях. Недостаток средств возвращается как ErrInsufficientBalance без
// какой-либо мутации.
func (w *WalletRepository) Debit(ctx context.Context, tenantID, userID string, amountCents int64) (int64, error) {
	var balance int64
	err := w.conn.QueryRow(ctx, `
		UPDATE wallets SET balance_cents = balance_cents - $3, updated_at = now()
		WHERE tenant_id = $1 AND user_id = $2 AND balance_cents >= $3
		RETURNING balance_cents`,
		tenantID, userID, amountCents,
	).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrInsufficientBalance
		}
		return 0, convertErr(err, "debiting wallet of user `%s`", userID)
	}
	return balance, nil
}
