package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/pkg/uow"
)

type MerchantUserRepository struct {
	conn uow.DBTX
}

func NewMerchantUserRepository(conn uow.DBTX) *MerchantUserRepository {
	return &MerchantUserRepository{conn: conn}
}

// FindByUsername ищет сотрудника мерчанта по логину. Логин уникален в рамках
// тенанта, поэтому фильтр по tenant_id обязателен.
func (m *MerchantUserRepository) FindByUsername(
	ctx context.Context,
	tenantID, username string,
) (*domain.MerchantUser, error) {
	row := m.conn.QueryRow(ctx, `
		SELECT id, tenant_id, username, password_hash, store_id, role, created_at, updated_at
		FROM merchant_users WHERE tenant_id = $1 AND username = $2`,
		tenantID, username,
	)
	var user domain.MerchantUser
	err := row.Scan(&user.ID, &user.TenantID, &user.Username, &user.PasswordHash,
		&user.StoreID, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "finding merchant user `%s`", username)
	}
	return &user, nil
}
