package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/pkg/uow"
)

const memberAddressColumns = `id, tenant_id, user_id, name, phone, address, detail, is_default,
	created_at, updated_at`

type MemberAddressRepository struct {
	conn uow.DBTX
}

func NewMemberAddressRepository(conn uow.DBTX) *MemberAddressRepository {
	return &MemberAddressRepository{conn: conn}
}

func (m *MemberAddressRepository) ListByUser(
	ctx context.Context,
	tenantID, userID string,
) ([]domain.MemberAddress, error) {
	rows, err := m.conn.Query(ctx,
		`SELECT `+memberAddressColumns+` FROM member_addresses
		WHERE tenant_id = $1 AND user_id = $2
		ORDER BY created_at DESC`,
		tenantID, userID,
	)
	if err != nil {
		return nil, convertErr(err, "listing addresses of user `%s`", userID)
	}
	defer rows.Close()

	var addresses []domain.MemberAddress
	for rows.Next() {
		addr, scanErr := scanAddress(rows, "scanning address row")
		if scanErr != nil {
			return nil, scanErr
		}
		addresses = append(addresses, *addr)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing addresses of user `%s`", userID)
	}
	return addresses, nil
}

func (m *MemberAddressRepository) CountByUser(ctx context.Context, tenantID, userID string) (int64, error) {
	var count int64
	err := m.conn.QueryRow(ctx,
		`SELECT count(*) FROM member_addresses WHERE tenant_id = $1 AND user_id = $2`,
		tenantID, userID,
	).Scan(&count)
	if err != nil {
		return 0, convertErr(err, "counting addresses of user `%s`", userID)
	}
	return count, nil
}

// Get читает адрес в границах владельца: чужой адрес неотличим от
// отсутствующего.
func (m *MemberAddressRepository) Get(
	ctx context.Context,
	tenantID, userID, addressID string,
) (*domain.MemberAddress, error) {
	row := m.conn.QueryRow(ctx,
		`SELECT `+memberAddressColumns+` FROM member_addresses
		WHERE tenant_id = $1 AND user_id = $2 AND id = $3`,
		tenantID, userID, addressID,
	)
	return scanAddress(row, "getting address `%s`", addressID)
}

func (m *MemberAddressRepository) Create(ctx context.Context, tenantID string, addr *domain.MemberAddress) error {
	_, err := m.conn.Exec(ctx, `
		INSERT INTO member_addresses (id, tenant_id, user_id, name, phone, address, detail, is_default)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		addr.ID, tenantID, addr.UserID, addr.Name, addr.Phone, addr.Address, addr.Detail, addr.IsDefault,
	)
	if err != nil {
		return convertErr(err, "creating address `%s`", addr.ID)
	}
	return nil
}

func (m *MemberAddressRepository) Update(ctx context.Context, tenantID string, addr *domain.MemberAddress) error {
	tag, err := m.conn.Exec(ctx, `
		UPDATE member_addresses
		SET name = $4, phone = $5, address = $6, detail = $7, is_default = $8, updated_at = now()
		WHERE tenant_id = $1 AND user_id = $2 AND id = $3`,
		tenantID, addr.UserID, addr.ID, addr.Name, addr.Phone, addr.Address, addr.Detail, addr.IsDefault,
	)
	if err != nil {
		return convertErr(err, "updating address `%s`", addr.ID)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating address `%s`", addr.ID)
	}
	return nil
}

// Delete идемпотентен: удаление отсутствующего адреса не считается ошибкой.
func (m *MemberAddressRepository) Delete(ctx context.Context, tenantID, userID, addressID string) error {
	_, err := m.conn.Exec(ctx,
		`DELETE FROM member_addresses WHERE tenant_id = $1 AND user_id = $2 AND id = $3`,
		tenantID, userID, addressID,
	)
	if err != nil {
		return convertErr(err, "deleting address `%s`", addressID)
	}
	return nil
}

// ClearDefault снимает флаг по умолчанию со всех адресов пользователя кроме
// exceptID. Пустой exceptID снимает флаг со всех.
func (m *MemberAddressRepository) ClearDefault(ctx context.Context, tenantID, userID, exceptID string) error {
	_, err := m.conn.Exec(ctx, `
		UPDATE member_addresses SET is_default = FALSE, updated_at = now()
		WHERE tenant_id = $1 AND user_id = $2 AND is_default AND id <> $3`,
		tenantID, userID, exceptID,
	)
	if err != nil {
		return convertErr(err, "clearing default address of user `%s`", userID)
	}
	return nil
}

func scanAddress(row pgx.Row, format string, formatArgs ...any) (*domain.MemberAddress, error) {
	var addr domain.MemberAddress
	err := row.Scan(&addr.ID, &addr.TenantID, &addr.UserID, &addr.Name, &addr.Phone,
		&addr.Address, &addr.Detail, &addr.IsDefault, &addr.CreatedAt, &addr.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, format, formatArgs...)
	}
	return &addr, nil
}
