package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/repository/repoargs"
	"github.com/fsdevblog/groph-orders/pkg/uow"
)

const memberColumns = `id, tenant_id, user_id, phone, nickname, points, created_at, updated_at`

type MemberRepository struct {
	conn uow.DBTX
}

func NewMemberRepository(conn uow.DBTX) *MemberRepository {
	return &MemberRepository{conn: conn}
}

func (m *MemberRepository) Get(ctx context.Context, tenantID, userID string) (*domain.Member, error) {
	row := m.conn.QueryRow(ctx,
		`SELECT `+memberColumns+` FROM members WHERE tenant_id = $1 AND user_id = $2`,
		tenantID, userID,
	)
	var member domain.Member
	err := row.Scan(&member.ID, &member.TenantID, &member.UserID, &member.Phone,
		&member.Nickname, &member.Points, &member.CreatedAt, &member.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "getting member `%s`", userID)
	}
	return &member, nil
}

// Upsert создает или обновляет профиль участника. Пустые значения в args не
// затирают уже сохраненные: обновляются только непустые поля.
func (m *MemberRepository) Upsert(
	ctx context.Context,
	tenantID string,
	args repoargs.MemberUpsert,
) (*domain.Member, error) {
	row := m.conn.QueryRow(ctx, `
		INSERT INTO members (tenant_id, user_id, phone, nickname)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (tenant_id, user_id)
		DO UPDATE SET
			phone = CASE WHEN EXCLUDED.phone <> '' THEN EXCLUDED.phone ELSE members.phone END,
			nickname = CASE WHEN EXCLUDED.nickname <> '' THEN EXCLUDED.nickname ELSE members.nickname END,
			updated_at = now()
		RETURNING `+memberColumns,
		tenantID, args.UserID, args.Phone, args.Nickname,
	)
	var member domain.Member
	err := row.Scan(&member.ID, &member.TenantID, &member.UserID, &member.Phone,
		&member.Nickname, &member.Points, &member.CreatedAt, &member.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "upserting member `%s`", args.UserID)
	}
	return &member, nil
}

// AddPoints начисляет баллы одной атомарной командой и возвращает итоговый
// счет. Профиль создается лениво, если участника еще нет.
func (m *MemberRepository) AddPoints(ctx context.Context, tenantID, userID string, points int64) (int64, error) {
	var total int64
	err := m.conn.QueryRow(ctx, `
		INSERT INTO members (tenant_id, user_id, points)
		VALUES ($1, $2, $3)
		ON CONFLICT (tenant_id, user_id)
		DO UPDATE SET points = members.points + EXCLUDED.points, updated_at = now()
		RETURNING points`,
		tenantID, userID, points,
	).Scan(&total)
	if err != nil {
		return 0, convertErr(err, "adding points to member `%s`", userID)
	}
	return total, nil
}
