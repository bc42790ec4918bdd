package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/pkg/uow"
)

type TenantRepository struct {
	conn uow.DBTX
}

func NewTenantRepository(conn uow.DBTX) *TenantRepository {
	return &TenantRepository{conn: conn}
}

func (t *TenantRepository) GetByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	row := t.conn.QueryRow(ctx, `
		SELECT id, slug, name, plan, created_at, updated_at
		FROM tenants WHERE id = $1`, tenantID)

	var tenant domain.Tenant
	err := row.Scan(&tenant.ID, &tenant.Slug, &tenant.Name, &tenant.Plan, &tenant.CreatedAt, &tenant.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "getting tenant `%s`", tenantID)
	}
	return &tenant, nil
}

// GetBySlug резолвит человекочитаемый slug в тенанта. Slug глобально уникален.
func (t *TenantRepository) GetBySlug(ctx context.Context, slug string) (*domain.Tenant, error) {
	row := t.conn.QueryRow(ctx, `
		SELECT id, slug, name, plan, created_at, updated_at
		FROM tenants WHERE slug = $1`, slug)

	var tenant domain.Tenant
	err := row.Scan(&tenant.ID, &tenant.Slug, &tenant.Name, &tenant.Plan, &tenant.CreatedAt, &tenant.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "getting tenant by slug `%s`", slug)
	}
	return &tenant, nil
}
