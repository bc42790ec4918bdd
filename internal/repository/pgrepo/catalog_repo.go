package pgrepo

import (
	"context"
	"encoding/json"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/pkg/uow"
)

// CatalogRepository - read-only доступ к авторитетным ценам и названиям
// каталога. Используется только в момент создания заказа: дальше живет снимок.
type CatalogRepository struct {
	conn uow.DBTX
}

func NewCatalogRepository(conn uow.DBTX) *CatalogRepository {
	return &CatalogRepository{conn: conn}
}

func (c *CatalogRepository) GetItem(ctx context.Context, tenantID, itemID string) (*domain.CatalogItem, error) {
	row := c.conn.QueryRow(ctx, `
		SELECT id, tenant_id, store_id, name, base_price_cents, status, created_at, updated_at
		FROM catalog_items WHERE tenant_id = $1 AND id = $2`, tenantID, itemID)

	var item domain.CatalogItem
	err := row.Scan(&item.ID, &item.TenantID, &item.StoreID, &item.Name,
		&item.BasePriceCents, &item.Status, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "getting catalog item `%s`", itemID)
	}
	return &item, nil
}

// couponRule - схема jsonb правила купона; авторитетные title/price_cents
// берутся отсюда, а не из клиентского payload'а.
type couponRule struct {
	Title      string `json:"title"`
	PriceCents int64  `json:"price_cents"`
}

func (c *CatalogRepository) GetCoupon(ctx context.Context, tenantID, couponID string) (*domain.Coupon, error) {
	row := c.conn.QueryRow(ctx, `
		SELECT id, tenant_id, store_id, rule, status, created_at, updated_at
		FROM coupons WHERE tenant_id = $1 AND id = $2`, tenantID, couponID)

	var coupon domain.Coupon
	var rule []byte
	err := row.Scan(&coupon.ID, &coupon.TenantID, &coupon.StoreID, &rule,
		&coupon.Status, &coupon.CreatedAt, &coupon.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, "getting coupon `%s`", couponID)
	}

	var parsed couponRule
	if len(rule) > 0 {
		if jsonErr := json.Unmarshal(rule, &parsed); jsonErr != nil {
			return nil, convertErr(jsonErr, "unmarshaling rule of coupon `%s`", couponID)
		}
	}
	coupon.Title = parsed.Title
	coupon.PriceCents = parsed.PriceCents
	return &coupon, nil
}
