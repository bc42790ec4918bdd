package pgrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/pkg/uow"
)

type StoreRepository struct {
	conn uow.DBTX
}

func NewStoreRepository(conn uow.DBTX) *StoreRepository {
	return &StoreRepository{conn: conn}
}

// FindAnchor ищет магазин по id без фильтра тенанта. Единственное легальное
// применение - якорение тенанта в начале операции (создание заказа и т.п.):
// найденный магазин определяет tenant_id всего дальнейшего запроса.
func (s *StoreRepository) FindAnchor(ctx context.Context, storeID string) (*domain.Store, error) {
	row := s.conn.QueryRow(ctx, `
		SELECT id, tenant_id, slug, name, status, features, created_at, updated_at
		FROM stores WHERE id = $1`, storeID)
	return scanStore(row, "anchoring store `%s`", storeID)
}

func (s *StoreRepository) Get(ctx context.Context, tenantID, storeID string) (*domain.Store, error) {
	row := s.conn.QueryRow(ctx, `
		SELECT id, tenant_id, slug, name, status, features, created_at, updated_at
		FROM stores WHERE tenant_id = $1 AND id = $2`, tenantID, storeID)
	return scanStore(row, "getting store `%s`", storeID)
}

func (s *StoreRepository) ListByTenant(ctx context.Context, tenantID string) ([]domain.Store, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT id, tenant_id, slug, name, status, features, created_at, updated_at
		FROM stores WHERE tenant_id = $1 ORDER BY created_at`, tenantID)
	if err != nil {
		return nil, convertErr(err, "listing stores")
	}
	defer rows.Close()

	var stores []domain.Store
	for rows.Next() {
		store, scanErr := scanStore(rows, "scanning store row")
		if scanErr != nil {
			return nil, scanErr
		}
		stores = append(stores, *store)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "listing stores")
	}
	return stores, nil
}

func scanStore(row pgx.Row, format string, formatArgs ...any) (*domain.Store, error) {
	var store domain.Store
	var features []byte
	err := row.Scan(&store.ID, &store.TenantID, &store.Slug, &store.Name, &store.Status,
		&features, &store.CreatedAt, &store.UpdatedAt)
	if err != nil {
		return nil, convertErr(err, format, formatArgs...)
	}
	if store.Features, err = unmarshalMap(features); err != nil {
		return nil, convertErr(err, "unmarshaling store features")
	}
	return &store, nil
}
