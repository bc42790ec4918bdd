package service

import (
	"context"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/repository/repoargs"
	"github.com/fsdevblog/groph-orders/pkg/uow"
)

const tenantIDHexLen = 32

type TenantService struct {
	uow        uow.UOW
	tenantRepo TenantRepository
	storeRepo  StoreRepository
}

func NewTenantService(u uow.UOW) (*TenantService, error) {
	tenantRepo, tenantRepoErr := uow.GetRepositoryAs[TenantRepository](u, uow.RepositoryName(repoargs.TenantRepoName))
	if tenantRepoErr != nil {
		return nil, tenantRepoErr
	}
	storeRepo, storeRepoErr := uow.GetRepositoryAs[StoreRepository](u, uow.RepositoryName(repoargs.StoreRepoName))
	if storeRepoErr != nil {
		return nil, storeRepoErr
	}
	return &TenantService{
		uow:        u,
		tenantRepo: tenantRepo,
		storeRepo:  storeRepo,
	}, nil
}

// Resolve резолвит идентификатор из запроса в tenant_id. 32-символьная
// hex-строка трактуется как готовый id, все остальное - как slug.
func (t *TenantService) Resolve(ctx context.Context, idOrSlug string) (string, error) {
	if idOrSlug == "" {
		return "", domain.ErrTenantMissing
	}
	if isHexID(idOrSlug) {
		return idOrSlug, nil
	}
	resolved, err := t.tenantRepo.GetBySlug(ctx, idOrSlug)
	if err != nil {
		return "", err //nolint:wrapcheck
	}
	return resolved.ID, nil
}

func isHexID(s string) bool {
	if len(s) != tenantIDHexLen {
		return false
	}
	for _, r := range s {
		isDigit := r >= '0' && r <= '9'
		isHexLetter := r >= 'a' && r <= 'f'
		if !isDigit && !isHexLetter {
			return false
		}
	}
	return true
}

// Get возвращает тенанта по id.
func (t *TenantService) Get(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenantRecord, err := t.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return tenantRecord, nil
}

// Stores возвращает магазины тенанта.
func (t *TenantService) Stores(ctx context.Context, tenantID string) ([]domain.Store, error) {
	stores, err := t.storeRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return stores, nil
}
