package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/repository/repoargs"
	"github.com/fsdevblog/groph-orders/internal/tenant"
	"github.com/fsdevblog/groph-orders/pkg/uow"
)

type VerificationService struct {
	uow uow.UOW
}

func NewVerificationService(u uow.UOW) (*VerificationService, error) {
	return &VerificationService{uow: u}, nil
}

type VerifyArgs struct {
	// Code - либо полный id заказа (19 цифр), либо суточный номер вида A0042.
	Code    string
	StoreID string
}

// Verify погашает заказ по коду на стойке магазина: находит заказ, проверяет
// принадлежность магазину и пригодность к погашению, завершает его и начисляет
// баллы. Весь поток работает под блокировкой строки заказа.
//
// Ошибки:
//   - ErrRecordNotFound: код не резолвится в заказ
//   - ErrStoreMismatch: заказ принадлежит другому магазину
//   - ErrOrderAlreadyUsed: заказ уже завершен или оценен
//   - ErrOrderNotRedeemable: статус не допускает погашение
func (v *VerificationService) Verify(ctx context.Context, args VerifyArgs) (*domain.Order, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}

	var order *domain.Order
	txErr := v.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}

		locked, lookupErr := lookupByCode(c, orderRepo, tenantID, args)
		if lookupErr != nil {
			return lookupErr
		}

		if locked.StoreID != args.StoreID {
			return domain.ErrStoreMismatch
		}
		switch locked.Status {
		case domain.OrderStatusDone, domain.OrderStatusReviewed:
			return domain.ErrOrderAlreadyUsed
		case domain.OrderStatusWaitUse, domain.OrderStatusMaking:
		default:
			return domain.ErrOrderNotRedeemable
		}

		if applyErr := applyTransition(c, tx, tenantID, locked, domain.OrderStatusDone); applyErr != nil {
			return applyErr
		}
		order = locked
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("verifying code `%s`: %w", args.Code, txErr)
	}
	return order, nil
}

// lookupByCode резолвит код погашения в заказ с блокировкой строки. Числовой
// код трактуется как id заказа, прочие - как сегодняшний суточный номер
// магазина.
func lookupByCode(
	ctx context.Context,
	repo OrderRepository,
	tenantID string,
	args VerifyArgs,
) (*domain.Order, error) {
	code := strings.TrimSpace(args.Code)
	if code == "" {
		return nil, domain.ErrRecordNotFound
	}

	if isNumeric(code) {
		order, err := repo.GetForUpdate(ctx, tenantID, code)
		if err != nil && !errors.Is(err, domain.ErrRecordNotFound) {
			return nil, err //nolint:wrapcheck
		}
		if err == nil {
			return order, nil
		}
		// id не нашелся - пробуем как суточный номер ниже.
	}

	order, err := repo.FindBySeqNoTodayForUpdate(ctx, tenantID, args.StoreID, code)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return order, nil
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
