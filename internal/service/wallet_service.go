package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/repository/repoargs"
	"github.com/fsdevblog/groph-orders/internal/tenant"
	"github.com/fsdevblog/groph-orders/pkg/uow"
)

// rechargeBonusThresholdCents и rechargeBonusCents - правило бонуса пополнения:
// пополнение от 100 юаней дает 10 юаней бонуса.
const (
	rechargeBonusThresholdCents = 10000
	rechargeBonusCents          = 1000
)

type WalletService struct {
	uow          uow.UOW
	walletRepo   WalletRepository
	rechargeRepo RechargeOrderRepository
	gateway      PaymentGateway
}

func NewWalletService(u uow.UOW, gateway PaymentGateway) (*WalletService, error) {
	walletRepo, walletRepoErr := uow.GetRepositoryAs[WalletRepository](u, uow.RepositoryName(repoargs.WalletRepoName))
	if walletRepoErr != nil {
		return nil, walletRepoErr
	}
	rechargeRepo, rechargeRepoErr :=
		uow.GetRepositoryAs[RechargeOrderRepository](u, uow.RepositoryName(repoargs.RechargeOrderRepoName))
	if rechargeRepoErr != nil {
		return nil, rechargeRepoErr
	}
	return &WalletService{
		uow:          u,
		walletRepo:   walletRepo,
		rechargeRepo: rechargeRepo,
		gateway:      gateway,
	}, nil
}

// Balance возвращает баланс кошелька. Кошелек создается лениво, поэтому его
// отсутствие равнозначно нулевому балансу.
func (w *WalletService) Balance(ctx context.Context, userID string) (int64, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return 0, domain.ErrTenantMissing
	}
	wallet, err := w.walletRepo.Get(ctx, tenantID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err //nolint:wrapcheck
	}
	return wallet.BalanceCents, nil
}

// rechargeBonus возвращает бонус за пополнение указанной суммы.
func rechargeBonus(amountCents int64) int64 {
	if amountCents >= rechargeBonusThresholdCents {
		return rechargeBonusCents
	}
	return 0
}

type CreateRechargeArgs struct {
	UserID      string
	AmountCents int64
	Channel     domain.PaymentChannel
}

// CreateRechargeOrder создает заявку на пополнение в статусе CREATED. Бонус
// фиксируется на момент создания; кошелек кредитуется только при подтверждении.
func (w *WalletService) CreateRechargeOrder(
	ctx context.Context,
	args CreateRechargeArgs,
) (*domain.RechargeOrder, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}
	if args.AmountCents <= 0 {
		return nil, domain.ErrValidation
	}

	recharge, err := w.rechargeRepo.Create(ctx, tenantID, repoargs.RechargeOrderCreate{
		ID:          uuid.NewString(),
		UserID:      args.UserID,
		AmountCents: args.AmountCents,
		BonusCents:  rechargeBonus(args.AmountCents),
		Channel:     args.Channel,
	})
	if err != nil {
		return nil, fmt.Errorf("creating recharge order: %w", err)
	}
	return recharge, nil
}

// ConfirmRecharge подтверждает пополнение и кредитует кошелек на amount+bonus.
// Идемпотентно: заявка блокируется FOR UPDATE, повторное подтверждение уже
// оплаченной заявки возвращает её без повторного зачисления.
func (w *WalletService) ConfirmRecharge(ctx context.Context, rechargeID string) (*domain.RechargeOrder, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}

	var recharge *domain.RechargeOrder
	txErr := w.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		rechargeRepo, rechargeRepoErr :=
			uow.GetAs[RechargeOrderRepository](tx, uow.RepositoryName(repoargs.RechargeOrderRepoName))
		if rechargeRepoErr != nil {
			return rechargeRepoErr //nolint:wrapcheck
		}

		locked, lockErr := rechargeRepo.GetForUpdate(c, tenantID, rechargeID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}
		if locked.Status == domain.RechargeStatusPaid {
			recharge = locked
			return nil
		}

		now := time.Now()
		if markErr := rechargeRepo.MarkPaid(c, tenantID, rechargeID, now); markErr != nil {
			return markErr //nolint:wrapcheck
		}

		walletRepo, walletRepoErr := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
		if walletRepoErr != nil {
			return walletRepoErr //nolint:wrapcheck
		}
		credit := locked.AmountCents + locked.BonusCents
		if _, creditErr := walletRepo.Credit(c, tenantID, locked.UserID, credit); creditErr != nil {
			return creditErr //nolint:wrapcheck
		}

		locked.Status = domain.RechargeStatusPaid
		locked.PaidAt = now
		recharge = locked
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("confirming recharge `%s`: %w", rechargeID, txErr)
	}
	return recharge, nil
}

// PrepayRecharge инициирует оплату заявки на пополнение через внешний шлюз и
// возвращает параметры платежного виджета. Заявка должна быть в CREATED;
// подтверждение оплаты придет отдельным запросом.
func (w *WalletService) PrepayRecharge(ctx context.Context, rechargeID string) (map[string]string, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}

	recharge, rechargeErr := w.rechargeRepo.Get(ctx, tenantID, rechargeID)
	if rechargeErr != nil {
		return nil, fmt.Errorf("preparing payment of recharge `%s`: %w", rechargeID, rechargeErr)
	}
	if recharge.Status != domain.RechargeStatusCreated {
		return nil, fmt.Errorf("preparing payment of recharge `%s`: %w", rechargeID, domain.ErrValidation)
	}

	params, initErr := w.gateway.Initiate(ctx, recharge.ID, recharge.AmountCents)
	if initErr != nil {
		return nil, fmt.Errorf("preparing payment of recharge `%s`: %w", rechargeID, initErr)
	}
	return params, nil
}

// Recharge - мгновенное пополнение: создание заявки и подтверждение одним
// вызовом. Используется когда оплата проходит вне нашего платежного цикла.
func (w *WalletService) Recharge(ctx context.Context, args CreateRechargeArgs) (*domain.RechargeOrder, error) {
	recharge, createErr := w.CreateRechargeOrder(ctx, args)
	if createErr != nil {
		return nil, createErr
	}
	return w.ConfirmRecharge(ctx, recharge.ID)
}

// ListRechargeOrders возвращает заявки пользователя на пополнение, свежие первыми.
func (w *WalletService) ListRechargeOrders(ctx context.Context, userID string) ([]domain.RechargeOrder, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}
	list, err := w.rechargeRepo.ListByUser(ctx, tenantID, userID)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return list, nil
}
