package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fsdevblog/groph-orders/internal/domain"
	"github.com/fsdevblog/groph-orders/internal/repository/repoargs"
	"github.com/fsdevblog/groph-orders/internal/tenant"
	"github.com/fsdevblog/groph-orders/pkg/uow"
)

type PaymentService struct {
	uow         uow.UOW
	orderRepo   OrderRepository
	paymentRepo PaymentRepository
	gateway     PaymentGateway
}

func NewPaymentService(u uow.UOW, gateway PaymentGateway) (*PaymentService, error) {
	orderRepo, orderRepoErr := uow.GetRepositoryAs[OrderRepository](u, uow.RepositoryName(repoargs.OrderRepoName))
	if orderRepoErr != nil {
		return nil, orderRepoErr
	}
	paymentRepo, paymentRepoErr := uow.GetRepositoryAs[PaymentRepository](u, uow.RepositoryName(repoargs.PaymentRepoName))
	if paymentRepoErr != nil {
		return nil, paymentRepoErr
	}
	return &PaymentService{
		uow:         u,
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
	}, nil
}

type PayOrderArgs struct {
	OrderID string
	UserID  string
	Channel domain.PaymentChannel
}

// Pay оплачивает заказ. Вся операция выполняется в одной транзакции под
// блокировкой строки заказа: конкурентная повторная оплата дождется коммита
// первой и отклонится как недопустимый переход.
//
// Алгоритм работы:
//  1. Блокировка и проверка перехода CREATED -> целевой статус сцены.
//  2. Для канала WALLET - атомарное списание с кошелька (без ухода в минус).
//  3. Смена статуса заказа, запись факта оплаты.
//  4. Если сцена завершает заказ сразу (BILL) - начисление баллов.
func (p *PaymentService) Pay(ctx context.Context, args PayOrderArgs) (*domain.Order, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}

	var order *domain.Order
	txErr := p.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		orderRepo, orderRepoErr := uow.GetAs[OrderRepository](tx, uow.RepositoryName(repoargs.OrderRepoName))
		if orderRepoErr != nil {
			return orderRepoErr //nolint:wrapcheck
		}

		locked, lockErr := orderRepo.GetForUpdate(c, tenantID, args.OrderID)
		if lockErr != nil {
			return lockErr //nolint:wrapcheck
		}

		target := domain.PayTargetStatus(locked.Scene)
		if !domain.CanTransition(locked.Status, target) {
			return domain.NewInvalidTransitionError(locked.Status, target)
		}

		if args.Channel == domain.ChannelWallet {
			walletRepo, walletRepoErr := uow.GetAs[WalletRepository](tx, uow.RepositoryName(repoargs.WalletRepoName))
			if walletRepoErr != nil {
				return walletRepoErr //nolint:wrapcheck
			}
			if _, debitErr := walletRepo.Debit(c, tenantID, args.UserID, locked.PricePayableCents); debitErr != nil {
				return debitErr //nolint:wrapcheck
			}
		}

		if applyErr := applyTransition(c, tx, tenantID, locked, target); applyErr != nil {
			return applyErr
		}

		paymentRepo, paymentRepoErr := uow.GetAs[PaymentRepository](tx, uow.RepositoryName(repoargs.PaymentRepoName))
		if paymentRepoErr != nil {
			return paymentRepoErr //nolint:wrapcheck
		}
		payment := domain.Payment{
			ID:          uuid.NewString(),
			TenantID:    tenantID,
			OrderID:     locked.ID,
			UserID:      args.UserID,
			AmountCents: locked.PricePayableCents,
			Status:      domain.PaymentStatusSuccess,
			Channel:     args.Channel,
			CreatedAt:   time.Now(),
		}
		if createErr := paymentRepo.Create(c, tenantID, &payment); createErr != nil {
			return createErr //nolint:wrapcheck
		}

		order = locked
		return nil
	})
	if txErr != nil {
		return nil, fmt.Errorf("paying order `%s`: %w", args.OrderID, txErr)
	}
	return order, nil
}

// History возвращает записи оплат заказа. Записи неизменяемые, по одной на
// каждую завершенную попытку.
func (p *PaymentService) History(ctx context.Context, orderID string) ([]domain.Payment, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}
	payments, err := p.paymentRepo.ListByOrder(ctx, tenantID, orderID)
	if err != nil {
		return nil, fmt.Errorf("listing payments of order `%s`: %w", orderID, err)
	}
	return payments, nil
}

// Prepay инициирует оплату через внешний платежный шлюз и возвращает параметры
// платежного виджета для клиента. Состояние заказа не меняется: подтверждение
// оплаты придет отдельным запросом.
func (p *PaymentService) Prepay(ctx context.Context, orderID string) (map[string]string, error) {
	tenantID, ok := tenant.FromContext(ctx)
	if !ok {
		return nil, domain.ErrTenantMissing
	}

	order, orderErr := p.orderRepo.Get(ctx, tenantID, orderID)
	if orderErr != nil {
		return nil, fmt.Errorf("preparing payment of order `%s`: %w", orderID, orderErr)
	}
	if order.Status != domain.OrderStatusCreated {
		return nil, domain.NewInvalidTransitionError(order.Status, domain.PayTargetStatus(order.Scene))
	}

	params, initErr := p.gateway.Initiate(ctx, order.ID, order.PricePayableCents)
	if initErr != nil {
		return nil, fmt.Errorf("preparing payment of order `%s`: %w", orderID, initErr)
	}
	return params, nil
}
